package boundedgo_test

// Range declarations shared across the package tests. Each is a zero-size
// type whose method returns the bounds; the type itself carries the range.

type tenToTwenty struct{}

func (tenToTwenty) Bounds() (uint8, uint8) { return 10, 20 }

type balance struct{}

func (balance) Bounds() (int16, int16) { return -100, 100 }

// point admits exactly 10 under inclusive semantics and nothing under
// half-open semantics.
type point struct{}

func (point) Bounds() (uint8, uint8) { return 10, 10 }

type reversed struct{}

func (reversed) Bounds() (uint8, uint8) { return 20, 10 }

type fullByte struct{}

func (fullByte) Bounds() (uint8, uint8) { return 0, 255 }

type atLeastTen struct{}

func (atLeastTen) LowerBound() uint8 { return 10 }

type atLeastMinusFive struct{}

func (atLeastMinusFive) LowerBound() int8 { return -5 }

type belowTen struct{}

func (belowTen) UpperBound() uint8 { return 10 }

type negativeOnly struct{}

func (negativeOnly) UpperBound() int8 { return 0 }

type atMostMax struct{}

func (atMostMax) UpperBound() uint8 { return 255 }
