// Package typename reduces reflected type identity strings to bare names.
//
// reflect qualifies named types with their package ("boundedgo.Bounded",
// "num.U128", sometimes a full import path inside type-argument lists).
// The formatting layer wants only the bare names, at every nesting level,
// so the helpers here remove every qualifier rather than just the rightmost
// one.
package typename

import "strings"

// separators end an identifier segment inside a type string. Everything
// between two separators is one (possibly package-qualified) name.
const separators = "[],*() {};"

// Strip removes all package qualification from a type string, e.g.
// "boundedgo.Bounded[uint8,main.digits]" becomes "Bounded[uint8,digits]".
// Qualifiers with full import paths ("example.com/a/b.T") are removed the
// same way, since the final dot always follows the last path element.
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	start := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(separators, s[i]) < 0 {
			continue
		}
		b.WriteString(unqualify(s[start:i]))
		b.WriteByte(s[i])
		start = i + 1
	}
	b.WriteString(unqualify(s[start:]))

	return b.String()
}

// Base returns the unqualified name of a type string with any type-argument
// list removed, e.g. "boundedgo.Bounded[uint8,main.digits]" becomes
// "Bounded".
func Base(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimPrefix(s, "*")
	return unqualify(s)
}

func unqualify(seg string) string {
	if i := strings.LastIndexByte(seg, '.'); i >= 0 {
		return seg[i+1:]
	}
	return seg
}
