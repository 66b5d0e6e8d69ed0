// Package label renders the diagnostic labels shared by the wrapper
// packages.
package label

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hupe1980/boundedgo/internal/typename"
)

// Render composes the diagnostic form of a wrapper: the shape name, the
// width of the wrapped value, the bound values in declaration order, and
// the held value, as in Bounded[uint8,10,20](15). The shape and width
// names are taken from the dynamic types with package qualifiers
// stripped, so two wrappers differing only in bounds still print
// distinct labels while the output stays free of import paths.
func Render(wrapper, value any, bounds ...any) string {
	var sb strings.Builder
	sb.WriteString(typename.Base(reflect.TypeOf(wrapper).String()))
	sb.WriteByte('[')
	sb.WriteString(typename.Strip(reflect.TypeOf(value).String()))
	for _, b := range bounds {
		sb.WriteByte(',')
		fmt.Fprintf(&sb, "%v", b)
	}
	sb.WriteByte(']')
	fmt.Fprintf(&sb, "(%v)", value)
	return sb.String()
}
