package format

import (
	"encoding"
	"strings"

	"github.com/dhamidi/externgen/haxe"
)

// Unit is one class together with the lower-cased names of its ancestors.
type Unit struct {
	Package []string
	Class   *haxe.Class
}

// Path is the slash separated output path of the unit.
func (u Unit) Path(ext string) string {
	return strings.Join(append(append([]string(nil), u.Package...), u.Class.Name+ext), "/")
}

type Encoder interface {
	encoding.TextMarshaler
	Encode(unit Unit) error
}

// Units lists every class of the model depth first, in insertion order.
func Units(m *haxe.Model) []Unit {
	var units []Unit
	for _, c := range m.Classes.All() {
		units = appendUnits(units, nil, c)
	}
	return units
}

func appendUnits(units []Unit, pkg []string, c *haxe.Class) []Unit {
	units = append(units, Unit{Package: pkg, Class: c})
	child := append(append([]string(nil), pkg...), strings.ToLower(c.Name))
	for _, nested := range c.Classes.All() {
		units = appendUnits(units, child, nested)
	}
	return units
}
