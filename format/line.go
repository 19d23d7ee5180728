package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/externgen/haxe"
)

// LineEncoder writes one tab separated line per class, member and overload.
type LineEncoder struct {
	w    io.Writer
	unit Unit
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(unit Unit) error {
	e.unit = unit
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	c := e.unit.Class

	fmt.Fprintf(&sb, "%s\t%s\t%s\n", c.Kind, c.FullPath, dash(c.Heritage))

	for _, m := range c.Members.All() {
		switch m := m.(type) {
		case *haxe.Field:
			fmt.Fprintf(&sb, "field\t%s\t%s\t%s\t%s\n",
				m.Name,
				dash(m.Type),
				modifiersStr(m.Modifiers),
				dash(strings.Join(m.Metadata, ",")),
			)
		case *haxe.Method:
			for i, sig := range m.Overloads {
				kind := "method"
				if i > 0 {
					kind = "overload"
				}
				fmt.Fprintf(&sb, "%s\t%s\t%s\t%s\t%s\t%s\n",
					kind,
					m.Name,
					dash(sig.Type),
					parametersStr(sig.Parameters),
					modifiersStr(sig.Modifiers),
					dash(strings.Join(sig.Metadata, ",")),
				)
			}
		}
	}

	return []byte(sb.String()), nil
}

func modifiersStr(mods []haxe.Modifier) string {
	if len(mods) == 0 {
		return "-"
	}
	parts := make([]string, len(mods))
	for i, m := range mods {
		parts[i] = string(m)
	}
	return strings.Join(parts, ",")
}

func parametersStr(params []haxe.Parameter) string {
	if len(params) == 0 {
		return "-"
	}
	return parameters(params)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
