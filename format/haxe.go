package format

import (
	"io"
	"strings"

	"github.com/dhamidi/externgen/haxe"
)

// HaxeEncoder renders one class as a Haxe extern declaration.
type HaxeEncoder struct {
	w       io.Writer
	imports []Import
	unit    Unit
}

func NewHaxeEncoder(w io.Writer) *HaxeEncoder {
	return &HaxeEncoder{w: w, imports: DefaultImports}
}

// WithImports replaces the import table used to infer import lines.
func (e *HaxeEncoder) WithImports(table []Import) *HaxeEncoder {
	e.imports = table
	return e
}

func (e *HaxeEncoder) Encode(unit Unit) error {
	e.unit = unit
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *HaxeEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	w := &lineWriter{sb: &sb}
	c := e.unit.Class

	pkg := make([]string, len(e.unit.Package))
	for i, p := range e.unit.Package {
		pkg[i] = strings.ToLower(p)
	}
	w.line("package " + strings.Join(pkg, ".") + ";")
	w.line("")

	if lines := ImportsFor(c, e.imports); len(lines) > 0 {
		for _, l := range lines {
			w.line(l)
		}
		w.line("")
	}

	w.comment(c.Comment)
	heritage := ""
	if c.Heritage != "" {
		heritage = c.Heritage + " "
	}
	typeParam := ""
	if c.TypeParameter != "" {
		typeParam = "<" + c.TypeParameter + ">"
	}
	w.line(`@:native("` + c.FullPath + `")`)
	w.line("extern " + string(c.Kind) + " " + c.Name + typeParam + " " + heritage + "{")
	w.line("")

	w.indent++
	for _, m := range c.Members.All() {
		switch m := m.(type) {
		case *haxe.Field:
			w.comment(m.Comment)
			w.metadata(m.Metadata)
			if c.IsEnum() {
				w.line(m.Name + ";")
			} else {
				w.line(modifiers(m.Modifiers) + "var " + m.Name + ":" + typeOrDynamic(m.Type) + ";")
			}
		case *haxe.Method:
			writeMethod(w, m)
		}
		w.line("")
	}
	w.indent--

	w.line("}")
	w.line("")
	return []byte(sb.String()), nil
}

func writeMethod(w *lineWriter, m *haxe.Method) {
	primary := m.Primary()
	if primary == nil {
		return
	}
	w.comment(primary.Comment)
	w.metadata(primary.Metadata)
	for _, overload := range m.Overloads[1:] {
		w.line("@:overload(function(" + parameters(overload.Parameters) + "):" + typeOrDynamic(overload.Type) + "{})")
	}
	typeParam := ""
	if primary.TypeParameter != "" {
		typeParam = "<" + primary.TypeParameter + ">"
	}
	ret := ""
	if primary.Type != "" {
		ret = ":" + primary.Type
	}
	w.line(modifiers(primary.Modifiers) + "function " + m.Name + typeParam + "(" + parameters(primary.Parameters) + ")" + ret + ";")
}

func parameters(params []haxe.Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		q := ""
		if p.Nullable {
			q = "?"
		}
		parts[i] = q + p.Name + ":" + p.Type
	}
	return strings.Join(parts, ", ")
}

func modifiers(mods []haxe.Modifier) string {
	var sb strings.Builder
	for _, m := range mods {
		sb.WriteString(string(m))
		sb.WriteString(" ")
	}
	return sb.String()
}

func typeOrDynamic(t string) string {
	if t == "" {
		return "Dynamic"
	}
	return t
}

type lineWriter struct {
	sb     *strings.Builder
	indent int
}

func (w *lineWriter) line(text string) {
	w.sb.WriteString(strings.Repeat("\t", w.indent))
	w.sb.WriteString(text)
	w.sb.WriteString("\n")
}

func (w *lineWriter) comment(comment string) {
	if comment == "" {
		return
	}
	w.line("/**")
	for _, l := range strings.Split(comment, "\r\n") {
		w.line("* " + l)
	}
	w.line("*/")
}

func (w *lineWriter) metadata(meta []string) {
	for _, m := range meta {
		w.line("@" + m)
	}
}
