package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/externgen/haxe"
)

type JSONEncoder struct {
	w    io.Writer
	unit Unit
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(unit Unit) error {
	e.unit = unit
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := e.buildClassData()
	return json.MarshalIndent(data, "", "  ")
}

type jsonClass struct {
	Name          string       `json:"name"`
	FullPath      string       `json:"fullPath"`
	Package       []string     `json:"package,omitempty"`
	Kind          string       `json:"kind"`
	Heritage      string       `json:"heritage,omitempty"`
	TypeParameter string       `json:"typeParameter,omitempty"`
	Comment       string       `json:"comment,omitempty"`
	Fields        []jsonField  `json:"fields,omitempty"`
	Methods       []jsonMethod `json:"methods,omitempty"`
}

type jsonField struct {
	Name      string   `json:"name"`
	Type      string   `json:"type,omitempty"`
	Comment   string   `json:"comment,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
	Metadata  []string `json:"metadata,omitempty"`
}

type jsonMethod struct {
	Name      string          `json:"name"`
	Overloads []jsonSignature `json:"overloads"`
}

type jsonSignature struct {
	ReturnType    string          `json:"returnType,omitempty"`
	TypeParameter string          `json:"typeParameter,omitempty"`
	Parameters    []jsonParameter `json:"parameters,omitempty"`
	Comment       string          `json:"comment,omitempty"`
	Modifiers     []string        `json:"modifiers,omitempty"`
	Metadata      []string        `json:"metadata,omitempty"`
}

type jsonParameter struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable,omitempty"`
}

func (e *JSONEncoder) buildClassData() jsonClass {
	c := e.unit.Class
	data := jsonClass{
		Name:          c.Name,
		FullPath:      c.FullPath,
		Package:       e.unit.Package,
		Kind:          string(c.Kind),
		Heritage:      c.Heritage,
		TypeParameter: c.TypeParameter,
		Comment:       c.Comment,
	}
	for _, m := range c.Members.All() {
		switch m := m.(type) {
		case *haxe.Field:
			data.Fields = append(data.Fields, jsonField{
				Name:      m.Name,
				Type:      m.Type,
				Comment:   m.Comment,
				Modifiers: modifierStrings(m.Modifiers),
				Metadata:  m.Metadata,
			})
		case *haxe.Method:
			data.Methods = append(data.Methods, buildMethod(m))
		}
	}
	return data
}

func buildMethod(m *haxe.Method) jsonMethod {
	result := jsonMethod{Name: m.Name}
	for _, sig := range m.Overloads {
		s := jsonSignature{
			ReturnType:    sig.Type,
			TypeParameter: sig.TypeParameter,
			Comment:       sig.Comment,
			Modifiers:     modifierStrings(sig.Modifiers),
			Metadata:      sig.Metadata,
		}
		for _, p := range sig.Parameters {
			s.Parameters = append(s.Parameters, jsonParameter{Name: p.Name, Type: p.Type, Nullable: p.Nullable})
		}
		result.Overloads = append(result.Overloads, s)
	}
	return result
}

func modifierStrings(mods []haxe.Modifier) []string {
	var result []string
	for _, m := range mods {
		result = append(result, string(m))
	}
	return result
}
