// Package source decodes declarative model documents and replays them
// against a haxe.Builder.
package source

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/externgen/haxe"
)

var log = commonlog.GetLogger("externgen.source")

var ErrInvalidDocument = errors.New("invalid model document")

type ClassKind string

const (
	KindClass     ClassKind = "class"
	KindNamespace ClassKind = "namespace"
	KindInterface ClassKind = "interface"
	KindEnum      ClassKind = "enum"
)

type MemberKind string

const (
	KindProperty    MemberKind = "property"
	KindMethod      MemberKind = "method"
	KindConstructor MemberKind = "constructor"
	KindCase        MemberKind = "case"
)

// Document is one model file.
type Document struct {
	Classes []ClassDecl `yaml:"classes"`
}

type ClassDecl struct {
	Name       string       `yaml:"name"`
	Kind       ClassKind    `yaml:"kind,omitempty"`
	Comment    string       `yaml:"comment,omitempty"`
	Extends    string       `yaml:"extends,omitempty"`
	Implements []string     `yaml:"implements,omitempty"`
	TypeParams []string     `yaml:"typeParams,omitempty"`
	Members    []MemberDecl `yaml:"members,omitempty"`
	Classes    []ClassDecl  `yaml:"classes,omitempty"`
}

type MemberDecl struct {
	Name       string      `yaml:"name"`
	Kind       MemberKind  `yaml:"kind,omitempty"`
	Comment    string      `yaml:"comment,omitempty"`
	Type       string      `yaml:"type,omitempty"`
	Static     bool        `yaml:"static,omitempty"`
	Optional   bool        `yaml:"optional,omitempty"`
	Metadata   []string    `yaml:"metadata,omitempty"`
	TypeParams []string    `yaml:"typeParams,omitempty"`
	Params     []ParamDecl `yaml:"params,omitempty"`
}

type ParamDecl struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type,omitempty"`
	Optional bool   `yaml:"optional,omitempty"`
	Rest     bool   `yaml:"rest,omitempty"`
}

// Decode reads every YAML document in r. JSON input is accepted as YAML.
func Decode(r io.Reader) ([]*Document, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var docs []*Document
	for {
		var doc Document
		err := decoder.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, errors.WithHint(errors.Wrap(err, "decode model"),
				"model documents hold a top-level 'classes' list")
		}
		docs = append(docs, &doc)
	}
}

// Load decodes the model file at path and replays it into b.
func Load(b *haxe.Builder, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read model %s", path)
	}
	docs, err := Decode(bytes.NewReader(data))
	if err != nil {
		return errors.Wrapf(err, "model %s", path)
	}
	for _, doc := range docs {
		if err := Replay(b, doc); err != nil {
			return errors.Wrapf(err, "model %s", path)
		}
	}
	log.Debugf("loaded %d document(s) from %s", len(docs), path)
	return nil
}

// Replay issues the Builder calls describing doc.
func Replay(b *haxe.Builder, doc *Document) error {
	for i := range doc.Classes {
		if err := replayClass(b, &doc.Classes[i]); err != nil {
			return err
		}
	}
	return nil
}

func replayClass(b *haxe.Builder, c *ClassDecl) error {
	if c.Name == "" {
		return errors.Wrap(ErrInvalidDocument, "class without name")
	}
	if err := b.EnterClass(c.Name); err != nil {
		return err
	}
	if c.Comment != "" {
		if err := b.SetComment(c.Comment); err != nil {
			return err
		}
	}
	if heritage := c.heritage(); heritage != "" {
		if err := b.SetHeritage(heritage); err != nil {
			return err
		}
	}
	if len(c.TypeParams) > 0 {
		if err := b.SetClassTypeParameter(strings.Join(c.TypeParams, ", ")); err != nil {
			return err
		}
	}

	switch c.Kind {
	case "", KindClass, KindNamespace:
	case KindInterface:
		if err := b.MarkInterface(); err != nil {
			return err
		}
	case KindEnum:
		if err := b.MarkEnum(); err != nil {
			return err
		}
	default:
		return errors.Wrapf(ErrInvalidDocument, "class %s: unknown kind %q", c.Name, c.Kind)
	}

	for i := range c.Members {
		if err := replayMember(b, c, &c.Members[i]); err != nil {
			return errors.Wrapf(err, "class %s", c.Name)
		}
	}
	for i := range c.Classes {
		if err := replayClass(b, &c.Classes[i]); err != nil {
			return err
		}
	}
	return b.ExitClass()
}

// heritage renders the extends/implements clauses in Haxe order.
// Interfaces extend every parent.
func (c *ClassDecl) heritage() string {
	var clauses []string
	if c.Extends != "" {
		clauses = append(clauses, "extends "+TranslateType(c.Extends))
	}
	keyword := "implements "
	if c.Kind == KindInterface {
		keyword = "extends "
	}
	for _, i := range c.Implements {
		clauses = append(clauses, keyword+TranslateType(i))
	}
	return strings.Join(clauses, " ")
}

func replayMember(b *haxe.Builder, c *ClassDecl, m *MemberDecl) error {
	kind := m.Kind
	if kind == "" {
		kind = KindProperty
		if c.Kind == KindEnum {
			kind = KindCase
		}
	}

	switch kind {
	case KindProperty, KindCase:
		if m.Name == "" {
			return errors.Wrap(ErrInvalidDocument, "property without name")
		}
		if err := b.AddProperty(m.Name); err != nil {
			return err
		}
		if m.Optional {
			if err := b.AddMetadata(":optional"); err != nil {
				return err
			}
		}
		if kind == KindProperty && c.Kind != KindEnum {
			if err := b.SetType(TranslateType(m.Type)); err != nil {
				return err
			}
		}
	case KindMethod, KindConstructor:
		name := m.Name
		if kind == KindConstructor {
			name = haxe.ConstructorName
		}
		if name == "" {
			return errors.Wrap(ErrInvalidDocument, "method without name")
		}
		if err := b.AddMethod(name); err != nil {
			return err
		}
		if kind == KindMethod {
			if err := b.SetType(TranslateType(m.Type)); err != nil {
				return err
			}
		}
		if len(m.TypeParams) > 0 {
			if err := b.SetTypeParameter(strings.Join(m.TypeParams, ", ")); err != nil {
				return err
			}
		}
		for _, p := range m.Params {
			typ := TranslateType(p.Type)
			if p.Rest {
				typ = RestType(p.Type)
			}
			if err := b.AddParameter(p.Name, typ, p.Optional); err != nil {
				return err
			}
		}
	default:
		return errors.Wrapf(ErrInvalidDocument, "member %s: unknown kind %q", m.Name, m.Kind)
	}

	if m.Static {
		if err := b.AddModifier(haxe.ModifierStatic); err != nil {
			return err
		}
	}
	for _, meta := range m.Metadata {
		if err := b.AddMetadata(meta); err != nil {
			return err
		}
	}
	if m.Comment != "" {
		return b.SetComment(m.Comment)
	}
	return nil
}
