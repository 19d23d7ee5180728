package haxe

import "strings"

type ClassKind string

const (
	ClassKindClass     ClassKind = "class"
	ClassKindInterface ClassKind = "interface"
	ClassKindEnum      ClassKind = "enum"
)

type Modifier string

const (
	ModifierStatic Modifier = "static"
)

// ConstructorName is the reserved member name used for constructors.
const ConstructorName = "new"

// Model is the root of a built declaration tree.
type Model struct {
	Classes *Classes
}

func NewModel() *Model {
	return &Model{Classes: NewClasses()}
}

type Class struct {
	Name          string
	FullPath      string
	Comment       string
	Heritage      string
	TypeParameter string
	Kind          ClassKind
	Members       *Members
	Classes       *Classes

	originalName string
}

func newClass(name, originalName string) *Class {
	return &Class{
		Name:         name,
		Kind:         ClassKindClass,
		Members:      NewMembers(),
		Classes:      NewClasses(),
		originalName: originalName,
	}
}

func (c *Class) IsInterface() bool { return c.Kind == ClassKindInterface }
func (c *Class) IsEnum() bool      { return c.Kind == ClassKindEnum }

// Member is either a *Field or a *Method.
type Member interface {
	MemberName() string
	setMemberName(name string)
	isMember()
}

type Field struct {
	Name      string
	Comment   string
	Modifiers []Modifier
	Metadata  []string
	Type      string
}

func (f *Field) MemberName() string         { return f.Name }
func (f *Field) setMemberName(name string) { f.Name = name }
func (*Field) isMember()                   {}

func (f *Field) IsStatic() bool { return hasModifier(f.Modifiers, ModifierStatic) }

type Method struct {
	Name      string
	Overloads []*Signature
}

func (m *Method) MemberName() string         { return m.Name }
func (m *Method) setMemberName(name string) { m.Name = name }
func (*Method) isMember()                   {}

// Primary returns the first declared signature. Its comment, metadata,
// modifiers and type are the ones emitted for the method.
func (m *Method) Primary() *Signature {
	if len(m.Overloads) == 0 {
		return nil
	}
	return m.Overloads[0]
}

type Signature struct {
	Comment       string
	Modifiers     []Modifier
	Metadata      []string
	Type          string
	TypeParameter string
	Parameters    []Parameter
}

func (s *Signature) IsStatic() bool { return hasModifier(s.Modifiers, ModifierStatic) }

type Parameter struct {
	Name     string
	Type     string
	Nullable bool
}

// NativeAlias renders the metadata entry that keeps a renamed member bound
// to its original runtime name.
func NativeAlias(name string) string {
	return `:native("` + name + `")`
}

func hasNativeAlias(metadata []string) bool {
	for _, m := range metadata {
		if strings.HasPrefix(m, ":native") {
			return true
		}
	}
	return false
}

func hasModifier(mods []Modifier, mod Modifier) bool {
	for _, m := range mods {
		if m == mod {
			return true
		}
	}
	return false
}

// MemberMetadata returns the metadata emitted for a member.
func MemberMetadata(m Member) []string {
	switch m := m.(type) {
	case *Field:
		return m.Metadata
	case *Method:
		if p := m.Primary(); p != nil {
			return p.Metadata
		}
	}
	return nil
}

// AddMemberMetadata appends to the metadata emitted for a member.
func AddMemberMetadata(m Member, meta string) {
	switch m := m.(type) {
	case *Field:
		m.Metadata = append(m.Metadata, meta)
	case *Method:
		if p := m.Primary(); p != nil {
			p.Metadata = append(p.Metadata, meta)
		}
	}
}

// Walk visits every class depth first in insertion order.
func (m *Model) Walk(fn func(c *Class)) {
	var walk func(cs *Classes)
	walk = func(cs *Classes) {
		for _, c := range cs.All() {
			fn(c)
			walk(c.Classes)
		}
	}
	walk(m.Classes)
}

// Lookup finds a class by its dot-separated declared names from the root.
func (m *Model) Lookup(path string) *Class {
	scope := m.Classes
	var c *Class
	for _, part := range strings.Split(path, ".") {
		c = scope.Get(part)
		if c == nil {
			return nil
		}
		scope = c.Classes
	}
	return c
}
