package haxe

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Builder constructs a Model from a flat sequence of structural events.
// It keeps a single cursor: the current class, the current member (and for
// methods the current overload signature) and the target that receives the
// next doc comment.
type Builder struct {
	model *Model
	stack []*Class

	field  *Field
	method *Method
	sig    *Signature

	comment        *string
	commentName    string
	commentsMethod bool
}

func NewBuilder() *Builder {
	return &Builder{model: NewModel()}
}

// Finish returns the built model. Every EnterClass must have been matched
// by an ExitClass.
func (b *Builder) Finish() (*Model, error) {
	if len(b.stack) > 0 {
		return nil, errors.Wrapf(ErrUnclosedClass, "%s", b.current().FullPath)
	}
	return b.model, nil
}

func (b *Builder) current() *Class {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

func (b *Builder) scope() *Classes {
	if c := b.current(); c != nil {
		return c.Classes
	}
	return b.model.Classes
}

func (b *Builder) resetMember() {
	b.field = nil
	b.method = nil
	b.sig = nil
}

func (b *Builder) EnterClass(name string) error {
	if name == "" {
		return errors.New("class name cannot be empty")
	}
	declared := Capitalize(name)
	scope := b.scope()
	if c := scope.Get(declared); c != nil {
		if c.originalName != name {
			return errors.Wrapf(ErrDuplicateClass, "%s (declared as %q and %q)", c.FullPath, c.originalName, name)
		}
		b.stack = append(b.stack, c)
		b.resetMember()
		b.commentOn(&c.Comment, c.FullPath, false)
		return nil
	}

	c := newClass(declared, name)
	parts := make([]string, 0, len(b.stack)+1)
	for _, p := range b.stack {
		parts = append(parts, p.Name)
	}
	c.FullPath = strings.Join(append(parts, name), ".")

	scope.add(c)
	b.stack = append(b.stack, c)
	b.resetMember()
	b.commentOn(&c.Comment, c.FullPath, false)
	return nil
}

func (b *Builder) ExitClass() error {
	if len(b.stack) == 0 {
		return errors.Wrap(ErrNoCurrentClass, "exit class at top level")
	}
	b.stack = b.stack[:len(b.stack)-1]
	b.resetMember()
	b.comment = nil
	return nil
}

func (b *Builder) requireClass(op string) (*Class, error) {
	c := b.current()
	if c == nil {
		return nil, errors.Wrapf(ErrNoCurrentClass, "%s", op)
	}
	return c, nil
}

func (b *Builder) MarkInterface() error {
	c, err := b.requireClass("mark interface")
	if err != nil {
		return err
	}
	c.Kind = ClassKindInterface
	return nil
}

func (b *Builder) MarkEnum() error {
	c, err := b.requireClass("mark enum")
	if err != nil {
		return err
	}
	c.Kind = ClassKindEnum
	return nil
}

func (b *Builder) SetHeritage(heritage string) error {
	c, err := b.requireClass("set heritage")
	if err != nil {
		return err
	}
	c.Heritage = heritage
	return nil
}

func (b *Builder) SetClassTypeParameter(typeParam string) error {
	c, err := b.requireClass("set class type parameter")
	if err != nil {
		return err
	}
	c.TypeParameter = typeParam
	return nil
}

func (b *Builder) AddProperty(name string) error {
	c, err := b.requireClass("add property " + name)
	if err != nil {
		return err
	}
	if c.Members.Has(name) {
		return errors.Wrapf(ErrDuplicateMember, "property %s in class %s", name, c.FullPath)
	}
	f := &Field{Name: name}
	c.Members.Set(name, f)
	b.resetMember()
	b.field = f
	b.commentOn(&f.Comment, c.FullPath+"."+name, false)
	return nil
}

func (b *Builder) AddMethod(name string) error {
	c, err := b.requireClass("add method " + name)
	if err != nil {
		return err
	}
	sig := &Signature{}
	switch existing := c.Members.Get(name).(type) {
	case nil:
		m := &Method{Name: name, Overloads: []*Signature{sig}}
		c.Members.Set(name, m)
		b.resetMember()
		b.method, b.sig = m, sig
	case *Method:
		existing.Overloads = append(existing.Overloads, sig)
		b.resetMember()
		b.method, b.sig = existing, sig
	case *Field:
		return errors.Wrapf(ErrNameCollision, "method %s in class %s: a property with that name exists", name, c.FullPath)
	}
	b.commentOn(&b.method.Primary().Comment, c.FullPath+"."+name, true)
	return nil
}

func (b *Builder) AddParameter(name, typ string, nullable bool) error {
	if b.sig == nil {
		return errors.Wrapf(ErrNotAMethod, "add parameter %s", name)
	}
	b.sig.Parameters = append(b.sig.Parameters, Parameter{Name: name, Type: typ, Nullable: nullable})
	return nil
}

func (b *Builder) AddModifier(mod Modifier) error {
	switch {
	case b.sig != nil:
		b.sig.Modifiers = append(b.sig.Modifiers, mod)
	case b.field != nil:
		b.field.Modifiers = append(b.field.Modifiers, mod)
	default:
		return errors.Wrapf(ErrNoCurrentMember, "add modifier %s", mod)
	}
	return nil
}

func (b *Builder) AddMetadata(meta string) error {
	switch {
	case b.sig != nil:
		b.sig.Metadata = append(b.sig.Metadata, meta)
	case b.field != nil:
		b.field.Metadata = append(b.field.Metadata, meta)
	default:
		return errors.Wrapf(ErrNoCurrentMember, "add metadata %s", meta)
	}
	return nil
}

func (b *Builder) SetType(typ string) error {
	var target *string
	var name string
	switch {
	case b.sig != nil:
		target, name = &b.sig.Type, b.method.Name
	case b.field != nil:
		target, name = &b.field.Type, b.field.Name
	default:
		return errors.Wrapf(ErrNoCurrentMember, "set type %s", typ)
	}
	if *target != "" {
		return errors.Wrapf(ErrTypeAlreadySet, "type on %s", name)
	}
	if typ == "" {
		return errors.Wrapf(ErrEmptyType, "type on %s", name)
	}
	*target = typ
	return nil
}

func (b *Builder) SetTypeParameter(typeParam string) error {
	if b.sig == nil {
		return errors.Wrapf(ErrNotAMethod, "set type parameter %s", typeParam)
	}
	b.sig.TypeParameter = typeParam
	return nil
}

func (b *Builder) commentOn(target *string, name string, method bool) {
	b.comment = target
	b.commentName = name
	b.commentsMethod = method
}

// SetComment attaches a doc comment to the commentable target. Repeating
// the same text is allowed; the text is still kept on the current overload
// so a split-out static signature can carry it.
func (b *Builder) SetComment(comment string) error {
	if b.comment == nil {
		return errors.Wrap(ErrNoCommentTarget, "set comment")
	}
	if *b.comment != "" {
		if *b.comment != comment {
			return errors.Wrapf(ErrConflictingComment, "%s already has a different comment", b.commentName)
		}
		log.Infof("duplicate equal comment on %s, ignoring", b.commentName)
		if b.commentsMethod && b.sig != nil {
			b.sig.Comment = comment
		}
		return nil
	}
	*b.comment = comment
	return nil
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
