package haxe

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// NameTransforms are tried in order when a heritage path segment does not
// match a declared class name. Source files often spell namespaces in lower
// or upper case while declared names are capitalized.
var NameTransforms = []func(string) string{
	func(s string) string { return s },
	Capitalize,
	strings.ToUpper,
}

type HeritageReport struct {
	Deleted    int
	Renamed    int
	Unresolved int
}

// ResolveHeritage removes members that a class redeclares identically to
// one of its ancestors and renames the ones that differ, so the emitted
// externs never redeclare an inherited member with another signature.
// Running it twice leaves the model unchanged.
func (m *Model) ResolveHeritage() (HeritageReport, error) {
	r := &heritageResolver{model: m, scopes: make(map[*Class]*Classes)}
	r.index(m.Classes)

	var err error
	m.Walk(func(c *Class) {
		if err != nil || c.Heritage == "" {
			return
		}
		super := r.findSuperclass(c.Heritage, r.scopes[c])
		if super == nil {
			if name := superclassName(c.Heritage); name != "" {
				log.Warningf("superclass %s of %s not found [%s]", name, c.FullPath, c.Heritage)
				r.report.Unresolved++
			}
			return
		}
		err = r.handle(c, super, map[*Class]bool{c: true})
	})
	return r.report, err
}

type heritageResolver struct {
	model  *Model
	scopes map[*Class]*Classes
	report HeritageReport
}

func (r *heritageResolver) index(cs *Classes) {
	for _, c := range cs.All() {
		r.scopes[c] = cs
		r.index(c.Classes)
	}
}

func (r *heritageResolver) handle(c, super *Class, seen map[*Class]bool) error {
	seen[super] = true
	for _, name := range c.Members.Names() {
		if name == ConstructorName {
			continue
		}
		member := c.Members.Get(name)
		superMember := super.Members.Get(name)
		if superMember == nil {
			continue
		}
		if sameMember(member, superMember) {
			log.Debugf("removing %s from %s, it is equal to %s", name, c.FullPath, super.FullPath)
			c.Members.Delete(name)
			r.report.Deleted++
			continue
		}
		log.Infof("different member %s on %s vs %s", name, c.FullPath, super.FullPath)
		if hasNativeAlias(MemberMetadata(member)) {
			log.Warningf("%s.%s already has a native alias, keeping its name", c.FullPath, name)
			continue
		}
		renamed := c.Name + "_" + name
		if c.Members.Has(renamed) {
			return errors.Wrapf(ErrNameCollision, "renaming %s.%s to %s", c.FullPath, name, renamed)
		}
		AddMemberMetadata(member, NativeAlias(name))
		c.Members.Rename(name, renamed)
		r.report.Renamed++
	}

	if super.Heritage == "" {
		return nil
	}
	grand := r.findSuperclass(super.Heritage, r.scopes[super])
	if grand == nil || seen[grand] {
		return nil
	}
	return r.handle(c, grand, seen)
}

// findSuperclass resolves the class named by the "extends" part of a
// heritage clause. The first path segment is looked up in the roots and
// then in relative; later segments in the nested classes found so far.
func (r *heritageResolver) findSuperclass(heritage string, relative *Classes) *Class {
	name := superclassName(heritage)
	if name == "" {
		return nil
	}
	var c *Class
	scope := r.model.Classes
	for i, part := range strings.Split(name, ".") {
		scopes := []*Classes{scope}
		if i == 0 && relative != nil && relative != scope {
			scopes = append(scopes, relative)
		}
		c = lookupSegment(part, scopes)
		if c == nil {
			return nil
		}
		scope = c.Classes
	}
	return c
}

func lookupSegment(part string, scopes []*Classes) *Class {
	for _, transform := range NameTransforms {
		candidate := transform(part)
		for _, s := range scopes {
			if c := s.Get(candidate); c != nil {
				return c
			}
		}
	}
	return nil
}

func superclassName(heritage string) string {
	idx := strings.Index(heritage, "extends ")
	if idx < 0 {
		return ""
	}
	fields := strings.Fields(heritage[idx+len("extends "):])
	if len(fields) == 0 {
		return ""
	}
	name := fields[0]
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}
	return strings.TrimRight(name, ",{")
}

type memberAttrs struct {
	typ       string
	comment   string
	metadata  []string
	modifiers []Modifier
}

func attrsOf(m Member) memberAttrs {
	switch m := m.(type) {
	case *Field:
		return memberAttrs{m.Type, m.Comment, m.Metadata, m.Modifiers}
	case *Method:
		if p := m.Primary(); p != nil {
			return memberAttrs{p.Type, p.Comment, p.Metadata, p.Modifiers}
		}
	}
	return memberAttrs{}
}

func sameMember(a, b Member) bool {
	// A field is compared on its attributes alone, whatever b is.
	switch a := a.(type) {
	case *Method:
		bm, ok := b.(*Method)
		if !ok || !sameParameterTypes(a.Primary(), bm.Primary()) {
			return false
		}
	}
	x, y := attrsOf(a), attrsOf(b)
	return x.typ == y.typ &&
		x.comment == y.comment &&
		sameSet(x.metadata, y.metadata) &&
		sameSet(x.modifiers, y.modifiers)
}

func sameParameterTypes(a, b *Signature) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Parameters) != len(b.Parameters) {
		return false
	}
	for i := range a.Parameters {
		if a.Parameters[i].Type != b.Parameters[i].Type {
			return false
		}
	}
	return true
}

func sameSet[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for _, x := range a {
		found := false
		for _, y := range b {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
