package haxe

import "github.com/cockroachdb/errors"

// StaticPrefix is prepended to the name of a method synthesized from the
// static overloads of a mixed overload set.
const StaticPrefix = "STATIC_"

// PartitionStatics splits every method whose overloads mix static and
// instance signatures. The instance signatures stay under the original
// name; the static ones move, in order, to STATIC_<name> with a native
// alias back to the original name. It returns the number of split methods.
func (m *Model) PartitionStatics() (int, error) {
	var split int
	var err error
	m.Walk(func(c *Class) {
		if err != nil {
			return
		}
		var n int
		n, err = partitionClass(c)
		split += n
	})
	return split, err
}

func partitionClass(c *Class) (int, error) {
	var split int
	for _, member := range c.Members.All() {
		method, ok := member.(*Method)
		if !ok {
			continue
		}
		var statics, instance []*Signature
		for _, sig := range method.Overloads {
			if sig.IsStatic() {
				statics = append(statics, sig)
			} else {
				instance = append(instance, sig)
			}
		}
		if len(statics) == 0 || len(instance) == 0 {
			continue
		}

		name := StaticPrefix + method.Name
		if c.Members.Has(name) {
			return split, errors.Wrapf(ErrNameCollision,
				"converting to custom name %s, but class %s already contains such member", name, c.FullPath)
		}
		for _, sig := range statics {
			sig.Metadata = append(sig.Metadata, NativeAlias(method.Name))
		}
		method.Overloads = instance
		c.Members.Set(name, &Method{Name: name, Overloads: statics})
		log.Debugf("split static overloads of %s.%s into %s", c.FullPath, method.Name, name)
		split++
	}
	return split, nil
}
