package haxe

// Members is an insertion-ordered map of member name to Member.
type Members struct {
	order []string
	index map[string]Member
}

func NewMembers() *Members {
	return &Members{index: make(map[string]Member)}
}

func (ms *Members) Len() int { return len(ms.order) }

func (ms *Members) Get(name string) Member {
	return ms.index[name]
}

func (ms *Members) Has(name string) bool {
	_, ok := ms.index[name]
	return ok
}

// Set stores m under name. An existing key keeps its position.
func (ms *Members) Set(name string, m Member) {
	if _, ok := ms.index[name]; !ok {
		ms.order = append(ms.order, name)
	}
	ms.index[name] = m
}

func (ms *Members) Delete(name string) {
	if _, ok := ms.index[name]; !ok {
		return
	}
	delete(ms.index, name)
	for i, n := range ms.order {
		if n == name {
			ms.order = append(ms.order[:i:i], ms.order[i+1:]...)
			break
		}
	}
}

// Rename moves the member stored under from to the key to, keeping its
// position, and updates the member's own name. It reports false when from
// is missing or to is taken.
func (ms *Members) Rename(from, to string) bool {
	m, ok := ms.index[from]
	if !ok {
		return false
	}
	if _, taken := ms.index[to]; taken {
		return false
	}
	delete(ms.index, from)
	ms.index[to] = m
	for i, n := range ms.order {
		if n == from {
			ms.order[i] = to
			break
		}
	}
	m.setMemberName(to)
	return true
}

func (ms *Members) Names() []string {
	names := make([]string, len(ms.order))
	copy(names, ms.order)
	return names
}

func (ms *Members) All() []Member {
	all := make([]Member, 0, len(ms.order))
	for _, n := range ms.order {
		all = append(all, ms.index[n])
	}
	return all
}

// Classes is an insertion-ordered map of declared class name to Class.
type Classes struct {
	order []string
	index map[string]*Class
}

func NewClasses() *Classes {
	return &Classes{index: make(map[string]*Class)}
}

func (cs *Classes) Len() int { return len(cs.order) }

func (cs *Classes) Get(name string) *Class {
	return cs.index[name]
}

func (cs *Classes) add(c *Class) {
	if _, ok := cs.index[c.Name]; !ok {
		cs.order = append(cs.order, c.Name)
	}
	cs.index[c.Name] = c
}

func (cs *Classes) All() []*Class {
	all := make([]*Class, 0, len(cs.order))
	for _, n := range cs.order {
		all = append(all, cs.index[n])
	}
	return all
}
