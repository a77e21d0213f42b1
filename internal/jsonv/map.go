package jsonv

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Map is a JSON object that preserves member order.
// Lookups are linear; records have a handful of keys per object.
type Map struct {
	members []Member
}

// NewMap creates an empty object with room for capacity members.
func NewMap(capacity int) *Map {
	return &Map{members: make([]Member, 0, capacity)}
}

// Len returns the number of members.
func (m *Map) Len() int { return len(m.members) }

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	if i := m.index(key); i >= 0 {
		return m.members[i].Value, true
	}
	return Value{}, false
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool { return m.index(key) >= 0 }

// Set replaces the value under key in place, or appends a new member.
func (m *Map) Set(key string, v Value) {
	if i := m.index(key); i >= 0 {
		m.members[i].Value = v
		return
	}
	m.members = append(m.members, Member{Key: key, Value: v})
}

// Delete removes key and reports whether it was present.
// The relative order of the remaining members is kept.
func (m *Map) Delete(key string) bool {
	i := m.index(key)
	if i < 0 {
		return false
	}
	m.members = append(m.members[:i], m.members[i+1:]...)
	return true
}

// Keys returns the keys in iteration order.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.members))
	for i, mem := range m.members {
		keys[i] = mem.Key
	}
	return keys
}

// Members returns the members in iteration order. The slice is shared with m.
func (m *Map) Members() []Member { return m.members }

// Swap exchanges the positions of the members at i and j.
func (m *Map) Swap(i, j int) {
	m.members[i], m.members[j] = m.members[j], m.members[i]
}

func (m *Map) index(key string) int {
	for i := range m.members {
		if m.members[i].Key == key {
			return i
		}
	}
	return -1
}

func (m *Map) appendJSON(dst []byte) []byte {
	dst = append(dst, '{')
	for i, mem := range m.members {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendString(dst, mem.Key)
		dst = append(dst, ':')
		dst = mem.Value.AppendJSON(dst)
	}
	return append(dst, '}')
}

// WalkObjects calls fn for every object in the tree rooted at v, parents before
// children. Children are visited in the member order left by fn, so fn may
// reorder the members it is given. Arrays and scalars are not descended into.
func WalkObjects(v Value, fn func(*Map)) {
	m, ok := v.AsObject()
	if !ok {
		return
	}
	fn(m)
	for _, mem := range m.members {
		WalkObjects(mem.Value, fn)
	}
}
