package ll

import (
	"bytes"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// SymbolSet is a set of grammar symbols. Iteration follows insertion order,
// which makes diagnostic output stable. For canonical comparison use Sorted().
//
// Unusually, Add and Union are destructive!
type SymbolSet struct {
	set *linkedhashset.Set
}

// NewSymbolSet creates a set from a list of symbols.
func NewSymbolSet(syms ...*Symbol) *SymbolSet {
	S := &SymbolSet{set: linkedhashset.New()}
	for _, A := range syms {
		S.set.Add(A)
	}
	return S
}

// Add inserts a symbol and reports whether it has not been present before.
func (S *SymbolSet) Add(A *Symbol) bool {
	if S.set.Contains(A) {
		return false
	}
	S.set.Add(A)
	return true
}

// Contains checks for set membership.
func (S *SymbolSet) Contains(A *Symbol) bool {
	if S == nil {
		return false
	}
	return S.set.Contains(A)
}

// Union adds all symbols of other to S. It returns true if S changed.
func (S *SymbolSet) Union(other *SymbolSet) bool {
	if other == nil {
		return false
	}
	changed := false
	for _, A := range other.Symbols() {
		if S.Add(A) {
			changed = true
		}
	}
	return changed
}

// Without returns a copy of S with A removed.
func (S *SymbolSet) Without(A *Symbol) *SymbolSet {
	C := NewSymbolSet()
	for _, B := range S.Symbols() {
		if B != A {
			C.set.Add(B)
		}
	}
	return C
}

// Copy returns a shallow copy of S.
func (S *SymbolSet) Copy() *SymbolSet {
	return NewSymbolSet(S.Symbols()...)
}

// Size returns the number of symbols in S.
func (S *SymbolSet) Size() int {
	if S == nil {
		return 0
	}
	return S.set.Size()
}

// Empty is true for the empty set.
func (S *SymbolSet) Empty() bool {
	return S.Size() == 0
}

// Symbols returns the members of S in insertion order.
func (S *SymbolSet) Symbols() []*Symbol {
	if S == nil {
		return nil
	}
	syms := make([]*Symbol, 0, S.set.Size())
	it := S.set.Iterator()
	for it.Next() {
		syms = append(syms, it.Value().(*Symbol))
	}
	return syms
}

// Sorted returns the members of S ordered lexicographically by name.
func (S *SymbolSet) Sorted() []*Symbol {
	sorted := treeset.NewWith(symbolComparator)
	for _, A := range S.Symbols() {
		sorted.Add(A)
	}
	syms := make([]*Symbol, 0, sorted.Size())
	for _, x := range sorted.Values() {
		syms = append(syms, x.(*Symbol))
	}
	return syms
}

// Names returns the names of the members of S in insertion order.
func (S *SymbolSet) Names() []string {
	names := make([]string, 0, S.Size())
	for _, A := range S.Symbols() {
		names = append(names, A.Name)
	}
	return names
}

// Equals compares two sets, disregarding order.
func (S *SymbolSet) Equals(other *SymbolSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	for _, A := range S.Symbols() {
		if !other.Contains(A) {
			return false
		}
	}
	return true
}

func (S *SymbolSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, A := range S.Symbols() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(A.Name)
	}
	b.WriteString("}")
	return b.String()
}

// We need this for sorted views. It sorts symbols by name, with ties broken
// by kind (the reserved symbols may share a name with a grammar terminal).
func symbolComparator(s1, s2 interface{}) int {
	A := s1.(*Symbol)
	B := s2.(*Symbol)
	if c := utils.StringComparator(A.Name, B.Name); c != 0 {
		return c
	}
	return utils.IntComparator(int(A.Kind), int(B.Kind))
}

// === Families of sets ======================================================

// SymbolSets maps symbols to symbol sets, e.g. FIRST(A) for every A.
// Entries are enumerated in registration order.
type SymbolSets struct {
	Name string
	sets *linkedhashmap.Map
}

func newSymbolSets(name string) *SymbolSets {
	return &SymbolSets{Name: name, sets: linkedhashmap.New()}
}

// put registers a set for A, replacing an existing one.
func (m *SymbolSets) put(A *Symbol, S *SymbolSet) {
	m.sets.Put(A, S)
}

// set returns the live set for A, or nil.
func (m *SymbolSets) set(A *Symbol) *SymbolSet {
	if x, ok := m.sets.Get(A); ok {
		return x.(*SymbolSet)
	}
	return nil
}

// Lookup returns a copy of the set registered for A.
func (m *SymbolSets) Lookup(A *Symbol) (*SymbolSet, bool) {
	S := m.set(A)
	if S == nil {
		return nil, false
	}
	return S.Copy(), true
}

// Get returns a copy of the set registered for A. If none is registered,
// an empty set is returned.
func (m *SymbolSets) Get(A *Symbol) *SymbolSet {
	if S, ok := m.Lookup(A); ok {
		return S
	}
	return NewSymbolSet()
}

// Symbols returns all keys in registration order.
func (m *SymbolSets) Symbols() []*Symbol {
	keys := m.sets.Keys()
	syms := make([]*Symbol, len(keys))
	for i, k := range keys {
		syms[i] = k.(*Symbol)
	}
	return syms
}

// Size returns the number of registered sets.
func (m *SymbolSets) Size() int {
	return m.sets.Size()
}

// Each calls f for every entry in registration order. Sets passed to f must
// not be modified.
func (m *SymbolSets) Each(f func(A *Symbol, S *SymbolSet)) {
	it := m.sets.Iterator()
	for it.Next() {
		f(it.Key().(*Symbol), it.Value().(*SymbolSet))
	}
}
