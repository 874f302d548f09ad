package automaton

// Hashable is implemented by keys of HashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap is a chained hash table keyed by Hashable values. It is not safe for concurrent use.
type HashMap[T any] struct {
	buckets []*entry[T]
	order   []*entry[T]
	mask    uint64
}

// loadFactor is the entries-per-bucket ratio above which the table grows.
const loadFactor = 0.75

type entry[T any] struct {
	key   Hashable
	value T
	next  *entry[T]
}

type hashMapOptions struct {
	capacity int
}

type HashMapOption func(*hashMapOptions)

// WithCapacity sets the initial number of buckets, rounded up to a power of two.
func WithCapacity(capacity int) HashMapOption {
	return func(o *hashMapOptions) {
		o.capacity = capacity
	}
}

func NewHashMap[T any](opts ...HashMapOption) *HashMap[T] {
	o := &hashMapOptions{capacity: 1}
	for _, opt := range opts {
		opt(o)
	}

	realCap := 1
	for realCap < o.capacity {
		realCap <<= 1
	}

	return &HashMap[T]{
		buckets: make([]*entry[T], realCap),
		mask:    uint64(realCap - 1),
	}
}

// Set inserts or replaces the value stored under key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	index := key.Hash() & m.mask
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	e := &entry[T]{key: key, value: value, next: m.buckets[index]}
	m.buckets[index] = e
	m.order = append(m.order, e)

	if float64(len(m.order))/float64(len(m.buckets)) > loadFactor {
		m.resize()
	}
}

// Get returns the value stored under key.
func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	index := key.Hash() & m.mask
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	var zero T
	return zero, false
}

func (m *HashMap[T]) resize() {
	newCap := len(m.buckets) << 1
	m.buckets = make([]*entry[T], newCap)
	m.mask = uint64(newCap - 1)

	for _, e := range m.order {
		index := e.key.Hash() & m.mask
		e.next = m.buckets[index]
		m.buckets[index] = e
	}
}
