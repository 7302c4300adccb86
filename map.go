package fsa

// Hashable is a key of HashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap is a chained hash table keyed on Hashable values. It is not safe for concurrent use.
type HashMap[T any] struct {
	buckets    []*entry[T]
	size       int
	mask       uint64
	emptyValue T
	loadFactor float64
}

type entry[T any] struct {
	key   Hashable
	value T
	next  *entry[T]
}

type hashMapOptions struct {
	capacity   int
	loadFactor float64
}

// HashMapOption configures a HashMap.
type HashMapOption func(*hashMapOptions)

// WithCapacity Sets the initial number of buckets, rounded up to a power of two.
func WithCapacity(capacity int) HashMapOption {
	return func(o *hashMapOptions) {
		o.capacity = capacity
	}
}

// NewHashMap Creates an empty table.
func NewHashMap[T any](opts ...HashMapOption) *HashMap[T] {
	o := &hashMapOptions{
		capacity:   1,
		loadFactor: 0.75,
	}
	for _, fn := range opts {
		fn(o)
	}

	realCap := 1
	for realCap < o.capacity {
		realCap <<= 1
	}

	return &HashMap[T]{
		buckets:    make([]*entry[T], realCap),
		mask:       uint64(realCap - 1),
		loadFactor: o.loadFactor,
	}
}

// Set Inserts or replaces the value stored under key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	m.buckets[index] = &entry[T]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > m.loadFactor {
		m.resize()
	}
}

// Get Returns the value stored under key.
func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	return m.emptyValue, false
}

func (m *HashMap[T]) resize() {
	newCap := len(m.buckets) << 1
	newBuckets := make([]*entry[T], newCap)
	newMask := uint64(newCap - 1)

	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			newIndex := e.key.Hash() & newMask
			newBuckets[newIndex] = &entry[T]{
				key:   e.key,
				value: e.value,
				next:  newBuckets[newIndex],
			}
		}
	}

	m.buckets = newBuckets
	m.mask = newMask
}

// Size Returns the number of keys.
func (m *HashMap[T]) Size() int {
	return m.size
}
