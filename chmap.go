// package chmap provides a fixed-bucket hashmap implementation
// with collision-safe separate chaining.
// The bucket array size is chosen at construction and never resized,
// colliding entries are chained off their bucket with the most
// recently inserted entry first. Keys and values are fixed-size
// byte records owned by the table and opaque to it beyond hashing,
// comparison and dump formatting, which are provided by the caller
// as functions. Ready-made implementations based on
// github.com/zeebo/xxh3 and github.com/pierrec/xxHash are included.
package chmap

import (
	"github.com/google/go-cmp/cmp"
	"github.com/yourbasic/bit"
)

type entry struct {
	Key   []byte
	Value []byte
	Next  *entry
}

// Table is a hashmap with a fixed number of buckets.
// It's not safe for concurrent use and must be protected
// by a mutex when shared between goroutines.
type Table struct {
	buckets   []*entry
	touched   *bit.Set
	size      int
	hash      HashFunc
	compare   CompareFunc
	format    FormatFunc
	keySize   int
	valueSize int
}

// New creates a new table instance with numBuckets buckets storing
// keys of keySize and values of valueSize bytes.
// Returns ErrInvalidConfig if numBuckets, keySize or valueSize
// is smaller than 1 or any of hash, compare and format is nil.
func New(
	numBuckets int,
	hash HashFunc,
	compare CompareFunc,
	format FormatFunc,
	keySize, valueSize int,
) (*Table, error) {
	if numBuckets < 1 || keySize < 1 || valueSize < 1 {
		return nil, ErrInvalidConfig
	}
	if hash == nil || compare == nil || format == nil {
		return nil, ErrInvalidConfig
	}
	return &Table{
		buckets:   make([]*entry, numBuckets),
		touched:   bit.New(),
		hash:      hash,
		compare:   compare,
		format:    format,
		keySize:   keySize,
		valueSize: valueSize,
	}, nil
}

// bucket reduces the key's hash modulo the bucket count.
func (t *Table) bucket(key []byte) int {
	return int(t.hash(key) % uint64(len(t.buckets)))
}

// Insert copies key and value into a new entry at the head of the
// chain at bucket hash(key) mod NumBuckets().
// Returns ErrDuplicateKey if an entry with an equal key already
// exists, use Replace to overwrite values.
func (t *Table) Insert(key, value []byte) error {
	if t == nil || key == nil || value == nil {
		return ErrNilArgument
	}
	if len(key) != t.keySize {
		return ErrKeySize
	}
	if len(value) != t.valueSize {
		return ErrValueSize
	}
	b := t.bucket(key)
	for e := t.buckets[b]; e != nil; e = e.Next {
		if t.compare(key, e.Key) == 0 {
			return ErrDuplicateKey
		}
	}
	e := &entry{
		Key:   make([]byte, t.keySize),
		Value: make([]byte, t.valueSize),
		Next:  t.buckets[b],
	}
	copy(e.Key, key)
	copy(e.Value, value)
	t.buckets[b] = e
	t.touched.Add(b)
	t.size++
	return nil
}

// Search returns (value, true) if an entry with an equal key exists,
// otherwise returns (nil, false). The returned value is a copy and
// safe to retain and modify.
func (t *Table) Search(key []byte) (value []byte, ok bool) {
	if t == nil || key == nil || len(key) != t.keySize {
		return nil, false
	}
	for e := t.buckets[t.bucket(key)]; e != nil; e = e.Next {
		if t.compare(key, e.Key) == 0 {
			value = make([]byte, len(e.Value))
			copy(value, e.Value)
			return value, true
		}
	}
	return nil, false
}

// SearchFn calls fn with the stored value and returns true
// if an entry with an equal key exists, otherwise doesn't call fn
// and returns false.
//
// WARNING: fn borrows the value, it must not be modified and
// must not be retained after fn returns!
func (t *Table) SearchFn(key []byte, fn func(value []byte)) (ok bool) {
	if t == nil || key == nil || fn == nil || len(key) != t.keySize {
		return false
	}
	for e := t.buckets[t.bucket(key)]; e != nil; e = e.Next {
		if t.compare(key, e.Key) == 0 {
			fn(e.Value)
			return true
		}
	}
	return false
}

// Replace copies newValue over the value of the entry with an equal
// key. The entry's key and chain position remain unchanged.
// Returns ErrKeyNotFound if no entry matches.
func (t *Table) Replace(key, newValue []byte) error {
	if t == nil || key == nil || newValue == nil {
		return ErrNilArgument
	}
	if len(newValue) != t.valueSize {
		return ErrValueSize
	}
	if len(key) != t.keySize {
		return ErrKeyNotFound
	}
	for e := t.buckets[t.bucket(key)]; e != nil; e = e.Next {
		if t.compare(key, e.Key) == 0 {
			copy(e.Value, newValue)
			return nil
		}
	}
	return ErrKeyNotFound
}

// Remove unlinks the entry with an equal key from its chain.
// The removed bucket keeps its touched state, see Touched.
// Returns ErrKeyNotFound if no entry matches.
func (t *Table) Remove(key []byte) error {
	if t == nil || key == nil {
		return ErrNilArgument
	}
	if len(key) != t.keySize {
		return ErrKeyNotFound
	}
	b := t.bucket(key)
	var prev *entry
	for e := t.buckets[b]; e != nil; prev, e = e, e.Next {
		if t.compare(key, e.Key) != 0 {
			continue
		}
		if prev == nil {
			// Head of the chain
			t.buckets[b] = e.Next
		} else {
			prev.Next = e.Next
		}
		e.Key, e.Value, e.Next = nil, nil, nil
		t.size--
		return nil
	}
	return ErrKeyNotFound
}

// Len returns the number of stored entries.
func (t *Table) Len() int { return t.size }

// NumBuckets returns the fixed number of buckets.
func (t *Table) NumBuckets() int { return len(t.buckets) }

// KeySize returns the fixed key size in bytes.
func (t *Table) KeySize() int { return t.keySize }

// ValueSize returns the fixed value size in bytes.
func (t *Table) ValueSize() int { return t.valueSize }

// ChainLen returns the number of entries chained at bucket.
// Returns 0 if bucket is out of range.
func (t *Table) ChainLen(bucket int) int {
	if bucket < 0 || bucket >= len(t.buckets) {
		return 0
	}
	n := 0
	for e := t.buckets[bucket]; e != nil; e = e.Next {
		n++
	}
	return n
}

// Touched returns true if bucket ever held an entry.
// A touched bucket with an empty chain is distinct from
// a bucket no entry ever hashed into.
func (t *Table) Touched(bucket int) bool {
	return bucket >= 0 && bucket < len(t.buckets) &&
		t.touched.Contains(bucket)
}

// Visit calls fn for every stored entry in bucket order,
// chains are traversed head to tail.
// Returns immediately if fn returns true.
//
// WARNING: fn borrows key and value, they must not be modified and
// must not be retained after fn returns!
func (t *Table) Visit(fn func(key, value []byte) (stop bool)) {
	for i := range t.buckets {
		for e := t.buckets[i]; e != nil; e = e.Next {
			if fn(e.Key, e.Value) {
				return
			}
		}
	}
}

// VisitAll calls fn for every stored entry in bucket order,
// chains are traversed head to tail.
//
// WARNING: fn borrows key and value, they must not be modified and
// must not be retained after fn returns!
func (t *Table) VisitAll(fn func(key, value []byte)) {
	t.Visit(func(key, value []byte) (stop bool) {
		fn(key, value)
		return false
	})
}

// VisitBucket calls fn for every entry chained at bucket,
// head to tail. Returns immediately if fn returns true.
// Noop if bucket is out of range.
//
// WARNING: fn borrows key and value, they must not be modified and
// must not be retained after fn returns!
func (t *Table) VisitBucket(
	bucket int,
	fn func(key, value []byte) (stop bool),
) {
	if bucket < 0 || bucket >= len(t.buckets) {
		return
	}
	for e := t.buckets[bucket]; e != nil; e = e.Next {
		if fn(e.Key, e.Value) {
			return
		}
	}
}

// Equal returns true if both tables store equal entries in equal
// chain positions and share the same bucket count, sizes and
// touched state. The behavior functions are not compared.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.size == o.size &&
		t.keySize == o.keySize &&
		t.valueSize == o.valueSize &&
		t.touched.Equal(o.touched) &&
		cmp.Equal(t.buckets, o.buckets)
}
