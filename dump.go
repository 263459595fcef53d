package chmap

import (
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// String renders the table as one line per bucket index listing
// the formatted entries of the bucket's chain head to tail.
// Empty buckets render as an index with no entries.
func (t *Table) String() string {
	if t == nil {
		return "<nil>"
	}
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	b.WriteString("N\tB[n]\n----------------")
	for i := range t.buckets {
		b.WriteString("\n")
		b.WriteString(strconv.Itoa(i))
		b.WriteString("\t")
		for e := t.buckets[i]; e != nil; e = e.Next {
			if e != t.buckets[i] {
				b.WriteString(" -> ")
			}
			b.WriteString(t.format(e.Key, e.Value))
		}
	}
	return b.String()
}
