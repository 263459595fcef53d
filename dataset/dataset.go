// Package dataset loads and generates raw table records.
package dataset

import (
	"fmt"
	"io/fs"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// Record is a raw key/value pair to be stored in a table.
type Record struct {
	Key   []byte
	Value []byte
}

// Read reads records from the JSON dataset at path expecting
// an array of objects with "key" and "value" string fields.
func Read(filesystem fs.FS, path string) ([]Record, error) {
	b, err := fs.ReadFile(filesystem, path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	if !gjson.ValidBytes(b) {
		return nil, fmt.Errorf("malformed dataset %q", path)
	}
	d := gjson.ParseBytes(b)
	if !d.IsArray() {
		return nil, fmt.Errorf(
			"malformed dataset %q: expected an array", path,
		)
	}
	records := []Record{}
	d.ForEach(func(_, item gjson.Result) bool {
		records = append(records, Record{
			Key:   []byte(item.Get("key").String()),
			Value: []byte(item.Get("value").String()),
		})
		return true
	})
	return records, nil
}

// Generate generates n random records with keys of keySize
// and values of valueSize bytes.
func Generate(n, keySize, valueSize int) []Record {
	records := make([]Record, n)
	for i := range records {
		records[i] = Record{
			Key:   RandomKey(keySize),
			Value: RandomValue(valueSize),
		}
	}
	return records
}

// RandomKey returns a key of size n filled from random UUIDs.
func RandomKey(n int) []byte {
	b := make([]byte, n)
	for i := 0; i < n; {
		u := uuid.New()
		i += copy(b[i:], u[:])
	}
	return b
}

// RandomValue returns a printable value of size n filled from
// random UUID strings.
func RandomValue(n int) []byte {
	b := make([]byte, n)
	for i := 0; i < n; {
		i += copy(b[i:], uuid.New().String())
	}
	return b
}
