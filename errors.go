package chmap

import "errors"

var (
	// ErrInvalidConfig is returned by New when the table parameters
	// are out of range or a behavior function is missing.
	ErrInvalidConfig = errors.New("invalid table config")

	// ErrNilArgument is returned when a required argument is nil.
	ErrNilArgument = errors.New("nil argument")

	// ErrKeyNotFound is returned when no entry matches the given key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrDuplicateKey is returned by Insert when an entry
	// with an equal key already exists.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrKeySize is returned when a key to be stored
	// doesn't match the table's key size.
	ErrKeySize = errors.New("invalid key size")

	// ErrValueSize is returned when a value to be stored
	// doesn't match the table's value size.
	ErrValueSize = errors.New("invalid value size")
)
