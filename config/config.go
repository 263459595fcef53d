// Package config reads and validates table profiles.
// A profile is a YAML file declaring the shape of a table
// (bucket count, key and value sizes) and the hash function
// and dump formatter to apply.
package config

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/graph-guard/chmap"
	yaml "gopkg.in/yaml.v3"
)

const ProfileFile1 = "profile.yaml"
const ProfileFile2 = "profile.yml"

// Hash function identifiers accepted in profiles.
const (
	HashXXH3  = "xxh3"
	HashXXH64 = "xxh64"
)

// Formatter identifiers accepted in profiles.
const (
	FormatQuoted = "quoted"
	FormatHex    = "hex"
)

// Profile declares the fixed configuration of a table.
type Profile struct {
	Buckets   int
	KeySize   int
	ValueSize int
	Hash      string
	Seed      uint64
	Format    string
}

// Default returns the profile applied when none is provided:
// 16 buckets, 16-byte keys, 36-byte values,
// unseeded XXH3 and quoted formatting.
func Default() *Profile {
	return &Profile{
		Buckets:   16,
		KeySize:   16,
		ValueSize: 36,
		Hash:      HashXXH3,
		Format:    FormatQuoted,
	}
}

// HashFunc returns the hash function the profile declares.
func (p *Profile) HashFunc() chmap.HashFunc {
	switch {
	case p.Hash == HashXXH64:
		return chmap.HashXXH64(p.Seed)
	case p.Seed != 0:
		return chmap.HashXXH3Seeded(p.Seed)
	}
	return chmap.HashXXH3
}

// FormatFunc returns the dump formatter the profile declares.
func (p *Profile) FormatFunc() chmap.FormatFunc {
	if p.Format == FormatHex {
		return chmap.FormatHex
	}
	return chmap.FormatQuoted
}

// NewTable creates a table from the profile
// comparing keys lexicographically byte-wise.
func (p *Profile) NewTable() (*chmap.Table, error) {
	return chmap.New(
		p.Buckets,
		p.HashFunc(),
		chmap.CompareBytes,
		p.FormatFunc(),
		p.KeySize,
		p.ValueSize,
	)
}

// Read reads and validates the profile in dirPath expecting either
// profile.yaml or profile.yml to exist, but not both.
func Read(filesystem fs.FS, dirPath string) (*Profile, error) {
	d, err := fs.ReadDir(filesystem, dirPath)
	if err != nil {
		return nil, fmt.Errorf("reading profile directory: %w", err)
	}

	var profileFile string
	for _, o := range d {
		n := o.Name()
		if o.IsDir() || (n != ProfileFile1 && n != ProfileFile2) {
			continue
		}
		if profileFile != "" {
			return nil, &ErrorConflict{Items: []string{
				ProfileFile1,
				ProfileFile2,
			}}
		}
		profileFile = n
	}
	if profileFile == "" {
		return nil, &ErrorMissing{
			FilePath: filepath.Join(dirPath, ProfileFile1),
		}
	}

	p := filepath.Join(dirPath, profileFile)
	f, err := filesystem.Open(p)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	defer f.Close()

	var c profileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, &ErrorIllegal{
			FilePath: p,
			Feature:  "syntax",
			Message:  err.Error(),
		}
	}

	prof := &Profile{
		Hash:   c.Hash,
		Seed:   c.Seed,
		Format: c.Format,
	}

	if c.Buckets == nil {
		return nil, &ErrorMissing{FilePath: p, Feature: "buckets"}
	}
	if *c.Buckets < 1 {
		return nil, &ErrorIllegal{
			FilePath: p,
			Feature:  "buckets",
			Message:  "must be positive",
		}
	}
	prof.Buckets = *c.Buckets

	if c.KeySize == nil {
		return nil, &ErrorMissing{FilePath: p, Feature: "key-size"}
	}
	if *c.KeySize < 1 {
		return nil, &ErrorIllegal{
			FilePath: p,
			Feature:  "key-size",
			Message:  "must be positive",
		}
	}
	prof.KeySize = *c.KeySize

	if c.ValueSize == nil {
		return nil, &ErrorMissing{FilePath: p, Feature: "value-size"}
	}
	if *c.ValueSize < 1 {
		return nil, &ErrorIllegal{
			FilePath: p,
			Feature:  "value-size",
			Message:  "must be positive",
		}
	}
	prof.ValueSize = *c.ValueSize

	switch c.Hash {
	case "":
		prof.Hash = HashXXH3
	case HashXXH3, HashXXH64:
	default:
		return nil, &ErrorIllegal{
			FilePath: p,
			Feature:  "hash",
			Message: fmt.Sprintf(
				"must be one of: %s, %s", HashXXH3, HashXXH64,
			),
		}
	}

	switch c.Format {
	case "":
		prof.Format = FormatQuoted
	case FormatQuoted, FormatHex:
	default:
		return nil, &ErrorIllegal{
			FilePath: p,
			Feature:  "format",
			Message: fmt.Sprintf(
				"must be one of: %s, %s", FormatQuoted, FormatHex,
			),
		}
	}

	return prof, nil
}

type profileConfig struct {
	Buckets   *int   `yaml:"buckets"`
	KeySize   *int   `yaml:"key-size"`
	ValueSize *int   `yaml:"value-size"`
	Hash      string `yaml:"hash"`
	Seed      uint64 `yaml:"seed"`
	Format    string `yaml:"format"`
}

type ErrorConflict struct {
	Items []string
}

func (e ErrorConflict) Error() string {
	var b strings.Builder
	b.WriteString("conflict between: ")
	for i := range e.Items {
		b.WriteString(e.Items[i])
		if i+1 < len(e.Items) {
			b.WriteString(", ")
		}
	}
	return b.String()
}

type ErrorMissing struct {
	FilePath string
	Feature  string
}

func (e ErrorMissing) Error() string {
	var b strings.Builder
	if e.Feature == "" {
		b.Grow(len("missing ") + len(e.FilePath))
		b.WriteString("missing ")
		b.WriteString(e.FilePath)
		return b.String()
	}
	b.Grow(len("missing ") + len(e.Feature) + len(" in ") + len(e.FilePath))
	b.WriteString("missing ")
	b.WriteString(e.Feature)
	b.WriteString(" in ")
	b.WriteString(e.FilePath)
	return b.String()
}

type ErrorIllegal struct {
	FilePath string
	Feature  string
	Message  string
}

func (e ErrorIllegal) Error() string {
	var b strings.Builder
	b.Grow(len("illegal ") +
		len(e.Feature) +
		len(" in ") +
		len(e.FilePath) +
		len(": ") +
		len(e.Message))
	b.WriteString("illegal ")
	b.WriteString(e.Feature)
	b.WriteString(" in ")
	b.WriteString(e.FilePath)
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}
