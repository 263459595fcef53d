package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/graph-guard/chmap/config"
	"github.com/graph-guard/chmap/dataset"
)

// ReadRecords reads the dataset from the file at path, falling back to
// n generated records fitting the profile if path is empty.
// Errors are printed to w returning ok=false.
func ReadRecords(
	w io.Writer,
	p *config.Profile,
	path string,
	n int,
) (records []dataset.Record, ok bool) {
	if path == "" {
		return dataset.Generate(n, p.KeySize, p.ValueSize), true
	}
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	records, err := dataset.Read(os.DirFS(dir), file)
	if err != nil {
		fmt.Fprintf(w, "%s\n", err)
		return nil, false
	}
	return records, true
}
