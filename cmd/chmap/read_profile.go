package main

import (
	"fmt"
	"io"
	"os"

	"github.com/graph-guard/chmap/config"
)

// ReadProfile reads the profile from the directory at dirPath,
// falling back to the built-in default profile if dirPath is empty.
// Errors are printed to w returning nil.
func ReadProfile(w io.Writer, dirPath string) *config.Profile {
	if dirPath == "" {
		return config.Default()
	}
	p, err := config.Read(os.DirFS(dirPath), ".")
	if err != nil {
		fmt.Fprintf(w, "reading profile: %s\n", err)
		return nil
	}
	return p
}
