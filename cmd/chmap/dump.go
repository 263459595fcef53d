package main

import (
	"fmt"
	"io"

	"github.com/graph-guard/chmap/cli"
)

// dump builds a table from the profile, fills it with records
// and prints its rendering to w.
func dump(w io.Writer, c cli.CommandDump) {
	p := ReadProfile(w, c.ProfilePath)
	if p == nil {
		return
	}

	t, err := p.NewTable()
	if err != nil {
		fmt.Fprintf(w, "creating table: %s\n", err)
		return
	}

	records, ok := ReadRecords(w, p, c.DataPath, c.Records)
	if !ok {
		return
	}

	for i := range records {
		if err := t.Insert(records[i].Key, records[i].Value); err != nil {
			fmt.Fprintf(w, "inserting record %d: %s\n", i, err)
		}
	}

	fmt.Fprintln(w, t)
}
