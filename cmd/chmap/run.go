package main

import (
	"encoding/hex"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/graph-guard/chmap/cli"
	"github.com/graph-guard/chmap/dataset"
	"github.com/graph-guard/chmap/pkg/math"
	"github.com/phuslu/log"
)

// run builds a table from the profile and runs an insert, search,
// replace and remove workload against it, reporting statistics.
func run(w io.Writer, c cli.CommandRun) {
	p := ReadProfile(w, c.ProfilePath)
	if p == nil {
		return
	}

	l := log.Logger{
		Level:  log.InfoLevel,
		Writer: &log.IOWriter{Writer: w},
	}
	if c.Verbose {
		l.Level = log.DebugLevel
	}

	t, err := p.NewTable()
	if err != nil {
		l.Error().Err(err).Msg("creating table")
		return
	}

	records, ok := ReadRecords(w, p, c.DataPath, c.Records)
	if !ok {
		return
	}
	l.Info().
		Int("records", len(records)).
		Int("buckets", t.NumBuckets()).
		Int("key_size", t.KeySize()).
		Int("value_size", t.ValueSize()).
		Str("hash", p.Hash).
		Msg("table ready")

	inserted := 0
	for i := range records {
		if err := t.Insert(records[i].Key, records[i].Value); err != nil {
			l.Warn().
				Err(err).
				Str("key", hex.EncodeToString(records[i].Key)).
				Msg("insert rejected")
			continue
		}
		inserted++
	}

	searched := 0
	for i := range records {
		if t.SearchFn(records[i].Key, func([]byte) {}) {
			searched++
		}
	}

	replaced := 0
	for i := 0; i < len(records); i += 2 {
		if err := t.Replace(
			records[i].Key, dataset.RandomValue(p.ValueSize),
		); err != nil {
			l.Debug().
				Err(err).
				Str("key", hex.EncodeToString(records[i].Key)).
				Msg("replace skipped")
			continue
		}
		replaced++
	}

	removed := 0
	for i := 0; i < len(records); i += 3 {
		if err := t.Remove(records[i].Key); err != nil {
			l.Debug().
				Err(err).
				Str("key", hex.EncodeToString(records[i].Key)).
				Msg("remove skipped")
			continue
		}
		removed++
	}

	touched, longestChain := 0, 0
	for i := 0; i < t.NumBuckets(); i++ {
		if t.Touched(i) {
			touched++
		}
		longestChain = math.Max(longestChain, t.ChainLen(i))
	}

	l.Info().
		Int("inserted", inserted).
		Int("searched", searched).
		Int("replaced", replaced).
		Int("removed", removed).
		Msg("workload done")
	l.Info().
		Str("entries", humanize.Comma(int64(t.Len()))).
		Str("payload", humanize.IBytes(
			uint64(t.Len()*(p.KeySize+p.ValueSize)),
		)).
		Int("touched_buckets", touched).
		Int("longest_chain", longestChain).
		Msg("table state")
}
