package testsetup

import (
	"embed"

	"github.com/graph-guard/chmap/config"
	"github.com/graph-guard/chmap/dataset"
)

/* SPECIAL NOTE:                                     *\
\* Symlinks are not allowed in embedded filesystems! */

//go:embed profile records.json
var fsSetup embed.FS

func FS() embed.FS { return fsSetup }

// Profile returns the embedded profile.
func Profile() *config.Profile {
	p, err := config.Read(fsSetup, "profile")
	panicOnErr(err)
	return p
}

// Records returns the embedded dataset. Keys and values
// fit the profile's sizes.
func Records() []dataset.Record {
	r, err := dataset.Read(fsSetup, "records.json")
	panicOnErr(err)
	return r
}

func panicOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
