package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
)

// Command can be any of:
//
//	CommandRun
//	CommandDump
type Command any

// CommandRun builds a table and runs an insert, search, replace
// and remove workload against it.
type CommandRun struct {
	ProfilePath string
	DataPath    string
	Records     int
	Verbose     bool
}

// CommandDump builds a table, fills it and prints its rendering.
type CommandDump struct {
	ProfilePath string
	DataPath    string
	Records     int
}

func Parse(w io.Writer, args []string) (cmd Command) {
	fm := fmt.Sprintf

	executableName := "chmap"
	if len(args) > 0 {
		executableName = filepath.Base(args[0])
	}

	flags := flag.NewFlagSet("chmap", flag.ContinueOnError)
	flags.SetOutput(w)
	flags.Usage = func() {
		writeLines(w,
			fm("usage: %s <command> [flags]", executableName),
			"",
			"commands available:",
			" run - builds a table and runs a workload against it",
			" dump - builds a table and prints its rendering",
		)
	}

	parseFlags := func() (ok bool) {
		err := flags.Parse(args[2:])
		// flags will automatically call .Usage()
		return err == nil
	}

	if len(args) < 2 {
		flags.Usage()
		return nil
	}

	switch args[1] {
	case "run":
		c := CommandRun{}

		flags.Usage = func() {
			writeLines(w,
				"",
				fm("usage: %s run [-profile <path>] [-data <path>] "+
					"[-records <n>] [-verbose]", executableName),
				"",
				"flags:",
				"-profile <path>: defines the profile directory path "+
					"(default: built-in profile)",
				"-data <path>: defines the JSON dataset file path "+
					"(default: generated records)",
				"-records <n>: defines the number of generated records "+
					"(default: 32)",
				"-verbose: enables debug logging",
			)
		}

		flags.StringVar(&c.ProfilePath, "profile", "", "")
		flags.StringVar(&c.DataPath, "data", "", "")
		flags.IntVar(&c.Records, "records", 32, "")
		flags.BoolVar(&c.Verbose, "verbose", false, "")
		if !parseFlags() {
			return nil
		}

		if c.Records < 1 {
			writeLines(w, "-records must be positive.")
			flags.Usage()
			return nil
		}

		cmd = c

	case "dump":
		c := CommandDump{}

		flags.Usage = func() {
			writeLines(w,
				"",
				fm("usage: %s dump [-profile <path>] [-data <path>] "+
					"[-records <n>]", executableName),
				"",
				"flags:",
				"-profile <path>: defines the profile directory path "+
					"(default: built-in profile)",
				"-data <path>: defines the JSON dataset file path "+
					"(default: generated records)",
				"-records <n>: defines the number of generated records "+
					"(default: 32)",
			)
		}

		flags.StringVar(&c.ProfilePath, "profile", "", "")
		flags.StringVar(&c.DataPath, "data", "", "")
		flags.IntVar(&c.Records, "records", 32, "")
		if !parseFlags() {
			return nil
		}

		if c.Records < 1 {
			writeLines(w, "-records must be positive.")
			flags.Usage()
			return nil
		}

		cmd = c

	case "help":
		PrintHelp(w)
		return

	default:
		flags.Usage()
		return nil
	}
	return cmd
}

func writeLines(w io.Writer, lines ...string) {
	for i := range lines {
		_, _ = w.Write([]byte(lines[i]))
		_, _ = w.Write([]byte("\n"))
	}
}

// PrintHelp writes the help manual to w.
func PrintHelp(w io.Writer) {
	writeLines(w,
		"chmap - a fixed-bucket hash table with separate chaining",
		"",
		"commands available:",
		" run - builds a table and runs a workload against it",
		" dump - builds a table and prints its rendering",
		" help - prints this help",
	)
}
