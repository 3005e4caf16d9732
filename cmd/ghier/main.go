// Package main provides the GHier command-line tool.
// GHier reads a geographic hierarchy dump, parses it concurrently and
// produces the globally id-ordered entry collection used by the
// geocoding pipeline.
//
// Key features:
// - Concurrent dump ingestion with a configurable reader count
// - Plain, gzip and zstd compressed dump files
// - Optional re-emission of the sorted entries to a file or stdout
// - Parse diagnostics summary (bad ids, bad payloads, sentinels)
// - CPU and memory profiling support
// - Quiet output mode for scripted runs
//
// GHier is typically run as a build step over an OSM-derived dump, but
// it is also handy for sanity checking a dump by hand.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/geohier/ghier/internal/config"
	"github.com/geohier/ghier/internal/dlog"
	"github.com/geohier/ghier/internal/hierarchy"
	"github.com/geohier/ghier/internal/profiling"
	"github.com/geohier/ghier/internal/version"
)

// main is the entry point for the GHier application.
// It parses command-line arguments, initializes logging and profiling,
// reads the hierarchy dump and optionally re-emits the sorted entries.
// The process exits non-zero when the dump cannot be read completely.
func main() {
	var args config.Args
	var displayVersion bool
	var profileFlags profiling.Flags

	// A .env file may seed the GHIER_ environment in development setups.
	godotenv.Load()

	flag.BoolVar(&args.Quiet, "quiet", false, "Quiet output mode")
	flag.BoolVar(&displayVersion, "version", false, "Display version")
	flag.IntVar(&args.Readers, "readers", 0, "Concurrent dump readers, 0 for the configured default")
	flag.StringVar(&args.LogLevel, "logLevel", "", "Log level")
	flag.StringVar(&args.Logger, "logger", "", "Logger output (stderr, stdout or none)")
	flag.StringVar(&args.OutFile, "out", "", "Write sorted entries to this file, - for stdout")
	flag.StringVar(&args.What, "file", "", "Hierarchy dump file to read")
	profileFlags.AddFlags()

	flag.Parse()

	if displayVersion {
		version.PrintAndExit()
	}
	config.Setup(&args, flag.Args())
	dlog.Setup(config.Common.LogLevel, config.Common.Logger)

	profiler := profiling.NewProfiler(profileFlags.ToConfig("ghier"))
	status := run(&args)
	profiler.Stop()

	dlog.Common.Sync()
	os.Exit(status)
}

func run(args *config.Args) int {
	if args.What == "" {
		fmt.Fprintln(os.Stderr, "No dump file given, use -file or a positional argument")
		return 1
	}

	hostname, _ := config.Hostname()
	dlog.Common.Info("Starting hierarchy build", version.String(), hostname)

	reader, err := hierarchy.NewReader(args.What)
	if err != nil {
		dlog.Common.Error("Cannot open hierarchy dump:", err)
		return 1
	}
	defer reader.Close()

	var stats hierarchy.ParsingStats
	entries, err := reader.ReadEntries(config.Common.Readers, &stats)
	if err != nil {
		dlog.Common.Error("Cannot read hierarchy dump:", err)
		return 1
	}
	dlog.Common.Info("Loaded", len(entries), "entries from", args.What, stats.String())

	if args.OutFile != "" {
		if err := writeEntries(args.OutFile, entries); err != nil {
			dlog.Common.Error("Cannot write sorted entries:", err)
			return 1
		}
	}
	return 0
}

// writeEntries re-emits the sorted entries in the dump line format, so
// the output can serve as input for another run.
func writeEntries(path string, entries []hierarchy.Entry) error {
	out := os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	for i := range entries {
		payload, err := entries[i].PayloadJSON()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%d %s\n", entries[i].OsmID.Encoded(), payload); err != nil {
			return err
		}
	}
	return w.Flush()
}
