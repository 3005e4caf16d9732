// Package main provides the GHier Health Check utility.
// GHierHealth is a specialized tool for verifying that a hierarchy
// dump file is present and parseable before it enters the geocoding
// pipeline.
//
// Key features:
// - Dump open and full parse verification
// - Bad record ratio threshold checking
// - Minimal logging output (suitable for monitoring scripts)
// - Exit codes suitable for monitoring systems
//
// GHierHealth is typically used by monitoring systems like Nagios,
// Zabbix, or custom health check scripts to verify that a generated
// dump is usable. It was separated from the main ghier binary to
// provide a lightweight, focused health checking tool.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/geohier/ghier/internal/config"
	"github.com/geohier/ghier/internal/constants"
	"github.com/geohier/ghier/internal/dlog"
	"github.com/geohier/ghier/internal/hierarchy"
	"github.com/geohier/ghier/internal/version"
)

// main is the entry point for the GHier Health Check utility.
// It parses command-line arguments, initializes minimal logging and
// probes the specified dump file. The function exits with appropriate
// status codes for use in monitoring systems.
func main() {
	var args config.Args
	var displayVersion bool

	flag.BoolVar(&displayVersion, "version", false, "Display version")
	flag.StringVar(&args.Logger, "logger", config.DefaultHealthCheckLogger, "Logger name")
	flag.StringVar(&args.LogLevel, "logLevel", "none", "Log level")
	flag.StringVar(&args.What, "file", "", "Hierarchy dump file to check")
	flag.Parse()

	if displayVersion {
		version.PrintAndExit()
	}

	config.Setup(&args, flag.Args())
	dlog.Setup(config.Common.LogLevel, config.Common.Logger)

	os.Exit(check(args.What))
}

// check probes the dump and reports the result in a single
// monitoring friendly line.
func check(path string) int {
	if path == "" {
		fmt.Println("CRITICAL: No dump file given, use -file or a positional argument!")
		return constants.HealthCriticalStatus
	}

	reader, err := hierarchy.NewReader(path)
	if err != nil {
		fmt.Printf("CRITICAL: Cannot open dump: %v!\n", err)
		return constants.HealthCriticalStatus
	}
	defer reader.Close()

	var stats hierarchy.ParsingStats
	if _, err := reader.ReadEntries(config.Common.Readers, &stats); err != nil {
		fmt.Printf("CRITICAL: Cannot read dump %s: %v!\n", path, err)
		return constants.HealthCriticalStatus
	}

	if stats.BadRatio() >= constants.HealthMaxBadRatio {
		fmt.Printf("CRITICAL: Too many bad records in %s (%s)!\n", path, stats.String())
		return constants.HealthCriticalStatus
	}

	fmt.Printf("OK: All fine at %s (%s) :-)\n", path, stats.String())
	return constants.HealthOKStatus
}
