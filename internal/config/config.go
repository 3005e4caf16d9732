// Package config provides configuration management for the GHier
// tools. Settings are collected from defaults, GHIER_ prefixed
// environment variables and command-line arguments.
//
// Configuration precedence (highest to lowest):
// 1. Command-line arguments
// 2. Environment variables
// 3. Default values
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/geohier/ghier/internal/constants"
)

const (
	// DefaultLogLevel specifies the default log level (obviously)
	DefaultLogLevel string = "info"
	// DefaultLogger specifies the default log output of the commands.
	DefaultLogger string = "stderr"
	// DefaultHealthCheckLogger specifies the logger used for health checks.
	DefaultHealthCheckLogger string = "none"
	// DefaultEyeDir is the default directory for usage telemetry files.
	DefaultEyeDir string = "eye"
)

// Common holds the config shared by all GHier commands. This global
// variable provides access to the settings after Setup ran.
var Common *CommonConfig

// CommonConfig are the settings shared by all GHier commands.
type CommonConfig struct {
	// LogLevel of the logger (debug, info, warn or error).
	LogLevel string
	// Logger output, one of stderr, stdout or none.
	Logger string
	// Readers is the hierarchy reader goroutine count.
	Readers int
	// EyeDir is the directory for usage telemetry files.
	EyeDir string
}

// Args holds the command-line flag targets of the GHier commands.
type Args struct {
	// What dump file to read.
	What string
	// Readers overrides the reader goroutine count when positive.
	Readers int
	// OutFile receives the sorted entries, "-" for stdout.
	OutFile string
	// LogLevel overrides the configured log level when set.
	LogLevel string
	// Logger overrides the configured log output when set.
	Logger string
	// Quiet reduces logging to errors only.
	Quiet bool
	// CPUProfile is the path for a CPU profile dump.
	CPUProfile string
}

func newDefaultCommonConfig() *CommonConfig {
	return &CommonConfig{
		LogLevel: DefaultLogLevel,
		Logger:   DefaultLogger,
		Readers:  constants.DefaultHierarchyReaders,
		EyeDir:   DefaultEyeDir,
	}
}

type initializer struct {
	Common *CommonConfig
}

// parseConfig applies the GHIER_ environment overrides.
func (i *initializer) parseConfig() error {
	if v := os.Getenv("GHIER_LOG_LEVEL"); v != "" {
		i.Common.LogLevel = v
	}
	if v := os.Getenv("GHIER_LOGGER"); v != "" {
		i.Common.Logger = v
	}
	if v := os.Getenv("GHIER_EYE_DIR"); v != "" {
		i.Common.EyeDir = v
	}
	if v := os.Getenv("GHIER_READERS"); v != "" {
		readers, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid GHIER_READERS value %q: %v", v, err)
		}
		i.Common.Readers = readers
	}
	return nil
}

// transformConfig applies the command-line arguments and validates the
// result. The first additional argument doubles as the dump path when
// no -file flag was given.
func (i *initializer) transformConfig(args *Args, additionalArgs []string) error {
	if args.What == "" && len(additionalArgs) > 0 {
		args.What = additionalArgs[0]
	}
	if args.Readers > 0 {
		i.Common.Readers = args.Readers
	}
	if args.LogLevel != "" {
		i.Common.LogLevel = args.LogLevel
	}
	if args.Logger != "" {
		i.Common.Logger = args.Logger
	}
	if args.Quiet {
		i.Common.LogLevel = "error"
	}

	switch i.Common.Logger {
	case "stderr", "stdout", "none":
	default:
		return fmt.Errorf("unknown logger %q, want stderr, stdout or none", i.Common.Logger)
	}
	return nil
}

// Setup initializes the GHier configuration from defaults, environment
// variables and command-line arguments and makes it available via the
// Common global. It panics on configuration errors to ensure a command
// cannot start with an invalid configuration.
func Setup(args *Args, additionalArgs []string) {
	initializer := initializer{Common: newDefaultCommonConfig()}
	if err := initializer.parseConfig(); err != nil {
		panic(err)
	}
	if err := initializer.transformConfig(args, additionalArgs); err != nil {
		panic(err)
	}

	// Make config accessible globally
	Common = initializer.Common
}
