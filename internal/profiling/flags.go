package profiling

import "flag"

// Flags holds the command-line profiling switches shared by the GHier
// commands.
type Flags struct {
	// Enable CPU profiling
	CPUProfile bool
	// Enable memory profiling
	MemProfile bool
	// Enable all profiling (CPU + memory)
	Profile bool
	// Directory to store profiles
	ProfileDir string
}

// AddFlags registers the profiling flags on the default flag set.
func (f *Flags) AddFlags() {
	flag.BoolVar(&f.CPUProfile, "cpuprofile", false, "Enable CPU profiling")
	flag.BoolVar(&f.MemProfile, "memprofile", false, "Enable memory profiling")
	flag.BoolVar(&f.Profile, "profile", false, "Enable all profiling (CPU + memory)")
	flag.StringVar(&f.ProfileDir, "profiledir", "profiles", "Directory to store profiles")
}

// ToConfig converts the parsed flags to a profiler config.
func (f *Flags) ToConfig(commandName string) Config {
	return Config{
		CPUProfile:  f.CPUProfile || f.Profile,
		MemProfile:  f.MemProfile || f.Profile,
		ProfileDir:  f.ProfileDir,
		CommandName: commandName,
	}
}

// Enabled reports whether any profiling switch is set.
func (f *Flags) Enabled() bool {
	return f.CPUProfile || f.MemProfile || f.Profile
}
