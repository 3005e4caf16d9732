// Package profiling manages CPU and memory profiles of the GHier
// commands. Profiling failures are logged and never abort the
// profiled command.
package profiling

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/geohier/ghier/internal/dlog"
)

// Profiler manages CPU and memory profiling for GHier commands.
type Profiler struct {
	cpuProfile  *os.File
	memProfile  string
	profileDir  string
	commandName string
	enabled     bool
}

// Config holds profiling configuration
type Config struct {
	// Enable CPU profiling
	CPUProfile bool
	// Enable memory profiling
	MemProfile bool
	// Directory to store profiles
	ProfileDir string
	// Command name for profile naming
	CommandName string
}

// NewProfiler creates a new profiler instance
func NewProfiler(cfg Config) *Profiler {
	if !cfg.CPUProfile && !cfg.MemProfile {
		return &Profiler{enabled: false}
	}

	p := &Profiler{
		profileDir:  cfg.ProfileDir,
		commandName: cfg.CommandName,
		enabled:     true,
	}

	if p.profileDir == "" {
		p.profileDir = "profiles"
	}
	if err := os.MkdirAll(p.profileDir, 0755); err != nil {
		dlog.Common.Warn("Failed to create profile directory:", err)
		p.enabled = false
		return p
	}

	if cfg.CPUProfile {
		p.startCPUProfile()
	}
	if cfg.MemProfile {
		timestamp := time.Now().Format("20060102_150405")
		p.memProfile = filepath.Join(p.profileDir,
			fmt.Sprintf("%s_mem_%s.prof", p.commandName, timestamp))
	}

	return p
}

func (p *Profiler) startCPUProfile() {
	timestamp := time.Now().Format("20060102_150405")
	cpuProfilePath := filepath.Join(p.profileDir,
		fmt.Sprintf("%s_cpu_%s.prof", p.commandName, timestamp))

	f, err := os.Create(cpuProfilePath)
	if err != nil {
		dlog.Common.Warn("Failed to create CPU profile file:", err)
		return
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		dlog.Common.Warn("Failed to start CPU profile:", err)
		f.Close()
		return
	}

	p.cpuProfile = f
	dlog.Common.Info("Started CPU profiling:", cpuProfilePath)
}

// Stop stops all profiling and writes profiles to disk
func (p *Profiler) Stop() {
	if !p.enabled {
		return
	}

	if p.cpuProfile != nil {
		pprof.StopCPUProfile()
		p.cpuProfile.Close()
		dlog.Common.Info("Stopped CPU profiling")
	}
	if p.memProfile != "" {
		p.writeMemProfile()
	}
}

func (p *Profiler) writeMemProfile() {
	f, err := os.Create(p.memProfile)
	if err != nil {
		dlog.Common.Warn("Failed to create memory profile file:", err)
		return
	}
	defer f.Close()

	// Force GC before capturing so the profile reflects live memory.
	runtime.GC()

	if err := pprof.WriteHeapProfile(f); err != nil {
		dlog.Common.Warn("Failed to write memory profile:", err)
		return
	}
	dlog.Common.Info("Wrote memory profile:", p.memProfile)
}

// Snapshot takes a memory snapshot at any point during execution
func (p *Profiler) Snapshot(label string) {
	if !p.enabled || p.memProfile == "" {
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	snapshotPath := filepath.Join(p.profileDir,
		fmt.Sprintf("%s_snapshot_%s_%s.prof", p.commandName, label, timestamp))

	f, err := os.Create(snapshotPath)
	if err != nil {
		dlog.Common.Warn("Failed to create snapshot file:", err)
		return
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		dlog.Common.Warn("Failed to write snapshot:", err)
		return
	}
	dlog.Common.Info("Wrote memory snapshot:", snapshotPath)
}

// Metrics captures current runtime metrics.
type Metrics struct {
	Alloc        uint64 // Bytes allocated and still in use
	TotalAlloc   uint64 // Bytes allocated (even if freed)
	Sys          uint64 // Bytes obtained from system
	NumGC        uint32 // Number of completed GC cycles
	NumGoroutine int
	NumCPU       int
}

// GetMetrics returns current runtime metrics
func GetMetrics() Metrics {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return Metrics{
		Alloc:        m.Alloc,
		TotalAlloc:   m.TotalAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
	}
}

// LogMetrics logs current runtime metrics
func (p *Profiler) LogMetrics(label string) {
	if !p.enabled {
		return
	}

	metrics := GetMetrics()
	dlog.Common.Info("Profile metrics", label, fmt.Sprintf(
		"alloc=%.2fMB total_alloc=%.2fMB sys=%.2fMB num_gc=%d goroutines=%d",
		float64(metrics.Alloc)/1024/1024,
		float64(metrics.TotalAlloc)/1024/1024,
		float64(metrics.Sys)/1024/1024,
		metrics.NumGC,
		metrics.NumGoroutine))
}
