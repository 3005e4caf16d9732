package profiling

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/geohier/ghier/internal/testutil"
)

func TestDisabledProfiler(t *testing.T) {
	p := NewProfiler(Config{})
	if p.enabled {
		t.Error("expected profiler to be disabled when no profiles requested")
	}

	// All operations must be no-ops on a disabled profiler.
	p.Snapshot("test")
	p.LogMetrics("test")
	p.Stop()
}

func TestCPUProfileOnly(t *testing.T) {
	dir := testutil.TempDir(t)

	p := NewProfiler(Config{
		CPUProfile:  true,
		ProfileDir:  dir,
		CommandName: "testcmd",
	})
	if !p.enabled {
		t.Fatal("expected profiler to be enabled")
	}
	p.Stop()

	files, err := os.ReadDir(dir)
	testutil.AssertNoError(t, err)
	if len(files) != 1 {
		t.Fatalf("expected 1 profile file, got %d", len(files))
	}
	name := files[0].Name()
	if !strings.HasPrefix(name, "testcmd_cpu_") || !strings.HasSuffix(name, ".prof") {
		t.Errorf("unexpected profile file name %s", name)
	}
}

func TestMemProfileOnly(t *testing.T) {
	dir := testutil.TempDir(t)

	p := NewProfiler(Config{
		MemProfile:  true,
		ProfileDir:  dir,
		CommandName: "testcmd",
	})
	if !p.enabled {
		t.Fatal("expected profiler to be enabled")
	}
	if p.memProfile == "" {
		t.Fatal("expected memory profile path to be set")
	}
	p.Stop()

	if _, err := os.Stat(p.memProfile); err != nil {
		t.Errorf("expected memory profile at %s: %v", p.memProfile, err)
	}
	if filepath.Dir(p.memProfile) != dir {
		t.Errorf("expected profile in %s, got %s", dir, p.memProfile)
	}
}

func TestFlagsToConfig(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		var flags Flags
		if flags.Enabled() {
			t.Error("expected empty flags to be disabled")
		}
	})

	t.Run("profile enables both", func(t *testing.T) {
		flags := Flags{Profile: true, ProfileDir: "profiles"}
		cfg := flags.ToConfig("mycmd")
		if !cfg.CPUProfile || !cfg.MemProfile {
			t.Error("expected -profile to enable CPU and memory profiling")
		}
		testutil.AssertEqual(t, "mycmd", cfg.CommandName)
	})

	t.Run("individual flags", func(t *testing.T) {
		flags := Flags{CPUProfile: true}
		if !flags.Enabled() {
			t.Error("expected cpuprofile flag to enable profiling")
		}
		cfg := flags.ToConfig("mycmd")
		if !cfg.CPUProfile || cfg.MemProfile {
			t.Error("expected only CPU profiling to be enabled")
		}
	})
}

func TestGetMetrics(t *testing.T) {
	metrics := GetMetrics()

	if metrics.Alloc == 0 {
		t.Error("expected non-zero allocated bytes")
	}
	if metrics.NumGoroutine < 1 {
		t.Error("expected at least one goroutine")
	}
	if metrics.NumCPU < 1 {
		t.Error("expected at least one CPU")
	}
}
