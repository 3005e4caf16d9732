package config

import (
	"os"
	"testing"

	"github.com/geohier/ghier/internal/testutil"
)

func TestEnv(t *testing.T) {
	t.Run("env var set to yes", func(t *testing.T) {
		os.Setenv("TEST_ENV_VAR", "yes")
		defer os.Unsetenv("TEST_ENV_VAR")

		testutil.AssertEqual(t, true, Env("TEST_ENV_VAR"))
	})

	t.Run("env var set to other value", func(t *testing.T) {
		os.Setenv("TEST_ENV_VAR", "no")
		defer os.Unsetenv("TEST_ENV_VAR")

		testutil.AssertEqual(t, false, Env("TEST_ENV_VAR"))
	})

	t.Run("non-existing env var", func(t *testing.T) {
		os.Unsetenv("NON_EXISTING_VAR")

		testutil.AssertEqual(t, false, Env("NON_EXISTING_VAR"))
	})
}

func TestHostname(t *testing.T) {
	t.Run("default hostname", func(t *testing.T) {
		os.Unsetenv("GHIER_HOSTNAME_OVERRIDE")

		hostname, err := Hostname()
		testutil.AssertNoError(t, err)
		if hostname == "" {
			t.Error("Expected non-empty hostname")
		}
	})

	t.Run("hostname override", func(t *testing.T) {
		os.Setenv("GHIER_HOSTNAME_OVERRIDE", "test-host")
		defer os.Unsetenv("GHIER_HOSTNAME_OVERRIDE")

		hostname, err := Hostname()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, "test-host", hostname)
	})

	t.Run("integration test mode", func(t *testing.T) {
		os.Setenv("GHIER_INTEGRATION_TEST_RUN_MODE", "yes")
		defer os.Unsetenv("GHIER_INTEGRATION_TEST_RUN_MODE")

		hostname, err := Hostname()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, "integrationtest", hostname)
	})
}
