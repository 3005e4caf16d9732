package integrationtests

import (
	"context"
	"testing"

	"github.com/geohier/ghier/internal/config"
)

func TestGHierHealth1(t *testing.T) {
	if !config.Env("GHIER_INTEGRATION_TEST_RUN_MODE") {
		t.Log("Skipping")
		return
	}
	cleanupTmpFiles(t)

	outFile := "ghierhealth1.stdout.tmp"
	cleanupFiles(t, outFile)

	t.Log("Negative test, is supposed to exit with a critical state.")
	ctx := context.Background()
	exitCode, err := runCommand(ctx, t, outFile,
		"../ghierhealth", "--file", "nosuchdump.txt")

	if exitCode != 2 {
		t.Errorf("Expected exit code '2' but got '%d': %v", exitCode, err)
		return
	}

	if err := fileContainsStr(t, outFile, "CRITICAL:"); err != nil {
		t.Error(err)
		return
	}
}

func TestGHierHealth2(t *testing.T) {
	if !config.Env("GHIER_INTEGRATION_TEST_RUN_MODE") {
		t.Log("Skipping")
		return
	}
	cleanupTmpFiles(t)

	inFile := "ghierhealth2.dump.tmp"
	outFile := "ghierhealth2.stdout.tmp"

	writeTestFile(t, inFile, `1 {"kind": "country", "name": "Testland"}
2 {"kind": "region", "name": "Northshire", "rank": 2}
3 {"kind": "locality", "name": "Carlisle", "rank": 4}
`)
	cleanupFiles(t, outFile)

	t.Log("Healthy dump given as positional argument, is supposed to exit fine.")
	ctx := context.Background()
	exitCode, err := runCommand(ctx, t, outFile, "../ghierhealth", inFile)

	if exitCode != 0 {
		t.Errorf("Expected exit code '0' but got '%d': %v", exitCode, err)
		return
	}

	if err := fileContainsStr(t, outFile, "OK: All fine at"); err != nil {
		t.Error(err)
		return
	}
}

func TestGHierHealth3(t *testing.T) {
	if !config.Env("GHIER_INTEGRATION_TEST_RUN_MODE") {
		t.Log("Skipping")
		return
	}
	cleanupTmpFiles(t)

	inFile := "ghierhealth3.dump.tmp"
	outFile := "ghierhealth3.stdout.tmp"

	// Half of the lines lack a parsable id, well above the allowed
	// bad record ratio.
	writeTestFile(t, inFile, `xx {"kind": "country", "name": "Testland"}
1 {"kind": "country", "name": "Testland"}
yy {"kind": "region", "name": "Northshire"}
2 {"kind": "region", "name": "Northshire", "rank": 2}
`)
	cleanupFiles(t, outFile)

	t.Log("Dump with too many bad records, is supposed to exit with a critical state.")
	ctx := context.Background()
	exitCode, err := runCommand(ctx, t, outFile, "../ghierhealth", "--file", inFile)

	if exitCode != 2 {
		t.Errorf("Expected exit code '2' but got '%d': %v", exitCode, err)
		return
	}

	if err := fileContainsStr(t, outFile, "Too many bad records"); err != nil {
		t.Error(err)
		return
	}
}
