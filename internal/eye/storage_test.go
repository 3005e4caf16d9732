package eye

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/geohier/ghier/internal/testutil"
)

func TestStorageSaveAndLoadInfo(t *testing.T) {
	storage, err := NewStorage(filepath.Join(testutil.TempDir(t), "eye"))
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}

	data, err := storage.LoadInfo()
	testutil.AssertNoError(t, err)
	if data != nil {
		t.Errorf("expected no snapshot before the first save but got %d bytes", len(data))
	}

	testutil.AssertNoError(t, storage.SaveInfo([]byte("first")))
	testutil.AssertNoError(t, storage.SaveInfo([]byte("second")))

	data, err = storage.LoadInfo()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, "second", string(data))

	if _, err := os.Stat(storage.InfoPath() + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("expected no temp file to be left behind, stat returned %v", err)
	}
}

func TestStorageAppendsMapObjectEvents(t *testing.T) {
	storage, err := NewStorage(testutil.TempDir(t))
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}

	testutil.AssertNoError(t, storage.AppendMapObjectEvent([]byte("aa")))
	testutil.AssertNoError(t, storage.AppendMapObjectEvent([]byte("bb")))

	data, err := storage.LoadMapObjects()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, "aabb", string(data))
}

func TestStorageCompactionReplacesJournal(t *testing.T) {
	storage, err := NewStorage(testutil.TempDir(t))
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}

	testutil.AssertNoError(t, storage.AppendMapObjectEvent([]byte("old")))
	testutil.AssertNoError(t, storage.SaveMapObjects([]byte("compacted")))

	data, err := storage.LoadMapObjects()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, "compacted", string(data))
}
