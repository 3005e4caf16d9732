package eye

import (
	"os"
	"path/filepath"

	"github.com/geohier/ghier/internal/constants"
)

// Storage owns the eye files inside one directory. Snapshot style
// files are replaced through a temp file and rename so a crash never
// leaves a half written file behind, the event journal is append only.
type Storage struct {
	dir string
}

// NewStorage prepares the storage directory.
func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Storage{dir: dir}, nil
}

// InfoPath returns the path of the info snapshot file.
func (s *Storage) InfoPath() string {
	return filepath.Join(s.dir, constants.EyeInfoFileName)
}

// MapObjectsPath returns the path of the map object event journal.
func (s *Storage) MapObjectsPath() string {
	return filepath.Join(s.dir, constants.EyeMapObjectsFileName)
}

// LoadInfo returns the raw info snapshot, nil when none exists yet.
func (s *Storage) LoadInfo() ([]byte, error) {
	return loadFile(s.InfoPath())
}

// SaveInfo atomically replaces the info snapshot.
func (s *Storage) SaveInfo(data []byte) error {
	return writeFileAtomic(s.InfoPath(), data)
}

// LoadMapObjects returns the raw event journal, nil when none exists
// yet.
func (s *Storage) LoadMapObjects() ([]byte, error) {
	return loadFile(s.MapObjectsPath())
}

// SaveMapObjects atomically replaces the whole journal. Used by
// compaction after expired events were trimmed.
func (s *Storage) SaveMapObjects(data []byte) error {
	return writeFileAtomic(s.MapObjectsPath(), data)
}

// AppendMapObjectEvent appends one serialized frame to the journal.
func (s *Storage) AppendMapObjectEvent(frame []byte) error {
	file, err := os.OpenFile(s.MapObjectsPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	if _, err := file.Write(frame); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func loadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
