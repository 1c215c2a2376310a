package history

import (
	"errors"
	"io/fs"

	"github.com/kerwinzhai/speakdaily/internal/storage"
)

// YamlStore persists the entry collection as a single YAML blob file.
type YamlStore struct {
	path string
}

var _ Store = (*YamlStore)(nil)

func NewYamlStore(path string) *YamlStore {
	return &YamlStore{path: path}
}

// Load reads the persisted collection. An absent file yields an empty
// collection without error; a decode failure is reported to the caller,
// which treats it as "start empty".
func (s *YamlStore) Load() ([]Entry, error) {
	entries, err := storage.ReadYamlFile[[]Entry](s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *YamlStore) Save(entries []Entry) error {
	return storage.WriteYamlFile(s.path, entries)
}
