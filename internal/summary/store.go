package summary

import (
	"errors"
	"io/fs"

	"github.com/kerwinzhai/speakdaily/internal/storage"
)

// YamlStore persists the day-keyed summary map as a single YAML blob file,
// independent of the history blob.
type YamlStore struct {
	path string
}

var _ Store = (*YamlStore)(nil)

func NewYamlStore(path string) *YamlStore {
	return &YamlStore{path: path}
}

func (s *YamlStore) Load() (map[string]StoredSummary, error) {
	summaries, err := storage.ReadYamlFile[map[string]StoredSummary](s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (s *YamlStore) Save(summaries map[string]StoredSummary) error {
	return storage.WriteYamlFile(s.path, summaries)
}
