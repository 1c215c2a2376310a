// Package testutil provides shared test helpers for creating config files and
// history fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kerwinzhai/speakdaily/internal/history"
	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a minimal config file and the data directory for
// testing. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dataDir := filepath.Join(tmpDir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0755))

	configContent := fmt.Sprintf(`data:
  directory: %s
deepseek:
  api_key: fake-key-for-testing
  model: deepseek-chat
`, dataDir)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// NewEntry creates a completed history entry fixture.
func NewEntry(createdAt time.Time, sourceText, targetText string) history.Entry {
	return history.Entry{
		ID:         uuid.New(),
		CreatedAt:  createdAt,
		SourceText: sourceText,
		TargetText: targetText,
	}
}
