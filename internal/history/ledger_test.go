package history

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) Load() ([]Entry, error) { return nil, errors.New("disk broken") }
func (failingStore) Save([]Entry) error { return errors.New("disk broken") }

func TestLedger_AppendOrdering(t *testing.T) {
	ledger := NewLedger(NewYamlStore(filepath.Join(t.TempDir(), "history.yml")))

	first := ledger.Append("你好", "Hello")
	second := ledger.Append("谢谢", "Thank you")

	entries := ledger.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
}

func TestLedger_WriteThroughReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.yml")

	ledger := NewLedger(NewYamlStore(path))
	entry := ledger.Append("你好", "Hello")
	ledger.AmendTarget(entry.ID, "Hi")
	_, ok := ledger.ToggleFavorite(entry.ID)
	require.True(t, ok)

	reloaded := NewLedger(NewYamlStore(path))
	require.Equal(t, 1, reloaded.Len())
	got, ok := reloaded.Find(entry.ID)
	require.True(t, ok)
	assert.Equal(t, "你好", got.SourceText)
	assert.Equal(t, "Hi", got.TargetText)
	assert.True(t, got.IsFavorite)
}

func TestLedger_AbsentFileStartsEmpty(t *testing.T) {
	ledger := NewLedger(NewYamlStore(filepath.Join(t.TempDir(), "does-not-exist.yml")))
	assert.Equal(t, 0, ledger.Len())
}

func TestLedger_ToggleFavorite(t *testing.T) {
	ledger := NewLedger(NewYamlStore(filepath.Join(t.TempDir(), "history.yml")))
	entry := ledger.Append("你好", "Hello")

	favorite, ok := ledger.ToggleFavorite(entry.ID)
	require.True(t, ok)
	assert.True(t, favorite)

	favorite, ok = ledger.ToggleFavorite(entry.ID)
	require.True(t, ok)
	assert.False(t, favorite)

	_, ok = ledger.ToggleFavorite(uuid.New())
	assert.False(t, ok)
}

func TestLedger_AmendAbsentIDIsNoop(t *testing.T) {
	ledger := NewLedger(NewYamlStore(filepath.Join(t.TempDir(), "history.yml")))
	entry := ledger.Append("你好", "Hello")

	ledger.AmendSource(uuid.New(), "changed")
	ledger.AmendTarget(uuid.New(), "changed")

	got, ok := ledger.Find(entry.ID)
	require.True(t, ok)
	assert.Equal(t, "你好", got.SourceText)
	assert.Equal(t, "Hello", got.TargetText)
}

func TestLedger_Remove(t *testing.T) {
	ledger := NewLedger(NewYamlStore(filepath.Join(t.TempDir(), "history.yml")))
	first := ledger.Append("你好", "Hello")
	second := ledger.Append("谢谢", "Thank you")

	ledger.Remove(first.ID)
	require.Equal(t, 1, ledger.Len())
	_, ok := ledger.Find(first.ID)
	assert.False(t, ok)
	_, ok = ledger.Find(second.ID)
	assert.True(t, ok)

	// removing an absent id changes nothing
	ledger.Remove(uuid.New())
	assert.Equal(t, 1, ledger.Len())
}

func TestLedger_StartPlaceholder(t *testing.T) {
	ledger := NewLedger(NewYamlStore(filepath.Join(t.TempDir(), "history.yml")))
	ledger.Append("你好", "Hello")

	placeholder := ledger.StartPlaceholder()
	entries := ledger.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, placeholder.ID, entries[0].ID)
	assert.Empty(t, entries[0].SourceText)
	assert.Empty(t, entries[0].TargetText)
}

func TestLedger_FlushFailureKeepsMemoryAuthoritative(t *testing.T) {
	ledger := NewLedger(failingStore{})

	entry := ledger.Append("你好", "Hello")
	require.Equal(t, 1, ledger.Len())

	got, ok := ledger.Find(entry.ID)
	require.True(t, ok)
	assert.Equal(t, "Hello", got.TargetText)
}
