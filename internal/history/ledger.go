// Package history owns the ordered collection of recorded practice attempts
// and its durable form.
package history

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded practice attempt. Identity is the ID; insertion order
// is newest-first and is significant for display only.
type Entry struct {
	ID         uuid.UUID `yaml:"id"`
	CreatedAt  time.Time `yaml:"created_at"`
	SourceText string    `yaml:"source_text"`
	TargetText string    `yaml:"target_text"`
	IsFavorite bool      `yaml:"is_favorite"`
}

// Store persists the full entry collection after every mutation.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Ledger is the ordered, mutable collection of practice entries and the sole
// writer of its persisted form. Every mutation triggers a synchronous
// best-effort flush; the in-memory state stays authoritative for the process
// lifetime even when a flush fails.
//
// Lookup is a linear scan on id. The collection is bounded by realistic daily
// usage, so no index is kept.
//
// Ledger is not safe for concurrent use; callers serialize access.
type Ledger struct {
	store   Store
	entries []Entry
}

// NewLedger loads the persisted entries from store. An absent or undecodable
// blob means starting empty, never a failure.
func NewLedger(store Store) *Ledger {
	entries, err := store.Load()
	if err != nil {
		slog.Default().Warn("failed to load history, starting empty", "error", err)
		entries = nil
	}
	return &Ledger{
		store:   store,
		entries: entries,
	}
}

// Entries returns a copy of the collection, newest first.
func (l *Ledger) Entries() []Entry {
	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// Append inserts a completed entry at the head.
func (l *Ledger) Append(sourceText, targetText string) Entry {
	entry := newEntry(sourceText, targetText)
	l.entries = append([]Entry{entry}, l.entries...)
	l.flush()
	return entry
}

// StartPlaceholder inserts an empty entry at the head, reserving a slot
// before transcription completes.
func (l *Ledger) StartPlaceholder() Entry {
	return l.Append("", "")
}

// AmendSource rewrites the source text of the entry with the given id.
// No-op if the id is absent.
func (l *Ledger) AmendSource(id uuid.UUID, text string) {
	if index := l.indexOf(id); index >= 0 {
		l.entries[index].SourceText = text
		l.flush()
	}
}

// AmendTarget rewrites the target text of the entry with the given id.
// No-op if the id is absent.
func (l *Ledger) AmendTarget(id uuid.UUID, text string) {
	if index := l.indexOf(id); index >= 0 {
		l.entries[index].TargetText = text
		l.flush()
	}
}

// ToggleFavorite flips the favorite flag of the entry with the given id and
// returns the new value. The second result reports whether the id was found.
func (l *Ledger) ToggleFavorite(id uuid.UUID) (bool, bool) {
	index := l.indexOf(id)
	if index < 0 {
		return false, false
	}
	l.entries[index].IsFavorite = !l.entries[index].IsFavorite
	l.flush()
	return l.entries[index].IsFavorite, true
}

// Remove deletes the entry with the given id. No-op if the id is absent.
func (l *Ledger) Remove(id uuid.UUID) {
	index := l.indexOf(id)
	if index < 0 {
		return
	}
	l.entries = append(l.entries[:index], l.entries[index+1:]...)
	l.flush()
}

// Find returns the entry with the given id.
func (l *Ledger) Find(id uuid.UUID) (Entry, bool) {
	if index := l.indexOf(id); index >= 0 {
		return l.entries[index], true
	}
	return Entry{}, false
}

func (l *Ledger) indexOf(id uuid.UUID) int {
	for i, entry := range l.entries {
		if entry.ID == id {
			return i
		}
	}
	return -1
}

// flush persists the full collection. Failures are swallowed so a broken disk
// never surfaces to the learner; the in-memory state remains authoritative.
func (l *Ledger) flush() {
	if err := l.store.Save(l.entries); err != nil {
		slog.Default().Warn("failed to persist history", "error", err)
	}
}

func newEntry(sourceText, targetText string) Entry {
	return Entry{
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		SourceText: sourceText,
		TargetText: targetText,
	}
}
