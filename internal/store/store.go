package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"teamraw-backend/pkg/models"
)

// ErrNotFound is returned when no message matches the given id.
var ErrNotFound = errors.New("contact message not found")

// Store persists the contact-message collection as a single pretty-printed
// JSON array on disk. Every mutation rewrites the whole file. A mutex
// serializes the read-modify-write sequence so concurrent requests within
// this process cannot lose updates; cross-process safety is out of scope.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Update carries the mutable fields of a PATCH. Nil means "leave as is".
type Update struct {
	Status  *string
	Replied *bool
}

// List returns all messages, newest timestamp first. A missing or corrupt
// file reads as an empty collection so first run needs no setup step.
func (s *Store) List() ([]models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.read()
	sortNewestFirst(msgs)
	return msgs, nil
}

// Get returns the message with the given id, or ErrNotFound.
func (s *Store) Get(id string) (models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.read() {
		if m.ID == id {
			return m, nil
		}
	}
	return models.ContactMessage{}, ErrNotFound
}

// Append adds msg to the front of the collection and persists it. The caller
// guarantees id uniqueness via NewMessageID.
func (s *Store) Append(msg models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := append([]models.ContactMessage{msg}, s.read()...)
	return s.write(msgs)
}

// Apply mutates the status/replied fields of the message with the given id
// and persists the collection, returning the updated record.
func (s *Store) Apply(id string, upd Update) (models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.read()
	for i := range msgs {
		if msgs[i].ID != id {
			continue
		}
		if upd.Status != nil {
			msgs[i].Status = *upd.Status
		}
		if upd.Replied != nil {
			msgs[i].Replied = *upd.Replied
		}
		if err := s.write(msgs); err != nil {
			return models.ContactMessage{}, err
		}
		return msgs[i], nil
	}
	return models.ContactMessage{}, ErrNotFound
}

// UpdateStatus marks the message read or unread.
func (s *Store) UpdateStatus(id, status string) (models.ContactMessage, error) {
	return s.Apply(id, Update{Status: &status})
}

// UpdateReplied flips the replied flag.
func (s *Store) UpdateReplied(id string, replied bool) (models.ContactMessage, error) {
	return s.Apply(id, Update{Replied: &replied})
}

// Delete removes the message with the given id and persists the remainder.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.read()
	for i := range msgs {
		if msgs[i].ID == id {
			msgs = append(msgs[:i], msgs[i+1:]...)
			return s.write(msgs)
		}
	}
	return ErrNotFound
}

// Counts returns the total and unread message counts.
func (s *Store) Counts() (total, unread int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.read() {
		total++
		if m.Status == models.StatusUnread {
			unread++
		}
	}
	return total, unread, nil
}

// read loads the collection from disk. Callers must hold s.mu.
func (s *Store) read() []models.ContactMessage {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []models.ContactMessage{}
	}
	var msgs []models.ContactMessage
	if err := json.Unmarshal(data, &msgs); err != nil {
		return []models.ContactMessage{}
	}
	return msgs
}

// write persists the collection. Callers must hold s.mu. Unlike read, write
// failures are reported: silently losing a write is worse than an error.
func (s *Store) write(msgs []models.ContactMessage) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(msgs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode contacts: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write contacts file: %w", err)
	}
	return nil
}

func sortNewestFirst(msgs []models.ContactMessage) {
	sort.SliceStable(msgs, func(i, j int) bool {
		ti, _ := time.Parse(time.RFC3339, msgs[i].Timestamp)
		tj, _ := time.Parse(time.RFC3339, msgs[j].Timestamp)
		return ti.After(tj)
	})
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewMessageID generates an id of the form msg_<unix-millis>_<9 random
// base36 chars>. The millisecond prefix plus random suffix makes collisions
// practically impossible at this traffic level.
func NewMessageID() string {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively fatal elsewhere; fall back to
		// the timestamp alone rather than panic in a request path.
		return fmt.Sprintf("msg_%d", time.Now().UnixMilli())
	}
	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return fmt.Sprintf("msg_%d_%s", time.Now().UnixMilli(), buf)
}
