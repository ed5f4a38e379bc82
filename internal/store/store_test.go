package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamraw-backend/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "contacts.json"))
}

func testMessage(id, ts string) models.ContactMessage {
	return models.ContactMessage{
		ID:          id,
		FullName:    "Jordan Smith",
		Email:       "jordan@example.com",
		InquiryType: models.InquiryGeneral,
		Message:     "Hello there, I am interested",
		Timestamp:   ts,
		Status:      models.StatusUnread,
	}
}

func TestListMissingFileIsEmpty(t *testing.T) {
	st := newTestStore(t)
	msgs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestListCorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	st := NewStore(path)
	msgs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestAppendRoundTrip(t *testing.T) {
	st := newTestStore(t)
	msg := testMessage(NewMessageID(), time.Now().UTC().Format(time.RFC3339))
	require.NoError(t, st.Append(msg))

	msgs, err := st.List()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, msg, msgs[0])
	assert.Equal(t, models.StatusUnread, msgs[0].Status)
	assert.False(t, msgs[0].Replied)
}

func TestListNewestFirst(t *testing.T) {
	st := newTestStore(t)
	old := testMessage("msg_old", "2025-01-01T10:00:00Z")
	mid := testMessage("msg_mid", "2025-06-01T10:00:00Z")
	newest := testMessage("msg_new", "2025-12-01T10:00:00Z")

	// Insert out of order; List must sort by timestamp.
	require.NoError(t, st.Append(mid))
	require.NoError(t, st.Append(old))
	require.NoError(t, st.Append(newest))

	msgs, err := st.List()
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "msg_new", msgs[0].ID)
	assert.Equal(t, "msg_mid", msgs[1].ID)
	assert.Equal(t, "msg_old", msgs[2].ID)
}

func TestUpdateStatus(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Append(testMessage("msg_1", "2025-01-01T10:00:00Z")))

	updated, err := st.UpdateStatus("msg_1", models.StatusRead)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRead, updated.Status)

	total, unread, err := st.Counts()
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, 0, unread)
}

func TestUpdateReplied(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Append(testMessage("msg_1", "2025-01-01T10:00:00Z")))

	updated, err := st.UpdateReplied("msg_1", true)
	require.NoError(t, err)
	assert.True(t, updated.Replied)

	// Status untouched by a replied-only update.
	assert.Equal(t, models.StatusUnread, updated.Status)
}

func TestUpdateUnknownID(t *testing.T) {
	st := newTestStore(t)
	_, err := st.UpdateStatus("msg_missing", models.StatusRead)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Append(testMessage("msg_1", "2025-01-01T10:00:00Z")))
	require.NoError(t, st.Append(testMessage("msg_2", "2025-02-01T10:00:00Z")))

	require.NoError(t, st.Delete("msg_1"))

	msgs, err := st.List()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "msg_2", msgs[0].ID)
}

func TestDeleteUnknownIDLeavesCollection(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Append(testMessage("msg_1", "2025-01-01T10:00:00Z")))

	assert.ErrorIs(t, st.Delete("msg_missing"), ErrNotFound)

	msgs, err := st.List()
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestGet(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Append(testMessage("msg_1", "2025-01-01T10:00:00Z")))

	msg, err := st.Get("msg_1")
	require.NoError(t, err)
	assert.Equal(t, "msg_1", msg.ID)

	_, err = st.Get("msg_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileIsPrettyPrintedArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")
	st := NewStore(path)
	require.NoError(t, st.Append(testMessage("msg_1", "2025-01-01T10:00:00Z")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[\n"))
	assert.Contains(t, string(data), "\n  {")
}

func TestNewMessageID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewMessageID()
		assert.True(t, strings.HasPrefix(id, "msg_"))
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
