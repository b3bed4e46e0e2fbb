package sqlite

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/trellis/pkg/types"
)

func attachedStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s := NewStore()
	require.NoError(t, s.Attach(dir))
	t.Cleanup(func() { s.Detach() })
	return s, dir
}

func pushAll(t *testing.T, s *Store, messages ...string) {
	t.Helper()
	for _, m := range messages {
		_, err := s.Push(m)
		require.NoError(t, err)
	}
}

func messages(entries []types.StashEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

func TestStore_PushAssignsUUIDv7(t *testing.T) {
	s, _ := attachedStore(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	e, err := s.Push("first note")
	require.NoError(t, err)

	id, err := uuid.Parse(e.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Equal(t, "first note", e.Message)
	assert.True(t, fixed.Equal(e.CreatedAt))

	got, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
	assert.True(t, fixed.Equal(got.CreatedAt))
}

func TestStore_ListNewestFirst(t *testing.T) {
	s, _ := attachedStore(t)
	pushAll(t, s, "a", "b", "c")

	entries, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, messages(entries))
}

func TestStore_ListEmpty(t *testing.T) {
	s, _ := attachedStore(t)

	entries, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_Get(t *testing.T) {
	s, _ := attachedStore(t)
	pushAll(t, s, "a", "b", "c")

	tests := []struct {
		position int
		want     string
		wantErr  error
	}{
		{position: 0, want: "c"},
		{position: 2, want: "a"},
		{position: 3, wantErr: types.ErrIndexOutOfBounds},
		{position: -1, wantErr: types.ErrIndexOutOfBounds},
	}
	for _, tt := range tests {
		e, err := s.Get(tt.position)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, "position %d", tt.position)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, e.Message)
	}
}

func TestStore_PopAndDrop(t *testing.T) {
	s, _ := attachedStore(t)
	pushAll(t, s, "a", "b", "c", "d")

	popped, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, "d", popped.Message)

	dropped, err := s.Drop(1)
	require.NoError(t, err)
	assert.Equal(t, "b", dropped.Message)

	entries, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, messages(entries))

	_, err = s.Drop(5)
	assert.ErrorIs(t, err, types.ErrIndexOutOfBounds)
}

func TestStore_PopEmpty(t *testing.T) {
	s, _ := attachedStore(t)

	_, err := s.Pop()
	assert.ErrorIs(t, err, types.ErrIndexOutOfBounds)
	assert.Equal(t, types.KindIndexOutOfBounds, types.KindOf(err))
}

func TestStore_PushAfterDropKeepsOrder(t *testing.T) {
	s, _ := attachedStore(t)
	pushAll(t, s, "a", "b")
	_, err := s.Pop()
	require.NoError(t, err)
	pushAll(t, s, "c")

	entries, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, messages(entries))
}

func TestStore_Clear(t *testing.T) {
	s, _ := attachedStore(t)
	pushAll(t, s, "a", "b", "c")

	n, err := s.Clear()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = s.Clear()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestStore_RejectsEmptyMessage(t *testing.T) {
	s, _ := attachedStore(t)

	_, err := s.Push("   ")
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestStore_PersistsAcrossAttach(t *testing.T) {
	s, dir := attachedStore(t)
	pushAll(t, s, "kept")
	require.NoError(t, s.Detach())

	again := NewStore()
	require.NoError(t, again.Attach(dir))
	defer again.Detach()

	e, err := again.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "kept", e.Message)
}

func TestStore_AttachLifecycle(t *testing.T) {
	s := NewStore()

	_, err := s.Push("x")
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = s.List()
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = s.Get(0)
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = s.Drop(0)
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = s.Clear()
	assert.ErrorIs(t, err, types.ErrStoreDetached)

	assert.ErrorIs(t, s.Attach(""), types.ErrInvalidArgument)

	dir := t.TempDir()
	require.NoError(t, s.Attach(dir))
	assert.ErrorIs(t, s.Attach(dir), types.ErrStoreAttached)

	require.NoError(t, s.Detach())
	require.NoError(t, s.Detach())
}
