package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"seprim/internal/domain"
	"seprim/internal/store"
)

func TestStatic_CreatesZeroFilledArea(t *testing.T) {
	path := filepath.Join(t.TempDir(), "static.bin")
	s, err := store.OpenStatic(path, 64)
	require.NoError(t, err)
	require.Equal(t, 64, s.Size())

	b, err := s.ReadAt(0, 64)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 64), b)
}

func TestStatic_WritesLeaveOtherBytesIntact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "static.bin")
	s, err := store.OpenStatic(path, 32)
	require.NoError(t, err)

	require.NoError(t, s.WriteAtomic(0, []byte{1, 2, 3, 4}))
	require.NoError(t, s.WriteNonAtomic(28, []byte{9, 9, 9, 9}))
	require.NoError(t, s.WriteAtomic(2, []byte{0xAA}))

	want := make([]byte, 32)
	copy(want, []byte{1, 2, 0xAA, 4})
	copy(want[28:], []byte{9, 9, 9, 9})
	got, err := s.ReadAt(0, 32)
	require.NoError(t, err)
	require.Equal(t, want, got)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, want, onDisk)

	// No temp files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestStatic_ReopenKeepsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "static.bin")
	s, err := store.OpenStatic(path, 16)
	require.NoError(t, err)
	require.NoError(t, s.CopyIn(4, []byte("hello, world"), 5, false))

	again, err := store.OpenStatic(path, 16)
	require.NoError(t, err)
	b, err := again.ReadAt(4, 5)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), b)

	_, err = store.OpenStatic(path, 17)
	require.True(t, domain.IsKind(err, domain.KindConfiguration))
}

func TestStatic_Bounds(t *testing.T) {
	s, err := store.OpenStatic(filepath.Join(t.TempDir(), "static.bin"), 8)
	require.NoError(t, err)

	require.True(t, domain.IsKind(s.WriteAtomic(6, []byte{1, 2, 3}), domain.KindInvalidLength))
	require.True(t, domain.IsKind(s.WriteNonAtomic(-1, []byte{1}), domain.KindInvalidLength))
	require.True(t, domain.IsKind(s.WriteNonAtomic(0, nil), domain.KindInvalidLength))
	_, err = s.ReadAt(8, 1)
	require.True(t, domain.IsKind(err, domain.KindInvalidLength))
	require.True(t, domain.IsKind(s.CopyIn(0, []byte{1}, 2, true), domain.KindInvalidLength))

	_, err = store.OpenStatic(filepath.Join(t.TempDir(), "x"), 0)
	require.True(t, domain.IsKind(err, domain.KindInvalidLength))
}
