package store

import (
	"fmt"
	"os"
	"sync"

	"seprim/internal/domain"
	"seprim/internal/memory"
)

// Static is a fixed-size persistent memory area backed by one file.
//
// WriteAtomic rewrites the whole area through a temporary file and a rename,
// so an interruption leaves either the old or the new content. WriteNonAtomic
// patches the written bytes in place: nothing outside them is touched, but
// they may be torn if the process dies mid-write.
type Static struct {
	path string
	size int
	mu   sync.Mutex
}

var _ domain.StaticMemory = (*Static)(nil)

// OpenStatic opens the area at path, creating it zero-filled with size bytes
// if it does not exist. An existing file must have exactly size bytes.
func OpenStatic(path string, size int) (*Static, error) {
	const op = "store.OpenStatic"
	if size <= 0 {
		return nil, domain.Errorf(domain.KindInvalidLength, op, "size must be positive, got %d", size)
	}
	fi, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		if err := writeFile(path, make([]byte, size), 0o600); err != nil {
			return nil, fmt.Errorf("create static area: %w", err)
		}
	case err != nil:
		return nil, err
	case fi.Size() != int64(size):
		return nil, domain.Errorf(domain.KindConfiguration, op, "%s holds %d bytes, want %d", path, fi.Size(), size)
	}
	return &Static{path: path, size: size}, nil
}

func (s *Static) Size() int { return s.size }

func (s *Static) check(op string, off, n int) error {
	if err := memory.CheckLength(op, n); err != nil {
		return err
	}
	if off < 0 || off > s.size-n {
		return domain.Errorf(domain.KindInvalidLength, op, "range [%d, %d) outside the %d-byte area", off, off+n, s.size)
	}
	return nil
}

// ReadAt returns a copy of n bytes starting at off.
func (s *Static) ReadAt(off, n int) ([]byte, error) {
	if err := s.check("store.Static.ReadAt", off, n); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	out := make([]byte, n)
	if _, err := f.ReadAt(out, int64(off)); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteAtomic stores data at off so that either all of it lands or none.
func (s *Static) WriteAtomic(off int, data []byte) error {
	if err := s.check("store.Static.WriteAtomic", off, len(data)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	img, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	if len(img) != s.size {
		return domain.Errorf(domain.KindConfiguration, "store.Static.WriteAtomic", "area changed size to %d", len(img))
	}
	copy(img[off:], data)
	return writeFile(s.path, img, 0o600)
}

// WriteNonAtomic stores data at off in place.
func (s *Static) WriteNonAtomic(off int, data []byte) error {
	if err := s.check("store.Static.WriteNonAtomic", off, len(data)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	if _, err := f.WriteAt(data, int64(off)); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// CopyIn copies length bytes of src into the area at off, atomically or in
// place. src may be any caller region, including one just read from the area.
func (s *Static) CopyIn(off int, src []byte, length int, atomic bool) error {
	if err := memory.CheckLength("store.Static.CopyIn", length, src); err != nil {
		return err
	}
	if atomic {
		return s.WriteAtomic(off, src[:length])
	}
	return s.WriteNonAtomic(off, src[:length])
}
