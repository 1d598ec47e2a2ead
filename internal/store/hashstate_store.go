package store

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"seprim/internal/domain"
)

const (
	hashStateDir = "hashstate"
	hashStateExt = ".json"
)

// hashStateRecord is the on-disk form of a domain.HashState.
type hashStateRecord struct {
	DigestLength uint8  `json:"digest_length"`
	Intermediate string `json:"intermediate"`
	Counted      uint32 `json:"counted"`
	Remainder    string `json:"remainder"`
}

// hashStateFile is what lands on disk: exactly one of State or Sealed is set.
type hashStateFile struct {
	State  *hashStateRecord `json:"state,omitempty"`
	Sealed json.RawMessage  `json:"sealed,omitempty"`
}

// HashStateFileStore keeps named hash contexts under <dir>/hashstate, one
// JSON file each, optionally sealed under a passphrase.
type HashStateFileStore struct {
	dir string
	kdf kdfParams
	mu  sync.Mutex
}

var _ domain.HashStateStore = (*HashStateFileStore)(nil)

// Option tunes a HashStateFileStore.
type Option func(*HashStateFileStore)

// WithScrypt overrides the scrypt cost used for sealed states.
func WithScrypt(n, r, p int) Option {
	return func(s *HashStateFileStore) { s.kdf = kdfParams{N: n, R: r, P: p} }
}

// NewHashStateFileStore returns a store rooted at dir.
func NewHashStateFileStore(dir string, opts ...Option) *HashStateFileStore {
	s := &HashStateFileStore{dir: dir, kdf: defaultKDF()}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *HashStateFileStore) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", domain.Errorf(domain.KindConfiguration, "store.HashState", "invalid state name %q", name)
	}
	return filepath.Join(s.dir, hashStateDir, name+hashStateExt), nil
}

// SaveHashState writes st under name, sealed when passphrase is non-empty.
func (s *HashStateFileStore) SaveHashState(name string, st domain.HashState, passphrase string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := toRecord(st)
	var file hashStateFile
	if passphrase == "" {
		file.State = &rec
	} else {
		raw, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		sealed, err := seal(passphrase, name, raw, s.kdf)
		if err != nil {
			return err
		}
		file.Sealed = sealed
	}
	return writeJSON(path, file, 0o600)
}

// LoadHashState reads the state saved under name. ok is false when nothing
// was saved yet.
func (s *HashStateFileStore) LoadHashState(name string, passphrase string) (domain.HashState, bool, error) {
	path, err := s.path(name)
	if err != nil {
		return domain.HashState{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var file hashStateFile
	found, err := readJSON(path, &file)
	if err != nil || !found {
		return domain.HashState{}, false, err
	}

	rec := file.State
	if len(file.Sealed) > 0 {
		if passphrase == "" {
			return domain.HashState{}, false, domain.Errorf(domain.KindConfiguration, "store.HashState", "state %q is sealed; a passphrase is required", name)
		}
		raw, err := open(passphrase, name, file.Sealed)
		if err != nil {
			return domain.HashState{}, false, err
		}
		rec = new(hashStateRecord)
		if err := json.Unmarshal(raw, rec); err != nil {
			return domain.HashState{}, false, err
		}
	}
	if rec == nil {
		return domain.HashState{}, false, domain.Errorf(domain.KindConfiguration, "store.HashState", "state %q is empty", name)
	}
	st, err := fromRecord(*rec)
	if err != nil {
		return domain.HashState{}, false, err
	}
	return st, true, nil
}

// DeleteHashState removes the state saved under name, if any.
func (s *HashStateFileStore) DeleteHashState(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func toRecord(st domain.HashState) hashStateRecord {
	rec := hashStateRecord{
		DigestLength: uint8(st.Algorithm),
		Counted:      st.Counted,
		Remainder:    hex.EncodeToString(st.PendingRemainder()),
	}
	if st.Algorithm.Valid() {
		rec.Intermediate = hex.EncodeToString(st.ChainingValue())
	}
	return rec
}

func fromRecord(rec hashStateRecord) (domain.HashState, error) {
	const op = "store.HashState"
	alg := domain.HashAlgorithm(rec.DigestLength)
	if !alg.Valid() {
		return domain.HashState{}, domain.Errorf(domain.KindInvalidLength, op, "unsupported digest length %d", rec.DigestLength)
	}
	st := domain.HashState{Algorithm: alg, Counted: rec.Counted}

	chain, err := hex.DecodeString(rec.Intermediate)
	if err != nil {
		return domain.HashState{}, domain.Wrap(domain.KindConfiguration, op, "decode intermediate", err)
	}
	if len(chain) != 0 && len(chain) != alg.ChainingSize() {
		return domain.HashState{}, domain.Errorf(domain.KindInvalidLength, op, "%s intermediate is %d bytes, got %d", alg, alg.ChainingSize(), len(chain))
	}
	copy(st.Intermediate[:], chain)

	rem, err := hex.DecodeString(rec.Remainder)
	if err != nil {
		return domain.HashState{}, domain.Wrap(domain.KindConfiguration, op, "decode remainder", err)
	}
	if len(rem) >= alg.BlockSize() {
		return domain.HashState{}, domain.Errorf(domain.KindInvalidLength, op, "remainder of %d bytes is not shorter than a %s block", len(rem), alg)
	}
	copy(st.Remainder[:], rem)
	st.RemainderLen = len(rem)
	return st, nil
}
