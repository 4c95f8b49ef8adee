// SPDX-License-Identifier: MIT
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tbrpa/rpa"
)

// RunMeta describes one stored run.
type RunMeta struct {
	ID       string    `yaml:"id"`
	Model    string    `yaml:"model"`
	Orbitals int       `yaml:"orbitals"`
	Tuples   int       `yaml:"tuples"`
	Threads  int       `yaml:"threads"`
	Rescaled bool      `yaml:"rescaled"`
	Started  time.Time `yaml:"started"`
	Finished time.Time `yaml:"finished"`
}

// Store is a pebble-backed result store. Methods are safe for concurrent use.
type Store struct {
	mu sync.RWMutex
	db *pebble.DB
	wo *pebble.WriteOptions
}

type options struct {
	fs   vfs.FS
	sync bool
}

// Option configures Open.
type Option func(*options)

// WithFS opens the store on fs; vfs.NewMem() gives an in-memory store.
func WithFS(fs vfs.FS) Option {
	if fs == nil {
		panic("store: WithFS(nil)")
	}
	return func(o *options) { o.fs = fs }
}

// WithSync makes every write durable before it returns (default on).
func WithSync(on bool) Option {
	return func(o *options) { o.sync = on }
}

// Open opens or creates the store in dir.
func Open(dir string, opts ...Option) (*Store, error) {
	o := options{sync: true}
	for _, fn := range opts {
		fn(&o)
	}
	po := &pebble.Options{}
	if o.fs != nil {
		po.FS = o.fs
	}
	db, err := pebble.Open(dir, po)
	if err != nil {
		return nil, storeErrorf("Open", err)
	}
	wo := pebble.NoSync
	if o.sync {
		wo = pebble.Sync
	}

	return &Store{db: db, wo: wo}, nil
}

// Close flushes and closes the database. Closing twice is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return storeErrorf("Close", err)
	}

	return nil
}

// PutRun writes run metadata.
func (s *Store) PutRun(run uuid.UUID, meta RunMeta) error {
	meta.ID = run.String()
	raw, err := yaml.Marshal(meta)
	if err != nil {
		return storeErrorf("PutRun", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return storeErrorf("PutRun", ErrClosed)
	}
	if err := s.db.Set(metaKey(run), raw, s.wo); err != nil {
		return storeErrorf("PutRun", err)
	}

	return nil
}

// Run reads run metadata.
//
// Errors: ErrNotFound, ErrCorrupt, ErrClosed.
func (s *Store) Run(run uuid.UUID) (RunMeta, error) {
	var meta RunMeta
	raw, err := s.get(metaKey(run))
	if err != nil {
		return meta, storeErrorf("Run", err)
	}
	if err := yaml.Unmarshal(raw, &meta); err != nil {
		return meta, storeErrorf("Run", fmt.Errorf("%w: %v", ErrCorrupt, err))
	}

	return meta, nil
}

// Put writes the record for one sweep tuple.
func (s *Store) Put(run uuid.UUID, index int, p *rpa.Params) error {
	raw, err := encodeParams(p)
	if err != nil {
		return storeErrorf("Put", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return storeErrorf("Put", ErrClosed)
	}
	if err := s.db.Set(recordKey(run, index), raw, s.wo); err != nil {
		return storeErrorf("Put", err)
	}

	return nil
}

// PutAll writes results in one batch, keyed by their position.
func (s *Store) PutAll(run uuid.UUID, results []*rpa.Params) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return storeErrorf("PutAll", ErrClosed)
	}
	b := s.db.NewBatch()
	defer b.Close()
	for i, p := range results {
		raw, err := encodeParams(p)
		if err != nil {
			return storeErrorf("PutAll", fmt.Errorf("record %d: %w", i, err))
		}
		if err := b.Set(recordKey(run, i), raw, nil); err != nil {
			return storeErrorf("PutAll", err)
		}
	}
	if err := b.Commit(s.wo); err != nil {
		return storeErrorf("PutAll", err)
	}

	return nil
}

// Get reads the record at index.
//
// Errors: ErrNotFound, ErrCorrupt, ErrClosed.
func (s *Store) Get(run uuid.UUID, index int) (*rpa.Params, error) {
	raw, err := s.get(recordKey(run, index))
	if err != nil {
		return nil, storeErrorf("Get", err)
	}
	p, err := decodeParams(raw)
	if err != nil {
		return nil, storeErrorf("Get", err)
	}

	return p, nil
}

func (s *Store) get(key []byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, ErrClosed
	}
	val, closer, err := s.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	return append([]byte(nil), val...), nil
}

// Iterate calls fn for every record of run in index order. A non-nil error
// from fn stops the iteration and is returned.
func (s *Store) Iterate(run uuid.UUID, fn func(index int, p *rpa.Params) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return storeErrorf("Iterate", ErrClosed)
	}
	lower, upper := recordBounds(run)
	it, err := s.db.NewIter(&pebble.IterOptions{LowerBound: lower, UpperBound: upper})
	if err != nil {
		return storeErrorf("Iterate", err)
	}
	defer it.Close()
	for valid := it.First(); valid; valid = it.Next() {
		p, err := decodeParams(it.Value())
		if err != nil {
			return storeErrorf("Iterate", err)
		}
		if err := fn(indexOf(it.Key()), p); err != nil {
			return err
		}
	}

	return it.Error()
}

// Runs lists the ids of every run with metadata.
func (s *Store) Runs() ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, storeErrorf("Runs", ErrClosed)
	}
	it, err := s.db.NewIter(&pebble.IterOptions{LowerBound: []byte{prefixMeta}, UpperBound: []byte{prefixMeta + 1}})
	if err != nil {
		return nil, storeErrorf("Runs", err)
	}
	defer it.Close()
	var out []uuid.UUID
	for valid := it.First(); valid; valid = it.Next() {
		id, err := uuid.FromBytes(it.Key()[1:])
		if err != nil {
			return nil, storeErrorf("Runs", fmt.Errorf("%w: %v", ErrCorrupt, err))
		}
		out = append(out, id)
	}

	return out, it.Error()
}
