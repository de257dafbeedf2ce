package badgercache

import (
	"encoding/json"

	"github.com/dgraph-io/badger/v3"

	"github.com/octiline/octigrid/solver"
)

// entry is the on-disk record for one cache key: the starter values a
// prior solve produced and the objective score they achieved.
type entry struct {
	Starter map[string]float64 `json:"starter"`
	Score   float64            `json:"score"`
}

// Store is an on-disk solver.Cache backed by badger, grounded on
// fine-structures-fine.SDK/lib2x3/catalog/catalog.go's OpenCatalog
// (badger.DefaultOptions + badger.Open with logging disabled) and its
// db.View/db.Update transaction pattern for reads and writes.
type Store struct {
	db        *badger.DB
	threshold float64
}

var _ solver.Cache = (*Store)(nil)

// Open opens (creating if necessary) a badger-backed cache at dir.
// threshold gates Store: a solution only overwrites an existing entry
// if its score is within threshold of the one already cached.
func Open(dir string, threshold float64) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db, threshold: threshold}, nil
}

// Close releases the underlying badger handle.
func (s *Store) Close() error { return s.db.Close() }

// Load returns the cached starter for key, if any.
func (s *Store) Load(key string) (map[string]float64, bool) {
	e, ok := s.get(key)
	if !ok {
		return nil, false
	}

	return e.Starter, true
}

// Store records starter under key if no entry exists yet, or if score
// is within threshold of the existing entry's score.
func (s *Store) Store(key string, starter map[string]float64, score float64) error {
	if prev, ok := s.get(key); ok && score > prev.Score+s.threshold {
		return nil
	}

	buf, err := json.Marshal(entry{Starter: starter, Score: score})
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), buf)
	})
}

func (s *Store) get(key string) (entry, bool) {
	var e entry
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &e)
		})
	})
	if err != nil {
		return entry{}, false
	}

	return e, true
}
