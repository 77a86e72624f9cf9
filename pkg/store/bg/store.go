package bg

import (
	"github.com/dgraph-io/badger"

	"github.com/korthochain/dlp/pkg/store"
)

// New wraps an open badger database as a store.DB.
func New(db *badger.DB) store.DB {
	return &bgStore{db: db}
}

// Open opens the badger database at path, creating it if needed.
func Open(path string) (store.DB, error) {
	db, err := badger.Open(badger.DefaultOptions(path))
	if err != nil {
		return nil, err
	}
	return &bgStore{db: db}, nil
}

func (s *bgStore) Sync() error {
	return s.db.Sync()
}

func (s *bgStore) Close() error {
	return s.db.Close()
}

func (s *bgStore) Set(k, v []byte) error {
	return s.db.Update(func(tx *badger.Txn) error {
		return tx.Set(k, v)
	})
}

func (s *bgStore) Del(k []byte) error {
	return s.db.Update(func(tx *badger.Txn) error {
		return tx.Delete(k)
	})
}

func (s *bgStore) Get(k []byte) ([]byte, error) {
	var v []byte
	err := s.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get(k)
		if err != nil {
			return err
		}
		v, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, store.NotExist
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
