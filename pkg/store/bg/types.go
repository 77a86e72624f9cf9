package bg

import (
	"github.com/dgraph-io/badger"
)

type bgStore struct {
	db *badger.DB
}

type bgIterator struct {
	err     error
	started bool
	tx      *badger.Txn
	itr     *badger.Iterator
}
