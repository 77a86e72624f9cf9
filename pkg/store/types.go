package store

import "errors"

var NotExist = errors.New("NotExist")

// DB is the key-value surface the solution store persists through.
type DB interface {
	Sync() error
	Close() error

	Del([]byte) error
	Set([]byte, []byte) error
	Get([]byte) ([]byte, error)

	NewIterator(prefix []byte, start []byte) Iterator
}

type Iterator interface {
	Next() bool

	Error() error

	Key() []byte

	Value() []byte

	Release()
}
