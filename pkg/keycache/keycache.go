// Package keycache memoizes solved discrete-log instances, an LRU cache
// in front of an optional persistent store.
package keycache

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"github.com/bluele/gcache"

	"github.com/korthochain/dlp/pkg/dlp"
	"github.com/korthochain/dlp/pkg/store"
)

const defaultSize = 1024

type KeyCache struct {
	cache gcache.Cache
	db    store.DB
}

// New builds a cache of at most size entries over db. A nil db keeps
// the cache purely in memory.
func New(size int, db store.DB) *KeyCache {
	if size <= 0 {
		size = defaultSize
	}
	return &KeyCache{
		cache: gcache.New(size).LRU().Build(),
		db:    db,
	}
}

// CacheKey derives the store key of an instance from its group
// parameters. Length prefixes keep distinct tuples from colliding
// after concatenation.
func CacheKey(prm *dlp.Params) []byte {
	h := sha256.New()
	for _, v := range []*big.Int{prm.Base, prm.P, prm.N, prm.Y} {
		b := v.Bytes()
		var ln [4]byte
		binary.BigEndian.PutUint32(ln[:], uint32(len(b)))
		h.Write(ln[:])
		h.Write(b)
	}
	return h.Sum(nil)
}

// Get returns the memoized discrete log of prm, consulting memory
// first and the store second. Store hits are promoted into memory.
func (kc *KeyCache) Get(prm *dlp.Params) (*big.Int, bool) {
	k := CacheKey(prm)
	if v, err := kc.cache.Get(string(k)); err == nil {
		return new(big.Int).Set(v.(*big.Int)), true
	}
	if kc.db == nil {
		return nil, false
	}
	buf, err := kc.db.Get(k)
	if err != nil {
		return nil, false
	}
	var rec Record
	if err := rec.UnmarshalBinary(buf); err != nil || !rec.Found {
		return nil, false
	}
	key := new(big.Int).SetBytes(rec.Key)
	kc.cache.Set(string(k), key)
	return new(big.Int).Set(key), true
}

// Put records a solved instance in memory and, when a store is
// attached, on disk.
func (kc *KeyCache) Put(prm *dlp.Params, key, seed *big.Int) error {
	k := CacheKey(prm)
	kc.cache.Set(string(k), new(big.Int).Set(key))
	if kc.db == nil {
		return nil
	}
	rec := Record{
		Key:   key.Bytes(),
		Seed:  seed.Bytes(),
		Found: true,
	}
	buf, err := rec.MarshalBinary()
	if err != nil {
		return err
	}
	return kc.db.Set(k, buf)
}
