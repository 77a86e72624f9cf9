// Package solver wires the rho engine to configuration, the key cache
// and the optional persistent store.
package solver

import (
	"math/big"
	"sync"

	"go.uber.org/zap"

	"github.com/korthochain/dlp/pkg/config"
	"github.com/korthochain/dlp/pkg/dlp"
	"github.com/korthochain/dlp/pkg/keycache"
	"github.com/korthochain/dlp/pkg/logger"
	"github.com/korthochain/dlp/pkg/store"
)

const defaultWorkers = 4

type Solver struct {
	cfg   *config.SolverConfig
	cache *keycache.KeyCache
}

// Result is the outcome of one instance of a batch.
type Result struct {
	Key   *big.Int
	Found bool
	Err   error
}

// New builds a solver. db may be nil, in which case solved keys are
// memoized in memory only.
func New(cfg *config.SolverConfig, db store.DB) *Solver {
	return &Solver{
		cfg:   cfg,
		cache: keycache.New(cfg.CacheSize, db),
	}
}

// Solve returns the discrete log of prm.Y, consulting the cache before
// running the search with the configured seed and retry limit.
func (s *Solver) Solve(prm *dlp.Params) (*big.Int, bool, error) {
	return s.solveSeeded(prm, big.NewInt(s.cfg.Seed))
}

func (s *Solver) solveSeeded(prm *dlp.Params, seed *big.Int) (*big.Int, bool, error) {
	if key, ok := s.cache.Get(prm); ok {
		return key, true, nil
	}

	key, found, err := prm.Solve(s.cfg.RetryLimit, seed)
	if err != nil {
		logger.Error("search aborted",
			zap.Error(err),
			zap.String("seed", seed.String()))
		return nil, false, err
	}
	if !found {
		logger.Info("no key found",
			zap.Uint("retrylimit", s.cfg.RetryLimit),
			zap.String("seed", seed.String()),
			zap.Int("orderbits", prm.N.BitLen()))
		return nil, false, nil
	}

	logger.Debug("key found",
		zap.String("seed", seed.String()),
		zap.Int("orderbits", prm.N.BitLen()))
	if err := s.cache.Put(prm, key, seed); err != nil {
		logger.Warn("failed to persist solved key", zap.Error(err))
	}
	return key, true, nil
}

// SolveBatch solves independent instances concurrently. Each instance
// runs with its own derived seed, so the outcome per instance does not
// depend on scheduling.
func (s *Solver) SolveBatch(prms []*dlp.Params) []*Result {
	workers := s.cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	results := make([]*Result, len(prms))
	idx := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				seed := big.NewInt(s.cfg.Seed + int64(i))
				key, found, err := s.solveSeeded(prms[i], seed)
				results[i] = &Result{Key: key, Found: found, Err: err}
			}
		}()
	}
	for i := range prms {
		idx <- i
	}
	close(idx)
	wg.Wait()
	return results
}
