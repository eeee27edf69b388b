// Package store keeps analysis reports for a limited time so they can be
// fetched again by ID. Reports live in memory (L1) and, when configured, in
// Redis (L2). L2 failures never fail a request: the store falls back to L1.
package store

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"sync"
	"sync/atomic"
	"time"

	"resumatch/internal/config"
	"resumatch/internal/errors"
	"resumatch/internal/types"
)

// Stats is a snapshot of store counters.
type Stats struct {
	Entries int            `json:"entries"`
	Hits    int64          `json:"hits"`
	Misses  int64          `json:"misses"`
	Redis   bool           `json:"redis"`
	Breaker map[string]any `json:"breaker"`
}

type entry struct {
	report    *types.AnalysisReport
	expiresAt time.Time
}

// ResultStore is a TTL store for analysis reports, safe for concurrent use.
type ResultStore struct {
	l1              sync.Map // id → *entry
	l2              Backend  // nil when Redis is disabled
	ttl             time.Duration
	maxEntries      int
	cleanupInterval time.Duration
	logger          *errors.Logger

	hits   atomic.Int64
	misses atomic.Int64

	now       func() time.Time
	stop      chan struct{}
	closeOnce sync.Once
}

// New creates a store with an optional L2 backend and starts its cleanup
// loop. The backend is wrapped in a circuit breaker per cfg.
func New(cfg config.StoreConfig, l2 Backend, logger *errors.Logger) *ResultStore {
	return newResultStore(cfg, l2, logger, time.Now)
}

func newResultStore(cfg config.StoreConfig, l2 Backend, logger *errors.Logger, now func() time.Time) *ResultStore {
	if logger == nil {
		logger = errors.NewNopLogger()
	}
	s := &ResultStore{
		ttl:             cfg.TTL,
		maxEntries:      cfg.MaxEntries,
		cleanupInterval: cfg.CleanupInterval,
		logger:          logger,
		now:             now,
		stop:            make(chan struct{}),
	}
	if l2 != nil {
		s.l2 = newBreakerBackend(l2, cfg.CircuitBreaker, logger)
	}

	logger.Info("Result store initialized",
		"ttl", cfg.TTL.String(),
		"max_entries", cfg.MaxEntries,
		"redis", s.l2 != nil)

	go s.cleanupLoop()
	return s
}

// NewFromConfig creates a store, connecting to Redis when enabled. An
// unreachable Redis disables L2 with a warning.
func NewFromConfig(ctx context.Context, cfg config.StoreConfig, logger *errors.Logger) *ResultStore {
	if logger == nil {
		logger = errors.NewNopLogger()
	}
	if !cfg.Redis.Enabled {
		return New(cfg, nil, logger)
	}

	rb := NewRedisBackend(cfg.Redis)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rb.Ping(pingCtx); err != nil {
		logger.Warn("Redis unreachable, result store running in memory only",
			"addr", cfg.Redis.Addr,
			"error", err.Error())
		_ = rb.Close()
		return New(cfg, nil, logger)
	}
	logger.Info("Redis result store connected", "addr", cfg.Redis.Addr)
	return New(cfg, rb, logger)
}

// Save stores a report under its ID.
func (s *ResultStore) Save(ctx context.Context, report *types.AnalysisReport) error {
	if report == nil || report.ID == "" {
		return errors.NewValidationError(errors.ErrCodeInvalidRequest, "report must have an ID", nil)
	}

	s.evictIfNeeded()
	s.l1.Store(report.ID, &entry{report: report, expiresAt: s.now().Add(s.ttl)})

	if s.l2 == nil {
		return nil
	}
	data, err := json.Marshal(report)
	if err != nil {
		return errors.NewInternalError(errors.ErrCodeStoreUnavailable, "failed to encode report", err)
	}
	if err := s.l2.Set(ctx, report.ID, data, s.ttl); err != nil {
		s.logger.Warn("Result store L2 set failed", "id", report.ID, "error", err.Error())
	}
	return nil
}

// Get returns the report stored under id, or a NotFound error.
func (s *ResultStore) Get(ctx context.Context, id string) (*types.AnalysisReport, error) {
	if val, ok := s.l1.Load(id); ok {
		e := val.(*entry)
		if s.now().Before(e.expiresAt) {
			s.hits.Add(1)
			return e.report, nil
		}
		s.l1.Delete(id)
	}

	if s.l2 != nil {
		if report, ok := s.getL2(ctx, id); ok {
			s.hits.Add(1)
			s.l1.Store(id, &entry{report: report, expiresAt: s.now().Add(s.ttl)})
			return report, nil
		}
	}

	s.misses.Add(1)
	return nil, errors.NewNotFoundError(errors.ErrCodeResultNotFound, "no analysis result for id "+id)
}

func (s *ResultStore) getL2(ctx context.Context, id string) (*types.AnalysisReport, bool) {
	data, err := s.l2.Get(ctx, id)
	if err != nil {
		if !stderrors.Is(err, ErrMiss) {
			s.logger.Debug("Result store L2 get failed", "id", id, "error", err.Error())
		}
		return nil, false
	}
	var report types.AnalysisReport
	if err := json.Unmarshal(data, &report); err != nil {
		s.logger.Warn("Result store L2 entry corrupt", "id", id, "error", err.Error())
		return nil, false
	}
	return &report, true
}

// Stats returns current counters.
func (s *ResultStore) Stats() Stats {
	count := 0
	s.l1.Range(func(_, _ any) bool {
		count++
		return true
	})
	st := Stats{
		Entries: count,
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
		Redis:   s.l2 != nil,
		Breaker: map[string]any{"enabled": false},
	}
	if bb, ok := s.l2.(*breakerBackend); ok {
		st.Breaker = bb.stats()
	}
	return st
}

// IsHealthy reports false only while the L2 circuit breaker is not closed.
func (s *ResultStore) IsHealthy() bool {
	if bb, ok := s.l2.(*breakerBackend); ok {
		return bb.healthy()
	}
	return true
}

// Close stops the cleanup loop and closes the L2 backend.
func (s *ResultStore) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.stop)
		if s.l2 != nil {
			err = s.l2.Close()
		}
	})
	return err
}

// evictIfNeeded removes entries when L1 exceeds maxEntries.
// Removes expired entries first, then the oldest entries.
func (s *ResultStore) evictIfNeeded() {
	if s.maxEntries <= 0 {
		return
	}

	count := 0
	s.l1.Range(func(_, _ any) bool {
		count++
		return true
	})
	if count < s.maxEntries {
		return
	}

	// Phase 1: remove expired
	now := s.now()
	s.l1.Range(func(key, val any) bool {
		if e, ok := val.(*entry); ok && now.After(e.expiresAt) {
			s.l1.Delete(key)
			count--
		}
		return count >= s.maxEntries
	})

	// Phase 2: remove oldest entries until under limit
	for count >= s.maxEntries {
		var oldestKey any
		var oldestAt time.Time
		s.l1.Range(func(key, val any) bool {
			if e, ok := val.(*entry); ok {
				// Earlier expiry = older entry (since expiry = savedAt + ttl)
				if oldestKey == nil || e.expiresAt.Before(oldestAt) {
					oldestKey = key
					oldestAt = e.expiresAt
				}
			}
			return true
		})
		if oldestKey == nil {
			break
		}
		s.l1.Delete(oldestKey)
		count--
	}
}

func (s *ResultStore) sweep() {
	now := s.now()
	s.l1.Range(func(key, val any) bool {
		if e, ok := val.(*entry); ok && now.After(e.expiresAt) {
			s.l1.Delete(key)
		}
		return true
	})
}

// cleanupLoop periodically removes expired L1 entries.
func (s *ResultStore) cleanupLoop() {
	interval := s.cleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stop:
			return
		}
	}
}
