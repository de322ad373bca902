package repository

import (
	"container/list"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/okian/careerlens/internal/domain/model"
	"github.com/okian/careerlens/pkg/metrics"
)

// MemoryStore is a bounded, in-memory Store. Reports are evicted in
// insertion order once capacity is reached.
//
// Ranking order: score DESC, then AnalyzedAt ASC, then ReportID ASC.
type MemoryStore struct {
	mu       sync.RWMutex
	capacity int
	byID     map[string]*list.Element
	order    *list.List // of model.Report, oldest at the front
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		capacity: DefaultCapacity,
		byID:     make(map[string]*list.Element),
		order:    list.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save implements Store.
func (s *MemoryStore) Save(ctx context.Context, report model.Report) error {
	start := time.Now()
	defer observe("save", start)

	if err := ctx.Err(); err != nil {
		return err
	}
	if report.ID == "" {
		metrics.RecordErrorByComponent("repository", "missing_id")
		return ErrMissingID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.byID[report.ID]; ok {
		el.Value = report
		s.order.MoveToBack(el)
		return nil
	}
	s.byID[report.ID] = s.order.PushBack(report)
	for s.order.Len() > s.capacity {
		oldest := s.order.Front()
		delete(s.byID, oldest.Value.(model.Report).ID)
		s.order.Remove(oldest)
		metrics.RecordRepositoryEviction()
	}
	metrics.UpdateStoredReports(s.order.Len())
	return nil
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, id string) (model.Report, error) {
	start := time.Now()
	defer observe("get", start)

	if err := ctx.Err(); err != nil {
		return model.Report{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	el, ok := s.byID[id]
	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return model.Report{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return el.Value.(model.Report), nil
}

// TopN implements Store.
func (s *MemoryStore) TopN(ctx context.Context, domain model.Domain, n int) ([]Entry, error) {
	start := time.Now()
	defer observe("top_n", start)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n <= 0 {
		metrics.RecordErrorByComponent("repository", "invalid_limit")
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}

	s.mu.RLock()
	entries := make([]Entry, 0, s.order.Len())
	for el := s.order.Front(); el != nil; el = el.Next() {
		r := el.Value.(model.Report)
		if domain != "" && r.Domain != domain {
			continue
		}
		entries = append(entries, Entry{ReportID: r.ID, Domain: r.Domain, Score: r.Score, AnalyzedAt: r.AnalyzedAt})
	}
	s.mu.RUnlock()

	sortEntries(entries)
	assignRanksWithTies(entries)
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}

// Count implements Store.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.order.Len()
}

func observe(op string, start time.Time) {
	metrics.RecordRepositoryLatency(op, float64(time.Since(start).Microseconds())/1000)
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.AnalyzedAt.Equal(b.AnalyzedAt) {
			return a.AnalyzedAt.Before(b.AnalyzedAt)
		}
		return a.ReportID < b.ReportID
	})
}

// assignRanksWithTies gives equal scores the same rank; ranks stay consecutive.
func assignRanksWithTies(entries []Entry) {
	rank := 0
	for i := range entries {
		if i == 0 || entries[i].Score != entries[i-1].Score {
			rank++
		}
		entries[i].Rank = rank
	}
}
