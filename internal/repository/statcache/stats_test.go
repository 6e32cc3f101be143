package statcache

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/grazioso-salvare/shelterdex/internal/db/cache"
	"github.com/grazioso-salvare/shelterdex/internal/domain"
)

// --- Mocks ---

type mockSource struct {
	breedCalls int
	sexCalls   int
	ageCalls   int
	breeds     []domain.BreedCount
	ages       *domain.AgeSummary
	err        error
}

func (m *mockSource) BreedCounts(context.Context, domain.Criteria) ([]domain.BreedCount, error) {
	m.breedCalls++
	return m.breeds, m.err
}

func (m *mockSource) SexCounts(context.Context, domain.Criteria) ([]domain.SexCount, error) {
	m.sexCalls++
	return nil, m.err
}

func (m *mockSource) AgeSummary(context.Context, domain.Criteria) (*domain.AgeSummary, error) {
	m.ageCalls++
	return m.ages, m.err
}

type mockKV struct {
	data   map[string][]byte
	getErr error
	setErr error
}

func newMockKV() *mockKV { return &mockKV{data: map[string][]byte{}} }

func (m *mockKV) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, cache.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockKV) SetTTL(_ context.Context, key string, value []byte, _ time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

// --- Tests ---

func TestBreedCounts_MissThenHit(t *testing.T) {
	source := &mockSource{breeds: []domain.BreedCount{{Breed: "Newfoundland", Count: 5}}}
	kv := newMockKV()
	cached := New(source, kv, time.Minute, nil, zap.NewNop())

	crit := domain.CriteriaFor(domain.FilterWater)

	first, err := cached.BreedCounts(context.Background(), crit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := cached.BreedCounts(context.Background(), crit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if source.breedCalls != 1 {
		t.Errorf("inner calls: got %d, want 1 (second read from cache)", source.breedCalls)
	}
	if len(first) != 1 || len(second) != 1 || second[0].Breed != "Newfoundland" {
		t.Errorf("results: first=%v second=%v", first, second)
	}
}

func TestBreedCounts_DistinctCriteriaDistinctKeys(t *testing.T) {
	source := &mockSource{}
	kv := newMockKV()
	cached := New(source, kv, time.Minute, nil, zap.NewNop())

	_, _ = cached.BreedCounts(context.Background(), domain.CriteriaFor(domain.FilterWater))
	_, _ = cached.BreedCounts(context.Background(), domain.CriteriaFor(domain.FilterMountain))

	if source.breedCalls != 2 {
		t.Errorf("different criteria must not share a cache entry, got %d calls", source.breedCalls)
	}
}

func TestBreedCounts_CacheFailureDegradesToDirectRead(t *testing.T) {
	source := &mockSource{breeds: []domain.BreedCount{{Breed: "Bloodhound", Count: 2}}}
	kv := newMockKV()
	kv.getErr = errors.New("connection refused")
	kv.setErr = errors.New("connection refused")
	cached := New(source, kv, time.Minute, nil, zap.NewNop())

	out, err := cached.BreedCounts(context.Background(), domain.Criteria{})
	if err != nil {
		t.Fatalf("cache failure must not surface: %v", err)
	}
	if len(out) != 1 || out[0].Breed != "Bloodhound" {
		t.Errorf("got %v", out)
	}
}

func TestBreedCounts_CorruptEntryIsAMiss(t *testing.T) {
	source := &mockSource{breeds: []domain.BreedCount{{Breed: "Rottweiler", Count: 1}}}
	kv := newMockKV()
	cached := New(source, kv, time.Minute, nil, zap.NewNop())

	crit := domain.Criteria{}
	_, _ = cached.BreedCounts(context.Background(), crit)

	// Corrupt every stored entry, then read again.
	for k := range kv.data {
		kv.data[k] = []byte("{not json")
	}

	out, err := cached.BreedCounts(context.Background(), crit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.breedCalls != 2 {
		t.Errorf("corrupt entry must trigger recompute, got %d calls", source.breedCalls)
	}
	if len(out) != 1 {
		t.Errorf("got %v", out)
	}
}

func TestAgeSummary_NilRoundTrip(t *testing.T) {
	source := &mockSource{ages: nil}
	kv := newMockKV()
	cached := New(source, kv, time.Minute, nil, zap.NewNop())

	crit := domain.Criteria{}
	first, err := cached.AgeSummary(context.Background(), crit)
	if err != nil || first != nil {
		t.Fatalf("got %v, %v", first, err)
	}
	second, err := cached.AgeSummary(context.Background(), crit)
	if err != nil || second != nil {
		t.Fatalf("got %v, %v", second, err)
	}
	if source.ageCalls != 1 {
		t.Errorf("nil summary must still be cached, got %d calls", source.ageCalls)
	}
}

func TestSourceErrorPropagates(t *testing.T) {
	srcErr := errors.New("aggregate failed")
	cached := New(&mockSource{err: srcErr}, newMockKV(), time.Minute, nil, zap.NewNop())

	if _, err := cached.SexCounts(context.Background(), domain.Criteria{}); !errors.Is(err, srcErr) {
		t.Errorf("expected source error, got %v", err)
	}
}
