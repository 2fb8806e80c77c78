package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guimashan/platfrom-sub000/internal/models"
)

// fakeSource counts calls and can be flipped into a failing state.
type fakeSource struct {
	records []models.KeywordRecord
	err     error
	calls   int
}

func (f *fakeSource) ListEnabledByPriority(ctx context.Context) ([]models.KeywordRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

// fakeClock starts at a fixed instant and advances only when told to.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func someRecords(n int) []models.KeywordRecord {
	records := make([]models.KeywordRecord, n)
	for i := range records {
		records[i] = models.KeywordRecord{Keyword: "kw", Priority: n - i, Enabled: true}
	}
	return records
}

func TestGetCachesWithinTTL(t *testing.T) {
	src := &fakeSource{records: someRecords(3)}
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	c := New(src, 5*time.Minute, clock.now)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		records, err := c.Get(ctx)
		if err != nil {
			t.Fatalf("Get error: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("got %d records, want 3", len(records))
		}
		clock.advance(30 * time.Second)
	}

	if src.calls != 1 {
		t.Errorf("source called %d times within TTL, want 1", src.calls)
	}
}

func TestGetRefreshesAfterTTL(t *testing.T) {
	src := &fakeSource{records: someRecords(3)}
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	c := New(src, 5*time.Minute, clock.now)

	ctx := context.Background()
	if _, err := c.Get(ctx); err != nil {
		t.Fatal(err)
	}

	src.records = someRecords(7)
	clock.advance(5 * time.Minute) // exactly the TTL counts as expired

	records, err := c.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 7 {
		t.Errorf("got %d records after refresh, want 7", len(records))
	}
	if src.calls != 2 {
		t.Errorf("source called %d times, want 2", src.calls)
	}
}

func TestGetServesStaleOnRefreshFailure(t *testing.T) {
	src := &fakeSource{records: someRecords(3)}
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	c := New(src, 5*time.Minute, clock.now)

	ctx := context.Background()
	if _, err := c.Get(ctx); err != nil {
		t.Fatal(err)
	}

	src.err = errors.New("connection refused")
	clock.advance(10 * time.Minute)

	records, err := c.Get(ctx)
	if err != nil {
		t.Fatalf("Get error on stale-serve path: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("got %d stale records, want 3", len(records))
	}

	// Failed refresh does not reset the clock; the next call tries again.
	c.Get(ctx)
	if src.calls != 3 {
		t.Errorf("source called %d times, want 3", src.calls)
	}
}

func TestGetUnavailableBeforeFirstSnapshot(t *testing.T) {
	src := &fakeSource{err: errors.New("connection refused")}
	c := New(src, 5*time.Minute, nil)

	_, err := c.Get(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Get err = %v, want ErrUnavailable", err)
	}

	// Source recovers: the next call primes the cache normally.
	src.err = nil
	src.records = someRecords(2)
	records, err := c.Get(context.Background())
	if err != nil {
		t.Fatalf("Get after recovery: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
}

func TestGetCachesEmptySnapshot(t *testing.T) {
	// An empty result from a healthy source is a valid snapshot and is
	// cached like any other; it is not retried until the TTL expires.
	src := &fakeSource{records: nil}
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	c := New(src, 5*time.Minute, clock.now)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		records, err := c.Get(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(records) != 0 {
			t.Fatalf("got %d records, want 0", len(records))
		}
	}
	if src.calls != 1 {
		t.Errorf("source called %d times, want 1", src.calls)
	}
}

func TestStats(t *testing.T) {
	src := &fakeSource{records: someRecords(4)}
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	c := New(src, 0, clock.now)

	size, _, primed := c.Stats()
	if size != 0 || primed {
		t.Errorf("fresh cache Stats = (%d, primed=%v), want (0, false)", size, primed)
	}

	if _, err := c.Get(context.Background()); err != nil {
		t.Fatal(err)
	}

	size, fetchedAt, primed := c.Stats()
	if size != 4 || !primed {
		t.Errorf("Stats = (%d, primed=%v), want (4, true)", size, primed)
	}
	if !fetchedAt.Equal(clock.t) {
		t.Errorf("fetchedAt = %v, want %v", fetchedAt, clock.t)
	}
}
