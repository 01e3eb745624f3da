package service

import (
	"sync"
	"testing"
)

func TestPreferenceTracker_CountsRepeatedRecords(t *testing.T) {
	tracker := NewPreferenceTracker()
	decade := 1990
	for i := 0; i < 5; i++ {
		tracker.Record([]string{"Drama"}, &decade, 7.5)
	}

	snap := tracker.Snapshot()
	if snap.Genres["Drama"] != 5 {
		t.Fatalf("expected Drama=5, got %d", snap.Genres["Drama"])
	}
	if snap.Decades[1990] != 5 {
		t.Fatalf("expected 1990=5, got %d", snap.Decades[1990])
	}
	if len(snap.RatingHistory) != 5 {
		t.Fatalf("expected 5 rating entries, got %d", len(snap.RatingHistory))
	}
}

func TestPreferenceTracker_RecordWithoutGenreOrDecade(t *testing.T) {
	tracker := NewPreferenceTracker()
	tracker.Record(nil, nil, 0)
	tracker.Record([]string{"", "  "}, nil, 0)

	snap := tracker.Snapshot()
	if len(snap.Genres) != 0 || len(snap.Decades) != 0 {
		t.Fatalf("expected no genre/decade counts, got %+v", snap)
	}
	if len(snap.RatingHistory) != 2 || snap.RatingHistory[0] != 0 {
		t.Fatalf("expected zero ratings to be recorded, got %+v", snap.RatingHistory)
	}
}

func TestPreferenceTracker_ResetClearsEverything(t *testing.T) {
	tracker := NewPreferenceTracker()
	decade := 2000
	tracker.Record([]string{"Action"}, &decade, 8)
	tracker.Reset()

	snap := tracker.Snapshot()
	if len(snap.Genres) != 0 || len(snap.Decades) != 0 || len(snap.RatingHistory) != 0 {
		t.Fatalf("expected empty snapshot after reset, got %+v", snap)
	}
	if snap.Genres == nil || snap.Decades == nil || snap.RatingHistory == nil {
		t.Fatalf("expected non-nil empty structures for serialization")
	}
}

func TestPreferenceTracker_SnapshotIsIsolated(t *testing.T) {
	tracker := NewPreferenceTracker()
	tracker.Record([]string{"Drama"}, nil, 8)

	snap := tracker.Snapshot()
	snap.Genres["Drama"] = 99
	snap.RatingHistory[0] = 1

	again := tracker.Snapshot()
	if again.Genres["Drama"] != 1 || again.RatingHistory[0] != 8 {
		t.Fatalf("snapshot mutation leaked into tracker: %+v", again)
	}
}

func TestPreferenceTracker_ConcurrentRecords(t *testing.T) {
	tracker := NewPreferenceTracker()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			decade := 1990
			tracker.Record([]string{"Drama", "Crime"}, &decade, 8)
			_ = tracker.Snapshot()
		}()
	}
	wg.Wait()

	snap := tracker.Snapshot()
	if snap.Genres["Drama"] != 50 || snap.Genres["Crime"] != 50 || snap.Decades[1990] != 50 {
		t.Fatalf("unexpected counts after concurrent records: %+v", snap)
	}
	if len(snap.RatingHistory) != 50 {
		t.Fatalf("expected 50 ratings, got %d", len(snap.RatingHistory))
	}
}
