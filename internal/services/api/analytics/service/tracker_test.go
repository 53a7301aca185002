package service

import (
	"sync"
	"testing"
)

func TestTracker_ConcurrentRecord(t *testing.T) {
	tr := NewTracker()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				tr.Record("GET /a")
				tr.Record("POST /b")
			}
		}()
	}
	wg.Wait()

	counts, total := tr.Snapshot()
	if counts["GET /a"] != 800 || counts["POST /b"] != 800 || total != 1600 {
		t.Fatalf("unexpected counts %+v total %d", counts, total)
	}

	counts["GET /a"] = 0
	if again, _ := tr.Snapshot(); again["GET /a"] != 800 {
		t.Fatalf("snapshot leaked internal state")
	}
}
