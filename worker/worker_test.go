package worker

import (
	"sync/atomic"
	"testing"
)

func TestGroupRunsAndRecovers(t *testing.T) {
	var g Group
	var ran atomic.Int32
	for range 4 {
		g.Go(func() {
			ran.Add(1)
		})
	}
	g.Go(func() {
		panic("boom")
	})
	g.Wait()

	if ran.Load() != 4 {
		t.Fatalf("expected 4 functions to run, got %d", ran.Load())
	}
}
