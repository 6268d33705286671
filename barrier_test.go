// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prim_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/prim"
)

// =============================================================================
// Barrier - Rendezvous
// =============================================================================

// TestBarrierPhases runs parties goroutines through phases rounds and
// checks the serial return and the callback both fire exactly once per
// phase, and that no goroutine passes a phase before all have arrived.
func TestBarrierPhases(t *testing.T) {
	const parties = 8
	const phases = 50

	b := prim.NewBarrier(parties)
	if b.Parties() != parties {
		t.Fatalf("Parties: got %d, want %d", b.Parties(), parties)
	}

	var callbacks atomix.Int64
	serials := make([]atomix.Int64, phases)
	arrived := make([]atomix.Int64, phases)

	var wg sync.WaitGroup
	for range parties {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range phases {
				arrived[p].Add(1)
				serial := b.Wait(func() {
					callbacks.Add(1)
				})
				// Released only after every party arrived for this phase.
				if got := arrived[p].Load(); got != parties {
					t.Errorf("phase %d released with %d arrivals, want %d", p, got, parties)
				}
				if serial {
					serials[p].Add(1)
				}
			}
		}()
	}
	wg.Wait()

	for p := range phases {
		if got := serials[p].Load(); got != 1 {
			t.Fatalf("phase %d: %d serial returns, want 1", p, got)
		}
	}
	if got := callbacks.Load(); got != phases {
		t.Fatalf("callbacks: got %d, want %d", got, phases)
	}
}

// TestBarrierCallbackBeforeRelease checks the serial callback's effects
// are visible to every waiter of that phase.
func TestBarrierCallbackBeforeRelease(t *testing.T) {
	const parties = 4
	const phases = 25

	b := prim.NewBarrier(parties)
	var phase atomix.Int64 // advanced only by the serial callback

	var wg sync.WaitGroup
	for range parties {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range phases {
				b.Wait(func() { phase.Store(int64(p + 1)) })
				if got := phase.Load(); got < int64(p+1) {
					t.Errorf("phase %d: callback effect not visible, counter at %d", p, got)
				}
			}
		}()
	}
	wg.Wait()

	if got := phase.Load(); got != phases {
		t.Fatalf("phase counter: got %d, want %d", got, phases)
	}
}

func TestBarrierSingleParty(t *testing.T) {
	b := prim.NewBarrier(1)

	for range 10 {
		ran := false
		if !b.Wait(func() { ran = true }) {
			t.Fatal("single party Wait: got false, want serial")
		}
		if !ran {
			t.Fatal("single party Wait: callback not run")
		}
	}
}

func TestBarrierNilCallback(t *testing.T) {
	const parties = 3
	b := prim.NewBarrier(parties)

	var serials atomix.Int64
	var wg sync.WaitGroup
	for range parties {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if b.Wait(nil) {
				serials.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := serials.Load(); got != 1 {
		t.Fatalf("serial returns: got %d, want 1", got)
	}
}

func TestBarrierPartiesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewBarrier(0) did not panic")
		}
	}()
	prim.NewBarrier(0)
}
