// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prim_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/prim"
)

func ExampleChunkList() {
	l := prim.NewChunkList[int](4)
	for i := range 6 {
		l.Append(i)
	}

	ref, _ := l.At(4)
	fmt.Println(l.Size(), l.ChunkCount(), *ref)
	// Output: 6 2 4
}

func ExampleStream() {
	s := prim.NewStream[int](256)

	done := make(chan struct{})
	go func() { // Producer
		for i := range 5 {
			s.Append(&i)
		}
		close(done)
	}()

	<-done
	backoff := iox.Backoff{}
	total := 0
	for total < 5 {
		r := s.Poll() // never blocks, possibly empty
		if r.Len() == 0 {
			backoff.Wait()
			continue
		}
		backoff.Reset()
		for ref := range r.Refs() {
			fmt.Println(*ref)
			total++
		}
	}
	// Output:
	// 0
	// 1
	// 2
	// 3
	// 4
}

func ExampleBarrier() {
	const parties = 3
	b := prim.NewBarrier(parties)

	var wg sync.WaitGroup
	for range parties {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Wait(func() {
				// Serial point: runs exactly once per phase.
				fmt.Println("all arrived")
			})
		}()
	}
	wg.Wait()
	// Output: all arrived
}

func ExamplePool() {
	p := prim.NewPool(4)
	defer p.Close()

	var mu sync.Mutex
	counter := 0
	for range 100 {
		p.Submit(func() {
			mu.Lock()
			counter++
			mu.Unlock()
		})
	}
	p.WaitAll()

	fmt.Println(counter)
	// Output: 100
}
