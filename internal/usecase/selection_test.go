package usecase

import (
	"reflect"
	"sync"
	"testing"
	"time"
)

func TestParseSelection(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		count int
		want  []int
	}{
		{name: "comma separated", text: "1,3", count: 3, want: []int{1, 3}},
		{name: "free text", text: "quiero la 3 y la 1 por favor", count: 3, want: []int{3, 1}},
		{name: "dedupe", text: "2, 2, 2", count: 3, want: []int{2}},
		{name: "out of range dropped", text: "0 1 9", count: 3, want: []int{1}},
		{name: "all out of range", text: "9", count: 3, want: []int{}},
		{name: "garbage", text: "abc", count: 3, want: []int{}},
		{name: "no equipment", text: "1", count: 0, want: []int{}},
		{name: "huge number", text: "99999999999999999999999", count: 3, want: []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseSelection(tc.text, tc.count); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestPhoneLocksConcurrency(t *testing.T) {
	locks := newPhoneLocks()

	t.Run("same phone is serialized", func(t *testing.T) {
		var (
			mu      sync.Mutex
			active  int
			maxSeen int
			wg      sync.WaitGroup
		)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := locks.Lock("573101234567")
				defer unlock()
				mu.Lock()
				active++
				if active > maxSeen {
					maxSeen = active
				}
				mu.Unlock()
				time.Sleep(time.Millisecond)
				mu.Lock()
				active--
				mu.Unlock()
			}()
		}
		wg.Wait()
		if maxSeen != 1 {
			t.Fatalf("expected serialized access, saw %d concurrent holders", maxSeen)
		}
	})

	t.Run("different phones do not block", func(t *testing.T) {
		unlockA := locks.Lock("573101234567")
		done := make(chan struct{})
		go func() {
			unlockB := locks.Lock("573207654321")
			unlockB()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("lock for another phone blocked")
		}
		unlockA()
	})

	t.Run("entries are released", func(t *testing.T) {
		locks.mu.Lock()
		defer locks.mu.Unlock()
		if len(locks.locks) != 0 {
			t.Fatalf("expected no retained locks, got %d", len(locks.locks))
		}
	})
}
