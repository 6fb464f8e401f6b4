package usecase

import "sync"

// phoneLocks serializes work per phone while letting different phones run
// concurrently. Entries are removed once nobody holds or waits for them.
type phoneLocks struct {
	mu    sync.Mutex
	locks map[string]*phoneLock
}

type phoneLock struct {
	mu   sync.Mutex
	refs int
}

func newPhoneLocks() *phoneLocks {
	return &phoneLocks{locks: map[string]*phoneLock{}}
}

// Lock blocks until phone is free and returns the matching unlock func.
func (l *phoneLocks) Lock(phone string) func() {
	l.mu.Lock()
	pl, ok := l.locks[phone]
	if !ok {
		pl = &phoneLock{}
		l.locks[phone] = pl
	}
	pl.refs++
	l.mu.Unlock()

	pl.mu.Lock()
	return func() {
		pl.mu.Unlock()
		l.mu.Lock()
		pl.refs--
		if pl.refs == 0 {
			delete(l.locks, phone)
		}
		l.mu.Unlock()
	}
}
