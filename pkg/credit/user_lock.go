package credit

import (
	"sync"
)

// userLocks serializes balance mutations per user. Operations on
// different users proceed in parallel; two operations on the same user
// (a job debit racing a purchase confirmation) take turns.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

func (l *userLocks) get(userID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[userID] = lock
	}
	return lock
}

func (l *userLocks) Lock(userID string) {
	l.get(userID).Lock()
}

func (l *userLocks) Unlock(userID string) {
	l.get(userID).Unlock()
}
