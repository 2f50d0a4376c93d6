package service

import "sync"

// userLocks serializes mutations per user; different users never contend.
type userLocks struct {
	m sync.Map // int -> *sync.Mutex
}

func (l *userLocks) lock(userID int) (unlock func()) {
	v, _ := l.m.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
