package gateway

import "sync"

// paymentLocks serializes the check-then-mutate path per payment id so a
// status or balance check observed by one operation cannot be invalidated by
// another before it commits.
type paymentLocks struct {
	locks sync.Map
}

func (l *paymentLocks) lock(id uint64) (unlock func()) {
	v, _ := l.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
