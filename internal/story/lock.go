package story

import "sync"

// ScrollLock suspends page scrolling while a viewer is open. Acquire returns
// the function that gives the lock back; calling it more than once is safe.
type ScrollLock interface {
	Acquire() (release func())
}

// PageLock is a counting ScrollLock. The page is locked while at least one
// holder has not released.
type PageLock struct {
	mu      sync.Mutex
	holders int
}

func NewPageLock() *PageLock {
	return &PageLock{}
}

func (l *PageLock) Acquire() func() {
	l.mu.Lock()
	l.holders++
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.holders--
			l.mu.Unlock()
		})
	}
}

func (l *PageLock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holders > 0
}
