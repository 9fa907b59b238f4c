package session

import (
	"sync"

	"clementus360/glowup/types"
)

type subscriber struct {
	id int
	fn func(types.Session)
}

// Subscribe registers fn for every session transition. Callbacks run in
// registration order on the goroutine that caused the transition and must not
// call SignIn or SignOut. The returned func unregisters fn; calling it twice
// is harmless.
func (m *Manager) Subscribe(fn func(types.Session)) (unsubscribe func()) {
	m.mu.Lock()
	m.nextSub++
	id := m.nextSub
	m.subs = append(m.subs, subscriber{id: id, fn: fn})
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			for i, s := range m.subs {
				if s.id == id {
					m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
					return
				}
			}
		})
	}
}
