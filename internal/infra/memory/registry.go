package memory

import "sync"

// Registry — реестр чатов для рассылок, fallback без sqlite.
type Registry struct {
	mu     sync.RWMutex
	chatID map[int64]struct{}
}

func NewRegistry() *Registry {
	return &Registry{chatID: make(map[int64]struct{})}
}

func (r *Registry) Save(chatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chatID[chatID] = struct{}{}
	return nil
}

func (r *Registry) ListChatIDs() ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]int64, 0, len(r.chatID))
	for id := range r.chatID {
		res = append(res, id)
	}
	return res, nil
}
