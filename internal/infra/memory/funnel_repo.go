package memory

import (
	"sync"

	"github.com/katyavamnada-beep/casting-bot/internal/usecase"
)

type FunnelRepo struct {
	mu     sync.RWMutex
	counts map[usecase.Step]map[int64]struct{}
}

func NewFunnelRepo() *FunnelRepo {
	return &FunnelRepo{counts: make(map[usecase.Step]map[int64]struct{})}
}

func (r *FunnelRepo) Hit(step usecase.Step, chatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.counts[step]
	if !ok {
		m = make(map[int64]struct{})
		r.counts[step] = m
	}
	m[chatID] = struct{}{}
	return nil
}

func (r *FunnelRepo) Counts() map[usecase.Step]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[usecase.Step]int, len(r.counts))
	for s, set := range r.counts {
		out[s] = len(set)
	}
	return out
}
