package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeFunnelRepo struct {
	counts map[Step]map[int64]struct{}
}

func newFakeFunnelRepo() *fakeFunnelRepo {
	return &fakeFunnelRepo{counts: map[Step]map[int64]struct{}{}}
}

func (r *fakeFunnelRepo) Hit(step Step, chatID int64) error {
	m, ok := r.counts[step]
	if !ok {
		m = map[int64]struct{}{}
		r.counts[step] = m
	}
	m[chatID] = struct{}{}
	return nil
}

func (r *fakeFunnelRepo) Counts() map[Step]int {
	out := make(map[Step]int, len(r.counts))
	for s, set := range r.counts {
		out[s] = len(set)
	}
	return out
}

func TestFunnelCountsDistinctChats(t *testing.T) {
	u := NewFunnelUsecase(newFakeFunnelRepo())

	u.Reach(1, StepDate)
	u.Reach(1, StepDate) // повтор не считается
	u.Reach(2, StepDate)
	u.Reach(1, StepTime)
	u.Reach(1, StepIdle) // не учитывается

	labels, values := u.GraphData()
	assert.Equal(t, len(labels), len(values))
	assert.Equal(t, "Дата", labels[0])
	assert.Equal(t, 2, values[0])
	assert.Equal(t, 1, values[1])
}

func TestFunnelGraphIncludesOptionalSteps(t *testing.T) {
	u := NewFunnelUsecase(newFakeFunnelRepo())

	// необязательная ветка адреса и ветка опекуна тоже видны в воронке
	u.Reach(1, StepAddress)
	u.Reach(1, StepCity)
	u.Reach(2, StepMinor)
	u.Reach(2, StepGuardian)

	labels, values := u.GraphData()
	byLabel := map[string]int{}
	for i, l := range labels {
		byLabel[l] = values[i]
	}
	assert.Equal(t, 1, byLabel["Адрес"])
	assert.Equal(t, 1, byLabel["Город"])
	assert.Equal(t, 1, byLabel["Несовершеннолетний"])
	assert.Equal(t, 1, byLabel["Опекун"])
}

func TestFunnelChartEmpty(t *testing.T) {
	u := NewFunnelUsecase(newFakeFunnelRepo())
	assert.Equal(t, "Данных по воронке пока нет", u.Chart())
}
