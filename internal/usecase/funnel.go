package usecase

import (
	"fmt"
	"strings"
)

type FunnelRepository interface {
	Hit(step Step, chatID int64) error
	Counts() map[Step]int
}

// FunnelUsecase — статистика прохождения анкеты по шагам.
type FunnelUsecase struct {
	repo  FunnelRepository
	order []Step
}

func NewFunnelUsecase(repo FunnelRepository) *FunnelUsecase {
	return &FunnelUsecase{
		repo: repo,
		order: []Step{
			StepDate,
			StepTime,
			StepName,
			StepDOB,
			StepAddress,
			StepCity,
			StepPhone,
			StepEmail,
			StepMinor,
			StepGuardian,
			StepPhoto,
			StepConsent,
			StepDone,
		},
	}
}

func (u *FunnelUsecase) Reach(chatID int64, step Step) {
	if step == "" || step == StepIdle {
		return
	}
	_ = u.repo.Hit(step, chatID)
}

func (u *FunnelUsecase) Chart() string {
	counts := u.repo.Counts()
	if len(counts) == 0 {
		return "Данных по воронке пока нет"
	}
	var base int
	if len(u.order) > 0 {
		base = counts[u.order[0]]
	}
	if base == 0 {
		for _, s := range u.order {
			if counts[s] > base {
				base = counts[s]
			}
		}
	}
	var prev int
	var b strings.Builder
	b.WriteString("Воронка по шагам анкеты:\n")
	for i, s := range u.order {
		c := counts[s]
		relBase := percent(c, base)
		relPrev := 0
		if i == 0 {
			relPrev = 100
		} else if prev > 0 {
			relPrev = percent(c, prev)
		}
		bar := bar20(c, base)
		fmt.Fprintf(&b, "- %s: %d | %3d%% от базового | %3d%% от пред. %s\n", stepLabel(s), c, relBase, relPrev, bar)
		prev = c
	}
	return b.String()
}

// GraphData возвращает метки и значения по порядку шагов для построения графика
func (u *FunnelUsecase) GraphData() ([]string, []int) {
	counts := u.repo.Counts()
	labels := make([]string, 0, len(u.order))
	values := make([]int, 0, len(u.order))
	for _, s := range u.order {
		labels = append(labels, stepLabel(s))
		values = append(values, counts[s])
	}
	return labels, values
}

func percent(a, b int) int {
	if b <= 0 {
		return 0
	}
	return int((100 * a) / b)
}

func bar20(val, max int) string {
	if max <= 0 {
		return ""
	}
	filled := (20 * val) / max
	if filled < 0 {
		filled = 0
	}
	if filled > 20 {
		filled = 20
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", 20-filled) + "]"
}

func stepLabel(s Step) string {
	switch s {
	case StepDate:
		return "Дата"
	case StepTime:
		return "Время"
	case StepName:
		return "Имя"
	case StepDOB:
		return "Дата рождения"
	case StepAddress:
		return "Адрес"
	case StepCity:
		return "Город"
	case StepPhone:
		return "Телефон"
	case StepEmail:
		return "Почта"
	case StepMinor:
		return "Несовершеннолетний"
	case StepGuardian:
		return "Опекун"
	case StepPhoto:
		return "Фото"
	case StepConsent:
		return "Согласие"
	case StepDone:
		return "Заявка"
	default:
		return string(s)
	}
}
