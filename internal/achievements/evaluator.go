package achievements

import (
	"sync"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Metrics are the activity signals achievements are evaluated against.
// Values are taken at face value; the evaluator does no range validation.
type Metrics struct {
	AnalysisCount int
	CurrentScore  int
	StreakDays    int
}

// Evaluator recomputes achievement progress and decides unlock
// transitions. Unlocks are monotonic: once an achievement is unlocked the
// evaluator never touches it again, which makes repeated calls idempotent
// for already-unlocked entries.
type Evaluator struct {
	mu     sync.Mutex
	store  *Store
	logger *zap.Logger
	now    func() time.Time
}

func NewEvaluator(store *Store, logger *zap.Logger) *Evaluator {
	return &Evaluator{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Check evaluates every locked achievement against the given metrics and
// returns the full merged achievement list. If at least one achievement
// newly unlocked the updated list is persisted; otherwise no write occurs.
//
// The whole load-evaluate-save cycle runs under a mutex so that two
// near-simultaneous activity events cannot overwrite each other's unlocks.
func (e *Evaluator) Check(m Metrics) []Achievement {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	list := e.store.Load()

	changed := false
	for i := range list {
		a := &list[i]
		if a.State.Unlocked {
			// Progress stays frozen at the value recorded at unlock.
			continue
		}

		var value int
		var unlock bool

		switch a.Definition.Kind {
		case KindAnalyses:
			value = m.AnalysisCount
			unlock = value >= a.Definition.Requirement
		case KindScore:
			value = m.CurrentScore
			unlock = value >= a.Definition.Requirement
		case KindStreak:
			value = m.StreakDays
			unlock = value >= a.Definition.Requirement
		case KindSpecial:
			switch a.Definition.ID {
			case IDNightOwl:
				unlock = now.Hour() >= lateActivityHour
			case IDEarlyBird:
				unlock = now.Hour() < earlyActivityHour
			}
			if unlock {
				value = 1
			}
		}

		// Specials only show progress at the instant of unlock; every
		// other kind tracks its metric on every evaluation.
		if a.Definition.Kind != KindSpecial || unlock {
			a.State.Progress = float64(value)
		}

		if unlock {
			unlockedAt := now
			a.State.Unlocked = true
			a.State.UnlockedAt = &unlockedAt
			changed = true
			e.logger.Info("achievement unlocked",
				zap.String("id", a.Definition.ID),
				zap.String("title", a.Definition.Title),
			)
		}
	}

	if changed {
		e.store.Save(list)
	}

	return list
}

// UnlockedCount counts the unlocked entries in an achievement list.
func UnlockedCount(list []Achievement) int {
	return lo.CountBy(list, func(a Achievement) bool {
		return a.State.Unlocked
	})
}
