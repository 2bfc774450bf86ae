package achievements

import (
	"encoding/json"
	"sort"

	"go.uber.org/zap"
)

// KV is the opaque blob store the engine persists into. Get must return
// (nil, nil) for a key that has never been written.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// Store loads and saves the achievement state list under a single key.
//
// Load and Save never return errors: the engine's contract with the
// rendering layer is that gamification can silently lose progress but
// never crash the app. Failures are logged instead.
type Store struct {
	kv     KV
	key    string
	logger *zap.Logger

	// States whose id no longer exists in the catalog, captured on the
	// most recent Load so Save can carry them forward.
	orphans []AchievementState
}

func NewStore(kv KV, key string, logger *zap.Logger) *Store {
	return &Store{
		kv:     kv,
		key:    key,
		logger: logger,
	}
}

// Load reads the persisted state blob and joins it with the catalog. For
// each catalog entry a persisted state is used when present, otherwise a
// locked zero-progress default is synthesized. Read failures and corrupt
// payloads fall back to all-default state.
func (s *Store) Load() []Achievement {
	s.orphans = nil

	byID := make(map[string]AchievementState)

	raw, err := s.kv.Get(s.key)
	if err != nil {
		s.logger.Warn("failed to read achievement state, starting fresh", zap.Error(err))
	} else if raw != nil {
		var persisted []AchievementState
		if err := json.Unmarshal(raw, &persisted); err != nil {
			// A corrupt blob resets all progress and prior unlocks.
			s.logger.Warn("discarding corrupt achievement state", zap.Error(err))
		} else {
			for _, state := range persisted {
				byID[state.ID] = state
			}
		}
	}

	list := make([]Achievement, 0, len(Catalog))
	for _, def := range Catalog {
		state, ok := byID[def.ID]
		if !ok {
			state = newDefaultState(def.ID)
		}
		delete(byID, def.ID)
		list = append(list, Achievement{Definition: def, State: state})
	}

	// Whatever remains belongs to retired ids. Keep it, in a stable
	// order, but never surface it as a view model.
	for _, state := range byID {
		s.orphans = append(s.orphans, state)
	}
	sort.Slice(s.orphans, func(i, j int) bool {
		return s.orphans[i].ID < s.orphans[j].ID
	})

	return list
}

// Save serializes the full state list (including any orphaned states from
// the last Load) under the store key. Write failures are absorbed: the
// caller's in-memory result stands, it just may not survive a restart.
func (s *Store) Save(list []Achievement) {
	states := make([]AchievementState, 0, len(list)+len(s.orphans))
	for _, a := range list {
		states = append(states, a.State)
	}
	states = append(states, s.orphans...)

	raw, err := json.Marshal(states)
	if err != nil {
		s.logger.Error("failed to serialize achievement state", zap.Error(err))
		return
	}

	if err := s.kv.Put(s.key, raw); err != nil {
		s.logger.Warn("failed to persist achievement state", zap.Error(err))
	}
}
