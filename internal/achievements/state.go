package achievements

import "time"

// AchievementState is the persisted per-achievement record. The JSON field
// names are the wire format of the persisted blob and must not change.
//
// ID references a catalog definition but is not required to still exist
// there; states for retired ids are carried along so unlock history
// survives catalog changes.
type AchievementState struct {
	ID         string     `json:"id"`
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
	Progress   float64    `json:"progress"`
}

// Achievement is the view model handed to the rendering layer: a catalog
// definition joined with its per-user state.
type Achievement struct {
	Definition AchievementDefinition
	State      AchievementState
}

func newDefaultState(id string) AchievementState {
	return AchievementState{ID: id}
}
