package achievements

import "github.com/samber/lo"

// Kind determines which activity signal an achievement is measured against.
type Kind string

const (
	KindAnalyses Kind = "analyses"
	KindScore    Kind = "score"
	KindStreak   Kind = "streak"
	KindSpecial  Kind = "special"
)

// AchievementDefinition defines a single achievement. Definitions are pure
// display metadata plus a threshold; per-user unlock state lives in
// AchievementState.
type AchievementDefinition struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Color       string
	Requirement int
	Kind        Kind
}

// Special achievement ids with hard-coded unlock rules.
const (
	IDNightOwl  = "night_owl"
	IDEarlyBird = "early_bird"
)

// Local-hour boundaries for the time-of-day specials.
const (
	lateActivityHour  = 22
	earlyActivityHour = 7
)

// Catalog contains all achievement definitions. It is never mutated.
var Catalog = []AchievementDefinition{
	{ID: "first_scan", Title: "First Steps", Description: "Complete your first skin analysis", Icon: "camera", Color: "#4CAF50", Requirement: 1, Kind: KindAnalyses},
	{ID: "five_scans", Title: "Getting Started", Description: "Complete 5 skin analyses", Icon: "trending-up", Color: "#2196F3", Requirement: 5, Kind: KindAnalyses},
	{ID: "ten_scans", Title: "Dedicated Tracker", Description: "Complete 10 skin analyses", Icon: "ribbon", Color: "#9C27B0", Requirement: 10, Kind: KindAnalyses},
	{ID: "twentyfive_scans", Title: "Skin Scholar", Description: "Complete 25 skin analyses", Icon: "school", Color: "#FF9800", Requirement: 25, Kind: KindAnalyses},
	{ID: "fifty_scans", Title: "Analysis Veteran", Description: "Complete 50 skin analyses", Icon: "medal", Color: "#F44336", Requirement: 50, Kind: KindAnalyses},

	{ID: "score_80", Title: "Glowing Up", Description: "Reach a skin score of 80", Icon: "sparkles", Color: "#00BCD4", Requirement: 80, Kind: KindScore},
	{ID: "score_90", Title: "Radiant", Description: "Reach a skin score of 90", Icon: "sunny", Color: "#FFC107", Requirement: 90, Kind: KindScore},
	{ID: "score_95", Title: "Picture Perfect", Description: "Reach a skin score of 95", Icon: "diamond", Color: "#E91E63", Requirement: 95, Kind: KindScore},

	{ID: "streak_3", Title: "Building a Habit", Description: "Stay active 3 days in a row", Icon: "leaf", Color: "#8BC34A", Requirement: 3, Kind: KindStreak},
	{ID: "streak_7", Title: "Week Warrior", Description: "Stay active 7 days in a row", Icon: "flame", Color: "#FF5722", Requirement: 7, Kind: KindStreak},
	{ID: "streak_14", Title: "Consistency Champion", Description: "Stay active 14 days in a row", Icon: "barbell", Color: "#3F51B5", Requirement: 14, Kind: KindStreak},
	{ID: "streak_30", Title: "Monthly Master", Description: "Stay active 30 days in a row", Icon: "trophy", Color: "#FFD700", Requirement: 30, Kind: KindStreak},

	{ID: IDNightOwl, Title: "Night Owl", Description: "Log activity after 10 PM", Icon: "moon", Color: "#673AB7", Requirement: 1, Kind: KindSpecial},
	{ID: IDEarlyBird, Title: "Early Bird", Description: "Log activity before 7 AM", Icon: "alarm", Color: "#03A9F4", Requirement: 1, Kind: KindSpecial},
	{ID: "lucky_streaker", Title: "Lucky Streaker", Description: "A mystery milestone", Icon: "help-circle", Color: "#607D8B", Requirement: 1, Kind: KindSpecial},
}

var catalogIndex = lo.KeyBy(Catalog, func(def AchievementDefinition) string {
	return def.ID
})

// DefinitionByID returns the catalog definition for id, if one exists.
func DefinitionByID(id string) (AchievementDefinition, bool) {
	def, ok := catalogIndex[id]
	return def, ok
}
