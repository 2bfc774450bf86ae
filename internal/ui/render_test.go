package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"skinsight/internal/achievements"
	"skinsight/internal/report"
)

func TestRenderAchievementsShowsLockedAndUnlocked(t *testing.T) {
	unlockedAt := time.Now().Add(-time.Hour)
	list := []achievements.Achievement{
		{
			Definition: achievements.AchievementDefinition{ID: "first_scan", Title: "First Steps", Description: "Complete your first skin analysis", Requirement: 1, Kind: achievements.KindAnalyses},
			State:      achievements.AchievementState{ID: "first_scan", Unlocked: true, UnlockedAt: &unlockedAt, Progress: 1},
		},
		{
			Definition: achievements.AchievementDefinition{ID: "ten_scans", Title: "Dedicated Tracker", Description: "Complete 10 skin analyses", Requirement: 10, Kind: achievements.KindAnalyses},
			State:      achievements.AchievementState{ID: "ten_scans", Progress: 3},
		},
	}

	output := RenderAchievements(list)

	assert.Contains(t, output, "1 of 2 unlocked")
	assert.Contains(t, output, "First Steps")
	assert.Contains(t, output, "Dedicated Tracker")
	assert.Contains(t, output, "3/10")
}

func TestRenderAchievementsHidesSpecialProgress(t *testing.T) {
	list := []achievements.Achievement{
		{
			Definition: achievements.AchievementDefinition{ID: "lucky_streaker", Title: "Lucky Streaker", Description: "A mystery milestone", Requirement: 1, Kind: achievements.KindSpecial},
			State:      achievements.AchievementState{ID: "lucky_streaker"},
		},
	}

	output := RenderAchievements(list)

	assert.Contains(t, output, "Lucky Streaker")
	assert.NotContains(t, output, "0/1", "specials have no threshold bar")
}

func TestRenderWeeklyReport(t *testing.T) {
	weeklyReport := &report.WeeklyReport{
		Period:  report.Period{Start: "2025-06-09", End: "2025-06-15"},
		Summary: report.Summary{TotalScans: 6, ScansChange: 2, AvgScore: 78, ScoreChange: 4, BestScore: 85},
		Insights: report.Insights{
			Emoji:           "🎉",
			Message:         "Great progress!",
			ActivityMessage: "You scanned 2 more times than last week!",
		},
		TopIssues:       []report.Issue{{Issue: "dryness", Frequency: 3}},
		Recommendations: []string{"Drink more water"},
		DietCorrelations: report.DietCorrelations{
			HasData: false,
			Message: "Log more meals and scans to see diet-skin correlations",
		},
	}

	output := RenderWeeklyReport(weeklyReport)

	assert.Contains(t, output, "2025-06-09")
	assert.Contains(t, output, "Great progress!")
	assert.Contains(t, output, "dryness")
	assert.Contains(t, output, "Drink more water")
	assert.Contains(t, output, "Log more meals")
}

func TestRenderProgressBarClamps(t *testing.T) {
	assert.Equal(t, "[░░░░░]", renderProgressBar(-0.5, 5))
	assert.Equal(t, "[█████]", renderProgressBar(1.5, 5))
	assert.True(t, strings.HasPrefix(renderProgressBar(0.5, 4), "[██"))
}
