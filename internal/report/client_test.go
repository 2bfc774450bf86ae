package report

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const weeklyReportFixture = `{
	"period": {"start": "2025-06-09", "end": "2025-06-15"},
	"summary": {
		"total_scans": 6,
		"scans_change": 2,
		"avg_score": 78,
		"score_change": 4,
		"best_score": 85,
		"prev_week_scans": 4,
		"prev_week_avg": 74
	},
	"daily_scores": [
		{"date": "2025-06-09", "score": 72, "scan_count": 1},
		{"date": "2025-06-12", "score": 80, "scan_count": 2}
	],
	"top_issues": [{"issue": "dryness", "frequency": 3}],
	"recommendations": ["Drink more water"],
	"insights": {
		"trend": "improving",
		"emoji": "🎉",
		"message": "Great progress! Your skin score improved by 4 points this week.",
		"activity_message": "You scanned 2 more times than last week!"
	},
	"diet_correlations": {
		"has_data": true,
		"correlations": [{
			"type": "category_impact",
			"trigger": "Unhealthy Foods",
			"icon": "fast-food",
			"impact": "-5 points",
			"impact_value": -5,
			"timeframe": "24-48 hours later",
			"description": "Days with mostly unhealthy food are followed by lower skin scores.",
			"recommendation": "Try swapping one unhealthy meal per day for a healthier option.",
			"confidence": 0.7
		}],
		"stats": {
			"food_logs_count": 10,
			"scans_count": 8,
			"days_analyzed": 14,
			"avg_health_score": 6,
			"avg_skin_score": 77
		}
	},
	"generated_at": "2025-06-15T12:00:00"
}`

func TestWeeklyReportDecodesServicePayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports/weekly", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(weeklyReportFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL, "token-123", zap.NewNop())
	weeklyReport, err := client.WeeklyReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-06-09", weeklyReport.Period.Start)
	assert.Equal(t, 6, weeklyReport.Summary.TotalScans)
	assert.Equal(t, 85, weeklyReport.Summary.BestScore)
	assert.Len(t, weeklyReport.DailyScores, 2)
	assert.Equal(t, "dryness", weeklyReport.TopIssues[0].Issue)
	assert.Equal(t, "improving", weeklyReport.Insights.Trend)

	require.True(t, weeklyReport.DietCorrelations.HasData)
	require.Len(t, weeklyReport.DietCorrelations.Correlations, 1)
	correlation := weeklyReport.DietCorrelations.Correlations[0]
	assert.Equal(t, "Unhealthy Foods", correlation.Trigger)
	assert.Equal(t, -5, correlation.ImpactValue)
	assert.InDelta(t, 0.7, correlation.Confidence, 0.001)
	assert.Equal(t, 14, weeklyReport.DietCorrelations.Stats.DaysAnalyzed)
}

func TestWeeklyReportNoTokenOmitsAuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"period":{"start":"2025-06-09","end":"2025-06-15"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", zap.NewNop())
	_, err := client.WeeklyReport(context.Background())
	assert.NoError(t, err)
}

func TestWeeklyReportServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Failed to generate weekly report", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "token-123", zap.NewNop())
	_, err := client.WeeklyReport(context.Background())
	assert.ErrorContains(t, err, "status 500")
}

func TestWeeklyReportMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", zap.NewNop())
	_, err := client.WeeklyReport(context.Background())
	assert.ErrorContains(t, err, "decode")
}
