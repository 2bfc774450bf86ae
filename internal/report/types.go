package report

// The weekly report is computed by the remote reporting service and
// displayed verbatim; these types mirror its JSON payload field for field
// and nothing in this repository recomputes any of it.

// WeeklyReport is the full weekly health report payload.
type WeeklyReport struct {
	Period           Period           `json:"period"`
	Summary          Summary          `json:"summary"`
	DailyScores      []DailyScore     `json:"daily_scores"`
	TopIssues        []Issue          `json:"top_issues"`
	Recommendations  []string         `json:"recommendations"`
	Insights         Insights         `json:"insights"`
	DietCorrelations DietCorrelations `json:"diet_correlations"`
	GeneratedAt      string           `json:"generated_at"`
}

// Period is the date range the report covers, as ISO dates.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Summary compares the current week's scans with the previous week's.
type Summary struct {
	TotalScans    int `json:"total_scans"`
	ScansChange   int `json:"scans_change"`
	AvgScore      int `json:"avg_score"`
	ScoreChange   int `json:"score_change"`
	BestScore     int `json:"best_score"`
	PrevWeekScans int `json:"prev_week_scans"`
	PrevWeekAvg   int `json:"prev_week_avg"`
}

// DailyScore is one day's average score for charting.
type DailyScore struct {
	Date      string `json:"date"`
	Score     int    `json:"score"`
	ScanCount int    `json:"scan_count"`
}

// Issue is a detected skin issue with its weekly frequency.
type Issue struct {
	Issue     string `json:"issue"`
	Frequency int    `json:"frequency"`
}

// Insights is the service-generated trend commentary.
type Insights struct {
	Trend           string `json:"trend"`
	Emoji           string `json:"emoji"`
	Message         string `json:"message"`
	ActivityMessage string `json:"activity_message"`
}

// DietCorrelations holds diet-skin correlation insights. When too little
// data exists HasData is false and Message explains why.
type DietCorrelations struct {
	HasData      bool             `json:"has_data"`
	Message      string           `json:"message,omitempty"`
	Correlations []Correlation    `json:"correlations"`
	Stats        CorrelationStats `json:"stats"`
}

// Correlation is one diet-skin correlation insight.
type Correlation struct {
	Type           string  `json:"type"`
	Trigger        string  `json:"trigger"`
	Icon           string  `json:"icon"`
	Impact         string  `json:"impact"`
	ImpactValue    int     `json:"impact_value"`
	Timeframe      string  `json:"timeframe"`
	Description    string  `json:"description"`
	Recommendation string  `json:"recommendation"`
	Confidence     float64 `json:"confidence"`
}

// CorrelationStats describes the data the correlations were derived from.
type CorrelationStats struct {
	FoodLogsCount  int     `json:"food_logs_count"`
	ScansCount     int     `json:"scans_count"`
	DaysAnalyzed   int     `json:"days_analyzed"`
	AvgHealthScore float64 `json:"avg_health_score,omitempty"`
	AvgSkinScore   float64 `json:"avg_skin_score,omitempty"`
}
