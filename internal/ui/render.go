package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"skinsight/internal/achievements"
	"skinsight/internal/report"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	unlockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	lockedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	cardStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// RenderAchievements renders the full achievement list as a card, unlocked
// entries first within their catalog order.
func RenderAchievements(list []achievements.Achievement) string {
	var sb strings.Builder

	unlocked := achievements.UnlockedCount(list)
	sb.WriteString(titleStyle.Render("ACHIEVEMENTS"))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  %d of %d unlocked", unlocked, len(list))))
	sb.WriteString("\n\n")

	for _, a := range list {
		if a.State.Unlocked {
			marker := "✓"
			line := fmt.Sprintf("%s %s — %s", marker, a.Definition.Title, a.Definition.Description)
			sb.WriteString(unlockedStyle.Render(line))
			if a.State.UnlockedAt != nil {
				sb.WriteString(dimStyle.Render("  unlocked " + humanize.Time(*a.State.UnlockedAt)))
			}
		} else {
			line := fmt.Sprintf("· %s — %s", a.Definition.Title, a.Definition.Description)
			sb.WriteString(lockedStyle.Render(line))
			if a.Definition.Kind != achievements.KindSpecial {
				sb.WriteString(dimStyle.Render(fmt.Sprintf("  %s/%s",
					humanize.Comma(int64(a.State.Progress)),
					humanize.Comma(int64(a.Definition.Requirement)))))
				sb.WriteString("  " + renderProgressBar(a.State.Progress/float64(a.Definition.Requirement), 10))
			}
		}
		sb.WriteString("\n")
	}

	return cardStyle.Render(sb.String())
}

// RenderWeeklyReport renders the weekly report payload as received from
// the reporting service.
func RenderWeeklyReport(weeklyReport *report.WeeklyReport) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("WEEKLY REPORT"))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  %s — %s", weeklyReport.Period.Start, weeklyReport.Period.End)))
	sb.WriteString("\n\n")

	summary := weeklyReport.Summary
	sb.WriteString(fmt.Sprintf("Scans: %d (%+d vs last week)\n", summary.TotalScans, summary.ScansChange))
	sb.WriteString(fmt.Sprintf("Average score: %d (%+d)\n", summary.AvgScore, summary.ScoreChange))
	sb.WriteString(fmt.Sprintf("Best score: %d\n", summary.BestScore))

	if weeklyReport.Insights.Message != "" {
		sb.WriteString("\n")
		sb.WriteString(weeklyReport.Insights.Emoji + " " + weeklyReport.Insights.Message + "\n")
		if weeklyReport.Insights.ActivityMessage != "" {
			sb.WriteString(dimStyle.Render(weeklyReport.Insights.ActivityMessage))
			sb.WriteString("\n")
		}
	}

	if len(weeklyReport.TopIssues) > 0 {
		sb.WriteString("\n")
		sb.WriteString(titleStyle.Render("TOP ISSUES"))
		sb.WriteString("\n")
		for _, issue := range weeklyReport.TopIssues {
			sb.WriteString(fmt.Sprintf("· %s (×%d)\n", issue.Issue, issue.Frequency))
		}
	}

	if len(weeklyReport.Recommendations) > 0 {
		sb.WriteString("\n")
		sb.WriteString(titleStyle.Render("RECOMMENDATIONS"))
		sb.WriteString("\n")
		for _, rec := range weeklyReport.Recommendations {
			sb.WriteString("· " + rec + "\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(renderCorrelations(weeklyReport.DietCorrelations))

	return cardStyle.Render(sb.String())
}

func renderCorrelations(correlations report.DietCorrelations) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("DIET & SKIN"))
	sb.WriteString("\n")

	if !correlations.HasData {
		sb.WriteString(dimStyle.Render(correlations.Message))
		sb.WriteString("\n")
		return sb.String()
	}

	for _, c := range correlations.Correlations {
		sb.WriteString(fmt.Sprintf("· %s: %s %s\n", c.Trigger, c.Impact, dimStyle.Render(c.Timeframe)))
		sb.WriteString(dimStyle.Render("  " + c.Recommendation))
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render(fmt.Sprintf("based on %d scans and %d food logs over %d days",
		correlations.Stats.ScansCount,
		correlations.Stats.FoodLogsCount,
		correlations.Stats.DaysAnalyzed)))
	sb.WriteString("\n")

	return sb.String()
}

func renderProgressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
