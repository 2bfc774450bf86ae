package report

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client fetches reports from the remote reporting service.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, authToken string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		authToken: authToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// WeeklyReport fetches the weekly health report for the authenticated
// user. The payload is returned as-is; aggregation happens server-side.
func (c *Client) WeeklyReport(ctx context.Context) (*WeeklyReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reports/weekly", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build report request: %w", err)
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reporting service returned status %d", resp.StatusCode)
	}

	var weeklyReport WeeklyReport
	if err := json.NewDecoder(resp.Body).Decode(&weeklyReport); err != nil {
		return nil, fmt.Errorf("failed to decode weekly report: %w", err)
	}

	c.logger.Debug("fetched weekly report",
		zap.String("start", weeklyReport.Period.Start),
		zap.String("end", weeklyReport.Period.End),
	)

	return &weeklyReport, nil
}
