package activity

import (
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"skinsight/internal/achievements"
)

// Kinds of recorded activity.
const (
	KindScan = "scan"
	KindFood = "food"
)

// ActivityEntry is one recorded user activity. Scans carry the skin score
// the analysis produced; other kinds leave it null.
type ActivityEntry struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time `gorm:"index"`

	Kind  string `gorm:"index"`
	Score sql.NullInt32
}

// Log is the activity-history provider: it records completed analyses and
// supplies the metrics the achievement evaluator consumes.
type Log struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewLog(db *gorm.DB, logger *zap.Logger) (*Log, error) {
	if err := db.AutoMigrate(&ActivityEntry{}); err != nil {
		return nil, err
	}

	return &Log{
		db:     db,
		logger: logger,
	}, nil
}

// RecordScan appends a completed skin analysis with its score.
func (activityLog *Log) RecordScan(score int) (*ActivityEntry, error) {
	entry := ActivityEntry{
		Kind:  KindScan,
		Score: sql.NullInt32{Int32: int32(score), Valid: true},
	}

	result := activityLog.db.Create(&entry)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entry, nil
}

// RecordFoodLog appends a food-log activity.
func (activityLog *Log) RecordFoodLog() (*ActivityEntry, error) {
	entry := ActivityEntry{Kind: KindFood}

	result := activityLog.db.Create(&entry)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entry, nil
}

// AnalysisCount returns the number of completed analyses. Read failures
// degrade to 0; the achievement engine treats inputs at face value and
// never fails.
func (activityLog *Log) AnalysisCount() int {
	var count int64
	result := activityLog.db.Model(&ActivityEntry{}).Where("kind = ?", KindScan).Count(&count)
	if result.Error != nil {
		activityLog.logger.Warn("failed to count analyses", zap.Error(result.Error))
		return 0
	}
	return int(count)
}

// LatestScore returns the score of the most recent analysis, or 0 when no
// scored analysis exists.
func (activityLog *Log) LatestScore() int {
	var entry ActivityEntry
	result := activityLog.db.Where("kind = ? AND score IS NOT NULL", KindScan).
		Order("created_at desc, id desc").
		First(&entry)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			activityLog.logger.Warn("failed to read latest score", zap.Error(result.Error))
		}
		return 0
	}
	return int(entry.Score.Int32)
}

// Timestamps returns the creation times of all recorded activities,
// oldest first.
func (activityLog *Log) Timestamps() []time.Time {
	var entries []ActivityEntry
	result := activityLog.db.Order("created_at asc").Find(&entries)
	if result.Error != nil {
		activityLog.logger.Warn("failed to read activity history", zap.Error(result.Error))
		return nil
	}

	timestamps := make([]time.Time, 0, len(entries))
	for _, entry := range entries {
		timestamps = append(timestamps, entry.CreatedAt)
	}
	return timestamps
}

// Snapshot bundles the current activity metrics for the achievement
// evaluator, deriving the streak from the recorded activity dates.
func (activityLog *Log) Snapshot(now time.Time) achievements.Metrics {
	return achievements.Metrics{
		AnalysisCount: activityLog.AnalysisCount(),
		CurrentScore:  activityLog.LatestScore(),
		StreakDays:    achievements.CurrentStreak(activityLog.Timestamps(), now),
	}
}
