package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"skinsight/internal/achievements"
	"skinsight/internal/activity"
	"skinsight/internal/config"
	"skinsight/internal/core"
	"skinsight/internal/kvstore"
	"skinsight/internal/report"
	"skinsight/internal/ui"
)

var BUILD_VERSION = "dev"

var versionFlag = flag.Bool("ver", false, "display build version")
var helpFlag = flag.Bool("h", false, "display help information")

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(BUILD_VERSION)
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		printUsage()
		return
	}

	cfg, err := config.Load(core.ConfigFile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initializeLogger()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync() // Flush any buffered log entries
	}()

	logger.Info("-------- new skinsight session --------", zap.Any("args", os.Args))

	store, err := kvstore.NewKVStore(core.StateFile())
	if err != nil {
		logger.Error("failed to open state database", zap.Error(err))
		fmt.Fprintf(os.Stderr, "failed to open state database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	activityLog, err := activity.NewLog(store.DB(), logger)
	if err != nil {
		logger.Error("failed to initialize activity log", zap.Error(err))
		fmt.Fprintf(os.Stderr, "failed to initialize activity log: %v\n", err)
		os.Exit(1)
	}

	achievementStore := achievements.NewStore(store, cfg.AchievementsKey, logger)
	evaluator := achievements.NewEvaluator(achievementStore, logger)

	switch flag.Arg(0) {
	case "record":
		recordFlags := flag.NewFlagSet("record", flag.ExitOnError)
		score := recordFlags.Int("score", 0, "skin score (0-100)")
		_ = recordFlags.Parse(flag.Args()[1:])
		runRecord(activityLog, achievementStore, evaluator, *score)
	case "achievements":
		fmt.Println(ui.RenderAchievements(evaluator.Check(activityLog.Snapshot(time.Now()))))
	case "report":
		runReport(cfg, logger)
	default:
		printUsage()
		os.Exit(1)
	}
}

// runRecord appends a scan, re-evaluates achievements, and announces any
// that newly unlocked.
func runRecord(activityLog *activity.Log, achievementStore *achievements.Store, evaluator *achievements.Evaluator, score int) {
	newlyUnlocked, err := recordScan(activityLog, achievementStore, evaluator, score, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to record scan: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recorded scan with score %d.\n", score)
	for _, a := range newlyUnlocked {
		fmt.Printf("Achievement unlocked: %s (%s)\n", a.Definition.Title, a.Definition.Description)
	}
}

// recordScan appends a scan and re-evaluates, returning only the
// achievements that were locked before this scan and unlocked after it.
func recordScan(activityLog *activity.Log, achievementStore *achievements.Store, evaluator *achievements.Evaluator, score int, now time.Time) ([]achievements.Achievement, error) {
	previouslyUnlocked := make(map[string]bool)
	for _, a := range achievementStore.Load() {
		if a.State.Unlocked {
			previouslyUnlocked[a.Definition.ID] = true
		}
	}

	if _, err := activityLog.RecordScan(score); err != nil {
		return nil, err
	}

	var newlyUnlocked []achievements.Achievement
	for _, a := range evaluator.Check(activityLog.Snapshot(now)) {
		if a.State.Unlocked && !previouslyUnlocked[a.Definition.ID] {
			newlyUnlocked = append(newlyUnlocked, a)
		}
	}
	return newlyUnlocked, nil
}

func runReport(cfg config.Config, logger *zap.Logger) {
	client := report.NewClient(cfg.ReportServiceURL, cfg.AuthToken, logger)

	weeklyReport, err := client.WeeklyReport(context.Background())
	if err != nil {
		logger.Error("failed to fetch weekly report", zap.Error(err))
		fmt.Fprintf(os.Stderr, "failed to fetch weekly report: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(ui.RenderWeeklyReport(weeklyReport))
}

func initializeLogger() (*zap.Logger, error) {
	loggerConfig := zap.NewProductionConfig()
	if BUILD_VERSION == "dev" {
		loggerConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	loggerConfig.OutputPaths = []string{
		core.LogFile(),
	}
	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, err
	}

	return logger, nil
}

func printUsage() {
	fmt.Println("Usage of skinsight:")
	fmt.Println("  skinsight record -score N    record a completed skin analysis")
	fmt.Println("  skinsight achievements       show the achievement list")
	fmt.Println("  skinsight report             fetch and show the weekly report")
	flag.PrintDefaults()
}
