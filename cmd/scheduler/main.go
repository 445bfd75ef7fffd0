package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/firmdesk/firmdesk/cmd/runutil"
	"github.com/firmdesk/firmdesk/internal/activity"
	"github.com/firmdesk/firmdesk/internal/client"
	"github.com/firmdesk/firmdesk/internal/page"
	"github.com/firmdesk/firmdesk/internal/schedule"
	"github.com/firmdesk/firmdesk/internal/timeline"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.SetDefault(runutil.Logger())

	cfg, err := runutil.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("setting up firmdesk scheduler", "poll_interval", cfg.PollInterval)

	db, err := runutil.DB(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed connecting to database", "error", err)
		os.Exit(1)
	}

	// Services.
	activityService := activity.NewService(db)
	clientService := client.NewService(db)
	scheduleService := schedule.NewService(db)
	timelineService := timeline.NewService(db, activityService, clientService, scheduleService)

	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := pollSchedules(ctx, scheduleService, timelineService); err != nil {
				slog.ErrorContext(ctx, "error polling schedules", "error", err)
			}
		}
	}
}

// pollSchedules fires every due run. Fired timelines replant their own next
// run, so schedule rows are only removed here when the task type is unknown.
func pollSchedules(ctx context.Context, scheduleService schedule.Service, timelineService timeline.Service) error {
	slog.InfoContext(ctx, "polling schedules")
	pageSize := int32(100)
	schedules, err := scheduleService.Schedules(ctx, page.NewPagination(nil, &pageSize))
	if err != nil {
		return fmt.Errorf("failed to fetch schedules: %w", err)
	}
	slog.InfoContext(ctx, "schedules fetched", "count", len(schedules.Records), "total", schedules.TotalRecords)

	for _, s := range schedules.Records {
		slog.InfoContext(ctx, "processing schedule", "id", s.ID, "task_type", s.TaskType)
		switch s.TaskType {
		case schedule.TaskTypeTimeline:
			if err := timelineService.Fire(ctx, s.ID.String(), s.OrgID, s.NextRunAt); err != nil {
				slog.ErrorContext(ctx, "error processing schedule", "error", err)
			}
		default:
			slog.ErrorContext(ctx, "unknown task type, unscheduling", "task_type", s.TaskType)
			scheduleService.Unschedule(ctx, s.ID.String(), s.OrgID)
		}
	}
	return nil
}
