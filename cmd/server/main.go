package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/firmdesk/firmdesk/cmd/runutil"
	"github.com/firmdesk/firmdesk/internal/activity"
	"github.com/firmdesk/firmdesk/internal/app"
	"github.com/firmdesk/firmdesk/internal/branch"
	"github.com/firmdesk/firmdesk/internal/client"
	"github.com/firmdesk/firmdesk/internal/dashboard"
	"github.com/firmdesk/firmdesk/internal/directory"
	"github.com/firmdesk/firmdesk/internal/member"
	"github.com/firmdesk/firmdesk/internal/role"
	"github.com/firmdesk/firmdesk/internal/schedule"
	"github.com/firmdesk/firmdesk/internal/session"
	"github.com/firmdesk/firmdesk/internal/timeline"
)

func main() {
	slog.SetDefault(runutil.Logger())

	cfg, err := runutil.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("setting up firmdesk server", "host", cfg.Host)

	db, err := runutil.DB(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed connecting to database", "error", err)
		os.Exit(1)
	}

	// Services.
	directoryService := directory.NewService(cfg.DirectoryIssuer, http.DefaultClient)
	sessionService := session.NewService(db, directoryService)
	branchService := branch.NewService(db)
	clientService := client.NewService(db)
	memberService := member.NewService(db)
	activityService := activity.NewService(db)
	roleService := role.NewService(db)
	scheduleService := schedule.NewService(db)
	timelineService := timeline.NewService(db, activityService, clientService, scheduleService)
	dashboardService := dashboard.NewService(db)

	mux := http.NewServeMux()
	server := app.NewServer(
		cfg.Host, cfg.FrontHost,
		sessionService, directoryService,
		branchService, clientService, memberService,
		activityService, roleService, timelineService, dashboardService,
	)
	server.RegisterRoutes(mux)

	slog.Info("firmdesk server listening", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
