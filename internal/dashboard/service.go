// Package dashboard aggregates the per-org counts the panel's landing page
// renders.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/firmdesk/firmdesk/internal/activity"
	"github.com/firmdesk/firmdesk/internal/branch"
	"github.com/firmdesk/firmdesk/internal/client"
	"github.com/firmdesk/firmdesk/internal/member"
	"github.com/firmdesk/firmdesk/internal/schedule"
	"github.com/firmdesk/firmdesk/internal/timeline"
	"github.com/firmdesk/firmdesk/internal/timeutil"
	"gorm.io/gorm"
)

type Summary struct {
	Branches   int64            `json:"branches"`
	Clients    int64            `json:"clients"`
	Members    int64            `json:"members"`
	Activities int64            `json:"activities"`
	Timelines  map[string]int64 `json:"timelines"`
	// DueThisWeek is the number of scheduled runs planned within the next
	// seven days.
	DueThisWeek int64 `json:"dueThisWeek"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) Service {
	return Service{db: db}
}

func (s Service) Summary(ctx context.Context, orgID string) (*Summary, error) {
	summary := &Summary{Timelines: map[string]int64{}}

	counts := []struct {
		model any
		dest  *int64
	}{
		{&branch.Branch{}, &summary.Branches},
		{&client.Client{}, &summary.Clients},
		{&member.Member{}, &summary.Members},
		{&activity.Activity{}, &summary.Activities},
	}
	for _, c := range counts {
		if err := s.db.WithContext(ctx).Model(c.model).Where("org_id = ?", orgID).Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("could not count dashboard resources: %w", err)
		}
	}

	var byStatus []struct {
		Status string
		Total  int64
	}
	if err := s.db.WithContext(ctx).Model(&timeline.Timeline{}).
		Select("status, count(*) as total").
		Where("org_id = ?", orgID).
		Group("status").
		Find(&byStatus).Error; err != nil {
		return nil, fmt.Errorf("could not count timelines by status: %w", err)
	}
	for _, row := range byStatus {
		summary.Timelines[row.Status] = row.Total
	}

	now := timeutil.DateTimeNow()
	if err := s.db.WithContext(ctx).Model(&schedule.Schedule{}).
		Where("org_id = ? AND next_run_at > ? AND next_run_at < ?", orgID, now, now.Add(7*24*time.Hour)).
		Count(&summary.DueThisWeek).Error; err != nil {
		return nil, fmt.Errorf("could not count due runs: %w", err)
	}

	return summary, nil
}
