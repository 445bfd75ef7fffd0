package timeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/firmdesk/firmdesk/internal/activity"
	"github.com/firmdesk/firmdesk/internal/client"
	"github.com/firmdesk/firmdesk/internal/frequency"
	"github.com/firmdesk/firmdesk/internal/page"
	"github.com/firmdesk/firmdesk/internal/schedule"
	"github.com/firmdesk/firmdesk/internal/timeutil"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// delayedAfter is how far past its planned run a timeline may fire before it
// is flagged delayed.
const delayedAfter = time.Hour

var sortColumns = map[string]string{
	"status":     "status",
	"frequency":  "frequency",
	"start_date": "start_date",
	"created_at": "created_at",
}

type Service struct {
	db              *gorm.DB
	activityService activity.Service
	clientService   client.Service
	scheduleService schedule.Service
}

func NewService(db *gorm.DB, activityService activity.Service, clientService client.Service, scheduleService schedule.Service) Service {
	return Service{
		db:              db,
		activityService: activityService,
		clientService:   clientService,
		scheduleService: scheduleService,
	}
}

// Create validates and stores a new timeline. The frequency settings arrive
// in the 24-hour edit form; they are stored in the 12-hour wire form with
// every time field converted regardless of the active kind.
func (s Service) Create(ctx context.Context, t *Timeline) error {
	if err := s.validate(ctx, t); err != nil {
		return err
	}

	now := timeutil.DateTimeNow()
	t.CreatedAt = now
	t.UpdatedAt = now

	config, _ := t.FrequencyConfig.Config(t.Frequency)
	t.FrequencyConfig = t.FrequencyConfig.To12Hour()

	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("could not create timeline: %w", err)
	}

	s.plan(ctx, t, config, now.Time)
	return nil
}

// Update replaces the timeline, configuration included. The stored settings
// are never merged with the incoming ones.
func (s Service) Update(ctx context.Context, t *Timeline) error {
	if _, err := s.Timeline(ctx, t.ID.String(), t.OrgID); err != nil {
		return err
	}
	if err := s.validate(ctx, t); err != nil {
		return err
	}

	t.UpdatedAt = timeutil.DateTimeNow()

	config, _ := t.FrequencyConfig.Config(t.Frequency)
	t.FrequencyConfig = t.FrequencyConfig.To12Hour()

	if err := s.db.WithContext(ctx).Omit("CreatedAt").Save(t).Error; err != nil {
		return fmt.Errorf("could not update timeline: %w", err)
	}

	s.plan(ctx, t, config, t.UpdatedAt.Time)
	return nil
}

func (s Service) Timeline(ctx context.Context, id, orgID string) (*Timeline, error) {
	t := &Timeline{}
	if err := s.db.WithContext(ctx).Where("id = ? AND org_id = ?", id, orgID).First(t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not fetch timeline: %w", err)
	}
	return t, nil
}

func (s Service) Timelines(ctx context.Context, orgID string, filter *Filter, pag page.Pagination) (page.Page[*Timeline], error) {
	if filter == nil {
		filter = &Filter{}
	}

	query := s.db.WithContext(ctx).Model(&Timeline{}).Where("org_id = ?", orgID)
	if filter.BranchID != "" {
		query = query.Where("branch_id = ?", filter.BranchID)
	}
	if filter.ClientID != "" {
		// ClientIDs is a json array column; containment needs a json array
		// on the right-hand side too.
		query = query.Where("client_ids::jsonb @> ?", fmt.Sprintf(`["%s"]`, filter.ClientID))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Frequency != "" {
		query = query.Where("frequency = ?", filter.Frequency)
	}
	query = query.Order(page.OrderClause(sortColumns, filter.Sort, filter.Desc))

	timelines, err := page.Paginate[*Timeline](query, pag)
	if err != nil {
		return page.Page[*Timeline]{}, fmt.Errorf("could not find timelines: %w", err)
	}
	return timelines, nil
}

func (s Service) Delete(ctx context.Context, id uuid.UUID, orgID string) error {
	if err := s.db.WithContext(ctx).Where("id = ? AND org_id = ?", id, orgID).Delete(&Timeline{}).Error; err != nil {
		return fmt.Errorf("could not delete timeline: %w", err)
	}
	s.scheduleService.Unschedule(ctx, id.String(), orgID)
	return nil
}

// DeleteMany removes the timelines selected in a bulk operation.
func (s Service) DeleteMany(ctx context.Context, ids []uuid.UUID, orgID string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ? AND org_id = ?", ids, orgID).Delete(&Timeline{}).Error; err != nil {
		return fmt.Errorf("could not delete timelines: %w", err)
	}
	for _, id := range ids {
		s.scheduleService.Unschedule(ctx, id.String(), orgID)
	}
	return nil
}

// Preview renders the natural-language schedule summary for a stored
// timeline, resolving the activity and client names it references.
func (s Service) Preview(ctx context.Context, id, orgID string) (string, error) {
	t, err := s.Timeline(ctx, id, orgID)
	if err != nil {
		return "", err
	}

	act, err := s.activityService.Activity(ctx, t.ActivityID.String(), orgID)
	if err != nil {
		return "", err
	}

	names, err := s.clientService.Names(ctx, t.ClientIDs, orgID)
	if err != nil {
		return "", err
	}

	var start, end *timeutil.Date
	if t.StartDate != nil {
		d := t.StartDate.ToDate()
		start = &d
	}
	if t.EndDate != nil {
		d := t.EndDate.ToDate()
		end = &d
	}

	return frequency.Preview(act.Name, names, t.Frequency, t.EditSettings(), start, end), nil
}

// Fire processes one due run: pending timelines move to ongoing, runs picked
// up too long after their planned instant are flagged delayed, and the next
// run is planted unless the end date has passed.
func (s Service) Fire(ctx context.Context, id, orgID string, plannedAt timeutil.DateTime) error {
	t, err := s.Timeline(ctx, id, orgID)
	if err != nil {
		return err
	}

	now := timeutil.DateTimeNow()
	switch {
	case t.Status == StatusPending:
		t.Status = StatusOngoing
	case t.Status != StatusCompleted && now.Sub(plannedAt.Time) > delayedAfter:
		t.Status = StatusDelayed
	}
	t.UpdatedAt = now

	if err := s.db.WithContext(ctx).Omit("CreatedAt").Save(t).Error; err != nil {
		return fmt.Errorf("could not update fired timeline: %w", err)
	}

	slog.InfoContext(ctx, "timeline fired",
		"id", t.ID, "org_id", orgID, "frequency", t.Frequency, "status", t.Status)

	config, ok := t.EditSettings().Config(t.Frequency)
	if !ok {
		s.scheduleService.Unschedule(ctx, id, orgID)
		return nil
	}
	s.plan(ctx, t, config, now.Time)
	return nil
}

// plan computes the next run and plants or clears the schedule row.
func (s Service) plan(ctx context.Context, t *Timeline, config frequency.Config, after time.Time) {
	if config == nil {
		return
	}

	next, ok := frequency.NextRun(after, config)
	if !ok {
		s.scheduleService.Unschedule(ctx, t.ID.String(), t.OrgID)
		return
	}

	// Scheduling stops past the end date.
	if t.EndDate != nil && next.After(t.EndDate.Time) {
		s.scheduleService.Unschedule(ctx, t.ID.String(), t.OrgID)
		return
	}

	s.scheduleService.Schedule(ctx, &schedule.Schedule{
		ID:        t.ID,
		TaskType:  schedule.TaskTypeTimeline,
		NextRunAt: timeutil.NewDateTime(next),
		OrgID:     t.OrgID,
	})
}

// validate is the submission-time gate: advisory per-keystroke statuses in
// the form never replace this check.
func (s Service) validate(ctx context.Context, t *Timeline) error {
	if t.Status == "" {
		t.Status = StatusPending
	}
	if _, ok := ParseStatus(string(t.Status)); !ok {
		return ErrInvalidStatus
	}
	if len(t.ClientIDs) == 0 {
		return ErrNoClients
	}
	if _, ok := frequency.ParseKind(string(t.Frequency)); !ok {
		return ErrInvalidFrequency
	}
	if !frequency.Complete(t.Frequency, t.FrequencyConfig) {
		return ErrFrequencyNotConfigured
	}
	if t.StartDate != nil && t.EndDate != nil && t.EndDate.Before(t.StartDate.Time) {
		return ErrInvalidDateRange
	}

	if _, err := s.activityService.Activity(ctx, t.ActivityID.String(), t.OrgID); err != nil {
		return err
	}
	return nil
}
