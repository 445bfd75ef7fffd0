package activity

import (
	"context"
	"errors"
	"fmt"

	"github.com/firmdesk/firmdesk/internal/page"
	"github.com/firmdesk/firmdesk/internal/timeutil"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var sortColumns = map[string]string{
	"name":       "name",
	"category":   "category",
	"created_at": "created_at",
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) Service {
	return Service{db: db}
}

func (s Service) Create(ctx context.Context, a *Activity) error {
	now := timeutil.DateTimeNow()
	a.CreatedAt = now
	a.UpdatedAt = now
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("could not create activity: %w", err)
	}
	return nil
}

func (s Service) Update(ctx context.Context, a *Activity) error {
	if _, err := s.Activity(ctx, a.ID.String(), a.OrgID); err != nil {
		return err
	}

	a.UpdatedAt = timeutil.DateTimeNow()
	if err := s.db.WithContext(ctx).Omit("CreatedAt").Save(a).Error; err != nil {
		return fmt.Errorf("could not update activity: %w", err)
	}
	return nil
}

func (s Service) Activity(ctx context.Context, id, orgID string) (*Activity, error) {
	a := &Activity{}
	if err := s.db.WithContext(ctx).Where("id = ? AND org_id = ?", id, orgID).First(a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not fetch activity: %w", err)
	}
	return a, nil
}

func (s Service) Activities(ctx context.Context, orgID string, filter *Filter, pag page.Pagination) (page.Page[*Activity], error) {
	if filter == nil {
		filter = &Filter{}
	}

	query := s.db.WithContext(ctx).Model(&Activity{}).Where("org_id = ?", orgID)
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", search, search)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	query = query.Order(page.OrderClause(sortColumns, filter.Sort, filter.Desc))

	activities, err := page.Paginate[*Activity](query, pag)
	if err != nil {
		return page.Page[*Activity]{}, fmt.Errorf("could not find activities: %w", err)
	}
	return activities, nil
}

func (s Service) Delete(ctx context.Context, id uuid.UUID, orgID string) error {
	if err := s.db.WithContext(ctx).Where("id = ? AND org_id = ?", id, orgID).Delete(&Activity{}).Error; err != nil {
		return fmt.Errorf("could not delete activity: %w", err)
	}
	return nil
}
