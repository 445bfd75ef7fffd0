package branch

import (
	"context"
	"errors"
	"fmt"

	"github.com/firmdesk/firmdesk/internal/page"
	"github.com/firmdesk/firmdesk/internal/timeutil"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sortColumns whitelists the columns list requests may sort by.
var sortColumns = map[string]string{
	"name":       "name",
	"code":       "code",
	"city":       "city",
	"created_at": "created_at",
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) Service {
	return Service{db: db}
}

func (s Service) Create(ctx context.Context, b *Branch) error {
	if _, err := s.Branch(ctx, Query{Code: b.Code}, b.OrgID); err == nil {
		return ErrAlreadyExists
	}

	now := timeutil.DateTimeNow()
	b.CreatedAt = now
	b.UpdatedAt = now
	if err := s.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("could not create branch: %w", err)
	}
	return nil
}

func (s Service) Update(ctx context.Context, b *Branch) error {
	if _, err := s.Branch(ctx, Query{ID: b.ID.String()}, b.OrgID); err != nil {
		return err
	}

	b.UpdatedAt = timeutil.DateTimeNow()
	if err := s.db.WithContext(ctx).Omit("CreatedAt").Save(b).Error; err != nil {
		return fmt.Errorf("could not update branch: %w", err)
	}
	return nil
}

func (s Service) Branch(ctx context.Context, query Query, orgID string) (*Branch, error) {
	dbQuery := s.db.WithContext(ctx).Where("org_id = ?", orgID)
	if query.ID != "" {
		dbQuery = dbQuery.Where("id = ?", query.ID)
	}
	if query.Code != "" {
		dbQuery = dbQuery.Where("code = ?", query.Code)
	}

	b := &Branch{}
	if err := dbQuery.First(b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not fetch branch: %w", err)
	}
	return b, nil
}

func (s Service) Branches(ctx context.Context, orgID string, filter *Filter, pag page.Pagination) (page.Page[*Branch], error) {
	if filter == nil {
		filter = &Filter{}
	}

	query := s.db.WithContext(ctx).Model(&Branch{}).Where("org_id = ?", orgID)
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ? OR city ILIKE ?", search, search, search)
	}
	query = query.Order(page.OrderClause(sortColumns, filter.Sort, filter.Desc))

	branches, err := page.Paginate[*Branch](query, pag)
	if err != nil {
		return page.Page[*Branch]{}, fmt.Errorf("could not find branches: %w", err)
	}
	return branches, nil
}

func (s Service) Delete(ctx context.Context, id uuid.UUID, orgID string) error {
	if err := s.db.WithContext(ctx).Where("id = ? AND org_id = ?", id, orgID).Delete(&Branch{}).Error; err != nil {
		return fmt.Errorf("could not delete branch: %w", err)
	}
	return nil
}
