package member

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
	"email":      "email",
	"created_at": "created_at",
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) Service {
	return Service{db: db}
}

func (s Service) Create(ctx context.Context, m *Member) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&Member{}).
		Where("email = ? AND org_id = ?", m.Email, m.OrgID).Count(&count).Error; err != nil {
		return fmt.Errorf("could not check team member email: %w", err)
	}
	if count > 0 {
		return ErrAlreadyExists
	}

	now := timeutil.DateTimeNow()
	m.CreatedAt = now
	m.UpdatedAt = now
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("could not create team member: %w", err)
	}
	return nil
}

func (s Service) Update(ctx context.Context, m *Member) error {
	if _, err := s.Member(ctx, m.ID.String(), m.OrgID); err != nil {
		return err
	}

	m.UpdatedAt = timeutil.DateTimeNow()
	if err := s.db.WithContext(ctx).Omit("CreatedAt").Save(m).Error; err != nil {
		return fmt.Errorf("could not update team member: %w", err)
	}
	return nil
}

func (s Service) Member(ctx context.Context, id, orgID string) (*Member, error) {
	m := &Member{}
	if err := s.db.WithContext(ctx).Where("id = ? AND org_id = ?", id, orgID).First(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not fetch team member: %w", err)
	}
	return m, nil
}

func (s Service) Members(ctx context.Context, orgID string, filter *Filter, pag page.Pagination) (page.Page[*Member], error) {
	if filter == nil {
		filter = &Filter{}
	}

	query := s.db.WithContext(ctx).Model(&Member{}).Where("org_id = ?", orgID)
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", search, search)
	}
	if filter.BranchID != "" {
		query = query.Where("branch_id = ?", filter.BranchID)
	}
	if filter.RoleID != "" {
		query = query.Where("role_id = ?", filter.RoleID)
	}
	query = query.Order(page.OrderClause(sortColumns, filter.Sort, filter.Desc))

	members, err := page.Paginate[*Member](query, pag)
	if err != nil {
		return page.Page[*Member]{}, fmt.Errorf("could not find team members: %w", err)
	}
	return members, nil
}

func (s Service) Delete(ctx context.Context, id uuid.UUID, orgID string) error {
	if err := s.db.WithContext(ctx).Where("id = ? AND org_id = ?", id, orgID).Delete(&Member{}).Error; err != nil {
		return fmt.Errorf("could not delete team member: %w", err)
	}
	return nil
}
