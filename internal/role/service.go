package role

import (
	"context"
	"errors"
	"fmt"

	"github.com/firmdesk/firmdesk/internal/errorutil"
	"github.com/firmdesk/firmdesk/internal/page"
	"github.com/firmdesk/firmdesk/internal/timeutil"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) Service {
	return Service{db: db}
}

func (s Service) Create(ctx context.Context, r *Role) error {
	if err := validPermissions(r.Permissions); err != nil {
		return err
	}

	now := timeutil.DateTimeNow()
	r.CreatedAt = now
	r.UpdatedAt = now
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("could not create role: %w", err)
	}
	return nil
}

func (s Service) Update(ctx context.Context, r *Role) error {
	if _, err := s.Role(ctx, r.ID.String(), r.OrgID); err != nil {
		return err
	}
	if err := validPermissions(r.Permissions); err != nil {
		return err
	}

	r.UpdatedAt = timeutil.DateTimeNow()
	if err := s.db.WithContext(ctx).Omit("CreatedAt").Save(r).Error; err != nil {
		return fmt.Errorf("could not update role: %w", err)
	}
	return nil
}

func (s Service) Role(ctx context.Context, id, orgID string) (*Role, error) {
	r := &Role{}
	if err := s.db.WithContext(ctx).Where("id = ? AND org_id = ?", id, orgID).First(r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not fetch role: %w", err)
	}
	return r, nil
}

func (s Service) Roles(ctx context.Context, orgID, search string, pag page.Pagination) (page.Page[*Role], error) {
	query := s.db.WithContext(ctx).Model(&Role{}).Where("org_id = ?", orgID).Order("created_at DESC")
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	roles, err := page.Paginate[*Role](query, pag)
	if err != nil {
		return page.Page[*Role]{}, fmt.Errorf("could not find roles: %w", err)
	}
	return roles, nil
}

func (s Service) Delete(ctx context.Context, id uuid.UUID, orgID string) error {
	if err := s.db.WithContext(ctx).Where("id = ? AND org_id = ?", id, orgID).Delete(&Role{}).Error; err != nil {
		return fmt.Errorf("could not delete role: %w", err)
	}
	return nil
}

func validPermissions(perms []Permission) error {
	for _, p := range perms {
		if _, ok := ParsePermission(string(p)); !ok {
			return errorutil.Format("%w: %q", ErrInvalidPermission, p)
		}
	}
	return nil
}
