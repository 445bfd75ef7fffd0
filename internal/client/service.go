package client

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
	"status":     "status",
	"created_at": "created_at",
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) Service {
	return Service{db: db}
}

func (s Service) Create(ctx context.Context, c *Client) error {
	if c.Status == "" {
		c.Status = StatusActive
	}
	if c.Status != StatusActive && c.Status != StatusInactive {
		return ErrInvalidStatus
	}

	now := timeutil.DateTimeNow()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("could not create client: %w", err)
	}
	return nil
}

func (s Service) Update(ctx context.Context, c *Client) error {
	if _, err := s.Client(ctx, c.ID.String(), c.OrgID); err != nil {
		return err
	}
	if c.Status != StatusActive && c.Status != StatusInactive {
		return ErrInvalidStatus
	}

	c.UpdatedAt = timeutil.DateTimeNow()
	if err := s.db.WithContext(ctx).Omit("CreatedAt").Save(c).Error; err != nil {
		return fmt.Errorf("could not update client: %w", err)
	}
	return nil
}

func (s Service) Client(ctx context.Context, id, orgID string) (*Client, error) {
	c := &Client{}
	if err := s.db.WithContext(ctx).Where("id = ? AND org_id = ?", id, orgID).First(c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not fetch client: %w", err)
	}
	return c, nil
}

func (s Service) Clients(ctx context.Context, orgID string, filter *Filter, pag page.Pagination) (page.Page[*Client], error) {
	if filter == nil {
		filter = &Filter{}
	}

	query := s.db.WithContext(ctx).Model(&Client{}).Where("org_id = ?", orgID)
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR pan ILIKE ?", search, search, search)
	}
	if filter.BranchID != "" {
		query = query.Where("branch_id = ?", filter.BranchID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.GroupID != "" {
		group, err := s.Group(ctx, filter.GroupID, orgID)
		if err != nil {
			return page.Page[*Client]{}, err
		}
		query = query.Where("id IN ?", group.ClientIDs)
	}
	query = query.Order(page.OrderClause(sortColumns, filter.Sort, filter.Desc))

	clients, err := page.Paginate[*Client](query, pag)
	if err != nil {
		return page.Page[*Client]{}, fmt.Errorf("could not find clients: %w", err)
	}
	return clients, nil
}

// Names resolves the display names of the given clients, in the order the
// IDs were passed. Unknown IDs are skipped.
func (s Service) Names(ctx context.Context, ids []uuid.UUID, orgID string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var clients []*Client
	if err := s.db.WithContext(ctx).Where("id IN ? AND org_id = ?", ids, orgID).Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("could not fetch client names: %w", err)
	}

	byID := make(map[uuid.UUID]string, len(clients))
	for _, c := range clients {
		byID[c.ID] = c.Name
	}

	var names []string
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names, nil
}

func (s Service) Delete(ctx context.Context, id uuid.UUID, orgID string) error {
	if err := s.db.WithContext(ctx).Where("id = ? AND org_id = ?", id, orgID).Delete(&Client{}).Error; err != nil {
		return fmt.Errorf("could not delete client: %w", err)
	}
	return nil
}

// DeleteMany removes the clients selected in a bulk operation.
func (s Service) DeleteMany(ctx context.Context, ids []uuid.UUID, orgID string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ? AND org_id = ?", ids, orgID).Delete(&Client{}).Error; err != nil {
		return fmt.Errorf("could not delete clients: %w", err)
	}
	return nil
}

func (s Service) CreateGroup(ctx context.Context, g *Group) error {
	now := timeutil.DateTimeNow()
	g.CreatedAt = now
	g.UpdatedAt = now
	if err := s.db.WithContext(ctx).Create(g).Error; err != nil {
		return fmt.Errorf("could not create client group: %w", err)
	}
	return nil
}

func (s Service) UpdateGroup(ctx context.Context, g *Group) error {
	if _, err := s.Group(ctx, g.ID.String(), g.OrgID); err != nil {
		return err
	}

	g.UpdatedAt = timeutil.DateTimeNow()
	if err := s.db.WithContext(ctx).Omit("CreatedAt").Save(g).Error; err != nil {
		return fmt.Errorf("could not update client group: %w", err)
	}
	return nil
}

func (s Service) Group(ctx context.Context, id, orgID string) (*Group, error) {
	g := &Group{}
	if err := s.db.WithContext(ctx).Where("id = ? AND org_id = ?", id, orgID).First(g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("could not fetch client group: %w", err)
	}
	return g, nil
}

func (s Service) Groups(ctx context.Context, orgID, search string, pag page.Pagination) (page.Page[*Group], error) {
	query := s.db.WithContext(ctx).Model(&Group{}).Where("org_id = ?", orgID).Order("created_at DESC")
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	groups, err := page.Paginate[*Group](query, pag)
	if err != nil {
		return page.Page[*Group]{}, fmt.Errorf("could not find client groups: %w", err)
	}
	return groups, nil
}

func (s Service) DeleteGroup(ctx context.Context, id uuid.UUID, orgID string) error {
	if err := s.db.WithContext(ctx).Where("id = ? AND org_id = ?", id, orgID).Delete(&Group{}).Error; err != nil {
		return fmt.Errorf("could not delete client group: %w", err)
	}
	return nil
}
