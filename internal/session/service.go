package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/firmdesk/firmdesk/internal/directory"
	"github.com/firmdesk/firmdesk/internal/errorutil"
	"github.com/firmdesk/firmdesk/internal/timeutil"
	"gorm.io/gorm"
)

var ErrNotFound = errorutil.New("session not found")

type Service struct {
	db               *gorm.DB
	directoryService directory.Service
}

func NewService(db *gorm.DB, directoryService directory.Service) Service {
	return Service{
		db:               db,
		directoryService: directoryService,
	}
}

// Create exchanges a directory token for a server-side session.
func (s Service) Create(ctx context.Context, token string) (*Session, error) {
	user, err := s.directoryService.UserInfo(ctx, token)
	if err != nil {
		return nil, err
	}

	session := &Session{
		Username:      user.Username,
		Name:          user.Name,
		Organizations: Organizations{},
		CreatedAt:     timeutil.DateTimeNow(),
		ExpiresAt:     timeutil.DateTimeNow().Add(Validity),
	}
	for orgID, org := range user.Organizations {
		session.Organizations[orgID] = struct {
			Name string `json:"name"`
		}{
			Name: org.Name,
		}
	}

	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, fmt.Errorf("could not create session: %w", err)
	}

	return session, nil
}

func (s Service) Session(ctx context.Context, id string) (*Session, error) {
	session := &Session{}
	if err := s.db.WithContext(ctx).First(session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not fetch session with id %s: %w", id, err)
	}

	if session.IsExpired() {
		_ = s.Delete(ctx, id)
		return nil, ErrNotFound
	}
	return session, nil
}

func (s Service) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&Session{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("could not delete session with id %s: %w", id, err)
	}
	return nil
}
