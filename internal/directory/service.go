// Package directory consumes the external identity service the firm's staff
// authenticate against. Token issuance and storage live entirely on the
// directory's side; this client only exchanges a bearer token for the user's
// profile.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/firmdesk/firmdesk/internal/errorutil"
)

var ErrInvalidToken = errorutil.New("the directory rejected the token")

type User struct {
	Username      string `json:"sub"`
	Name          string `json:"name"`
	Organizations map[string]struct {
		Name string `json:"organisation_name"`
	} `json:"org_access_details"`
}

type Service struct {
	issuer     string
	httpClient *http.Client
}

func NewService(issuer string, httpClient *http.Client) Service {
	return Service{
		issuer:     issuer,
		httpClient: httpClient,
	}
}

// UserInfo resolves a directory token to the user's profile and org
// memberships.
func (s Service) UserInfo(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.issuer+"/userinfo", nil)
	if err != nil {
		return nil, fmt.Errorf("could not build directory request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not reach the directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidToken
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("could not decode directory response: %w", err)
	}

	return &user, nil
}
