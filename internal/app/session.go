package app

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/firmdesk/firmdesk/internal/api"
	"github.com/firmdesk/firmdesk/internal/session"
)

type loginRequest struct {
	Token string `json:"token"`
}

type userResponse struct {
	Data struct {
		Username      string            `json:"username"`
		Name          string            `json:"name,omitempty"`
		Organizations map[string]string `json:"organizations"`
	} `json:"data"`
	Meta *api.Meta `json:"meta"`
}

func toUserResponse(sess *session.Session) userResponse {
	var resp userResponse
	resp.Data.Username = sess.Username
	resp.Data.Name = sess.Name
	resp.Data.Organizations = map[string]string{}
	for orgID, org := range sess.Organizations {
		resp.Data.Organizations[orgID] = org.Name
	}
	resp.Meta = api.NewMeta()
	return resp
}

func (s Server) loginHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
			api.WriteError(w, api.NewError("BAD_REQUEST", http.StatusBadRequest, "the directory token is missing"))
			return
		}

		sess, err := s.sessionService.Create(r.Context(), req.Token)
		if err != nil {
			writeError(w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookieSessionID,
			Value:    sess.ID.String(),
			Path:     "/app",
			Expires:  sess.ExpiresAt.Time,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
		})
		api.WriteJSON(w, toUserResponse(sess), http.StatusCreated)
	})
}

func (s Server) userHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(cookieSessionID)
		if err != nil {
			api.WriteError(w, api.NewError("UNAUTHORIZED", http.StatusUnauthorized, "session not found"))
			return
		}

		sess, err := s.sessionService.Session(r.Context(), cookie.Value)
		if err != nil {
			writeError(w, err)
			return
		}

		api.WriteJSON(w, toUserResponse(sess), http.StatusOK)
	})
}

func (s Server) logoutHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(cookieSessionID); err == nil {
			_ = s.sessionService.Delete(r.Context(), cookie.Value)
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookieSessionID,
			Path:     "/app",
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
		})
		w.WriteHeader(http.StatusNoContent)
	})
}
