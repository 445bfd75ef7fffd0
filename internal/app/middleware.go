package app

import (
	"context"
	"net/http"

	"github.com/firmdesk/firmdesk/internal/api"
)

const cookieSessionID = "sessionId"

// authMiddleware resolves the session cookie and checks that the session's
// user belongs to the org in the path before letting org-scoped handlers
// run.
func (s Server) authMiddleware(next http.Handler) http.Handler {
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

		orgID := r.PathValue("org_id")
		if _, ok := sess.Organizations[orgID]; !ok {
			api.WriteError(w, api.NewError("UNAUTHORIZED", http.StatusUnauthorized, "invalid org id"))
			return
		}

		ctx := context.WithValue(r.Context(), api.CtxKeyOrgID, orgID)
		ctx = context.WithValue(ctx, api.CtxKeySessionID, sess.ID.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
