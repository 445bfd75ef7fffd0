// Package app serves the back-office panel's REST API: org-scoped, paginated
// resources with search, sort, filter, bulk actions and spreadsheet
// import/export.
package app

import (
	"errors"
	"net/http"

	"github.com/firmdesk/firmdesk/internal/activity"
	"github.com/firmdesk/firmdesk/internal/api"
	"github.com/firmdesk/firmdesk/internal/branch"
	"github.com/firmdesk/firmdesk/internal/client"
	"github.com/firmdesk/firmdesk/internal/dashboard"
	"github.com/firmdesk/firmdesk/internal/directory"
	"github.com/firmdesk/firmdesk/internal/member"
	"github.com/firmdesk/firmdesk/internal/role"
	"github.com/firmdesk/firmdesk/internal/session"
	"github.com/firmdesk/firmdesk/internal/timeline"
	"github.com/rs/cors"
)

type Server struct {
	host             string
	frontHost        string
	sessionService   session.Service
	directoryService directory.Service
	branchService    branch.Service
	clientService    client.Service
	memberService    member.Service
	activityService  activity.Service
	roleService      role.Service
	timelineService  timeline.Service
	dashboardService dashboard.Service
}

func NewServer(
	host, frontHost string,
	sessionService session.Service,
	directoryService directory.Service,
	branchService branch.Service,
	clientService client.Service,
	memberService member.Service,
	activityService activity.Service,
	roleService role.Service,
	timelineService timeline.Service,
	dashboardService dashboard.Service,
) Server {
	return Server{
		host:             host,
		frontHost:        frontHost,
		sessionService:   sessionService,
		directoryService: directoryService,
		branchService:    branchService,
		clientService:    clientService,
		memberService:    memberService,
		activityService:  activityService,
		roleService:      roleService,
		timelineService:  timelineService,
		dashboardService: dashboardService,
	}
}

func (s Server) RegisterRoutes(mux *http.ServeMux) {
	orgMux := http.NewServeMux()

	orgMux.Handle("GET /app/orgs/{org_id}/branches", s.branchesHandler())
	orgMux.Handle("POST /app/orgs/{org_id}/branches", s.createBranchHandler())
	orgMux.Handle("GET /app/orgs/{org_id}/branches/{branch_id}", s.branchHandler())
	orgMux.Handle("PUT /app/orgs/{org_id}/branches/{branch_id}", s.updateBranchHandler())
	orgMux.Handle("DELETE /app/orgs/{org_id}/branches/{branch_id}", s.deleteBranchHandler())

	orgMux.Handle("GET /app/orgs/{org_id}/clients", s.clientsHandler())
	orgMux.Handle("POST /app/orgs/{org_id}/clients", s.createClientHandler())
	orgMux.Handle("POST /app/orgs/{org_id}/clients/delete", s.deleteClientsHandler())
	orgMux.Handle("GET /app/orgs/{org_id}/clients/export", s.exportClientsHandler())
	orgMux.Handle("POST /app/orgs/{org_id}/clients/import", s.importClientsHandler())
	orgMux.Handle("GET /app/orgs/{org_id}/clients/{client_id}", s.clientHandler())
	orgMux.Handle("PUT /app/orgs/{org_id}/clients/{client_id}", s.updateClientHandler())
	orgMux.Handle("DELETE /app/orgs/{org_id}/clients/{client_id}", s.deleteClientHandler())

	orgMux.Handle("GET /app/orgs/{org_id}/groups", s.groupsHandler())
	orgMux.Handle("POST /app/orgs/{org_id}/groups", s.createGroupHandler())
	orgMux.Handle("GET /app/orgs/{org_id}/groups/{group_id}", s.groupHandler())
	orgMux.Handle("PUT /app/orgs/{org_id}/groups/{group_id}", s.updateGroupHandler())
	orgMux.Handle("DELETE /app/orgs/{org_id}/groups/{group_id}", s.deleteGroupHandler())

	orgMux.Handle("GET /app/orgs/{org_id}/members", s.membersHandler())
	orgMux.Handle("POST /app/orgs/{org_id}/members", s.createMemberHandler())
	orgMux.Handle("GET /app/orgs/{org_id}/members/{member_id}", s.memberHandler())
	orgMux.Handle("PUT /app/orgs/{org_id}/members/{member_id}", s.updateMemberHandler())
	orgMux.Handle("DELETE /app/orgs/{org_id}/members/{member_id}", s.deleteMemberHandler())

	orgMux.Handle("GET /app/orgs/{org_id}/activities", s.activitiesHandler())
	orgMux.Handle("POST /app/orgs/{org_id}/activities", s.createActivityHandler())
	orgMux.Handle("GET /app/orgs/{org_id}/activities/{activity_id}", s.activityHandler())
	orgMux.Handle("PUT /app/orgs/{org_id}/activities/{activity_id}", s.updateActivityHandler())
	orgMux.Handle("DELETE /app/orgs/{org_id}/activities/{activity_id}", s.deleteActivityHandler())

	orgMux.Handle("GET /app/orgs/{org_id}/roles", s.rolesHandler())
	orgMux.Handle("POST /app/orgs/{org_id}/roles", s.createRoleHandler())
	orgMux.Handle("GET /app/orgs/{org_id}/roles/{role_id}", s.roleHandler())
	orgMux.Handle("PUT /app/orgs/{org_id}/roles/{role_id}", s.updateRoleHandler())
	orgMux.Handle("DELETE /app/orgs/{org_id}/roles/{role_id}", s.deleteRoleHandler())

	orgMux.Handle("GET /app/orgs/{org_id}/timelines", s.timelinesHandler())
	orgMux.Handle("POST /app/orgs/{org_id}/timelines", s.createTimelineHandler())
	orgMux.Handle("POST /app/orgs/{org_id}/timelines/delete", s.deleteTimelinesHandler())
	orgMux.Handle("POST /app/orgs/{org_id}/timelines/preview", s.previewTimelineHandler())
	orgMux.Handle("GET /app/orgs/{org_id}/timelines/export", s.exportTimelinesHandler())
	orgMux.Handle("GET /app/orgs/{org_id}/timelines/{timeline_id}", s.timelineHandler())
	orgMux.Handle("GET /app/orgs/{org_id}/timelines/{timeline_id}/preview", s.timelinePreviewHandler())
	orgMux.Handle("PUT /app/orgs/{org_id}/timelines/{timeline_id}", s.updateTimelineHandler())
	orgMux.Handle("DELETE /app/orgs/{org_id}/timelines/{timeline_id}", s.deleteTimelineHandler())

	orgMux.Handle("GET /app/orgs/{org_id}/dashboard", s.dashboardHandler())

	orgHandler := api.RequestURL(orgMux, s.host)
	orgHandler = s.authMiddleware(orgHandler)

	authMux := http.NewServeMux()
	authMux.Handle("POST /app/login", s.loginHandler())
	authMux.Handle("GET /app/me", s.userHandler())
	authMux.Handle("POST /app/logout", s.logoutHandler())
	authHandler := api.RequestURL(authMux, s.host)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{s.frontHost},
		AllowCredentials: true,
		AllowedMethods:   []string{"HEAD", "GET", "POST", "PUT", "DELETE"},
	})
	mux.Handle("/app/orgs/{org_id}/", c.Handler(orgHandler))
	mux.Handle("/app/", c.Handler(authHandler))
}

// writeError maps domain sentinels to the API error envelope. Unmapped
// errors surface as a generic internal error.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, directory.ErrInvalidToken):
		api.WriteError(w, api.NewError("UNAUTHORIZED", http.StatusUnauthorized, err.Error()))
	case errors.Is(err, branch.ErrNotFound),
		errors.Is(err, client.ErrNotFound),
		errors.Is(err, client.ErrGroupNotFound),
		errors.Is(err, member.ErrNotFound),
		errors.Is(err, activity.ErrNotFound),
		errors.Is(err, role.ErrNotFound),
		errors.Is(err, timeline.ErrNotFound):
		api.WriteError(w, api.NewError("NOT_FOUND", http.StatusNotFound, err.Error()))
	case errors.Is(err, branch.ErrAlreadyExists), errors.Is(err, member.ErrAlreadyExists):
		api.WriteError(w, api.NewError("ALREADY_EXISTS", http.StatusBadRequest, err.Error()))
	case errors.Is(err, timeline.ErrFrequencyNotConfigured):
		api.WriteError(w, api.NewError("FREQUENCY_NOT_CONFIGURED", http.StatusBadRequest, err.Error()))
	case errors.Is(err, timeline.ErrInvalidDateRange),
		errors.Is(err, timeline.ErrInvalidFrequency),
		errors.Is(err, timeline.ErrInvalidStatus),
		errors.Is(err, timeline.ErrNoClients),
		errors.Is(err, client.ErrInvalidStatus),
		errors.Is(err, role.ErrInvalidPermission):
		api.WriteError(w, api.NewError("INVALID_REQUEST", http.StatusBadRequest, err.Error()))
	default:
		api.WriteError(w, err)
	}
}
