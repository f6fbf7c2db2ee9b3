package http

import (
	"errors"
	"io"
	"net/http"

	"proteseflow/internal/core/application/usecases/commands"
	"proteseflow/internal/core/application/usecases/queries"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListUsers handles GET /api/v1/users?view=active|trash|approvals|dentists.
func (s *Server) ListUsers(c echo.Context, params servers.ListUsersParams) error {
	view, err := queries.ParseUserListView(string(params.View))
	if err != nil {
		return err
	}

	query, err := queries.NewListUsersQuery(actorFrom(c), view)
	if err != nil {
		return err
	}

	users, err := s.h.ListUsers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.User, 0, len(users))
	for _, u := range users {
		response = append(response, userSummaryResponse(u))
	}
	return c.JSON(http.StatusOK, response)
}

// GetUser handles GET /api/v1/users/{id}.
func (s *Server) GetUser(c echo.Context, rawID servers.ID) error {
	id, err := toID(rawID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetUserQuery(actorFrom(c), id)
	if err != nil {
		return err
	}

	details, err := s.h.GetUser.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := userSummaryResponse(details.UserSummary)
	response.OrderCount = details.OrderCount
	return c.JSON(http.StatusOK, response)
}

// CreateUser handles POST /api/v1/users. Accounts created here are confirmed.
func (s *Server) CreateUser(c echo.Context) error {
	var req servers.CreateUserJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	// an unknown code yields UnknownRole, which the command reports under "role"
	role, _ := user.ParseRole(string(req.Role))
	cmd, err := commands.NewCreateUserCommand(actorFrom(c), profileOf(req.Username, req.Email, req.Phone), role, req.License, req.Password)
	if err != nil {
		return err
	}

	u, err := s.h.CreateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.log.Info().
		Int64("user_id", u.ID().Int64()).
		Str("role", u.Role().String()).
		Msg("user created")
	return c.JSON(http.StatusCreated, userResponse(u))
}

// EditUser handles PUT /api/v1/users/{id}. The password is not changed here.
func (s *Server) EditUser(c echo.Context, rawID servers.ID) error {
	id, err := toID(rawID)
	if err != nil {
		return err
	}

	var req servers.EditUserJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	role, _ := user.ParseRole(string(req.Role))
	cmd, err := commands.NewEditUserCommand(actorFrom(c), id, profileOf(req.Username, req.Email, req.Phone), role, req.License)
	if err != nil {
		return err
	}

	u, err := s.h.EditUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse(u))
}

// ChangeAccountState handles POST /api/v1/users/{id}/{approve|reject|archive|restore}.
// A rejected account no longer exists, so reject answers 204.
func (s *Server) ChangeAccountState(c echo.Context, rawID servers.ID, rawAction servers.ChangeAccountStateParamsAction) error {
	id, err := toID(rawID)
	if err != nil {
		return err
	}

	action, err := commands.ParseAccountAction(string(rawAction))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "unknown account action")
	}

	actor := actorFrom(c)
	cmd, err := commands.NewChangeAccountStateCommand(actor, id, action)
	if err != nil {
		return err
	}

	u, err := s.h.ChangeAccountState.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.log.Info().
		Int64("user_id", id.Int64()).
		Str("action", action.String()).
		Int64("by", actor.ID().Int64()).
		Msg("account state changed")

	if action == commands.RejectAccount {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, userResponse(u))
}

// PurgeUser handles POST /api/v1/users/{id}/purge. Without {"confirm": true} it only
// returns the account that would be removed.
func (s *Server) PurgeUser(c echo.Context, rawID servers.ID) error {
	id, err := toID(rawID)
	if err != nil {
		return err
	}

	var req servers.PurgeUserJSONRequestBody
	if err = c.Bind(&req); err != nil && !errors.Is(err, io.EOF) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	actor := actorFrom(c)
	cmd, err := commands.NewPurgeUserCommand(actor, id, req.Confirm)
	if err != nil {
		return err
	}

	result, err := s.h.PurgeUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	if result.Purged {
		s.log.Warn().
			Int64("user_id", id.Int64()).
			Int64("by", actor.ID().Int64()).
			Msg("account purged")
	}
	return c.JSON(http.StatusOK, servers.PurgeResult{Purged: result.Purged, User: userResponse(result.User)})
}
