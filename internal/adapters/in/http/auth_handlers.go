package http

import (
	"net/http"

	"proteseflow/internal/core/application/usecases/commands"
	"proteseflow/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Register handles POST /api/v1/auth/register. The account waits for a manager's
// approval before it can create orders.
func (s *Server) Register(c echo.Context) error {
	var req servers.RegisterJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewRegisterDentistCommand(
		profileOf(req.Username, req.Email, req.Phone),
		req.License,
		req.Password,
	)
	if err != nil {
		return err
	}

	u, err := s.h.RegisterDentist.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.log.Info().Int64("user_id", u.ID().Int64()).Msg("dentist registered")
	return c.JSON(http.StatusCreated, userResponse(u))
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(c echo.Context) error {
	var req servers.LoginJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewAuthenticateCommand(req.Identifier, req.Password)
	if err != nil {
		return err
	}

	u, err := s.h.Authenticate.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	issued, err := s.tokens.Issue(u.ID(), u.Role().String())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, servers.Session{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		User:      userResponse(u),
	})
}

// Logout handles POST /api/v1/auth/logout by revoking the presented token.
func (s *Server) Logout(c echo.Context) error {
	session, ok := sessionFrom(c)
	if !ok {
		return ErrUnauthorized
	}

	if err := s.revoked.Revoke(c.Request().Context(), session.ID, session.ExpiresAt); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetMe handles GET /api/v1/me.
func (s *Server) GetMe(c echo.Context) error {
	actor := actorFrom(c)
	if actor == nil {
		return ErrUnauthorized
	}
	return c.JSON(http.StatusOK, userResponse(actor))
}

// UpdateMe handles PUT /api/v1/me. Only username, email and phone can be changed here.
func (s *Server) UpdateMe(c echo.Context) error {
	var req servers.UpdateMeJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateProfileCommand(actorFrom(c), profileOf(req.Username, req.Email, req.Phone))
	if err != nil {
		return err
	}

	u, err := s.h.UpdateProfile.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse(u))
}

// ChangePassword handles PUT /api/v1/me/password.
func (s *Server) ChangePassword(c echo.Context) error {
	var req servers.ChangePasswordJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewChangePasswordCommand(actorFrom(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		return err
	}

	if err = s.h.ChangePassword.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
