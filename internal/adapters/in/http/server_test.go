package http_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apihttp "proteseflow/internal/adapters/in/http"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s testServer) do(t *testing.T, method, target, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())

	rec = s.do(t, http.MethodGet, "/openapi.yaml", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "openapi: 3.0.3")
}

func TestAccountFlow(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/auth/register",
		`{"username":"dr.ana","email":"Ana@Clinica.com","license":"CRO 1","password":"s3nh4-segura"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	registered := decode[servers.User](t, rec)
	assert.Equal(t, "dr.ana", registered.Username)
	assert.Equal(t, servers.UserRoleDENTISTA, registered.Role)
	assert.False(t, registered.Confirmed)

	t.Run("username is unique ignoring case", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/auth/register", `{"username":"DR.ANA","password":"outra-senha"}`, "")
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, decode[servers.Error](t, rec).Fields, "username")
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/auth/login", `{"identifier":"dr.ana","password":"errada"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	rec = s.do(t, http.MethodPost, "/api/v1/auth/login", `{"identifier":"ana@clinica.com","password":"s3nh4-segura"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	session := decode[servers.Session](t, rec)
	require.NotEmpty(t, session.Token)
	assert.Equal(t, registered.Id, session.User.Id)

	rec = s.do(t, http.MethodGet, "/api/v1/me", "", session.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dr.ana", decode[servers.User](t, rec).Username)

	rec = s.do(t, http.MethodPut, "/api/v1/me", `{"username":"dra.ana","email":"ana@clinica.com","phone":"11 9999"}`, session.Token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "11 9999", decode[servers.User](t, rec).Phone)

	t.Run("password change needs the current password", func(t *testing.T) {
		rec := s.do(t, http.MethodPut, "/api/v1/me/password",
			`{"current_password":"errada","new_password":"nova-senha-1"}`, session.Token)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, decode[servers.Error](t, rec).Fields, "current_password")
	})

	rec = s.do(t, http.MethodPut, "/api/v1/me/password",
		`{"current_password":"s3nh4-segura","new_password":"nova-senha-1"}`, session.Token)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/api/v1/auth/login", `{"identifier":"DRA.ANA","password":"nova-senha-1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/auth/logout", "", session.Token)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/me", "", session.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorMiddleware(t *testing.T) {
	s := newTestServer(t)
	active := s.users.put(t, user.Snapshot{ID: 7, Username: "gestor", PasswordHash: "h", Role: user.Manager, Confirmed: true, State: user.Active})
	archived := s.users.put(t, user.Snapshot{ID: 8, Username: "antigo", PasswordHash: "h", Role: user.Dentist, Confirmed: true, State: user.Archived})

	issue := func(u *user.User) string {
		issued, err := s.tokens.Issue(u.ID(), u.Role().String())
		require.NoError(t, err)
		return issued.Token
	}

	testCases := []struct {
		name   string
		header string
		code   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not a bearer token", "Basic Z2VzdG9yOmg=", http.StatusUnauthorized},
		{"malformed token", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"archived account", "Bearer " + issue(archived), http.StatusUnauthorized},
		{"unknown account", "Bearer " + func() string {
			issued, err := s.tokens.Issue(99, "GESTOR")
			require.NoError(t, err)
			return issued.Token
		}(), http.StatusUnauthorized},
		{"active account", "Bearer " + issue(active), http.StatusOK},
		{"scheme is case-insensitive", "bearer " + issue(active), http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			rec := httptest.NewRecorder()
			s.echo.ServeHTTP(rec, req)

			assert.Equal(t, tc.code, rec.Code)
			if tc.code == http.StatusUnauthorized {
				assert.Equal(t, http.StatusUnauthorized, decode[servers.Error](t, rec).Code)
			}
		})
	}
}

func TestRequestValidator(t *testing.T) {
	s := newTestServer(t)

	t.Run("body not matching the schema", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/auth/login", `{"identifier":5,"password":"x"}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing required property", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/auth/register", `{"password":"s3nh4-segura"}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("path id must be an integer", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/orders/abc", "", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[servers.Error](t, rec).Message, "id")
	})

	t.Run("undocumented path reaches the router", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/unknown", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("valid request reaches the handler", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/orders/12", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCreateOrder_RejectsInvalidForm(t *testing.T) {
	s := newTestServer(t)
	dentist := s.users.put(t, user.Snapshot{ID: 4, Username: "dr.ana", PasswordHash: "h", Role: user.Dentist, Confirmed: true, State: user.Active})
	issued, err := s.tokens.Issue(dentist.ID(), dentist.Role().String())
	require.NoError(t, err)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("patient_name", "Maria Silva"))
	require.NoError(t, form.WriteField("patient_sex", "X"))
	require.NoError(t, form.WriteField("service_type", "Coroa"))
	require.NoError(t, form.WriteField("tooth_elements", "11, 12"))
	require.NoError(t, form.WriteField("dentist_id", "abc"))
	part, err := form.CreateFormFile("files", "arcada.stl")
	require.NoError(t, err)
	_, err = part.Write([]byte("solid arcada"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", &body)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+issued.Token)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	fields := decode[servers.Error](t, rec).Fields
	assert.Contains(t, fields, "patient_sex")
	assert.Contains(t, fields, "dentist_id")
}

func TestRegisterRoutes_MountsEveryDocumentedOperation(t *testing.T) {
	s := newTestServer(t)
	doc, err := apihttp.LoadOpenAPI(t.Context())
	require.NoError(t, err)

	mounted := make(map[string]bool)
	for _, r := range s.echo.Routes() {
		mounted[r.Method+" "+r.Path] = true
	}

	toEcho := strings.NewReplacer("{", ":", "}", "")
	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			assert.True(t, mounted[method+" "+toEcho.Replace(path)], "%s %s is not mounted", method, path)
		}
	}
}

func TestRegisterRoutes_OnlyAuthIsPublic(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/auth/login", `{"identifier":"ninguem","password":"x"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid credentials", decode[servers.Error](t, rec).Message)

	for _, target := range []string{"/api/v1/me", "/api/v1/dashboard", "/api/v1/orders", "/api/v1/users"} {
		rec := s.do(t, http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.Equal(t, "Unauthorized", decode[servers.Error](t, rec).Message, target)
	}
}
