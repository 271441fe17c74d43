package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/datadesk/internal/api/handlers"
	"github.com/linskybing/datadesk/internal/api/middleware"
	"github.com/linskybing/datadesk/internal/application"
	"github.com/linskybing/datadesk/internal/config"
	"github.com/linskybing/datadesk/internal/domain/audit"
	"github.com/linskybing/datadesk/internal/domain/user"
	"github.com/linskybing/datadesk/internal/repository"
	"github.com/linskybing/datadesk/internal/storage"
	"github.com/linskybing/datadesk/internal/testutils"
	"github.com/linskybing/datadesk/pkg/logger"
	"github.com/linskybing/datadesk/pkg/response"
	"github.com/linskybing/datadesk/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmail    = "admin@x.io"
	adminPassword = "admin-pw"
	templateCSV   = "id,Item,Answer,Definition\n1,Is there a citizen-initiated referendum?,\"[Yes,No]\",Add Long Definition 1\n2,Is there an explicit legal basis?,,Add Long Definition 2\n"
)

type testServer struct {
	router *gin.Engine
	repos  *repository.Repos
}

func setupServer(t *testing.T, ping func(context.Context) error) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	oldSecret, oldTTL := config.JwtSecret, config.TokenTTL
	config.JwtSecret, config.TokenTTL = "router-test-secret", time.Hour
	middleware.Init()

	// Audit writes run inline so assertions can see them.
	oldAudit := utils.LogAuditFromRequest
	utils.LogAuditFromRequest = func(c *gin.Context, entry utils.AuditEntry, repo repository.AuditRepo, log *logger.Logger) {
		actor, _ := utils.GetEmailFromContext(c)
		require.NoError(t, utils.LogAudit(c.Request.Context(), actor, c.ClientIP(), c.GetHeader("User-Agent"), entry, repo, log))
	}

	t.Cleanup(func() {
		config.JwtSecret, config.TokenTTL = oldSecret, oldTTL
		middleware.Init()
		utils.LogAuditFromRequest = oldAudit
	})

	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))
	svc := application.New(repos, application.Infra{Store: storage.NewMemoryStore(), Log: logger.Nop()})

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repos.User.CreateUser(context.Background(), &user.User{
		Email: adminEmail, PasswordHash: string(hash), Role: user.RoleAdmin, AssignedJobs: []string{},
	}))

	r := gin.New()
	RegisterRoutes(r, handlers.New(svc, repos, ping, logger.Nop()))
	return &testServer{router: r, repos: repos}
}

func (s *testServer) do(t *testing.T, req *http.Request, token string) *httptest.ResponseRecorder {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	form := url.Values{"email": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := s.do(t, req, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out response.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out.Token
}

func uploadRequest(t *testing.T, path string, fields map[string]string, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("file", "upload.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, method, path string, v any) *http.Request {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	s := setupServer(t, func(context.Context) error { return nil })
	w := s.do(t, httptest.NewRequest(http.MethodGet, "/health", nil), "")
	assert.Equal(t, http.StatusOK, w.Code)

	down := setupServer(t, func(context.Context) error { return errors.New("db down") })
	w = down.do(t, httptest.NewRequest(http.MethodGet, "/health", nil), "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLogin(t *testing.T) {
	s := setupServer(t, nil)

	form := url.Values{"email": {"ADMIN@x.io"}, "password": {adminPassword}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := s.do(t, req, "")
	require.Equal(t, http.StatusOK, w.Code)

	out := decode[response.TokenResponse](t, w)
	assert.True(t, out.IsAdmin)
	assert.Equal(t, adminEmail, out.Email)
	assert.Contains(t, w.Header().Get("Set-Cookie"), middleware.TokenCookie+"=")

	form.Set("password", "wrong")
	req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = s.do(t, req, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=not-an-email"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = s.do(t, req, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRoutes(t *testing.T) {
	s := setupServer(t, nil)

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/me/jobs", nil), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	adminToken := s.login(t, adminEmail, adminPassword)
	w = s.do(t, uploadRequest(t, "/admin/users/import", nil,
		"user_email,password,assigned_jobs,role\ncoder@x.io,coder-pw,J1,coder\n"), adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	coderToken := s.login(t, "coder@x.io", "coder-pw")
	w = s.do(t, httptest.NewRequest(http.MethodGet, "/admin/users", nil), coderToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/auth/status", nil), coderToken)
	require.Equal(t, http.StatusOK, w.Code)
	status := decode[response.AuthStatusResponse](t, w)
	assert.Equal(t, "coder@x.io", status.Email)
	assert.Equal(t, "coder", status.Role)
}

func TestResponseWorkflow(t *testing.T) {
	s := setupServer(t, nil)
	adminToken := s.login(t, adminEmail, adminPassword)

	// Admin uploads the template and assigns a coder.
	w := s.do(t, uploadRequest(t, "/admin/templates", map[string]string{
		"job_id": "J1", "title": "Referendums 2024", "description": "Data collection for Referendums",
	}, templateCSV), adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, uploadRequest(t, "/admin/users/import", nil,
		"user_email,password,assigned_jobs,role\ncoder@x.io,coder-pw,\"J1,J9\",coder\nbroken,pw,J1,coder\n"), adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	imported := decode[user.ImportResult](t, w)
	assert.Equal(t, 1, imported.Created)
	assert.Equal(t, 1, imported.Errors)

	coderToken := s.login(t, "coder@x.io", "coder-pw")

	// J9 has no template and is left out of the job list.
	w = s.do(t, httptest.NewRequest(http.MethodGet, "/me/jobs", nil), coderToken)
	require.Equal(t, http.StatusOK, w.Code)
	jobs := decode[[]application.AssignedJob](t, w)
	require.Len(t, jobs, 1)
	assert.Equal(t, "J1", jobs[0].JobID)
	assert.Equal(t, "new", string(jobs[0].Status))

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/jobs/J1/workspace", nil), coderToken)
	require.Equal(t, http.StatusOK, w.Code)
	ws := decode[application.Workspace](t, w)
	require.Len(t, ws.Grid, 2)
	assert.Equal(t, 0, ws.Version)

	grid := ws.Grid
	grid[0][2] = "Yes"
	grid[0][3] = "constitution art. 5"

	w = s.do(t, jsonRequest(t, http.MethodPut, "/jobs/J1/response", map[string]any{"grid": grid, "version": 0}), coderToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	saved := decode[map[string]any](t, w)
	assert.Equal(t, "draft", saved["status"])
	assert.EqualValues(t, 1, saved["version"])

	// A second tab still holding version 0 is rejected.
	w = s.do(t, jsonRequest(t, http.MethodPut, "/jobs/J1/response", map[string]any{"grid": grid, "version": 0}), coderToken)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, jsonRequest(t, http.MethodPut, "/jobs/J1/response", map[string]any{"grid": grid[:1], "version": 1}), coderToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, jsonRequest(t, http.MethodPost, "/jobs/J1/response/submit", map[string]any{"grid": grid, "version": 1}), coderToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, jsonRequest(t, http.MethodPost, "/jobs/J1/response/submit", map[string]any{"grid": grid, "version": 1, "confirm": true}), coderToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, jsonRequest(t, http.MethodPut, "/jobs/J1/response", map[string]any{"grid": grid, "version": 2}), coderToken)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/jobs/J1/workspace", nil), coderToken)
	require.Equal(t, http.StatusOK, w.Code)
	ws = decode[application.Workspace](t, w)
	assert.True(t, ws.ReadOnly)
	assert.Equal(t, "Yes", ws.Grid[0][2])

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/jobs/J2/workspace", nil), coderToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The template cannot be replaced once answered.
	w = s.do(t, uploadRequest(t, "/admin/templates", map[string]string{"job_id": "J1", "title": "v2"}, templateCSV), adminToken)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/admin/responses?status=submitted", nil), adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	listed := decode[[]map[string]any](t, w)
	require.Len(t, listed, 1)
	assert.Equal(t, "coder@x.io_J1", listed[0]["response_id"])

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/admin/responses/coder@x.io_J1", nil), adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/admin/responses/export", nil), adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "constitution art. 5")

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/admin/templates/J1/source", nil), adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, templateCSV, w.Body.String())

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/admin/audit/logs?action="+audit.ActionSubmit, nil), adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	logs := decode[[]audit.AuditLog](t, w)
	require.Len(t, logs, 1)
	assert.Equal(t, "coder@x.io", logs[0].ActorEmail)
	assert.Equal(t, "coder@x.io_J1", logs[0].ResourceID)
}
