package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/insightfulai/platform/internal/api/http/handlers"
	"github.com/insightfulai/platform/internal/auth"
	"github.com/insightfulai/platform/internal/config"
	"github.com/insightfulai/platform/internal/domain"
	"github.com/insightfulai/platform/internal/jobs"
	"github.com/insightfulai/platform/internal/observability"
	"github.com/insightfulai/platform/internal/persistence"
	"github.com/insightfulai/platform/internal/service"
)

const (
	testSecret   = "e2e-test-secret"
	testEmail    = "u@example.com"
	testPassword = "correct"
)

type fakeUserRepository struct {
	byEmail map[string]*domain.User
}

func (f *fakeUserRepository) Create(context.Context, *domain.User) error {
	return errors.New("not implemented")
}

func (f *fakeUserRepository) Update(context.Context, *domain.User) error {
	return errors.New("not implemented")
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}

func newTestApp(t *testing.T) (*fiber.App, *fakeUserRepository) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	redisClient := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })

	hash, err := auth.HashPassword(testPassword, bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepository{byEmail: map[string]*domain.User{
		testEmail: {
			ID:           "11111111-1111-1111-1111-111111111111",
			Email:        testEmail,
			FullName:     "Test User",
			PasswordHash: hash,
			Active:       true,
		},
	}}

	cfg := &config.Config{
		App:  config.AppConfig{Name: "insightfulai-api", Version: "test"},
		Auth: config.AuthConfig{JWTSecret: testSecret, AccessTokenTTLMinutes: 60, BcryptCost: bcrypt.MinCost},
		CORS: config.CORSConfig{Origins: []string{"http://localhost:3000"}},
	}

	logger := zap.NewNop()
	metrics := observability.NewMetrics()

	authService := service.NewAuthService(cfg.Auth, repo, logger)
	authMiddleware := auth.NewMiddleware(authService.TokenManager(), repo)

	jobStore := jobs.NewStore(redisClient)
	require.NoError(t, jobStore.SeedSample(context.Background()))

	app := fiber.New()
	RegisterMiddlewares(app, cfg, logger, metrics)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, &persistence.Postgres{}, &persistence.Redis{Client: redisClient}),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(),
		Data:           handlers.NewDataHandler(jobStore),
		Analysis:       handlers.NewAnalysisHandler(),
		Competitors:    handlers.NewCompetitorsHandler(),
		Reports:        handlers.NewReportsHandler(),
		AuthMiddleware: authMiddleware,
		Metrics:        metrics,
	})

	return app, repo
}

func loginRequest(username, password string) *http.Request {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}

func doLogin(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp, err := app.Test(loginRequest(testEmail, testPassword), 10000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.AccessToken)
	require.Equal(t, "bearer", body.TokenType)
	return body.AccessToken
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func TestLogin_Success(t *testing.T) {
	app, _ := newTestApp(t)
	token := doLogin(t, app)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(loginRequest(testEmail, "not-the-password"), 10000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))

	body := readBody(t, resp)
	assert.NotContains(t, body, testEmail)
	assert.NotContains(t, strings.ToLower(body), "password hash")
}

// The 401 body must not reveal whether the username exists: wrong password,
// unknown account and inactive account all produce byte-identical responses.
func TestLogin_UniformFailureBody(t *testing.T) {
	app, repo := newTestApp(t)

	respWrong, err := app.Test(loginRequest(testEmail, "wrong"), 10000)
	require.NoError(t, err)
	respUnknown, err := app.Test(loginRequest("nobody@example.com", "wrong"), 10000)
	require.NoError(t, err)

	repo.byEmail[testEmail].Active = false
	respInactive, err := app.Test(loginRequest(testEmail, testPassword), 10000)
	require.NoError(t, err)
	repo.byEmail[testEmail].Active = true

	bodyWrong := readBody(t, respWrong)
	bodyUnknown := readBody(t, respUnknown)
	bodyInactive := readBody(t, respInactive)

	assert.Equal(t, http.StatusUnauthorized, respWrong.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respInactive.StatusCode)
	assert.Equal(t, bodyWrong, bodyUnknown)
	assert.Equal(t, bodyWrong, bodyInactive)
}

func TestLogin_MissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(loginRequest("", ""), 10000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProtected_NoAuthorizationHeader(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))
}

func TestProtected_MalformedHeader(t *testing.T) {
	app, _ := newTestApp(t)

	for _, header := range []string{"Basic abc", "Bearer", "token-without-scheme"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, header)
		resp, err := app.Test(req, 10000)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestProtected_ExpiredToken(t *testing.T) {
	app, _ := newTestApp(t)

	past := time.Now().Add(-2 * time.Hour)
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   testEmail,
		IssuedAt:  jwt.NewNumericDate(past),
		ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+expired)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))
}

func TestProtected_InactiveUserToken(t *testing.T) {
	app, repo := newTestApp(t)

	token := doLogin(t, app)
	repo.byEmail[testEmail].Active = false

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUsersMe(t *testing.T) {
	app, _ := newTestApp(t)
	token := doLogin(t, app)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, testEmail)
	assert.NotContains(t, strings.ToLower(body), "password")
}

func TestLogout(t *testing.T) {
	app, _ := newTestApp(t)
	token := doLogin(t, app)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Successfully logged out")

	// Stateless tokens survive logout; the guard still accepts it.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogout_RequiresToken(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDataJobs_SampleRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)
	token := doLogin(t, app)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/data/jobs", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "sample-job-1")

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/data/jobs/sample-job-1", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req, 10000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/data/jobs", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req, 10000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, readBody(t, resp), "sample-job-1")
}

func TestDataWebScrape_Validation(t *testing.T) {
	app, _ := newTestApp(t)
	token := doLogin(t, app)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/data/web-scrape", strings.NewReader(`{}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/data/web-scrape", strings.NewReader(`{"url":"https://example.com"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req, 10000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "https://example.com")
}

func TestAnalysisSentiment_RequiresText(t *testing.T) {
	app, _ := newTestApp(t)
	token := doLogin(t, app)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis/sentiment", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/analysis/sentiment?text=great+product", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req, 10000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "sentiment")
}

func TestCompetitors_CreateEchoesInput(t *testing.T) {
	app, _ := newTestApp(t)
	token := doLogin(t, app)

	payload := `{"name":"Competitor Z","website":"https://z.example.com","industry":"SaaS"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/competitors/", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "Competitor Z")
	assert.Contains(t, body, "https://z.example.com")
}

func TestHealthReady_DegradesWithoutPostgres(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "postgres")
}

func TestDebugMetrics_CountsRequests(t *testing.T) {
	app, _ := newTestApp(t)
	doLogin(t, app)

	req := httptest.NewRequest(http.MethodGet, "/debug/metrics", nil)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "/api/v1/auth/login")
}

func TestHealthLive_Unprotected(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
