package router

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/polkiloo/customersystem/internal/app"
	"github.com/polkiloo/customersystem/internal/config"
	domainErrors "github.com/polkiloo/customersystem/internal/domain/errors"
	"github.com/polkiloo/customersystem/internal/domain/model"
	"github.com/polkiloo/customersystem/internal/metrics"
	"github.com/polkiloo/customersystem/internal/pkg/auth"
	"github.com/polkiloo/customersystem/internal/server/http/dto"
	"github.com/polkiloo/customersystem/internal/server/http/handlers"
	"github.com/polkiloo/customersystem/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/customersystem/internal/test"
	"github.com/polkiloo/customersystem/internal/usecase"
)

func newTestEngine(t *testing.T, facade handlers.Facade, cfg *config.Config) *gin.Engine {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{}
	}
	engine := Setup(Params{
		Facade:  facade,
		Logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
		Metrics: metrics.New(),
		Config:  cfg,
	})
	gin.SetMode(gin.TestMode)
	return engine
}

func serve(engine *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupRoutes(t *testing.T) {
	engine := newTestEngine(t, testhelpers.CustomerSystemFacadeStub{}, nil)
	customer := []byte(`{"name":"n","email":"e@x.y","contract_start_date":"2024-01-01","contract_expire_date":"2024-12-31"}`)

	tests := []struct {
		method string
		target string
		body   []byte
		status int
	}{
		{method: http.MethodGet, target: "/users", status: http.StatusOK},
		{method: http.MethodGet, target: "/users/alice", status: http.StatusOK},
		{method: http.MethodPost, target: "/users/register", body: []byte(`{"name":"a","email":"a@b.c","password":"p"}`), status: http.StatusCreated},
		{method: http.MethodPost, target: "/users/login", body: []byte(`{"email":"a@b.c","password":"p"}`), status: http.StatusOK},
		{method: http.MethodGet, target: "/customers", status: http.StatusOK},
		{method: http.MethodPost, target: "/customers", body: customer, status: http.StatusCreated},
		{method: http.MethodPut, target: "/customers/1", body: customer, status: http.StatusOK},
		{method: http.MethodDelete, target: "/customers/1", status: http.StatusOK},
		{method: http.MethodGet, target: "/healthz", status: http.StatusOK},
		{method: http.MethodGet, target: "/metrics", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			resp := serve(engine, tt.method, tt.target, tt.body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d: %s", tt.status, resp.Code, resp.Body.String())
			}
			if resp.Header().Get(middleware.RequestIDHeader) == "" {
				t.Fatalf("expected request id header")
			}
		})
	}
}

func TestLoginScenario(t *testing.T) {
	facade := testhelpers.CustomerSystemFacadeStub{UserFacadeStub: testhelpers.UserFacadeStub{
		LoginFn: func(_ context.Context, email, password string) (*model.User, error) {
			if email == "alice@example.com" && password == "secret" {
				return &model.User{ID: 1, Name: "alice", Email: email, PasswordHash: "$2a$10$hash"}, nil
			}
			return nil, domainErrors.ErrInvalidCredentials
		},
	}}
	engine := newTestEngine(t, facade, nil)

	resp := serve(engine, http.MethodPost, "/users/login", []byte(`{"email":"alice@example.com","password":"secret"}`))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var ok dto.LoginResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &ok); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if !ok.Success || ok.User.Name != "alice" || strings.Contains(resp.Body.String(), "$2a$") {
		t.Fatalf("unexpected login response %s", resp.Body.String())
	}

	resp = serve(engine, http.MethodPost, "/users/login", []byte(`{"email":"alice@example.com","password":"wrong"}`))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
	if got := strings.TrimSpace(resp.Body.String()); got != `{"success":false,"message":"Invalid email or password"}` {
		t.Fatalf("unexpected 401 body %s", got)
	}
}

func TestDeleteAbsentCustomer(t *testing.T) {
	facade := testhelpers.CustomerSystemFacadeStub{CustomerFacadeStub: testhelpers.CustomerFacadeStub{
		DeleteFn: func(context.Context, int64) (model.MutationResult, error) {
			return model.MutationResult{}, nil
		},
	}}
	engine := newTestEngine(t, facade, nil)

	resp := serve(engine, http.MethodDelete, "/customers/999999", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	engine := newTestEngine(t, testhelpers.CustomerSystemFacadeStub{}, nil)

	resp := serve(engine, http.MethodGet, "/orders", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
	if got := strings.TrimSpace(resp.Body.String()); got != `{"success":false,"message":"route not found"}` {
		t.Fatalf("unexpected 404 body %s", got)
	}
}

func TestPanicIsRecovered(t *testing.T) {
	facade := testhelpers.CustomerSystemFacadeStub{UserFacadeStub: testhelpers.UserFacadeStub{
		UsersFn: func(context.Context) ([]model.User, error) {
			var m map[string]int
			m["boom"]++
			return nil, nil
		},
	}}
	engine := newTestEngine(t, facade, nil)

	resp := serve(engine, http.MethodGet, "/users", nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode failure: %v", err)
	}
	if body.Success || body.Message != "Something went wrong!" || body.Error == "" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestHealthUnavailable(t *testing.T) {
	facade := testhelpers.CustomerSystemFacadeStub{HealthFacadeStub: testhelpers.HealthFacadeStub{PingErr: context.DeadlineExceeded}}
	engine := newTestEngine(t, facade, nil)

	resp := serve(engine, http.MethodGet, "/healthz", nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", resp.Code)
	}
}

func TestMetricsExposeRequests(t *testing.T) {
	engine := newTestEngine(t, testhelpers.CustomerSystemFacadeStub{}, nil)
	serve(engine, http.MethodGet, "/customers", nil)

	resp := serve(engine, http.MethodGet, "/metrics", nil)
	if !strings.Contains(resp.Body.String(), `customersystem_http_requests_total{method="GET",route="/customers",status="200"} 1`) {
		t.Fatalf("expected customers request to be counted:\n%s", resp.Body.String())
	}
}

func TestRateLimitEnabled(t *testing.T) {
	cfg := &config.Config{RateLimit: config.RateLimitConfig{RPS: 0.001, Burst: 1}}
	engine := newTestEngine(t, testhelpers.CustomerSystemFacadeStub{}, cfg)

	if resp := serve(engine, http.MethodGet, "/customers", nil); resp.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", resp.Code)
	}
	resp := serve(engine, http.MethodGet, "/customers", nil)
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", resp.Code)
	}
}

func TestGzipRequestBody(t *testing.T) {
	var gotName string
	facade := testhelpers.CustomerSystemFacadeStub{UserFacadeStub: testhelpers.UserFacadeStub{
		RegisterFn: func(_ context.Context, name, _, _ string) (model.MutationResult, error) {
			gotName = name
			return model.MutationResult{InsertID: 2, RowsAffected: 1}, nil
		},
	}}
	engine := newTestEngine(t, facade, nil)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte(`{"name":"zipped","email":"z@x.y","password":"p"}`))
	_ = gz.Close()

	req := httptest.NewRequest(http.MethodPost, "/users/register", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if gotName != "zipped" {
		t.Fatalf("unexpected name %q", gotName)
	}
	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip encoded response")
	}
}

func TestNewLimiter(t *testing.T) {
	if newLimiter(config.RateLimitConfig{}) != nil {
		t.Fatalf("expected limiter to be disabled")
	}
	if l := newLimiter(config.RateLimitConfig{RPS: 5, Burst: 3}); l == nil || l.Burst() != 3 {
		t.Fatalf("unexpected limiter %+v", l)
	}
}

var _ handlers.Facade = (*testhelpers.CustomerSystemFacadeStub)(nil)

func TestRegisterAndLoginWithLongPassword(t *testing.T) {
	users := usecase.NewUserUseCase(testhelpers.NewUserRepositoryStub(), auth.NewBcryptHasher(bcrypt.MinCost))
	customers := usecase.NewCustomerUseCase(testhelpers.NewCustomerRepositoryStub())
	facade := app.NewCustomerSystemFacade(users, customers, testhelpers.HealthCheckerStub{})
	engine := newTestEngine(t, facade, nil)

	password := strings.Repeat("k", 80)
	register, _ := json.Marshal(map[string]string{"name": "grace", "email": "grace@example.com", "password": password})
	resp := serve(engine, http.MethodPost, "/users/register", register)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = serve(engine, http.MethodGet, "/users", nil)
	if !strings.Contains(resp.Body.String(), `"email":"grace@example.com"`) {
		t.Fatalf("expected registered user in listing: %s", resp.Body.String())
	}

	login, _ := json.Marshal(map[string]string{"email": "grace@example.com", "password": password})
	resp = serve(engine, http.MethodPost, "/users/login", login)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
}
