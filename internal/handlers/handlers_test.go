package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobbridge_backend/internal/auth"
	"jobbridge_backend/internal/config"
	"jobbridge_backend/internal/logger"
	"jobbridge_backend/internal/models"
	"jobbridge_backend/internal/services"
	"jobbridge_backend/internal/services/dto"
	"jobbridge_backend/internal/validator"
	"jobbridge_backend/pkg/apperrors"
	"jobbridge_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")

	cfg := &config.Config{}
	cfg.JWT.Secret = "handlers-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

// injectNilDB satisfies GetDB on routes whose fake services never touch the
// database.
func injectNilDB() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(contextkeys.DBContextKey), (*gorm.DB)(nil))
		c.Next()
	}
}

type fakeAuthService struct{}

func (f *fakeAuthService) Register(_ *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Email == "taken@example.com" {
		return nil, apperrors.ErrEmailAlreadyExists
	}
	return &dto.AuthResponse{
		Token: "signed-token",
		User:  dto.UserDTO{ID: "user-1", Email: req.Email, UserType: req.UserType, IsActive: true},
	}, nil
}

func (f *fakeAuthService) Login(_ *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Password != "super_password123" {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &dto.AuthResponse{
		Token: "signed-token",
		User:  dto.UserDTO{ID: "user-1", Email: req.Email, UserType: models.UserRoleJobSeeker, IsActive: true},
	}, nil
}

func (f *fakeAuthService) Me(_ *gorm.DB, userID string) (*models.User, error) {
	return &models.User{Email: "me@example.com", UserType: models.UserRoleJobSeeker, IsActive: true}, nil
}

type fakeSubscriptionService struct{}

func (f *fakeSubscriptionService) Create(_ *gorm.DB, _ string, _ models.UserRole, _ *dto.CreateSubscriptionRequest) (*services.SubscriptionCreated, error) {
	return &services.SubscriptionCreated{
		Subscription: &models.Subscription{Status: models.SubscriptionStatusPending},
		Payment:      &models.Payment{Status: models.PaymentStatusPending},
	}, nil
}

func (f *fakeSubscriptionService) ListByUser(_ *gorm.DB, _ string) ([]models.Subscription, error) {
	return []models.Subscription{}, nil
}

func (f *fakeSubscriptionService) ListPayments(_ *gorm.DB, _ *dto.PaymentsQuery) ([]models.Payment, error) {
	return []models.Payment{}, nil
}

func (f *fakeSubscriptionService) ReviewPayment(_ *gorm.DB, _ string, _ string, _ *dto.ReviewPaymentRequest) (*models.Payment, error) {
	return &models.Payment{Status: models.PaymentStatusApproved}, nil
}

// fakeProfileService embeds the interface so only the public directory needs
// an implementation; anything else panics loudly.
type fakeProfileService struct {
	services.ProfileService
}

func (f *fakeProfileService) ListPublicProfiles(_ *gorm.DB, query *dto.PublicProfilesQuery) (*services.PublicProfilesResponse, error) {
	resp := &services.PublicProfilesResponse{Page: 1, Limit: services.DefaultPublicPageSize}
	if query.Type != "companies" {
		resp.JobSeekers = []models.JobSeekerProfile{{FirstName: "Ada", LastName: "Obi"}}
	}
	if query.Type != "job-seekers" {
		resp.Companies = []models.CompanyProfile{{CompanyName: "Acme"}}
	}
	return resp, nil
}

func newTestRouter() *gin.Engine {
	router := gin.New()
	router.Use(injectNilDB())

	base := NewBaseHandler(validator.New())
	api := router.Group("/api/v1")

	NewAuthHandler(base, &fakeAuthService{}).RegisterRoutes(api)
	NewSubscriptionHandler(base, &fakeSubscriptionService{}).RegisterRoutes(api)
	NewProfileHandler(base, &fakeProfileService{}).RegisterRoutes(api)

	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegister_Created(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "new@example.com",
		"password": "super_password123",
		"userType": "JOB_SEEKER",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "new@example.com",
		"password": "super_password123",
		"userType": "ADMIN",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "userType")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "taken@example.com",
		"password": "super_password123",
		"userType": "COMPANY",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "ALREADY_EXISTS")
}

func TestLogin_WrongPassword(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "user@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_RequiresToken(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/auth/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_WithToken(t *testing.T) {
	router := newTestRouter()

	token, err := auth.GenerateToken("user-1", string(models.UserRoleJobSeeker))
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "me@example.com")
}

func TestAdminPayments_RoleGate(t *testing.T) {
	router := newTestRouter()

	// Anonymous: 401 from AuthMiddleware.
	rec := doRequest(t, router, http.MethodGet, "/api/v1/admin/payments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Authenticated but not an admin: 403 from RoleMiddleware.
	companyToken, err := auth.GenerateToken("company-1", string(models.UserRoleCompany))
	require.NoError(t, err)
	rec = doRequest(t, router, http.MethodGet, "/api/v1/admin/payments", companyToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Admin passes both gates.
	adminToken, err := auth.GenerateToken("admin-1", string(models.UserRoleAdmin))
	require.NoError(t, err)
	rec = doRequest(t, router, http.MethodGet, "/api/v1/admin/payments", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubscriptionCreate_RequiresAuth(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/subscriptions", "", map[string]interface{}{
		"type":   "DIRECT",
		"amount": 10,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubscriptionCreate_ReturnsBothRecords(t *testing.T) {
	router := newTestRouter()

	token, err := auth.GenerateToken("user-1", string(models.UserRoleCompany))
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/subscriptions", token, map[string]interface{}{
		"type":   "DIRECT",
		"amount": 10,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"subscription"`)
	assert.Contains(t, rec.Body.String(), `"payment"`)
}

func TestPublicProfiles_TypeValues(t *testing.T) {
	router := newTestRouter()

	// The directory's own query values pass validation.
	rec := doRequest(t, router, http.MethodGet, "/api/v1/profiles/public?type=job-seekers&location=Lagos", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jobSeekers")
	assert.NotContains(t, rec.Body.String(), "companies")

	// No type: both collections in one response.
	rec = doRequest(t, router, http.MethodGet, "/api/v1/profiles/public", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jobSeekers")
	assert.Contains(t, rec.Body.String(), "companies")

	rec = doRequest(t, router, http.MethodGet, "/api/v1/profiles/public?type=PEOPLE", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubscriptionCreate_ValidationBeforeService(t *testing.T) {
	router := newTestRouter()

	token, err := auth.GenerateToken("user-1", string(models.UserRoleJobSeeker))
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/subscriptions", token, map[string]interface{}{
		"type":   "FREE",
		"amount": 10,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "type")
}
