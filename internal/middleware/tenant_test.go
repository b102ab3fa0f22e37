package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bizledger/bizledger_app/internal/apperrors"
	"github.com/bizledger/bizledger_app/internal/core/domain"
	"github.com/bizledger/bizledger_app/internal/middleware"
	"github.com/bizledger/bizledger_app/internal/tenantctx"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TenantResolver ---
type MockTenantResolver struct {
	mock.Mock
}

func (m *MockTenantResolver) ResolveTenantForUser(ctx context.Context, userID string) (*domain.Tenant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

type TenantMiddlewareTestSuite struct {
	suite.Suite
	resolver *MockTenantResolver
	router   *gin.Engine

	// set by the downstream handler when it runs
	handlerRan    bool
	seenTenantID  string
	seenTenantOK  bool
	authUserID    string
	skipPrincipal bool
}

func (s *TenantMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.resolver = new(MockTenantResolver)
	s.handlerRan = false
	s.seenTenantID = ""
	s.seenTenantOK = false
	s.authUserID = "user-123"
	s.skipPrincipal = false

	s.router = gin.New()
	// Simulates the auth middleware installing the authenticated principal.
	s.router.Use(func(c *gin.Context) {
		if !s.skipPrincipal {
			c.Set("userID", s.authUserID)
		}
		c.Next()
	})
	s.router.Use(middleware.TenantResolutionMiddleware(s.resolver))
	s.router.GET("/probe", func(c *gin.Context) {
		s.handlerRan = true
		s.seenTenantID, s.seenTenantOK = tenantctx.TenantID(c.Request.Context())
		c.Status(http.StatusOK)
	})
}

func (s *TenantMiddlewareTestSuite) perform() *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
	s.router.ServeHTTP(w, req)
	return w
}

func (s *TenantMiddlewareTestSuite) TestInstallsTenantContextOnSuccess() {
	tenant := &domain.Tenant{TenantID: "a1b2c3d4e5f6a7b8a1b2c3d4e5f6a7b8", IsActive: true}
	s.resolver.On("ResolveTenantForUser", mock.Anything, "user-123").Return(tenant, nil).Once()

	w := s.perform()

	s.Equal(http.StatusOK, w.Code)
	s.True(s.handlerRan)
	s.True(s.seenTenantOK)
	s.Equal(tenant.TenantID, s.seenTenantID)
	s.resolver.AssertExpectations(s.T())
}

func (s *TenantMiddlewareTestSuite) TestRejectsWhenPrincipalMissing() {
	s.skipPrincipal = true

	w := s.perform()

	s.Equal(http.StatusUnauthorized, w.Code)
	s.False(s.handlerRan)
	s.resolver.AssertNotCalled(s.T(), "ResolveTenantForUser", mock.Anything, mock.Anything)
}

func (s *TenantMiddlewareTestSuite) TestRejectsWhenTenantMissing() {
	s.resolver.On("ResolveTenantForUser", mock.Anything, "user-123").Return(nil, apperrors.ErrTenantNotFound).Once()

	w := s.perform()

	s.Equal(http.StatusForbidden, w.Code)
	s.False(s.handlerRan)
	s.resolver.AssertExpectations(s.T())
}

func (s *TenantMiddlewareTestSuite) TestRejectsWhenTenantInactive() {
	s.resolver.On("ResolveTenantForUser", mock.Anything, "user-123").Return(nil, apperrors.ErrTenantInactive).Once()

	w := s.perform()

	s.Equal(http.StatusForbidden, w.Code)
	s.False(s.handlerRan)
}

func (s *TenantMiddlewareTestSuite) TestRejectsWhenTenantExpired() {
	s.resolver.On("ResolveTenantForUser", mock.Anything, "user-123").Return(nil, apperrors.ErrTenantExpired).Once()

	w := s.perform()

	s.Equal(http.StatusForbidden, w.Code)
	s.False(s.handlerRan)
}

func (s *TenantMiddlewareTestSuite) TestRejectsWhenUserGone() {
	s.resolver.On("ResolveTenantForUser", mock.Anything, "user-123").Return(nil, apperrors.ErrNotFound).Once()

	w := s.perform()

	s.Equal(http.StatusUnauthorized, w.Code)
	s.False(s.handlerRan)
}

func TestTenantMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(TenantMiddlewareTestSuite))
}
