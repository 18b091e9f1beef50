package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/user_auth_app/internal/apperrors"
	"github.com/SscSPs/user_auth_app/internal/core/domain"
	portssvc "github.com/SscSPs/user_auth_app/internal/core/ports/services"
	"github.com/SscSPs/user_auth_app/internal/dto"
	"github.com/SscSPs/user_auth_app/internal/handlers"
	"github.com/SscSPs/user_auth_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Signin(ctx context.Context, req dto.SigninRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*domain.User, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock ProfileService ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Me(ctx context.Context, accessToken string) (*domain.User, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockProfileService) UpdateBio(ctx context.Context, accessToken string, bio string) (*domain.User, error) {
	args := m.Called(ctx, accessToken, bio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.ProfileSvcFacade = (*MockProfileService)(nil)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockAuth    *MockAuthService
	mockProfile *MockProfileService
	cfg         *config.Config
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockAuth = new(MockAuthService)
	s.mockProfile = new(MockProfileService)
	s.cfg = &config.Config{
		RefreshTokenCookieName:     "refresh_token",
		RefreshTokenCookiePath:     "/",
		RefreshTokenExpiryDuration: 7 * 24 * time.Hour,
	}

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, s.cfg, &portssvc.ServiceContainer{
		Auth:    s.mockAuth,
		Profile: s.mockProfile,
	})
}

func (s *AuthHandlerTestSuite) performJSON(method, path, body string, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, fn := range mutate {
		fn(req)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// --- Signup ---

func (s *AuthHandlerTestSuite) TestSignup_Created() {
	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$argon2id$v=19$m=1024,t=1,p=1$AAAA$BBBB",
	}
	s.mockAuth.On("Signup", mock.Anything, dto.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Secret123!",
	}).Return(user, nil).Once()

	w := s.performJSON(http.MethodPost, "/api/oauth/signup",
		`{"username":"alice","email":"alice@example.com","password":"Secret123!"}`)

	s.Equal(http.StatusCreated, w.Code)

	var resp dto.SignupResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(user.UserID, resp.UserID)
	s.Equal("alice", resp.Username)
	s.Equal("alice@example.com", resp.Email)
	s.Equal(http.StatusCreated, resp.StatusCode)

	// No hash material may leak through any response surface.
	s.NotContains(w.Body.String(), "argon2")
	s.NotContains(w.Body.String(), "password")

	s.mockAuth.AssertExpectations(s.T())
}

func (s *AuthHandlerTestSuite) TestSignup_DuplicateEmail() {
	s.mockAuth.On("Signup", mock.Anything, mock.AnythingOfType("dto.SignupRequest")).
		Return(nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)).Once()

	w := s.performJSON(http.MethodPost, "/api/oauth/signup",
		`{"username":"alice","email":"alice@example.com","password":"Secret123!"}`)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *AuthHandlerTestSuite) TestSignup_InvalidBody() {
	w := s.performJSON(http.MethodPost, "/api/oauth/signup", `{"username":"a"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockAuth.AssertNotCalled(s.T(), "Signup")
}

func (s *AuthHandlerTestSuite) TestSignup_ValidationErrorFromService() {
	s.mockAuth.On("Signup", mock.Anything, mock.AnythingOfType("dto.SignupRequest")).
		Return(nil, fmt.Errorf("%w: bad password charset", apperrors.ErrValidation)).Once()

	w := s.performJSON(http.MethodPost, "/api/oauth/signup",
		`{"username":"alice","email":"alice@example.com","password":"Secret 123"}`)

	s.Equal(http.StatusBadRequest, w.Code)
}

// --- Signin ---

func (s *AuthHandlerTestSuite) TestSignin_SetsRefreshCookie() {
	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "alice",
		Email:        "alice@example.com",
		AccessToken:  "access-token-value",
		RefreshToken: "refresh-token-value",
	}
	s.mockAuth.On("Signin", mock.Anything, dto.SigninRequest{
		Email:    "alice@example.com",
		Password: "Secret123!",
	}).Return(user, nil).Once()

	w := s.performJSON(http.MethodPost, "/api/oauth/signin",
		`{"email":"alice@example.com","password":"Secret123!"}`)

	s.Equal(http.StatusOK, w.Code)

	var resp dto.SigninResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("access-token-value", resp.AccessToken)
	s.NotContains(w.Body.String(), "refresh-token-value", "Refresh token travels only in the cookie")

	cookies := w.Result().Cookies()
	s.Require().Len(cookies, 1)
	cookie := cookies[0]
	s.Equal("refresh_token", cookie.Name)
	s.Equal("refresh-token-value", cookie.Value)
	s.True(cookie.HttpOnly)
	s.True(cookie.Secure)
	s.Equal("/", cookie.Path)
	s.Equal(http.SameSiteStrictMode, cookie.SameSite)
	s.Equal(int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)
}

func (s *AuthHandlerTestSuite) TestSignin_WrongPassword() {
	s.mockAuth.On("Signin", mock.Anything, mock.AnythingOfType("dto.SigninRequest")).
		Return(nil, fmt.Errorf("%w: password mismatch", apperrors.ErrUnauthorized)).Once()

	w := s.performJSON(http.MethodPost, "/api/oauth/signin",
		`{"email":"alice@example.com","password":"WrongPass1!"}`)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Empty(w.Result().Cookies(), "No cookie may be set on failed signin")
}

func (s *AuthHandlerTestSuite) TestSignin_UnknownEmail() {
	s.mockAuth.On("Signin", mock.Anything, mock.AnythingOfType("dto.SigninRequest")).
		Return(nil, fmt.Errorf("lookup: %w", apperrors.ErrNotFound)).Once()

	w := s.performJSON(http.MethodPost, "/api/oauth/signin",
		`{"email":"nobody@example.com","password":"Secret123!"}`)

	s.Equal(http.StatusNotFound, w.Code)
}

// --- Refresh ---

func (s *AuthHandlerTestSuite) TestRefresh_Success() {
	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "alice",
		Email:        "alice@example.com",
		AccessToken:  "new-access-token",
		RefreshToken: "refresh-token-value",
	}
	s.mockAuth.On("RefreshToken", mock.Anything, "refresh-token-value").Return(user, nil).Once()

	w := s.performJSON(http.MethodPost, "/api/oauth/refresh", "", func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "refresh-token-value"})
	})

	s.Equal(http.StatusOK, w.Code)

	var resp dto.RefreshTokenResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("new-access-token", resp.AccessToken)
	s.Equal(user.UserID, resp.UserID)
}

func (s *AuthHandlerTestSuite) TestRefresh_MissingCookie() {
	w := s.performJSON(http.MethodPost, "/api/oauth/refresh", "")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockAuth.AssertNotCalled(s.T(), "RefreshToken")
}

func (s *AuthHandlerTestSuite) TestRefresh_StaleToken() {
	s.mockAuth.On("RefreshToken", mock.Anything, "stale-token").
		Return(nil, fmt.Errorf("%w: refresh token does not match the stored one", apperrors.ErrUnauthorized)).Once()

	w := s.performJSON(http.MethodPost, "/api/oauth/refresh", "", func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "stale-token"})
	})

	s.Equal(http.StatusUnauthorized, w.Code)
}

// --- Profile ---

func (s *AuthHandlerTestSuite) TestProfileMe_Success() {
	user := &domain.User{
		UserID:   uuid.NewString(),
		Username: "alice",
		Email:    "alice@example.com",
		Bio:      "hi",
	}
	s.mockProfile.On("Me", mock.Anything, "some-access-token").Return(user, nil).Once()

	w := s.performJSON(http.MethodGet, "/api/profile/me", "", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer some-access-token")
	})

	s.Equal(http.StatusOK, w.Code)

	var resp dto.ProfileResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("hi", resp.Bio)
	s.Equal(user.UserID, resp.UserID)
}

func (s *AuthHandlerTestSuite) TestProfileMe_MissingBearerHeader() {
	w := s.performJSON(http.MethodGet, "/api/profile/me", "")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockProfile.AssertNotCalled(s.T(), "Me")
}

func (s *AuthHandlerTestSuite) TestProfileMe_MalformedBearerHeader() {
	for _, header := range []string{"bearer lowercase-scheme", "Basic abc", "Bearer", "token-without-scheme"} {
		w := s.performJSON(http.MethodGet, "/api/profile/me", "", func(req *http.Request) {
			req.Header.Set("Authorization", header)
		})
		s.Equal(http.StatusUnauthorized, w.Code, "Header %q must be rejected", header)
	}
	s.mockProfile.AssertNotCalled(s.T(), "Me")
}

func (s *AuthHandlerTestSuite) TestProfileUpdate_Success() {
	user := &domain.User{
		UserID:   uuid.NewString(),
		Username: "alice",
		Email:    "alice@example.com",
		Bio:      "hi",
	}
	s.mockProfile.On("UpdateBio", mock.Anything, "some-access-token", "hi").Return(user, nil).Once()

	w := s.performJSON(http.MethodPut, "/api/profile/update", `{"bio":"hi"}`, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer some-access-token")
	})

	s.Equal(http.StatusOK, w.Code)

	var resp dto.ProfileResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("hi", resp.Bio)
}

func (s *AuthHandlerTestSuite) TestProfileUpdate_ExpiredToken() {
	s.mockProfile.On("UpdateBio", mock.Anything, "expired-token", "hi").
		Return(nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, apperrors.ErrTokenExpired)).Once()

	w := s.performJSON(http.MethodPut, "/api/profile/update", `{"bio":"hi"}`, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer expired-token")
	})

	s.Equal(http.StatusUnauthorized, w.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
