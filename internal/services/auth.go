package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"goa.design/goa/v3/security"
	"gorm.io/gorm"

	"github.com/treyloggins4-create/tk/gen/auth"
	"github.com/treyloggins4-create/tk/internal/domain"
	"github.com/treyloggins4-create/tk/internal/metrics"
	"github.com/treyloggins4-create/tk/internal/util"
)

// Helper function to convert string to *string
func stringPtr(s string) *string {
	return &s
}

// AuthService implements the auth service
type AuthService struct {
	db *gorm.DB
}

// NewAuthService creates a new auth service
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// JWTAuth implements the authorization logic for the JWT security scheme
func (s *AuthService) JWTAuth(ctx context.Context, token string, schema *security.JWTScheme) (context.Context, error) {
	// Validate JWT token and extract claims
	claims, err := util.ValidateToken(token)
	if err != nil {
		return nil, auth.MakeUnauthorized(fmt.Errorf("invalid or expired token"))
	}

	// Get user from database
	var user domain.User
	if err := s.db.Where("username = ?", claims.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.MakeUnauthorized(fmt.Errorf("user not found"))
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Check if user is active
	if !user.IsActive {
		return nil, auth.MakeUnauthorized(fmt.Errorf("user account is inactive"))
	}

	// Check scopes if required
	if schema != nil && len(schema.RequiredScopes) > 0 {
		hasScope := false
		for _, requiredScope := range schema.RequiredScopes {
			if requiredScope == "admin" && user.IsAdmin {
				hasScope = true
				break
			}
			if requiredScope == "staff" && (user.IsStaff || user.IsAdmin) {
				hasScope = true
				break
			}
		}
		if !hasScope {
			return nil, auth.MakeUnauthorized(fmt.Errorf("insufficient permissions"))
		}
	}

	// Add user to context
	ctx = context.WithValue(ctx, "user", &user)
	return ctx, nil
}

// Login implements the login method
func (s *AuthService) Login(ctx context.Context, p *auth.LoginPayload) (*auth.Loginresult, error) {
	// Trim whitespace from credentials
	username := strings.TrimSpace(p.Username)
	password := strings.TrimSpace(p.Password)

	log.Printf("[AUTH] Login attempt for user: %s", username)

	var user domain.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[AUTH] Login failed: user '%s' not found", username)
			metrics.RecordAuthAttempt(false)
			return nil, auth.MakeUnauthorized(fmt.Errorf("incorrect username or password"))
		}
		log.Printf("[AUTH] Login failed: database error for user '%s': %v", username, err)
		metrics.RecordAuthAttempt(false)
		return nil, err
	}

	if !util.CheckPasswordHash(password, user.HashedPassword) {
		log.Printf("[AUTH] Login failed: invalid password for user '%s'", username)
		metrics.RecordAuthAttempt(false)
		return nil, auth.MakeUnauthorized(fmt.Errorf("incorrect username or password"))
	}

	if !user.IsActive {
		log.Printf("[AUTH] Login failed: user '%s' is inactive", username)
		metrics.RecordAuthAttempt(false)
		return nil, auth.MakeUnauthorized(fmt.Errorf("user account is inactive"))
	}

	// Update last login
	now := time.Now()
	user.LastLogin = &now
	s.db.Save(&user)

	// Generate token
	token, err := util.GenerateToken(&user)
	if err != nil {
		log.Printf("[AUTH] Login failed: token generation error for user '%s': %v", username, err)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	log.Printf("[AUTH] Login successful for user '%s' (id=%d, admin=%v, staff=%v)", username, user.ID, user.IsAdmin, user.IsStaff)
	metrics.RecordAuthAttempt(true)

	return &auth.Loginresult{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// Logout implements the logout method
func (s *AuthService) Logout(ctx context.Context, p *auth.LogoutPayload) (*auth.Logoutresult, error) {
	user := ctx.Value("user").(*domain.User)
	log.Printf("[AUTH] Logout for user: %s (id=%d)", user.Username, user.ID)
	return &auth.Logoutresult{
		Message: stringPtr("Successfully logged out"),
	}, nil
}

// Me implements the me method
func (s *AuthService) Me(ctx context.Context, p *auth.MePayload) (*auth.Userresult, error) {
	user := ctx.Value("user").(*domain.User)
	log.Printf("[AUTH] Me request for user: %s (id=%d)", user.Username, user.ID)
	return convertUserToResult(user), nil
}

// Helper function to convert User model to Userresult
func convertUserToResult(user *domain.User) *auth.Userresult {
	result := &auth.Userresult{
		ID:       int(user.ID),
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
		IsStaff:  user.IsStaff,
	}

	if user.FullName != nil {
		result.FullName = user.FullName
	}
	if user.LastLogin != nil {
		result.LastLogin = stringPtr(user.LastLogin.Format(time.RFC3339))
	}

	return result
}
