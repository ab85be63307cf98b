package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/teamtrack/project-management-api/internal/auth"
	"github.com/teamtrack/project-management-api/internal/constants"
	"github.com/teamtrack/project-management-api/internal/models"
	"github.com/teamtrack/project-management-api/internal/repository"
)

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo  repository.UserRepository
	refRepo   repository.ReferenceRepository
	tokenRepo repository.TokenRepository
	tokens    *auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userRepo repository.UserRepository,
	refRepo repository.ReferenceRepository,
	tokenRepo repository.TokenRepository,
	tokens *auth.TokenManager,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		refRepo:   refRepo,
		tokenRepo: tokenRepo,
		tokens:    tokens,
	}
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns a signed bearer token.
func (s *AuthService) Login(input LoginInput) (string, error) {
	user, err := s.userRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Role.Name)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Logout revokes the presented token by placing it on the blacklist.
func (s *AuthService) Logout(token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return err
	}

	entry := &models.BlacklistToken{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if err := s.tokenRepo.Blacklist(entry); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

// RegisterInput represents the bootstrap registration payload.
type RegisterInput struct {
	Username   string
	Password   string
	FirstName  string
	LastName   string
	Patronymic *string
}

// Register creates the very first user of the installation as a manager
// and returns their bearer token. Once any user exists, registration is
// closed; further accounts are created through the manager surface.
func (s *AuthService) Register(input RegisterInput) (string, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return "", fmt.Errorf("username is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	count, err := s.userRepo.Count()
	if err != nil {
		return "", fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return "", ErrRegistrationClosed
	}

	managerRole, err := s.refRepo.FindRoleByName(models.RoleManager)
	if err != nil {
		return "", fmt.Errorf("failed to resolve manager role: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:       username,
		HashedPassword: string(hashedPassword),
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Patronymic:     input.Patronymic,
		RoleID:         managerRole.ID,
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Generate(user.ID, models.RoleManager)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// CurrentUser loads the actor for a verified token, rejecting revoked
// tokens and tokens whose user no longer exists.
func (s *AuthService) CurrentUser(token string) (*models.User, error) {
	revoked, err := s.tokenRepo.IsBlacklisted(token)
	if err != nil {
		return nil, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	if revoked {
		return nil, auth.ErrInvalidToken
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
