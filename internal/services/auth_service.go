package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/yukikurage/taskmaster-api/internal/constants"
	"github.com/yukikurage/taskmaster-api/internal/models"
	"github.com/yukikurage/taskmaster-api/internal/repository"
	"github.com/yukikurage/taskmaster-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken         = errors.New("username already exists")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrPasswordTooShort      = errors.New("password too short")
	ErrMissingSignupFields   = errors.New("name, username, password and role are required")
	ErrInvalidUsernameSuffix = errors.New("username has the wrong suffix")
	ErrInvalidRole           = errors.New("role must be MANAGER or EMPLOYEE")
	ErrUserNotFound          = errors.New("user not found")
	ErrFailedToHashPassword  = errors.New("failed to hash password")
	ErrFailedToCreateUser    = errors.New("failed to create user")
)

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo       repository.UserRepository
	usernameSuffix string
	emailDomain    string
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, usernameSuffix, emailDomain string) *AuthService {
	if usernameSuffix == "" {
		usernameSuffix = constants.DefaultUsernameSuffix
	}
	if emailDomain == "" {
		emailDomain = constants.DefaultEmailDomain
	}
	return &AuthService{
		userRepo:       userRepo,
		usernameSuffix: usernameSuffix,
		emailDomain:    emailDomain,
	}
}

// UsernameSuffix is the suffix every new username must carry.
func (s *AuthService) UsernameSuffix() string {
	return s.usernameSuffix
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	Name     string
	Username string
	Password string
	Role     models.Role
}

// Signup creates a new user with a generated email and avatar.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	username := strings.TrimSpace(input.Username)
	if name == "" || username == "" || input.Password == "" || input.Role == "" {
		return nil, ErrMissingSignupFields
	}
	if !strings.HasSuffix(username, s.usernameSuffix) || username == s.usernameSuffix {
		return nil, fmt.Errorf("%w: must end with %s", ErrInvalidUsernameSuffix, s.usernameSuffix)
	}
	if !input.Role.Valid() {
		return nil, ErrInvalidRole
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		ID:           utils.NewID(),
		Name:         name,
		Username:     username,
		Email:        fmt.Sprintf("%s@%s", username, s.emailDomain),
		PasswordHash: string(hashedPassword),
		Role:         input.Role,
		Avatar:       fmt.Sprintf(constants.AvatarURLTemplate, url.QueryEscape(name)),
		Level:        constants.InitialLevel,
		XP:           0,
	}

	if err := s.userRepo.Create(user); err != nil {
		// lost a race with a signup for the same name
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateUser, err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated user.
// The username comparison ignores case.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id string) (*models.User, error) {
	return findUser(s.userRepo, id)
}

func findUser(repo repository.UserRepository, id string, preload ...string) (*models.User, error) {
	user, err := repo.FindByID(id, preload...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
