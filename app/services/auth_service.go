package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rajsingh19/wearhouse/app/models"
	"github.com/rajsingh19/wearhouse/app/repositories"
	"github.com/rajsingh19/wearhouse/app/requests"
	"github.com/rajsingh19/wearhouse/pkg/auth"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService handles signup and login against the user store.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a user with the USER role and returns it with a fresh
// token. Role escalation happens outside this API (seeding or direct
// admin action).
func (s *AuthService) Register(req requests.RegisterRequest) (models.User, string, error) {
	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return models.User{}, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, "", err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, "", err
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	return user, token, err
}

// Login verifies credentials and issues a token carrying the user's ID
// and role.
func (s *AuthService) Login(req requests.LoginRequest) (models.User, string, error) {
	user, err := s.users.FindByEmail(req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, "", err
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	return user, token, err
}
