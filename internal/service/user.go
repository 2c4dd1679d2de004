package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/recipeshare/backend/internal/models"
)

// UserService handles user registration and lookup.
type UserService struct {
	db         *gorm.DB
	bcryptCost int
}

func NewUserService(db *gorm.DB, bcryptCost int) *UserService {
	return &UserService{
		db:         db,
		bcryptCost: bcryptCost,
	}
}

// Create registers a new user. Usernames are unique across all users.
func (s *UserService) Create(ctx context.Context, username, displayName, password string) (*models.User, error) {
	if username == "" {
		return nil, ValidationError{Message: "username is required"}
	}
	if password == "" {
		return nil, ValidationError{Message: "password is required"}
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ValidationError{Message: "username must be unique"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: string(hash),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID retrieves a user by id.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ResetAll wipes every user. Exposed only through the testing endpoint.
func (s *UserService) ResetAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.User{}).Error
}
