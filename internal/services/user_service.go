package services

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"filehub-api/internal/apperr"
	"filehub-api/internal/models"
	"filehub-api/internal/utils"
)

// JobQueue is the producer side of the background queue. Delivery is
// best-effort at-most-once: callers log enqueue failures and move on.
type JobQueue interface {
	EnqueueThumbnail(fileID, userID uuid.UUID) error
	EnqueueWelcome(userID uuid.UUID) error
}

// UserService manages the user directory.
type UserService struct {
	db    *gorm.DB
	queue JobQueue
}

func NewUserService(db *gorm.DB, queue JobQueue) *UserService {
	return &UserService{db: db, queue: queue}
}

// Register creates a new user. Emails are unique; the password is
// stored as its SHA-1 digest.
func (s *UserService) Register(email, password string) (*models.User, error) {
	if email == "" {
		return nil, apperr.BadRequest("Missing email")
	}
	if password == "" {
		return nil, apperr.BadRequest("Missing password")
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperr.Internal("Failed to create user")
	}
	if count > 0 {
		return nil, apperr.BadRequest("User already exists")
	}

	user := &models.User{
		Email:    email,
		Password: utils.SHA1Hex(password),
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, apperr.Internal("Failed to create user")
	}

	if err := s.queue.EnqueueWelcome(user.ID); err != nil {
		log.Printf("failed to enqueue welcome job for user %s: %v", user.ID, err)
	}

	return user, nil
}

// GetByEmail returns the user with the given email.
func (s *UserService) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized()
		}
		return nil, apperr.Internal("Failed to fetch user")
	}
	return &user, nil
}

// GetByID returns the user with the given id.
func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized()
		}
		return nil, apperr.Internal("Failed to fetch user")
	}
	return &user, nil
}

// Count returns the number of registered users.
func (s *UserService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, apperr.Internal("Failed to count users")
	}
	return count, nil
}
