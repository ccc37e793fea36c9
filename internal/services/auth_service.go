package services

import (
	"errors"
	"strings"

	"github.com/organizo-app/organizo/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login resolves a user by normalized email and verifies the password.
// Unknown email and wrong password are indistinguishable to the caller.
func (service *AuthService) Login(email string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// Register creates an account with a bcrypt-hashed password. The email
// uniqueness check runs twice: once up front for a clean error, and again
// implicitly under the unique index when the row is inserted.
func (service *AuthService) Register(input RegistrationInput) (models.User, error) {
	exists, err := service.users.ExistsByNormalizedEmail(input.Email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Nome:         input.Nome,
		Email:        input.Email,
		PasswordHash: string(passwordHash),
		IsAtivo:      true,
	}
	if err := service.users.Create(&user); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}
	return user, nil
}

// isUniqueViolation recognizes the unique-index insert race; any other
// storage failure propagates as-is.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint")
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
