package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxEmailLength = 254
	minLoginLength = 3
	maxLoginLength = 30
	minPasswordLen = 8
	bcryptCost     = 12
)

var (
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrLoginLength        = fmt.Errorf("login must be between %d and %d characters", minLoginLength, maxLoginLength)
	ErrPasswordTooShort   = fmt.Errorf("password must be at least %d characters", minPasswordLen)
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrLoginAlreadyExists = errors.New("login already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInternalError      = errors.New("internal server error")
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Service interface {
	Register(email, login, password string) (*User, error)
	GetUserByID(userID string) (*User, error)
	GetUserByLoginOrEmail(loginOrEmail string) (*User, error)
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(email, login, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	login = strings.TrimSpace(login)

	if len(email) > maxEmailLength {
		return nil, ErrInvalidEmail
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(login) < minLoginLength || len(login) > maxLoginLength {
		return nil, ErrLoginLength
	}
	if len(password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, ErrInternalError
	}

	newUser := &User{
		ID:           uuid.NewString(),
		Email:        email,
		Login:        login,
		PasswordHash: string(hash),
	}
	if err := s.repo.CreateUser(newUser); err != nil {
		return nil, err
	}
	return newUser, nil
}

func (s *service) GetUserByID(userID string) (*User, error) {
	return s.repo.GetUserByID(userID)
}

func (s *service) GetUserByLoginOrEmail(loginOrEmail string) (*User, error) {
	return s.repo.GetUserByLoginOrEmail(strings.TrimSpace(loginOrEmail))
}
