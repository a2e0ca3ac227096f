package auth

import (
	"errors"
	"net/http"

	"github.com/mkarwowski/budgetly/internal/user"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInternalError      = errors.New("internal server error")
)

type Service interface {
	Login(loginOrEmail, password string) (string, *user.User, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService user.Service
	jwtManager  JWTManagerInterface
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface) Service {
	return &service{userService: userService, jwtManager: jwtManager}
}

// Login resolves a caller from credentials and issues a short-lived access
// token. The same ErrInvalidCredentials comes back for an unknown login and a
// wrong password.
func (s *service) Login(loginOrEmail, password string) (string, *user.User, error) {
	existingUser, err := s.userService.GetUserByLoginOrEmail(loginOrEmail)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, ErrInternalError
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existingUser.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessJWT(existingUser.ID, defaultJWTDuration)
	if err != nil {
		return "", nil, ErrInternalError
	}
	return token, existingUser, nil
}
