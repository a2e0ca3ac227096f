package user

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type Repository interface {
	CreateUser(user *User) error
	GetUserByID(userID string) (*User, error)
	GetUserByLoginOrEmail(loginOrEmail string) (*User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *User) error {
	err := r.db.QueryRow(
		`INSERT INTO users (id, email, login, password_hash, created_at, updated_at)
         VALUES ($1, $2, $3, $4, now(), now())
         RETURNING created_at, updated_at`,
		user.ID, user.Email, user.Login, user.PasswordHash,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return ErrEmailAlreadyExists
			}
			return ErrLoginAlreadyExists
		}
		return err
	}
	return nil
}

func (r *userRepository) GetUserByID(userID string) (*User, error) {
	var u User
	err := r.db.QueryRow(
		`SELECT id, email, login, password_hash, created_at, updated_at
         FROM users WHERE id = $1`,
		userID,
	).Scan(&u.ID, &u.Email, &u.Login, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetUserByLoginOrEmail(loginOrEmail string) (*User, error) {
	var u User
	err := r.db.QueryRow(
		`SELECT id, email, login, password_hash, created_at, updated_at
         FROM users WHERE lower(email) = lower($1) OR login = $1`,
		loginOrEmail,
	).Scan(&u.ID, &u.Email, &u.Login, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
