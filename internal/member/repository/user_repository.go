package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"reuse_market_service/internal/member/domain"
)

// ErrUserNotFound no user matched the query conditions
var ErrUserNotFound = errors.New("no user found with given criteria")

// UserRepository definition get User info
type UserRepository interface {
	EnsureSchema(ctx context.Context) error
	CreateUser(ctx context.Context, user *domain.User) error
	UpdateUserStatus(ctx context.Context, user *domain.User) error
	FindByUser(ctx context.Context, userQuery *domain.UserQuery) (*domain.User, error)
}

type userRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository create a UserRepository
func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &userRepository{db: db}
}

// usersSchema status 是 domain.UserStatus 的整數值, 欄位型別必須跟著是整數,
// 否則 pgx 會拒絕把 int 綁到 TEXT 欄位
const usersSchema = `CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	user_id TEXT NOT NULL UNIQUE,
	email TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	password TEXT NOT NULL,
	status SMALLINT NOT NULL DEFAULT 0
)`

// EnsureSchema 建立 users 表, 訊息查詢的 JOIN 依賴它
func (r *userRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, usersSchema)
	return err
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO users(user_id, email, name, password) VALUES ($1, $2, $3, $4)",
		user.UserID, user.Email, user.Name, user.Password)
	return err
}

func (r *userRepository) UpdateUserStatus(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, "UPDATE users SET status = $1 WHERE user_id = $2", int16(user.Status), user.UserID)
	return err
}

func (r *userRepository) FindByUser(ctx context.Context, userQuery *domain.UserQuery) (*domain.User, error) {
	queryStr := "SELECT id, user_id, email, name, password, status FROM users WHERE 1=1"
	params := []interface{}{}
	paramCount := 1

	if userQuery.Email != nil {
		queryStr += fmt.Sprintf(" AND email = $%d", paramCount)
		params = append(params, *userQuery.Email)
		paramCount++
	}
	if userQuery.UserID != nil {
		queryStr += fmt.Sprintf(" AND user_id = $%d", paramCount)
		params = append(params, *userQuery.UserID)
		paramCount++
	}
	if userQuery.ID != nil {
		queryStr += fmt.Sprintf(" AND id = $%d", paramCount)
		params = append(params, *userQuery.ID)
		paramCount++
	}

	row := r.db.QueryRow(ctx, queryStr, params...)
	var user domain.User
	var status int16
	err := row.Scan(&user.ID, &user.UserID, &user.Email, &user.Name, &user.Password, &status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Status = domain.UserStatus(status)

	return &user, nil
}
