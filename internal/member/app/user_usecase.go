package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reuse_market_service/internal/member/domain"
	"reuse_market_service/internal/member/repository"
	"reuse_market_service/pkg/database"
	"reuse_market_service/pkg/encrypt"
	"reuse_market_service/pkg/logger"
	token "reuse_market_service/pkg/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEmailTaken email 已被註冊
var ErrEmailTaken = errors.New("email already exists")

// UserUseCase 這裡封裝了對外提供的應用服務
type UserUseCase interface {
	Register(ctx context.Context, email, name, password string) error
	FindUser(ctx context.Context, param *domain.UserQuery) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
	CheckSessionTimeout(ctx context.Context, token string) (bool, error)
}

type userUseCase struct {
	userRepo   repository.UserRepository
	sessionTTL time.Duration
	redisRepo  database.RedisRepository[domain.UserSession]
}

// NewUserUseCase 建立一個新的 UserUseCase
func NewUserUseCase(userRepo repository.UserRepository,
	sessionTTL time.Duration,
	redisRepo database.RedisRepository[domain.UserSession],
) UserUseCase {
	return &userUseCase{
		userRepo:   userRepo,
		sessionTTL: sessionTTL,
		redisRepo:  redisRepo,
	}
}

// Register
func (u *userUseCase) Register(ctx context.Context, email, name, password string) error {
	// 檢查 email 是否已存在
	if _, err := u.userRepo.FindByUser(ctx, &domain.UserQuery{Email: &email}); err == nil {
		return ErrEmailTaken
	}

	pw, err := encrypt.HashPassword(password)
	if err != nil {
		return err
	}

	user := domain.User{
		UserID:   uuid.New().String(),
		Email:    email,
		Name:     name,
		Password: pw,
	}

	logger.Log.Info(fmt.Sprintf("usecase Register : %s", user.Email))

	if err := u.userRepo.CreateUser(ctx, &user); err != nil {
		return err
	}

	return nil
}

// FindUser 用查詢條件來尋找使用者
func (u *userUseCase) FindUser(ctx context.Context, param *domain.UserQuery) (*domain.User, error) {
	return u.userRepo.FindByUser(ctx, param)
}

// Login
func (u *userUseCase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.userRepo.FindByUser(ctx, &domain.UserQuery{Email: &email})
	if err != nil {
		logger.Log.Error("email can't find!!!")
		return "", errors.New("user not found")
	}

	if err = user.IsPasswordMatch(password); err != nil {
		logger.Log.Error("password can't match!!!")
		return "", err
	}

	user.Status = domain.UserStatusOnLine

	t, err := token.GenerateJWTWrapper(user.UserID, string(token.RoleUser))
	if err != nil {
		return "", err
	}

	now := time.Now()
	session := domain.UserSession{
		Token:        t,
		UserID:       user.UserID,
		CreatedAt:    now,
		LastActivity: now,
		ExpiredAt:    now.Add(u.sessionTTL),
	}

	u.redisRepo.Set(context.Background(), user.UserID, session, u.sessionTTL)

	if err := u.userRepo.UpdateUserStatus(ctx, user); err != nil {
		return "", err
	}

	return t, nil
}

// Logout
func (u *userUseCase) Logout(ctx context.Context, t string) error {
	tokenInfo, err := token.ParseJWTWrapper(t)
	if err != nil {
		logger.Log.Error("Logout err :", zap.String("err", err.Error()))
		return err
	}

	u.redisRepo.Del(context.Background(), tokenInfo.UserID)

	if err := u.userRepo.UpdateUserStatus(ctx, &domain.User{
		UserID: tokenInfo.UserID,
		Status: domain.UserStatusOffLine,
	}); err != nil {
		return err
	}
	return nil
}

// CheckSessionTimeout
func (u *userUseCase) CheckSessionTimeout(ctx context.Context, t string) (bool, error) {
	tokenInfo, err := token.ParseJWTWrapper(t)
	if err != nil {
		logger.Log.Error("CheckSessionTimeout err :", zap.String("err", err.Error()))
		return true, err
	}

	ttl, err := u.redisRepo.GetTTL(context.Background(), tokenInfo.UserID)
	if err != nil {
		return true, err
	}

	if ttl > 0 {
		// session 還活著就滑動續期, 活躍使用者不會被中途登出
		if err := u.redisRepo.ExtendTTL(context.Background(), tokenInfo.UserID, u.sessionTTL); err != nil {
			logger.Log.Warn("extend session ttl failed", zap.Error(err))
		}
		return false, nil
	}
	return true, nil
}
