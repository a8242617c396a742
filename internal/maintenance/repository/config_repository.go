package repository

import (
	"context"

	"reuse_market_service/internal/maintenance/domain"

	"gorm.io/gorm"
)

// ConfigRepository definition get maintenance config
type ConfigRepository interface {
	AutoMigrate() error
	// FindLatest 取最高 id 的配置列，沒有時回 gorm.ErrRecordNotFound
	FindLatest(ctx context.Context) (*domain.Config, error)
	Create(ctx context.Context, cfg *domain.Config) error
	Save(ctx context.Context, cfg *domain.Config) error
}

type configRepository struct {
	db *gorm.DB
}

// NewConfigRepository create a ConfigRepository
func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepository{db: db}
}

func (r *configRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Config{})
}

// FindLatest 舊列永遠不刪除，most-recent-by-id 勝出
func (r *configRepository) FindLatest(ctx context.Context) (*domain.Config, error) {
	var cfg domain.Config
	if err := r.db.WithContext(ctx).Order("id DESC").First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *configRepository) Create(ctx context.Context, cfg *domain.Config) error {
	return r.db.WithContext(ctx).Create(cfg).Error
}

func (r *configRepository) Save(ctx context.Context, cfg *domain.Config) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}
