package repository

import (
	"context"

	"reuse_market_service/internal/product/domain"

	"gorm.io/gorm"
)

// ProductRepo definition get product info
// 查詢固定為四個具名變體，不在 runtime 拼動態 filter
type ProductRepo interface {
	AutoMigrate() error
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	FindLatest(ctx context.Context) ([]domain.Product, error)
	FindByCategory(ctx context.Context, category string) ([]domain.Product, error)
	SearchByTerm(ctx context.Context, term string) ([]domain.Product, error)
	SearchByTermAndCategory(ctx context.Context, term, category string) ([]domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

type productRepo struct {
	db *gorm.DB
}

// NewProductRepo create ProductRepo
func NewProductRepo(db *gorm.DB) ProductRepo {
	return &productRepo{db: db}
}

func (r *productRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *productRepo) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// GetByID get Product by id
func (r *productRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FindLatest 最新商品在前
func (r *productRepo) FindLatest(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) FindByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.db.WithContext(ctx).Where("category = ?", category).
		Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// SearchByTerm 利用 PostgreSQL 的 ILIKE 實作模糊搜尋（標題或描述包含 term）
func (r *productRepo) SearchByTerm(ctx context.Context, term string) ([]domain.Product, error) {
	var products []domain.Product
	like := "%" + term + "%"
	if err := r.db.WithContext(ctx).Where("title ILIKE ? OR description ILIKE ?", like, like).
		Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) SearchByTermAndCategory(ctx context.Context, term, category string) ([]domain.Product, error) {
	var products []domain.Product
	like := "%" + term + "%"
	if err := r.db.WithContext(ctx).
		Where("(title ILIKE ? OR description ILIKE ?) AND category = ?", like, like, category).
		Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Categories 取目前存在的分類（去重），給篩選 UI 用
func (r *productRepo) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Distinct("category").Order("category").Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
