package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"reuse_market_service/internal/product/domain"
	"reuse_market_service/internal/product/repository"
	"reuse_market_service/pkg"
	errprocess "reuse_market_service/pkg/err"
	"reuse_market_service/pkg/logger"

	"github.com/google/uuid"
)

// ImageStore 商品圖片的 object storage
type ImageStore interface {
	PutObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	RemoveObject(ctx context.Context, objectName string) error
}

// ProductUseCase 這裡封裝了對外提供的應用服務
type ProductUseCase interface {
	CreateProduct(ctx context.Context, ownerID string, req *domain.CreateProductReq) (*domain.Product, error)
	// ListProducts 根據 search/category 選擇具名查詢變體
	ListProducts(ctx context.Context, search, category string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

type productUseCase struct {
	productRepo repository.ProductRepo
	images      ImageStore
}

// NewProductUseCase 建立一個新的 ProductUseCase
func NewProductUseCase(productRepo repository.ProductRepo, images ImageStore) ProductUseCase {
	return &productUseCase{
		productRepo: productRepo,
		images:      images,
	}
}

// CreateProduct
func (p *productUseCase) CreateProduct(ctx context.Context, ownerID string, req *domain.CreateProductReq) (*domain.Product, error) {
	title := strings.TrimSpace(req.Title)
	category := strings.TrimSpace(req.Category)

	if title == "" {
		return nil, domain.ErrTitleRequired
	}
	if category == "" {
		return nil, domain.ErrCategoryRequired
	}
	if !pkg.Contains(domain.Categories, category) {
		return nil, domain.ErrUnknownCategory
	}

	product := domain.Product{
		ID:          uuid.New().String(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Category:    category,
		OwnerID:     ownerID,
		CreatedAt:   time.Now(),
	}

	// 有上傳檔案時存進 object storage，否則用外部 URL
	uploadedObject := ""
	if req.ImageFile != nil && req.ImageSize > 0 {
		objectName := fmt.Sprintf("products/%s%s", product.ID, filepath.Ext(req.ImageName))
		url, err := p.images.PutObject(ctx, objectName, req.ImageFile, req.ImageSize, req.ContentType)
		if err != nil {
			errMsg := fmt.Sprintf("title[%s] 上傳 MinIO 失敗 : %v", title, err)
			return nil, errprocess.Set(errMsg)
		}
		product.Image = url
		uploadedObject = objectName
	} else if strings.TrimSpace(req.ImageURL) != "" {
		product.Image = strings.TrimSpace(req.ImageURL)
	}

	if err := p.productRepo.Create(ctx, &product); err != nil {
		// 寫入失敗時清掉剛上傳的 object, 不留孤兒檔案
		if uploadedObject != "" {
			if rmErr := p.images.RemoveObject(ctx, uploadedObject); rmErr != nil {
				logger.Log.Warn(fmt.Sprintf("remove orphan object [%s] failed : %v", uploadedObject, rmErr))
			}
		}
		errMsg := fmt.Sprintf("title[%s] 資料庫建立商品失敗 : %v", title, err)
		return nil, errprocess.Set(errMsg)
	}

	logger.Log.Info(fmt.Sprintf("product created : %s [%s]", product.Title, product.ID))
	return &product, nil
}

// ListProducts 四個變體：無條件 / 搜尋 / 分類 / 搜尋+分類
func (p *productUseCase) ListProducts(ctx context.Context, search, category string) ([]domain.Product, error) {
	search = strings.TrimSpace(search)
	category = strings.TrimSpace(category)

	switch {
	case search != "" && category != "":
		return p.productRepo.SearchByTermAndCategory(ctx, search, category)
	case search != "":
		return p.productRepo.SearchByTerm(ctx, search)
	case category != "":
		return p.productRepo.FindByCategory(ctx, category)
	default:
		return p.productRepo.FindLatest(ctx)
	}
}

// GetProduct
func (p *productUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return p.productRepo.GetByID(ctx, id)
}

// Categories
func (p *productUseCase) Categories(ctx context.Context) ([]string, error) {
	return p.productRepo.Categories(ctx)
}
