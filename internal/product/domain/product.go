package domain

import (
	"errors"
	"io"
	"time"
)

// Categories 平台支援的商品分類
var Categories = []string{
	"Eletrônicos",
	"Roupas",
	"Livros",
	"Móveis",
	"Casa e Jardim",
	"Esportes",
	"Brinquedos",
	"Outros",
}

// 建立商品時的驗證錯誤
var (
	// ErrTitleRequired title is empty
	ErrTitleRequired = errors.New("title is required")
	// ErrCategoryRequired category is empty
	ErrCategoryRequired = errors.New("category is required")
	// ErrUnknownCategory category is not in Categories
	ErrUnknownCategory = errors.New("unknown category")
)

// Product 定義商品模型
// 商品只屬於一個 owner，這個範圍內沒有更新/刪除操作
type Product struct {
	ID          string `gorm:"primaryKey"`
	Title       string
	Description string
	Category    string
	Image       string
	OwnerID     string
	CreatedAt   time.Time
}

// TableName gorm table name
func (Product) TableName() string {
	return "products"
}

// CreateProductReq usecase create product request
type CreateProductReq struct {
	Title       string
	Description string
	Category    string

	// 二選一：外部圖片 URL 或上傳的檔案
	ImageURL    string
	ImageFile   io.Reader
	ImageSize   int64
	ImageName   string
	ContentType string
}

// ProductSummary 對話列表裡用的商品摘要
type ProductSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image,omitempty"`
}
