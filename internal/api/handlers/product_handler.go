package handlers

import (
	"errors"

	productapp "reuse_market_service/internal/product/app"
	"reuse_market_service/internal/product/domain"
	"reuse_market_service/pkg/logger"
	"reuse_market_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductHandler 处理商品相关的 HTTP 请求
type ProductHandler struct {
	productUC productapp.ProductUseCase
}

// NewProductHandler 创建新的 ProductHandler
func NewProductHandler(productUC productapp.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUC: productUC,
	}
}

// ListProducts 商品列表, 可用關鍵字與分類過濾
// @Summary List products
// @Description Newest first; optional search term and category filter
// @Tags Products
// @Produce json
// @Param search query string false "search term, matched against title and description"
// @Param category query string false "exact category"
// @Success 200 {array} domain.Product "products"
// @Failure 500 {object} string "server error"
// @Router /api/products [get]
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.productUC.ListProducts(c.UserContext(), c.Query("search"), c.Query("category"))
	if err != nil {
		logger.Log.Error("list products err :", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(products)
}

// GetProduct 單一商品
// @Summary Get product by id
// @Tags Products
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} domain.Product "product"
// @Failure 404 {object} string "not found"
// @Router /api/products/{id} [get]
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.productUC.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "produto não encontrado"})
		}
		logger.Log.Error("get product err :", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(product)
}

// Categories 列出目前有商品的分類
// @Summary List distinct categories
// @Tags Products
// @Produce json
// @Success 200 {array} string "categories"
// @Failure 500 {object} string "server error"
// @Router /api/products/categories [get]
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.productUC.Categories(c.UserContext())
	if err != nil {
		logger.Log.Error("list categories err :", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(categories)
}

// CreateProduct 新增商品, multipart 表單
// @Summary Create product
// @Description imageFile is uploaded to object storage; falls back to imageUrl when absent
// @Tags Products
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "product title"
// @Param category formData string true "product category"
// @Param description formData string false "product description"
// @Param imageUrl formData string false "external image url"
// @Param imageFile formData file false "image file"
// @Success 201 {object} domain.Product "created product"
// @Failure 400 {object} string "missing title or category"
// @Router /api/products [post]
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	ownerID, ok := c.Locals(middlewares.TokenUserID).(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	req := domain.CreateProductReq{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		ImageURL:    c.FormValue("imageUrl"),
	}

	if fh, err := c.FormFile("imageFile"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			logger.Log.Error("open upload err :", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid image file"})
		}
		defer f.Close()

		req.ImageFile = f
		req.ImageSize = fh.Size
		req.ImageName = fh.Filename
		req.ContentType = fh.Header.Get(fiber.HeaderContentType)
	}

	product, err := h.productUC.CreateProduct(c.UserContext(), ownerID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrTitleRequired) ||
			errors.Is(err, domain.ErrCategoryRequired) ||
			errors.Is(err, domain.ErrUnknownCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		logger.Log.Error("create product err :", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}
