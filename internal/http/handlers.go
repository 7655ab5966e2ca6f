package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tazhibayda/trade-service/internal/config"
	"github.com/tazhibayda/trade-service/internal/domain"
	"github.com/tazhibayda/trade-service/internal/log"
	"github.com/tazhibayda/trade-service/internal/metrics"
	"github.com/tazhibayda/trade-service/internal/queue"
	"github.com/tazhibayda/trade-service/internal/repo"
)

const latestLimit = 6

// Store is the persistence surface the handlers need; *repo.Store
// satisfies it, tests plug in an in-memory fake.
type Store interface {
	Ping(ctx context.Context) error

	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListLatest(ctx context.Context, n int) ([]domain.Product, error)
	ListByOwner(ctx context.Context, email string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) error
	UpdateProduct(ctx context.Context, id string, p *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	RegisterUser(ctx context.Context, u *domain.User, admin bool) (*domain.User, bool, error)

	ImportProduct(ctx context.Context, productID, userID string, quantity int) (*repo.ImportResult, error)
	ListImports(ctx context.Context, userID string) ([]domain.ImportedProduct, error)
	RemoveImport(ctx context.Context, userID, productID string) error
}

type Handler struct {
	Store  Store
	Cache  *repo.Cache
	Cfg    config.Config
	Events queue.Publisher
}

func NewHandler(store Store, cache *repo.Cache, cfg config.Config, pub queue.Publisher) *Handler {
	return &Handler{Store: store, Cache: cache, Cfg: cfg, Events: pub}
}

// fail maps repo sentinels onto the HTTP taxonomy; anything unexpected
// is logged server-side and surfaced as a generic 500.
func fail(c *gin.Context, err error, msg string) {
	switch err {
	case repo.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
	case repo.ErrOutOfStock:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Product out of stock"})
	default:
		log.L().Error(msg, zap.Error(err), zap.String("request_id", requestID(c)))
		c.JSON(http.StatusInternalServerError, gin.H{"message": msg})
	}
}

func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Server is running")
}

func (h *Handler) Healthz(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type registerUserReq struct {
	UID      string `json:"uid"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
}

// RegisterUser godoc
// @Summary Register-or-fetch a user
// @Tags users
// @Accept json
// @Produce json
// @Param payload body registerUserReq true "uid, name, email, photoURL"
// @Success 200 {object} map[string]any
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /users [post]
func (h *Handler) RegisterUser(c *gin.Context) {
	var in registerUserReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json"})
		return
	}
	in.UID = strings.TrimSpace(in.UID)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.UID == "" || in.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "uid and email are required"})
		return
	}

	u := &domain.User{
		UID:      in.UID,
		Name:     strings.TrimSpace(in.Name),
		Email:    in.Email,
		PhotoURL: in.PhotoURL,
	}
	out, existed, err := h.Store.RegisterUser(c.Request.Context(), u, h.Cfg.IsAdminEmail(in.Email))
	if err != nil {
		fail(c, err, "Failed to create user")
		return
	}
	if existed {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists", "user": out})
		return
	}

	go h.Events.Publish(context.Background(), queue.Exchange, "user.registered",
		queue.UserRegistered{UID: out.UID, Email: out.Email, Name: out.Name, Role: out.Role},
		requestID(c))

	c.JSON(http.StatusCreated, gin.H{"message": "User created", "user": out})
}

// ListProducts godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} domain.Product
// @Router /products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	out, err := h.Store.ListProducts(c.Request.Context())
	if err != nil {
		fail(c, err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, out)
}

// LatestProducts godoc
// @Summary Latest six products, newest first
// @Tags products
// @Produce json
// @Success 200 {array} domain.Product
// @Router /latest-products [get]
func (h *Handler) LatestProducts(c *gin.Context) {
	ctx := c.Request.Context()
	if b := h.Cache.GetLatest(ctx); b != nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}
	out, err := h.Store.ListLatest(ctx, latestLimit)
	if err != nil {
		fail(c, err, "Error fetching latest products")
		return
	}
	if b, err := json.Marshal(out); err == nil {
		h.Cache.SetLatest(ctx, b)
	}
	c.JSON(http.StatusOK, out)
}

// GetProduct godoc
// @Summary Get one product by id
// @Tags products
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.Store.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, p)
}

type productReq struct {
	ProductName       string   `json:"productName"`
	Image             string   `json:"image"`
	Price             *float64 `json:"price"`
	OriginCountry     string   `json:"originCountry"`
	Rating            *float64 `json:"rating"`
	AvailableQuantity *int     `json:"availableQuantity"`
	UserEmail         string   `json:"userEmail"`
}

// validate checks presence, not truthiness: a zero price or rating is a
// legal value, a missing or negative one is not.
func (in *productReq) validate(needEmail bool) string {
	switch {
	case strings.TrimSpace(in.ProductName) == "":
		return "productName is required"
	case strings.TrimSpace(in.Image) == "":
		return "image is required"
	case strings.TrimSpace(in.OriginCountry) == "":
		return "originCountry is required"
	case in.Price == nil || *in.Price < 0:
		return "price must be a non-negative number"
	case in.Rating == nil || *in.Rating < 0:
		return "rating must be a non-negative number"
	case in.AvailableQuantity == nil || *in.AvailableQuantity < 0:
		return "availableQuantity must be a non-negative integer"
	case needEmail && strings.TrimSpace(in.UserEmail) == "":
		return "userEmail is required"
	}
	return ""
}

// CreateProduct godoc
// @Summary Export (create) a product
// @Tags products
// @Accept json
// @Produce json
// @Param payload body productReq true "product fields"
// @Success 201 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Router /products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	var in productReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json"})
		return
	}
	if msg := in.validate(true); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	p := &domain.Product{
		ProductName:       strings.TrimSpace(in.ProductName),
		Image:             in.Image,
		Price:             *in.Price,
		OriginCountry:     strings.TrimSpace(in.OriginCountry),
		Rating:            *in.Rating,
		AvailableQuantity: *in.AvailableQuantity,
		UserEmail:         strings.ToLower(strings.TrimSpace(in.UserEmail)),
	}
	if err := h.Store.CreateProduct(c.Request.Context(), p); err != nil {
		fail(c, err, "Failed to add product")
		return
	}
	h.Cache.InvalidateLatest(c.Request.Context())

	go h.Events.Publish(context.Background(), queue.Exchange, "product.exported",
		queue.ProductExported{
			ProductID: p.ID.Hex(),
			UserEmail: p.UserEmail,
			Price:     p.Price,
			Quantity:  p.AvailableQuantity,
		}, requestID(c))

	c.JSON(http.StatusCreated, p)
}

type importReq struct {
	Quantity int    `json:"quantity"`
	UserID   string `json:"userId"`
}

// ImportProduct godoc
// @Summary Import stock from a product into the caller's history
// @Tags imports
// @Accept json
// @Produce json
// @Param id path string true "product id"
// @Param payload body importReq true "quantity, userId"
// @Success 200 {object} repo.ImportResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/import/{id} [put]
func (h *Handler) ImportProduct(c *gin.Context) {
	var in importReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json"})
		return
	}
	if in.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid quantity"})
		return
	}
	if strings.TrimSpace(in.UserID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID required"})
		return
	}

	res, err := h.Store.ImportProduct(c.Request.Context(), c.Param("id"), in.UserID, in.Quantity)
	if err != nil {
		switch err {
		case repo.ErrNotFound:
			metrics.ImportsTotal.WithLabelValues("not_found").Inc()
		case repo.ErrOutOfStock:
			metrics.ImportsTotal.WithLabelValues("out_of_stock").Inc()
		default:
			metrics.ImportsTotal.WithLabelValues("error").Inc()
		}
		fail(c, err, "Failed to import")
		return
	}
	metrics.ImportsTotal.WithLabelValues("ok").Inc()
	h.Cache.InvalidateLatest(c.Request.Context())

	go h.Events.Publish(context.Background(), queue.Exchange, "product.imported",
		queue.ProductImported{
			ProductID:        c.Param("id"),
			UserID:           in.UserID,
			ImportedQuantity: res.ImportedQuantity,
			Remaining:        res.AvailableQuantity,
		}, requestID(c))

	c.JSON(http.StatusOK, res)
}

// MyImports godoc
// @Summary List a user's imports with product detail
// @Tags imports
// @Produce json
// @Param userId path string true "user id"
// @Success 200 {array} domain.ImportedProduct
// @Router /my-imports/{userId} [get]
func (h *Handler) MyImports(c *gin.Context) {
	out, err := h.Store.ListImports(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, err, "Failed to fetch imports")
		return
	}
	c.JSON(http.StatusOK, out)
}

// RemoveImport godoc
// @Summary Remove one import record (idempotent)
// @Tags imports
// @Produce json
// @Param userId path string true "user id"
// @Param productId path string true "product id"
// @Success 200 {object} map[string]string
// @Router /my-imports/{userId}/{productId} [delete]
func (h *Handler) RemoveImport(c *gin.Context) {
	err := h.Store.RemoveImport(c.Request.Context(), c.Param("userId"), c.Param("productId"))
	if err != nil {
		fail(c, err, "Failed to remove import")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Import removed successfully"})
}

// MyExports godoc
// @Summary List products owned by an email
// @Tags exports
// @Produce json
// @Param email path string true "owner email"
// @Success 200 {array} domain.Product
// @Router /my-exports/{email} [get]
func (h *Handler) MyExports(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User email required"})
		return
	}
	out, err := h.Store.ListByOwner(c.Request.Context(), email)
	if err != nil {
		fail(c, err, "Failed to fetch user's exports")
		return
	}
	c.JSON(http.StatusOK, out)
}

// UpdateProduct godoc
// @Summary Full-field update of an owned product
// @Tags exports
// @Accept json
// @Produce json
// @Param id path string true "product id"
// @Param payload body productReq true "product fields"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string
// @Router /my-exports/{id} [put]
func (h *Handler) UpdateProduct(c *gin.Context) {
	var in productReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid json"})
		return
	}
	if msg := in.validate(false); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	p := &domain.Product{
		ProductName:       strings.TrimSpace(in.ProductName),
		Image:             in.Image,
		Price:             *in.Price,
		OriginCountry:     strings.TrimSpace(in.OriginCountry),
		Rating:            *in.Rating,
		AvailableQuantity: *in.AvailableQuantity,
	}
	out, err := h.Store.UpdateProduct(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		fail(c, err, "Failed to update product")
		return
	}
	h.Cache.InvalidateLatest(c.Request.Context())
	c.JSON(http.StatusOK, out)
}

// DeleteProduct godoc
// @Summary Delete an owned product
// @Tags exports
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /my-exports/{id} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.Store.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "Failed to delete product")
		return
	}
	h.Cache.InvalidateLatest(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
