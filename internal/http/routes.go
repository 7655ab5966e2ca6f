package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(CORS())
	r.Use(Metrics())

	r.GET("/", h.Root)
	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/users", h.RegisterUser)

	r.GET("/products", h.ListProducts)
	r.GET("/latest-products", h.LatestProducts)
	r.GET("/products/:id", h.GetProduct)
	r.POST("/products", h.CreateProduct)
	r.PUT("/products/import/:id", h.ImportProduct)

	r.GET("/my-imports/:userId", h.MyImports)
	r.DELETE("/my-imports/:userId/:productId", h.RemoveImport)

	r.GET("/my-exports/:email", h.MyExports)
	r.PUT("/my-exports/:id", h.UpdateProduct)
	r.DELETE("/my-exports/:id", h.DeleteProduct)

	return r
}
