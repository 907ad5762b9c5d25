package router

import (
	"bazarly/internal/adapter/api/handler"
	"bazarly/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// SetupCatalogRouter wires the five parent catalog entities. Reads are
// public; writes and the guarded delete endpoints are admin only.
func SetupCatalogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	catalogHandler := handler.GetCatalogHandler()

	// Public reads
	e.GET("/v1/stores", catalogHandler.ListStores)
	e.GET("/v1/stores/:id", catalogHandler.GetStore)
	e.GET("/v1/stores/slug/:slug", catalogHandler.GetStoreBySlug)
	e.GET("/v1/brands", catalogHandler.ListBrands)
	e.GET("/v1/brands/:id", catalogHandler.GetBrand)
	e.GET("/v1/companies", catalogHandler.ListCompanies)
	e.GET("/v1/companies/:id", catalogHandler.GetCompany)
	e.GET("/v1/markets", catalogHandler.ListMarkets)
	e.GET("/v1/markets/:id", catalogHandler.GetMarket)
	e.GET("/v1/categories", catalogHandler.ListCategories)
	e.GET("/v1/categories/:id", catalogHandler.GetCategory)
	e.GET("/v1/categories/slug/:slug", catalogHandler.GetCategoryBySlug)

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("/stores", catalogHandler.CreateStore)
	admin.PUT("/stores/:id", catalogHandler.UpdateStore)
	admin.DELETE("/stores/:id", catalogHandler.DeleteStore)

	admin.POST("/brands", catalogHandler.CreateBrand)
	admin.PUT("/brands/:id", catalogHandler.UpdateBrand)
	admin.DELETE("/brands/:id", catalogHandler.DeleteBrand)

	admin.POST("/companies", catalogHandler.CreateCompany)
	admin.PUT("/companies/:id", catalogHandler.UpdateCompany)
	admin.DELETE("/companies/:id", catalogHandler.DeleteCompany)

	admin.POST("/markets", catalogHandler.CreateMarket)
	admin.PUT("/markets/:id", catalogHandler.UpdateMarket)
	admin.DELETE("/markets/:id", catalogHandler.DeleteMarket)

	admin.POST("/categories", catalogHandler.CreateCategory)
	admin.PUT("/categories/:id", catalogHandler.UpdateCategory)
	admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)

	// Kind-generic guard endpoints
	admin.GET("/catalog/:kind/:id/usage", catalogHandler.CheckParentUsage)
	admin.DELETE("/catalog/:kind/:id", catalogHandler.DeleteParent)
}
