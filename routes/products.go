package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/omarghandour/clockyexpress/controllers/cart"
	couponControllers "github.com/omarghandour/clockyexpress/controllers/coupon"
	favoritesControllers "github.com/omarghandour/clockyexpress/controllers/favorites"
	orderControllers "github.com/omarghandour/clockyexpress/controllers/order"
	productcontroller "github.com/omarghandour/clockyexpress/controllers/product"
	ratingsControllers "github.com/omarghandour/clockyexpress/controllers/ratings"
	"github.com/omarghandour/clockyexpress/middleware"
	"gorm.io/gorm"
)

// SetupProductRoutes registers the "/products/*" endpoints: catalog browsing,
// cart, checkout, favorites, ratings and coupons. Catalog mutations and order
// administration sit behind the admin gate.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	admin := middleware.AdminGate(db)

	products := r.Group("/products")
	{
		// ─────────── Catalog ───────────
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/brand/:brand", productcontroller.GetByBrand(db))
		products.GET("/search", productcontroller.SearchProducts(db))
		products.GET("/featured", productcontroller.GetFeatured(db))
		products.GET("/newArrival", productcontroller.GetNewArrivals(db))
		products.GET("/gender", productcontroller.GetByGender(db))
		products.GET("/unique-filters", productcontroller.GetUniqueFilters(db))
		products.GET("/:id", productcontroller.GetProductByID(db))

		products.POST("", admin, productcontroller.CreateProduct(db))
		products.PUT("/:id", admin, productcontroller.UpdateProduct(db))
		products.DELETE("/:id", admin, productcontroller.DeleteProduct(db))
		products.GET("/export-excel", admin, productcontroller.ExportProductsToExcel(db))
		products.POST("/import-excel", admin, productcontroller.ImportProductsFromExcel(db))

		// ─────────── Shopping Cart ───────────
		products.GET("/cart/:userId", cartControllers.GetCart(db))
		products.POST("/cart/:userId", cartControllers.ReplaceCart(db))
		products.PUT("/cart/:userId", cartControllers.ApplyQuantityDelta(db))
		products.POST("/cart/add/one", cartControllers.AddOne(db))
		products.POST("/cart/all/:userId", cartControllers.MergeCart(db))

		// ─────────── Checkout & Orders ───────────
		products.POST("/checkout", orderControllers.CreateCheckout(db))
		products.GET("/orders/all", admin, orderControllers.GetAllOrders(db))
		products.PUT("/orders/:id", admin, orderControllers.UpdateOrderStatus(db))
		products.GET("/orders/ws", orderControllers.OrderWebSocket)

		// ─────────── Favorites ───────────
		products.POST("/favorites/:userId", favoritesControllers.AddFavorite(db))
		products.DELETE("/favorites/:userId", favoritesControllers.RemoveFavorite(db))
		products.GET("/favorites/:userId", favoritesControllers.GetFavorites(db))
		products.POST("/isFavorite/:userId", favoritesControllers.IsFavorite(db))

		// ─────────── Ratings ───────────
		products.GET("/:id/ratings", ratingsControllers.GetRatings(db))
		products.PATCH("/:id/ratings", ratingsControllers.UpsertRating(db))
		products.GET("/:id/rating", ratingsControllers.GetOwnRating(db))

		// ─────────── Coupons ───────────
		products.POST("/coupon", admin, couponControllers.CreateCoupon(db))
		products.POST("/coupon/apply", couponControllers.ApplyCoupon(db))
	}
}
