package storefront_routes

import (
	store_filter "github.com/abduulthecoder/fam-vans-parts-store/controllers/storefront/filter_controller"
	store_product "github.com/abduulthecoder/fam-vans-parts-store/controllers/storefront/product_controller"
	store_van "github.com/abduulthecoder/fam-vans-parts-store/controllers/storefront/van_controller"
	store_wishlist "github.com/abduulthecoder/fam-vans-parts-store/controllers/storefront/wishlist_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts) // List with van match + filters
		products.GET("/:partNumber", store_product.GetStorefrontProductByPartNumber)
	}

	// Van selector routes
	vans := store.Group("/vans")
	{
		vans.GET("/years", store_van.GetVanYears)
		vans.GET("/makes", store_van.GetVanMakes)
		vans.GET("/models", store_van.GetVanModels)
		vans.GET("/variations", store_van.GetVanVariations)
	}

	// Wishlist routes
	wishlist := store.Group("/wishlist")
	{
		wishlist.GET("", store_wishlist.GetWishlist)
		wishlist.POST("", store_wishlist.AddWishlistItem)
		wishlist.DELETE("", store_wishlist.ClearWishlist)
		wishlist.DELETE("/:partNumber", store_wishlist.RemoveWishlistItem)
		wishlist.GET("/quote", store_wishlist.GetWishlistQuote)
		wishlist.GET("/quote/pdf", store_wishlist.DownloadWishlistQuotePDF)
	}

	store.GET("/filters/metadata", store_filter.GetFilterMetadata)
}
