package routes

import (
	"academie_back_end/internal/handlers/academie"
	"academie_back_end/internal/handlers/boutique"
	"academie_back_end/internal/handlers/user"
	"academie_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// Auth
	api.POST("/auth/register", user.Register)
	api.POST("/auth/login", middleware.LoginRateLimit(), user.Login)
	api.GET("/auth/me", middleware.AuthRequired(), user.Me)
	api.POST("/auth/google/exchange", user.GoogleExchangeLogin)
	api.GET("/auth/:provider", user.BeginAuth)
	api.GET("/auth/:provider/callback", user.CallbackAuth)

	// Académie — public
	api.GET("/players", academie.ListPlayers)
	api.GET("/players/:id", academie.GetPlayer)
	api.GET("/news", academie.ListNews)
	api.GET("/news/search", academie.SearchNews)
	api.GET("/news/:slug", academie.GetNewsArticle)
	api.POST("/applications", middleware.FormRateLimit("application"), academie.SubmitApplication)
	api.POST("/visits", middleware.FormRateLimit("visit"), academie.SubmitVisitRequest)

	// Boutique — catalogue public
	api.GET("/products", boutique.ListProducts)
	api.GET("/products/search", boutique.SearchProducts)
	api.GET("/products/:id", boutique.GetProduct)
	api.GET("/shipping/options", boutique.GetShippingOptions)

	// Panier (connecté ou invité via X-Guest-Session)
	cart := api.Group("/cart", middleware.AuthOptional())
	cart.GET("", user.GetCart)
	cart.POST("", user.AddToCart)
	cart.PUT("", user.UpdateCartQuantity)
	cart.DELETE("/items/:productId", user.RemoveFromCart)
	cart.DELETE("", user.ClearCart)
	api.GET("/cart/ws", middleware.AuthOptional(), user.CartWebSocket)

	// Checkout (connecté ou invité)
	checkout := api.Group("/checkout", middleware.AuthOptional())
	checkout.POST("/start", boutique.StartCheckout)
	checkout.GET("/:sessionId", boutique.GetCheckoutState)
	checkout.POST("/:sessionId/actions", boutique.ApplyCheckoutAction)
	checkout.POST("/:sessionId/next", boutique.NextCheckoutStep)
	checkout.POST("/:sessionId/prev", boutique.PrevCheckoutStep)
	checkout.POST("/:sessionId/submit", boutique.SubmitCheckout)

	// Paiement Stripe
	api.POST("/payments/intent", middleware.AuthOptional(), boutique.CreatePaymentIntent)
	api.POST("/payments/webhook", boutique.StripeWebhook)

	// Espace client
	me := api.Group("/me", middleware.AuthRequired())
	me.GET("/orders", boutique.GetMyOrders)
	me.GET("/addresses", user.ListMyAddresses)
	me.POST("/addresses", user.CreateAddress)
	me.DELETE("/addresses/:id", user.DeleteAddress)
	api.GET("/orders/:number", middleware.AuthOptional(), boutique.GetOrderByNumber)

	// Back-office
	admin := api.Group("/admin", middleware.AuthRequired(), middleware.RequireAdmin())
	admin.POST("/products", boutique.CreateProduct)
	admin.PUT("/products/:id", boutique.UpdateProduct)
	admin.DELETE("/products/:id", boutique.DeleteProduct)
	admin.PUT("/orders/:id/status", boutique.UpdateOrderStatus)
	admin.POST("/players", academie.CreatePlayer)
	admin.PUT("/players/:id", academie.UpdatePlayer)
	admin.DELETE("/players/:id", academie.DeletePlayer)
	admin.GET("/applications", academie.ListApplications)
	admin.GET("/applications/:id", academie.GetApplication)
	admin.PUT("/applications/:id/status", academie.UpdateApplicationStatus)
	admin.GET("/visits", academie.ListVisitRequests)
	admin.PUT("/visits/:id/status", academie.UpdateVisitStatus)
	admin.POST("/news", academie.CreateNewsArticle)
	admin.PUT("/news/:id", academie.UpdateNewsArticle)
	admin.DELETE("/news/:id", academie.DeleteNewsArticle)
}
