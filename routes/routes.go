package routes

import (
	"log"

	"apparel-shop/config"
	"apparel-shop/controllers"
	"apparel-shop/libs"
	"apparel-shop/middleware"
	"apparel-shop/repositories"
	"apparel-shop/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	cartRepo := repositories.NewRedisCartRepository(config.RedisClient)
	wishlistRepo := repositories.NewRedisWishlistRepository(config.RedisClient)
	sessionRepo := repositories.NewRedisCheckoutSessionRepository(config.RedisClient, config.AppConfig.CheckoutSessionTTL)
	orderRepo := repositories.NewMongoOrderRepository(config.MongoDB)
	productRepo := repositories.NewMongoProductRepository(config.MongoDB)
	userRepo := repositories.NewMongoUserRepository(config.MongoDB)

	notificationService, err := services.NewNotificationService()
	if err != nil {
		log.Printf("Email delivery disabled: %v", err)
	}
	var emailSender services.EmailSender
	var orderNotifier services.OrderNotifier
	if notificationService != nil {
		emailSender = notificationService
		orderNotifier = notificationService
	}

	var gateway services.PaymentGateway
	if rzp, err := libs.NewRazorpayGateway(); err != nil {
		log.Printf("Payment gateway disabled: %v", err)
	} else {
		gateway = rzp
	}

	cloudinary, err := libs.NewCloudinaryService()
	if err != nil {
		log.Printf("Image uploads disabled: %v", err)
	}

	cartService := services.NewCartService(cartRepo)
	wishlistService := services.NewWishlistService(wishlistRepo)
	productService := services.NewProductService(productRepo)
	authService := services.NewAuthService(userRepo, notificationService)
	orderService := services.NewOrderService(orderRepo, emailSender)
	checkoutService := services.NewCheckoutService(cartService, orderRepo, sessionRepo, gateway, orderNotifier)

	authCtrl := controllers.NewAuthController(authService)
	productCtrl := controllers.NewProductController(productService, cloudinary)
	cartCtrl := controllers.NewCartController(cartService)
	wishlistCtrl := controllers.NewWishlistController(wishlistService)
	checkoutCtrl := controllers.NewCheckoutController(checkoutService)
	orderCtrl := controllers.NewOrderController(orderService)
	paymentCtrl := controllers.NewPaymentController(gateway)
	notificationCtrl := controllers.NewNotificationController(emailSender)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:productId", cartCtrl.UpdateQuantity)
		auth.DELETE("/cart/items/:productId", cartCtrl.RemoveItem)
		auth.DELETE("/cart", cartCtrl.ClearCart)

		auth.GET("/wishlist", wishlistCtrl.GetWishlist)
		auth.POST("/wishlist/toggle", wishlistCtrl.Toggle)
		auth.DELETE("/wishlist/:productId", wishlistCtrl.Remove)

		auth.POST("/checkout", checkoutCtrl.Checkout)
		auth.POST("/checkout/confirm", checkoutCtrl.ConfirmPayment)

		auth.GET("/orders", orderCtrl.GetMyOrders)
		auth.GET("/orders/:id", orderCtrl.GetOrderByID)

		auth.POST("/payment/create-order", paymentCtrl.CreatePaymentOrder)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)
		admin.POST("/products/:id/image", productCtrl.UploadProductImage)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)

		admin.POST("/notifications/send", notificationCtrl.SendEmail)
	}
}
