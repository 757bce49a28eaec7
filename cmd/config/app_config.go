package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"pawplate/internal/api/handlers"
	"pawplate/internal/api/routes"
	"pawplate/internal/middleware"
	"pawplate/internal/utils"
	"pawplate/internal/utils/storage"
	"pawplate/pkg/admin"
	"pawplate/pkg/cart"
	"pawplate/pkg/dog"
	"pawplate/pkg/ingredient"
	"pawplate/pkg/jwt"
	"pawplate/pkg/nutrition"
	"pawplate/pkg/order"
	"pawplate/pkg/payment"
	"pawplate/pkg/product"
	"pawplate/pkg/recommendation"
	"pawplate/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	cartStore := cart.NewStore()

	// Repository
	userRepository := user.NewUserRepository(db)
	productRepository := product.NewProductRepository(db)
	dogRepository := dog.NewDogRepository(db)
	nutritionRepository := nutrition.NewNutritionRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	orderRepository := order.NewOrderRepository(db)
	adminRepository := admin.NewAdminRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	paymentService := payment.NewPaymentService()
	userService := user.NewUserService(userRepository, jwtService)
	productService := product.NewProductService(productRepository, s3)
	dogService := dog.NewDogService(dogRepository, productRepository, nutritionRepository)
	nutritionService := nutrition.NewNutritionService(nutritionRepository, dogRepository)
	recommendationService := recommendation.NewRecommendationService(
		dogRepository,
		productRepository,
		ingredientRepository,
		nutritionRepository,
	)
	cartService := cart.NewCartService(cartStore, productRepository)
	orderService := order.NewOrderService(
		orderRepository,
		productRepository,
		userRepository,
		adminRepository,
		paymentService,
		cartStore,
	)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	adminService := admin.NewAdminService(adminRepository, userRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	dogHandler := handlers.NewDogHandler(dogService, validator)
	nutritionHandler := handlers.NewNutritionHandler(nutritionService, validator)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	adminHandler := handlers.NewAdminHandler(adminService, validator)

	// routes
	routesConfig := routes.Config{
		App:                   app,
		UserHandler:           userHandler,
		ProductHandler:        productHandler,
		DogHandler:            dogHandler,
		NutritionHandler:      nutritionHandler,
		RecommendationHandler: recommendationHandler,
		CartHandler:           cartHandler,
		OrderHandler:          orderHandler,
		IngredientHandler:     ingredientHandler,
		AdminHandler:          adminHandler,
		Middleware:            middlewares,
		JWTService:            jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
