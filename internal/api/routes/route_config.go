package routes

import (
	"github.com/gofiber/fiber/v2"

	"pawplate/domain"
	"pawplate/internal/api/handlers"
	"pawplate/internal/middleware"
	"pawplate/pkg/jwt"
)

type Config struct {
	App                   *fiber.App
	UserHandler           handlers.UserHandler
	ProductHandler        handlers.ProductHandler
	DogHandler            handlers.DogHandler
	NutritionHandler      handlers.NutritionHandler
	RecommendationHandler handlers.RecommendationHandler
	CartHandler           handlers.CartHandler
	OrderHandler          handlers.OrderHandler
	IngredientHandler     handlers.IngredientHandler
	AdminHandler          handlers.AdminHandler
	Middleware            middleware.Middleware
	JWTService            jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Products()
	c.Dogs()
	c.Nutrition()
	c.Recommendations()
	c.Cart()
	c.Orders()
	c.Ingredients()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService)
}

func (c *Config) User() {
	user := c.App.Group("/api/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.auth(), c.UserHandler.Me)
		user.Patch("/update", c.auth(), c.UserHandler.UpdateUser)
	}
}

func (c *Config) Products() {
	products := c.App.Group("/api/products")

	// Catalog is public; filter and sort via query parameters.
	products.Get("", c.ProductHandler.GetProducts)

	// Seller catalog management.
	seller := c.Middleware.RequireRoles(domain.RoleSeller, domain.RoleAdmin)
	products.Get("/my", c.auth(), seller, c.ProductHandler.GetMyProducts)
	products.Post("", c.auth(), seller, c.ProductHandler.AddProduct)
	products.Post("/upload-image", c.auth(), seller, c.ProductHandler.UploadProductImage)
	products.Put("/:id", c.auth(), seller, c.ProductHandler.UpdateProduct)
	products.Delete("/:id", c.auth(), seller, c.ProductHandler.DeleteProduct)

	products.Get("/:id", c.ProductHandler.GetProductDetails)
}

func (c *Config) Dogs() {
	dogs := c.App.Group("/api/dogs", c.auth())
	{
		dogs.Post("", c.DogHandler.AddDog)
		dogs.Get("/my", c.DogHandler.GetMyDogs)
		dogs.Get("/all", c.Middleware.RequireRoles(domain.RoleAdmin), c.DogHandler.GetAllDogs)
		dogs.Get("/:id", c.DogHandler.GetDogDetails)
		dogs.Put("/:id", c.DogHandler.UpdateDog)
		dogs.Delete("/:id", c.DogHandler.DeleteDog)
	}

	schedule := c.App.Group("/api/dogs/feeding-schedule", c.auth())
	{
		schedule.Post("/:dogId/add", c.DogHandler.AddScheduleEntry)
		schedule.Get("/:dogId", c.DogHandler.GetSchedule)
		schedule.Get("/:dogId/weekly-shopping", c.DogHandler.GetWeeklyShoppingList)
		schedule.Put("/:dogId/reminders", c.DogHandler.SaveReminders)
		schedule.Get("/:dogId/reminders", c.DogHandler.GetReminders)
	}
}

func (c *Config) Nutrition() {
	nutrition := c.App.Group("/api/nutrition", c.auth())
	{
		nutrition.Post("/plan", c.NutritionHandler.GeneratePlan)
		nutrition.Post("/save/:dogId", c.NutritionHandler.SavePlan)
		nutrition.Get("/plans/:dogId", c.NutritionHandler.GetPlans)
		nutrition.Delete("/plans/:dogId/:planId", c.NutritionHandler.DeletePlan)
	}
}

func (c *Config) Recommendations() {
	rec := c.App.Group("/api/recommendations", c.auth())
	{
		rec.Get("/:dogId/products", c.RecommendationHandler.GetRecommendedProducts)
		rec.Get("/:dogId/ingredients", c.RecommendationHandler.GetRecommendedIngredients)
	}
}

func (c *Config) Cart() {
	cart := c.App.Group("/api/cart", c.auth())
	{
		cart.Get("", c.CartHandler.GetCart)
		cart.Post("", c.CartHandler.AddToCart)
		cart.Put("", c.CartHandler.UpdateCartLine)
		cart.Delete("/clear", c.CartHandler.ClearCart)
		cart.Delete("/:productId", c.CartHandler.RemoveCartLine)
	}
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/orders", c.auth())
	{
		orders.Post("", c.OrderHandler.PlaceOrder)
		orders.Get("/my", c.OrderHandler.GetMyOrders)
		orders.Get("/all", c.Middleware.RequireRoles(domain.RoleAdmin), c.OrderHandler.GetAllOrders)
		orders.Get("/:id", c.OrderHandler.GetOrderDetails)
	}

	sellerOrders := c.App.Group("/api/seller-orders", c.auth(), c.Middleware.RequireRoles(domain.RoleSeller, domain.RoleAdmin))
	{
		sellerOrders.Get("/my", c.OrderHandler.GetSellerOrders)
		sellerOrders.Patch("/:id/status", c.OrderHandler.UpdateOrderStatus)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/ingredients")

	ingredients.Get("", c.IngredientHandler.GetIngredients)
	ingredients.Get("/:id", c.IngredientHandler.GetIngredientDetails)

	admin := c.Middleware.RequireRoles(domain.RoleAdmin)
	ingredients.Post("", c.auth(), admin, c.IngredientHandler.AddIngredient)
	ingredients.Put("/:id", c.auth(), admin, c.IngredientHandler.UpdateIngredient)
	ingredients.Delete("/:id", c.auth(), admin, c.IngredientHandler.DeleteIngredient)
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/admin", c.auth(), c.Middleware.RequireRoles(domain.RoleAdmin))
	{
		admin.Get("/stats", c.AdminHandler.GetStats)
		admin.Get("/users", c.AdminHandler.GetUsers)
		admin.Put("/users/:email/role", c.AdminHandler.UpdateUserRole)
		admin.Delete("/users/:email", c.AdminHandler.DeleteUser)
		admin.Post("/create-seller", c.AdminHandler.CreateSeller)
	}

	settings := c.App.Group("/api/settings", c.auth())
	{
		settings.Get("/commission", c.AdminHandler.GetCommission)
		settings.Put("/commission", c.Middleware.RequireRoles(domain.RoleAdmin), c.AdminHandler.UpdateCommission)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.OrderHandler.PaymentWebhook)
}
