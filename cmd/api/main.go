package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	config "github.com/Juantrevi/Backend-Learning-Management-System/configs"
	"github.com/Juantrevi/Backend-Learning-Management-System/database"
	"github.com/Juantrevi/Backend-Learning-Management-System/handlers"
	"github.com/Juantrevi/Backend-Learning-Management-System/jobs"
	"github.com/Juantrevi/Backend-Learning-Management-System/payments"
	"github.com/Juantrevi/Backend-Learning-Management-System/repository"
	"github.com/Juantrevi/Backend-Learning-Management-System/routes"
	"github.com/Juantrevi/Backend-Learning-Management-System/services"
	"github.com/Juantrevi/Backend-Learning-Management-System/websocket"
)

func main() {
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("🔥 Database connection failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 Database migration failed: %v", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Printf("⚠️ Admin seeding failed: %v", err)
	}
	if err := database.SeedCountries(db); err != nil {
		log.Printf("⚠️ Country seeding failed: %v", err)
	}

	store := repository.NewStore(db)
	courseCache := repository.NewCourseCache(config.Config("REDIS_ADDR"), config.Config("REDIS_PASSWORD"))
	hub := websocket.NewHub()

	paypal := payments.NewPayPalService()
	stripe := payments.NewStripeService()

	cartService := services.NewCartService(store)
	checkoutService := services.NewCheckoutService(store)
	couponService := services.NewCouponService(store)
	paymentService := services.NewPaymentService(store, map[string]services.PaymentVerifier{
		"paypal": paypal,
		"stripe": stripe,
	}, stripe)
	catalogService := services.NewCatalogService(store, courseCache)
	userService := services.NewUserService(store)
	studentService := services.NewStudentService(store, hub)
	teacherService := services.NewTeacherService(store)

	c := cron.New()
	c.AddJob("0 3 * * *", jobs.NewCartPurgeJob(store))
	go c.Start()
	log.Println("✅ Cron job for cart cleanup scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "Course Marketplace",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Course Marketplace API",
		})
	})

	courseHandler := handlers.NewCourseHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(checkoutService, couponService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	userHandler := handlers.NewUserHandler(userService)
	studentHandler := handlers.NewStudentHandler(studentService)
	communityHandler := handlers.NewCommunityHandler(studentService, hub)
	teacherHandler := handlers.NewTeacherHandler(teacherService, catalogService)

	routes.StoreRoutes(app, courseHandler, cartHandler, orderHandler, paymentHandler)
	routes.AuthRoutes(app, userHandler)
	routes.StudentRoutes(app, studentHandler, communityHandler)
	routes.TeacherRoutes(app, teacherHandler)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
