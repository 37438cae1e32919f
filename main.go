package main

import (
	"log"

	"avacademy/config"
	"avacademy/database"
	adminRoutes "avacademy/routers/adminRoutes"
	aiRoutes "avacademy/routers/aiRoutes"
	authRoutes "avacademy/routers/authRoutes"
	contentRoutes "avacademy/routers/contentRoutes"
	courseRoutes "avacademy/routers/courseRoutes"
	userRoutes "avacademy/routers/userRoutes"
	"avacademy/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	database.EnsureAdminUser()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.ClientURL,
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded thumbnails
	app.Static("/uploads", "./public/uploads")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	contentRoutes.SetupContentRoutes(app)
	userRoutes.SetupUserRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	aiRoutes.SetupAiRoutes(app)

	utils.InitializeReconcileScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
