package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"lms/config"
	authController "lms/controllers/auth"
	controllers "lms/controllers/course"
	healthController "lms/controllers/health"
	userController "lms/controllers/user"
	"lms/database"
	"lms/middleware"
	"lms/repository"
	authRoutes "lms/routers/authRoutes"
	courseRoutes "lms/routers/courseRoutes"
	healthRoutes "lms/routers/healthRoutes"
	userRoutes "lms/routers/userRoutes"
	"lms/services/supabase"
	"lms/utils"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	users := repository.NewUserRepository(db)
	courses := repository.NewCourseRepository(db)
	modules := repository.NewModuleRepository(db)
	lessons := repository.NewLessonRepository(db)

	auth := middleware.NewAuth(users, cfg)
	mail := utils.NewEmailService(cfg)
	sb := supabase.NewClient(cfg)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOriginList(), ","),
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	healthRoutes.SetupHealthRoutes(app, healthController.New(cfg, sb))
	authRoutes.SetupAuthRoutes(app, authController.New(users, cfg, mail), auth)
	userRoutes.SetupUserRoutes(app, userController.New(users), auth)
	courseRoutes.SetupCourseRoutes(app, controllers.New(courses, modules, lessons), auth)

	// Dispose the engine once on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("Server is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}

	database.Close(db)
}
