package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"c2hr/internal/auth"
	"c2hr/internal/cache"
	"c2hr/internal/config"
	"c2hr/internal/db"
	"c2hr/internal/handler"
	"c2hr/internal/model"
	"c2hr/internal/repository"
	"c2hr/internal/router"
	"c2hr/internal/service"
)

// @title Recruitment Platform API
// @version 1.0
// @description Role-based recruitment platform connecting candidates, employers, and consultants around job postings.
// @host localhost:5002
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Bookmark{},
			&model.Application{},
			&model.Company{},
			&model.Job{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Job{},
		&model.Application{},
		&model.Bookmark{},
		&model.Company{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)
	applicationRepo := repository.NewApplicationRepository(gormDB)
	bookmarkRepo := repository.NewBookmarkRepository(gormDB)
	companyRepo := repository.NewCompanyRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	jobService := service.NewJobService(jobRepo, cacheClient)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, jobRepo)
	companyService := service.NewCompanyService(companyRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	jobHandler := handler.NewJobHandler(jobService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)
	companyHandler := handler.NewCompanyHandler(companyService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		userRepo,
		authHandler,
		userHandler,
		jobHandler,
		applicationHandler,
		bookmarkHandler,
		companyHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
