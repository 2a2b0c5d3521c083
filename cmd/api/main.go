package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	handlerHttp "github.com/lkohler/citysignal/internal/handler/http"
	"github.com/lkohler/citysignal/internal/infrastructure/config"
	"github.com/lkohler/citysignal/internal/infrastructure/database"
	"github.com/lkohler/citysignal/internal/infrastructure/logger"
	"github.com/lkohler/citysignal/internal/infrastructure/repository/mongodb"
	appvalidator "github.com/lkohler/citysignal/internal/infrastructure/validator"
	"github.com/lkohler/citysignal/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.NewConfig()

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Report binding errors under JSON field names
	appvalidator.UseJSONFieldNames()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(cfg.DatabaseName)
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	issueRepo := mongodb.NewMongoIssueRepository(db)

	// The unique username index is what closes the duplicate-creation race.
	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		cancel()
		log.Fatalf("Failed to create indexes: %v", err)
	}
	cancel()

	// Dependency Injection: Usecases
	appLogger := logger.NewStdLogger()
	userUsecase := usecase.NewUserUsecase(userRepo, issueRepo, appLogger)
	issueUsecase := usecase.NewIssueUsecase(issueRepo, userRepo, appLogger)

	// Setup API routes
	router := gin.Default()
	appRouter := handlerHttp.NewRouter(userUsecase, issueUsecase, cfg.AppBaseURL)
	appRouter.SetupRoutes(router)

	// Start the server
	log.Printf("Server running on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
