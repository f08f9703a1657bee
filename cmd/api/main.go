package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"porosemi/internal/adapter/api"
	"porosemi/internal/adapter/api/handler"
	apimiddleware "porosemi/internal/adapter/api/middleware"
	"porosemi/internal/adapter/api/router"
	"porosemi/internal/adapter/repository"
	"porosemi/internal/infrastructure/staging"
	"porosemi/internal/infrastructure/storage"
	"porosemi/internal/infrastructure/task"
	"porosemi/internal/usecase"
	"porosemi/pkg/config"
	"porosemi/pkg/logger"
)

const drainTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	credentialsPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	blobStore, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.PublicBaseURL, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer blobStore.Close()

	stagingStore, err := staging.NewCloudinaryClient(cfg.CloudinaryCloud, cfg.CloudinaryKey, cfg.CloudinarySecret)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	runner := task.NewRunner()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	achievementRepo := repository.NewFirestoreAchievementRepository(firestoreClient)
	profileRepo := repository.NewFirestoreProfileRepository(firestoreClient)
	toolRepo := repository.NewFirestoreToolRepository(firestoreClient)
	projectRepo := repository.NewFirestoreProjectRepository(firestoreClient)
	educationRepo := repository.NewFirestoreEducationRepository(firestoreClient)
	experienceRepo := repository.NewFirestoreExperienceRepository(firestoreClient)
	roleRepo := repository.NewFirestoreRoleRepository(firestoreClient)
	ratingRepo := repository.NewFirestoreRatingRepository(firestoreClient)
	contactRepo := repository.NewFirestoreContactRepository(firestoreClient)
	albumRepo := repository.NewFirestoreAlbumRepository(firestoreClient)

	pipeline := usecase.NewMediaPipelineUseCase(stagingStore, blobStore, runner, usecase.MediaPipelineConfig{
		StagingFolder:  cfg.StagingFolder,
		MaxUploadBytes: cfg.MaxUploadBytes,
		TargetSizeKB:   cfg.TargetSizeKB,
		StartQuality:   cfg.StartQuality,
		QualityStep:    cfg.QualityStep,
		QualityFloor:   cfg.QualityFloor,
		MaxAttempts:    cfg.MaxAttempts,
	})

	achievementUseCase := usecase.NewAchievementUseCase(achievementRepo, pipeline, blobStore)
	profileUseCase := usecase.NewProfileUseCase(profileRepo, pipeline, blobStore)
	toolUseCase := usecase.NewToolUseCase(toolRepo, pipeline, blobStore)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, pipeline, blobStore)
	educationUseCase := usecase.NewEducationUseCase(educationRepo, profileRepo)
	experienceUseCase := usecase.NewExperienceUseCase(experienceRepo)
	roleUseCase := usecase.NewRoleUseCase(roleRepo)
	ratingUseCase := usecase.NewRatingUseCase(ratingRepo)
	contactUseCase := usecase.NewContactUseCase(contactRepo)
	albumUseCase := usecase.NewAlbumUseCase(albumRepo, stagingStore, cfg.AlbumFolder, cfg.MaxUploadBytes)
	userUseCase := usecase.NewUserUseCase(userRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(achievementRepo, projectRepo, toolRepo, contactRepo, userRepo)

	handler.Setup(
		achievementUseCase,
		profileUseCase,
		toolUseCase,
		projectUseCase,
		educationUseCase,
		experienceUseCase,
		roleUseCase,
		ratingUseCase,
		contactUseCase,
		albumUseCase,
		userUseCase,
		dashboardUseCase,
	)
	handler.SetupFileHandler(blobStore)
	handler.SetupHealthHandler()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware)

	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down, draining pipeline runs")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown: %v", err)
	}

	// In-flight media runs get a grace period before the process exits.
	runner.Drain(drainTimeout)
}
