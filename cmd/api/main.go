package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"bazarly/internal/adapter/api"
	"bazarly/internal/adapter/api/handler"
	apimiddleware "bazarly/internal/adapter/api/middleware"
	"bazarly/internal/adapter/api/router"
	"bazarly/internal/adapter/repository"
	"bazarly/internal/infrastructure/firebase"
	"bazarly/internal/infrastructure/ratelimit"
	"bazarly/internal/infrastructure/storage"
	"bazarly/internal/usecase"
	"bazarly/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Service account from environment variable (production) or file
	// path (local development).
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		if _, err := os.Stat(cfg.ServiceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", cfg.ServiceAccountPath)
		}
		opt = option.WithCredentialsFile(cfg.ServiceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(
		ctx,
		cfg.StorageBucket,
		cfg.FirebaseProject,
		cfg.ServiceAccountPath,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	storeRepo := repository.NewFirestoreStoreRepository(firestoreClient)
	brandRepo := repository.NewFirestoreBrandRepository(firestoreClient)
	companyRepo := repository.NewFirestoreCompanyRepository(firestoreClient)
	marketRepo := repository.NewFirestoreMarketRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	giftRepo := repository.NewFirestoreGiftRepository(firestoreClient)
	adRepo := repository.NewFirestoreAdRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	catalogUseCase := usecase.NewCatalogUseCase(storeRepo, brandRepo, companyRepo, marketRepo, categoryRepo, productRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, storeRepo, brandRepo, categoryRepo)
	giftUseCase := usecase.NewGiftUseCase(giftRepo)
	adUseCase := usecase.NewAdUseCase(adRepo, productRepo, storeRepo)
	engagementUseCase := usecase.NewEngagementUseCase(userRepo, productRepo)

	handler.Setup(authUseCase, catalogUseCase, productUseCase, giftUseCase, adUseCase, engagementUseCase, storageClient)
	handler.SetupHealthHandler(firebaseAuthClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	engagementLimiter := ratelimit.NewRateLimiter(
		cfg.ViewRateLimit,
		cfg.ViewRateLimit,
		time.Duration(cfg.ViewRateWindowSec)*time.Second,
	)

	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			engagementLimiter.Cleanup(30 * time.Minute)
		}
	}()

	router.Setup(e, authMiddleware, adminMiddleware, engagementLimiter)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
