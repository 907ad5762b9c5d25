package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"bazarly/internal/adapter/repository"
	"bazarly/internal/usecase"
	"bazarly/pkg/config"
)

// Recomputes every product's engagement counters from the per-user
// records. Run after incidents or on a schedule to repair drift left
// by partial like/view/review writes.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		opt = option.WithCredentialsFile(cfg.ServiceAccountPath)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)

	engagementUseCase := usecase.NewEngagementUseCase(userRepo, productRepo)

	summary, err := engagementUseCase.RecomputeAll(ctx)
	if err != nil {
		log.Fatalf("Recompute failed: %v", err)
	}

	log.Printf("Recompute finished: scanned=%d repaired=%d failed=%d",
		summary.Scanned, summary.Repaired, summary.Failed)
}
