package handler

import (
	"bazarly/internal/infrastructure/storage"
	"bazarly/internal/usecase"
)

var (
	authHandler       *AuthHandler
	catalogHandler    *CatalogHandler
	productHandler    *ProductHandler
	giftHandler       *GiftHandler
	adHandler         *AdHandler
	engagementHandler *EngagementHandler
	fileHandler       *FileHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	productUseCase *usecase.ProductUseCase,
	giftUseCase *usecase.GiftUseCase,
	adUseCase *usecase.AdUseCase,
	engagementUseCase *usecase.EngagementUseCase,
	storageClient *storage.CloudStorageClient,
) {
	authHandler = NewAuthHandler(authUseCase)
	catalogHandler = NewCatalogHandler(catalogUseCase)
	productHandler = NewProductHandler(productUseCase)
	giftHandler = NewGiftHandler(giftUseCase)
	adHandler = NewAdHandler(adUseCase)
	engagementHandler = NewEngagementHandler(engagementUseCase)
	fileHandler = NewFileHandler(storageClient)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetGiftHandler() *GiftHandler {
	return giftHandler
}

func GetAdHandler() *AdHandler {
	return adHandler
}

func GetEngagementHandler() *EngagementHandler {
	return engagementHandler
}

func GetFileHandler() *FileHandler {
	return fileHandler
}
