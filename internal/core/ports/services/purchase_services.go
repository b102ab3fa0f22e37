package services

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/core/domain"
	"github.com/bizledger/bizledger_app/internal/dto"
)

// PurchaseSvcFacade defines operations on the caller's tenant purchases.
type PurchaseSvcFacade interface {
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.Purchase, error)
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context, limit, offset int) ([]domain.Purchase, error)
	UpdatePurchase(ctx context.Context, purchaseID string, req dto.UpdatePurchaseRequest, updaterUserID string) (*domain.Purchase, error)
	DeletePurchase(ctx context.Context, purchaseID string, deleterUserID string) error
}
