package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizledger/bizledger_app/internal/apperrors"
	"github.com/bizledger/bizledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/bizledger_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/bizledger_app/internal/core/ports/services"
	"github.com/bizledger/bizledger_app/internal/dto"
	"github.com/bizledger/bizledger_app/internal/tenantctx"
	"github.com/google/uuid"
)

// expenseServiceImpl implements the ExpenseSvcFacade interface
type expenseServiceImpl struct {
	BaseService
	expenseRepo  portsrepo.ExpenseRepositoryWithTx
	currencyRepo portsrepo.CurrencyReader
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryWithTx, currencyRepo portsrepo.CurrencyReader) portssvc.ExpenseSvcFacade {
	return &expenseServiceImpl{
		expenseRepo:  expenseRepo,
		currencyRepo: currencyRepo,
	}
}

// Ensure expenseServiceImpl implements the ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseServiceImpl)(nil)

func (s *expenseServiceImpl) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	tenantID, err := tenantctx.MustTenantID(ctx)
	if err != nil {
		return nil, err
	}

	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, apperrors.NewValidationFailedError("expense amount must be positive")
	}

	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("currency %s is not configured", req.CurrencyCode))
		}
		return nil, err
	}

	now := time.Now()
	incurredAt := now
	if req.IncurredAt != nil {
		incurredAt = *req.IncurredAt
	}

	expense := domain.Expense{
		ExpenseID:    uuid.NewString(),
		TenantID:     tenantID,
		Category:     req.Category,
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		Note:         req.Note,
		IncurredAt:   incurredAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense recorded", slog.String("expense_id", expense.ExpenseID))
	return &expense, nil
}

func (s *expenseServiceImpl) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

func (s *expenseServiceImpl) ListExpenses(ctx context.Context, limit, offset int) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func (s *expenseServiceImpl) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.Expense, error) {
	if err := s.VerifyTenantOwnership(ctx, s.expenseRepo, expenseID); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() || req.Amount.IsZero() {
			return nil, apperrors.NewValidationFailedError("expense amount must be positive")
		}
		expense.Amount = *req.Amount
	}
	if req.Note != nil {
		expense.Note = *req.Note
	}
	if req.IncurredAt != nil {
		expense.IncurredAt = *req.IncurredAt
	}
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = updaterUserID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, err
	}

	return expense, nil
}

func (s *expenseServiceImpl) DeleteExpense(ctx context.Context, expenseID string, deleterUserID string) error {
	if err := s.VerifyTenantOwnership(ctx, s.expenseRepo, expenseID); err != nil {
		return err
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return err
	}

	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID), slog.String("deleted_by", deleterUserID))
	return nil
}
