// Package ledger builds and persists movements for the three operation
// kinds and serves the read and aggregate queries over the ledger.
package ledger

import (
	"context"
	"time"

	"bankledger/internal/models"
	"bankledger/internal/money"
	"bankledger/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MovementRepository is the persistence collaborator for movements.
type MovementRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Movement, error)
	Save(ctx context.Context, movement *models.Movement) error
	Delete(ctx context.Context, id uint) error
	FindAll(ctx context.Context, page store.PageRequest) (store.Page[models.Movement], error)
	FindByPeriod(ctx context.Context, page store.PageRequest, from, to time.Time) (store.Page[models.Movement], error)
	FindByOperator(ctx context.Context, page store.PageRequest, operatorName string) (store.Page[models.Movement], error)
	FindByOperatorAndPeriod(ctx context.Context, page store.PageRequest, operatorName string, from, to time.Time) (store.Page[models.Movement], error)
	FindByAccount(ctx context.Context, page store.PageRequest, accountID uint) (store.Page[models.Movement], error)
	SumByPeriod(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	SumByAccount(ctx context.Context, accountID uint) (decimal.Decimal, error)
}

// AccountLookup is the slice of the account repository the engine needs
// to resolve operation participants.
type AccountLookup interface {
	FindByID(ctx context.Context, id uint) (*models.Account, error)
}

type Service struct {
	movements MovementRepository
	accounts  AccountLookup
	log       *zap.Logger
	now       func() time.Time
}

func NewService(movements MovementRepository, accounts AccountLookup, log *zap.Logger) *Service {
	return &Service{movements: movements, accounts: accounts, log: log, now: time.Now}
}

// Transfer records a transfer of amount from the origin account to the
// destination account. The movement is written against the origin
// account only, with the destination owner's name as the counterparty
// label; no mirrored credit entry is created on the destination and the
// origin balance is never checked (apperr.InsufficientFunds exists in
// the taxonomy but nothing raises it).
func (s *Service) Transfer(ctx context.Context, amount *decimal.Decimal, originID, destinationID uint) (*models.Movement, error) {
	s.log.Info("performing transfer", zap.Uint("origin", originID), zap.Uint("destination", destinationID))

	amt, err := money.Normalize(amount)
	if err != nil {
		s.log.Error("transfer rejected", zap.Error(err))
		return nil, err
	}

	destination, err := s.accounts.FindByID(ctx, destinationID)
	if err != nil {
		s.log.Error("failed to resolve destination account", zap.Uint("destination", destinationID), zap.Error(err))
		return nil, err
	}
	origin, err := s.accounts.FindByID(ctx, originID)
	if err != nil {
		s.log.Error("failed to resolve origin account", zap.Uint("origin", originID), zap.Error(err))
		return nil, err
	}

	movement := &models.Movement{
		Timestamp:        s.now(),
		Amount:           amt,
		Kind:             models.KindTransfer,
		CounterpartyName: destination.OwnerName,
		AccountID:        origin.ID,
		Account:          *origin,
	}
	if err := s.movements.Save(ctx, movement); err != nil {
		s.log.Error("failed to save transfer", zap.Error(err))
		return nil, err
	}

	s.log.Info("transfer recorded", zap.Uint("movement", movement.ID))
	return movement, nil
}

// Deposit records a deposit into the destination account, labelled with
// the destination owner's own name.
func (s *Service) Deposit(ctx context.Context, amount *decimal.Decimal, destinationID uint) (*models.Movement, error) {
	s.log.Info("performing deposit", zap.Uint("destination", destinationID))
	return s.recordOwn(ctx, amount, destinationID, models.KindDeposit, "deposit")
}

// Withdraw records a withdrawal from the account. The balance is not
// checked before committing.
func (s *Service) Withdraw(ctx context.Context, amount *decimal.Decimal, accountID uint) (*models.Movement, error) {
	s.log.Info("performing withdrawal", zap.Uint("account", accountID))
	return s.recordOwn(ctx, amount, accountID, models.KindWithdrawal, "withdrawal")
}

func (s *Service) recordOwn(ctx context.Context, amount *decimal.Decimal, accountID uint, kind models.MovementKind, what string) (*models.Movement, error) {
	amt, err := money.Normalize(amount)
	if err != nil {
		s.log.Error(what+" rejected", zap.Error(err))
		return nil, err
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		s.log.Error("failed to resolve account for "+what, zap.Uint("account", accountID), zap.Error(err))
		return nil, err
	}

	movement := &models.Movement{
		Timestamp:        s.now(),
		Amount:           amt,
		Kind:             kind,
		CounterpartyName: account.OwnerName,
		AccountID:        account.ID,
		Account:          *account,
	}
	if err := s.movements.Save(ctx, movement); err != nil {
		s.log.Error("failed to save "+what, zap.Error(err))
		return nil, err
	}

	s.log.Info(what+" recorded", zap.Uint("movement", movement.ID))
	return movement, nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*models.Movement, error) {
	s.log.Info("getting movement by id", zap.Uint("id", id))
	movement, err := s.movements.FindByID(ctx, id)
	if err != nil {
		s.log.Error("failed to get movement by id", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return movement, nil
}

func (s *Service) ListAll(ctx context.Context, page store.PageRequest) (store.Page[models.Movement], error) {
	s.log.Info("listing all movements")
	return s.list(s.movements.FindAll(ctx, page))
}

// ListByPeriod filters by timestamp, both bounds inclusive.
func (s *Service) ListByPeriod(ctx context.Context, page store.PageRequest, from, to time.Time) (store.Page[models.Movement], error) {
	s.log.Info("listing movements by period", zap.Time("from", from), zap.Time("to", to))
	return s.list(s.movements.FindByPeriod(ctx, page, from, to))
}

// ListByOperator filters by exact match on the counterparty name.
func (s *Service) ListByOperator(ctx context.Context, page store.PageRequest, operatorName string) (store.Page[models.Movement], error) {
	s.log.Info("listing movements by operator", zap.String("operator", operatorName))
	return s.list(s.movements.FindByOperator(ctx, page, operatorName))
}

func (s *Service) ListByOperatorAndPeriod(ctx context.Context, page store.PageRequest, operatorName string, from, to time.Time) (store.Page[models.Movement], error) {
	s.log.Info("listing movements by operator and period",
		zap.String("operator", operatorName), zap.Time("from", from), zap.Time("to", to))
	return s.list(s.movements.FindByOperatorAndPeriod(ctx, page, operatorName, from, to))
}

func (s *Service) ListByAccount(ctx context.Context, page store.PageRequest, accountID uint) (store.Page[models.Movement], error) {
	s.log.Info("listing movements by account", zap.Uint("account", accountID))
	return s.list(s.movements.FindByAccount(ctx, page, accountID))
}

// SumAmountByPeriod totals the amounts moved in [from, to], excluding
// deposits.
func (s *Service) SumAmountByPeriod(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	s.log.Info("summing amounts by period", zap.Time("from", from), zap.Time("to", to))
	total, err := s.movements.SumByPeriod(ctx, from, to)
	if err != nil {
		s.log.Error("failed to sum amounts by period", zap.Error(err))
		return decimal.Decimal{}, err
	}
	return total, nil
}

// SumAmountByAccount totals one account's moved amounts, excluding
// deposits.
func (s *Service) SumAmountByAccount(ctx context.Context, accountID uint) (decimal.Decimal, error) {
	s.log.Info("summing amounts by account", zap.Uint("account", accountID))
	total, err := s.movements.SumByAccount(ctx, accountID)
	if err != nil {
		s.log.Error("failed to sum amounts by account", zap.Uint("account", accountID), zap.Error(err))
		return decimal.Decimal{}, err
	}
	return total, nil
}

func (s *Service) list(page store.Page[models.Movement], err error) (store.Page[models.Movement], error) {
	if err != nil {
		s.log.Error("failed to list movements", zap.Error(err))
		return store.Page[models.Movement]{}, err
	}
	return page, nil
}
