// Package accounts owns the set of accounts and their lookup.
package accounts

import (
	"context"

	"bankledger/internal/apperr"
	"bankledger/internal/models"
	"bankledger/internal/store"

	"go.uber.org/zap"
)

// Repository is the persistence collaborator for accounts.
type Repository interface {
	FindByID(ctx context.Context, id uint) (*models.Account, error)
	FindByOwnerName(ctx context.Context, name string) (*models.Account, error)
	FindAll(ctx context.Context, page store.PageRequest) (store.Page[models.Account], error)
	Save(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, id uint) error
}

type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) ListAll(ctx context.Context, page store.PageRequest) (store.Page[models.Account], error) {
	s.log.Info("listing accounts")
	result, err := s.repo.FindAll(ctx, page)
	if err != nil {
		s.log.Error("failed to list accounts", zap.Error(err))
		return store.Page[models.Account]{}, err
	}
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	s.log.Info("getting account by id", zap.Uint("id", id))
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("failed to get account by id", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (s *Service) GetByOwnerName(ctx context.Context, ownerName string) (*models.Account, error) {
	if err := validateOwnerName(ownerName); err != nil {
		return nil, err
	}
	s.log.Info("getting account by owner name", zap.String("ownerName", ownerName))
	account, err := s.repo.FindByOwnerName(ctx, ownerName)
	if err != nil {
		s.log.Error("failed to get account by owner name", zap.String("ownerName", ownerName), zap.Error(err))
		return nil, err
	}
	return account, nil
}

// Create validates the owner name before touching the repository; the
// id is assigned on persistence.
func (s *Service) Create(ctx context.Context, ownerName string) (*models.Account, error) {
	if err := validateOwnerName(ownerName); err != nil {
		return nil, err
	}
	s.log.Info("creating account", zap.String("ownerName", ownerName))
	account := &models.Account{OwnerName: ownerName}
	if err := s.repo.Save(ctx, account); err != nil {
		s.log.Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// Delete is unconditional: no check is made that the account has zero
// movements, and surviving movements keep their account id.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := validateID(id); err != nil {
		return err
	}
	s.log.Info("deleting account", zap.Uint("id", id))
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete account", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func validateID(id uint) error {
	if id == 0 {
		return apperr.New(apperr.ValidationFailed, "account id must be positive")
	}
	return nil
}

func validateOwnerName(name string) error {
	if name == "" {
		return apperr.New(apperr.ValidationFailed, "owner name cannot be empty")
	}
	return nil
}
