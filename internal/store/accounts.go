package store

import (
	"context"
	"errors"
	"fmt"

	"bankledger/internal/apperr"
	"bankledger/internal/models"

	"gorm.io/gorm"
)

// Accounts is the gorm-backed account repository.
type Accounts struct {
	db *gorm.DB
}

func NewAccounts(db *gorm.DB) *Accounts {
	return &Accounts{db: db}
}

func (r *Accounts) FindByID(ctx context.Context, id uint) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).First(&account, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.AccountNotFound, fmt.Sprintf("account %d not found", id))
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.PersistenceFailure, "find account by id", err)
	}
	return &account, nil
}

// FindByOwnerName matches a case-insensitive substring of the owner
// name. When several accounts match, the first by id is returned.
func (r *Accounts) FindByOwnerName(ctx context.Context, name string) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).
		Where("owner_name ILIKE ?", "%"+name+"%").
		Order("id asc").
		First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.AccountNotFound, "account not found for owner name "+name)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.PersistenceFailure, "find account by owner name", err)
	}
	return &account, nil
}

func (r *Accounts) FindAll(ctx context.Context, page PageRequest) (Page[models.Account], error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Account{}).Count(&total).Error; err != nil {
		return Page[models.Account]{}, apperr.Wrap(apperr.PersistenceFailure, "count accounts", err)
	}

	var items []models.Account
	err := r.db.WithContext(ctx).
		Order(page.order()).
		Limit(page.limit()).
		Offset(page.offset()).
		Find(&items).Error
	if err != nil {
		return Page[models.Account]{}, apperr.Wrap(apperr.PersistenceFailure, "list accounts", err)
	}
	if len(items) == 0 {
		return Page[models.Account]{}, apperr.New(apperr.AccountNotFound, "no accounts found")
	}

	return Page[models.Account]{Items: items, TotalItems: total, Page: page.page(), Size: page.limit()}, nil
}

func (r *Accounts) Save(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Save(account).Error; err != nil {
		return apperr.Wrap(apperr.PersistenceFailure, "save account", err)
	}
	return nil
}

// Delete removes the account unconditionally; movements recorded
// against it are left in place.
func (r *Accounts) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Account{}, id)
	if res.Error != nil {
		return apperr.Wrap(apperr.PersistenceFailure, "delete account", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.AccountNotFound, fmt.Sprintf("account %d not found", id))
	}
	return nil
}
