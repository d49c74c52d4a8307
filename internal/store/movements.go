package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bankledger/internal/apperr"
	"bankledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Movements is the gorm-backed movement repository. Every list variant
// treats an empty page as MovementNotFound rather than an empty
// success, and the sum queries do the same for a NULL sum; callers rely
// on being able to tell "no rows" apart from a fault.
type Movements struct {
	db *gorm.DB
}

func NewMovements(db *gorm.DB) *Movements {
	return &Movements{db: db}
}

func (r *Movements) FindByID(ctx context.Context, id uint) (*models.Movement, error) {
	var movement models.Movement
	err := r.db.WithContext(ctx).Preload("Account").First(&movement, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.MovementNotFound, fmt.Sprintf("movement %d not found", id))
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.PersistenceFailure, "find movement by id", err)
	}
	return &movement, nil
}

func (r *Movements) Save(ctx context.Context, movement *models.Movement) error {
	// Omit the association: the movement references its account, it
	// never writes it.
	if err := r.db.WithContext(ctx).Omit("Account").Save(movement).Error; err != nil {
		return apperr.Wrap(apperr.PersistenceFailure, "save movement", err)
	}
	return nil
}

// Delete mirrors the upstream repository contract; no route reaches it.
func (r *Movements) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Movement{}, id)
	if res.Error != nil {
		return apperr.Wrap(apperr.PersistenceFailure, "delete movement", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.MovementNotFound, fmt.Sprintf("movement %d not found", id))
	}
	return nil
}

func (r *Movements) FindAll(ctx context.Context, page PageRequest) (Page[models.Movement], error) {
	return r.paged(ctx, page, func(q *gorm.DB) *gorm.DB { return q }, "movements")
}

func (r *Movements) FindByPeriod(ctx context.Context, page PageRequest, from, to time.Time) (Page[models.Movement], error) {
	return r.paged(ctx, page, func(q *gorm.DB) *gorm.DB {
		return q.Where("timestamp BETWEEN ? AND ?", from, to)
	}, "movements in period")
}

func (r *Movements) FindByOperator(ctx context.Context, page PageRequest, operatorName string) (Page[models.Movement], error) {
	return r.paged(ctx, page, func(q *gorm.DB) *gorm.DB {
		return q.Where("counterparty_name = ?", operatorName)
	}, "movements for operator")
}

func (r *Movements) FindByOperatorAndPeriod(ctx context.Context, page PageRequest, operatorName string, from, to time.Time) (Page[models.Movement], error) {
	return r.paged(ctx, page, func(q *gorm.DB) *gorm.DB {
		return q.Where("counterparty_name = ?", operatorName).
			Where("timestamp BETWEEN ? AND ?", from, to)
	}, "movements for operator in period")
}

func (r *Movements) FindByAccount(ctx context.Context, page PageRequest, accountID uint) (Page[models.Movement], error) {
	return r.paged(ctx, page, func(q *gorm.DB) *gorm.DB {
		return q.Where("account_id = ?", accountID)
	}, "movements for account")
}

// SumByPeriod totals movement amounts in [from, to]. Deposits are
// excluded: they inflate holdings without representing money moved by
// an operator, and summing them would double count inbound funds.
func (r *Movements) SumByPeriod(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return r.sum(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("timestamp BETWEEN ? AND ?", from, to)
	}, "period")
}

// SumByAccount totals one account's movement amounts, with the same
// deposit exclusion as SumByPeriod.
func (r *Movements) SumByAccount(ctx context.Context, accountID uint) (decimal.Decimal, error) {
	return r.sum(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("account_id = ?", accountID)
	}, "account")
}

func (r *Movements) paged(ctx context.Context, page PageRequest, scope func(*gorm.DB) *gorm.DB, what string) (Page[models.Movement], error) {
	var total int64
	if err := scope(r.db.WithContext(ctx).Model(&models.Movement{})).Count(&total).Error; err != nil {
		return Page[models.Movement]{}, apperr.Wrap(apperr.PersistenceFailure, "count "+what, err)
	}

	var items []models.Movement
	err := scope(r.db.WithContext(ctx).Preload("Account")).
		Order(page.order()).
		Limit(page.limit()).
		Offset(page.offset()).
		Find(&items).Error
	if err != nil {
		return Page[models.Movement]{}, apperr.Wrap(apperr.PersistenceFailure, "list "+what, err)
	}
	if len(items) == 0 {
		return Page[models.Movement]{}, apperr.New(apperr.MovementNotFound, "no "+what+" found")
	}

	return Page[models.Movement]{Items: items, TotalItems: total, Page: page.page(), Size: page.limit()}, nil
}

func (r *Movements) sum(ctx context.Context, scope func(*gorm.DB) *gorm.DB, what string) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	row := scope(r.db.WithContext(ctx).Model(&models.Movement{})).
		Where("kind <> ?", models.KindDeposit).
		Select("SUM(amount)").
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Decimal{}, apperr.Wrap(apperr.PersistenceFailure, "sum movements by "+what, err)
	}
	if !total.Valid {
		return decimal.Decimal{}, apperr.New(apperr.MovementNotFound, "no movements found for "+what)
	}
	return total.Decimal, nil
}
