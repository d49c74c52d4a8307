package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model `json:"-"`
	Name       string `gorm:"size:50;not null" json:"name"`
	Email      string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password   string `gorm:"size:255" json:"-"`
}

// Account deliberately has no DeletedAt: deletion is irreversible, not a
// soft delete.
type Account struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	OwnerName string `gorm:"size:100;not null" json:"ownerName"`
}

// MovementKind is the closed set of ledger operation kinds.
type MovementKind string

const (
	KindTransfer   MovementKind = "TRANSFER"
	KindDeposit    MovementKind = "DEPOSIT"
	KindWithdrawal MovementKind = "WITHDRAWAL"
)

// Movement is a single ledger entry: one monetary event recorded against
// one account. CounterpartyName is the free-text operator label; for a
// transfer it holds the destination owner's name.
type Movement struct {
	ID               uint            `gorm:"primarykey" json:"id"`
	Timestamp        time.Time       `gorm:"index;not null" json:"timestamp"`
	Amount           decimal.Decimal `gorm:"type:numeric(22,2);not null" json:"amount"`
	Kind             MovementKind    `gorm:"size:16;index;not null" json:"kind"`
	CounterpartyName string          `gorm:"size:100;index" json:"counterpartyName"`
	AccountID        uint            `gorm:"index;not null" json:"-"`
	Account          Account         `json:"account"`
}
