package seed

import (
	"time"

	"bankledger/internal/logger"
	"bankledger/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	adminEmail    = "admin@bankledger.local"
	adminPassword = "password123"
)

var demoOwners = []string{
	"Fulano",
	"Sicrano",
	"Beltrano",
}

// Run installs the admin login and a small demo ledger. It is
// idempotent: a second start against the same database is a no-op.
func Run(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		logger.Log.Fatal("seed check failed", zap.Error(err))
	}
	if count > 0 {
		logger.Log.Info("seed already applied, skipping")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Fatal("failed to hash seed password", zap.Error(err))
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		admin := models.User{Name: "Admin", Email: adminEmail, Password: string(hash)}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		accounts := make([]models.Account, 0, len(demoOwners))
		for _, owner := range demoOwners {
			account := models.Account{OwnerName: owner}
			if err := tx.Create(&account).Error; err != nil {
				return err
			}
			accounts = append(accounts, account)
		}

		now := time.Now()
		movements := []models.Movement{
			{
				Timestamp:        now.AddDate(0, -1, 0),
				Amount:           decimal.RequireFromString("100.00"),
				Kind:             models.KindDeposit,
				CounterpartyName: accounts[0].OwnerName,
				AccountID:        accounts[0].ID,
			},
			{
				Timestamp:        now.AddDate(0, 0, -10),
				Amount:           decimal.RequireFromString("30.00"),
				Kind:             models.KindWithdrawal,
				CounterpartyName: accounts[0].OwnerName,
				AccountID:        accounts[0].ID,
			},
			{
				Timestamp:        now.AddDate(0, 0, -3),
				Amount:           decimal.RequireFromString("20.00"),
				Kind:             models.KindTransfer,
				CounterpartyName: accounts[1].OwnerName,
				AccountID:        accounts[0].ID,
			},
		}
		for i := range movements {
			if err := tx.Create(&movements[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Log.Fatal("seed failed", zap.Error(err))
	}
	logger.Log.Info("seeded admin user and demo ledger", zap.String("email", adminEmail))
}
