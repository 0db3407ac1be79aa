package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Income is money received by the user.
//
// On creation and on every change of the amount, the share of each
// category is frozen in Categories.
type Income struct {
	DefaultModel
	OwnerID     uuid.UUID       `json:"ownerId" gorm:"index" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"2500"`
	Description string          `json:"description" example:"Salary"`
	Date        time.Time       `json:"date" example:"2024-03-01T00:00:00Z"`
	Categories  []IncomeTarget  `json:"categories" gorm:"constraint:OnDelete:CASCADE"`
}

// IncomeTarget is the amount of an income allocated to a category at the
// time the income was recorded.
type IncomeTarget struct {
	DefaultModel
	IncomeID        uuid.UUID       `json:"-"`
	CategoryID      uuid.UUID       `json:"categoryId" gorm:"index" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	TargetAmount    decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(20,8)" example:"637.5"`
	RemainingAmount decimal.Decimal `json:"remainingAmount" gorm:"type:DECIMAL(20,8)" example:"637.5"`
}

// IncomeEditable contains the fields of an income the user sets.
type IncomeEditable struct {
	Amount      decimal.Decimal `json:"amount" example:"2500"`
	Description string          `json:"description" example:"Salary"`
	Date        time.Time       `json:"date" example:"2024-03-01T00:00:00Z"`
}

// IncomeUpdate contains the income fields to change. Nil fields are left unchanged.
type IncomeUpdate struct {
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Description = strings.TrimSpace(i.Description)

	if !i.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if i.Date.IsZero() {
		return ErrDateMissing
	}

	if i.Description == "" {
		return ErrDescriptionEmpty
	}

	return nil
}

// snapshot computes the share of amount for every category of the user
// based on the current targets.
func snapshot(tx *gorm.DB, userID uuid.UUID, amount decimal.Decimal) ([]IncomeTarget, error) {
	var categories []Category
	err := tx.Where("owner_id = ?", userID).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	targets := make([]IncomeTarget, 0, len(categories))
	for _, c := range categories {
		share := amount.Mul(c.Target).Div(hundred).Round(8)
		targets = append(targets, IncomeTarget{
			CategoryID:      c.ID,
			TargetAmount:    share,
			RemainingAmount: share,
		})
	}

	return targets, nil
}

// Incomes returns all incomes of the user, latest first.
func Incomes(db *gorm.DB, userID uuid.UUID) ([]Income, error) {
	incomes := make([]Income, 0)
	err := db.Preload("Categories").
		Where("owner_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&incomes).Error

	return incomes, err
}

// GetIncome returns a single income of the user.
func GetIncome(db *gorm.DB, userID, id uuid.UUID) (Income, error) {
	var income Income
	err := db.Preload("Categories").
		Where("id = ? AND owner_id = ?", id, userID).
		First(&income).Error

	return income, err
}

// CreateIncome records an income together with its category snapshot.
func CreateIncome(db *gorm.DB, userID uuid.UUID, editable IncomeEditable) (Income, error) {
	income := Income{
		OwnerID:     userID,
		Amount:      editable.Amount,
		Description: editable.Description,
		Date:        editable.Date,
	}

	// Fail before reading the categories
	if err := income.BeforeSave(db); err != nil {
		return Income{}, err
	}

	err := transaction(db, func(tx *gorm.DB) error {
		targets, err := snapshot(tx, userID, income.Amount)
		if err != nil {
			return err
		}

		income.Categories = targets
		return tx.Create(&income).Error
	})
	if err != nil {
		return Income{}, err
	}

	return income, nil
}

// UpdateIncome updates an income. The snapshot is only recomputed
// when the amount changes.
func UpdateIncome(db *gorm.DB, userID, id uuid.UUID, update IncomeUpdate) (Income, error) {
	err := transaction(db, func(tx *gorm.DB) error {
		income, err := GetIncome(tx, userID, id)
		if err != nil {
			return err
		}

		amountChanged := update.Amount != nil && !update.Amount.Equal(income.Amount)
		if update.Amount != nil {
			income.Amount = *update.Amount
		}

		if update.Description != nil {
			income.Description = *update.Description
		}

		if update.Date != nil {
			income.Date = *update.Date
		}

		err = tx.Omit(clause.Associations).Save(&income).Error
		if err != nil {
			return err
		}

		if !amountChanged {
			return nil
		}

		err = tx.Where("income_id = ?", income.ID).Delete(&IncomeTarget{}).Error
		if err != nil {
			return err
		}

		targets, err := snapshot(tx, userID, income.Amount)
		if err != nil {
			return err
		}

		if len(targets) == 0 {
			return nil
		}

		for i := range targets {
			targets[i].IncomeID = income.ID
		}

		return tx.Create(&targets).Error
	})
	if err != nil {
		return Income{}, err
	}

	return GetIncome(db, userID, id)
}

// DeleteIncome deletes the income and its snapshot.
func DeleteIncome(db *gorm.DB, userID, id uuid.UUID) error {
	return transaction(db, func(tx *gorm.DB) error {
		var income Income
		err := tx.Where("id = ? AND owner_id = ?", id, userID).First(&income).Error
		if err != nil {
			return err
		}

		err = tx.Where("income_id = ?", income.ID).Delete(&IncomeTarget{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&income).Error
	})
}
