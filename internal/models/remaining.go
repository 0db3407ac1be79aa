package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Remaining is the budget state of a single category.
type Remaining struct {
	CategoryID      uuid.UUID       `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	Category        string          `json:"category" example:"Groceries"`
	TargetAmount    decimal.Decimal `json:"targetAmount" example:"500"`    // Sum of the category's share of all incomes
	SpentAmount     decimal.Decimal `json:"spentAmount" example:"620"`     // Sum of all expenses in the category
	RemainingAmount decimal.Decimal `json:"remainingAmount" example:"0"`   // Target minus spent, never below 0
	OverspentAmount decimal.Decimal `json:"overspentAmount" example:"120"` // Spent minus target, never below 0
}

// CategoryRemaining reconciles all incomes and expenses of the user into
// the remaining amount per category.
//
// Targets accumulate over every income. Expenses are matched by category ID,
// falling back to the category name. Expenses and snapshot entries without an
// existing category are skipped. The result is sorted by category name.
func CategoryRemaining(db *gorm.DB, userID uuid.UUID) ([]Remaining, error) {
	var categories []Category
	err := db.Where("owner_id = ?", userID).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(categories))
	byName := make(map[string]uuid.UUID, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
		byName[c.FoldedName] = c.ID
	}

	var targets []IncomeTarget
	err = db.Where("income_id IN (?)", db.Model(&Income{}).Select("id").Where("owner_id = ?", userID)).
		Find(&targets).Error
	if err != nil {
		return nil, err
	}

	targetAmounts := make(map[uuid.UUID]decimal.Decimal)
	for _, t := range targets {
		if _, ok := names[t.CategoryID]; !ok {
			continue
		}
		targetAmounts[t.CategoryID] = targetAmounts[t.CategoryID].Add(t.TargetAmount)
	}

	var expenses []Expense
	err = db.Where("owner_id = ?", userID).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	spentAmounts := make(map[uuid.UUID]decimal.Decimal)
	for _, e := range expenses {
		id, ok := expenseCategory(e, names, byName)
		if !ok {
			log.Debug().Str("expense", e.ID.String()).Str("category", e.Category).Msg("no category for expense, skipping")
			continue
		}
		spentAmounts[id] = spentAmounts[id].Add(e.Amount)
	}

	result := make([]Remaining, 0, len(names))
	for id, name := range names {
		target, hasTarget := targetAmounts[id]
		spent, hasSpent := spentAmounts[id]
		if !hasTarget && !hasSpent {
			continue
		}

		result = append(result, Remaining{
			CategoryID:      id,
			Category:        name,
			TargetAmount:    target,
			SpentAmount:     spent,
			RemainingAmount: decimal.Max(decimal.Zero, target.Sub(spent)),
			OverspentAmount: decimal.Max(decimal.Zero, spent.Sub(target)),
		})
	}

	slices.SortFunc(result, func(a, b Remaining) int {
		return strings.Compare(a.Category, b.Category)
	})

	return result, nil
}

// expenseCategory returns the ID of the existing category of the expense.
func expenseCategory(e Expense, names map[uuid.UUID]string, byName map[string]uuid.UUID) (uuid.UUID, bool) {
	if e.CategoryID != nil {
		if _, ok := names[*e.CategoryID]; ok {
			return *e.CategoryID, true
		}
	}

	id, ok := byName[foldName(e.Category)]
	return id, ok
}
