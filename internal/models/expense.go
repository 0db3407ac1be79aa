package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is money spent by the user.
//
// CategoryID is the canonical reference to the category. Category holds the
// category name at the time of the last write and is kept for expenses
// whose category does not exist (anymore).
type Expense struct {
	DefaultModel
	OwnerID     uuid.UUID       `json:"ownerId" gorm:"index" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"42.17"`
	CategoryID  *uuid.UUID      `json:"categoryId" gorm:"index" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	Category    string          `json:"category" example:"Groceries"`
	Subcategory string          `json:"subcategory" example:"Vegetables"`
	Description string          `json:"description" example:"Farmers market"`
	Date        time.Time       `json:"date" example:"2024-03-04T00:00:00Z"`
}

// ExpenseEditable contains the fields of an expense the user sets.
//
// The category is referenced by ID if CategoryID is set, by name otherwise.
type ExpenseEditable struct {
	Amount      decimal.Decimal `json:"amount" example:"42.17"`
	CategoryID  *uuid.UUID      `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	Category    string          `json:"category" example:"Groceries"`
	Subcategory string          `json:"subcategory" example:"Vegetables"`
	Description string          `json:"description" example:"Farmers market"`
	Date        time.Time       `json:"date" example:"2024-03-04T00:00:00Z"`
}

// ExpenseUpdate contains the expense fields to change. Nil fields are left unchanged.
type ExpenseUpdate struct {
	Amount      *decimal.Decimal
	CategoryID  *uuid.UUID
	Category    *string
	Subcategory *string
	Description *string
	Date        *time.Time
}

// ExpenseFilter restricts the expenses returned by Expenses.
type ExpenseFilter struct {
	CategoryID  uuid.UUID // Only expenses in this category
	Category    string    // Only expenses with this category name, case insensitive
	Description string    // Glob pattern for the description, "*" matches any sequence
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Category = strings.TrimSpace(e.Category)
	e.Subcategory = strings.TrimSpace(e.Subcategory)
	e.Description = strings.TrimSpace(e.Description)

	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if e.Category == "" {
		return ErrExpenseCategoryEmpty
	}

	if e.Subcategory == "" {
		return ErrSubcategoryEmpty
	}

	if e.Description == "" {
		return ErrDescriptionEmpty
	}

	if e.Date.IsZero() {
		return ErrDateMissing
	}

	return nil
}

// resolveCategory sets CategoryID and Category for the expense.
//
// With an ID, the category must belong to the user. A name is matched
// case insensitively. If no category has the name, the expense keeps
// the name and references no category.
func (e *Expense) resolveCategory(tx *gorm.DB, userID uuid.UUID, id *uuid.UUID, name string) error {
	if id != nil && *id != uuid.Nil {
		category, err := ownedCategory(tx, userID, *id)
		if err != nil {
			return err
		}

		e.CategoryID = &category.ID
		e.Category = category.Name
		return nil
	}

	e.CategoryID = nil
	e.Category = name

	folded := foldName(name)
	if folded == "" {
		return nil
	}

	var categories []Category
	err := tx.Where("owner_id = ? AND folded_name = ?", userID, folded).Limit(1).Find(&categories).Error
	if err != nil {
		return err
	}

	if len(categories) == 1 {
		e.CategoryID = &categories[0].ID
		e.Category = categories[0].Name
	}

	return nil
}

// Expenses returns the expenses of the user matching the filter, latest first.
func Expenses(db *gorm.DB, userID uuid.UUID, filter ExpenseFilter) ([]Expense, error) {
	q := db.Where("owner_id = ?", userID)

	if filter.CategoryID != uuid.Nil {
		q = q.Where("category_id = ?", filter.CategoryID)
	}

	var expenses []Expense
	err := q.Order("date DESC, created_at DESC").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	folded := foldName(filter.Category)
	result := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if folded != "" && foldName(e.Category) != folded {
			continue
		}

		if filter.Description != "" && !glob.Glob(filter.Description, e.Description) {
			continue
		}

		result = append(result, e)
	}

	return result, nil
}

// GetExpense returns a single expense of the user.
func GetExpense(db *gorm.DB, userID, id uuid.UUID) (Expense, error) {
	var expense Expense
	err := db.Where("id = ? AND owner_id = ?", id, userID).First(&expense).Error
	return expense, err
}

// CreateExpense records an expense.
func CreateExpense(db *gorm.DB, userID uuid.UUID, editable ExpenseEditable) (Expense, error) {
	expense := Expense{
		OwnerID:     userID,
		Amount:      editable.Amount,
		Subcategory: editable.Subcategory,
		Description: editable.Description,
		Date:        editable.Date,
	}

	err := transaction(db, func(tx *gorm.DB) error {
		err := expense.resolveCategory(tx, userID, editable.CategoryID, editable.Category)
		if err != nil {
			return err
		}

		return tx.Create(&expense).Error
	})
	if err != nil {
		return Expense{}, err
	}

	return expense, nil
}

// UpdateExpense updates an expense of the user.
func UpdateExpense(db *gorm.DB, userID, id uuid.UUID, update ExpenseUpdate) (Expense, error) {
	var expense Expense

	err := transaction(db, func(tx *gorm.DB) error {
		var err error
		expense, err = GetExpense(tx, userID, id)
		if err != nil {
			return err
		}

		// A new category reference, by ID or name, replaces the existing one
		if update.CategoryID != nil || update.Category != nil {
			name := expense.Category
			if update.Category != nil {
				name = *update.Category
			}

			err = expense.resolveCategory(tx, userID, update.CategoryID, name)
			if err != nil {
				return err
			}
		}

		if update.Amount != nil {
			expense.Amount = *update.Amount
		}

		if update.Subcategory != nil {
			expense.Subcategory = *update.Subcategory
		}

		if update.Description != nil {
			expense.Description = *update.Description
		}

		if update.Date != nil {
			expense.Date = *update.Date
		}

		return tx.Save(&expense).Error
	})
	if err != nil {
		return Expense{}, err
	}

	return expense, nil
}

// DeleteExpense deletes an expense of the user.
func DeleteExpense(db *gorm.DB, userID, id uuid.UUID) error {
	return transaction(db, func(tx *gorm.DB) error {
		expense, err := GetExpense(tx, userID, id)
		if err != nil {
			return err
		}

		return tx.Delete(&expense).Error
	})
}
