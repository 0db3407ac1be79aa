package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	hundred         = decimal.NewFromInt(100)
	targetTolerance = decimal.New(1, -2)
)

// TargetEntry is the target percentage for a single category.
type TargetEntry struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	Target     decimal.Decimal `json:"target" example:"25.5"`
}

// validatePercentage verifies that p is in [0, 100] and has at most
// two decimal places.
func validatePercentage(p decimal.Decimal) error {
	if p.IsNegative() || p.GreaterThan(hundred) || !p.Equal(p.Round(2)) {
		return fmt.Errorf("%w, got %s", ErrInvalidPercentageValue, p)
	}

	return nil
}

// validateTargets checks a batch of targets without looking at the database.
func validateTargets(entries []TargetEntry) error {
	if len(entries) == 0 {
		return ErrEmptyBatch
	}

	sum := decimal.Zero
	for _, e := range entries {
		if err := validatePercentage(e.Target); err != nil {
			return err
		}
		sum = sum.Add(e.Target)
	}

	if sum.Sub(hundred).Abs().GreaterThan(targetTolerance) {
		return fmt.Errorf("%w, got %s%%", ErrInvalidTargetSum, sum)
	}

	return nil
}

// SetTargets replaces the target percentages of all categories of the user.
//
// The batch must reference every category at most once and sum to 100. Categories
// not contained in the batch are set to 0. Either all targets are written or none.
//
// If revision is not nil, it must match the user's current targets revision.
// The new revision is returned.
func SetTargets(db *gorm.DB, userID uuid.UUID, entries []TargetEntry, revision *uint64) (uint64, error) {
	if err := validateTargets(entries); err != nil {
		return 0, err
	}

	var next uint64
	err := transaction(db, func(tx *gorm.DB) error {
		var categories []Category
		err := tx.Where("owner_id = ?", userID).Find(&categories).Error
		if err != nil {
			return err
		}

		owned := make(map[uuid.UUID]bool, len(categories))
		for _, c := range categories {
			owned[c.ID] = true
		}

		targets := make(map[uuid.UUID]decimal.Decimal, len(entries))
		for _, e := range entries {
			if _, seen := targets[e.CategoryID]; seen || !owned[e.CategoryID] {
				return fmt.Errorf("%w: %s", ErrInvalidCategoryReference, e.CategoryID)
			}
			targets[e.CategoryID] = e.Target
		}

		user, err := UserByID(tx, userID)
		if err != nil {
			return err
		}

		if revision != nil && *revision != user.TargetsRevision {
			return ErrTargetsRevisionConflict
		}

		// Compare and swap, a concurrent update between the read above and this
		// statement makes it affect no rows.
		res := tx.Model(&User{}).
			Where("id = ? AND targets_revision = ?", userID, user.TargetsRevision).
			UpdateColumn("targets_revision", gorm.Expr("targets_revision + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTargetsRevisionConflict
		}
		next = user.TargetsRevision + 1

		for _, c := range categories {
			target, ok := targets[c.ID]
			if !ok {
				target = decimal.Zero
			}

			err = tx.Model(&Category{}).Where("id = ?", c.ID).UpdateColumn("target", target).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return next, nil
}

// TargetsRevision returns the current targets revision of the user.
func TargetsRevision(db *gorm.DB, userID uuid.UUID) (uint64, error) {
	user, err := UserByID(db, userID)
	return user.TargetsRevision, err
}
