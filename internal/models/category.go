package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// Category is a budget bucket that receives a share of every income.
type Category struct {
	DefaultModel
	OwnerID       uuid.UUID       `json:"ownerId" gorm:"uniqueIndex:idx_category_owner_folded_name" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"`
	Name          string          `json:"name" example:"Groceries"`
	FoldedName    string          `json:"-" gorm:"uniqueIndex:idx_category_owner_folded_name"` // Case folded name, unique per owner
	Target        decimal.Decimal `json:"target" gorm:"type:DECIMAL(5,2)" example:"25.5"` // Share of income in percent
	SubCategories []SubCategory   `json:"subCategories" gorm:"constraint:OnDelete:CASCADE"`
}

// SubCategory is a named subdivision of a category, ordered by Position.
type SubCategory struct {
	DefaultModel
	CategoryID uuid.UUID `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	Name       string    `json:"name" example:"Vegetables"`
	Position   int       `json:"position" example:"2"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	c.FoldedName = foldName(c.Name)
	return nil
}

func (s *SubCategory) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return ErrSubCategoryNameEmpty
	}

	return nil
}

// CategoryUpdate contains the fields of a category that can be
// changed individually. Nil fields are left unchanged.
type CategoryUpdate struct {
	Name   *string
	Target *decimal.Decimal
}

// foldName returns the comparable form of a category name.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// ownedCategory returns the category with the ID if it belongs to the user.
func ownedCategory(db *gorm.DB, userID, id uuid.UUID) (Category, error) {
	var category Category
	err := db.Where("id = ? AND owner_id = ?", id, userID).First(&category).Error
	return category, err
}

func preloadSubCategories(db *gorm.DB) *gorm.DB {
	return db.Preload("SubCategories", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

// Categories returns all categories of the user sorted by name.
func Categories(db *gorm.DB, userID uuid.UUID) ([]Category, error) {
	categories := make([]Category, 0)
	err := preloadSubCategories(db).
		Where("owner_id = ?", userID).
		Order("name ASC").
		Find(&categories).Error

	for i := range categories {
		if categories[i].SubCategories == nil {
			categories[i].SubCategories = make([]SubCategory, 0)
		}
	}

	return categories, err
}

// GetCategory returns a single category of the user.
func GetCategory(db *gorm.DB, userID, id uuid.UUID) (Category, error) {
	var category Category
	err := preloadSubCategories(db).
		Where("id = ? AND owner_id = ?", id, userID).
		First(&category).Error

	if category.SubCategories == nil {
		category.SubCategories = make([]SubCategory, 0)
	}

	return category, err
}

// CreateCategory creates a category with a target of 0. The targets of
// other categories are not touched.
func CreateCategory(db *gorm.DB, userID uuid.UUID, name string) (Category, error) {
	category := Category{
		OwnerID:       userID,
		Name:          name,
		Target:        decimal.Zero,
		SubCategories: make([]SubCategory, 0),
	}

	err := db.Create(&category).Error
	if err != nil {
		return Category{}, err
	}

	return category, nil
}

// AddSubCategory appends a subcategory to the category.
func AddSubCategory(db *gorm.DB, userID, categoryID uuid.UUID, name string) (SubCategory, error) {
	var sub SubCategory

	err := transaction(db, func(tx *gorm.DB) error {
		_, err := ownedCategory(tx, userID, categoryID)
		if err != nil {
			return err
		}

		var position int
		err = tx.Model(&SubCategory{}).
			Where("category_id = ?", categoryID).
			Select("COALESCE(MAX(position), -1) + 1").
			Scan(&position).Error
		if err != nil {
			return err
		}

		sub = SubCategory{
			CategoryID: categoryID,
			Name:       name,
			Position:   position,
		}

		return tx.Create(&sub).Error
	})

	return sub, err
}

// UpdateCategory renames the category and/or sets its target.
//
// A rename is propagated to the denormalized category name of the user's
// expenses referencing the category. The sum of all targets is not
// validated, use SetTargets for that.
func UpdateCategory(db *gorm.DB, userID, id uuid.UUID, update CategoryUpdate) (Category, error) {
	if update.Target != nil {
		if err := validatePercentage(*update.Target); err != nil {
			return Category{}, err
		}
	}

	err := transaction(db, func(tx *gorm.DB) error {
		category, err := ownedCategory(tx, userID, id)
		if err != nil {
			return err
		}

		if update.Name != nil {
			category.Name = *update.Name
			category.FoldedName = foldName(category.Name)
		}

		if update.Target != nil {
			category.Target = *update.Target
		}

		err = tx.Model(&category).Select("Name", "FoldedName", "Target").Updates(&category).Error
		if err != nil {
			return err
		}

		if update.Name == nil {
			return nil
		}

		return tx.Model(&Expense{}).
			Where("owner_id = ? AND category_id = ?", userID, id).
			UpdateColumn("category", category.Name).Error
	})
	if err != nil {
		return Category{}, err
	}

	return GetCategory(db, userID, id)
}

// DeleteCategory deletes the category and its subcategories.
//
// Expenses are kept. They retain the denormalized category name.
func DeleteCategory(db *gorm.DB, userID, id uuid.UUID) error {
	return transaction(db, func(tx *gorm.DB) error {
		category, err := ownedCategory(tx, userID, id)
		if err != nil {
			return err
		}

		err = tx.Where("category_id = ?", category.ID).Delete(&SubCategory{}).Error
		if err != nil {
			return err
		}

		err = tx.Model(&Expense{}).
			Where("owner_id = ? AND category_id = ?", userID, category.ID).
			UpdateColumn("category_id", nil).Error
		if err != nil {
			return err
		}

		return tx.Delete(&category).Error
	})
}

// DeleteSubCategory removes a single subcategory from the category.
func DeleteSubCategory(db *gorm.DB, userID, categoryID, subCategoryID uuid.UUID) error {
	return transaction(db, func(tx *gorm.DB) error {
		_, err := ownedCategory(tx, userID, categoryID)
		if err != nil {
			return err
		}

		var sub SubCategory
		err = tx.Where("id = ? AND category_id = ?", subCategoryID, categoryID).First(&sub).Error
		if err != nil {
			return err
		}

		return tx.Delete(&sub).Error
	})
}
