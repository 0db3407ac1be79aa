package models_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tankbudget/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryCreate() {
	user := suite.createTestUser()

	food := suite.createTestCategory(user.ID, "  Food ")
	assert.Equal(suite.T(), "Food", food.Name, "Name is not trimmed")
	assert.True(suite.T(), food.Target.IsZero(), "New categories must start with a target of 0")

	// A new category does not touch existing targets
	suite.setTestTargets(user.ID, []models.Category{food}, 100)
	suite.createTestCategory(user.ID, "Rent")

	food, err := models.GetCategory(models.DB, user.ID, food.ID)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), food.Target.Equal(decimal.NewFromInt(100)), "Target is %s", food.Target)

	_, err = models.CreateCategory(models.DB, user.ID, "Food")
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)

	// Expenses match names case insensitively, so names must differ in more than case
	_, err = models.CreateCategory(models.DB, user.ID, " FOOD")
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)

	_, err = models.CreateCategory(models.DB, user.ID, "   ")
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameEmpty)

	// Names are unique per user only
	other := suite.createTestUser()
	suite.createTestCategory(other.ID, "Food")
}

func (suite *TestSuiteStandard) TestCategoryList() {
	user := suite.createTestUser()
	other := suite.createTestUser()

	suite.createTestCategory(user.ID, "Rent")
	suite.createTestCategory(user.ID, "Food")
	suite.createTestCategory(other.ID, "Travel")

	categories, err := models.Categories(models.DB, user.ID)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), categories, 2)
	assert.Equal(suite.T(), "Food", categories[0].Name)
	assert.Equal(suite.T(), "Rent", categories[1].Name)
	assert.NotNil(suite.T(), categories[0].SubCategories)
}

func (suite *TestSuiteStandard) TestSubCategories() {
	user := suite.createTestUser()
	other := suite.createTestUser()
	category := suite.createTestCategory(user.ID, "Food")

	for _, name := range []string{"Vegetables", "Fruit", "Bread"} {
		_, err := models.AddSubCategory(models.DB, user.ID, category.ID, name)
		require.Nil(suite.T(), err)
	}

	category, err := models.GetCategory(models.DB, user.ID, category.ID)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), category.SubCategories, 3)
	assert.Equal(suite.T(), "Vegetables", category.SubCategories[0].Name)
	assert.Equal(suite.T(), "Bread", category.SubCategories[2].Name)

	// Deleting from the middle keeps the order and appends after the last one
	require.Nil(suite.T(), models.DeleteSubCategory(models.DB, user.ID, category.ID, category.SubCategories[1].ID))
	_, err = models.AddSubCategory(models.DB, user.ID, category.ID, "Cheese")
	require.Nil(suite.T(), err)

	category, err = models.GetCategory(models.DB, user.ID, category.ID)
	require.Nil(suite.T(), err)
	names := []string{}
	for _, s := range category.SubCategories {
		names = append(names, s.Name)
	}
	assert.Equal(suite.T(), []string{"Vegetables", "Bread", "Cheese"}, names)

	tests := []struct {
		name          string
		userID        uuid.UUID
		categoryID    uuid.UUID
		subCategoryID uuid.UUID
	}{
		{"Foreign category", other.ID, category.ID, category.SubCategories[0].ID},
		{"Missing category", user.ID, uuid.New(), category.SubCategories[0].ID},
		{"Missing subcategory", user.ID, category.ID, uuid.New()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DeleteSubCategory(models.DB, tt.userID, tt.categoryID, tt.subCategoryID)
			assert.ErrorIs(t, err, models.ErrResourceNotFound)
		})
	}

	_, err = models.AddSubCategory(models.DB, other.ID, category.ID, "Sneaky")
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	_, err = models.AddSubCategory(models.DB, user.ID, category.ID, "")
	assert.ErrorIs(suite.T(), err, models.ErrSubCategoryNameEmpty)
}

func (suite *TestSuiteStandard) TestCategoryUpdate() {
	user := suite.createTestUser()
	other := suite.createTestUser()
	category := suite.createTestCategory(user.ID, "Food")
	expense := suite.createTestExpense(user.ID, "food", 12)
	require.NotNil(suite.T(), expense.CategoryID)

	name := "Groceries"
	target := decimal.NewFromFloat(42.5)
	updated, err := models.UpdateCategory(models.DB, user.ID, category.ID, models.CategoryUpdate{Name: &name, Target: &target})
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Groceries", updated.Name)
	assert.True(suite.T(), updated.Target.Equal(target), "Target is %s", updated.Target)

	// The rename is propagated to the expense
	expense, err = models.GetExpense(models.DB, user.ID, expense.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Groceries", expense.Category)

	tests := []struct {
		name   string
		target string
	}{
		{"Negative", "-1"},
		{"Above 100", "100.01"},
		{"Three decimals", "12.345"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			target := decimal.RequireFromString(tt.target)
			_, err := models.UpdateCategory(models.DB, user.ID, category.ID, models.CategoryUpdate{Target: &target})
			assert.ErrorIs(t, err, models.ErrInvalidPercentageValue)
		})
	}

	_, err = models.UpdateCategory(models.DB, other.ID, category.ID, models.CategoryUpdate{Name: &name})
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	suite.createTestCategory(user.ID, "Rent")
	for _, duplicate := range []string{"Rent", "rENT"} {
		_, err = models.UpdateCategory(models.DB, user.ID, category.ID, models.CategoryUpdate{Name: &duplicate})
		assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique, duplicate)
	}

	// Changing only the case of its own name is fine
	upper := strings.ToUpper(name)
	updated, err = models.UpdateCategory(models.DB, user.ID, category.ID, models.CategoryUpdate{Name: &upper})
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), upper, updated.Name)
}

func (suite *TestSuiteStandard) TestCategoryDelete() {
	user := suite.createTestUser()
	other := suite.createTestUser()
	category := suite.createTestCategory(user.ID, "Food")
	_, err := models.AddSubCategory(models.DB, user.ID, category.ID, "Vegetables")
	require.Nil(suite.T(), err)
	expense := suite.createTestExpense(user.ID, "Food", 10)

	err = models.DeleteCategory(models.DB, other.ID, category.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	require.Nil(suite.T(), models.DeleteCategory(models.DB, user.ID, category.ID))

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.SubCategory{}).Where("category_id = ?", category.ID).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count, "Subcategories must be deleted with the category")

	// Expenses are kept with their category name
	expense, err = models.GetExpense(models.DB, user.ID, expense.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Food", expense.Category)
	assert.Nil(suite.T(), expense.CategoryID)

	err = models.DeleteCategory(models.DB, user.ID, category.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound, "A second delete must not succeed")
}

func (suite *TestSuiteStandard) TestCategoryDBClosed() {
	user := suite.createTestUser()
	suite.CloseDB()

	_, err := models.CreateCategory(models.DB, user.ID, "Food")
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)

	_, err = models.Categories(models.DB, user.ID)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)

	err = models.DeleteCategory(models.DB, user.ID, uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
