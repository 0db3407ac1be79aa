package v1_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	v1 "github.com/tankbudget/backend/internal/controllers/v1"
	"github.com/tankbudget/backend/internal/models"
	"github.com/tankbudget/backend/test"
)

func (suite *TestSuiteStandard) TestExpenseCreate() {
	_, header := test.User(suite.T(), "jdoe")
	food := suite.createTestCategory(header, "Food")

	byName := suite.createTestExpense(header, "food", "42.17")
	suite.Require().NotNil(byName.CategoryID, "the category is resolved by its name")
	suite.Assert().Equal(food.ID, *byName.CategoryID)
	suite.Assert().True(decimal.RequireFromString("42.17").Equal(byName.Amount))

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", map[string]any{
		"amount":      "8",
		"categoryId":  food.ID,
		"subcategory": "Snacks",
		"description": "Chips",
		"date":        "2024-03-05T00:00:00Z",
	}, header)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Food", response.Data.Category, "the name is filled in from the category")

	// Unknown names are stored without a category reference
	unmatched := suite.createTestExpense(header, "Travel", "100")
	suite.Assert().Nil(unmatched.CategoryID)
	suite.Assert().Equal("Travel", unmatched.Category)
}

func (suite *TestSuiteStandard) TestExpenseCreateFails() {
	_, header := test.User(suite.T(), "jdoe")
	_, other := test.User(suite.T(), "other")
	foreign := suite.createTestCategory(other, "Foreign")

	valid := func() map[string]any {
		return map[string]any{
			"amount":      "10",
			"category":    "Food",
			"subcategory": "Other",
			"description": "Lunch",
			"date":        "2024-03-04T00:00:00Z",
		}
	}

	with := func(key string, value any) map[string]any {
		body := valid()
		if value == nil {
			delete(body, key)
		} else {
			body[key] = value
		}
		return body
	}

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty body", "", http.StatusBadRequest},
		{"Zero amount", with("amount", "0"), http.StatusBadRequest},
		{"Negative amount", with("amount", "-5"), http.StatusBadRequest},
		{"No category", with("category", nil), http.StatusBadRequest},
		{"No subcategory", with("subcategory", nil), http.StatusBadRequest},
		{"No description", with("description", nil), http.StatusBadRequest},
		{"No date", with("date", nil), http.StatusBadRequest},
		{"Amount not a number", with("amount", "lots"), http.StatusBadRequest},
		{"Unknown category ID", with("categoryId", uuid.New()), http.StatusNotFound},
		{"Foreign category ID", with("categoryId", foreign.ID), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", tt.body, header)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseList() {
	_, header := test.User(suite.T(), "jdoe")
	_, other := test.User(suite.T(), "other")

	food := suite.createTestCategory(header, "Food")
	suite.createTestCategory(header, "Rent")

	suite.createTestExpense(header, "Food", "10")
	suite.createTestExpense(header, "Rent", "800")
	suite.createTestExpense(header, "Travel", "50")
	suite.createTestExpense(other, "Food", "1")

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Category ID", fmt.Sprintf("?categoryId=%s", food.ID), 1},
		{"Category name", "?category=RENT", 1},
		{"Unmatched category name", "?category=travel", 1},
		{"Description", "?description=" + url.QueryEscape("Test*"), 3},
		{"Description without match", "?description=nothing", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/expenses"+tt.query, "", header)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?categoryId=nope", "", header)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpenseUpdate() {
	_, header := test.User(suite.T(), "jdoe")
	suite.createTestCategory(header, "Food")
	rent := suite.createTestCategory(header, "Rent")
	expense := suite.createTestExpense(header, "Food", "10")

	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/expenses", map[string]any{
		"id":         expense.ID,
		"amount":     "15.5",
		"categoryId": rent.ID,
	}, header)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.RequireFromString("15.5").Equal(response.Data.Amount))
	suite.Assert().Equal("Rent", response.Data.Category)
	suite.Assert().Equal(rent.ID, *response.Data.CategoryID)
	suite.Assert().Equal("Test expense", response.Data.Description, "fields not in the request are unchanged")

	tests := []struct {
		name   string
		body   map[string]any
		status int
	}{
		{"No ID", map[string]any{"amount": "5"}, http.StatusBadRequest},
		{"Unknown ID", map[string]any{"id": uuid.New(), "amount": "5"}, http.StatusNotFound},
		{"Zero amount", map[string]any{"id": expense.ID, "amount": "0"}, http.StatusBadRequest},
		{"Empty description", map[string]any{"id": expense.ID, "description": " "}, http.StatusBadRequest},
		{"Unknown category", map[string]any{"id": expense.ID, "categoryId": uuid.New()}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, "http://example.com/v1/expenses", tt.body, header)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	// Other users cannot see or change the expense
	_, other := test.User(suite.T(), "other")
	r = test.Request(suite.T(), http.MethodPut, "http://example.com/v1/expenses", map[string]any{"id": expense.ID, "amount": "1"}, other)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseDelete() {
	_, header := test.User(suite.T(), "jdoe")
	_, other := test.User(suite.T(), "other")
	expense := suite.createTestExpense(header, "Food", "10")

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/expenses", "", header)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses?id=%s", expense.ID), "", other)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses?id=%s", expense.ID), "", header)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses?id=%s", expense.ID), "", header)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestCategoryRemaining runs the basic allocation scenario end to end.
func (suite *TestSuiteStandard) TestCategoryRemaining() {
	id, header := test.User(suite.T(), "jdoe")
	food := suite.createTestCategory(header, "Food")
	rent := suite.createTestCategory(header, "Rent")
	suite.setTestTargets(header, map[uuid.UUID]float64{food.ID: 50, rent.ID: 50})

	income := suite.createTestIncome(header, "1000")
	suite.Require().Len(income.Categories, 2)
	for _, share := range income.Categories {
		suite.Assert().True(decimal.NewFromInt(500).Equal(share.TargetAmount), share.TargetAmount.String())
	}

	suite.createTestExpense(header, "Food", "200")
	suite.createTestExpense(header, "Travel", "75")

	for _, query := range []string{"", fmt.Sprintf("?userId=%s", id)} {
		r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/category-remaining"+query, "", header)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response v1.RemainingResponse
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Require().Len(response.Data, 2, "the expense without a category is skipped")

		suite.Assert().Equal("Food", response.Data[0].Category)
		suite.Assert().True(decimal.NewFromInt(500).Equal(response.Data[0].TargetAmount))
		suite.Assert().True(decimal.NewFromInt(300).Equal(response.Data[0].RemainingAmount))

		suite.Assert().Equal("Rent", response.Data[1].Category)
		suite.Assert().True(decimal.NewFromInt(500).Equal(response.Data[1].TargetAmount))
		suite.Assert().True(decimal.NewFromInt(500).Equal(response.Data[1].RemainingAmount))
	}
}

func (suite *TestSuiteStandard) TestCategoryRemainingOverspent() {
	_, header := test.User(suite.T(), "jdoe")
	food := suite.createTestCategory(header, "Food")
	suite.setTestTargets(header, map[uuid.UUID]float64{food.ID: 100})

	suite.createTestIncome(header, "100")
	suite.createTestExpense(header, "Food", "130")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/category-remaining", "", header)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RemainingResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().True(response.Data[0].RemainingAmount.IsZero())
	suite.Assert().True(decimal.NewFromInt(30).Equal(response.Data[0].OverspentAmount))
}

func (suite *TestSuiteStandard) TestCategoryRemainingFails() {
	_, header := test.User(suite.T(), "jdoe")
	otherID, _ := test.User(suite.T(), "other")

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses/category-remaining?userId=%s", otherID), "", header)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/category-remaining?userId=nope", "", header)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	suite.CloseDB()
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/category-remaining", "", header)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Contains(r.Body.String(), models.ErrGeneral.Error())
}
