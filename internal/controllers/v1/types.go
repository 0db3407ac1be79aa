package v1

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	param_uuid "github.com/tankbudget/backend/internal/uuid"
	"github.com/tankbudget/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the id must be set"`
}

// Auth

type SignupRequest struct {
	Username  string `json:"username" binding:"required" example:"jdoe"`
	FirstName string `json:"firstName" example:"Jane"`
	LastName  string `json:"lastName" example:"Doe"`
	Email     string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password  string `json:"password" binding:"required,min=8" example:"correct horse battery staple"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

type Session struct {
	User      models.User `json:"user"`                                      // The authenticated user
	Token     string      `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5"` // Bearer token for the Authorization header
	ExpiresAt time.Time   `json:"expiresAt" example:"2024-03-08T19:28:44Z"`  // Time the token expires
}

type SessionResponse struct {
	Error *string  `json:"error,omitempty" example:"invalid email or password"` // The error, if any occurred
	Data  *Session `json:"data"`                                                // Session data
}

type UserResponse struct {
	Error *string      `json:"error,omitempty" example:"the token is invalid or expired"` // The error, if any occurred
	Data  *models.User `json:"data"`                                                      // The authenticated user
}

// Categories

type CategoryCreate struct {
	CategoryID *uuid.UUID `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // If set, a subcategory is added to this category
	Name       string     `json:"name" example:"Groceries"`                                  // Name of the category or subcategory
}

type CategoryUpdate struct {
	ID     uuid.UUID        `json:"id" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	Name   *string          `json:"name" example:"Food"`
	Target *decimal.Decimal `json:"target" example:"25.5"`
}

// TargetEntry keeps the target as raw JSON. Only JSON numbers are valid
// targets, decimal.Decimal would also accept strings and null.
type TargetEntry struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	Target     json.RawMessage `json:"target" swaggertype:"number" example:"25.5"`
}

type TargetsUpdate struct {
	Targets  []TargetEntry `json:"targets"`
	Revision *uint64       `json:"revision" example:"3"` // If set, the update is rejected unless it matches the current targets revision
}

type CategoryDeleteQuery struct {
	CategoryID    param_uuid.UUID `form:"categoryId"`
	SubCategoryID param_uuid.UUID `form:"subcategoryId"`
}

type CategoryListResponse struct {
	Error           *string           `json:"error,omitempty" example:"the query string contains an invalid value"` // The error, if any occurred
	Data            []models.Category `json:"data"`                                                                 // List of categories
	TargetsRevision uint64            `json:"targetsRevision" example:"3"`                                          // Revision to send with a targets update
}

type CategoryResponse struct {
	Error *string          `json:"error,omitempty" example:"there is no category matching your query"` // The error, if any occurred
	Data  *models.Category `json:"data"`                                                               // Data for the category
}

type SubCategoryResponse struct {
	Error *string             `json:"error,omitempty" example:"there is no category matching your query"` // The error, if any occurred
	Data  *models.SubCategory `json:"data"`                                                               // Data for the subcategory
}

type Targets struct {
	TargetsRevision uint64            `json:"targetsRevision" example:"4"` // Revision after the update
	Categories      []models.Category `json:"categories"`                  // All categories with their new targets
}

type TargetsResponse struct {
	Error *string  `json:"error,omitempty" example:"the sum of target percentages must equal 100%"` // The error, if any occurred
	Data  *Targets `json:"data"`
}

// Expenses

type ExpenseUpdate struct {
	ID          uuid.UUID        `json:"id" example:"a8b3f1ae-3a91-46b8-bb2d-0a9e1c2b6a20"`
	Amount      *decimal.Decimal `json:"amount" example:"42.17"`
	CategoryID  *uuid.UUID       `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	Category    *string          `json:"category" example:"Groceries"`
	Subcategory *string          `json:"subcategory" example:"Vegetables"`
	Description *string          `json:"description" example:"Farmers market"`
	Date        *time.Time       `json:"date" example:"2024-03-04T00:00:00Z"`
}

type ExpenseQueryFilter struct {
	CategoryID  param_uuid.UUID `form:"categoryId"`
	Category    string          `form:"category"`
	Description string          `form:"description"`
}

type RemainingQuery struct {
	UserID param_uuid.UUID `form:"userId"`
}

type ExpenseListResponse struct {
	Error *string          `json:"error,omitempty" example:"the query string contains an invalid value"` // The error, if any occurred
	Data  []models.Expense `json:"data"`                                                                 // List of expenses
}

type ExpenseResponse struct {
	Error *string         `json:"error,omitempty" example:"there is no expense matching your query"` // The error, if any occurred
	Data  *models.Expense `json:"data"`                                                              // Data for the expense
}

type RemainingResponse struct {
	Error *string            `json:"error,omitempty" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  []models.Remaining `json:"data"`                                                                          // Remaining amount per category
}

// Incomes

type IncomeUpdate struct {
	ID          uuid.UUID        `json:"id" example:"0f6d8d5e-1a39-4c9f-9a61-2b7a64c1f3de"`
	Amount      *decimal.Decimal `json:"amount" example:"2500"`
	Description *string          `json:"description" example:"Salary"`
	Date        *time.Time       `json:"date" example:"2024-03-01T00:00:00Z"`
}

type IDQuery struct {
	ID param_uuid.UUID `form:"id"`
}

type IncomeListResponse struct {
	Error *string         `json:"error,omitempty" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  []models.Income `json:"data"`                                                                          // List of incomes
}

type IncomeResponse struct {
	Error *string        `json:"error,omitempty" example:"there is no income matching your query"` // The error, if any occurred
	Data  *models.Income `json:"data"`                                                             // Data for the income
}
