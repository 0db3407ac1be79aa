package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// User errors
var (
	ErrEmailNotUnique    = errors.New("this email address is already registered")
	ErrUsernameNotUnique = errors.New("this username is already taken")
	ErrUsernameEmpty     = errors.New("the username must not be empty")
)

// Category errors
var (
	ErrCategoryNameNotUnique    = errors.New("the category name must be unique")
	ErrCategoryNameEmpty        = errors.New("the category name must not be empty")
	ErrSubCategoryNameEmpty     = errors.New("the subcategory name must not be empty")
	ErrInvalidPercentageValue   = errors.New("target percentages must be between 0 and 100 with at most two decimal places")
	ErrEmptyBatch               = errors.New("the targets must contain at least one entry")
	ErrInvalidTargetSum         = errors.New("the sum of target percentages must equal 100%")
	ErrInvalidCategoryReference = errors.New("every category in the targets must exist, belong to you and be listed only once")
	ErrTargetsRevisionConflict  = errors.New("the category targets have been modified since you loaded them, please reload and try again")
)

// Income and expense errors
var (
	ErrAmountNotPositive    = errors.New("the amount must be greater than zero")
	ErrDateMissing          = errors.New("the date must be set")
	ErrDescriptionEmpty     = errors.New("the description must not be empty")
	ErrExpenseCategoryEmpty = errors.New("the expense must reference a category by ID or name")
	ErrSubcategoryEmpty     = errors.New("the subcategory must not be empty")
)
