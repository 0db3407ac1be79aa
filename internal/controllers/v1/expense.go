package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tankbudget/backend/internal/auth"
	"github.com/tankbudget/backend/internal/httputil"
	"github.com/tankbudget/backend/internal/models"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExpenses)
	r.OPTIONS("/category-remaining", OptionsCategoryRemaining)

	a := r.Group("", auth.Middleware())
	{
		a.GET("", GetExpenses)
		a.POST("", CreateExpense)
		a.PUT("", UpdateExpense)
		a.DELETE("", DeleteExpense)
		a.GET("/category-remaining", GetCategoryRemaining)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenses(c *gin.Context) {
	httputil.OptionsGetPostPutDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses/category-remaining [options]
func OptionsCategoryRemaining(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get expenses
// @Description	Returns the expenses of the user, newest first
// @Tags			Expenses
// @Produce		json
// @Security		Bearer
// @Success		200			{object}	ExpenseListResponse
// @Failure		400			{object}	ExpenseListResponse
// @Failure		401			{object}	ExpenseListResponse
// @Failure		500			{object}	ExpenseListResponse
// @Param			categoryId	query		string	false	"Filter by category ID"
// @Param			category	query		string	false	"Filter by category name, case insensitive"
// @Param			description	query		string	false	"Filter by description. * matches any text."
// @Router			/v1/expenses [get]
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	err := httputil.BindQuery(c, &filter)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &e})
		return
	}

	expenses, err := models.Expenses(models.DB, auth.UserID(c), models.ExpenseFilter{
		CategoryID:  filter.CategoryID.UUID,
		Category:    filter.Category,
		Description: filter.Description,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

// @Summary		Create expense
// @Description	Creates a new expense. If categoryId is not set, the category is looked up by its name.
// @Tags			Expenses
// @Produce		json
// @Security		Bearer
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		401		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			expense	body		models.ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable models.ExpenseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	expense, err := models.CreateExpense(models.DB, auth.UserID(c), editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: &expense})
}

// @Summary		Update expense
// @Description	Updates the fields of an expense that are set in the request body
// @Tags			Expenses
// @Produce		json
// @Security		Bearer
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		401		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			expense	body		ExpenseUpdate	true	"Expense"
// @Router			/v1/expenses [put]
func UpdateExpense(c *gin.Context) {
	var update ExpenseUpdate
	err := httputil.BindData(c, &update)
	if err == nil && update.ID == uuid.Nil {
		err = errIDMissing
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	expense, err := models.UpdateExpense(models.DB, auth.UserID(c), update.ID, models.ExpenseUpdate{
		Amount:      update.Amount,
		CategoryID:  update.CategoryID,
		Category:    update.Category,
		Subcategory: update.Subcategory,
		Description: update.Description,
		Date:        update.Date,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	query		string	true	"ID of the expense"
// @Router			/v1/expenses [delete]
func DeleteExpense(c *gin.Context) {
	var query IDQuery
	err := httputil.BindQuery(c, &query)
	if err == nil && query.ID.IsNil() {
		err = errIDParameter
	}

	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DeleteExpense(models.DB, auth.UserID(c), query.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Get remaining amount per category
// @Description	Returns the target, spent and remaining amount for every category that has an income share or an expense
// @Tags			Expenses
// @Produce		json
// @Security		Bearer
// @Success		200		{object}	RemainingResponse
// @Failure		400		{object}	RemainingResponse
// @Failure		401		{object}	RemainingResponse
// @Failure		500		{object}	RemainingResponse
// @Param			userId	query		string	false	"ID of the user. Must be the authenticated user if set."
// @Router			/v1/expenses/category-remaining [get]
func GetCategoryRemaining(c *gin.Context) {
	var query RemainingQuery
	err := httputil.BindQuery(c, &query)

	userID := auth.UserID(c)
	if err == nil && !query.UserID.IsNil() && query.UserID.UUID != userID {
		err = errUserMismatch
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), RemainingResponse{Error: &e})
		return
	}

	remaining, err := models.CategoryRemaining(models.DB, userID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RemainingResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, RemainingResponse{Data: remaining})
}
