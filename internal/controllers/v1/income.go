package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tankbudget/backend/internal/auth"
	"github.com/tankbudget/backend/internal/httputil"
	"github.com/tankbudget/backend/internal/models"
)

// RegisterIncomeRoutes registers the routes for incomes with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsIncomes)

	a := r.Group("", auth.Middleware())
	{
		a.GET("", GetIncomes)
		a.POST("", CreateIncome)
		a.PUT("", UpdateIncome)
		a.DELETE("", DeleteIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes [options]
func OptionsIncomes(c *gin.Context) {
	httputil.OptionsGetPostPutDelete(c)
}

// @Summary		Get incomes
// @Description	Returns the incomes of the user with their per-category shares, newest first
// @Tags			Incomes
// @Produce		json
// @Security		Bearer
// @Success		200	{object}	IncomeListResponse
// @Failure		401	{object}	IncomeListResponse
// @Failure		500	{object}	IncomeListResponse
// @Router			/v1/incomes [get]
func GetIncomes(c *gin.Context) {
	incomes, err := models.Incomes(models.DB, auth.UserID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, IncomeListResponse{Data: incomes})
}

// @Summary		Create income
// @Description	Records an income and splits it across all categories according to their current targets
// @Tags			Incomes
// @Produce		json
// @Security		Bearer
// @Success		201		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		401		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			income	body		models.IncomeEditable	true	"Income"
// @Router			/v1/incomes [post]
func CreateIncome(c *gin.Context) {
	var editable models.IncomeEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &e})
		return
	}

	income, err := models.CreateIncome(models.DB, auth.UserID(c), editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, IncomeResponse{Data: &income})
}

// @Summary		Update income
// @Description	Updates the fields of an income that are set in the request body. Changing the amount splits it again using the current targets.
// @Tags			Incomes
// @Produce		json
// @Security		Bearer
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		401		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			income	body		IncomeUpdate	true	"Income"
// @Router			/v1/incomes [put]
func UpdateIncome(c *gin.Context) {
	var update IncomeUpdate
	err := httputil.BindData(c, &update)
	if err == nil && update.ID == uuid.Nil {
		err = errIDMissing
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &e})
		return
	}

	income, err := models.UpdateIncome(models.DB, auth.UserID(c), update.ID, models.IncomeUpdate{
		Amount:      update.Amount,
		Description: update.Description,
		Date:        update.Date,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, IncomeResponse{Data: &income})
}

// @Summary		Delete income
// @Description	Deletes an income with its per-category shares
// @Tags			Incomes
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	query		string	true	"ID of the income"
// @Router			/v1/incomes [delete]
func DeleteIncome(c *gin.Context) {
	var query IDQuery
	err := httputil.BindQuery(c, &query)
	if err == nil && query.ID.IsNil() {
		err = errIDParameter
	}

	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DeleteIncome(models.DB, auth.UserID(c), query.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
