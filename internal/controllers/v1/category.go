package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/tankbudget/backend/internal/auth"
	"github.com/tankbudget/backend/internal/httputil"
	"github.com/tankbudget/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategories)
	r.OPTIONS("/targets", OptionsCategoryTargets)

	a := r.Group("", auth.Middleware())
	{
		a.GET("", GetCategories)
		a.POST("", CreateCategory)
		a.PUT("", UpdateCategory)
		a.PATCH("", SetTargets)
		a.DELETE("", DeleteCategory)
		a.POST("/targets", SetTargets)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGetPostPutPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories/targets [options]
func OptionsCategoryTargets(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get categories
// @Description	Returns all categories of the user with their subcategories
// @Tags			Categories
// @Produce		json
// @Security		Bearer
// @Success		200	{object}	CategoryListResponse
// @Failure		401	{object}	CategoryListResponse
// @Failure		404	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	userID := auth.UserID(c)

	categories, err := models.Categories(models.DB, userID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	revision, err := models.TargetsRevision(models.DB, userID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data:            categories,
		TargetsRevision: revision,
	})
}

// @Summary		Create category or subcategory
// @Description	Creates a new category with a target of 0%. If categoryId is set, a subcategory is added to that category instead.
// @Tags			Categories
// @Produce		json
// @Security		Bearer
// @Success		201			{object}	CategoryResponse
// @Success		201			{object}	SubCategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		401			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryCreate	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var create CategoryCreate
	err := httputil.BindData(c, &create)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	userID := auth.UserID(c)

	if create.CategoryID != nil {
		subCategory, err := models.AddSubCategory(models.DB, userID, *create.CategoryID, create.Name)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), SubCategoryResponse{Error: &e})
			return
		}

		c.JSON(http.StatusCreated, SubCategoryResponse{Data: &subCategory})
		return
	}

	category, err := models.CreateCategory(models.DB, userID, create.Name)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: &category})
}

// @Summary		Update category
// @Description	Updates the name and/or target of a category. Renaming a category renames it on all of its expenses.
// @Tags			Categories
// @Produce		json
// @Security		Bearer
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		401			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryUpdate	true	"Category"
// @Router			/v1/categories [put]
func UpdateCategory(c *gin.Context) {
	var update CategoryUpdate
	err := httputil.BindData(c, &update)
	if err == nil && update.ID == uuid.Nil {
		err = errIDMissing
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	category, err := models.UpdateCategory(models.DB, auth.UserID(c), update.ID, models.CategoryUpdate{
		Name:   update.Name,
		Target: update.Target,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// @Summary		Set targets
// @Description	Sets the target percentages of all categories at once. Targets must sum up to 100%. Categories not in the list are set to 0%.
// @Tags			Categories
// @Produce		json
// @Security		Bearer
// @Success		200		{object}	TargetsResponse
// @Failure		400		{object}	TargetsResponse
// @Failure		401		{object}	TargetsResponse
// @Failure		409		{object}	TargetsResponse
// @Failure		500		{object}	TargetsResponse
// @Param			targets	body		TargetsUpdate	true	"Targets"
// @Router			/v1/categories [patch]
// @Router			/v1/categories/targets [post]
func SetTargets(c *gin.Context) {
	var update TargetsUpdate
	err := httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TargetsResponse{Error: &e})
		return
	}

	entries, err := targetEntries(update.Targets)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TargetsResponse{Error: &e})
		return
	}

	userID := auth.UserID(c)

	revision, err := models.SetTargets(models.DB, userID, entries, update.Revision)
	if err != nil {
		log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("targets rejected")
		e := err.Error()
		c.JSON(status(err), TargetsResponse{Error: &e})
		return
	}

	categories, err := models.Categories(models.DB, userID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TargetsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TargetsResponse{Data: &Targets{
		TargetsRevision: revision,
		Categories:      categories,
	}})
}

// @Summary		Delete category or subcategory
// @Description	Deletes a category with all its subcategories. If subcategoryId is set, only that subcategory is deleted.
// @Tags			Categories
// @Security		Bearer
// @Success		204
// @Failure		400				{object}	httpError
// @Failure		401				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			categoryId		query		string	true	"ID of the category"
// @Param			subcategoryId	query		string	false	"ID of the subcategory"
// @Router			/v1/categories [delete]
func DeleteCategory(c *gin.Context) {
	var query CategoryDeleteQuery
	err := httputil.BindQuery(c, &query)
	if err == nil && query.CategoryID.IsNil() {
		err = errCategoryIDParameter
	}

	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	userID := auth.UserID(c)

	if query.SubCategoryID.IsNil() {
		err = models.DeleteCategory(models.DB, userID, query.CategoryID.UUID)
	} else {
		err = models.DeleteSubCategory(models.DB, userID, query.CategoryID.UUID, query.SubCategoryID.UUID)
	}

	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// targetEntries parses the targets of a batch. A target that is missing,
// null or anything but a JSON number is rejected.
func targetEntries(entries []TargetEntry) ([]models.TargetEntry, error) {
	parsed := make([]models.TargetEntry, 0, len(entries))
	for _, e := range entries {
		raw := strings.TrimSpace(string(e.Target))
		if raw == "" || raw == "null" || strings.HasPrefix(raw, `"`) {
			return nil, fmt.Errorf("%w, the target for category %s is not a number", models.ErrInvalidPercentageValue, e.CategoryID)
		}

		target, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w, the target for category %s is not a number", models.ErrInvalidPercentageValue, e.CategoryID)
		}

		parsed = append(parsed, models.TargetEntry{CategoryID: e.CategoryID, Target: target})
	}

	return parsed, nil
}
