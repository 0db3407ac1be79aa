package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tankbudget/backend/internal/httputil"
	"github.com/tankbudget/backend/internal/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Auth       string `json:"auth" example:"https://example.com/api/v1/auth"`             // URL of the authentication endpoints
	Categories string `json:"categories" example:"https://example.com/api/v1/categories"` // URL of Category collection endpoint
	Expenses   string `json:"expenses" example:"https://example.com/api/v1/expenses"`     // URL of Expense collection endpoint
	Incomes    string `json:"incomes" example:"https://example.com/api/v1/incomes"`       // URL of Income collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Auth:       url + "/v1/auth",
			Categories: url + "/v1/categories",
			Expenses:   url + "/v1/expenses",
			Incomes:    url + "/v1/incomes",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
