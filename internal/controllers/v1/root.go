package v1

import (
	"net/http"

	"github.com/daily-envelope/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterRootRoutes registers the v1 root routes with the RouterGroup that
// is passed.
func (co Controller) RegisterRootRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsRoot)
	r.GET("", co.GetRoot)
	r.DELETE("", co.DeleteAll)
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Day      string `json:"day" example:"https://example.com/v1/day"`
	Expenses string `json:"expenses" example:"https://example.com/v1/expenses"`
	Settings string `json:"settings" example:"https://example.com/v1/settings"`
	Vault    string `json:"vault" example:"https://example.com/v1/vault"`
	Ledger   string `json:"ledger" example:"https://example.com/v1/ledger"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func (co Controller) OptionsRoot(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Produce		json
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func (co Controller) GetRoot(c *gin.Context) {
	url := httputil.RequestPathV1(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Day:      url + "/day",
			Expenses: url + "/expenses",
			Settings: url + "/settings",
			Vault:    url + "/vault",
			Ledger:   url + "/ledger",
		},
	})
}

// @Summary		Reset the tracker
// @Description	Removes the day ledger, the tax settings, the vault and the ledger together, returning the tracker to its pre-initialization state
// @Tags			General
// @Success		204
// @Failure		500	{object}	httperror.Error
// @Router			/v1 [delete]
func (co Controller) DeleteAll(c *gin.Context) {
	if err := co.Session.Reset(); err != nil {
		renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
