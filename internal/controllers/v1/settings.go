package v1

import (
	"net/http"

	"github.com/daily-envelope/backend/internal/httperror"
	"github.com/daily-envelope/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterSettingsRoutes registers the routes for the tax settings with the
// RouterGroup that is passed.
func (co Controller) RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsSettings)
	r.GET("", co.GetSettings)
	r.PATCH("", co.UpdateSettings)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func (co Controller) OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get tax settings
// @Description	Returns the tax settings currently in force
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	httperror.Error
// @Router			/v1/settings [get]
func (co Controller) GetSettings(c *gin.Context) {
	settings, err := co.Session.Settings()
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: settings})
}

// @Summary		Update tax settings
// @Description	Updates the tax settings. Only set fields are changed. Expenses already recorded keep the policy that applied when they were recorded.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200		{object}	SettingsResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			request	body		TaxSettingsUpdate	true	"Settings update"
// @Router			/v1/settings [patch]
func (co Controller) UpdateSettings(c *gin.Context) {
	var request TaxSettingsUpdate
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	settings, err := co.Session.Settings()
	if err != nil {
		renderError(c, err)
		return
	}

	if err := request.apply(&settings); err != nil {
		renderError(c, err)
		return
	}

	updated, err := co.Session.UpdateSettings(settings)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: updated})
}
