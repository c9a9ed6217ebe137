package v1

import (
	"net/http"

	"github.com/daily-envelope/backend/internal/httperror"
	"github.com/daily-envelope/backend/internal/httputil"
	"github.com/daily-envelope/backend/internal/models"
	"github.com/daily-envelope/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterDayRoutes registers the routes for the day ledger with the
// RouterGroup that is passed.
func (co Controller) RegisterDayRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsDay)
	r.GET("", co.GetDay)
	r.POST("", co.CreateDay)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Day
// @Success		204
// @Router			/v1/day [options]
func (co Controller) OptionsDay(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Start the day ledger
// @Description	Initializes the daily allowance and start date. Optionally persists the tax settings chosen during setup. Replaces any previously active day; vault and ledger are kept.
// @Tags			Day
// @Accept			json
// @Produce		json
// @Success		201		{object}	DayResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			request	body		StartRequest	true	"Day ledger configuration"
// @Router			/v1/day [post]
func (co Controller) CreateDay(c *gin.Context) {
	var request StartRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	dailyAmount, err := httputil.ParseAmount(request.DailyAmount)
	if err != nil {
		renderError(c, err)
		return
	}

	startDate, err := types.ParseDay(request.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	var settings *models.TaxSettings
	if request.Tax != nil {
		s := models.DefaultTaxSettings()
		if err := request.Tax.apply(&s); err != nil {
			renderError(c, err)
			return
		}
		settings = &s
	}

	state, err := co.Session.Start(dailyAmount, startDate, settings)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, DayResponse{Data: newDay(state)})
}

// @Summary		Get the day ledger
// @Description	Returns the active day with its live balance. The day is rolled over first, the balance is always "as of now".
// @Tags			Day
// @Produce		json
// @Success		200	{object}	DayResponse
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/v1/day [get]
func (co Controller) GetDay(c *gin.Context) {
	state, err := co.Session.State()
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, DayResponse{Data: newDay(state)})
}
