package v1

import (
	"net/http"

	"github.com/daily-envelope/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterLedgerRoutes registers the routes for the ledger with the
// RouterGroup that is passed.
func (co Controller) RegisterLedgerRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsLedger)
	r.GET("", co.GetLedger)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ledger
// @Success		204
// @Router			/v1/ledger [options]
func (co Controller) OptionsLedger(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get ledger
// @Description	Returns the append-only audit trail of vault-affecting events, in chronological order
// @Tags			Ledger
// @Produce		json
// @Success		200	{object}	LedgerResponse
// @Failure		500	{object}	httperror.Error
// @Router			/v1/ledger [get]
func (co Controller) GetLedger(c *gin.Context) {
	entries, err := co.Session.LedgerEntries()
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, LedgerResponse{Data: entries})
}
