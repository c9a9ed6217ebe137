package v1

import (
	"net/http"

	"github.com/daily-envelope/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterVaultRoutes registers the routes for the vault with the
// RouterGroup that is passed.
func (co Controller) RegisterVaultRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsVault)
	r.GET("", co.GetVault)

	r.OPTIONS("/withdrawal", co.OptionsVaultWithdrawal)
	r.POST("/withdrawal", co.CreateVaultWithdrawal)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Vault
// @Success		204
// @Router			/v1/vault [options]
func (co Controller) OptionsVault(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Vault
// @Success		204
// @Router			/v1/vault/withdrawal [options]
func (co Controller) OptionsVaultWithdrawal(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get vault
// @Description	Returns the vault balance and the tax accrued by the active day's expenses
// @Tags			Vault
// @Produce		json
// @Success		200	{object}	VaultResponse
// @Failure		500	{object}	httperror.Error
// @Router			/v1/vault [get]
func (co Controller) GetVault(c *gin.Context) {
	report, err := co.Session.VaultReport()
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, VaultResponse{Data: Vault{
		Balance:  report.Balance,
		TaxToday: report.TaxToday,
	}})
}

// @Summary		Withdraw the vault
// @Description	Empties the vault, recording a manual withdrawal in the ledger, and returns the withdrawn amount. Used when the accrued tax is converted into an external purchase.
// @Tags			Vault
// @Produce		json
// @Success		201	{object}	WithdrawalResponse
// @Failure		500	{object}	httperror.Error
// @Router			/v1/vault/withdrawal [post]
func (co Controller) CreateVaultWithdrawal(c *gin.Context) {
	withdrawn, err := co.Session.WithdrawVault()
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, WithdrawalResponse{Data: Withdrawal{Amount: withdrawn}})
}
