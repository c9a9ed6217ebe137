package v1

import (
	"net/http"

	"github.com/daily-envelope/backend/internal/httperror"
	"github.com/daily-envelope/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registers the routes for expenses with the
// RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsExpenses)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Expense at a position
	{
		r.OPTIONS("/:index", co.OptionsExpenseDetail)
		r.GET("/:index", co.GetExpense)
		r.PATCH("/:index", co.UpdateExpense)
		r.DELETE("/:index", co.DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func (co Controller) OptionsExpenses(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Param			index	path	int	true	"Position of the expense"
// @Router			/v1/expenses/{index} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get expenses
// @Description	Returns the active day's expenses in recording order
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/v1/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	state, err := co.Session.State()
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: newDay(state).Expenses})
}

// @Summary		Record an expense
// @Description	Records an expense against the active day. The tax in force right now is assessed, accrued into the vault and written to the ledger.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	DayResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			request	body		ExpenseCreate	true	"Expense"
// @Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var request ExpenseCreate
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	amount, err := httputil.ParseAmount(request.Amount)
	if err != nil {
		renderError(c, err)
		return
	}

	state, err := co.Session.AddExpense(amount, request.Name)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, DayResponse{Data: newDay(state)})
}

// @Summary		Get expense
// @Description	Returns the expense at a position in the active day's list
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			index	path		int	true	"Position of the expense"
// @Router			/v1/expenses/{index} [get]
func (co Controller) GetExpense(c *gin.Context) {
	var uri URIIndex
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	state, err := co.Session.State()
	if err != nil {
		renderError(c, err)
		return
	}

	expense, err := state.Day.Expenses.At(uri.Index)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: newExpense(uri.Index, expense)})
}

// @Summary		Edit expense
// @Description	Replaces the expense at a position with one for the new amount. The old tax is reversed, then the tax for the new amount is assessed and accrued. The name is preserved.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	DayResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			index	path		int				true	"Position of the expense"
// @Param			request	body		ExpenseUpdate	true	"New amount"
// @Router			/v1/expenses/{index} [patch]
func (co Controller) UpdateExpense(c *gin.Context) {
	var uri URIIndex
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	var request ExpenseUpdate
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	amount, err := httputil.ParseAmount(request.Amount)
	if err != nil {
		renderError(c, err)
		return
	}

	state, err := co.Session.EditExpense(uri.Index, amount)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, DayResponse{Data: newDay(state)})
}

// @Summary		Delete expense
// @Description	Removes the expense at a position, reversing its tax out of the vault with a matching ledger entry
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	DayResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			index	path		int	true	"Position of the expense"
// @Router			/v1/expenses/{index} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	var uri URIIndex
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	state, err := co.Session.DeleteExpense(uri.Index)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, DayResponse{Data: newDay(state)})
}
