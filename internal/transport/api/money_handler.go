package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MoneyHandler struct {
	svs MoneyServicer
}

func NewMoneyHandler(svs MoneyServicer) *MoneyHandler {
	return &MoneyHandler{
		svs: svs,
	}
}

// MoveMoneyParams amount принимается и строкой, и числом.
type MoveMoneyParams struct {
	AccountID   int64           `binding:"required,gt=0"           json:"account_id"`
	Amount      decimal.Decimal `binding:"dec_gt0,dec_scale=2"     json:"amount"`
	Description string          `binding:"max=255"                 json:"description"`
}

type movementFunc func(context.Context, domain.Actor, service.MoveMoneyArgs) (*service.MovementResult, error)

// Deposit POST RouteGroup + DepositRoute.
func (h *MoneyHandler) Deposit(c *gin.Context) {
	h.move(c, h.svs.Deposit, "deposited")
}

// Withdraw POST RouteGroup + WithdrawRoute. Нехватка средств отдается как 402 с доступным остатком.
func (h *MoneyHandler) Withdraw(c *gin.Context) {
	h.move(c, h.svs.Withdraw, "withdrawn")
}

func (h *MoneyHandler) move(c *gin.Context, fn movementFunc, verb string) {
	var params MoveMoneyParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := fn(ctx, getActorFromContext(c), service.MoveMoneyArgs{
		AccountID:   params.AccountID,
		Amount:      params.Amount,
		Description: params.Description,
	})
	if err != nil {
		abortWithServiceError(c, err, "Account not found or not active.")
		return
	}

	c.JSON(http.StatusOK, MovementResponse{
		Detail:      fmt.Sprintf("%s%s %s successfully.", domain.CurrencySymbol, formatMoney(params.Amount), verb),
		Transaction: newTransactionResponse(res.Transaction),
		NewBalance:  formatMoney(res.NewBalance),
	})
}
