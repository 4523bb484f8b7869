package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/service"
	"github.com/gin-gonic/gin"
)

type AccountsHandler struct {
	accountService AccountServicer
	ledgerService  LedgerServicer
}

func NewAccountsHandler(accountService AccountServicer, ledgerService LedgerServicer) *AccountsHandler {
	return &AccountsHandler{
		accountService: accountService,
		ledgerService:  ledgerService,
	}
}

// Index GET RouteGroup + AccountsRoute. Счета текущего клиента.
func (h *AccountsHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	accounts, err := h.accountService.ListOwn(ctx, getActorFromContext(c))
	if err != nil {
		abortWithServiceError(c, err, "Account not found.")
		return
	}
	c.JSON(http.StatusOK, newAccountsResponse(accounts))
}

// Transactions GET RouteGroup + TransactionsRoute. Выписка текущего клиента, от новых операций к старым.
// Необязательные параметры: type (credit или debit, иначе игнорируется) и account (id счета).
func (h *AccountsHandler) Transactions(c *gin.Context) {
	args := service.ListTransactionsArgs{
		Direction: domain.DirectionType(c.Query("type")),
	}
	if accountParam := c.Query("account"); accountParam != "" {
		accountID, parseErr := strconv.ParseInt(accountParam, 10, 64)
		if parseErr != nil {
			_ = c.AbortWithError(http.StatusBadRequest, errors.New("account must be an integer")).
				SetType(gin.ErrorTypePublic)
			return
		}
		args.AccountID = &accountID
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	txs, err := h.ledgerService.List(ctx, getActorFromContext(c), args)
	if err != nil {
		abortWithServiceError(c, err, "Account not found.")
		return
	}
	c.JSON(http.StatusOK, newTransactionsResponse(txs))
}
