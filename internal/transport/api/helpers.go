package api

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	invalidAmountText      = "Ensure amount is greater than zero, has at most 2 decimal places and 10 integer digits."
	invalidTransitionText  = "This status change is not allowed."
	invalidCredentialsText = "No active account found with the given credentials."
	invalidTokenText       = "Token is invalid or expired."
)

// getActorFromContext берет из контекста gin текущего юзера. Юзер устанавливается в middlewares.AuthRequired.
// Если его нет, вернется пустой domain.Actor, который сервисы отклонят с domain.ErrForbidden.
func getActorFromContext(c *gin.Context) domain.Actor {
	actor, _ := middlewares.ActorFromContext(c)
	return actor
}

// bindJSON разбирает тело запроса в obj. Ошибки валидации отдаются как 422 с описанием по полям,
// нечитаемое тело как 400. Возвращает false, если запрос уже прерван.
func bindJSON(c *gin.Context, obj any) bool {
	bindErr := c.ShouldBindJSON(obj)
	if bindErr == nil {
		return true
	}
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": validationErrorsMap(valErrs)})
		return false
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
	return false
}

// abortWithServiceError переводит ошибку сервисного слоя в HTTP ответ. notFoundText уходит клиенту
// при domain.ErrRecordNotFound.
func abortWithServiceError(c *gin.Context, err error, notFoundText string) {
	var balanceErr *domain.InsufficientBalanceError
	switch {
	case errors.As(err, &balanceErr):
		_ = c.AbortWithError(http.StatusPaymentRequired, balanceErr).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrRecordNotFound):
		_ = c.AbortWithError(http.StatusNotFound, errors.New(notFoundText)).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrForbidden):
		_ = c.AbortWithError(http.StatusForbidden, errors.New(middlewares.PermissionDeniedText)).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrInvalidAmount):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, errors.New(invalidAmountText)).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		_ = c.AbortWithError(http.StatusConflict, errors.New(invalidTransitionText)).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrDuplicateKey):
		_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrInvalidToken):
		_ = c.AbortWithError(http.StatusUnauthorized, errors.New(invalidTokenText)).SetType(gin.ErrorTypePublic)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
