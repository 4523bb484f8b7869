package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

type UserLoginParams struct {
	Username string `binding:"required,max_bytes=150" json:"username"`
	Password string `binding:"required,max_bytes=128" json:"password"`
}

// Login POST RouteGroup + TokenRoute. Аутентификация по паре логин/пароль, отдает access и refresh токены.
func (h *AuthHandler) Login(c *gin.Context) {
	var params UserLoginParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, pair, err := h.userService.Login(ctx, service.LoginUserArgs{
		Username: params.Username,
		Password: params.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.AbortWithError(http.StatusUnauthorized, errors.New(invalidCredentialsText)).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Access: pair.Access, Refresh: pair.Refresh})
}

type RefreshParams struct {
	Refresh string `binding:"required" json:"refresh"`
}

// Refresh POST RouteGroup + TokenRefreshRoute. Обменивает refresh токен на новую пару.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var params RefreshParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	pair, err := h.userService.Refresh(ctx, params.Refresh)
	if err != nil {
		abortWithServiceError(c, err, invalidTokenText)
		return
	}
	c.JSON(http.StatusOK, TokenResponse{Access: pair.Access, Refresh: pair.Refresh})
}

// Me GET RouteGroup + MeRoute. Профиль текущего юзера.
func (h *AuthHandler) Me(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.Me(ctx, getActorFromContext(c))
	if err != nil {
		abortWithServiceError(c, err, "User not found.")
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}
