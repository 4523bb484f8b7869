package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/service/tokens"
	"github.com/gin-gonic/gin"
)

var (
	ErrTokenNotExist = errors.New("token not exist")
	ErrInvalidActor  = errors.New("invalid actor in token")
)

const CurrentActorKey = "currentActor"

const PermissionDeniedText = "You do not have permission to perform this action."

// checkAuthorization извлекает access токен из заголовка Authorization и проверяет его. Если токен не передан,
// вернется ошибка ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*tokens.UserClaims, error) {
	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "

	if len(tokenHeader) < len(bearer) || !strings.EqualFold(tokenHeader[:len(bearer)], bearer) {
		return nil, ErrTokenNotExist
	}

	claims, err := tokens.ValidateUserJWT(tokenHeader[len(bearer):], tokens.KindAccess, jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("check authorization: %w", err)
	}
	return claims, nil
}

// AuthRequired проверяет, что запрос авторизован. Записывает в контекст (поле CurrentActorKey)
// domain.Actor из токена.
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			_ = c.AbortWithError(http.StatusUnauthorized, err).SetType(gin.ErrorTypePrivate)
			return
		}
		actor := claims.Actor()
		if !domain.Authenticated(actor) {
			_ = c.AbortWithError(http.StatusUnauthorized, ErrInvalidActor).SetType(gin.ErrorTypePrivate)
			return
		}
		c.Set(CurrentActorKey, actor)
		c.Next()
	}
}

// RequireRole пропускает запрос дальше, только если текущий юзер проходит проверку allow.
// Должен стоять после AuthRequired.
func RequireRole(allow domain.RolePredicate) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, _ := ActorFromContext(c)
		if !allow(actor) {
			_ = c.AbortWithError(http.StatusForbidden, errors.New(PermissionDeniedText)).
				SetType(gin.ErrorTypePublic)
			return
		}
		c.Next()
	}
}

// ActorFromContext возвращает юзера, записанного AuthRequired. Если его нет, вернется пустой domain.Actor,
// который не проходит ни одну проверку ролей.
func ActorFromContext(c *gin.Context) (domain.Actor, bool) {
	v, exist := c.Get(CurrentActorKey)
	if !exist {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
