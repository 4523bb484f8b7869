package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired   = errors.New("token expired")
	ErrWrongTokenKind = errors.New("wrong token kind")
)

type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

type UserClaims struct {
	jwt.RegisteredClaims
	ID   int64       `json:"uid"`
	Role domain.Role `json:"role"`
	Kind Kind        `json:"kind"`
}

// Actor возвращает пользователя, от имени которого выдан токен.
func (c *UserClaims) Actor() domain.Actor {
	return domain.Actor{ID: c.ID, Role: c.Role}
}

type Pair struct {
	Access  string
	Refresh string
}

// TTL время жизни токенов каждого вида.
type TTL struct {
	Access  time.Duration
	Refresh time.Duration
}

func GenerateUserJWT(id int64, role domain.Role, kind Kind, expire time.Duration, key []byte) (string, error) {
	userClaims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		ID:   id,
		Role: role,
		Kind: kind,
	}
	token, err := generateJWT(userClaims, key)
	if err != nil {
		return "", fmt.Errorf("generating user jwt token: %s", err.Error())
	}
	return token, nil
}

// GeneratePair выдает access и refresh токены для юзера.
func GeneratePair(id int64, role domain.Role, ttl TTL, key []byte) (*Pair, error) {
	access, accessErr := GenerateUserJWT(id, role, KindAccess, ttl.Access, key)
	if accessErr != nil {
		return nil, accessErr
	}
	refresh, refreshErr := GenerateUserJWT(id, role, KindRefresh, ttl.Refresh, key)
	if refreshErr != nil {
		return nil, refreshErr
	}
	return &Pair{Access: access, Refresh: refresh}, nil
}

// ValidateUserJWT проверяет подпись, срок действия и вид токена. Просроченный токен дает ErrTokenExpired,
// токен другого вида - ErrWrongTokenKind.
func ValidateUserJWT(tokenString string, kind Kind, key []byte) (*UserClaims, error) {
	token, err := validateJWT(tokenString, new(UserClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating user jwt token: %w", err)
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	if claims.Kind != kind {
		return nil, ErrWrongTokenKind
	}
	return claims, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %s", err.Error())
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	return token, nil
}
