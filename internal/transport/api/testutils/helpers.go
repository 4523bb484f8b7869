package testutils

import (
	"strings"
	"time"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/service/tokens"
)

// GenerateOverBytesUnderRunes генерирует строку, длина которой в рунах будет всегда меньше длины в байтах.
func GenerateOverBytesUnderRunes(count int) string {
	symbol := "😁" // 4 байта, 1 руна
	return strings.Repeat(symbol, count)
}

// AccessToken выдает access токен для actor или паникует. Только для тестов.
func AccessToken(actor domain.Actor, key []byte) string {
	token, err := tokens.GenerateUserJWT(actor.ID, actor.Role, tokens.KindAccess, time.Hour, key)
	if err != nil {
		panic(err)
	}
	return token
}
