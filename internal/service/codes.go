package service

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/google/uuid"
)

const (
	accountNumberPrefix = "SB"
	accountNumberLength = 10
	referencePrefix     = "TXN"
	referenceLength     = 12

	maxCodeAttempts = 5
)

// generateCode возвращает prefix и length случайных hex символов в верхнем регистре. length не больше 32.
func generateCode(prefix string, length int) string {
	id := uuid.New()
	return prefix + strings.ToUpper(hex.EncodeToString(id[:]))[:length]
}

// withUniqueCode вызывает create со свежесгенерированным кодом, пока create возвращает domain.ErrDuplicateKey,
// но не более maxCodeAttempts раз.
func withUniqueCode[T any](prefix string, length int, create func(code string) (T, error)) (T, error) {
	var res T
	var err error
	for range maxCodeAttempts {
		res, err = create(generateCode(prefix, length))
		if err == nil || !errors.Is(err, domain.ErrDuplicateKey) {
			return res, err
		}
	}
	return res, fmt.Errorf("generating unique %s code after %d attempts: %w", prefix, maxCodeAttempts, err)
}
