package service

import (
	"errors"
	"regexp"
	"testing"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	accountRe := regexp.MustCompile(`^SB[0-9A-F]{10}$`)
	referenceRe := regexp.MustCompile(`^TXN[0-9A-F]{12}$`)

	seen := make(map[string]struct{})
	for range 100 {
		number := generateCode(accountNumberPrefix, accountNumberLength)
		assert.Regexp(t, accountRe, number)
		seen[number] = struct{}{}

		assert.Regexp(t, referenceRe, generateCode(referencePrefix, referenceLength))
	}
	assert.Len(t, seen, 100)
}

func TestWithUniqueCode(t *testing.T) {
	t.Run("retries duplicates", func(t *testing.T) {
		calls := 0
		code, err := withUniqueCode("SB", 10, func(code string) (string, error) {
			calls++
			if calls < 3 {
				return "", domain.ErrDuplicateKey
			}
			return code, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.Len(t, code, 12)
	})

	t.Run("gives up", func(t *testing.T) {
		calls := 0
		_, err := withUniqueCode("SB", 10, func(string) (int, error) {
			calls++
			return 0, domain.ErrDuplicateKey
		})
		require.ErrorIs(t, err, domain.ErrDuplicateKey)
		assert.Equal(t, maxCodeAttempts, calls)
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		boom := errors.New("boom")
		calls := 0
		_, err := withUniqueCode("TXN", 12, func(string) (int, error) {
			calls++
			return 0, boom
		})
		require.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})
}
