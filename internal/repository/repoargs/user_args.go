package repoargs

import "github.com/fsdevblog/bankoffice/internal/domain"

type CreateUser struct {
	Username          string
	EncryptedPassword string
	Role              domain.Role
	CreatedByID       *int64
	Email             string
	FirstName         string
	LastName          string
	Phone             string
	Address           string
}

// UserFilter пустые поля не участвуют в отборе.
type UserFilter struct {
	Role        domain.Role
	CreatedByID *int64
}
