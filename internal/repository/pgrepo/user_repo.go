package pgrepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/repository/repoargs"
	"github.com/fsdevblog/bankoffice/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, created_at, updated_at, username, encrypted_password, role, created_by_id,
	email, first_name, last_name, phone, address, is_active`

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{db: conn}
}

// CreateUser создает юзера в базе данных. В случае конфликта юзернейма возвращает ошибку domain.ErrDuplicateKey,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error) {
	row := u.db.QueryRow(ctx,
		`INSERT INTO users (username, encrypted_password, role, created_by_id,
			email, first_name, last_name, phone, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+userColumns,
		user.Username,
		user.EncryptedPassword,
		string(user.Role),
		user.CreatedByID,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Address,
	)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user %s", user.Username)
	}
	return dbUser, nil
}

// FindUserByUsername ищет юзера по его юзернейму. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by username %s", username)
	}
	return dbUser, nil
}

func (u *UserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return dbUser, nil
}

// FindCustomerOf ищет клиента customerID, созданного менеджером rmID. Чужой клиент и отсутствующий клиент
// неразличимы: в обоих случаях вернется domain.ErrRecordNotFound.
func (u *UserRepository) FindCustomerOf(ctx context.Context, customerID, rmID int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 AND role = $2 AND created_by_id = $3`,
		customerID, string(domain.RoleCustomer), rmID,
	)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding customer %d of rm %d", customerID, rmID)
	}
	return dbUser, nil
}

// ListUsers возвращает юзеров по фильтру, отсортированных по дате создания по убыванию.
func (u *UserRepository) ListUsers(ctx context.Context, filter repoargs.UserFilter) ([]domain.User, error) {
	where, args := userFilterSQL(filter)
	rows, err := u.db.Query(ctx,
		`SELECT `+userColumns+` FROM users`+where+` ORDER BY created_at DESC, id DESC`,
		args...,
	)
	if err != nil {
		return nil, convertErr(err, "listing users")
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		dbUser, scanErr := scanUser(row)
		if scanErr != nil {
			return domain.User{}, scanErr
		}
		return *dbUser, nil
	})
	if err != nil {
		return nil, convertErr(err, "listing users")
	}
	return users, nil
}

// ExistsWithRole проверяет, есть ли хотя бы один юзер с ролью role.
func (u *UserRepository) ExistsWithRole(ctx context.Context, role domain.Role) (bool, error) {
	var exists bool
	if err := u.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE role = $1)`, string(role),
	).Scan(&exists); err != nil {
		return false, convertErr(err, "checking users with role %s", role)
	}
	return exists, nil
}

func userFilterSQL(filter repoargs.UserFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.Role != "" {
		args = append(args, string(filter.Role))
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}
	if filter.CreatedByID != nil {
		args = append(args, *filter.CreatedByID)
		conds = append(conds, fmt.Sprintf("created_by_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var role string
	if err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Username,
		&user.EncryptedPassword,
		&role,
		&user.CreatedByID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Phone,
		&user.Address,
		&user.IsActive,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	user.Role = domain.Role(role)
	return &user, nil
}
