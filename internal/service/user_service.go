package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/repository/repoargs"
	"github.com/fsdevblog/bankoffice/internal/service/tokens"
	"github.com/fsdevblog/bankoffice/pkg/uow"
)

type UserService struct {
	uow       uow.UOW
	userRepo  UserRepository
	psswd     PasswordHasher
	jwtSecret []byte
	tokenTTL  tokens.TTL
}

func NewUserService(u uow.UOW, psswd PasswordHasher, jwtSecret []byte, ttl tokens.TTL) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:       u,
		userRepo:  userRepo,
		psswd:     psswd,
		jwtSecret: jwtSecret,
		tokenTTL:  ttl,
	}, nil
}

type LoginUserArgs struct {
	Username string
	Password string
}

// Login аутентифицирует юзера по паре логин/пароль и выдает пару токенов. Неизвестный юзер дает
// domain.ErrRecordNotFound, неверный пароль или отключенный юзер - domain.ErrPasswordMissMatch.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, *tokens.Pair, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, args.Username)
	if err != nil {
		return nil, nil, fmt.Errorf("login: %w", err)
	}
	if !user.IsActive || !s.psswd.ComparePassword(args.Password, user.EncryptedPassword) {
		return nil, nil, fmt.Errorf("login: %w", domain.ErrPasswordMissMatch)
	}

	pair, pairErr := tokens.GeneratePair(user.ID, user.Role, s.tokenTTL, s.jwtSecret)
	if pairErr != nil {
		return nil, nil, fmt.Errorf("login: %w", pairErr)
	}
	return user, pair, nil
}

// Refresh выдает новую пару токенов по refresh токену. Роль берется из базы, а не из токена.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*tokens.Pair, error) {
	claims, err := tokens.ValidateUserJWT(refreshToken, tokens.KindRefresh, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("refresh: %w: %s", domain.ErrInvalidToken, err.Error())
	}
	user, userErr := s.userRepo.FindUserByID(ctx, claims.ID)
	if userErr != nil {
		if errors.Is(userErr, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("refresh: %w", domain.ErrInvalidToken)
		}
		return nil, fmt.Errorf("refresh: %w", userErr)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("refresh: %w", domain.ErrInvalidToken)
	}
	pair, pairErr := tokens.GeneratePair(user.ID, user.Role, s.tokenTTL, s.jwtSecret)
	if pairErr != nil {
		return nil, fmt.Errorf("refresh: %w", pairErr)
	}
	return pair, nil
}

// Me возвращает профиль текущего юзера.
func (s *UserService) Me(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	if !domain.Authenticated(actor) {
		return nil, domain.ErrForbidden
	}
	user, err := s.userRepo.FindUserByID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	return user, nil
}

type CreateUserArgs struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Address   string
}

// CreateManager создает менеджера. Доступно только супер админу, который записывается создателем.
func (s *UserService) CreateManager(ctx context.Context, actor domain.Actor, args CreateUserArgs) (*domain.User, error) {
	if !domain.SuperAdminOnly(actor) {
		return nil, domain.ErrForbidden
	}
	createArgs, argsErr := s.createUserArgs(args, domain.RoleRM, &actor.ID)
	if argsErr != nil {
		return nil, fmt.Errorf("creating manager: %w", argsErr)
	}
	user, err := s.userRepo.CreateUser(ctx, createArgs)
	if err != nil {
		return nil, fmt.Errorf("creating manager: %w", err)
	}
	return user, nil
}

// CreateCustomer создает клиента от имени менеджера actor и в той же транзакции открывает ему
// сберегательный счет с нулевым балансом.
func (s *UserService) CreateCustomer(
	ctx context.Context,
	actor domain.Actor,
	args CreateUserArgs,
) (*domain.User, *domain.Account, error) {
	if !domain.RMOnly(actor) {
		return nil, nil, domain.ErrForbidden
	}
	createArgs, argsErr := s.createUserArgs(args, domain.RoleCustomer, &actor.ID)
	if argsErr != nil {
		return nil, nil, fmt.Errorf("creating customer: %w", argsErr)
	}

	var user *domain.User
	var account *domain.Account
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		accountRepo, accountRepoErr :=
			uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accountRepoErr != nil {
			return accountRepoErr //nolint:wrapcheck
		}

		var userErr, accountErr error
		user, userErr = userRepo.CreateUser(c, createArgs)
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}
		account, accountErr = openAccount(c, accountRepo, user.ID, domain.AccountTypeSavings)
		return accountErr
	})
	if txErr != nil {
		return nil, nil, fmt.Errorf("creating customer: %w", txErr)
	}
	return user, account, nil
}

// ListManagers возвращает всех менеджеров, от новых к старым.
func (s *UserService) ListManagers(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	if !domain.SuperAdminOnly(actor) {
		return nil, domain.ErrForbidden
	}
	return s.listUsers(ctx, repoargs.UserFilter{Role: domain.RoleRM})
}

// ListCustomers возвращает клиентов, созданных менеджером actor.
func (s *UserService) ListCustomers(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	if !domain.RMOnly(actor) {
		return nil, domain.ErrForbidden
	}
	return s.listUsers(ctx, repoargs.UserFilter{Role: domain.RoleCustomer, CreatedByID: &actor.ID})
}

// ListAllCustomers возвращает всех клиентов банка.
func (s *UserService) ListAllCustomers(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	if !domain.SuperAdminOnly(actor) {
		return nil, domain.ErrForbidden
	}
	return s.listUsers(ctx, repoargs.UserFilter{Role: domain.RoleCustomer})
}

// EnsureSuperAdmin создает супер админа, если в системе его еще нет. Возвращает true, если юзер был создан.
func (s *UserService) EnsureSuperAdmin(ctx context.Context, username, password string) (bool, error) {
	exists, err := s.userRepo.ExistsWithRole(ctx, domain.RoleSuperAdmin)
	if err != nil {
		return false, fmt.Errorf("ensuring super admin: %w", err)
	}
	if exists {
		return false, nil
	}
	createArgs, argsErr := s.createUserArgs(CreateUserArgs{Username: username, Password: password},
		domain.RoleSuperAdmin, nil)
	if argsErr != nil {
		return false, fmt.Errorf("ensuring super admin: %w", argsErr)
	}
	if _, createErr := s.userRepo.CreateUser(ctx, createArgs); createErr != nil {
		return false, fmt.Errorf("ensuring super admin: %w", createErr)
	}
	return true, nil
}

func (s *UserService) listUsers(ctx context.Context, filter repoargs.UserFilter) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// createUserArgs хеширует пароль и собирает аргументы репозитория. Роль и создатель никогда не приходят от клиента.
func (s *UserService) createUserArgs(
	args CreateUserArgs,
	role domain.Role,
	createdByID *int64,
) (repoargs.CreateUser, error) {
	hash, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return repoargs.CreateUser{}, hashErr //nolint:wrapcheck
	}
	return repoargs.CreateUser{
		Username:          args.Username,
		EncryptedPassword: hash,
		Role:              role,
		CreatedByID:       createdByID,
		Email:             args.Email,
		FirstName:         args.FirstName,
		LastName:          args.LastName,
		Phone:             args.Phone,
		Address:           args.Address,
	}, nil
}
