package service

import (
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/repository/repoargs"
	"github.com/fsdevblog/bankoffice/internal/service/mocks"
	"github.com/fsdevblog/bankoffice/internal/service/tokens"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	repoMocksSuite
	mockHasher  *mocks.MockPasswordHasher
	jwtSecret   []byte
	ttl         tokens.TTL
	userService *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	s.repoMocksSuite.SetupTest()
	s.mockHasher = mocks.NewMockPasswordHasher(s.mockCtrl)
	s.jwtSecret = []byte("test secret")
	s.ttl = tokens.TTL{Access: time.Minute, Refresh: time.Hour}

	userService, err := NewUserService(s.mockUOW, s.mockHasher, s.jwtSecret, s.ttl)
	s.Require().NoError(err)
	s.userService = userService
}

func (s *UserServiceTestSuite) fakeUser(id int64, role domain.Role) *domain.User {
	return &domain.User{
		ID:                id,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
		Username:          gofakeit.Username(),
		EncryptedPassword: "hashed",
		Role:              role,
		Email:             gofakeit.Email(),
		FirstName:         gofakeit.FirstName(),
		LastName:          gofakeit.LastName(),
		IsActive:          true,
	}
}

func (s *UserServiceTestSuite) TestLogin() {
	active := s.fakeUser(1, domain.RoleRM)
	inactive := s.fakeUser(2, domain.RoleCustomer)
	inactive.IsActive = false

	s.mockUserRepo.EXPECT().FindUserByUsername(gomock.Any(), active.Username).Return(active, nil).Times(2)
	s.mockUserRepo.EXPECT().FindUserByUsername(gomock.Any(), inactive.Username).Return(inactive, nil)
	s.mockUserRepo.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(nil, domain.ErrRecordNotFound)

	s.mockHasher.EXPECT().ComparePassword("right", "hashed").Return(true).AnyTimes()
	s.mockHasher.EXPECT().ComparePassword("wrong", "hashed").Return(false).AnyTimes()

	cases := []struct {
		name    string
		args    LoginUserArgs
		wantErr error
	}{
		{
			name: "all ok",
			args: LoginUserArgs{Username: active.Username, Password: "right"},
		}, {
			name:    "wrong password",
			args:    LoginUserArgs{Username: active.Username, Password: "wrong"},
			wantErr: domain.ErrPasswordMissMatch,
		}, {
			name:    "inactive user",
			args:    LoginUserArgs{Username: inactive.Username, Password: "right"},
			wantErr: domain.ErrPasswordMissMatch,
		}, {
			name:    "unknown user",
			args:    LoginUserArgs{Username: "ghost", Password: "right"},
			wantErr: domain.ErrRecordNotFound,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			user, pair, err := s.userService.Login(s.T().Context(), t.args)
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Equal(active.ID, user.ID)

			claims, claimsErr := tokens.ValidateUserJWT(pair.Access, tokens.KindAccess, s.jwtSecret)
			s.Require().NoError(claimsErr)
			s.Equal(domain.Actor{ID: active.ID, Role: domain.RoleRM}, claims.Actor())
		})
	}
}

func (s *UserServiceTestSuite) TestRefresh() {
	user := s.fakeUser(5, domain.RoleCustomer)
	pair, err := tokens.GeneratePair(user.ID, user.Role, s.ttl, s.jwtSecret)
	s.Require().NoError(err)

	s.Run("refresh token", func() {
		s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), user.ID).Return(user, nil)
		newPair, refreshErr := s.userService.Refresh(s.T().Context(), pair.Refresh)
		s.Require().NoError(refreshErr)
		s.NotEmpty(newPair.Access)
		s.NotEmpty(newPair.Refresh)
	})

	s.Run("access token as refresh", func() {
		_, refreshErr := s.userService.Refresh(s.T().Context(), pair.Access)
		s.Require().ErrorIs(refreshErr, domain.ErrInvalidToken)
	})

	s.Run("deleted user", func() {
		s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), user.ID).Return(nil, domain.ErrRecordNotFound)
		_, refreshErr := s.userService.Refresh(s.T().Context(), pair.Refresh)
		s.Require().ErrorIs(refreshErr, domain.ErrInvalidToken)
	})
}

func (s *UserServiceTestSuite) TestCreateManager() {
	admin := domain.Actor{ID: 1, Role: domain.RoleSuperAdmin}

	s.Run("forbidden for rm", func() {
		_, err := s.userService.CreateManager(s.T().Context(), domain.Actor{ID: 2, Role: domain.RoleRM},
			CreateUserArgs{Username: "rm2", Password: "pass"})
		s.Require().ErrorIs(err, domain.ErrForbidden)
	})

	s.Run("created by super admin", func() {
		s.mockHasher.EXPECT().HashPassword("pass").Return("hashed", nil)
		s.mockUserRepo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, args repoargs.CreateUser) (*domain.User, error) {
				s.Equal(domain.RoleRM, args.Role)
				s.Require().NotNil(args.CreatedByID)
				s.Equal(admin.ID, *args.CreatedByID)
				s.Equal("hashed", args.EncryptedPassword)
				return &domain.User{ID: 10, Username: args.Username, Role: args.Role}, nil
			})

		user, err := s.userService.CreateManager(s.T().Context(), admin,
			CreateUserArgs{Username: "rm1", Password: "pass"})
		s.Require().NoError(err)
		s.Equal(domain.RoleRM, user.Role)
	})
}

func (s *UserServiceTestSuite) TestCreateCustomer() {
	rm := domain.Actor{ID: 3, Role: domain.RoleRM}

	s.Run("forbidden for super admin", func() {
		_, _, err := s.userService.CreateCustomer(s.T().Context(), domain.Actor{ID: 1, Role: domain.RoleSuperAdmin},
			CreateUserArgs{Username: "c1", Password: "pass"})
		s.Require().ErrorIs(err, domain.ErrForbidden)
	})

	s.Run("opens savings account", func() {
		s.mockHasher.EXPECT().HashPassword("pass").Return("hashed", nil)
		s.expectTx()
		s.mockUserRepo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, args repoargs.CreateUser) (*domain.User, error) {
				s.Equal(domain.RoleCustomer, args.Role)
				s.Equal(rm.ID, *args.CreatedByID)
				return &domain.User{ID: 20, Username: args.Username, Role: args.Role}, nil
			})

		var numbers []string
		// первый номер счета уже занят.
		s.mockAccountRepo.EXPECT().
			CreateAccount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, args repoargs.CreateAccount) (*domain.Account, error) {
				numbers = append(numbers, args.AccountNumber)
				return nil, domain.ErrDuplicateKey
			})
		s.mockAccountRepo.EXPECT().
			CreateAccount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, args repoargs.CreateAccount) (*domain.Account, error) {
				numbers = append(numbers, args.AccountNumber)
				s.Equal(int64(20), args.UserID)
				s.Equal(domain.AccountTypeSavings, args.AccountType)
				s.True(args.Balance.IsZero())
				return &domain.Account{ID: 30, UserID: args.UserID, AccountNumber: args.AccountNumber,
					AccountType: args.AccountType, Balance: args.Balance, IsActive: true}, nil
			})

		user, account, err := s.userService.CreateCustomer(s.T().Context(), rm,
			CreateUserArgs{Username: "c1", Password: "pass"})
		s.Require().NoError(err)
		s.Equal(int64(20), user.ID)
		s.Equal(user.ID, account.UserID)
		s.True(account.Balance.IsZero())

		s.Require().Len(numbers, 2)
		s.NotEqual(numbers[0], numbers[1])
		for _, n := range numbers {
			s.True(strings.HasPrefix(n, "SB"))
			s.Len(n, 12)
		}
	})
}

func (s *UserServiceTestSuite) TestListScopes() {
	rm := domain.Actor{ID: 3, Role: domain.RoleRM}
	admin := domain.Actor{ID: 1, Role: domain.RoleSuperAdmin}

	s.mockUserRepo.EXPECT().
		ListUsers(gomock.Any(), repoargs.UserFilter{Role: domain.RoleCustomer, CreatedByID: &rm.ID}).
		Return([]domain.User{{ID: 20}}, nil)
	s.mockUserRepo.EXPECT().
		ListUsers(gomock.Any(), repoargs.UserFilter{Role: domain.RoleCustomer}).
		Return([]domain.User{{ID: 20}, {ID: 21}}, nil)
	s.mockUserRepo.EXPECT().
		ListUsers(gomock.Any(), repoargs.UserFilter{Role: domain.RoleRM}).
		Return([]domain.User{{ID: 3}}, nil)

	own, err := s.userService.ListCustomers(s.T().Context(), rm)
	s.Require().NoError(err)
	s.Len(own, 1)

	all, err := s.userService.ListAllCustomers(s.T().Context(), admin)
	s.Require().NoError(err)
	s.Len(all, 2)

	managers, err := s.userService.ListManagers(s.T().Context(), admin)
	s.Require().NoError(err)
	s.Len(managers, 1)

	_, err = s.userService.ListAllCustomers(s.T().Context(), rm)
	s.Require().ErrorIs(err, domain.ErrForbidden)
	_, err = s.userService.ListManagers(s.T().Context(), rm)
	s.Require().ErrorIs(err, domain.ErrForbidden)
	_, err = s.userService.ListCustomers(s.T().Context(), admin)
	s.Require().ErrorIs(err, domain.ErrForbidden)
}

func (s *UserServiceTestSuite) TestEnsureSuperAdmin() {
	s.Run("already exists", func() {
		s.mockUserRepo.EXPECT().ExistsWithRole(gomock.Any(), domain.RoleSuperAdmin).Return(true, nil)
		created, err := s.userService.EnsureSuperAdmin(s.T().Context(), "admin", "admin")
		s.Require().NoError(err)
		s.False(created)
	})

	s.Run("created", func() {
		s.mockUserRepo.EXPECT().ExistsWithRole(gomock.Any(), domain.RoleSuperAdmin).Return(false, nil)
		s.mockHasher.EXPECT().HashPassword("admin").Return("hashed", nil)
		s.mockUserRepo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, args repoargs.CreateUser) (*domain.User, error) {
				s.Equal(domain.RoleSuperAdmin, args.Role)
				s.Nil(args.CreatedByID)
				return &domain.User{ID: 1, Username: args.Username, Role: args.Role}, nil
			})
		created, err := s.userService.EnsureSuperAdmin(s.T().Context(), "admin", "admin")
		s.Require().NoError(err)
		s.True(created)
	})
}

func (s *UserServiceTestSuite) TestMe() {
	user := s.fakeUser(7, domain.RoleCustomer)
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), user.ID).Return(user, nil)

	me, err := s.userService.Me(s.T().Context(), domain.Actor{ID: user.ID, Role: user.Role})
	s.Require().NoError(err)
	s.Equal(user.Username, me.Username)

	_, err = s.userService.Me(s.T().Context(), domain.Actor{})
	s.Require().ErrorIs(err, domain.ErrForbidden)
}
