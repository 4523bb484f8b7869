package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type MoneyServiceTestSuite struct {
	repoMocksSuite
	customer     domain.Actor
	moneyService *MoneyService
}

func TestMoneyServiceSuite(t *testing.T) {
	suite.Run(t, new(MoneyServiceTestSuite))
}

func (s *MoneyServiceTestSuite) SetupTest() {
	s.repoMocksSuite.SetupTest()
	s.customer = domain.Actor{ID: 7, Role: domain.RoleCustomer}
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	s.moneyService = NewMoneyService(s.mockUOW, l)
}

func (s *MoneyServiceTestSuite) account(balance string) *domain.Account {
	return &domain.Account{
		ID:            10,
		UserID:        s.customer.ID,
		AccountNumber: "SB0123456789",
		AccountType:   domain.AccountTypeSavings,
		Balance:       decimal.RequireFromString(balance),
		IsActive:      true,
	}
}

// expectMovement настраивает успешную операцию: баланс before превращается в after.
func (s *MoneyServiceTestSuite) expectMovement(before, after string, direction domain.DirectionType, description string) {
	s.expectTx()
	s.mockAccountRepo.EXPECT().
		FindActiveForUpdate(gomock.Any(), int64(10), s.customer.ID).
		Return(s.account(before), nil)
	s.mockAccountRepo.EXPECT().
		UpdateBalance(gomock.Any(), int64(10), decEq(decimal.RequireFromString(after))).
		Return(s.account(after), nil)
	s.mockTxRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(direction, args.Direction)
			s.True(args.BalanceAfter.Equal(decimal.RequireFromString(after)))
			s.Equal(description, args.Description)
			s.True(strings.HasPrefix(args.ReferenceID, "TXN"))
			s.Len(args.ReferenceID, 15)
			return &domain.Transaction{
				ID:            1,
				CreatedAt:     time.Now(),
				AccountID:     args.AccountID,
				AccountNumber: "SB0123456789",
				Direction:     args.Direction,
				Amount:        args.Amount,
				BalanceAfter:  args.BalanceAfter,
				Description:   args.Description,
				ReferenceID:   args.ReferenceID,
			}, nil
		})
}

func (s *MoneyServiceTestSuite) TestDeposit() {
	s.expectMovement("1000.00", "1500.50", domain.DirectionCredit, DefaultDepositDescription)

	res, err := s.moneyService.Deposit(s.T().Context(), s.customer, MoveMoneyArgs{
		AccountID: 10,
		Amount:    decimal.RequireFromString("500.50"),
	})
	s.Require().NoError(err)
	s.Equal("1500.50", res.NewBalance.StringFixed(2))
	s.Equal(domain.DirectionCredit, res.Transaction.Direction)
	s.True(res.Transaction.BalanceAfter.Equal(res.NewBalance))
}

func (s *MoneyServiceTestSuite) TestWithdraw() {
	s.Run("custom description", func() {
		s.expectMovement("1000", "700", domain.DirectionDebit, "ATM")
		res, err := s.moneyService.Withdraw(s.T().Context(), s.customer, MoveMoneyArgs{
			AccountID:   10,
			Amount:      decimal.NewFromInt(300),
			Description: "ATM",
		})
		s.Require().NoError(err)
		s.Equal("700.00", res.NewBalance.StringFixed(2))
	})

	s.Run("whole balance", func() {
		s.expectMovement("300", "0", domain.DirectionDebit, DefaultWithdrawDescription)
		res, err := s.moneyService.Withdraw(s.T().Context(), s.customer, MoveMoneyArgs{
			AccountID: 10,
			Amount:    decimal.NewFromInt(300),
		})
		s.Require().NoError(err)
		s.True(res.NewBalance.IsZero())
	})

	s.Run("insufficient balance", func() {
		s.expectTx()
		s.mockAccountRepo.EXPECT().
			FindActiveForUpdate(gomock.Any(), int64(10), s.customer.ID).
			Return(s.account("100"), nil)

		_, err := s.moneyService.Withdraw(s.T().Context(), s.customer, MoveMoneyArgs{
			AccountID: 10,
			Amount:    decimal.NewFromInt(150),
		})
		s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
		var balanceErr *domain.InsufficientBalanceError
		s.Require().ErrorAs(err, &balanceErr)
		s.Equal("100.00", balanceErr.Available.StringFixed(2))
		s.Equal("Insufficient balance. Available: ₹100.00", balanceErr.Error())
	})
}

func (s *MoneyServiceTestSuite) TestAccountNotFound() {
	s.expectTx()
	s.mockAccountRepo.EXPECT().
		FindActiveForUpdate(gomock.Any(), int64(99), s.customer.ID).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.moneyService.Deposit(s.T().Context(), s.customer, MoveMoneyArgs{
		AccountID: 99,
		Amount:    decimal.NewFromInt(1),
	})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *MoneyServiceTestSuite) TestRejectedBeforeDataAccess() {
	cases := []struct {
		name    string
		actor   domain.Actor
		amount  string
		wantErr error
	}{
		{name: "zero", actor: s.customer, amount: "0", wantErr: domain.ErrInvalidAmount},
		{name: "negative", actor: s.customer, amount: "-5", wantErr: domain.ErrInvalidAmount},
		{name: "three decimals", actor: s.customer, amount: "1.005", wantErr: domain.ErrInvalidAmount},
		{name: "too large", actor: s.customer, amount: "10000000000", wantErr: domain.ErrInvalidAmount},
		{name: "rm", actor: domain.Actor{ID: 3, Role: domain.RoleRM}, amount: "10", wantErr: domain.ErrForbidden},
		{name: "anonymous", actor: domain.Actor{}, amount: "10", wantErr: domain.ErrForbidden},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			// uow.Do не ожидается: любая попытка транзакции провалит тест.
			args := MoveMoneyArgs{AccountID: 10, Amount: decimal.RequireFromString(t.amount)}
			_, depositErr := s.moneyService.Deposit(s.T().Context(), t.actor, args)
			s.Require().ErrorIs(depositErr, t.wantErr)
			_, withdrawErr := s.moneyService.Withdraw(s.T().Context(), t.actor, args)
			s.Require().ErrorIs(withdrawErr, t.wantErr)
		})
	}
}

func (s *MoneyServiceTestSuite) TestLedgerFailureRollsBack() {
	boom := errors.New("boom")
	s.expectTx()
	s.mockAccountRepo.EXPECT().
		FindActiveForUpdate(gomock.Any(), int64(10), s.customer.ID).
		Return(s.account("10"), nil)
	s.mockAccountRepo.EXPECT().
		UpdateBalance(gomock.Any(), int64(10), decEq(decimal.NewFromInt(15))).
		Return(s.account("15"), nil)
	s.mockTxRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, boom)

	res, err := s.moneyService.Deposit(s.T().Context(), s.customer, MoveMoneyArgs{
		AccountID: 10,
		Amount:    decimal.NewFromInt(5),
	})
	s.Require().ErrorIs(err, boom)
	s.Nil(res)
}

func TestValidateAmount(t *testing.T) {
	valid := []string{"0.01", "1", "500.50", "9999999999.99", "1.10"}
	for _, v := range valid {
		if err := ValidateAmount(decimal.RequireFromString(v)); err != nil {
			t.Errorf("amount %s: unexpected error %v", v, err)
		}
	}
	invalid := []string{"0", "-0.01", "0.001", "10000000000"}
	for _, v := range invalid {
		if err := ValidateAmount(decimal.RequireFromString(v)); !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("amount %s: want ErrInvalidAmount, got %v", v, err)
		}
	}
}
