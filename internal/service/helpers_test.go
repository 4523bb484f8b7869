package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/bankoffice/internal/repository/repoargs"
	"github.com/fsdevblog/bankoffice/internal/service/mocks"
	"github.com/fsdevblog/bankoffice/pkg/uow"
	uowmocks "github.com/fsdevblog/bankoffice/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// repoMocksSuite общая часть сюит сервисного слоя: моки uow, транзакции и всех репозиториев.
type repoMocksSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockUserRepo    *mocks.MockUserRepository
	mockAccountRepo *mocks.MockAccountRepository
	mockTxRepo      *mocks.MockBalanceTransactionRepository
	mockSRRepo      *mocks.MockServiceRequestRepository
	mockStatsRepo   *mocks.MockStatsRepository
}

func (s *repoMocksSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockTxRepo = mocks.NewMockBalanceTransactionRepository(s.mockCtrl)
	s.mockSRRepo = mocks.NewMockServiceRequestRepository(s.mockCtrl)
	s.mockStatsRepo = mocks.NewMockStatsRepository(s.mockCtrl)

	repos := map[repoargs.RepositoryName]uow.Repository{
		repoargs.UserRepoName:           s.mockUserRepo,
		repoargs.AccountRepoName:        s.mockAccountRepo,
		repoargs.TransactionRepoName:    s.mockTxRepo,
		repoargs.ServiceRequestRepoName: s.mockSRRepo,
		repoargs.StatsRepoName:          s.mockStatsRepo,
	}
	// Получение репозиториев из uow и из транзакции.
	for name, repo := range repos {
		s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
		s.mockTX.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}
}

func (s *repoMocksSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectTx ожидает ровно одну транзакцию, fn выполняется с мок транзакцией.
func (s *repoMocksSuite) expectTx() {
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

type decimalMatcher struct {
	want decimal.Decimal
}

// decEq сравнивает decimal по значению, а не по внутреннему представлению.
func decEq(want decimal.Decimal) gomock.Matcher {
	return decimalMatcher{want: want}
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return fmt.Sprintf("is equal to decimal %s", m.want.String())
}
