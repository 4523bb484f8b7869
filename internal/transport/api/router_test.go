package api

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/logger"
	"github.com/fsdevblog/bankoffice/internal/service/tokens"
	"github.com/fsdevblog/bankoffice/internal/transport/api/mocks"
	"github.com/fsdevblog/bankoffice/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// apiSuite общая часть сюит транспорта: роутер со всеми сервисами-моками и токены для каждой роли.
type apiSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	router        *gin.Engine
	jwtSecret     []byte
	mockUsers     *mocks.MockUserServicer
	mockAccounts  *mocks.MockAccountServicer
	mockLedger    *mocks.MockLedgerServicer
	mockMoney     *mocks.MockMoneyServicer
	mockSR        *mocks.MockServiceRequestServicer
	mockDashboard *mocks.MockDashboardServicer
	mockHealth    *mocks.MockHealthChecker
	admin         domain.Actor
	rm            domain.Actor
	customer      domain.Actor
	adminToken    string
	rmToken       string
	customerToken string
}

func (s *apiSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.jwtSecret = []byte("super secret key")

	s.mockUsers = mocks.NewMockUserServicer(s.mockCtrl)
	s.mockAccounts = mocks.NewMockAccountServicer(s.mockCtrl)
	s.mockLedger = mocks.NewMockLedgerServicer(s.mockCtrl)
	s.mockMoney = mocks.NewMockMoneyServicer(s.mockCtrl)
	s.mockSR = mocks.NewMockServiceRequestServicer(s.mockCtrl)
	s.mockDashboard = mocks.NewMockDashboardServicer(s.mockCtrl)
	s.mockHealth = mocks.NewMockHealthChecker(s.mockCtrl)

	s.admin = domain.Actor{ID: 1, Role: domain.RoleSuperAdmin}
	s.rm = domain.Actor{ID: 2, Role: domain.RoleRM}
	s.customer = domain.Actor{ID: 3, Role: domain.RoleCustomer}
	s.adminToken = testutils.AccessToken(s.admin, s.jwtSecret)
	s.rmToken = testutils.AccessToken(s.rm, s.jwtSecret)
	s.customerToken = testutils.AccessToken(s.customer, s.jwtSecret)

	router, err := New(RouterArgs{
		Logger:                logger.New(io.Discard),
		UserService:           s.mockUsers,
		AccountService:        s.mockAccounts,
		LedgerService:         s.mockLedger,
		MoneyService:          s.mockMoney,
		ServiceRequestService: s.mockSR,
		DashboardService:      s.mockDashboard,
		HealthChecker:         s.mockHealth,
		JWTSecretKey:          s.jwtSecret,
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *apiSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// do выполняет запрос. body == nil означает запрос без тела.
func (s *apiSuite) do(method, url, token string, body any) *http.Response {
	opts := []func(*testutils.RequestOptions){testutils.WithBearer(token)}
	if body != nil {
		opts = append(opts, testutils.WithJSON(body))
	}
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    RouteGroup + url,
	}, opts...)
	s.Require().NoError(err)
	return res
}

// decode читает тело ответа в v и проверяет статус.
func (s *apiSuite) decode(res *http.Response, wantStatus int, v any) {
	s.Require().Equal(wantStatus, res.StatusCode)
	s.Require().NoError(testutils.DecodeJSON(res, v))
}

func (s *apiSuite) closeBody(res *http.Response) {
	s.Require().NoError(res.Body.Close())
}

type RouterTestSuite struct {
	apiSuite
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

// TestRoleGates ни один сервис не вызывается: роутер отсекает запросы до хендлеров.
func (s *RouterTestSuite) TestRoleGates() {
	refreshAsAccess, err := tokens.GenerateUserJWT(s.customer.ID, s.customer.Role, tokens.KindRefresh,
		time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	foreignKey := testutils.AccessToken(s.admin, []byte("another key"))

	cases := []struct {
		name       string
		method     string
		url        string
		token      string
		wantStatus int
	}{
		{name: "me anonymous", method: http.MethodGet, url: MeRoute, wantStatus: http.StatusUnauthorized},
		{name: "refresh token as access", method: http.MethodGet, url: MeRoute, token: refreshAsAccess,
			wantStatus: http.StatusUnauthorized},
		{name: "foreign signature", method: http.MethodGet, url: DashboardRoute, token: foreignKey,
			wantStatus: http.StatusUnauthorized},
		{name: "managers by rm", method: http.MethodGet, url: ManagersRoute, token: s.rmToken,
			wantStatus: http.StatusForbidden},
		{name: "managers by customer", method: http.MethodPost, url: ManagersRoute, token: s.customerToken,
			wantStatus: http.StatusForbidden},
		{name: "all customers by rm", method: http.MethodGet, url: AllCustomersRoute, token: s.rmToken,
			wantStatus: http.StatusForbidden},
		{name: "customers by admin", method: http.MethodGet, url: CustomersRoute, token: s.adminToken,
			wantStatus: http.StatusForbidden},
		{name: "customer accounts by customer", method: http.MethodGet, url: "/customers/3/accounts",
			token: s.customerToken, wantStatus: http.StatusForbidden},
		{name: "accounts by rm", method: http.MethodGet, url: AccountsRoute, token: s.rmToken,
			wantStatus: http.StatusForbidden},
		{name: "deposit by admin", method: http.MethodPost, url: DepositRoute, token: s.adminToken,
			wantStatus: http.StatusForbidden},
		{name: "withdraw anonymous", method: http.MethodPost, url: WithdrawRoute,
			wantStatus: http.StatusUnauthorized},
		{name: "services by rm", method: http.MethodPost, url: ServicesRoute, token: s.rmToken,
			wantStatus: http.StatusForbidden},
		{name: "back office by customer", method: http.MethodGet, url: ServiceRequestsRoute,
			token: s.customerToken, wantStatus: http.StatusForbidden},
		{name: "status update by customer", method: http.MethodPatch, url: "/service-requests/1",
			token: s.customerToken, wantStatus: http.StatusForbidden},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.do(t.method, t.url, t.token, nil)
			var body map[string]any
			s.decode(res, t.wantStatus, &body)
			s.Contains(body, "error")
		})
	}
}

func (s *RouterTestSuite) TestHealth() {
	s.mockHealth.EXPECT().Ping(gomock.Any()).Return(nil)
	res := s.do(http.MethodGet, HealthRoute, "", nil)
	defer s.closeBody(res)
	s.Equal(http.StatusOK, res.StatusCode)

	s.mockHealth.EXPECT().Ping(gomock.Any()).Return(io.ErrUnexpectedEOF)
	res = s.do(http.MethodGet, HealthRoute, "", nil)
	var body map[string]string
	s.decode(res, http.StatusServiceUnavailable, &body)
	s.Equal("service unavailable", body["error"])
}
