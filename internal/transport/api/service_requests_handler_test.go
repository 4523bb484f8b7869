package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ServiceRequestsHandlerTestSuite struct {
	apiSuite
}

func TestServiceRequestsHandlerSuite(t *testing.T) {
	suite.Run(t, new(ServiceRequestsHandlerTestSuite))
}

func (s *ServiceRequestsHandlerTestSuite) TestCreate() {
	s.mockSR.EXPECT().
		Create(gomock.Any(), s.customer, service.CreateServiceRequestArgs{
			ServiceType: domain.ServiceChequeBook,
			Remarks:     "25 leaves",
		}).
		Return(&domain.ServiceRequest{
			ID:          1,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
			UserID:      s.customer.ID,
			ServiceType: domain.ServiceChequeBook,
			Status:      domain.ServiceStatusPending,
			Remarks:     "25 leaves",
		}, nil)

	var body ServiceRequestResponse
	s.decode(s.do(http.MethodPost, ServicesRoute, s.customerToken, map[string]string{
		"service_type": "cheque_book",
		"remarks":      "25 leaves",
		// статус от клиента игнорируется.
		"status": "completed",
	}), http.StatusCreated, &body)
	s.Equal(domain.ServiceStatusPending, body.Status)
	s.Equal("Pending", body.StatusDisplay)
	s.Equal("New Cheque Book", body.ServiceTypeDisplay)

	var invalid map[string]map[string]string
	s.decode(s.do(http.MethodPost, ServicesRoute, s.customerToken, map[string]string{"service_type": "lottery"}),
		http.StatusUnprocessableEntity, &invalid)
	s.Contains(invalid["error"], "service_type")
}

func (s *ServiceRequestsHandlerTestSuite) TestIndex() {
	s.mockSR.EXPECT().ListOwn(gomock.Any(), s.customer).Return([]domain.ServiceRequest{}, nil)

	var body []ServiceRequestResponse
	s.decode(s.do(http.MethodGet, ServicesRoute, s.customerToken, nil), http.StatusOK, &body)
	s.NotNil(body)
	s.Empty(body)
}

func (s *ServiceRequestsHandlerTestSuite) TestBackOffice() {
	s.mockSR.EXPECT().ListBackOffice(gomock.Any(), s.rm, domain.ServiceStatusPending).
		Return([]domain.ServiceRequest{{ID: 1, Status: domain.ServiceStatusPending}}, nil)
	s.mockSR.EXPECT().ListBackOffice(gomock.Any(), s.admin, domain.ServiceStatusType("")).
		Return([]domain.ServiceRequest{{ID: 1}, {ID: 2}}, nil)

	var rmList []ServiceRequestResponse
	s.decode(s.do(http.MethodGet, ServiceRequestsRoute+"?status=pending", s.rmToken, nil), http.StatusOK, &rmList)
	s.Len(rmList, 1)

	var adminList []ServiceRequestResponse
	s.decode(s.do(http.MethodGet, ServiceRequestsRoute, s.adminToken, nil), http.StatusOK, &adminList)
	s.Len(adminList, 2)

	res := s.do(http.MethodGet, ServiceRequestsRoute+"?status=lost", s.adminToken, nil)
	defer s.closeBody(res)
	s.Equal(http.StatusBadRequest, res.StatusCode)
}

func (s *ServiceRequestsHandlerTestSuite) TestUpdateStatus() {
	remarks := "sent by post"
	s.mockSR.EXPECT().
		UpdateStatus(gomock.Any(), s.rm, service.UpdateServiceRequestArgs{
			ID:      7,
			Status:  domain.ServiceStatusInProgress,
			Remarks: &remarks,
		}).
		Return(&domain.ServiceRequest{ID: 7, Status: domain.ServiceStatusInProgress, Remarks: remarks}, nil)
	s.mockSR.EXPECT().
		UpdateStatus(gomock.Any(), s.rm, service.UpdateServiceRequestArgs{ID: 8, Status: domain.ServiceStatusPending}).
		Return(nil, domain.ErrInvalidStatusTransition)
	s.mockSR.EXPECT().
		UpdateStatus(gomock.Any(), s.rm, service.UpdateServiceRequestArgs{ID: 9, Status: domain.ServiceStatusRejected}).
		Return(nil, domain.ErrRecordNotFound)

	var ok ServiceRequestResponse
	s.decode(s.do(http.MethodPatch, "/service-requests/7", s.rmToken, map[string]string{
		"status":  "in_progress",
		"remarks": remarks,
	}), http.StatusOK, &ok)
	s.Equal("In Progress", ok.StatusDisplay)

	var conflict map[string]string
	s.decode(s.do(http.MethodPatch, "/service-requests/8", s.rmToken, map[string]string{"status": "pending"}),
		http.StatusConflict, &conflict)
	s.Equal(invalidTransitionText, conflict["error"])

	var notFound map[string]string
	s.decode(s.do(http.MethodPatch, "/service-requests/9", s.rmToken, map[string]string{"status": "rejected"}),
		http.StatusNotFound, &notFound)
	s.Equal(serviceRequestNotFoundText, notFound["error"])

	res := s.do(http.MethodPatch, "/service-requests/7", s.rmToken, map[string]string{"status": "closed"})
	defer s.closeBody(res)
	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
}
