package repoargs

import "github.com/fsdevblog/bankoffice/internal/domain"

type CreateServiceRequest struct {
	UserID      int64
	ServiceType domain.ServiceType
	Remarks     string
}

type ServiceRequestFilter struct {
	UserID           *int64
	OwnerCreatedByID *int64
	Status           domain.ServiceStatusType
}

type UpdateServiceRequestStatus struct {
	ID      int64
	Status  domain.ServiceStatusType
	Remarks *string
}
