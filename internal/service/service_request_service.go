package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/repository/repoargs"
	"github.com/fsdevblog/bankoffice/pkg/uow"
)

type ServiceRequestService struct {
	uow    uow.UOW
	srRepo ServiceRequestRepository
}

func NewServiceRequestService(u uow.UOW) (*ServiceRequestService, error) {
	srRepo, srRepoErr :=
		uow.GetRepositoryAs[ServiceRequestRepository](u, uow.RepositoryName(repoargs.ServiceRequestRepoName))
	if srRepoErr != nil {
		return nil, srRepoErr
	}
	return &ServiceRequestService{uow: u, srRepo: srRepo}, nil
}

type CreateServiceRequestArgs struct {
	ServiceType domain.ServiceType
	Remarks     string
}

// Create создает заявку клиента actor. Статус всегда pending.
func (s *ServiceRequestService) Create(
	ctx context.Context,
	actor domain.Actor,
	args CreateServiceRequestArgs,
) (*domain.ServiceRequest, error) {
	if !domain.CustomerOnly(actor) {
		return nil, domain.ErrForbidden
	}
	sr, err := s.srRepo.Create(ctx, repoargs.CreateServiceRequest{
		UserID:      actor.ID,
		ServiceType: args.ServiceType,
		Remarks:     args.Remarks,
	})
	if err != nil {
		return nil, fmt.Errorf("creating service request: %w", err)
	}
	return sr, nil
}

// ListOwn возвращает заявки клиента actor, от новых к старым.
func (s *ServiceRequestService) ListOwn(ctx context.Context, actor domain.Actor) ([]domain.ServiceRequest, error) {
	if !domain.CustomerOnly(actor) {
		return nil, domain.ErrForbidden
	}
	srs, err := s.srRepo.List(ctx, repoargs.ServiceRequestFilter{UserID: &actor.ID})
	if err != nil {
		return nil, fmt.Errorf("listing service requests: %w", err)
	}
	return srs, nil
}

// ListBackOffice возвращает заявки для обработки: супер админу все, менеджеру только заявки его клиентов.
// Пустой status означает любой статус.
func (s *ServiceRequestService) ListBackOffice(
	ctx context.Context,
	actor domain.Actor,
	status domain.ServiceStatusType,
) ([]domain.ServiceRequest, error) {
	if !domain.SuperAdminOrRM(actor) {
		return nil, domain.ErrForbidden
	}
	srs, err := s.srRepo.List(ctx, repoargs.ServiceRequestFilter{
		OwnerCreatedByID: scopeOf(actor),
		Status:           status,
	})
	if err != nil {
		return nil, fmt.Errorf("listing service requests: %w", err)
	}
	return srs, nil
}

type UpdateServiceRequestArgs struct {
	ID      int64
	Status  domain.ServiceStatusType
	Remarks *string
}

// UpdateStatus переводит заявку в новый статус. Недопустимый переход дает domain.ErrInvalidStatusTransition,
// заявка клиента другого менеджера - domain.ErrRecordNotFound.
func (s *ServiceRequestService) UpdateStatus(
	ctx context.Context,
	actor domain.Actor,
	args UpdateServiceRequestArgs,
) (*domain.ServiceRequest, error) {
	if !domain.SuperAdminOrRM(actor) {
		return nil, domain.ErrForbidden
	}

	var updated *domain.ServiceRequest
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		srRepo, srRepoErr :=
			uow.GetAs[ServiceRequestRepository](tx, uow.RepositoryName(repoargs.ServiceRequestRepoName))
		if srRepoErr != nil {
			return srRepoErr //nolint:wrapcheck
		}
		current, findErr := srRepo.FindForUpdate(c, args.ID, scopeOf(actor))
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if !current.Status.CanTransitionTo(args.Status) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatusTransition, current.Status, args.Status)
		}
		var updateErr error
		updated, updateErr = srRepo.UpdateStatus(c, repoargs.UpdateServiceRequestStatus{
			ID:      current.ID,
			Status:  args.Status,
			Remarks: args.Remarks,
		})
		return updateErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("updating service request: %w", txErr)
	}
	return updated, nil
}

// scopeOf ограничивает выборку клиентами менеджера. Для супер админа ограничения нет.
func scopeOf(actor domain.Actor) *int64 {
	if actor.Role == domain.RoleRM {
		id := actor.ID
		return &id
	}
	return nil
}
