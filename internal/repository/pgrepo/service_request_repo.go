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

const serviceRequestColumns = `sr.id, sr.created_at, sr.updated_at, sr.user_id, sr.service_type, sr.status, sr.remarks`

type ServiceRequestRepository struct {
	db uow.DBTX
}

func NewServiceRequestRepository(conn uow.DBTX) *ServiceRequestRepository {
	return &ServiceRequestRepository{db: conn}
}

// Create создает заявку в статусе pending.
func (s *ServiceRequestRepository) Create(
	ctx context.Context,
	args repoargs.CreateServiceRequest,
) (*domain.ServiceRequest, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO service_requests AS sr (user_id, service_type, status, remarks)
		VALUES ($1, $2, $3, $4)
		RETURNING `+serviceRequestColumns,
		args.UserID,
		string(args.ServiceType),
		string(domain.ServiceStatusPending),
		args.Remarks,
	)
	request, err := scanServiceRequest(row)
	if err != nil {
		return nil, convertErr(err, "creating service request for user %d", args.UserID)
	}
	return request, nil
}

// List возвращает заявки по фильтру от новых к старым.
func (s *ServiceRequestRepository) List(
	ctx context.Context,
	filter repoargs.ServiceRequestFilter,
) ([]domain.ServiceRequest, error) {
	where, args := serviceRequestFilterSQL(filter)
	rows, err := s.db.Query(ctx,
		`SELECT `+serviceRequestColumns+`
		FROM service_requests sr JOIN users u ON u.id = sr.user_id`+where+`
		ORDER BY sr.created_at DESC, sr.id DESC`,
		args...,
	)
	if err != nil {
		return nil, convertErr(err, "listing service requests")
	}
	requests, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ServiceRequest, error) {
		request, scanErr := scanServiceRequest(row)
		if scanErr != nil {
			return domain.ServiceRequest{}, scanErr
		}
		return *request, nil
	})
	if err != nil {
		return nil, convertErr(err, "listing service requests")
	}
	return requests, nil
}

// FindForUpdate находит заявку id и блокирует ее. Если ownerCreatedByID задан, заявка должна принадлежать
// клиенту, созданному этим юзером, иначе вернется domain.ErrRecordNotFound.
func (s *ServiceRequestRepository) FindForUpdate(
	ctx context.Context,
	id int64,
	ownerCreatedByID *int64,
) (*domain.ServiceRequest, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+serviceRequestColumns+`
		FROM service_requests sr JOIN users u ON u.id = sr.user_id
		WHERE sr.id = $1 AND ($2::bigint IS NULL OR u.created_by_id = $2)
		FOR UPDATE OF sr`,
		id, ownerCreatedByID,
	)
	request, err := scanServiceRequest(row)
	if err != nil {
		return nil, convertErr(err, "finding service request %d", id)
	}
	return request, nil
}

func (s *ServiceRequestRepository) UpdateStatus(
	ctx context.Context,
	args repoargs.UpdateServiceRequestStatus,
) (*domain.ServiceRequest, error) {
	row := s.db.QueryRow(ctx,
		`UPDATE service_requests AS sr
		SET status = $2, remarks = COALESCE($3, sr.remarks), updated_at = now()
		WHERE sr.id = $1
		RETURNING `+serviceRequestColumns,
		args.ID, string(args.Status), args.Remarks,
	)
	request, err := scanServiceRequest(row)
	if err != nil {
		return nil, convertErr(err, "updating status of service request %d", args.ID)
	}
	return request, nil
}

func serviceRequestFilterSQL(filter repoargs.ServiceRequestFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conds = append(conds, fmt.Sprintf("sr.user_id = $%d", len(args)))
	}
	if filter.OwnerCreatedByID != nil {
		args = append(args, *filter.OwnerCreatedByID)
		conds = append(conds, fmt.Sprintf("u.created_by_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("sr.status = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanServiceRequest(row pgx.Row) (*domain.ServiceRequest, error) {
	var request domain.ServiceRequest
	var serviceType, status string
	if err := row.Scan(
		&request.ID,
		&request.CreatedAt,
		&request.UpdatedAt,
		&request.UserID,
		&serviceType,
		&status,
		&request.Remarks,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	request.ServiceType = domain.ServiceType(serviceType)
	request.Status = domain.ServiceStatusType(status)
	return &request, nil
}
