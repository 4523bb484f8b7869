package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/fsdevblog/bankoffice/internal/service"
	"github.com/gin-gonic/gin"
)

const serviceRequestNotFoundText = "Service request not found."

type ServiceRequestsHandler struct {
	svs ServiceRequestServicer
}

func NewServiceRequestsHandler(svs ServiceRequestServicer) *ServiceRequestsHandler {
	return &ServiceRequestsHandler{
		svs: svs,
	}
}

type CreateServiceRequestParams struct {
	ServiceType domain.ServiceType `binding:"required,service_type" json:"service_type"`
	Remarks     string             `binding:"max_bytes=2000"        json:"remarks"`
}

// Create POST RouteGroup + ServicesRoute. Заявка всегда создается в статусе pending.
func (h *ServiceRequestsHandler) Create(c *gin.Context) {
	var params CreateServiceRequestParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	sr, err := h.svs.Create(ctx, getActorFromContext(c), service.CreateServiceRequestArgs{
		ServiceType: params.ServiceType,
		Remarks:     params.Remarks,
	})
	if err != nil {
		abortWithServiceError(c, err, serviceRequestNotFoundText)
		return
	}
	c.JSON(http.StatusCreated, newServiceRequestResponse(sr))
}

// Index GET RouteGroup + ServicesRoute. Заявки текущего клиента.
func (h *ServiceRequestsHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	srs, err := h.svs.ListOwn(ctx, getActorFromContext(c))
	if err != nil {
		abortWithServiceError(c, err, serviceRequestNotFoundText)
		return
	}
	c.JSON(http.StatusOK, newServiceRequestsResponse(srs))
}

// BackOffice GET RouteGroup + ServiceRequestsRoute. Заявки для обработки, необязательный фильтр status.
func (h *ServiceRequestsHandler) BackOffice(c *gin.Context) {
	status := domain.ServiceStatusType(c.Query("status"))
	if status != "" && !status.Valid() {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("unknown status")).SetType(gin.ErrorTypePublic)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	srs, err := h.svs.ListBackOffice(ctx, getActorFromContext(c), status)
	if err != nil {
		abortWithServiceError(c, err, serviceRequestNotFoundText)
		return
	}
	c.JSON(http.StatusOK, newServiceRequestsResponse(srs))
}

type UpdateServiceRequestParams struct {
	Status  domain.ServiceStatusType `binding:"required,service_status"  json:"status"`
	Remarks *string                  `binding:"omitempty,max_bytes=2000" json:"remarks"`
}

// UpdateStatus PATCH RouteGroup + ServiceRequestRoute. Переводит заявку в новый статус.
func (h *ServiceRequestsHandler) UpdateStatus(c *gin.Context) {
	var uri struct {
		ID int64 `binding:"required,gt=0" uri:"id"`
	}
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		_ = c.AbortWithError(http.StatusNotFound, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	var params UpdateServiceRequestParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	sr, err := h.svs.UpdateStatus(ctx, getActorFromContext(c), service.UpdateServiceRequestArgs{
		ID:      uri.ID,
		Status:  params.Status,
		Remarks: params.Remarks,
	})
	if err != nil {
		abortWithServiceError(c, err, serviceRequestNotFoundText)
		return
	}
	c.JSON(http.StatusOK, newServiceRequestResponse(sr))
}
