package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fsdevblog/bankoffice/internal/domain"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svs DashboardServicer
}

func NewDashboardHandler(svs DashboardServicer) *DashboardHandler {
	return &DashboardHandler{
		svs: svs,
	}
}

// Stats GET RouteGroup + DashboardRoute. Состав сводки зависит от роли текущего юзера.
func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, err := h.svs.Stats(ctx, getActorFromContext(c))
	if err != nil {
		abortWithServiceError(c, err, "Stats not found.")
		return
	}

	switch st := stats.(type) {
	case *domain.AdminDashboard:
		c.JSON(http.StatusOK, AdminStatsResponse{
			TotalRMs:        st.TotalRMs,
			TotalCustomers:  st.TotalCustomers,
			TotalAccounts:   st.TotalAccounts,
			TotalBalance:    formatTotal(st.TotalBalance),
			PendingServices: st.PendingServices,
		})
	case *domain.RMDashboard:
		c.JSON(http.StatusOK, RMStatsResponse{
			TotalCustomers:  st.TotalCustomers,
			TotalAccounts:   st.TotalAccounts,
			TotalBalance:    formatTotal(st.TotalBalance),
			PendingServices: st.PendingServices,
		})
	case *domain.CustomerDashboard:
		c.JSON(http.StatusOK, CustomerStatsResponse{
			TotalAccounts:      st.TotalAccounts,
			TotalBalance:       formatTotal(st.TotalBalance),
			RecentTransactions: newTransactionsResponse(st.RecentTransactions),
			PendingServices:    st.PendingServices,
		})
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, fmt.Errorf("unexpected stats type %T", stats)).
			SetType(gin.ErrorTypePrivate)
	}
}
