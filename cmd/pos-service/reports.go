package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/pos-service/internal/httpx"
	"github.com/MikeMC777/pos-service/internal/report"
)

type dashboardResponse struct {
	Success bool `json:"success"`
	report.Dashboard
}

type salesResponse struct {
	Success     bool               `json:"success"`
	SalesReport report.SalesReport `json:"salesReport"`
}

type inventoryResponse struct {
	Success         bool                   `json:"success"`
	InventoryAlerts report.InventoryAlerts `json:"inventoryAlerts"`
}

// dashboardHandler godoc
// @Summary      Dashboard stats
// @Description  Sales for today, the last 7 days, this month and this year, each with change against the previous window.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      500  {object}  httpx.ErrorBody
// @Router       /api/dashboard [get]
func dashboardHandler(svc *report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := svc.Dashboard(c.Request.Context())
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, dashboardResponse{Success: true, Dashboard: *d})
	}
}

// salesReportHandler godoc
// @Summary      Sales report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        period  query     string  false  "day | week | month | year"  default(day)
// @Success      200     {object}  salesResponse
// @Failure      400     {object}  httpx.ErrorBody
// @Router       /api/reports/sales [get]
func salesReportHandler(svc *report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rep, err := svc.Sales(c.Request.Context(), c.DefaultQuery("period", string(report.PeriodDay)))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, salesResponse{Success: true, SalesReport: *rep})
	}
}

// inventoryReportHandler godoc
// @Summary      Inventory alerts
// @Description  Low stock, out of stock and fast moving products.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  inventoryResponse
// @Router       /api/reports/inventory [get]
func inventoryReportHandler(svc *report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		alerts, err := svc.Inventory(c.Request.Context())
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, inventoryResponse{Success: true, InventoryAlerts: *alerts})
	}
}
