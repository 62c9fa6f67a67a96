package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	reportpkg "github.com/astopaal/meksut-order-management/report"
)

// ReportHandler serves the dashboard report endpoints. Every report runs
// against the current store state with the request time as reference.
type ReportHandler struct {
	service reportpkg.Service
}

func NewReportHandler(svc reportpkg.Service) *ReportHandler {
	return &ReportHandler{service: svc}
}

func reportError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "report computation failed"})
}

func (h *ReportHandler) CustomerAnalysis() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := h.service.CustomerAnalysis(c.Request.Context(), time.Now())
		if err != nil {
			reportError(c)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func (h *ReportHandler) TopCustomers30Days() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := h.service.TopCustomers30Days(c.Request.Context(), time.Now())
		if err != nil {
			reportError(c)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func (h *ReportHandler) DailyAverage() gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := h.service.DailyAverage(c.Request.Context(), time.Now())
		if err != nil {
			reportError(c)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func (h *ReportHandler) WeeklyTrend() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := h.service.WeeklyTrend(c.Request.Context(), time.Now())
		if err != nil {
			reportError(c)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func (h *ReportHandler) MonthlyTrend() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := h.service.MonthlyTrend(c.Request.Context(), time.Now())
		if err != nil {
			reportError(c)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func (h *ReportHandler) InactiveCustomers() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := h.service.InactiveCustomers(c.Request.Context(), time.Now())
		if err != nil {
			reportError(c)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func (h *ReportHandler) DeliveryTimeAnalysis() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := h.service.DeliveryTimeAnalysis(c.Request.Context())
		if err != nil {
			reportError(c)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func (h *ReportHandler) DailyDistribution() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := h.service.DailyDistribution(c.Request.Context(), time.Now())
		if err != nil {
			reportError(c)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}
