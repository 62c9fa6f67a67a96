package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	customerpkg "github.com/astopaal/meksut-order-management/customer"
)

// CustomerHandler bundles dependencies for customer-related HTTP handlers.
type CustomerHandler struct {
	service customerpkg.CustomerService
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(svc customerpkg.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: svc}
}

type customerPayload struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Location string `json:"location"`
}

// idParam parses the :id path parameter shared by all resource handlers.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func customerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, customerpkg.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, customerpkg.ErrPhoneExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, customerpkg.ErrNameRequired),
		errors.Is(err, customerpkg.ErrPhoneTooShort),
		errors.Is(err, customerpkg.ErrNothingToSet):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "customer operation failed"})
	}
}

func (h *CustomerHandler) ListCustomers() gin.HandlerFunc {
	return func(c *gin.Context) {
		customers, err := h.service.ListCustomers(c.Request.Context())
		if err != nil {
			customerError(c, err)
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}

func (h *CustomerHandler) GetCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		customer, err := h.service.GetCustomer(c.Request.Context(), id)
		if err != nil {
			customerError(c, err)
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

func (h *CustomerHandler) CreateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p customerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.CreateCustomer(ctx, customerpkg.CreateCustomerRequest{
			Name:     p.Name,
			Phone:    p.Phone,
			Address:  p.Address,
			Location: p.Location,
		})
		if err != nil {
			customerError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func (h *CustomerHandler) UpdateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var p customerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		updated, err := h.service.UpdateCustomer(ctx, id, customerpkg.UpdateCustomerRequest{
			Name:     p.Name,
			Phone:    p.Phone,
			Address:  p.Address,
			Location: p.Location,
		})
		if err != nil {
			customerError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func (h *CustomerHandler) DeleteCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.DeleteCustomer(ctx, id); err != nil {
			customerError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
	}
}

// CustomerAnalytics returns the ordering statistics panel shown on the
// customer detail page.
func (h *CustomerHandler) CustomerAnalytics() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		customer, analytics, err := h.service.CustomerAnalytics(c.Request.Context(), id, time.Now())
		if err != nil {
			customerError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"customer": customer, "analytics": analytics})
	}
}
