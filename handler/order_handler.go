package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/astopaal/meksut-order-management/entity"
	orderpkg "github.com/astopaal/meksut-order-management/order"
	"github.com/astopaal/meksut-order-management/realtime"
)

type OrderHandler struct {
	service orderpkg.Service
	hub     *realtime.Hub
}

func NewOrderHandler(svc orderpkg.Service, hub *realtime.Hub) *OrderHandler {
	return &OrderHandler{service: svc, hub: hub}
}

type orderPayload struct {
	CustomerID   uint   `json:"customer_id"`
	DeliveryTime string `json:"delivery_time"`
	OrderDate    string `json:"order_date"`
	Status       string `json:"status"`
	Quantity     int    `json:"quantity"`
}

func orderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, orderpkg.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, orderpkg.ErrCustomerNotFound),
		errors.Is(err, orderpkg.ErrInvalidDeliveryTime),
		errors.Is(err, orderpkg.ErrInvalidStatus),
		errors.Is(err, orderpkg.ErrDateRequired),
		errors.Is(err, orderpkg.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "order operation failed"})
	}
}

func (h *OrderHandler) ListOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := h.service.ListOrders(c.Request.Context())
		if err != nil {
			orderError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// ListDailyOrders returns the delivery run for one calendar date, grouped by
// slot then customer name.
func (h *OrderHandler) ListDailyOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Param("date")
		if _, err := time.Parse(entity.OrderDateLayout, date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		orders, err := h.service.ListDailyOrders(c.Request.Context(), date)
		if err != nil {
			orderError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func (h *OrderHandler) GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		order, err := h.service.GetOrder(c.Request.Context(), id)
		if err != nil {
			orderError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func (h *OrderHandler) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p orderPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.CreateOrder(ctx, orderpkg.CreateOrderRequest{
			CustomerID:   p.CustomerID,
			DeliveryTime: entity.DeliveryTime(p.DeliveryTime),
			OrderDate:    p.OrderDate,
			Status:       entity.OrderStatus(p.Status),
			Quantity:     p.Quantity,
		})
		if err != nil {
			orderError(c, err)
			return
		}
		h.hub.Broadcast(realtime.EventOrderCreated, created)
		c.JSON(http.StatusCreated, created)
	}
}

func (h *OrderHandler) UpdateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var p orderPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		updated, err := h.service.UpdateOrder(ctx, id, orderpkg.UpdateOrderRequest{
			CustomerID:   p.CustomerID,
			DeliveryTime: entity.DeliveryTime(p.DeliveryTime),
			OrderDate:    p.OrderDate,
			Status:       entity.OrderStatus(p.Status),
			Quantity:     p.Quantity,
		})
		if err != nil {
			orderError(c, err)
			return
		}
		h.hub.Broadcast(realtime.EventOrderUpdated, updated)
		c.JSON(http.StatusOK, updated)
	}
}

func (h *OrderHandler) DeleteOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.DeleteOrder(ctx, id); err != nil {
			orderError(c, err)
			return
		}
		h.hub.Broadcast(realtime.EventOrderDeleted, gin.H{"id": id})
		c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
	}
}
