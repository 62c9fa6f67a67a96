package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/astopaal/meksut-order-management/entity"
	"github.com/astopaal/meksut-order-management/realtime"
	subscriptionpkg "github.com/astopaal/meksut-order-management/subscription"
)

type SubscriptionHandler struct {
	service subscriptionpkg.Service
	hub     *realtime.Hub
}

func NewSubscriptionHandler(svc subscriptionpkg.Service, hub *realtime.Hub) *SubscriptionHandler {
	return &SubscriptionHandler{service: svc, hub: hub}
}

type subscriptionPayload struct {
	CustomerID   uint     `json:"customer_id"`
	Days         []string `json:"days"`
	DeliveryTime string   `json:"delivery_time"`
	Quantity     int      `json:"quantity"`
	IsActive     *bool    `json:"is_active"`
}

func subscriptionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, subscriptionpkg.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, subscriptionpkg.ErrCustomerNotFound),
		errors.Is(err, subscriptionpkg.ErrInvalidDeliveryTime),
		errors.Is(err, subscriptionpkg.ErrInvalidDay),
		errors.Is(err, subscriptionpkg.ErrInvalidQuantity),
		errors.Is(err, subscriptionpkg.ErrInvalidHorizon):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "subscription operation failed"})
	}
}

func (h *SubscriptionHandler) ListSubscriptions() gin.HandlerFunc {
	return func(c *gin.Context) {
		subs, err := h.service.ListSubscriptions(c.Request.Context())
		if err != nil {
			subscriptionError(c, err)
			return
		}
		c.JSON(http.StatusOK, subs)
	}
}

func (h *SubscriptionHandler) ListCustomerSubscriptions() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		subs, err := h.service.ListCustomerSubscriptions(c.Request.Context(), id)
		if err != nil {
			subscriptionError(c, err)
			return
		}
		c.JSON(http.StatusOK, subs)
	}
}

func (h *SubscriptionHandler) CreateSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p subscriptionPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.CreateSubscription(ctx, subscriptionpkg.CreateSubscriptionRequest{
			CustomerID:   p.CustomerID,
			Days:         p.Days,
			DeliveryTime: entity.DeliveryTime(p.DeliveryTime),
			Quantity:     p.Quantity,
			IsActive:     p.IsActive,
		})
		if err != nil {
			subscriptionError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func (h *SubscriptionHandler) UpdateSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var p subscriptionPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		updated, err := h.service.UpdateSubscription(ctx, id, subscriptionpkg.UpdateSubscriptionRequest{
			CustomerID:   p.CustomerID,
			Days:         p.Days,
			DeliveryTime: entity.DeliveryTime(p.DeliveryTime),
			Quantity:     p.Quantity,
			IsActive:     p.IsActive,
		})
		if err != nil {
			subscriptionError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func (h *SubscriptionHandler) DeleteSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.DeleteSubscription(ctx, id); err != nil {
			subscriptionError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "subscription deleted"})
	}
}

type generateOrdersPayload struct {
	Days int `json:"days"`
}

// GenerateOrders materializes orders from active subscriptions over the
// requested horizon (default 7 days).
func (h *SubscriptionHandler) GenerateOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := generateOrdersPayload{Days: 7}
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&p); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
				return
			}
			if p.Days == 0 {
				p.Days = 7
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		orders, err := h.service.GenerateOrders(ctx, p.Days, time.Now())
		if err != nil {
			if errors.Is(err, subscriptionpkg.ErrInvalidHorizon) {
				subscriptionError(c, err)
				return
			}
			// some inserts may have succeeded before the failure
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "order generation failed",
				"created": len(orders),
			})
			return
		}
		if len(orders) > 0 {
			h.hub.Broadcast(realtime.EventOrdersGenerated, gin.H{"created": len(orders)})
		}
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("%d new orders created", len(orders)),
			"orders":  orders,
		})
	}
}
