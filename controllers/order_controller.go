package controllers

import (
	"errors"
	"log"
	"net/http"
	"treehouse/models"
	"treehouse/services"

	"github.com/gin-gonic/gin"
)

// OrderController is the relay boundary between the cart and the restaurant
// webhook. Internal error detail is logged, never returned.
type OrderController struct {
	relay *services.RelayService
}

func NewOrderController(relay *services.RelayService) *OrderController {
	return &OrderController{relay: relay}
}

// @Summary Relay order
// @Description Validates an order and forwards it to the configured webhook
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.OrderPayload true "Order"
// @Success 200 {object} models.RelayResponse
// @Failure 400 {object} models.RelayResponse
// @Failure 500 {object} models.RelayResponse
// @Router /api/order [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.RelayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error processing order: %v", err)
		c.JSON(http.StatusInternalServerError, models.RelayResponse{Error: "Internal server error"})
		return
	}

	err := ctrl.relay.Relay(c.Request.Context(), &req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, models.RelayResponse{Message: "Order processed successfully"})
	case errors.Is(err, services.ErrInvalidOrderPayload):
		c.JSON(http.StatusBadRequest, models.RelayResponse{Error: "Missing required fields"})
	case errors.Is(err, services.ErrWebhookNotConfigured):
		c.JSON(http.StatusInternalServerError, models.RelayResponse{Error: "Webhook configuration error"})
	case errors.Is(err, services.ErrWebhookRejected):
		c.JSON(http.StatusInternalServerError, models.RelayResponse{Error: "Failed to process order"})
	default:
		log.Printf("Error processing order: %v", err)
		c.JSON(http.StatusInternalServerError, models.RelayResponse{Error: "Internal server error"})
	}
}
