package controllers

import (
	"errors"
	"log"
	"net/http"
	"treehouse/middleware"
	"treehouse/models"
	"treehouse/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	carts  *services.CartService
	orders *services.OrderService
	menu   *services.MenuService
}

func NewCartController(carts *services.CartService, orders *services.OrderService, menu *services.MenuService) *CartController {
	return &CartController{carts: carts, orders: orders, menu: menu}
}

func (ctrl *CartController) cartFailed(c *gin.Context, err error) {
	log.Printf("Cart operation failed for session %s: %v", middleware.SessionID(c), err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to update cart"})
}

// @Summary Get cart
// @Description Current session cart with total item count
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, err := ctrl.carts.GetCart(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		ctrl.cartFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart retrieved", Data: models.NewCartResponse(cart)})
}

// @Summary Get cart badge count
// @Description Sum of quantities across the session cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart/count [get]
func (ctrl *CartController) GetCount(c *gin.Context) {
	total, err := ctrl.carts.GetTotalItems(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		ctrl.cartFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart count retrieved", Data: gin.H{"totalItems": total}})
}

// @Summary Add item to cart
// @Description Adds a menu item; repeated adds increment its quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /api/cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	isMembers, err := ctrl.menu.IsMembersItem(c.Request.Context(), req.ID)
	if err != nil {
		ctrl.cartFailed(c, err)
		return
	}
	req.IsMembers = req.IsMembers || isMembers

	if req.IsMembers && !middleware.HasMembersAccess(c) {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Success: false, Message: "Members access code required"})
		return
	}

	cart, err := ctrl.carts.AddItems(c.Request.Context(), middleware.SessionID(c), req.ID, req.Name, req.IsMembers, req.Quantity)
	if err != nil {
		ctrl.cartFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Item added to cart", Data: models.NewCartResponse(cart)})
}

// @Summary Update cart item quantity
// @Description Sets the quantity; zero or less removes the item
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body models.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cart/items/{id} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	cart, err := ctrl.carts.UpdateQuantity(c.Request.Context(), middleware.SessionID(c), c.Param("id"), *req.Quantity)
	if err != nil {
		ctrl.cartFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart updated", Data: models.NewCartResponse(cart)})
}

// @Summary Remove cart item
// @Tags Cart
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.Response
// @Router /api/cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cart, err := ctrl.carts.RemoveItem(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		ctrl.cartFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Item removed from cart", Data: models.NewCartResponse(cart)})
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	if err := ctrl.carts.ClearCart(c.Request.Context(), middleware.SessionID(c)); err != nil {
		ctrl.cartFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart cleared", Data: models.NewCartResponse(models.NewCart())})
}

// @Summary Submit order
// @Description Posts the session cart to the order relay. An empty cart is a no-op.
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Failure 502 {object} models.Response
// @Router /api/cart/submit [post]
func (ctrl *CartController) Submit(c *gin.Context) {
	status, err := ctrl.orders.Submit(c.Request.Context(), middleware.SessionID(c))
	switch {
	case errors.Is(err, services.ErrSubmissionInProgress):
		c.JSON(http.StatusConflict, models.ErrorResponse{Success: false, Message: "Order submission already in progress"})
	case errors.Is(err, services.ErrOrderFailed):
		c.JSON(http.StatusBadGateway, models.Response{Success: false, Message: status.Message, Data: status})
	case err != nil:
		ctrl.cartFailed(c, err)
	case !status.Submitted:
		c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart is empty", Data: status})
	default:
		c.JSON(http.StatusOK, models.Response{Success: true, Message: status.Message, Data: status})
	}
}

// @Summary Submission status
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart/submission [get]
func (ctrl *CartController) GetSubmission(c *gin.Context) {
	status := ctrl.orders.Status(middleware.SessionID(c))
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Submission status retrieved", Data: status})
}
