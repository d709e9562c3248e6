package controllers

import (
	"errors"
	"log"
	"net/http"
	"treehouse/models"
	"treehouse/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{menu: menu}
}

// @Summary Get public menu
// @Description List the public menu, optionally filtered by category
// @Tags Menu
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} models.Response
// @Router /api/menu [get]
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	ctrl.listItems(c, false)
}

// @Summary Get menu categories
// @Description List public menu categories in display order with their items
// @Tags Menu
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/menu/categories [get]
func (ctrl *MenuController) GetCategories(c *gin.Context) {
	categories, err := ctrl.menu.Categories(c.Request.Context(), false)
	if err != nil {
		log.Printf("Failed to load menu categories: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Categories retrieved", Data: categories})
}

// @Summary Get menu item
// @Description Detail view of a public menu item
// @Tags Menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/menu/{id} [get]
func (ctrl *MenuController) GetMenuItem(c *gin.Context) {
	ctrl.getItem(c, false)
}

// @Summary Get members menu
// @Description List the members-only menu
// @Tags Members
// @Security BearerAuth
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /api/members/menu [get]
func (ctrl *MenuController) GetMembersMenu(c *gin.Context) {
	ctrl.listItems(c, true)
}

// @Summary Get members menu item
// @Description Detail view of a members-only menu item
// @Tags Members
// @Security BearerAuth
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/members/menu/{id} [get]
func (ctrl *MenuController) GetMembersMenuItem(c *gin.Context) {
	ctrl.getItem(c, true)
}

func (ctrl *MenuController) listItems(c *gin.Context, members bool) {
	items, err := ctrl.menu.ListItems(c.Request.Context(), members, c.Query("category"))
	if err != nil {
		log.Printf("Failed to load menu: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Menu retrieved", Data: items})
}

func (ctrl *MenuController) getItem(c *gin.Context, members bool) {
	item, err := ctrl.menu.GetItem(c.Request.Context(), members, c.Param("id"))
	if errors.Is(err, services.ErrMenuItemNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Menu item not found"})
		return
	}
	if err != nil {
		log.Printf("Failed to load menu item: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Menu item retrieved", Data: item})
}
