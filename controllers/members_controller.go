package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"
	"treehouse/middleware"
	"treehouse/models"
	"treehouse/services"

	"github.com/gin-gonic/gin"
)

type MembersController struct {
	members *services.MembersService
	secure  bool
}

func NewMembersController(members *services.MembersService, secure bool) *MembersController {
	return &MembersController{members: members, secure: secure}
}

// @Summary Members access
// @Description Exchange the members access code for a members token
// @Tags Members
// @Accept json
// @Produce json
// @Param request body models.MembersAccessRequest true "Access code"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/members/access [post]
func (ctrl *MembersController) Access(c *gin.Context) {
	var req models.MembersAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	token, expiresAt, err := ctrl.members.Grant(req.Code)
	if errors.Is(err, services.ErrInvalidAccessCode) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Success: false, Message: "Invalid access code"})
		return
	}
	if err != nil {
		log.Printf("Failed to grant members access: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Internal server error"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.MembersCookie, token, int(time.Until(expiresAt).Seconds()), "/", "", ctrl.secure, true)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Members access granted",
		Data: models.MembersAccessResponse{
			Token:     token,
			ExpiresAt: expiresAt.Unix(),
		},
	})
}
