package routes

import (
	"net/http"
	"treehouse/controllers"
	"treehouse/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Controllers struct {
	Menu    *controllers.MenuController
	Members *controllers.MembersController
	Cart    *controllers.CartController
	Order   *controllers.OrderController
}

func SetupRoutes(router *gin.Engine, ctrls *Controllers, membersAccess gin.HandlerFunc) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "The Treehouse API", "path": c.Request.URL.Path})
	})

	api := router.Group("/api")

	api.POST("/order", ctrls.Order.CreateOrder)

	api.GET("/menu", ctrls.Menu.GetMenu)
	api.GET("/menu/categories", ctrls.Menu.GetCategories)
	api.GET("/menu/:id", ctrls.Menu.GetMenuItem)

	api.POST("/members/access", ctrls.Members.Access)
	members := api.Group("/members")
	members.Use(membersAccess, middleware.RequireMembers())
	{
		members.GET("/menu", ctrls.Menu.GetMembersMenu)
		members.GET("/menu/:id", ctrls.Menu.GetMembersMenuItem)
	}

	cart := api.Group("/cart")
	cart.Use(membersAccess)
	{
		cart.GET("", ctrls.Cart.GetCart)
		cart.DELETE("", ctrls.Cart.ClearCart)
		cart.GET("/count", ctrls.Cart.GetCount)
		cart.POST("/items", ctrls.Cart.AddItem)
		cart.PATCH("/items/:id", ctrls.Cart.UpdateQuantity)
		cart.DELETE("/items/:id", ctrls.Cart.RemoveItem)
		cart.POST("/submit", ctrls.Cart.Submit)
		cart.GET("/submission", ctrls.Cart.GetSubmission)
	}
}
