package routes

import (
	"github.com/Kariqs/shopcart-api/controllers"
	"github.com/gin-gonic/gin"
)

func ItemRoutes(server *gin.Engine) {
	items := server.Group("/api/shopcarts/:id/items")
	{
		items.POST("", controllers.CreateItem)
		items.GET("", controllers.ListItems)
		items.GET("/:item_id", controllers.GetItem)
		items.PUT("/:item_id", controllers.UpdateItem)
		items.DELETE("/:item_id", controllers.DeleteItem)
	}
}
