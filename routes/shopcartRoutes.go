package routes

import (
	"github.com/Kariqs/shopcart-api/controllers"
	"github.com/gin-gonic/gin"
)

func ShopcartRoutes(server *gin.Engine) {
	shopcarts := server.Group("/api/shopcarts")
	{
		shopcarts.POST("", controllers.CreateShopcart)
		shopcarts.GET("", controllers.ListShopcarts)
		shopcarts.GET("/:id", controllers.GetShopcart)
		shopcarts.PUT("/:id", controllers.UpdateShopcart)
		shopcarts.DELETE("/:id", controllers.DeleteShopcart)
		shopcarts.PUT("/:id/clear", controllers.ClearShopcart)
		shopcarts.GET("/:id/calculate_total_price", controllers.CalculateTotalPrice)
	}
}
