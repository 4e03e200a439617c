package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Shopcart API.

The following are the endpoints for this API:

SHOPCART
- POST "/api/shopcarts" - Create a shopcart
- GET "/api/shopcarts" - List shopcarts, optionally filtered by ?name=
- GET "/api/shopcarts/:id" - Get a shopcart with its items
- PUT "/api/shopcarts/:id" - Rename a shopcart
- DELETE "/api/shopcarts/:id" - Delete a shopcart and its items
- PUT "/api/shopcarts/:id/clear" - Remove every item from a shopcart
- GET "/api/shopcarts/:id/calculate_total_price" - Sum of price * quantity

ITEM
- POST "/api/shopcarts/:id/items" - Add an item
- GET "/api/shopcarts/:id/items" - List items, filter by ?price=, ?item_id= or ?quantity=
- GET "/api/shopcarts/:id/items/:item_id" - Get an item
- PUT "/api/shopcarts/:id/items/:item_id" - Update an item
- DELETE "/api/shopcarts/:id/items/:item_id" - Delete an item`

	ctx.JSON(http.StatusOK, gin.H{
		"name":    "Shopcart REST API Service",
		"version": "1.0",
		"paths":   "/api/shopcarts",
		"message": message,
	})
}

func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "message": "Healthy"})
}
