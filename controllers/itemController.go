package controllers

import (
	"fmt"
	"net/http"

	"github.com/Kariqs/shopcart-api/models"
	"github.com/gin-gonic/gin"
)

// itemQuery holds the optional list filters. Only the first one present is
// applied, in field order.
type itemQuery struct {
	Price    *int    `form:"price"`
	ItemID   *string `form:"item_id" binding:"omitempty,max=16"`
	Quantity *int    `form:"quantity"`
}

func (q itemQuery) filter(shopcartID uint) models.ItemFilter {
	filter := models.ItemFilter{ShopcartID: &shopcartID}
	switch {
	case q.Price != nil:
		filter.Price = q.Price
	case q.ItemID != nil:
		filter.ItemID = q.ItemID
	case q.Quantity != nil:
		filter.Quantity = q.Quantity
	}
	return filter
}

func itemLocation(shopcartID, id uint) string {
	return fmt.Sprintf("/api/shopcarts/%d/items/%d", shopcartID, id)
}

func CreateItem(ctx *gin.Context) {
	shopcartID, ok := pathID(ctx, "id", msgShopcartNotFound)
	if !ok {
		return
	}

	db := dbFrom(ctx)
	if err := models.ShopcartExists(db, shopcartID); err != nil {
		handleError(ctx, err, "Unable to fetch shopcart")
		return
	}

	data, err := bindObject(ctx, "Item")
	if err != nil {
		handleError(ctx, err, "Failed to create item")
		return
	}
	var item models.Item
	if _, err := item.Deserialize(data); err != nil {
		handleError(ctx, err, "Failed to create item")
		return
	}
	item.ShopcartID = shopcartID

	if err := models.Create(db, &item); err != nil {
		handleError(ctx, err, "Failed to create item")
		return
	}

	ctx.Header("Location", itemLocation(shopcartID, item.ID))
	sendJSONResponse(ctx, http.StatusCreated, item)
}

func ListItems(ctx *gin.Context) {
	shopcartID, ok := pathID(ctx, "id", msgShopcartNotFound)
	if !ok {
		return
	}

	var query itemQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidQuery, err)
		return
	}

	db := dbFrom(ctx)
	if err := models.ShopcartExists(db, shopcartID); err != nil {
		handleError(ctx, err, "Unable to fetch shopcart")
		return
	}

	items, err := models.FindItems(db, query.filter(shopcartID))
	if err != nil {
		handleError(ctx, err, "Unable to fetch items")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, items)
}

func GetItem(ctx *gin.Context) {
	shopcartID, ok := pathID(ctx, "id", msgShopcartNotFound)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "item_id", msgItemNotFound)
	if !ok {
		return
	}

	item, err := models.FindItem(dbFrom(ctx), shopcartID, id)
	if err != nil {
		handleError(ctx, err, "Unable to fetch item")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, item)
}

func UpdateItem(ctx *gin.Context) {
	shopcartID, ok := pathID(ctx, "id", msgShopcartNotFound)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "item_id", msgItemNotFound)
	if !ok {
		return
	}

	db := dbFrom(ctx)
	item, err := models.FindItem(db, shopcartID, id)
	if err != nil {
		handleError(ctx, err, "Unable to fetch item")
		return
	}

	data, err := bindObject(ctx, "Item")
	if err != nil {
		handleError(ctx, err, "Failed to update item")
		return
	}
	if _, err := item.Deserialize(data); err != nil {
		handleError(ctx, err, "Failed to update item")
		return
	}
	item.ID = id
	item.ShopcartID = shopcartID

	if err := models.Update(db, item); err != nil {
		handleError(ctx, err, "Failed to update item")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, item)
}

// DeleteItem answers 204 whether or not the item existed.
func DeleteItem(ctx *gin.Context) {
	shopcartID, err := parseUintParam(ctx, "id")
	if err != nil {
		ctx.Status(http.StatusNoContent)
		return
	}
	id, err := parseUintParam(ctx, "item_id")
	if err != nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	if err := models.DeleteItem(dbFrom(ctx), shopcartID, id); err != nil {
		handleError(ctx, err, "Failed to delete item")
		return
	}
	ctx.Status(http.StatusNoContent)
}
