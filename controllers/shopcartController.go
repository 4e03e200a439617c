package controllers

import (
	"fmt"
	"net/http"

	"github.com/Kariqs/shopcart-api/models"
	"github.com/gin-gonic/gin"
)

type shopcartQuery struct {
	Name string `form:"name" binding:"omitempty,max=63"`
}

func shopcartLocation(id uint) string {
	return fmt.Sprintf("/api/shopcarts/%d", id)
}

func CreateShopcart(ctx *gin.Context) {
	data, err := bindObject(ctx, "Shopcart")
	if err != nil {
		handleError(ctx, err, "Failed to create shopcart")
		return
	}

	var shopcart models.Shopcart
	if _, err := shopcart.Deserialize(data); err != nil {
		handleError(ctx, err, "Failed to create shopcart")
		return
	}
	if err := models.Create(dbFrom(ctx), &shopcart); err != nil {
		handleError(ctx, err, "Failed to create shopcart")
		return
	}

	ctx.Header("Location", shopcartLocation(shopcart.ID))
	sendJSONResponse(ctx, http.StatusCreated, shopcart)
}

func ListShopcarts(ctx *gin.Context) {
	var query shopcartQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidQuery, err)
		return
	}

	var (
		shopcarts []models.Shopcart
		err       error
	)
	if query.Name != "" {
		shopcarts, err = models.FindShopcartsByName(dbFrom(ctx), query.Name)
	} else {
		shopcarts, err = models.AllShopcarts(dbFrom(ctx))
	}
	if err != nil {
		handleError(ctx, err, "Unable to fetch shopcarts")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, shopcarts)
}

func GetShopcart(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", msgShopcartNotFound)
	if !ok {
		return
	}

	shopcart, err := models.FindShopcart(dbFrom(ctx), id)
	if err != nil {
		handleError(ctx, err, "Unable to fetch shopcart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, shopcart)
}

func UpdateShopcart(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", msgShopcartNotFound)
	if !ok {
		return
	}

	db := dbFrom(ctx)
	shopcart, err := models.FindShopcart(db, id)
	if err != nil {
		handleError(ctx, err, "Unable to fetch shopcart")
		return
	}

	data, err := bindObject(ctx, "Shopcart")
	if err != nil {
		handleError(ctx, err, "Failed to update shopcart")
		return
	}
	if _, err := shopcart.Deserialize(data); err != nil {
		handleError(ctx, err, "Failed to update shopcart")
		return
	}
	shopcart.ID = id
	if err := models.Update(db, shopcart); err != nil {
		handleError(ctx, err, "Failed to update shopcart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, shopcart)
}

// DeleteShopcart answers 204 whether or not the shopcart existed.
func DeleteShopcart(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "id")
	if err != nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	if err := models.DeleteShopcart(dbFrom(ctx), id); err != nil {
		handleError(ctx, err, "Failed to delete shopcart")
		return
	}
	ctx.Status(http.StatusNoContent)
}

func ClearShopcart(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", msgShopcartNotFound)
	if !ok {
		return
	}

	db := dbFrom(ctx)
	if err := models.ShopcartExists(db, id); err != nil {
		handleError(ctx, err, "Unable to fetch shopcart")
		return
	}
	if err := models.ClearShopcart(db, id); err != nil {
		handleError(ctx, err, "Failed to clear shopcart")
		return
	}

	shopcart, err := models.FindShopcart(db, id)
	if err != nil {
		handleError(ctx, err, "Unable to fetch shopcart")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, shopcart)
}

func CalculateTotalPrice(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", msgShopcartNotFound)
	if !ok {
		return
	}

	db := dbFrom(ctx)
	if err := models.ShopcartExists(db, id); err != nil {
		handleError(ctx, err, "Unable to fetch shopcart")
		return
	}

	total, err := models.TotalPrice(db, id)
	if err != nil {
		handleError(ctx, err, "Failed to calculate total price")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"total_price": total})
}
