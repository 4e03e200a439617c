package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/Kariqs/shopcart-api/models"
)

func itemsURL(shopcartID uint) string {
	return fmt.Sprintf("%s/%d/items", baseURL, shopcartID)
}

func (s *ShopcartAPITestSuite) TestAddItem() {
	shopcart := s.createShopcart("cart")

	rec := s.request(http.MethodPost, itemsURL(shopcart.ID), map[string]any{
		"shopcart_id": shopcart.ID,
		"item_id":     "SKU1",
		"description": "pen",
		"quantity":    "5",
		"price":       "10",
	})

	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	location := rec.Header().Get("Location")
	s.Require().NotEmpty(location)

	var created models.Item
	s.decode(rec, &created)
	s.Equal(shopcart.ID, created.ShopcartID)
	s.Equal("SKU1", created.ItemID)
	s.Equal(5, created.Quantity)
	s.Equal(10, created.Price)

	rec = s.request(http.MethodGet, location, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var fetched models.Item
	s.decode(rec, &fetched)
	s.Equal(created, fetched)
}

func (s *ShopcartAPITestSuite) TestAddItemUsesPathShopcart() {
	shopcart := s.createShopcart("cart")

	rec := s.request(http.MethodPost, itemsURL(shopcart.ID), map[string]any{
		"shopcart_id": 9999,
		"item_id":     "SKU1",
		"description": "pen",
		"quantity":    1,
		"price":       1,
	})

	s.Require().Equal(http.StatusCreated, rec.Code)
	var created models.Item
	s.decode(rec, &created)
	s.Equal(shopcart.ID, created.ShopcartID)
}

func (s *ShopcartAPITestSuite) TestAddItemNumericItemID() {
	shopcart := s.createShopcart("cart")

	rec := s.request(http.MethodPost, itemsURL(shopcart.ID), map[string]any{
		"shopcart_id": shopcart.ID,
		"item_id":     12345,
		"description": "pen",
		"quantity":    1,
		"price":       1,
	})

	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.Contains(rec.Body.String(), `"item_id":"12345"`)
}

func (s *ShopcartAPITestSuite) TestAddItemOutOfRange() {
	shopcart := s.createShopcart("cart")

	rec := s.request(http.MethodPost, itemsURL(shopcart.ID), map[string]any{
		"shopcart_id": shopcart.ID,
		"item_id":     "SKU1",
		"description": "pen",
		"quantity":    int64(1) << 40,
		"price":       1,
	})

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ShopcartAPITestSuite) TestAddItemShopcartNotFound() {
	shopcart := s.createShopcart("gone")
	s.Require().Equal(http.StatusNoContent, s.request(http.MethodDelete, fmt.Sprintf("%s/%d", baseURL, shopcart.ID), nil).Code)

	rec := s.request(http.MethodPost, itemsURL(shopcart.ID), map[string]any{
		"shopcart_id": shopcart.ID,
		"item_id":     "SKU1",
		"description": "pen",
		"quantity":    1,
		"price":       1,
	})

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ShopcartAPITestSuite) TestAddItemValidation() {
	shopcart := s.createShopcart("cart")
	valid := func() map[string]any {
		return map[string]any{
			"shopcart_id": shopcart.ID,
			"item_id":     "SKU1",
			"description": "pen",
			"quantity":    1,
			"price":       1,
		}
	}

	for _, field := range []string{"shopcart_id", "item_id", "description", "quantity", "price"} {
		body := valid()
		delete(body, field)
		rec := s.request(http.MethodPost, itemsURL(shopcart.ID), body)
		s.Equal(http.StatusBadRequest, rec.Code, field)
		s.Contains(rec.Body.String(), "missing "+field)
	}

	for _, field := range []string{"quantity", "price"} {
		body := valid()
		body[field] = "abc"
		rec := s.request(http.MethodPost, itemsURL(shopcart.ID), body)
		s.Equal(http.StatusBadRequest, rec.Code, field)

		body[field] = nil
		rec = s.request(http.MethodPost, itemsURL(shopcart.ID), body)
		s.Equal(http.StatusBadRequest, rec.Code, field)
	}

	rec := s.request(http.MethodPost, itemsURL(shopcart.ID), "just a string")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "body of request contained bad or no data")
}

func (s *ShopcartAPITestSuite) TestGetItem() {
	shopcart := s.createShopcart("cart")
	item := s.addItem(shopcart.ID, "A", 10, 2)

	rec := s.request(http.MethodGet, fmt.Sprintf("%s/%d", itemsURL(shopcart.ID), item.ID), nil)

	s.Require().Equal(http.StatusOK, rec.Code)
	var fetched models.Item
	s.decode(rec, &fetched)
	s.Equal("A", fetched.ItemID)
	s.Equal(2, fetched.Quantity)
}

func (s *ShopcartAPITestSuite) TestGetItemNotFound() {
	shopcart := s.createShopcart("cart")
	other := s.createShopcart("other")
	item := s.addItem(other.ID, "A", 10, 2)

	rec := s.request(http.MethodGet, fmt.Sprintf("%s/%d", itemsURL(shopcart.ID), item.ID), nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.request(http.MethodGet, fmt.Sprintf("%s/0", itemsURL(shopcart.ID)), nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ShopcartAPITestSuite) TestUpdateItem() {
	shopcart := s.createShopcart("cart")
	item := s.addItem(shopcart.ID, "A", 10, 2)

	rec := s.request(http.MethodPut, fmt.Sprintf("%s/%d", itemsURL(shopcart.ID), item.ID), map[string]any{
		"shopcart_id": shopcart.ID,
		"item_id":     "A",
		"description": "updated",
		"quantity":    7,
		"price":       11,
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.request(http.MethodGet, fmt.Sprintf("%s/%d", itemsURL(shopcart.ID), item.ID), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var fetched models.Item
	s.decode(rec, &fetched)
	s.Equal(item.ID, fetched.ID)
	s.Equal("updated", fetched.Description)
	s.Equal(7, fetched.Quantity)
	s.Equal(11, fetched.Price)
}

func (s *ShopcartAPITestSuite) TestUpdateItemErrors() {
	shopcart := s.createShopcart("cart")
	item := s.addItem(shopcart.ID, "A", 10, 2)

	rec := s.request(http.MethodPut, fmt.Sprintf("%s/%d", itemsURL(shopcart.ID), item.ID), map[string]any{
		"shopcart_id": shopcart.ID,
		"item_id":     "A",
		"description": "updated",
		"quantity":    "many",
		"price":       11,
	})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodPut, fmt.Sprintf("%s/0", itemsURL(shopcart.ID)), map[string]any{"item_id": "A"})
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ShopcartAPITestSuite) TestDeleteItem() {
	shopcart := s.createShopcart("cart")
	item := s.addItem(shopcart.ID, "A", 10, 2)
	url := fmt.Sprintf("%s/%d", itemsURL(shopcart.ID), item.ID)

	rec := s.request(http.MethodDelete, url, nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.request(http.MethodGet, url, nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ShopcartAPITestSuite) TestDeleteItemNotFound() {
	shopcart := s.createShopcart("cart")

	rec := s.request(http.MethodDelete, fmt.Sprintf("%s/0", itemsURL(shopcart.ID)), nil)

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ShopcartAPITestSuite) TestListItems() {
	shopcart := s.createShopcart("cart")
	first := s.addItem(shopcart.ID, "A", 10, 5)
	s.addItem(shopcart.ID, "B", 20, 1)
	other := s.createShopcart("other")
	s.addItem(other.ID, "A", 10, 5)

	var items []models.Item
	rec := s.request(http.MethodGet, itemsURL(shopcart.ID), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &items)
	s.Len(items, 2)

	rec = s.request(http.MethodGet, itemsURL(shopcart.ID)+"?price=10", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	items = nil
	s.decode(rec, &items)
	s.Require().Len(items, 1)
	s.Equal(first.ID, items[0].ID)
	s.Equal(10, items[0].Price)

	rec = s.request(http.MethodGet, itemsURL(shopcart.ID)+"?quantity=5", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	items = nil
	s.decode(rec, &items)
	s.Require().Len(items, 1)
	s.Equal(5, items[0].Quantity)

	rec = s.request(http.MethodGet, itemsURL(shopcart.ID)+"?item_id=B", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	items = nil
	s.decode(rec, &items)
	s.Require().Len(items, 1)
	s.Equal("B", items[0].ItemID)
}

func (s *ShopcartAPITestSuite) TestListItemsErrors() {
	shopcart := s.createShopcart("cart")

	rec := s.request(http.MethodGet, itemsURL(shopcart.ID)+"?price=abc", nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodGet, itemsURL(999), nil)
	s.Equal(http.StatusNotFound, rec.Code)
}
