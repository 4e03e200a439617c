package models

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/Kariqs/shopcart-api/utils"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	itemIDMaxLength      = 16
	descriptionMaxLength = 64

	// quantity and price are stored in 32-bit integer columns
	maxAmount = math.MaxInt32
	minAmount = math.MinInt32
)

var ErrTotalOverflow = errors.New("total price overflows")

var itemFields = []string{"shopcart_id", "item_id", "description", "quantity", "price"}

type Item struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	ShopcartID  uint   `json:"shopcart_id" gorm:"not null;index"`
	ItemID      string `json:"item_id" gorm:"size:16;not null;index"`
	Description string `json:"description" gorm:"size:64;not null"`
	Quantity    int    `json:"quantity" gorm:"type:integer;not null"`
	Price       int    `json:"price" gorm:"type:integer;not null"`
}

func (i Item) String() string {
	return fmt.Sprintf("%s: %s, %d, %d", i.ItemID, i.Description, i.Quantity, i.Price)
}

// Subtotal is price times quantity.
func (i Item) Subtotal() int {
	return i.Price * i.Quantity
}

// Deserialize populates the item from a decoded JSON object. Quantity, price
// and shopcart_id accept numbers or numeric strings. The receiver is only
// modified when every field is valid.
func (i *Item) Deserialize(data map[string]any) (*Item, error) {
	if data == nil {
		return nil, BadBody("Item", nil)
	}
	for _, field := range itemFields {
		if _, ok := data[field]; !ok {
			return nil, missingField("Item", field)
		}
	}

	shopcartID, err := utils.ToInt(data["shopcart_id"])
	if err != nil {
		return nil, badValue("shopcart_id", err)
	}
	if shopcartID < 0 {
		return nil, badValue("shopcart_id", fmt.Errorf("%d is negative", shopcartID))
	}
	itemID, err := utils.ToText(data["item_id"])
	if err != nil {
		return nil, badAttribute("item_id", err)
	}
	if utf8.RuneCountInString(itemID) > itemIDMaxLength {
		return nil, badAttribute("item_id", fmt.Errorf("longer than %d characters", itemIDMaxLength))
	}
	description, err := utils.ToString(data["description"])
	if err != nil {
		return nil, badAttribute("description", err)
	}
	if utf8.RuneCountInString(description) > descriptionMaxLength {
		return nil, badAttribute("description", fmt.Errorf("longer than %d characters", descriptionMaxLength))
	}
	quantity, err := amount(data, "quantity")
	if err != nil {
		return nil, err
	}
	price, err := amount(data, "price")
	if err != nil {
		return nil, err
	}

	i.ShopcartID = uint(shopcartID)
	i.ItemID = itemID
	i.Description = description
	i.Quantity = quantity
	i.Price = price
	return i, nil
}

func amount(data map[string]any, field string) (int, error) {
	value, err := utils.ToInt(data[field])
	if err != nil {
		return 0, badValue(field, err)
	}
	if value > maxAmount || value < minAmount {
		return 0, badValue(field, fmt.Errorf("%d is out of range", value))
	}
	return value, nil
}

// ItemFilter selects items by exact column match. Nil fields are ignored.
type ItemFilter struct {
	ShopcartID *uint
	ItemID     *string
	Quantity   *int
	Price      *int
}

func FindItems(db *gorm.DB, filter ItemFilter) ([]Item, error) {
	query := db.Model(&Item{})
	if filter.ShopcartID != nil {
		query = query.Where("shopcart_id = ?", *filter.ShopcartID)
	}
	if filter.ItemID != nil {
		query = query.Where("item_id = ?", *filter.ItemID)
	}
	if filter.Quantity != nil {
		query = query.Where("quantity = ?", *filter.Quantity)
	}
	if filter.Price != nil {
		query = query.Where("price = ?", *filter.Price)
	}

	items := []Item{}
	if err := query.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func FindItemsByPrice(db *gorm.DB, price int) ([]Item, error) {
	log.Debug().Int("price", price).Msg("Processing price query")
	return FindItems(db, ItemFilter{Price: &price})
}

func FindItemsByItemID(db *gorm.DB, itemID string) ([]Item, error) {
	log.Debug().Str("item_id", itemID).Msg("Processing item_id query")
	return FindItems(db, ItemFilter{ItemID: &itemID})
}

func FindItemsByQuantity(db *gorm.DB, quantity int) ([]Item, error) {
	log.Debug().Int("quantity", quantity).Msg("Processing quantity query")
	return FindItems(db, ItemFilter{Quantity: &quantity})
}

// FindItem loads an item that belongs to the given shopcart.
func FindItem(db *gorm.DB, shopcartID, id uint) (*Item, error) {
	var item Item
	err := db.Where("shopcart_id = ?", shopcartID).First(&item, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %w", ErrItemNotFound, err)
		}
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes the item if it exists in the shopcart. Missing items are
// not an error.
func DeleteItem(db *gorm.DB, shopcartID, id uint) error {
	item, err := FindItem(db, shopcartID, id)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}
	return Delete(db, item)
}

// TotalPrice sums price * quantity over every item in the shopcart.
func TotalPrice(db *gorm.DB, shopcartID uint) (int, error) {
	items, err := FindItems(db, ItemFilter{ShopcartID: &shopcartID})
	if err != nil {
		return 0, err
	}

	total := 0
	for _, item := range items {
		subtotal := item.Subtotal()
		if item.Quantity != 0 && subtotal/item.Quantity != item.Price {
			return 0, fmt.Errorf("%w: item %d", ErrTotalOverflow, item.ID)
		}
		if (subtotal > 0 && total > math.MaxInt-subtotal) || (subtotal < 0 && total < math.MinInt-subtotal) {
			return 0, fmt.Errorf("%w: shopcart %d", ErrTotalOverflow, shopcartID)
		}
		total += subtotal
	}
	return total, nil
}
