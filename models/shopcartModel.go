package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Kariqs/shopcart-api/utils"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const nameMaxLength = 63

type Shopcart struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:63;not null;index"`
	Items     []Item    `json:"items" gorm:"foreignKey:ShopcartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (s Shopcart) String() string {
	return fmt.Sprintf("<Shopcart %s id=[%d]>", s.Name, s.ID)
}

// Deserialize populates the shopcart name from a decoded JSON object. The
// body must carry an items list as a serialized shopcart does; its entries
// are ignored because items are written through their own routes.
func (s *Shopcart) Deserialize(data map[string]any) (*Shopcart, error) {
	if data == nil {
		return nil, BadBody("Shopcart", nil)
	}
	raw, ok := data["name"]
	if !ok {
		return nil, missingField("Shopcart", "name")
	}
	items, ok := data["items"]
	if !ok {
		return nil, missingField("Shopcart", "items")
	}
	if _, isList := items.([]any); !isList {
		return nil, badAttribute("items", fmt.Errorf("expected a list, got %T", items))
	}
	name, err := utils.ToString(raw)
	if err != nil {
		return nil, badAttribute("name", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &DataValidationError{Field: "name", Reason: "Invalid Shopcart: name must not be empty"}
	}
	if utf8.RuneCountInString(name) > nameMaxLength {
		return nil, badAttribute("name", fmt.Errorf("longer than %d characters", nameMaxLength))
	}

	s.Name = name
	if s.Items == nil {
		s.Items = []Item{}
	}
	return s, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("items.id")
	})
}

// FindShopcart loads a shopcart together with its items.
func FindShopcart(db *gorm.DB, id uint) (*Shopcart, error) {
	var shopcart Shopcart
	if err := preloadItems(db).First(&shopcart, id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %w", ErrShopcartNotFound, err)
		}
		return nil, err
	}
	return &shopcart, nil
}

// ShopcartExists checks the parent of an item operation without loading items.
func ShopcartExists(db *gorm.DB, id uint) error {
	if _, err := FindByID[Shopcart](db, id); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: %w", ErrShopcartNotFound, err)
		}
		return err
	}
	return nil
}

func AllShopcarts(db *gorm.DB) ([]Shopcart, error) {
	return All[Shopcart](preloadItems(db))
}

func FindShopcartsByName(db *gorm.DB, name string) ([]Shopcart, error) {
	log.Debug().Str("name", name).Msg("Processing name query")
	return All[Shopcart](preloadItems(db).Where("name = ?", name))
}

// DeleteShopcart removes the shopcart and its items. Deleting a missing
// shopcart is not an error.
func DeleteShopcart(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shopcart_id = ?", id).Delete(&Item{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Shopcart{}, id).Error
	})
}

// ClearShopcart deletes every item in the shopcart and keeps the shopcart.
func ClearShopcart(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Where("shopcart_id = ?", id).Delete(&Item{}).Error
	})
}
