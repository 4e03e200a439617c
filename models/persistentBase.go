package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is implemented by every persisted model.
type Record interface {
	Shopcart | Item
}

// Create inserts record and its new associations in a single transaction.
func Create[T Record](db *gorm.DB, record *T) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(record).Error
	})
}

// Update writes every column of record. Associations are left untouched;
// children are managed through their own records.
func Update[T Record](db *gorm.DB, record *T) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Save(record).Error
	})
}

// Delete removes record by primary key.
func Delete[T Record](db *gorm.DB, record *T) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(record).Error
	})
}

// FindByID returns gorm.ErrRecordNotFound when no row matches.
func FindByID[T Record](db *gorm.DB, id uint) (*T, error) {
	var record T
	if err := db.First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// All returns every row ordered by primary key.
func All[T Record](db *gorm.DB) ([]T, error) {
	records := []T{}
	if err := db.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
