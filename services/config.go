package services

import (
	"errors"

	"gamestore/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetConfig loads one system config row by key.
func GetConfig(db *gorm.DB, key string) (*models.SystemConfig, error) {
	var cfg models.SystemConfig
	err := db.Where("key = ?", key).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetConfigInt reads an integer config value, falling back to def when the
// key is missing or not an integer.
func GetConfigInt(db *gorm.DB, key string, def int64) int64 {
	cfg, err := GetConfig(db, key)
	if err != nil {
		return def
	}
	v, err := cfg.IntValue()
	if err != nil {
		return def
	}
	return v
}

// SetConfig upserts a config key.
func SetConfig(db *gorm.DB, cfg models.SystemConfig) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "data_type", "description", "is_public", "updated_at"}),
	}).Create(&cfg).Error
}

// ListPublicConfigs returns the rows safe to expose to the storefront.
func ListPublicConfigs(db *gorm.DB) ([]models.SystemConfig, error) {
	var cfgs []models.SystemConfig
	err := db.Where("is_public = ?", true).Order("key").Find(&cfgs).Error
	return cfgs, err
}
