package services

import (
	"gamestore/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RecordAdminAction appends one audit row. Audit failures are surfaced to
// the caller; admin mutations should not silently lose their trail.
func RecordAdminAction(db *gorm.DB, adminUserID uint, action, resourceType string, resourceID *uint, oldValues, newValues map[string]any, ip, userAgent string) error {
	entry := models.AdminLog{
		AdminUserID:  adminUserID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldValues:    datatypes.JSONMap(oldValues),
		NewValues:    datatypes.JSONMap(newValues),
		IPAddress:    ip,
		UserAgent:    userAgent,
	}
	return db.Create(&entry).Error
}

// ListAdminLogs returns the audit trail, newest first.
func ListAdminLogs(db *gorm.DB, limit int) ([]models.AdminLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var logs []models.AdminLog
	err := db.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
