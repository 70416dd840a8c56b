package models

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ConfigString  = "string"
	ConfigInteger = "integer"
	ConfigDecimal = "decimal"
	ConfigBoolean = "boolean"
	ConfigJSON    = "json"
)

type SystemConfig struct {
	gorm.Model

	Key         string `gorm:"uniqueIndex;size:100" json:"key"`
	Value       string `gorm:"size:1000" json:"value"`
	DataType    string `gorm:"size:20;default:string" json:"data_type"`
	Description string `gorm:"size:500" json:"description,omitempty"`
	IsPublic    bool   `gorm:"default:false" json:"is_public"`
}

func (c *SystemConfig) IntValue() (int64, error) {
	if c.DataType != ConfigInteger {
		return 0, fmt.Errorf("config %s is %s, not integer", c.Key, c.DataType)
	}
	return strconv.ParseInt(c.Value, 10, 64)
}

func (c *SystemConfig) DecimalValue() (decimal.Decimal, error) {
	if c.DataType != ConfigDecimal {
		return decimal.Zero, fmt.Errorf("config %s is %s, not decimal", c.Key, c.DataType)
	}
	return decimal.NewFromString(c.Value)
}

func (c *SystemConfig) BoolValue() (bool, error) {
	if c.DataType != ConfigBoolean {
		return false, fmt.Errorf("config %s is %s, not boolean", c.Key, c.DataType)
	}
	return strconv.ParseBool(c.Value)
}

func (c *SystemConfig) JSONValue() (map[string]any, error) {
	if c.DataType != ConfigJSON {
		return nil, fmt.Errorf("config %s is %s, not json", c.Key, c.DataType)
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(c.Value), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminLog is the append-only audit trail of admin actions with before and
// after snapshots of the touched resource.
type AdminLog struct {
	gorm.Model

	AdminUserID  uint              `gorm:"index" json:"admin_user_id"`
	Action       string            `gorm:"size:100" json:"action"`
	ResourceType string            `gorm:"size:50;index" json:"resource_type"`
	ResourceID   *uint             `json:"resource_id,omitempty"`
	OldValues    datatypes.JSONMap `json:"old_values,omitempty"`
	NewValues    datatypes.JSONMap `json:"new_values,omitempty"`
	IPAddress    string            `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent    string            `gorm:"size:500" json:"user_agent,omitempty"`
}
