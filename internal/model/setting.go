package model

import "time"

// Setting is a key/value runtime config row, read at boot and cached in Redis.
type Setting struct {
	ID        uint64    `gorm:"column:id;primaryKey"`
	Key       string    `gorm:"column:config_key;uniqueIndex;size:64"`
	Value     string    `gorm:"column:config_value;size:255"`
	Remark    string    `gorm:"column:remark;size:255"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Setting) TableName() string { return "settings" }
