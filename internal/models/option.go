package models

import "time"

// Option is one persisted setting, keyed by its option name.
type Option struct {
	Name      string    `json:"name" gorm:"primaryKey;size:191"`
	Value     string    `json:"value" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Option) TableName() string {
	return "options"
}
