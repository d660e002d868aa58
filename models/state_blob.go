package models

import "time"

// StateBlob là một dòng key-value trong DB, giữ blob JSON của State.
type StateBlob struct {
	Key       string    `gorm:"column:blob_key;primaryKey;size:100" json:"key"`
	Value     string    `gorm:"column:value;type:text;not null" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StateBlob) TableName() string {
	return "state_blobs"
}
