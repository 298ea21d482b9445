package model

/**
 * @time: 2024/11/3 22:18
 * @file: base_model.go
 * @description: base model
 */

type BaseModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt int64 `gorm:"column:created_at;autoCreateTime" json:"createdAt,omitempty"`
	UpdatedAt int64 `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt,omitempty"`
}
