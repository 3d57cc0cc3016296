package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultGoalColor 新建储蓄目标的默认颜色
const DefaultGoalColor = "#10b981"

// GoalColors 储蓄目标可选颜色
var GoalColors = []string{"#10b981", "#3b82f6", "#f59e0b", "#ef4444", "#a855f7"}

// Goal 储蓄目标（metas 表）
type Goal struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name      string    `json:"nombre" gorm:"column:nombre;size:100;not null"`
	Target    int64     `json:"objetivo" gorm:"column:objetivo;not null"`
	Current   int64     `json:"actual" gorm:"column:actual;not null"` // 不会小于 0
	Color     string    `json:"color" gorm:"size:20;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName 设置表名
func (Goal) TableName() string {
	return "metas"
}

// BeforeCreate 未指定 ID 时生成 uuid
func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// IsGoalColor 判断颜色是否在可选范围内
func IsGoalColor(color string) bool {
	for _, c := range GoalColors {
		if c == color {
			return true
		}
	}
	return false
}
