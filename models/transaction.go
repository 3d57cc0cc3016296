package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 账目类型，数据库中只存在收入和支出两种
const (
	TipoIngreso = "Ingreso"
	TipoGasto   = "Gasto"
	// TipoAhorro 仅用于录入，写入时折算为 Gasto（存入）或 Ingreso（取出）
	TipoAhorro = "Ahorro"
)

// Transaction 收支记录（movimientos 表）
type Transaction struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Label     string    `json:"concepto" gorm:"column:concepto;size:255;not null"`
	Amount    int64     `json:"monto" gorm:"column:monto;not null"`
	Type      string    `json:"tipo" gorm:"column:tipo;size:20;not null;index"`
	Category  string    `json:"categoria" gorm:"column:categoria;size:50;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "movimientos"
}

// BeforeCreate 未指定 ID 时生成 uuid
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// IsIncome 是否为收入
func (t Transaction) IsIncome() bool {
	return t.Type == TipoIngreso
}

// IsExpense 是否为支出
func (t Transaction) IsExpense() bool {
	return t.Type == TipoGasto
}
