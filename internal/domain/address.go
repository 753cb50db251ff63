package domain

import (
	"time"
)

// Address представляет адресную запись (точку с координатами x/y),
// принадлежащую пользователю. Соответствует таблице 'address' в бд
// (имя таблицы историческое, в единственном числе).
type Address struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index"`
	X         float64   `json:"x" gorm:"index"`
	Y         float64   `json:"y" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}

func (Address) TableName() string {
	return "address"
}
