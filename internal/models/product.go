package models

import "time"

// Product — таблица products
type Product struct {
	ID          int       `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:varchar(500)"`
	Price       float64   `gorm:"type:decimal(10,2)"`
	ImageURL    string    `gorm:"column:image_url;type:varchar(300)"` // пусто — показываем placeholder
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}
