package models

import "time"

// Video のIDは呼び出し側が指定する（自動採番しない）
type Video struct {
	ID        uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Views     int       `gorm:"not null" json:"views"`
	Likes     int       `gorm:"not null" json:"likes"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
