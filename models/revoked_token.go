package models

import "time"

type RevokedToken struct {
	ID        uint   `gorm:"primaryKey"`
	Jti       string `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time
}
