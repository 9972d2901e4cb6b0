package models

import "time"

type AccountGroup struct {
	ID          int       `json:"id"`
	Name        string    `json:"name" binding:"required"`
	CategoryId  int       `json:"category_id" binding:"required"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type NewAccountGroup struct {
	Name        string `json:"name" binding:"required"`
	CategoryId  int    `json:"category_id" binding:"required"`
	Description string `json:"description"`
}
