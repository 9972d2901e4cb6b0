package models

import "time"

// Master data is owned by the upstream ERP API; the gateway holds the
// typed shapes, validates input locally and forwards the call.

type AccountCategory struct {
	ID          int       `json:"id"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type NewAccountCategory struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
