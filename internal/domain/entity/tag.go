package entity

import "time"

// Tag etiqueta de color aplicable a órdenes de trabajo y citas.
type Tag struct {
	ID        int64
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
