package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product represents one catalog listing. Slug is the public identifier used
// by storefront URLs; ID stays internal.
type Product struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug         string         `gorm:"column:slug;not null;uniqueIndex"`
	Name         string         `gorm:"column:name;not null"`
	Description  string         `gorm:"column:description"`
	BasePrice    int64          `gorm:"column:base_price;not null"`
	ImageURL     string         `gorm:"column:image_url;not null"`
	Gallery      pq.StringArray `gorm:"column:gallery;type:text[]"`
	IsFloater    bool           `gorm:"column:is_floater;not null;default:false"`
	Customizable bool           `gorm:"column:customizable;not null;default:true"`
	IsActive     bool           `gorm:"column:is_active;not null;default:true"`
	Colors       []ProductColor `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// ProductColor is one selectable ball color variant.
type ProductColor struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;index"`
	Name      string    `gorm:"column:name;not null"`
	Hex       string    `gorm:"column:hex;not null"`
	ImageURL  *string   `gorm:"column:image_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
