package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/enums"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/types"
)

// Order is one checkout snapshot with its invoice identity.
type Order struct {
	ID            uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	InvoiceNumber string            `gorm:"column:invoice_number;not null;uniqueIndex"`
	UserID        uuid.UUID         `gorm:"column:user_id;type:uuid;not null;index"`
	Status        enums.OrderStatus `gorm:"column:status;not null;default:'pending'"`
	CustomerName  string            `gorm:"column:customer_name;not null"`
	CustomerEmail string            `gorm:"column:customer_email;not null"`
	CustomerPhone string            `gorm:"column:customer_phone"`
	ShippingAddr  string            `gorm:"column:shipping_addr"`
	SubtotalAmt   int64             `gorm:"column:subtotal_amt;not null"`
	ShippingAmt   int64             `gorm:"column:shipping_amt;not null;default:0"`
	TotalAmt      int64             `gorm:"column:total_amt;not null"`
	Items         []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// OrderItem snapshots one cart line item at checkout time. ProductName and
// UnitPrice are copied rather than joined so invoices survive catalog edits.
type OrderItem struct {
	ID            uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID       uuid.UUID           `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID     uuid.UUID           `gorm:"column:product_id;type:uuid;not null"`
	ProductSlug   string              `gorm:"column:product_slug;not null"`
	ProductName   string              `gorm:"column:product_name;not null"`
	Customization types.Customization `gorm:"column:customization;type:jsonb;serializer:json"`
	Quantity      int                 `gorm:"column:quantity;not null"`
	UnitPrice     int64               `gorm:"column:unit_price;not null"`
	LineTotal     int64               `gorm:"column:line_total;not null"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
}
