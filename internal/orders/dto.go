package orders

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/db/models"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/enums"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/types"
)

// OrderDTO is the storefront and admin representation of one order.
type OrderDTO struct {
	ID            uuid.UUID         `json:"id"`
	InvoiceNumber string            `json:"invoice_number"`
	Status        enums.OrderStatus `json:"status"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	CustomerPhone string            `json:"customer_phone,omitempty"`
	ShippingAddr  string            `json:"shipping_addr,omitempty"`
	Subtotal      int64             `json:"subtotal"`
	Shipping      int64             `json:"shipping"`
	Total         int64             `json:"total"`
	TotalDisplay  string            `json:"total_display"`
	Items         []OrderItemDTO    `json:"items"`
	CreatedAt     time.Time         `json:"created_at"`
}

// OrderItemDTO is one snapshotted line on an order.
type OrderItemDTO struct {
	ID            uuid.UUID           `json:"id"`
	ProductID     uuid.UUID           `json:"product_id"`
	ProductSlug   string              `json:"product_slug"`
	ProductName   string              `json:"product_name"`
	Customization types.Customization `json:"customization"`
	Quantity      int                 `json:"quantity"`
	UnitPrice     int64               `json:"unit_price"`
	LineTotal     int64               `json:"line_total"`
}

// DisplayAmount formats a minor-unit amount with thousands separators the way
// the invoices show it, e.g. 405000 -> "Rp 405.000".
func DisplayAmount(amount int64) string {
	digits := decimal.NewFromInt(amount).StringFixed(0)

	negative := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "Rp " + b.String()
	if negative {
		out = "Rp -" + b.String()
	}
	return out
}

func toDTO(order *models.Order) *OrderDTO {
	dto := &OrderDTO{
		ID:            order.ID,
		InvoiceNumber: order.InvoiceNumber,
		Status:        order.Status,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		ShippingAddr:  order.ShippingAddr,
		Subtotal:      order.SubtotalAmt,
		Shipping:      order.ShippingAmt,
		Total:         order.TotalAmt,
		TotalDisplay:  DisplayAmount(order.TotalAmt),
		Items:         make([]OrderItemDTO, 0, len(order.Items)),
		CreatedAt:     order.CreatedAt,
	}
	for _, item := range order.Items {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:            item.ID,
			ProductID:     item.ProductID,
			ProductSlug:   item.ProductSlug,
			ProductName:   item.ProductName,
			Customization: item.Customization,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			LineTotal:     item.LineTotal,
		})
	}
	return dto
}

func mapDTOs(rows []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out
}
