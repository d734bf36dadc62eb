package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/cart"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/orders"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/sheets"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/db/models"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/enums"
	pkgerrors "github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/errors"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/logger"
)

// CustomerInput is the contact and shipping detail captured at checkout.
type CustomerInput struct {
	Name         string
	Email        string
	Phone        string
	ShippingAddr string
}

// OrderSheet is the best-effort spreadsheet log for placed orders.
type OrderSheet interface {
	AppendOrder(ctx context.Context, row sheets.OrderRow) error
}

// Service turns a session cart into a persisted order.
type Service interface {
	Checkout(ctx context.Context, userID uuid.UUID, sessionID string, customer CustomerInput) (*orders.OrderDTO, error)
}

type service struct {
	db       *gorm.DB
	orders   orders.OrderRepository
	orderSvc orders.Service
	cart     cart.Service
	sheet    OrderSheet
	logg     *logger.Logger
	now      func() time.Time
}

// NewService wires the checkout flow. sheet may be nil when the spreadsheet
// log is not configured.
func NewService(db *gorm.DB, orderRepo orders.OrderRepository, cartSvc cart.Service, sheet OrderSheet, logg *logger.Logger) (Service, error) {
	if orderRepo == nil || cartSvc == nil || logg == nil {
		return nil, fmt.Errorf("checkout service requires an order repository, cart service, and logger")
	}
	orderSvc, err := orders.NewService(orderRepo)
	if err != nil {
		return nil, err
	}
	return &service{
		db:       db,
		orders:   orderRepo,
		orderSvc: orderSvc,
		cart:     cartSvc,
		sheet:    sheet,
		logg:     logg,
		now:      time.Now,
	}, nil
}

// Checkout snapshots the cart into an order inside one transaction and clears
// the cart afterwards. The invoice sequence is derived inside the same
// transaction so two concurrent checkouts cannot mint the same number.
func (s *service) Checkout(ctx context.Context, userID uuid.UUID, sessionID string, customer CustomerInput) (*orders.OrderDTO, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	loaded, err := s.cart.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	items := purchasableItems(loaded.Items)
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	var created *models.Order
	err = s.transaction(ctx, func(tx *gorm.DB) error {
		repo := s.orders.WithTx(tx)

		now := s.now()
		count, err := repo.CountForDay(ctx, now)
		if err != nil {
			return fmt.Errorf("count orders for day: %w", err)
		}
		invoice := orders.FormatInvoiceNumber(now, count+1)

		order := buildOrder(userID, invoice, customer, items)
		created, err = repo.Create(ctx, order)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "place order")
	}

	if err := s.cart.Clear(ctx, sessionID); err != nil {
		// The order exists; a stale cart is an annoyance, not a failure.
		s.logg.Error(ctx, "failed to clear cart after checkout", err)
	}

	s.appendToSheet(ctx, created)

	return s.orderSvc.GetOrderAdmin(ctx, created.ID)
}

func (s *service) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s.db == nil {
		return fn(nil)
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

// appendToSheet logs the order to the shared spreadsheet. Failures are logged
// and swallowed; the sheet is bookkeeping, not the source of truth.
func (s *service) appendToSheet(ctx context.Context, order *models.Order) {
	if s.sheet == nil {
		return
	}

	summaries := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		summaries = append(summaries, fmt.Sprintf("%s x%d", item.ProductName, item.Quantity))
	}

	row := sheets.OrderRow{
		InvoiceNumber: order.InvoiceNumber,
		PlacedAt:      order.CreatedAt,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		ItemsSummary:  strings.Join(summaries, ", "),
		Total:         orders.DisplayAmount(order.TotalAmt),
		Status:        order.Status.String(),
	}
	if err := s.sheet.AppendOrder(ctx, row); err != nil {
		s.logg.Error(ctx, "failed to append order to spreadsheet", err)
	}
}

func validateCustomer(customer CustomerInput) error {
	if strings.TrimSpace(customer.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer name is required")
	}
	if strings.TrimSpace(customer.Email) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer email is required")
	}
	return nil
}

// purchasableItems drops zero-quantity lines. They stay visible in the cart
// but never reach an invoice.
func purchasableItems(items []cart.Item) []cart.Item {
	out := make([]cart.Item, 0, len(items))
	for _, item := range items {
		if item.Quantity > 0 {
			out = append(out, item)
		}
	}
	return out
}

func buildOrder(userID uuid.UUID, invoice string, customer CustomerInput, items []cart.Item) *models.Order {
	order := &models.Order{
		InvoiceNumber: invoice,
		UserID:        userID,
		Status:        enums.OrderStatusPending,
		CustomerName:  strings.TrimSpace(customer.Name),
		CustomerEmail: strings.TrimSpace(customer.Email),
		CustomerPhone: strings.TrimSpace(customer.Phone),
		ShippingAddr:  strings.TrimSpace(customer.ShippingAddr),
		Items:         make([]models.OrderItem, 0, len(items)),
	}

	subtotal := decimal.Zero
	for _, item := range items {
		lineTotal := decimal.NewFromInt(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		order.Items = append(order.Items, models.OrderItem{
			ProductID:     item.ProductID,
			ProductSlug:   item.ProductSlug,
			ProductName:   item.ProductName,
			Customization: item.Customization,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			LineTotal:     lineTotal.IntPart(),
		})
	}
	order.SubtotalAmt = subtotal.IntPart()
	order.TotalAmt = subtotal.Add(decimal.NewFromInt(order.ShippingAmt)).IntPart()
	return order
}
