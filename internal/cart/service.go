package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/catalog"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/customizer"
	pkgerrors "github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/errors"
	redispkg "github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/redis"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/types"
)

// CartKeyer builds the redis key holding one browser session's cart.
type CartKeyer interface {
	CartKey(sessionID string) string
}

// ProductFinder is the slice of the catalog the cart needs.
type ProductFinder interface {
	GetProduct(ctx context.Context, slug string) (*catalog.ProductDTO, error)
}

// CartDTO is the cart payload returned to the storefront.
type CartDTO struct {
	Items    []Item `json:"items"`
	Subtotal int64  `json:"subtotal"`
}

// Service manages the session-scoped shopping cart. The cart lives as one
// JSON array per session in redis; every mutation rewrites the whole blob
// and refreshes the TTL.
type Service interface {
	Get(ctx context.Context, sessionID string) (*CartDTO, error)
	Add(ctx context.Context, sessionID, productSlug string, customization types.Customization, qty int) (*CartDTO, error)
	UpdateQuantity(ctx context.Context, sessionID, itemKey string, qty int) (*CartDTO, error)
	Remove(ctx context.Context, sessionID, itemKey string) (*CartDTO, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	store    redispkg.CartStore
	keyer    CartKeyer
	products ProductFinder
	ttl      time.Duration
}

func NewService(store redispkg.CartStore, keyer CartKeyer, products ProductFinder, ttl time.Duration) (Service, error) {
	if store == nil || keyer == nil || products == nil {
		return nil, fmt.Errorf("cart service requires a store, keyer, and product finder")
	}
	return &service{store: store, keyer: keyer, products: products, ttl: ttl}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*CartDTO, error) {
	items, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toDTO(items), nil
}

func (s *service) Add(ctx context.Context, sessionID, productSlug string, customization types.Customization, qty int) (*CartDTO, error) {
	product, err := s.products.GetProduct(ctx, productSlug)
	if err != nil {
		return nil, err
	}
	if product.Price == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "this product is priced on request and cannot be added to the cart")
	}
	if qty < 1 {
		qty = 1
	}

	key, err := ItemKey(product.ID, customization)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "derive cart item key")
	}

	items, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range items {
		if items[i].Key == key {
			// Same product, same design: merge quantities. The stored
			// unit price wins over whatever the price would be today.
			items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		unit := *product.Price + customizer.DecalSurcharge(customization.DecalCount())
		items = append(items, Item{
			Key:           key,
			ProductID:     product.ID,
			ProductSlug:   product.Slug,
			ProductName:   product.Name,
			ImageURL:      product.ImageURL,
			Customization: customization,
			Quantity:      qty,
			UnitPrice:     unit,
		})
	}

	if err := s.save(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return toDTO(items), nil
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID, itemKey string, qty int) (*CartDTO, error) {
	if qty < 0 {
		qty = 0
	}

	items, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].Key == itemKey {
			// Zero sticks; the line stays in the cart until removed.
			items[i].Quantity = qty
			found = true
			break
		}
	}
	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}

	if err := s.save(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return toDTO(items), nil
}

func (s *service) Remove(ctx context.Context, sessionID, itemKey string) (*CartDTO, error) {
	items, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, item := range items {
		if item.Key != itemKey {
			kept = append(kept, item)
		}
	}

	if err := s.save(ctx, sessionID, kept); err != nil {
		return nil, err
	}
	return toDTO(kept), nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Del(ctx, s.keyer.CartKey(sessionID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

func (s *service) load(ctx context.Context, sessionID string) ([]Item, error) {
	raw, err := s.store.Get(ctx, s.keyer.CartKey(sessionID))
	if err != nil {
		if redispkg.IsNil(err) {
			return []Item{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode cart")
	}
	return items, nil
}

func (s *service) save(ctx context.Context, sessionID string, items []Item) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart")
	}
	if err := s.store.Set(ctx, s.keyer.CartKey(sessionID), string(payload), s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return nil
}

func toDTO(items []Item) *CartDTO {
	dto := &CartDTO{Items: items}
	if dto.Items == nil {
		dto.Items = []Item{}
	}
	for _, item := range items {
		dto.Subtotal += item.LineTotal()
	}
	return dto
}
