package cart

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/types"
)

// Item is one line in a browser session's cart. Key identifies the line:
// the same product with the same design always lands on the same line, a
// different design opens a new one.
type Item struct {
	Key           string              `json:"key"`
	ProductID     uuid.UUID           `json:"product_id"`
	ProductSlug   string              `json:"product_slug"`
	ProductName   string              `json:"product_name"`
	ImageURL      string              `json:"image_url"`
	Customization types.Customization `json:"customization"`
	Quantity      int                 `json:"quantity"`
	UnitPrice     int64               `json:"unit_price"`
}

// LineTotal is the item's contribution to the cart subtotal.
func (i Item) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// ItemKey derives the identity key for a product + design pair. The design
// is serialized through its struct definition, so key order is fixed and the
// same design always hashes the same regardless of how the client sent it.
func ItemKey(productID uuid.UUID, customization types.Customization) (string, error) {
	payload, err := json.Marshal(customization)
	if err != nil {
		return "", fmt.Errorf("serialize customization: %w", err)
	}
	sum := sha256.Sum256(append([]byte(productID.String()), payload...))
	return hex.EncodeToString(sum[:]), nil
}
