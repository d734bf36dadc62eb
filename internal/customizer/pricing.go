package customizer

// Print surcharge schedule in minor currency units (IDR). The first printed
// side covers plate setup, each additional side only the extra print pass.
const (
	FirstDecalCost      int64 = 25_000
	AdditionalDecalCost int64 = 15_000
)

// DecalSurcharge returns the per-unit print surcharge for a design with the
// given number of decals.
func DecalSurcharge(decals int) int64 {
	if decals <= 0 {
		return 0
	}
	return FirstDecalCost + int64(decals-1)*AdditionalDecalCost
}

// Total computes the line total for a customized product. Quantities below
// one clamp to one; a cart line always represents at least one ball.
func Total(basePrice int64, decals, qty int) int64 {
	if qty < 1 {
		qty = 1
	}
	return (basePrice + DecalSurcharge(decals)) * int64(qty)
}
