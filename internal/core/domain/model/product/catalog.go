package product

// SnapshotFromCatalog produces a fresh order-scoped snapshot from the master
// catalog. Catalog identity (id, name, category, unit) is preserved; quantity
// is reset to 0 and all per-order state (price, comments, check marks,
// delivery dates, price hints) is cleared. The input is never modified.
//
// Used when a brand-new order is created for a branch with no order in flight.
func SnapshotFromCatalog(catalog []Product) []Product {
	snapshot := make([]Product, 0, len(catalog))
	for _, item := range catalog {
		snapshot = append(snapshot, Product{
			ID:       item.ID,
			Name:     item.Name,
			Category: item.Category,
			Unit:     item.Unit,
			Quantity: 0,
		})
	}
	return snapshot
}

// CarryLastPrices seeds each snapshot line's LastPrice from the matching line
// of a previous order, preferring the previous explicit price and falling back
// to the previous hint. Lines without a match are left untouched. Returns a
// new slice; neither input is modified.
func CarryLastPrices(snapshot []Product, previous []Product) []Product {
	prices := make(map[string]float64, len(previous))
	for _, p := range previous {
		if price := p.EffectivePrice(); price > 0 {
			prices[p.ID] = price
		}
	}

	out := make([]Product, len(snapshot))
	copy(out, snapshot)
	for i := range out {
		if price, ok := prices[out[i].ID]; ok {
			v := price
			out[i].LastPrice = &v
		}
	}
	return out
}
