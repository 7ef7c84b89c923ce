package entities

// Variant is a color-keyed sub-SKU carrying its own price and stock. When a
// product has variants, stock is tracked per variant, not on the parent.
type Variant struct {
	Color      string
	Price      int64
	Quantity   int
	OutOfStock bool
}

type Product struct {
	ID         string
	SellerID   string
	Title      string
	Price      int64
	Quantity   int
	Sold       int
	OutOfStock bool
	Status     string
	Variants   []Variant
}

// Deduct reduces stock for a purchased quantity. A matching color variant is
// adjusted first; an unmatched color (or no variants at all) falls back to the
// parent quantity. Quantity is clamped at zero, the out-of-stock flag follows
// the resulting quantity, and the sold counter grows either way.
func (p *Product) Deduct(color string, quantity int) {
	if color != "" {
		for i := range p.Variants {
			if p.Variants[i].Color != color {
				continue
			}
			v := &p.Variants[i]
			v.Quantity = clampStock(v.Quantity - quantity)
			v.OutOfStock = v.Quantity == 0
			p.Sold += quantity
			return
		}
	}

	p.Quantity = clampStock(p.Quantity - quantity)
	p.OutOfStock = p.Quantity == 0
	p.Sold += quantity
}

func clampStock(q int) int {
	if q < 0 {
		return 0
	}
	return q
}
