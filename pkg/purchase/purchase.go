// Package purchase builds supplier purchase lists from catering orders:
// per-dish ingredient quantities are scaled by cooking and purchase
// yields, aggregated per catalog item, and rounded up to pack sizes.
package purchase

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Uom is a unit of measure for catalog items and order lines.
type Uom string

const (
	UomPcs     Uom = "pcs"
	UomPortion Uom = "portion"
	UomKg      Uom = "kg"
	UomL       Uom = "l"
)

// ItemType categorizes catalog items.
type ItemType string

const (
	ItemFood      ItemType = "food"
	ItemPackaging ItemType = "packaging"
	ItemInventory ItemType = "inventory"
	ItemOther     ItemType = "other"
)

// CatalogItem is one purchasable position: an ingredient, packaging, or
// inventory entry.
type CatalogItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     ItemType `json:"type"`
	Uom      Uom      `json:"uom"`
	// PackSize is the supplier pack size in the item's Uom; 0 means the
	// item is not sold in packs.
	PackSize float64 `json:"pack_size,omitempty"`
	PackUom  string  `json:"pack_uom,omitempty"`
	Supplier string  `json:"supplier,omitempty"`
}

// Dish is a menu dish assembled from catalog items.
type Dish struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	DefaultUom Uom    `json:"default_uom"`
}

// DishIngredient links a dish to a catalog item with quantity and yield
// factors.
type DishIngredient struct {
	ID     string `json:"id"`
	DishID string `json:"dish_id"`
	ItemID string `json:"item_id"`
	// CookedPerUnit is the cooked quantity of the item per unit of dish.
	CookedPerUnit float64 `json:"cooked_per_unit"`
	CookedUom     Uom     `json:"cooked_uom"`
	// YieldRawToCooked and YieldPurchaseToRaw scale cooked quantity back
	// to purchase quantity; 0 is treated as 1.
	YieldRawToCooked   float64 `json:"yield_raw_to_cooked"`
	YieldPurchaseToRaw float64 `json:"yield_purchase_to_raw"`
	RoundToPack        bool    `json:"round_to_pack"`
	Note               string  `json:"note,omitempty"`
}

// OrderLine is one ordered dish quantity within an order.
type OrderLine struct {
	ID      string  `json:"id"`
	OrderID string  `json:"order_id"`
	DishID  string  `json:"dish_id"`
	Qty     float64 `json:"qty"`
	Uom     Uom     `json:"uom"`
}

// Line is one aggregated purchase position for the buyer.
type Line struct {
	ItemID     string  `json:"item_id"`
	ItemName   string  `json:"item_name"`
	Supplier   string  `json:"supplier,omitempty"`
	Uom        Uom     `json:"uom"`
	QtyExact   float64 `json:"qty_exact"`
	QtyRounded float64 `json:"qty_rounded"`
	// Packs is the number of supplier packs to buy; 0 when the item has
	// no pack size.
	Packs    int     `json:"packs,omitempty"`
	PackSize float64 `json:"pack_size,omitempty"`
	PackUom  string  `json:"pack_uom,omitempty"`
	Bought   bool    `json:"bought"`
	Comment  string  `json:"comment"`
}

// ListParams carries the inputs for BuildList.
type ListParams struct {
	OrderID     string
	Items       []CatalogItem
	Dishes      []Dish
	Ingredients []DishIngredient
	Lines       []OrderLine
	// Bought marks items already purchased, keyed by item ID.
	Bought map[string]bool
}

// BuildList aggregates the order's ingredient demand into one purchase
// line per catalog item, rounded up to packs where the item has a pack
// size, sorted by supplier then item name.
func BuildList(p ListParams) []Line {
	itemByID := make(map[string]CatalogItem, len(p.Items))
	for _, it := range p.Items {
		itemByID[it.ID] = it
	}
	dishByID := make(map[string]Dish, len(p.Dishes))
	for _, d := range p.Dishes {
		dishByID[d.ID] = d
	}

	qtyByItem := make(map[string]float64)
	var itemOrder []string
	for _, line := range p.Lines {
		if line.OrderID != p.OrderID {
			continue
		}
		if _, ok := dishByID[line.DishID]; !ok {
			continue
		}
		for _, ing := range p.Ingredients {
			if ing.DishID != line.DishID {
				continue
			}
			item, ok := itemByID[ing.ItemID]
			if !ok {
				continue
			}
			y1 := ing.YieldRawToCooked
			if y1 == 0 {
				y1 = 1
			}
			y2 := ing.YieldPurchaseToRaw
			if y2 == 0 {
				y2 = 1
			}
			purchasePerUnit := ing.CookedPerUnit / (y1 * y2)
			if _, seen := qtyByItem[item.ID]; !seen {
				itemOrder = append(itemOrder, item.ID)
			}
			qtyByItem[item.ID] += purchasePerUnit * line.Qty
		}
	}

	out := make([]Line, 0, len(itemOrder))
	for _, itemID := range itemOrder {
		item := itemByID[itemID]
		qty := qtyByItem[itemID]

		rounded := qty
		packs := 0
		if item.PackSize > 0 {
			packs = int(math.Ceil(qty / item.PackSize))
			rounded = float64(packs) * item.PackSize
		}

		var comment string
		if packs > 0 && item.PackUom != "" {
			comment = fmt.Sprintf("Купить %d %s (по %s %s)", packs, item.PackUom, fmtQty(item.PackSize), uomLabel(item.Uom))
		} else {
			comment = fmt.Sprintf("Купить %s %s", fmtQty(qty), uomLabel(item.Uom))
		}

		out = append(out, Line{
			ItemID:     itemID,
			ItemName:   item.Name,
			Supplier:   item.Supplier,
			Uom:        item.Uom,
			QtyExact:   qty,
			QtyRounded: rounded,
			Packs:      packs,
			PackSize:   item.PackSize,
			PackUom:    item.PackUom,
			Bought:     p.Bought[itemID],
			Comment:    comment,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Supplier != out[j].Supplier {
			return out[i].Supplier < out[j].Supplier
		}
		return out[i].ItemName < out[j].ItemName
	})
	return out
}

// fmtQty formats a quantity with precision scaled to its magnitude and
// trailing zeros trimmed.
func fmtQty(n float64) string {
	abs := math.Abs(n)
	var s string
	switch {
	case abs >= 10:
		s = strconv.FormatFloat(n, 'f', 1, 64)
	case abs >= 1:
		s = strconv.FormatFloat(n, 'f', 2, 64)
	default:
		s = strconv.FormatFloat(n, 'f', 3, 64)
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func uomLabel(u Uom) string {
	switch u {
	case UomPcs:
		return "шт"
	case UomPortion:
		return "порц"
	case UomKg:
		return "кг"
	default:
		return "л"
	}
}
