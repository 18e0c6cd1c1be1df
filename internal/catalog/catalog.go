// Package catalog holds the static print-on-demand product catalog.
// Products are defined at build time and never mutated; variants are
// derived on the fly from a product's colors and sizes.
package catalog

import "strings"

type Product struct {
	ID          int               `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Type        string            `json:"type"`
	Brand       string            `json:"brand"`
	Image       string            `json:"image"`
	ColorImages map[string]string `json:"colorImages"`
	BasePrice   int64             `json:"basePrice"`
	Colors      []string          `json:"colors"`
	Sizes       []string          `json:"sizes"`
}

type Variant struct {
	ID        int    `json:"id"`
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	ColorCode string `json:"colorCode"`
	Price     int64  `json:"price"`
	InStock   bool   `json:"inStock"`
}

type Category struct {
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	ProductCount int    `json:"productCount"`
}

// AllProducts returns every product across all categories, in category
// definition order.
func AllProducts() []Product {
	var out []Product
	for _, slug := range categoryOrder {
		out = append(out, categories[slug].products...)
	}
	return out
}

// ProductByID finds a product and the name of its category. Returns nil
// when the id is unknown.
func ProductByID(id int) (*Product, string) {
	for _, slug := range categoryOrder {
		cat := categories[slug]
		for i := range cat.products {
			if cat.products[i].ID == id {
				p := cat.products[i]
				return &p, cat.name
			}
		}
	}
	return nil, ""
}

// ProductsByCategory matches a category by its slug, case-insensitively.
// Input is normalized to lowercase letters and hyphens so that values like
// "T-Shirts" resolve to the "t-shirts" key; a partial key match (ignoring
// hyphens) is accepted too.
func ProductsByCategory(category string) []Product {
	key := normalizeCategoryKey(category)
	if key == "" {
		return nil
	}
	for _, slug := range categoryOrder {
		if slug == key || strings.Contains(slug, strings.ReplaceAll(key, "-", "")) {
			return append([]Product(nil), categories[slug].products...)
		}
	}
	return nil
}

// CategoryName resolves the display name for a category query, falling
// back to the query itself when nothing matches.
func CategoryName(category string) string {
	key := normalizeCategoryKey(category)
	for _, slug := range categoryOrder {
		if slug == key || strings.Contains(slug, strings.ReplaceAll(key, "-", "")) {
			return categories[slug].name
		}
	}
	return category
}

// Search matches the query as a case-insensitive substring of a product's
// title, description, or type.
func Search(query string) []Product {
	q := strings.ToLower(query)
	var out []Product
	for _, slug := range categoryOrder {
		for _, p := range categories[slug].products {
			if strings.Contains(strings.ToLower(p.Title), q) ||
				strings.Contains(strings.ToLower(p.Description), q) ||
				strings.Contains(strings.ToLower(p.Type), q) {
				out = append(out, p)
			}
		}
	}
	return out
}

func Categories() []Category {
	out := make([]Category, 0, len(categoryOrder))
	for _, slug := range categoryOrder {
		cat := categories[slug]
		out = append(out, Category{Slug: slug, Name: cat.name, ProductCount: len(cat.products)})
	}
	return out
}

// Variants generates the color × size cross product for a product.
// Variant ids are synthetic: productID*1000 plus a running sequence.
// Every variant carries the product's base price and is in stock.
func Variants(p *Product) []Variant {
	variants := make([]Variant, 0, len(p.Colors)*len(p.Sizes))
	id := p.ID * 1000
	for _, color := range p.Colors {
		for _, size := range p.Sizes {
			variants = append(variants, Variant{
				ID:        id,
				ProductID: p.ID,
				Name:      color + " / " + size,
				Color:     color,
				Size:      size,
				ColorCode: ColorCode(color),
				Price:     p.BasePrice,
				InStock:   true,
			})
			id++
		}
	}
	return variants
}

// ColorCode maps a catalog color name to its hex code, defaulting to black.
func ColorCode(color string) string {
	if code, ok := colorCodes[color]; ok {
		return code
	}
	return "#000000"
}

func normalizeCategoryKey(category string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(category) {
		if (r >= 'a' && r <= 'z') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
