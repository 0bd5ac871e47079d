package models

import (
	"github.com/shopspring/decimal"
)

// Product is the read-only catalog view the indexer works on. It is owned by
// the shop; the indexer never writes it back.
type Product struct {
	ID               int64                  `json:"id"`
	Name             string                 `json:"name"`
	Slug             string                 `json:"slug"`
	Permalink        string                 `json:"permalink"`
	Type             string                 `json:"type"`
	Status           ProductStatus          `json:"status"`
	ShortDescription string                 `json:"short_description"`
	Description      string                 `json:"description"`
	Excerpt          string                 `json:"excerpt"`
	Images           []string               `json:"images"`
	Tags             []string               `json:"tags"`
	Categories       []string               `json:"categories"`
	Price            *decimal.Decimal       `json:"price"`
	RegularPrice     *decimal.Decimal       `json:"regular_price"`
	SalePrice        *decimal.Decimal       `json:"sale_price"`
	OnSale           bool                   `json:"on_sale"`
	StockQuantity    *int                   `json:"stock_quantity"`
	StockStatus      string                 `json:"stock_status"`
	Attributes       []ProductAttribute     `json:"attributes"`
	Meta             map[string]interface{} `json:"meta"`
}

type ProductAttribute struct {
	// ID is the attribute taxonomy id, 0 for attributes local to the product.
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Visible   bool     `json:"visible"`
	Variation bool     `json:"variation"`
	Options   []string `json:"options"`
}

type ProductStatus string

const (
	ProductStatusPublish ProductStatus = "publish"
	ProductStatusDraft   ProductStatus = "draft"
	ProductStatusPending ProductStatus = "pending"
	ProductStatusPrivate ProductStatus = "private"
)

// IsPublished reports whether the product is visible in the shop front.
func (p *Product) IsPublished() bool {
	return p.Status == ProductStatusPublish
}

// PrimaryImage returns the first gallery image or "".
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
