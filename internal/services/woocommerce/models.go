package woocommerce

import (
	"time"
)

// Product represents a WooCommerce product as returned by the REST API v3
// and by product webhooks.
type Product struct {
	ID               int64       `json:"id"`
	Name             string      `json:"name"`
	Slug             string      `json:"slug"`
	Permalink        string      `json:"permalink"`
	Type             string      `json:"type"`
	Status           string      `json:"status"`
	Description      string      `json:"description"`
	ShortDescription string      `json:"short_description"`
	SKU              string      `json:"sku"`
	Price            string      `json:"price"`
	RegularPrice     string      `json:"regular_price"`
	SalePrice        string      `json:"sale_price"`
	OnSale           bool        `json:"on_sale"`
	ManageStock      bool        `json:"manage_stock"`
	StockQuantity    *int        `json:"stock_quantity"`
	StockStatus      string      `json:"stock_status"`
	Categories       []Term      `json:"categories"`
	Tags             []Term      `json:"tags"`
	Images           []Image     `json:"images"`
	Attributes       []Attribute `json:"attributes"`
	MetaData         []MetaData  `json:"meta_data"`
	DateCreated      string      `json:"date_created"`
	DateModified     string      `json:"date_modified"`
}

// Term represents a category or tag reference on a product
type Term struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Image represents a product image
type Image struct {
	ID   int64  `json:"id"`
	Src  string `json:"src"`
	Name string `json:"name"`
	Alt  string `json:"alt"`
}

// Attribute represents an attribute attached to a product
type Attribute struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Position  int      `json:"position"`
	Visible   bool     `json:"visible"`
	Variation bool     `json:"variation"`
	Options   []string `json:"options"`
}

// MetaData represents a custom field on a product
type MetaData struct {
	ID    int64       `json:"id"`
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// AttributeTaxonomy represents a global product attribute definition
type AttributeTaxonomy struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Type        string `json:"type"`
	OrderBy     string `json:"order_by"`
	HasArchives bool   `json:"has_archives"`
}

// ProductsPage is one page of the products listing
type ProductsPage struct {
	Products   []Product
	Page       int
	TotalPages int
	Total      int
}

// WebhookDelivery carries the X-WC-Webhook-* headers of one delivery.
type WebhookDelivery struct {
	Topic      string    `json:"topic"`
	Resource   string    `json:"resource"`
	Event      string    `json:"event"`
	DeliveryID string    `json:"delivery_id"`
	ReceivedAt time.Time `json:"received_at"`
}
