package woocommerce

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"algowoo/internal/models"

	"github.com/shopspring/decimal"
)

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	spacePattern = regexp.MustCompile(`\s+`)
)

type Transformer struct{}

func NewTransformer() *Transformer {
	return &Transformer{}
}

// TransformProduct converts a WooCommerce product to the catalog model
func (t *Transformer) TransformProduct(wc *Product) (*models.Product, error) {
	if wc.ID <= 0 {
		return nil, fmt.Errorf("product has no id")
	}

	regular, err := parsePrice(wc.RegularPrice)
	if err != nil {
		return nil, fmt.Errorf("invalid regular price for product %d: %w", wc.ID, err)
	}
	sale, err := parsePrice(wc.SalePrice)
	if err != nil {
		return nil, fmt.Errorf("invalid sale price for product %d: %w", wc.ID, err)
	}
	current, err := parsePrice(wc.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid price for product %d: %w", wc.ID, err)
	}

	images := make([]string, 0, len(wc.Images))
	for _, img := range wc.Images {
		if img.Src != "" {
			images = append(images, img.Src)
		}
	}

	attributes := make([]models.ProductAttribute, len(wc.Attributes))
	for i, a := range wc.Attributes {
		attributes[i] = models.ProductAttribute{
			ID:        a.ID,
			Name:      a.Name,
			Visible:   a.Visible,
			Variation: a.Variation,
			Options:   append([]string{}, a.Options...),
		}
	}

	meta := make(map[string]interface{}, len(wc.MetaData))
	for _, m := range wc.MetaData {
		// keys starting with an underscore are private to WordPress
		if m.Key == "" || strings.HasPrefix(m.Key, "_") {
			continue
		}
		meta[m.Key] = m.Value
	}

	var stock *int
	if wc.ManageStock && wc.StockQuantity != nil {
		q := *wc.StockQuantity
		stock = &q
	}

	return &models.Product{
		ID:               wc.ID,
		Name:             wc.Name,
		Slug:             wc.Slug,
		Permalink:        wc.Permalink,
		Type:             wc.Type,
		Status:           models.ProductStatus(wc.Status),
		ShortDescription: wc.ShortDescription,
		Description:      wc.Description,
		Excerpt:          PlainText(wc.ShortDescription),
		Images:           images,
		Tags:             termNames(wc.Tags),
		Categories:       termNames(wc.Categories),
		Price:            current,
		RegularPrice:     regular,
		SalePrice:        sale,
		OnSale:           wc.OnSale,
		StockQuantity:    stock,
		StockStatus:      wc.StockStatus,
		Attributes:       attributes,
		Meta:             meta,
	}, nil
}

// PlainText strips markup and entities from an HTML fragment.
func PlainText(s string) string {
	s = tagPattern.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}

func parsePrice(s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func termNames(terms []Term) []string {
	names := make([]string, 0, len(terms))
	for _, t := range terms {
		names = append(names, html.UnescapeString(t.Name))
	}
	return names
}
