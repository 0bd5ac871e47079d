package indexer

import (
	"context"
	"errors"
	"io"
	"sync"

	"algowoo/internal/logger"
	"algowoo/internal/models"
	"algowoo/internal/settings"

	"github.com/shopspring/decimal"
)

type saveCall struct {
	index string
	docs  []Document
}

type fakeClient struct {
	mu      sync.Mutex
	calls   []saveCall
	failOn  int
	failErr error
}

func (f *fakeClient) SaveObjects(_ context.Context, indexName string, docs []Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, saveCall{index: indexName, docs: docs})
	if f.failOn > 0 && len(f.calls) == f.failOn {
		return f.failErr
	}
	return nil
}

type fakeCatalog struct {
	products map[int64]*models.Product
	order    []int64
	err      error
}

func newFakeCatalog(products ...*models.Product) *fakeCatalog {
	c := &fakeCatalog{products: make(map[int64]*models.Product)}
	for _, p := range products {
		c.products[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	return c
}

func (c *fakeCatalog) Products(context.Context) ([]*models.Product, error) {
	if c.err != nil {
		return nil, c.err
	}
	var out []*models.Product
	for _, id := range c.order {
		if p := c.products[id]; p.IsPublished() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (c *fakeCatalog) Product(_ context.Context, id int64) (*models.Product, error) {
	if c.err != nil {
		return nil, c.err
	}
	p, ok := c.products[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

type staticSettings struct {
	s   settings.Settings
	err error
}

func (s staticSettings) Load(context.Context) (settings.Settings, error) {
	return s.s, s.err
}

func configured() settings.Settings {
	s := settings.Defaults()
	s.ApplicationID = "APP"
	s.APIKey = "KEY"
	s.IndexName = "products"
	return s
}

func testLogger() *logger.Logger {
	return logger.NewWithOutput("debug", io.Discard)
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(i int) *int {
	return &i
}

func sampleProduct(id int64) *models.Product {
	return &models.Product{
		ID:               id,
		Name:             "Fern",
		Permalink:        "https://shop.test/product/fern",
		Type:             "simple",
		Status:           models.ProductStatusPublish,
		ShortDescription: "<p>Small fern</p>",
		Description:      "<p>A small fern for shady corners.</p>",
		Excerpt:          "Small fern",
		Images:           []string{"https://shop.test/fern.jpg", "https://shop.test/fern-2.jpg"},
		Tags:             []string{"green"},
		Categories:       []string{"Plants", "Indoor"},
		RegularPrice:     dec("12.50"),
		OnSale:           false,
		StockQuantity:    intPtr(7),
		StockStatus:      "instock",
		Attributes: []models.ProductAttribute{
			{ID: 1, Name: "Height", Visible: true, Variation: false, Options: []string{"20", "25"}},
			{ID: 2, Name: "Colour", Visible: false, Variation: true, Options: []string{"Green", "Variegated"}},
			{ID: 0, Name: "Care", Visible: true, Variation: false, Options: []string{"Easy"}},
		},
		Meta: map[string]interface{}{"latin_name": "Nephrolepis"},
	}
}
