package woocommerce

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"algowoo/internal/logger"
	"algowoo/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productJSON = `{
	"id": 17,
	"name": "Fern &amp; Pot",
	"slug": "fern-pot",
	"permalink": "https://shop.test/product/fern-pot",
	"type": "simple",
	"status": "publish",
	"description": "<p>Long</p>",
	"short_description": "<p>Short &amp; sweet</p>",
	"price": "9.99",
	"regular_price": "12.00",
	"sale_price": "9.99",
	"on_sale": true,
	"manage_stock": true,
	"stock_quantity": 4,
	"stock_status": "instock",
	"categories": [{"id": 1, "name": "Plants &amp; Pots", "slug": "plants"}],
	"tags": [{"id": 2, "name": "green", "slug": "green"}],
	"images": [{"id": 5, "src": "https://shop.test/fern.jpg"}],
	"attributes": [{"id": 3, "name": "Height", "visible": true, "variation": false, "options": ["20", "25"]}],
	"meta_data": [{"id": 8, "key": "latin_name", "value": "Nephrolepis"}, {"id": 9, "key": "_edit_lock", "value": "1"}]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/", "ck_test", "cs_test", 0, logger.NewWithOutput("error", io.Discard))
}

func TestListProducts_PaginatesAndAuthenticates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "ck_test", user)
		assert.Equal(t, "cs_test", pass)
		assert.Equal(t, "/wp-json/wc/v3/products", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("per_page"))
		assert.Equal(t, "publish", r.URL.Query().Get("status"))

		w.Header().Set("X-WP-TotalPages", "3")
		w.Header().Set("X-WP-Total", "120")
		_, _ = w.Write([]byte("[" + productJSON + "]"))
	})

	page, err := client.ListProducts(context.Background(), 2, 50, "publish")
	require.NoError(t, err)

	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 120, page.Total)
	require.Len(t, page.Products, 1)
	assert.Equal(t, int64(17), page.Products[0].ID)
}

func TestGetProduct_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetProduct(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetProduct_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"woocommerce_rest_cannot_view"}`))
	})

	_, err := client.GetProduct(context.Background(), 1)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "cannot_view")
}

func TestListAttributes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wc/v3/products/attributes", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id": 3, "name": "Height", "slug": "pa_height", "type": "select"}]`))
	})

	attrs, err := client.ListAttributes(context.Background())
	require.NoError(t, err)

	require.Len(t, attrs, 1)
	assert.Equal(t, "pa_height", attrs[0].Slug)
}

func TestTransformProduct(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(productJSON))
	})
	wc, err := client.GetProduct(context.Background(), 17)
	require.NoError(t, err)

	p, err := NewTransformer().TransformProduct(wc)
	require.NoError(t, err)

	assert.Equal(t, models.ProductStatusPublish, p.Status)
	assert.Equal(t, "Short & sweet", p.Excerpt)
	assert.Equal(t, []string{"Plants & Pots"}, p.Categories)
	assert.Equal(t, []string{"green"}, p.Tags)
	assert.Equal(t, "12", p.RegularPrice.String())
	assert.Equal(t, "9.99", p.SalePrice.String())
	require.NotNil(t, p.StockQuantity)
	assert.Equal(t, 4, *p.StockQuantity)
	assert.Equal(t, map[string]interface{}{"latin_name": "Nephrolepis"}, p.Meta)
	require.Len(t, p.Attributes, 1)
	assert.Equal(t, int64(3), p.Attributes[0].ID)
}

func TestTransformProduct_EmptyPricesAndUnmanagedStock(t *testing.T) {
	qty := 10
	p, err := NewTransformer().TransformProduct(&Product{ID: 1, StockQuantity: &qty})
	require.NoError(t, err)

	assert.Nil(t, p.RegularPrice)
	assert.Nil(t, p.SalePrice)
	assert.Nil(t, p.StockQuantity)

	_, err = NewTransformer().TransformProduct(&Product{ID: 2, RegularPrice: "abc"})
	assert.Error(t, err)

	_, err = NewTransformer().TransformProduct(&Product{})
	assert.Error(t, err)
}
