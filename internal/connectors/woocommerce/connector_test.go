package woocommerce

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"testing"

	"algowoo/internal/logger"
	"algowoo/internal/models"
	wc "algowoo/internal/services/woocommerce"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	pages    [][]wc.Product
	noTotals bool
	requests []int
	err      error
}

func (f *fakeAPI) ListProducts(_ context.Context, page, perPage int, status string) (*wc.ProductsPage, error) {
	f.requests = append(f.requests, page)
	if f.err != nil {
		return nil, f.err
	}
	if status != "publish" || perPage != pageSize {
		return nil, fmt.Errorf("unexpected query status=%s per_page=%d", status, perPage)
	}
	resp := &wc.ProductsPage{Page: page}
	if !f.noTotals {
		resp.TotalPages = len(f.pages)
	}
	if page <= len(f.pages) {
		resp.Products = f.pages[page-1]
	}
	return resp, nil
}

func (f *fakeAPI) GetProduct(_ context.Context, id int64) (*wc.Product, error) {
	for _, page := range f.pages {
		for i := range page {
			if page[i].ID == id {
				return &page[i], nil
			}
		}
	}
	return nil, wc.ErrNotFound
}

func quietLogger() *logger.Logger {
	return logger.NewWithOutput("error", io.Discard)
}

func TestProducts_WalksAllPages(t *testing.T) {
	api := &fakeAPI{pages: [][]wc.Product{
		{{ID: 1, Status: "publish"}, {ID: 2, Status: "publish"}},
		{{ID: 3, Status: "publish"}, {ID: 0}},
	}}
	c := New(api, "secret", quietLogger())

	products, err := c.Products(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, api.requests)
	require.Len(t, products, 3)
	assert.Equal(t, int64(3), products[2].ID)
}

func TestProducts_StopsOnShortPageWithoutTotals(t *testing.T) {
	api := &fakeAPI{noTotals: true, pages: [][]wc.Product{{{ID: 1}}}}
	c := New(api, "secret", quietLogger())

	products, err := c.Products(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{1}, api.requests)
	assert.Len(t, products, 1)
}

// endlessAPI returns full pages and never reports a page count.
type endlessAPI struct {
	ignorePage bool
	requests   int
}

func (f *endlessAPI) ListProducts(_ context.Context, page, perPage int, _ string) (*wc.ProductsPage, error) {
	f.requests++
	if f.ignorePage {
		page = 1
	}
	products := make([]wc.Product, perPage)
	for i := range products {
		products[i] = wc.Product{ID: int64((page-1)*perPage + i + 1), Status: "publish"}
	}
	return &wc.ProductsPage{Page: page, Products: products}, nil
}

func (f *endlessAPI) GetProduct(context.Context, int64) (*wc.Product, error) {
	return nil, wc.ErrNotFound
}

func TestProducts_StopsWhenPagesRepeat(t *testing.T) {
	api := &endlessAPI{ignorePage: true}

	products, err := New(api, "secret", quietLogger()).Products(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, api.requests)
	assert.Len(t, products, pageSize)
}

func TestProducts_StopsAtPageCap(t *testing.T) {
	api := &endlessAPI{}

	products, err := New(api, "secret", quietLogger()).Products(context.Background())
	require.NoError(t, err)

	assert.Equal(t, maxPages, api.requests)
	assert.Len(t, products, maxPages*pageSize)
}

func TestProducts_PropagatesErrors(t *testing.T) {
	api := &fakeAPI{err: errors.New("boom")}

	_, err := New(api, "secret", quietLogger()).Products(context.Background())

	assert.ErrorIs(t, err, api.err)
}

func TestProduct(t *testing.T) {
	api := &fakeAPI{pages: [][]wc.Product{{{ID: 7, Name: "Fern", Status: "draft"}}}}
	c := New(api, "secret", quietLogger())

	p, err := c.Product(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, models.ProductStatusDraft, p.Status)

	_, err = c.Product(context.Background(), 8)
	assert.ErrorIs(t, err, wc.ErrNotFound)
}

func TestHandleWebhook(t *testing.T) {
	c := New(&fakeAPI{}, "whsec", quietLogger())
	payload := []byte(`{"id": 12, "name": "Fern", "status": "publish", "regular_price": "3.50"}`)
	signature := base64.StdEncoding.EncodeToString(Sign(payload, "whsec"))

	ev, err := c.HandleWebhook(payload, signature)
	require.NoError(t, err)

	assert.Equal(t, int64(12), ev.ProductID)
	assert.Equal(t, models.ProductStatusPublish, ev.Status)
	assert.Equal(t, "Fern", ev.Product.Name)
}

func TestHandleWebhook_RejectsBadSignatures(t *testing.T) {
	payload := []byte(`{"id": 12}`)

	_, err := New(&fakeAPI{}, "whsec", quietLogger()).HandleWebhook(payload, "not-base64!")
	assert.ErrorIs(t, err, ErrInvalidSignature)

	wrong := base64.StdEncoding.EncodeToString(Sign(payload, "other"))
	_, err = New(&fakeAPI{}, "whsec", quietLogger()).HandleWebhook(payload, wrong)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = New(&fakeAPI{}, "", quietLogger()).HandleWebhook(payload, wrong)
	assert.ErrorIs(t, err, ErrNoWebhookSecret)
}

func TestHandleWebhook_RejectsMalformedPayload(t *testing.T) {
	c := New(&fakeAPI{}, "whsec", quietLogger())
	payload := []byte(`webhook_id=5`)
	signature := base64.StdEncoding.EncodeToString(Sign(payload, "whsec"))

	_, err := c.HandleWebhook(payload, signature)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse webhook payload")
}
