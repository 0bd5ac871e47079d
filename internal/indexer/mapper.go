package indexer

import (
	"strconv"

	"algowoo/internal/models"
	"algowoo/internal/settings"

	"github.com/shopspring/decimal"
)

// Mapper turns products into documents according to one settings snapshot.
type Mapper struct {
	settings settings.Settings
	interp   map[int64]bool
	allowed  map[int64]bool
}

func NewMapper(s settings.Settings) *Mapper {
	m := &Mapper{
		settings: s,
		interp:   make(map[int64]bool, len(s.AttributesInterp)),
	}
	for _, id := range s.AttributesInterp {
		m.interp[id] = true
	}
	if len(s.AttributesList) > 0 {
		m.allowed = make(map[int64]bool, len(s.AttributesList))
		for _, id := range s.AttributesList {
			m.allowed[id] = true
		}
	}
	return m
}

// Map builds the document for p. A basic field key is present iff the field
// is enabled; configured custom fields are always present, nil when the
// product has no such meta.
func (m *Mapper) Map(p *models.Product) Document {
	doc := Document{
		ObjectIDKey: strconv.FormatInt(p.ID, 10),
	}

	for _, f := range settings.BasicFields {
		if !m.settings.FieldEnabled(f) {
			continue
		}
		doc[string(f)] = fieldValue(p, f)
	}

	for _, name := range m.settings.CustomFields {
		if reservedKey(name) {
			continue
		}
		doc[name] = p.Meta[name]
	}

	if m.settings.AttributesEnabled {
		doc[AttributesKey] = m.attributes(p.Attributes)
	}

	return doc
}

// reservedKey reports whether a custom field would shadow a key the mapper
// owns.
func reservedKey(name string) bool {
	return name == ObjectIDKey || name == AttributesKey || settings.IsBasicField(name)
}

func fieldValue(p *models.Product, f settings.Field) interface{} {
	switch f {
	case settings.FieldProductName:
		return p.Name
	case settings.FieldPermalink:
		return p.Permalink
	case settings.FieldTags:
		return nonNil(p.Tags)
	case settings.FieldCategories:
		return nonNil(p.Categories)
	case settings.FieldShortDescription:
		return p.ShortDescription
	case settings.FieldLongDescription:
		return p.Description
	case settings.FieldExcerpt:
		return p.Excerpt
	case settings.FieldProductImage:
		return p.PrimaryImage()
	case settings.FieldRegularPrice:
		return price(p.RegularPrice)
	case settings.FieldSalePrice:
		return price(p.SalePrice)
	case settings.FieldOnSale:
		return p.OnSale
	case settings.FieldStockQuantity:
		if p.StockQuantity == nil {
			return nil
		}
		return *p.StockQuantity
	case settings.FieldStockStatus:
		return p.StockStatus
	}
	return nil
}

func price(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	f, _ := d.Float64()
	return f
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
