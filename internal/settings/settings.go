// Package settings holds the indexer configuration snapshot and the
// options store it is read from.
package settings

import (
	"strings"
)

// ChangeMe is the placeholder stored for credentials nobody has entered yet.
const ChangeMe = "Change me"

// OptionPrefix namespaces every option row written by the indexer.
const OptionPrefix = "algolia_woo_indexer_"

const (
	OptionApplicationID        = "application_id"
	OptionAPIKey               = "admin_api_key"
	OptionIndexName            = "index_name"
	OptionAutoSendNewProducts  = "automatically_send_new_products"
	OptionCustomFields         = "custom_fields"
	OptionAttributesEnabled    = "attributes_enabled"
	OptionAttributesVisibility = "attributes_visibility"
	OptionAttributesVariation  = "attributes_variation"
	OptionAttributesList       = "attributes_list"
	OptionAttributesInterp     = "attributes_interp"
	optionFieldPrefix          = "field_"
)

// Field is a basic product field that can be switched on or off.
type Field string

const (
	FieldProductName      Field = "product_name"
	FieldPermalink        Field = "permalink"
	FieldTags             Field = "tags"
	FieldCategories       Field = "categories"
	FieldShortDescription Field = "short_description"
	FieldLongDescription  Field = "long_description"
	FieldExcerpt          Field = "excerpt"
	FieldProductImage     Field = "product_image"
	FieldRegularPrice     Field = "regular_price"
	FieldSalePrice        Field = "sale_price"
	FieldOnSale           Field = "on_sale"
	FieldStockQuantity    Field = "stock_quantity"
	FieldStockStatus      Field = "stock_status"
)

// BasicFields lists every basic field in document order.
var BasicFields = []Field{
	FieldProductName,
	FieldPermalink,
	FieldTags,
	FieldCategories,
	FieldShortDescription,
	FieldLongDescription,
	FieldExcerpt,
	FieldProductImage,
	FieldRegularPrice,
	FieldSalePrice,
	FieldOnSale,
	FieldStockQuantity,
	FieldStockStatus,
}

// IsBasicField reports whether name is one of BasicFields.
func IsBasicField(name string) bool {
	for _, f := range BasicFields {
		if string(f) == name {
			return true
		}
	}
	return false
}

// Visibility controls which attributes pass the visibility filter.
type Visibility string

const (
	VisibilityAll     Visibility = "all"
	VisibilityVisible Visibility = "visible"
)

// Variation controls which attributes pass the variation filter.
type Variation string

const (
	VariationAll  Variation = "all"
	VariationUsed Variation = "used"
)

func parseVisibility(s string) (Visibility, bool) {
	switch v := Visibility(strings.ToLower(strings.TrimSpace(s))); v {
	case VisibilityAll, VisibilityVisible:
		return v, true
	}
	return "", false
}

func parseVariation(s string) (Variation, bool) {
	switch v := Variation(strings.ToLower(strings.TrimSpace(s))); v {
	case VariationAll, VariationUsed:
		return v, true
	}
	return "", false
}

// Settings is a read-only snapshot of the indexer configuration.
type Settings struct {
	ApplicationID        string         `json:"application_id"`
	APIKey               string         `json:"api_key"`
	IndexName            string         `json:"index_name"`
	AutoSendNewProducts  bool           `json:"auto_send_new_products"`
	Fields               map[Field]bool `json:"fields"`
	CustomFields         []string       `json:"custom_fields"`
	AttributesEnabled    bool           `json:"attributes_enabled"`
	AttributesVisibility Visibility     `json:"attributes_visibility"`
	AttributesVariation  Variation      `json:"attributes_variation"`
	AttributesList       []int64        `json:"attributes_list"`
	AttributesInterp     []int64        `json:"attributes_interp"`
}

// Defaults returns the snapshot of a freshly activated install.
func Defaults() Settings {
	fields := make(map[Field]bool, len(BasicFields))
	for _, f := range BasicFields {
		fields[f] = true
	}
	return Settings{
		ApplicationID:        ChangeMe,
		APIKey:               ChangeMe,
		IndexName:            ChangeMe,
		Fields:               fields,
		CustomFields:         []string{},
		AttributesVisibility: VisibilityVisible,
		AttributesVariation:  VariationAll,
		AttributesList:       []int64{},
		AttributesInterp:     []int64{},
	}
}

// FieldEnabled reports whether f should be written to documents.
func (s Settings) FieldEnabled(f Field) bool {
	return s.Fields[f]
}

// Configured reports whether real credentials and an index name are set.
func (s Settings) Configured() bool {
	for _, v := range []string{s.ApplicationID, s.APIKey, s.IndexName} {
		if v == "" || v == ChangeMe {
			return false
		}
	}
	return true
}

// Masked returns a copy safe to show in the admin UI.
func (s Settings) Masked() Settings {
	out := s
	if s.APIKey != "" && s.APIKey != ChangeMe {
		keep := 4
		if len(s.APIKey) <= keep {
			keep = 0
		}
		out.APIKey = strings.Repeat("*", len(s.APIKey)-keep) + s.APIKey[len(s.APIKey)-keep:]
	}
	return out
}

func optionName(name string) string {
	return OptionPrefix + name
}

func fieldOptionName(f Field) string {
	return OptionPrefix + optionFieldPrefix + string(f)
}
