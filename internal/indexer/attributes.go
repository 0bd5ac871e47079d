package indexer

import (
	"math"
	"strings"

	"algowoo/internal/models"
	"algowoo/internal/settings"

	"github.com/shopspring/decimal"
)

// maxInterpolated bounds the expansion of a numeric range so a typo like
// "1" and "1000000" cannot blow up a document.
const maxInterpolated = 10000

var (
	minInt64 = decimal.NewFromInt(math.MinInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// attributes filters the product attributes by visibility, variation use and
// whitelist, and expands interpolated numeric ranges. Attributes sharing a
// name are merged into one option list.
func (m *Mapper) attributes(attrs []models.ProductAttribute) map[string]interface{} {
	options := make(map[string][]string)
	interp := make(map[string]bool)
	for _, a := range attrs {
		if !m.keepAttribute(a) {
			continue
		}
		name := strings.TrimSpace(a.Name)
		if name == "" {
			continue
		}
		options[name] = appendUnique(nonNil(options[name]), a.Options)
		if m.interp[a.ID] {
			interp[name] = true
		}
	}

	out := make(map[string]interface{}, len(options))
	for name, opts := range options {
		if interp[name] {
			if values, ok := interpolate(opts); ok {
				out[name] = values
				continue
			}
		}
		out[name] = opts
	}
	return out
}

func appendUnique(dst, values []string) []string {
	for _, v := range values {
		dup := false
		for _, d := range dst {
			if d == v {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, v)
		}
	}
	return dst
}

func (m *Mapper) keepAttribute(a models.ProductAttribute) bool {
	if m.settings.AttributesVisibility == settings.VisibilityVisible && !a.Visible {
		return false
	}
	if m.settings.AttributesVariation == settings.VariationUsed && !a.Variation {
		return false
	}
	if m.allowed != nil && !m.allowed[a.ID] {
		return false
	}
	return true
}

// interpolate expands numeric options into every integer between the
// lowest and highest value, inclusive. It reports false when an option is
// not numeric.
func interpolate(options []string) ([]int64, bool) {
	if len(options) == 0 {
		return nil, false
	}

	var lo, hi decimal.Decimal
	for i, o := range options {
		d, err := decimal.NewFromString(strings.TrimSpace(o))
		if err != nil {
			return nil, false
		}
		if i == 0 || d.LessThan(lo) {
			lo = d
		}
		if i == 0 || d.GreaterThan(hi) {
			hi = d
		}
	}

	lo, hi = lo.Floor(), hi.Ceil()
	if lo.LessThan(minInt64) || hi.GreaterThan(maxInt64) {
		return nil, false
	}
	if hi.Sub(lo).GreaterThanOrEqual(decimal.NewFromInt(maxInterpolated)) {
		return nil, false
	}

	from := lo.IntPart()
	n := hi.Sub(lo).IntPart() + 1
	values := make([]int64, 0, n)
	for i := int64(0); i < n; i++ {
		values = append(values, from+i)
	}
	return values, true
}
