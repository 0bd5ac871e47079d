package settings

import (
	"context"
	"fmt"
	"strings"
)

// Form is the settings form as submitted by the admin UI. Checkboxes arrive
// as booleans, multi-selects as raw id strings.
type Form struct {
	ApplicationID        string   `json:"application_id" form:"application_id"`
	APIKey               string   `json:"api_key" form:"api_key"`
	IndexName            string   `json:"index_name" form:"index_name"`
	AutoSendNewProducts  bool     `json:"auto_send_new_products" form:"auto_send_new_products"`
	Fields               []string `json:"fields" form:"fields"`
	CustomFields         string   `json:"custom_fields" form:"custom_fields"`
	AttributesEnabled    bool     `json:"attributes_enabled" form:"attributes_enabled"`
	AttributesVisibility string   `json:"attributes_visibility" form:"attributes_visibility"`
	AttributesVariation  string   `json:"attributes_variation" form:"attributes_variation"`
	AttributesList       []string `json:"attributes_list" form:"attributes_list"`
	AttributesInterp     []string `json:"attributes_interp" form:"attributes_interp"`
}

// Provider builds Settings snapshots out of an OptionStore.
type Provider struct {
	store OptionStore
}

func NewProvider(store OptionStore) *Provider {
	return &Provider{store: store}
}

// Load reads the current snapshot. Missing or unreadable options fall back
// to their defaults.
func (p *Provider) Load(ctx context.Context) (Settings, error) {
	opts, err := p.store.All(ctx)
	if err != nil {
		return Settings{}, err
	}
	return fromOptions(opts), nil
}

func fromOptions(opts map[string]string) Settings {
	s := Defaults()

	text := func(name string) (string, bool) {
		v, ok := opts[optionName(name)]
		if !ok {
			return "", false
		}
		v = strings.TrimSpace(v)
		return v, v != ""
	}

	if v, ok := text(OptionApplicationID); ok {
		s.ApplicationID = v
	}
	if v, ok := text(OptionAPIKey); ok {
		s.APIKey = v
	}
	if v, ok := text(OptionIndexName); ok {
		s.IndexName = v
	}
	if v, ok := text(OptionAutoSendNewProducts); ok {
		s.AutoSendNewProducts = parseFlag(v)
	}
	if v, ok := text(OptionCustomFields); ok {
		s.CustomFields = SplitCustomFields(v)
	}
	if v, ok := text(OptionAttributesEnabled); ok {
		s.AttributesEnabled = parseFlag(v)
	}
	if v, ok := text(OptionAttributesVisibility); ok {
		if vis, valid := parseVisibility(v); valid {
			s.AttributesVisibility = vis
		}
	}
	if v, ok := text(OptionAttributesVariation); ok {
		if vr, valid := parseVariation(v); valid {
			s.AttributesVariation = vr
		}
	}
	if v, ok := text(OptionAttributesList); ok {
		s.AttributesList = ParseIDList(v)
	}
	if v, ok := text(OptionAttributesInterp); ok {
		s.AttributesInterp = ParseIDList(v)
	}
	for _, f := range BasicFields {
		if v, ok := opts[fieldOptionName(f)]; ok && strings.TrimSpace(v) != "" {
			s.Fields[f] = parseFlag(v)
		}
	}
	return s
}

// Save sanitizes the submitted form and persists it. Blank credentials and
// index name keep whatever is stored; unknown attribute states keep the
// current value.
func (p *Provider) Save(ctx context.Context, form Form) (Settings, error) {
	updates := Sanitize(form)

	for name, value := range updates {
		if err := p.store.Set(ctx, name, value); err != nil {
			return Settings{}, err
		}
	}
	return p.Load(ctx)
}

// Sanitize turns a raw form into the option rows it would write.
func Sanitize(form Form) map[string]string {
	updates := make(map[string]string)

	if v := SanitizeText(form.ApplicationID); v != "" {
		updates[optionName(OptionApplicationID)] = v
	}
	if v := SanitizeText(form.APIKey); v != "" {
		updates[optionName(OptionAPIKey)] = v
	}
	if v := SanitizeText(form.IndexName); v != "" {
		updates[optionName(OptionIndexName)] = v
	}

	updates[optionName(OptionAutoSendNewProducts)] = formatFlag(form.AutoSendNewProducts)
	updates[optionName(OptionAttributesEnabled)] = formatFlag(form.AttributesEnabled)
	updates[optionName(OptionCustomFields)] = strings.Join(SplitCustomFields(SanitizeTextarea(form.CustomFields)), ",")

	if vis, ok := parseVisibility(SanitizeText(form.AttributesVisibility)); ok {
		updates[optionName(OptionAttributesVisibility)] = string(vis)
	}
	if vr, ok := parseVariation(SanitizeText(form.AttributesVariation)); ok {
		updates[optionName(OptionAttributesVariation)] = string(vr)
	}
	updates[optionName(OptionAttributesList)] = joinIDs(sanitizeIDs(form.AttributesList))
	updates[optionName(OptionAttributesInterp)] = joinIDs(sanitizeIDs(form.AttributesInterp))

	checked := make(map[string]bool, len(form.Fields))
	for _, f := range form.Fields {
		checked[strings.TrimSpace(f)] = true
	}
	for _, f := range BasicFields {
		updates[fieldOptionName(f)] = formatFlag(checked[string(f)])
	}

	return updates
}

// Activate seeds default options without touching values that are already
// set. Basic field flags that are missing, blank or "0" are switched on.
func (p *Provider) Activate(ctx context.Context) error {
	d := Defaults()
	seed := []struct{ name, value string }{
		{optionName(OptionAutoSendNewProducts), "0"},
		{optionName(OptionApplicationID), ChangeMe},
		{optionName(OptionAPIKey), ChangeMe},
		{optionName(OptionIndexName), ChangeMe},
		{optionName(OptionCustomFields), ""},
		{optionName(OptionAttributesEnabled), "0"},
		{optionName(OptionAttributesVisibility), string(d.AttributesVisibility)},
		{optionName(OptionAttributesVariation), string(d.AttributesVariation)},
		{optionName(OptionAttributesList), ""},
		{optionName(OptionAttributesInterp), ""},
	}
	for _, o := range seed {
		if _, err := p.store.Add(ctx, o.name, o.value); err != nil {
			return fmt.Errorf("failed to seed defaults: %w", err)
		}
	}

	for _, f := range BasicFields {
		name := fieldOptionName(f)
		v, ok, err := p.store.Get(ctx, name)
		if err != nil {
			return err
		}
		if v = strings.TrimSpace(v); !ok || v == "" || v == "0" {
			if err := p.store.Set(ctx, name, "1"); err != nil {
				return err
			}
		}
	}
	return nil
}
