package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field names of a catalog product record.
const (
	FieldCategory          = "categoryLevel1"
	FieldCustomCategory    = "customCategoryTitle"
	FieldNameBold          = "productNameBold"
	FieldNameThin          = "productNameThin"
	FieldProductNumber     = "productNumber"
	FieldVolume            = "volume"
	FieldAlcoholPercentage = "alcoholPercentage"
	FieldPrice             = "price"
	FieldAssortment        = "assortment"
	FieldGrapes            = "grapes"

	// Fields added by enrichment.
	FieldProductURL = "productUrl"
	FieldAPK        = "apk"
)

// Product is one catalog item. Values are kept exactly as decoded from the
// catalog tool's JSON, with numbers held as json.Number so they are written
// back unchanged.
type Product map[string]any

// Text returns the value at key rendered as text.
// The boolean is false when the key is missing or null.
func (p Product) Text(key string) (string, bool) {
	val, ok := p[key]
	if !ok || val == nil {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return fmt.Sprint(v), true
	}
}

// String returns the value at key rendered as text, or "" when absent.
func (p Product) String(key string) string {
	s, _ := p.Text(key)
	return s
}

// Float interprets the value at key as a number. Numeric strings are
// accepted, surrounding whitespace included. Missing values, nulls,
// booleans and anything unparseable report false.
func (p Product) Float(key string) (float64, bool) {
	switch v := p[key].(type) {
	case json.Number:
		return parseFloat(v.String())
	case string:
		return parseFloat(v)
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Truthy reports whether the value at key is present and not a zero
// value: null, "", 0, false and empty collections are all falsy.
func (p Product) Truthy(key string) bool {
	switch v := p[key].(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

// DisplayName joins the bold and thin name parts with a single space and
// trims the result.
func (p Product) DisplayName() string {
	return strings.TrimSpace(p.String(FieldNameBold) + " " + p.String(FieldNameThin))
}

// ListName is the "thin bold" ordering used for browsing and name sorting.
func (p Product) ListName() string {
	return strings.TrimSpace(p.String(FieldNameThin) + " " + p.String(FieldNameBold))
}

// CategoryTitle prefers the custom category title over the top-level
// category.
func (p Product) CategoryTitle() string {
	if title := p.String(FieldCustomCategory); title != "" {
		return title
	}
	return p.String(FieldCategory)
}

// Grapes returns the grape list as strings. Non-string entries are skipped.
func (p Product) Grapes() []string {
	list, ok := p[FieldGrapes].([]any)
	if !ok {
		return nil
	}
	grapes := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			grapes = append(grapes, s)
		}
	}
	return grapes
}

// APK returns the enriched metric, false when it is null or not yet set.
func (p Product) APK() (float64, bool) {
	return p.Float(FieldAPK)
}

// ProductURL returns the enriched product page URL, if any.
func (p Product) ProductURL() string {
	return p.String(FieldProductURL)
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
