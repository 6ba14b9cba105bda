package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/databolaget/databolaget/internal/core/domain"
)

// productURLBase is the retailer's product page prefix.
const productURLBase = "https://www.systembolaget.se/produkt/"

var slugSeparator = regexp.MustCompile(`[^a-z0-9]+`)

// asciiFold decomposes s (NFKD), drops everything outside ASCII and
// lower-cases the result. "Öl" becomes "ol"; characters with no ASCII base
// form disappear.
func asciiFold(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	folded, _, err := transform.String(t, s)
	if err != nil {
		return ""
	}
	return strings.ToLower(folded)
}

// slugify folds s to lower-case ASCII and hyphenates runs of anything that
// is not a letter or digit.
func slugify(s string) string {
	return strings.Trim(slugSeparator.ReplaceAllString(asciiFold(s), "-"), "-")
}

// BuildProductURL derives the product page URL from the category, name and
// product number. It reports false when the category or product number is
// missing.
//
// The category is folded but not hyphenated. An empty name slug still
// yields ".../{category}/-{number}/".
func BuildProductURL(p domain.Product) (string, bool) {
	category := p.String(domain.FieldCategory)
	if category == "" {
		return "", false
	}
	category = asciiFold(category)

	name := slugify(p.DisplayName())

	if !p.Truthy(domain.FieldProductNumber) {
		return "", false
	}
	number := p.String(domain.FieldProductNumber)

	return fmt.Sprintf("%s%s/%s-%s/", productURLBase, category, name, number), true
}

// EthanolPerSEK computes APK: millilitres of ethanol per SEK.
//
//	volume * (alcoholPercentage / 100) / price
//
// Missing or non-numeric inputs, a zero price and non-finite results all
// report false.
func EthanolPerSEK(p domain.Product) (float64, bool) {
	volume, ok := p.Float(domain.FieldVolume)
	if !ok {
		return 0, false
	}
	abv, ok := p.Float(domain.FieldAlcoholPercentage)
	if !ok {
		return 0, false
	}
	price, ok := p.Float(domain.FieldPrice)
	if !ok || price == 0 {
		return 0, false
	}

	apk := volume * (abv / 100) / price
	if !domain.IsFinite(apk) {
		return 0, false
	}
	return apk, true
}

// Enrich adds productUrl (when derivable) and apk (number or null) to p.
// No other field is touched.
func Enrich(p domain.Product) (hasURL, hasAPK bool) {
	if url, ok := BuildProductURL(p); ok {
		p[domain.FieldProductURL] = url
		hasURL = true
	}

	if apk, ok := EthanolPerSEK(p); ok {
		p[domain.FieldAPK] = apk
		hasAPK = true
	} else {
		p[domain.FieldAPK] = nil
	}
	return hasURL, hasAPK
}
