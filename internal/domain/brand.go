package domain

import "strings"

// blockedBrands - "бренды", которые брендом не являются. Такие лоты отсеиваем.
var blockedBrands = map[string]struct{}{
	"unbranded": {},
	"unknown":   {},
	"n/a":       {},
	"na":        {},
	"none":      {},
	"no brand":  {},
}

// fastFashionBrands - масс-маркет. Из выдачи не выкидываем, но всегда
// опускаем в хвост сортировки.
var fastFashionBrands = map[string]struct{}{
	"shein":             {},
	"romwe":             {},
	"zaful":             {},
	"fashion nova":      {},
	"boohoo":            {},
	"prettylittlething": {},
	"plt":               {},
	"forever 21":        {},
	"hm":                {},
	"h&m":               {},
	"zara":              {},
	"bershka":           {},
	"pull bear":         {},
	"stradivarius":      {},
	"primark":           {},
	"new look":          {},
	"missguided":        {},
	"cotton on":         {},
	"temu":              {},
	"asos":              {},
	"cider":             {},
}

var brandSeparators = strings.NewReplacer(".", "", "-", "", "_", "", "/", "")

// NormalizeBrand приводит бренд к виду для сравнения со списками:
// lowercase, без разделителей, со схлопнутыми пробелами.
// Отображаемое значение остается в исходном регистре.
func NormalizeBrand(brand string) string {
	b := strings.ToLower(strings.TrimSpace(brand))
	b = brandSeparators.Replace(b)
	return strings.Join(strings.Fields(b), " ")
}

// IsAllowedBrand: пустой бренд не проходит, "Unbranded" и варианты - тоже
func IsAllowedBrand(brand string) bool {
	if strings.TrimSpace(brand) == "" {
		return false
	}
	_, blocked := blockedBrands[NormalizeBrand(brand)]
	return !blocked
}

func IsFastFashionBrand(brand string) bool {
	if strings.TrimSpace(brand) == "" {
		return false
	}
	_, ff := fastFashionBrands[NormalizeBrand(brand)]
	return ff
}
