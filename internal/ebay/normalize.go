package ebay

import (
	"math"
	"strings"

	"github.com/kitbuilder587/retrofind/internal/domain"
)

// Normalize превращает сырой лот апстрима в канонический Listing.
// Любое отсутствующее или кривое поле деградирует в дефолт, ошибок нет.
// Confidence здесь не считается: скоринг идет после энричмента брендов.
func Normalize(item ItemSummary) domain.Listing {
	price := float64(0)
	currency := "USD"
	if item.Price != nil {
		if v := float64(item.Price.Value); !math.IsInf(v, 0) && !math.IsNaN(v) && v >= 0 {
			price = v
		}
		if item.Price.Currency != "" {
			currency = item.Price.Currency
		}
	}

	condition := item.Condition
	if condition == "" {
		condition = "Unknown"
	}

	shipping := ""
	if len(item.ShippingOptions) > 0 && item.ShippingOptions[0].ShippingCost != nil {
		if cost := string(item.ShippingOptions[0].ShippingCost.Value); cost != "" {
			shipping = "$" + cost + " shipping"
		}
	}

	image := ""
	if item.Image != nil && item.Image.ImageURL != "" {
		image = item.Image.ImageURL
	} else if len(item.ThumbnailImages) > 0 {
		image = item.ThumbnailImages[0].ImageURL
	}

	return domain.Listing{
		ID:        item.ItemID,
		Title:     item.Title,
		Price:     price,
		Currency:  currency,
		Condition: condition,
		Brand:     BrandOf(item),
		Size:      firstAspectValue(item, "size", "size type"),
		Color:     firstAspectValue(item, "color"),
		Material:  firstAspectValue(item, "material"),
		CreatedAt: item.ItemCreationDate,
		Shipping:  shipping,
		Image:     image,
		URL:       item.ItemWebURL,
	}
}

// BrandOf: сначала прямое поле brand, потом аспект "Brand" -
// первое непустое значение. Используется и нормализатором, и энричером.
func BrandOf(item ItemSummary) string {
	if b := strings.TrimSpace(item.Brand); b != "" {
		return b
	}
	return firstAspectValue(item, "brand")
}

func firstAspectValue(item ItemSummary, names ...string) string {
	for _, aspect := range item.LocalizedAspects {
		name := strings.ToLower(aspect.Name)
		for _, want := range names {
			if name != want {
				continue
			}
			for _, v := range aspect.Value {
				if s := strings.TrimSpace(v); s != "" {
					return s
				}
			}
		}
	}
	return ""
}
