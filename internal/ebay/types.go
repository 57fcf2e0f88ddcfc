package ebay

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Сырые ответы Browse API. У апстрима любое вложенное поле может
// отсутствовать или приехать не той формы, поэтому листовые типы
// никогда не возвращают ошибку разбора, а деградируют в zero value.

// FlexFloat - число или числовая строка, всё остальное -> 0
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = FlexFloat(n)
			return nil
		}
	}
	*f = 0
	return nil
}

// RawString - строка или числовой литерал как есть (для отображаемых сумм)
type RawString string

func (r *RawString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = RawString(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err == nil {
		*r = RawString(num.String())
		return nil
	}
	*r = ""
	return nil
}

// FlexStrings - массив строк или одиночная строка
type FlexStrings []string

func (v *FlexStrings) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*v = arr
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = FlexStrings{s}
		return nil
	}
	*v = nil
	return nil
}

type Price struct {
	Value    FlexFloat `json:"value"`
	Currency string    `json:"currency"`
}

type Aspect struct {
	Name  string      `json:"name"`
	Value FlexStrings `json:"value"`
}

type ShippingCost struct {
	Value RawString `json:"value"`
}

type ShippingOption struct {
	ShippingCost *ShippingCost `json:"shippingCost"`
}

type Image struct {
	ImageURL string `json:"imageUrl"`
}

type ItemSummary struct {
	ItemID           string           `json:"itemId"`
	Title            string           `json:"title"`
	Price            *Price           `json:"price"`
	Condition        string           `json:"condition"`
	Brand            string           `json:"brand"`
	LocalizedAspects []Aspect         `json:"localizedAspects"`
	ShippingOptions  []ShippingOption `json:"shippingOptions"`
	Image            *Image           `json:"image"`
	ThumbnailImages  []Image          `json:"thumbnailImages"`
	ItemWebURL       string           `json:"itemWebUrl"`
	ItemCreationDate string           `json:"itemCreationDate"`
}

type browseResponse struct {
	ItemSummaries []ItemSummary `json:"itemSummaries"`
}

// decodeLenient разбирает JSON, закрывая глаза на поля неожиданной формы:
// они остаются zero value вместо ошибки на весь ответ.
func decodeLenient(data []byte, v any) error {
	err := json.Unmarshal(data, v)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return nil
	}
	return err
}
