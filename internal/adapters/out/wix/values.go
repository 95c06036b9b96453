package wix

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// text coerces a Wix value into a string. Wix sends localized fields either
// as plain strings or as objects carrying one of original, translated, value
// or plainText. Results are NFC-normalized.
func text(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return norm.NFC.String(s)
	case '{':
		var obj struct {
			Original   json.RawMessage `json:"original"`
			Translated json.RawMessage `json:"translated"`
			Value      json.RawMessage `json:"value"`
			PlainText  json.RawMessage `json:"plainText"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return ""
		}
		for _, candidate := range []json.RawMessage{obj.Original, obj.Translated, obj.Value, obj.PlainText} {
			if s := text(candidate); s != "" {
				return s
			}
		}
		return ""
	case '[':
		return ""
	default:
		// numbers and booleans
		return string(raw)
	}
}

// firstText returns the first non-empty coerced value.
func firstText(values ...json.RawMessage) string {
	for _, v := range values {
		if s := strings.TrimSpace(text(v)); s != "" {
			return s
		}
	}
	return ""
}

// amount reads a money value given as a number, a numeric string or an
// object with an amount field. Zero and unparsable amounts report false.
func amount(raw json.RawMessage) (decimal.Decimal, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return decimal.Zero, false
	}

	if raw[0] == '{' {
		var obj struct {
			Amount json.RawMessage `json:"amount"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return decimal.Zero, false
		}
		return amount(obj.Amount)
	}

	d, err := decimal.NewFromString(text(raw))
	if err != nil || d.IsZero() {
		return decimal.Zero, false
	}
	return d, true
}

// integer reads a count given as a number or a numeric string.
func integer(raw json.RawMessage) (int, bool) {
	s := text(raw)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

type quantityDTO struct {
	Quantity json.RawMessage `json:"quantity"`
}

func stockOf(candidates ...*quantityDTO) *int {
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if n, ok := integer(c.Quantity); ok {
			return &n
		}
	}
	return nil
}

// choiceLabels lists the selected option values of a variant. Choices come
// either as an array of {value|name} entries or as an object keyed by option
// name; object order is preserved.
func choiceLabels(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	var labels []string
	switch raw[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil
		}
		for _, item := range items {
			if l := choiceLabel(item); l != "" {
				labels = append(labels, l)
			}
		}
	case '{':
		dec := json.NewDecoder(bytes.NewReader(raw))
		if _, err := dec.Token(); err != nil {
			return nil
		}
		for dec.More() {
			if _, err := dec.Token(); err != nil {
				return labels
			}
			var v json.RawMessage
			if err := dec.Decode(&v); err != nil {
				return labels
			}
			if l := choiceLabel(v); l != "" {
				labels = append(labels, l)
			}
		}
	}
	return labels
}

func choiceLabel(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '{' {
		var obj struct {
			Value json.RawMessage `json:"value"`
			Name  json.RawMessage `json:"name"`
		}
		if err := json.Unmarshal(raw, &obj); err == nil {
			if s := firstText(obj.Value, obj.Name); s != "" {
				return s
			}
		}
	}
	return strings.TrimSpace(text(raw))
}
