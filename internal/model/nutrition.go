package model

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

const (
	placeholderField = "Error"
	placeholderValue = "Not Found"
)

// ErrNotJSONObject is returned when a nutrition body is not a JSON object.
var ErrNotJSONObject = errors.New("nutrition body is not a JSON object")

// NutritionField is one attribute of a nutrition record. Value holds raw JSON.
type NutritionField struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// Text renders the value for display: strings unquoted, everything else as JSON.
func (f NutritionField) Text() string {
	return gjson.ParseBytes(f.Value).String()
}

// NutritionRecord is the opaque record returned by the nutrition API. Field
// order follows the response body.
type NutritionRecord struct {
	Fields []NutritionField
}

// NotFoundRecord is the single-field placeholder shown when a lookup fails.
func NotFoundRecord() NutritionRecord {
	return NutritionRecord{Fields: []NutritionField{{
		Name:  placeholderField,
		Value: json.RawMessage(`"` + placeholderValue + `"`),
	}}}
}

// ParseNutritionRecord reads a JSON object body, keeping key order.
func ParseNutritionRecord(body []byte) (NutritionRecord, error) {
	if !gjson.ValidBytes(body) {
		return NutritionRecord{}, ErrNotJSONObject
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return NutritionRecord{}, ErrNotJSONObject
	}

	rec := NutritionRecord{Fields: []NutritionField{}}
	parsed.ForEach(func(key, value gjson.Result) bool {
		rec.Fields = append(rec.Fields, NutritionField{
			Name:  key.String(),
			Value: json.RawMessage(value.Raw),
		})
		return true
	})
	return rec, nil
}

// IsPlaceholder reports whether r is the "Not Found" placeholder.
func (r NutritionRecord) IsPlaceholder() bool {
	return len(r.Fields) == 1 &&
		r.Fields[0].Name == placeholderField &&
		r.Fields[0].Text() == placeholderValue
}

// Get returns the value of a top-level field.
func (r NutritionRecord) Get(name string) (gjson.Result, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return gjson.ParseBytes(f.Value), true
		}
	}
	return gjson.Result{}, false
}

// Names lists the field names in order.
func (r NutritionRecord) Names() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}
	return names
}

// MarshalJSON writes the record as a JSON object in field order.
func (r NutritionRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if len(f.Value) == 0 {
			buf.WriteString("null")
		} else {
			buf.Write(f.Value)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *NutritionRecord) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = NutritionRecord{}
		return nil
	}
	parsed, err := ParseNutritionRecord(data)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
