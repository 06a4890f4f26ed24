// Package pagination turns the page envelopes of the employee service into a
// single canonical shape.
package pagination

import (
	"encoding/json"
	"math"

	"github.com/UnknownOlympus/ems-console/internal/models"
	"github.com/tidwall/gjson"
)

// DefaultPageSize is used when neither the response nor the caller supplies a usable size.
const DefaultPageSize = 20

// Shape classifies a raw page response.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeArray
	ShapeEnvelope
)

func (s Shape) String() string {
	switch s {
	case ShapeArray:
		return "array"
	case ShapeEnvelope:
		return "envelope"
	default:
		return "unknown"
	}
}

// Payload is a classified response. Root is only meaningful for array and envelope shapes.
type Payload struct {
	Shape Shape
	Root  gjson.Result
}

// Classify decides whether raw is a bare array, an enveloped object or neither.
// Invalid JSON is classified as ShapeUnknown.
func Classify(raw []byte) Payload {
	if !gjson.ValidBytes(raw) {
		return Payload{Shape: ShapeUnknown}
	}

	root := gjson.ParseBytes(raw)
	switch {
	case root.IsArray():
		return Payload{Shape: ShapeArray, Root: root}
	case root.IsObject():
		return Payload{Shape: ShapeEnvelope, Root: root}
	default:
		return Payload{Shape: ShapeUnknown, Root: root}
	}
}

// Normalize maps raw onto a PageResult. It never fails: unusable metadata falls back
// to what the items imply, and items that are not employee objects are skipped and
// counted in Skipped.
func Normalize(raw []byte, fallbackPageSize int) models.PageResult {
	return Classify(raw).Normalize(fallbackPageSize)
}

// Normalize computes the canonical page from a classified payload.
func (p Payload) Normalize(fallbackPageSize int) models.PageResult {
	if fallbackPageSize <= 0 {
		fallbackPageSize = DefaultPageSize
	}

	raw := p.itemsRaw()
	items := decodeItems(raw)

	totalElements, ok := p.number("totalElements", "page.totalElements")
	if !ok {
		totalElements = float64(len(raw))
	}

	size := p.positive("size")
	if size == 0 {
		size = p.positive("page.size")
	}
	if size == 0 {
		size = float64(fallbackPageSize)
	}

	computed := max(1, clampInt(math.Ceil(totalElements/size)))

	apiTotal, _ := p.number("totalPages", "page.totalPages")

	return models.PageResult{
		Items:      items,
		TotalPages: max(computed, clampInt(apiTotal)),
		Skipped:    len(raw) - len(items),
	}
}

// clampInt converts f to an int, saturating at 0 and math.MaxInt. NaN maps to 0.
func clampInt(f float64) int {
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f > 0:
		return int(f)
	default:
		return 0
	}
}

func (p Payload) itemsRaw() []gjson.Result {
	switch p.Shape {
	case ShapeArray:
		return p.Root.Array()
	case ShapeEnvelope:
		content := p.Root.Get("content")
		if content.IsArray() {
			return content.Array()
		}
	case ShapeUnknown:
	}

	return nil
}

// number returns the first path that holds a JSON number in an envelope.
func (p Payload) number(paths ...string) (float64, bool) {
	if p.Shape != ShapeEnvelope {
		return 0, false
	}
	for _, path := range paths {
		if v := p.Root.Get(path); v.Type == gjson.Number {
			return v.Num, true
		}
	}
	return 0, false
}

// positive returns the number at path when it is greater than zero, and 0 otherwise.
func (p Payload) positive(path string) float64 {
	if v, ok := p.number(path); ok && v > 0 {
		return v
	}
	return 0
}

func decodeItems(raw []gjson.Result) []models.Employee {
	items := make([]models.Employee, 0, len(raw))
	for _, item := range raw {
		if !item.IsObject() {
			continue
		}
		var employee models.Employee
		if err := json.Unmarshal([]byte(item.Raw), &employee); err != nil {
			continue
		}
		items = append(items, employee)
	}
	return items
}
