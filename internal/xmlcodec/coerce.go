package xmlcodec

import (
	"math"
	"strings"

	"github.com/spf13/cast"
	"github.com/wolfeidau/orgctl/internal/models"
	"github.com/wolfeidau/orgctl/internal/util"
)

// ToArray normalizes a node that may be absent, null, a single element or a
// list of elements into a slice.
func ToArray(v Value) []Value {
	switch v.kind {
	case Absent, Null:
		return nil
	case List:
		return v.items
	default:
		return []Value{v}
	}
}

// ToNumber returns the numeric reading of v, or fallback when v is absent,
// null, not numeric or not finite. Blank text reads as zero.
func ToNumber(v Value, fallback float64) float64 {
	var n float64
	switch v.kind {
	case Number:
		n = v.num
	case Text:
		s := strings.TrimSpace(v.text)
		if s == "" {
			return 0
		}
		f, err := cast.ToFloat64E(s)
		if err != nil {
			return fallback
		}
		n = f
	default:
		return fallback
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return fallback
	}
	return n
}

// ToInt is ToNumber truncated to an integer.
func ToInt(v Value, fallback int64) int64 {
	f := ToNumber(v, math.NaN())
	if math.IsNaN(f) {
		return fallback
	}
	return util.AsInt64(f)
}

// ToString returns the text of a leaf node and "" for anything else.
func ToString(v Value) string {
	switch v.kind {
	case Text:
		return v.text
	case Number:
		return cast.ToString(v.num)
	default:
		return ""
	}
}

// ToOrganizationType reads an organization type, falling back to the default
// type when the node is empty.
func ToOrganizationType(v Value) models.OrganizationType {
	s := ToString(v)
	if s == "" {
		return models.DefaultOrganizationType
	}
	return models.OrganizationType(s)
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape escapes the five reserved XML characters for use in element text.
func Escape(s string) string {
	return escaper.Replace(s)
}
