package query

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wolfeidau/orgctl/internal/models"
	"github.com/wolfeidau/orgctl/internal/xmlcodec"
)

var (
	ErrUnknownOperator  = errors.New("unknown filter operator")
	ErrUnknownSortField = errors.New("unknown sort field")
	ErrUnknownType      = errors.New("unknown organization type")
)

// NumberOp compares numeric fields.
type NumberOp string

const (
	NumberEq NumberOp = "eq"
	Gt       NumberOp = "gt"
	Ge       NumberOp = "ge"
	Lt       NumberOp = "lt"
	Le       NumberOp = "le"
)

func (o NumberOp) Valid() bool {
	switch o {
	case NumberEq, Gt, Ge, Lt, Le:
		return true
	}
	return false
}

// StringOp matches text fields.
type StringOp string

const (
	StringEq   StringOp = "eq"
	Contains   StringOp = "contains"
	StartsWith StringOp = "startsWith"
	EndsWith   StringOp = "endsWith"
)

func (o StringOp) Valid() bool {
	switch o {
	case StringEq, Contains, StartsWith, EndsWith:
		return true
	}
	return false
}

// DateOp compares calendar dates.
type DateOp string

const (
	DateEq DateOp = "eq"
	Before DateOp = "before"
	After  DateOp = "after"
)

func (o DateOp) Valid() bool {
	switch o {
	case DateEq, Before, After:
		return true
	}
	return false
}

// Operator is implemented by the three operator families.
type Operator interface {
	~string
	Valid() bool
}

// Filter is one filter slot. It is set only when both the operator and a
// non-blank value are present; "0" is a value like any other.
type Filter[O Operator] struct {
	Op    O
	Value string
}

func (f Filter[O]) IsSet() bool {
	return f.Op != "" && strings.TrimSpace(f.Value) != ""
}

// Int builds a numeric filter on an integer value.
func Int(op NumberOp, v int64) Filter[NumberOp] {
	return Filter[NumberOp]{Op: op, Value: xmlcodec.FormatInt(v)}
}

// Float builds a numeric filter on a real value.
func Float(op NumberOp, v float64) Filter[NumberOp] {
	return Filter[NumberOp]{Op: op, Value: xmlcodec.FormatFloat(v)}
}

// Text builds a string filter.
func Text(op StringOp, v string) Filter[StringOp] {
	return Filter[StringOp]{Op: op, Value: v}
}

// Date builds a date filter; only the calendar date of t is used.
func Date(op DateOp, t time.Time) Filter[DateOp] {
	return Filter[DateOp]{Op: op, Value: t.Format(models.DateLayout)}
}

// SortField names a sortable organization attribute.
type SortField string

const (
	SortID              SortField = "id"
	SortName            SortField = "name"
	SortFullName        SortField = "fullName"
	SortCreationDate    SortField = "creationDate"
	SortAnnualTurnover  SortField = "annualTurnover"
	SortType            SortField = "type"
	SortCoordinates     SortField = "coordinates"
	SortOfficialAddress SortField = "officialAddress"
)

var sortFields = []SortField{
	SortID, SortName, SortFullName, SortCreationDate,
	SortAnnualTurnover, SortType, SortCoordinates, SortOfficialAddress,
}

func (f SortField) Valid() bool {
	for _, known := range sortFields {
		if f == known {
			return true
		}
	}
	return false
}

// Sort orders results by one field.
type Sort struct {
	Field SortField
	Desc  bool
}

// Token encodes the directive as the service expects it: the field name,
// prefixed with "-" when descending.
func (s Sort) Token() string {
	if s.Desc {
		return "-" + string(s.Field)
	}
	return string(s.Field)
}

// ParseSort reads a token produced by Token.
func ParseSort(token string) (Sort, error) {
	token = strings.TrimSpace(token)
	s := Sort{}
	if rest, ok := strings.CutPrefix(token, "-"); ok {
		s.Desc = true
		token = rest
	} else {
		token = strings.TrimPrefix(token, "+")
	}
	s.Field = SortField(token)
	if !s.Field.Valid() {
		return Sort{}, fmt.Errorf("%w: %q", ErrUnknownSortField, token)
	}
	return s, nil
}

// Query is a sparse set of organization filters plus sort directives. Unset
// slots are left out of the request.
type Query struct {
	Sort []Sort

	ID             Filter[NumberOp]
	Name           Filter[StringOp]
	CoordX         Filter[NumberOp]
	CoordY         Filter[NumberOp]
	CreationDate   Filter[DateOp]
	AnnualTurnover Filter[NumberOp]
	FullName       Filter[StringOp]
	// Types matches one type (eq) or any of several (in).
	Types []models.OrganizationType

	Street   Filter[StringOp]
	TownName Filter[StringOp]
	TownX    Filter[NumberOp]
	TownY    Filter[NumberOp]
}

// SortOnly returns a query that filters nothing and orders by sorts.
func SortOnly(sorts ...Sort) Query {
	return Query{Sort: sorts}
}

// IsEmpty reports whether no filter slot is set. Sort directives are not
// considered.
func (q Query) IsEmpty() bool {
	return !q.ID.IsSet() && !q.Name.IsSet() &&
		!q.hasCoordinates() && !q.CreationDate.IsSet() &&
		!q.AnnualTurnover.IsSet() && !q.FullName.IsSet() &&
		len(q.Types) == 0 && !q.hasAddress()
}

func (q Query) hasCoordinates() bool {
	return q.CoordX.IsSet() || q.CoordY.IsSet()
}

func (q Query) hasTown() bool {
	return q.TownName.IsSet() || q.TownX.IsSet() || q.TownY.IsSet()
}

func (q Query) hasAddress() bool {
	return q.Street.IsSet() || q.hasTown()
}
