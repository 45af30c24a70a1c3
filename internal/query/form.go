package query

import (
	"strings"
	"time"

	"github.com/wolfeidau/orgctl/internal/models"
	"github.com/wolfeidau/orgctl/internal/validation"
)

// InputDateLayout is the day-first layout accepted for date filters in
// addition to DateLayout.
const InputDateLayout = "02.01.2006"

// Row is one raw filter row: an operator and a value as entered.
type Row struct {
	Op    string
	Value string
}

// ParseRow splits "op:value". Text without a colon is taken as a value with
// no operator.
func ParseRow(s string) Row {
	op, value, ok := strings.Cut(s, ":")
	if !ok {
		return Row{Value: s}
	}
	return Row{Op: op, Value: value}
}

func (r Row) empty() bool {
	return isBlank(r.Op) && isBlank(r.Value)
}

// Form is the raw state of the search form. Rows left empty are ignored.
type Form struct {
	ID             Row
	Name           Row
	CoordX         Row
	CoordY         Row
	CreationDate   Row
	AnnualTurnover Row
	FullName       Row
	Types          []string
	Street         Row
	TownName       Row
	TownX          Row
	TownY          Row
	Sort           []string
}

// Query validates every row and builds the query. Problems are reported per
// form field; a row with only an operator or only a value is an error.
func (f Form) Query() (Query, error) {
	fe := validation.FieldErrors{}
	q := Query{}

	q.ID = numberRow(fe, "id", f.ID, false)
	q.Name = stringRow(fe, "name", f.Name)
	q.CoordX = numberRow(fe, "coordX", f.CoordX, false)
	q.CoordY = numberRow(fe, "coordY", f.CoordY, false)
	q.CreationDate = dateRow(fe, "creationDate", f.CreationDate)
	q.AnnualTurnover = numberRow(fe, "annualTurnover", f.AnnualTurnover, true)
	q.FullName = stringRow(fe, "fullName", f.FullName)

	for _, raw := range f.Types {
		if isBlank(raw) {
			continue
		}
		t, ok := models.ParseOrganizationType(raw)
		if !ok {
			fe.Add("type", "Invalid type")
			continue
		}
		q.Types = append(q.Types, t)
	}

	q.Street = stringRow(fe, "addressStreet", f.Street)
	q.TownName = stringRow(fe, "addressTownName", f.TownName)
	q.TownX = numberRow(fe, "addressTownX", f.TownX, true)
	q.TownY = numberRow(fe, "addressTownY", f.TownY, false)

	for _, token := range f.Sort {
		if isBlank(token) {
			continue
		}
		s, err := ParseSort(token)
		if err != nil {
			fe.Add("sort", "Unknown sort field")
			continue
		}
		q.Sort = append(q.Sort, s)
	}

	if err := fe.Err(); err != nil {
		return Query{}, err
	}
	return q, nil
}

// present records the shared operator/value messages and reports whether
// the row holds both.
func present(fe validation.FieldErrors, key string, r Row, missingValue string) bool {
	if r.empty() {
		return false
	}
	if isBlank(r.Op) {
		fe.Add(key, "Choose operation")
		return false
	}
	if isBlank(r.Value) {
		fe.Add(key, missingValue)
		return false
	}
	return true
}

func numberRow(fe validation.FieldErrors, key string, r Row, allowFloat bool) Filter[NumberOp] {
	if !present(fe, key, r, "Enter value") {
		return Filter[NumberOp]{}
	}

	op := NumberOp(strings.TrimSpace(r.Op))
	if !op.Valid() {
		fe.Add(key, "Choose operation")
		return Filter[NumberOp]{}
	}

	if allowFloat {
		n, ok := validation.ParseNumber(r.Value)
		if !ok {
			fe.Add(key, "Invalid number")
			return Filter[NumberOp]{}
		}
		return Float(op, n)
	}

	n, ok := validation.ParseInt(r.Value)
	if !ok {
		fe.Add(key, "Invalid integer")
		return Filter[NumberOp]{}
	}
	return Int(op, n)
}

func stringRow(fe validation.FieldErrors, key string, r Row) Filter[StringOp] {
	if !present(fe, key, r, "Enter value") {
		return Filter[StringOp]{}
	}

	op := StringOp(strings.TrimSpace(r.Op))
	if !op.Valid() {
		fe.Add(key, "Choose operation")
		return Filter[StringOp]{}
	}
	return Text(op, strings.TrimSpace(r.Value))
}

func dateRow(fe validation.FieldErrors, key string, r Row) Filter[DateOp] {
	if !present(fe, key, r, "Enter date") {
		return Filter[DateOp]{}
	}

	op := DateOp(strings.TrimSpace(r.Op))
	if !op.Valid() {
		fe.Add(key, "Choose operation")
		return Filter[DateOp]{}
	}

	t, ok := ParseDate(r.Value)
	if !ok {
		fe.Add(key, "Invalid date (DD.MM.YYYY)")
		return Filter[DateOp]{}
	}
	return Date(op, t)
}

// ParseDate reads DD.MM.YYYY or YYYY-MM-DD.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{InputDateLayout, models.DateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders an ISO date from the service as DD.MM.YYYY, returning
// the input unchanged when it is not a date.
func FormatDate(iso string) string {
	t, err := time.Parse(models.DateLayout, strings.TrimSpace(iso))
	if err != nil {
		return iso
	}
	return t.Format(InputDateLayout)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
