package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/wolfeidau/orgctl/internal/models"
)

// OrganizationForm is the raw, user-entered state of the create/update form.
// Address fields may be partially filled while editing; Request rejects a
// partial address.
type OrganizationForm struct {
	Name           string
	CoordinatesX   string
	CoordinatesY   string
	AnnualTurnover string
	FullName       string
	Type           string
	Street         string
	TownX          string
	TownY          string
	TownName       string
}

// Request converts the form into a payload, reporting per-field messages when
// any input is missing or malformed.
func (f OrganizationForm) Request() (models.OrganizationRequest, error) {
	fe := FieldErrors{}
	req := models.OrganizationRequest{
		Name: strings.TrimSpace(f.Name),
	}

	if req.Name == "" {
		fe.Add("name", "Name is required")
	}

	if x, ok := ParseInt(f.CoordinatesX); ok {
		req.Coordinates.X = x
	} else if isBlank(f.CoordinatesX) {
		fe.Add("coordinatesX", "X is required")
	} else {
		fe.Add("coordinatesX", "X must be an integer")
	}

	if y, ok := ParseNumber(f.CoordinatesY); ok {
		req.Coordinates.Y = y
	} else {
		fe.Add("coordinatesY", "Y is required")
	}

	if at, ok := ParseNumber(f.AnnualTurnover); ok {
		req.AnnualTurnover = at
	} else {
		fe.Add("annualTurnover", "Annual turnover is required")
	}

	if f.FullName != "" {
		if isBlank(f.FullName) {
			fe.Add("fullName", "Full name cannot be blank")
		}
		req.FullName = strings.TrimSpace(f.FullName)
	}

	if isBlank(f.Type) {
		fe.Add("type", "Type is required")
	} else if t, ok := models.ParseOrganizationType(f.Type); ok {
		req.Type = t
	} else {
		fe.Add("type", "Invalid type")
	}

	if anyFilled(f.Street, f.TownX, f.TownY, f.TownName) {
		addr := &models.Address{
			Street: strings.TrimSpace(f.Street),
			Town:   models.Location{Name: strings.TrimSpace(f.TownName)},
		}
		if addr.Street == "" {
			fe.Add("street", "Street is required")
		}
		if x, ok := ParseNumber(f.TownX); ok {
			addr.Town.X = x
		} else {
			fe.Add("townX", "Town X is required")
		}
		if y, ok := ParseInt(f.TownY); ok {
			addr.Town.Y = y
		} else if isBlank(f.TownY) {
			fe.Add("townY", "Town Y is required")
		} else {
			fe.Add("townY", "Town Y must be an integer")
		}
		if addr.Town.Name == "" {
			fe.Add("townName", "Town name is required")
		}
		req.OfficialAddress = addr
	}

	// bounds and lengths are checked once the values parse
	if err := Organization(req); err != nil {
		verrs, ok := AsFieldErrors(err)
		if !ok {
			return req, err
		}
		for field, msg := range verrs {
			fe.Add(field, msg)
		}
	}

	if len(fe) > 0 {
		return models.OrganizationRequest{}, fe
	}
	return req, nil
}

// ParseNumber reads a finite number; blank input is not a number.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// ParseInt reads a whole number, accepting forms such as "12.0".
func ParseInt(s string) (int64, bool) {
	n, ok := ParseNumber(s)
	if !ok || n != math.Trunc(n) || n >= math.MaxInt64 || n < math.MinInt64 {
		return 0, false
	}
	return int64(n), true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func anyFilled(values ...string) bool {
	for _, v := range values {
		if !isBlank(v) {
			return true
		}
	}
	return false
}
