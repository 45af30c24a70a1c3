package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/wolfeidau/orgctl/internal/models"
)

// FieldErrors maps a form field to the message shown next to it.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fe[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records msg for field unless the field already has a message.
func (fe FieldErrors) Add(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}

// Err returns fe as an error, or nil when it is empty.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// AsFieldErrors extracts FieldErrors from err.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("orgtype", func(fl validator.FieldLevel) bool {
		return models.OrganizationType(fl.Field().String()).Valid()
	})
	return v
}

// field keys and messages for the struct namespace reported by the validator
var organizationMessages = map[string]struct {
	field    string
	messages map[string]string
}{
	"OrganizationRequest.Name": {"name", map[string]string{
		"notblank": "Name is required",
		"max":      "Name must be ≤ 255 chars",
	}},
	"OrganizationRequest.Coordinates.X": {"coordinatesX", map[string]string{
		"min": "X must be ≥ -826",
	}},
	"OrganizationRequest.Coordinates.Y": {"coordinatesY", map[string]string{
		"gte": "Y must be ≥ -143",
	}},
	"OrganizationRequest.AnnualTurnover": {"annualTurnover", map[string]string{
		"gt": "Annual turnover must be > 0",
	}},
	"OrganizationRequest.FullName": {"fullName", map[string]string{
		"notblank": "Full name cannot be blank",
		"max":      "Full name must be ≤ 255 chars",
	}},
	"OrganizationRequest.Type": {"type", map[string]string{
		"orgtype": "Invalid type",
	}},
	"OrganizationRequest.OfficialAddress.Street": {"street", map[string]string{
		"notblank": "Street is required",
		"max":      "Street must be ≤ 147 chars",
	}},
	"OrganizationRequest.OfficialAddress.Town.Name": {"townName", map[string]string{
		"notblank": "Town name is required",
	}},
}

// Organization checks a create or update payload against the constraints the
// service enforces.
func Organization(req models.OrganizationRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate organization: %w", err)
	}

	fe := FieldErrors{}
	for _, verr := range verrs {
		field, msg := describe(verr)
		fe.Add(field, msg)
	}
	return fe
}

func describe(verr validator.FieldError) (string, string) {
	entry, ok := organizationMessages[verr.Namespace()]
	if !ok {
		return verr.Field(), fmt.Sprintf("failed %s validation", verr.Tag())
	}
	if msg, ok := entry.messages[verr.Tag()]; ok {
		return entry.field, msg
	}
	return entry.field, fmt.Sprintf("failed %s validation", verr.Tag())
}
