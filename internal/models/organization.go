package models

import (
	"strings"
	"time"
)

// OrganizationType is the kind of legal entity an organization is registered as.
type OrganizationType string

const (
	Commercial            OrganizationType = "COMMERCIAL"
	Government            OrganizationType = "GOVERNMENT"
	PrivateLimitedCompany OrganizationType = "PRIVATE_LIMITED_COMPANY"
	OpenJointStockCompany OrganizationType = "OPEN_JOINT_STOCK_COMPANY"
)

// DefaultOrganizationType is used when a response carries no usable type.
const DefaultOrganizationType = Commercial

// OrganizationTypes lists every type in display order.
var OrganizationTypes = []OrganizationType{
	Commercial,
	Government,
	PrivateLimitedCompany,
	OpenJointStockCompany,
}

// Valid reports whether t is one of the known organization types.
func (t OrganizationType) Valid() bool {
	for _, known := range OrganizationTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseOrganizationType matches s case-insensitively against the known types.
func ParseOrganizationType(s string) (OrganizationType, bool) {
	t := OrganizationType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", false
	}
	return t, true
}

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

type Coordinates struct {
	X int64   `validate:"min=-826"`
	Y float64 `validate:"gte=-143"`
}

// Location is the town part of an address.
type Location struct {
	X    float64
	Y    int64
	Name string `validate:"notblank"`
}

type Address struct {
	Street string `validate:"notblank,max=147"`
	Town   Location
}

// Organization is an organization as returned by the service. Id and creation
// date are assigned by the server.
type Organization struct {
	ID              int64
	Name            string
	CreationDate    string // YYYY-MM-DD
	AnnualTurnover  float64
	FullName        string
	Coordinates     Coordinates
	Type            OrganizationType
	OfficialAddress Address
}

// CreatedOn parses CreationDate.
func (o Organization) CreatedOn() (time.Time, error) {
	return time.Parse(DateLayout, o.CreationDate)
}

// OrganizationsPage is one page of a paginated organizations listing.
type OrganizationsPage struct {
	Organizations []Organization
	Page          int
	Size          int
	TotalElements int
	TotalPages    int
}

// OrganizationRequest is the payload of create and update calls.
//
// An empty FullName and a nil OfficialAddress are left out of the wire
// payload, which the service reads as unset.
type OrganizationRequest struct {
	Name            string           `validate:"notblank,max=255"`
	Coordinates     Coordinates
	AnnualTurnover  float64          `validate:"gt=0"`
	FullName        string           `validate:"omitempty,notblank,max=255"`
	Type            OrganizationType `validate:"orgtype"`
	OfficialAddress *Address         `validate:"omitempty"`
}
