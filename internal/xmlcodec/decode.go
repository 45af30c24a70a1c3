package xmlcodec

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/wolfeidau/orgctl/internal/models"
	"github.com/wolfeidau/orgctl/internal/util"
)

// ErrMissingRoot is returned when a response lacks the root element expected
// for its operation.
var ErrMissingRoot = errors.New("unexpected XML: missing expected root")

// Root element names of the response documents.
const (
	RootOrganizationsPage = "organizationsPage"
	RootOrganization      = "organization"
	RootTurnover          = "turnoverResponse"
	RootTypeCounts        = "typeCounts"
	RootEmployees         = "employees"
	RootAcquiring         = "acquiring"
	RootEmployeeCount     = "employeeCount"
)

// Pagination defaults used when a page response omits its counters.
const (
	DefaultTotalElements = 0
	DefaultTotalPages    = 1
)

// Decoder maps response documents onto models. Only a missing root element is
// an error; missing or malformed leaves fall back to zero values.
type Decoder struct {
	parser ParserConfig
}

// NewDecoder returns a decoder using cfg for every document.
func NewDecoder(cfg ParserConfig) *Decoder {
	return &Decoder{parser: cfg}
}

func (d *Decoder) root(data []byte, name string) (Value, error) {
	doc, err := d.parser.Parse(data)
	if err != nil {
		return Value{}, err
	}
	root := doc.Get(name)
	if root.IsAbsent() {
		return Value{}, fmt.Errorf("%w <%s>", ErrMissingRoot, name)
	}
	return root, nil
}

// OrganizationsPage decodes an organizationsPage document. page and size are
// the request parameters and stand in for counters the response leaves out.
func (d *Decoder) OrganizationsPage(data []byte, page, size int) (models.OrganizationsPage, error) {
	root, err := d.root(data, RootOrganizationsPage)
	if err != nil {
		return models.OrganizationsPage{}, err
	}

	items := ToArray(root.Path("organizations", "organization"))
	orgs := make([]models.Organization, 0, len(items))
	for _, item := range items {
		orgs = append(orgs, organization(item))
	}

	return models.OrganizationsPage{
		Organizations: orgs,
		Page:          util.AsInt(ToNumber(root.Get("page"), float64(page))),
		Size:          util.AsInt(ToNumber(root.Get("size"), float64(size))),
		TotalElements: util.AsInt(ToNumber(root.Get("totalElements"), DefaultTotalElements)),
		TotalPages:    util.AsInt(ToNumber(root.Get("totalPages"), DefaultTotalPages)),
	}, nil
}

// Organization decodes a single organization document.
func (d *Decoder) Organization(data []byte) (models.Organization, error) {
	root, err := d.root(data, RootOrganization)
	if err != nil {
		return models.Organization{}, err
	}
	return organization(root), nil
}

func organization(o Value) models.Organization {
	coords := o.Get("coordinates")
	addr := o.Get("officialAddress")
	town := addr.Get("town")

	return models.Organization{
		ID:             ToInt(o.Get("id"), 0),
		Name:           ToString(o.Get("name")),
		CreationDate:   ToString(o.Get("creationDate")),
		AnnualTurnover: ToNumber(o.Get("annualTurnover"), 0),
		FullName:       ToString(o.Get("fullName")),
		Coordinates: models.Coordinates{
			X: ToInt(coords.Get("x"), 0),
			Y: ToNumber(coords.Get("y"), 0),
		},
		Type: ToOrganizationType(o.Get("type")),
		OfficialAddress: models.Address{
			Street: ToString(addr.Get("street")),
			Town: models.Location{
				X:    ToNumber(town.Get("x"), 0),
				Y:    ToInt(town.Get("y"), 0),
				Name: ToString(town.Get("name")),
			},
		},
	}
}

// Turnover decodes a turnoverResponse document.
func (d *Decoder) Turnover(data []byte) (models.TurnoverSummary, error) {
	root, err := d.root(data, RootTurnover)
	if err != nil {
		return models.TurnoverSummary{}, err
	}
	return models.TurnoverSummary{
		TotalTurnover:     ToNumber(root.Get("totalTurnover"), 0),
		OrganizationCount: ToInt(root.Get("organizationCount"), 0),
	}, nil
}

// TypeCounts decodes a typeCounts document.
func (d *Decoder) TypeCounts(data []byte) ([]models.TypeCount, error) {
	root, err := d.root(data, RootTypeCounts)
	if err != nil {
		return nil, err
	}

	items := ToArray(root.Get("typeCount"))
	counts := make([]models.TypeCount, 0, len(items))
	for _, item := range items {
		counts = append(counts, models.TypeCount{
			Type:  ToOrganizationType(item.Get("type")),
			Count: ToInt(item.Get("count"), 0),
		})
	}
	return counts, nil
}

// Employees decodes an employees document. Employees without a nested
// organization reference are attributed to orgID.
func (d *Decoder) Employees(data []byte, orgID int64) ([]models.EmployeeRow, error) {
	root, err := d.root(data, RootEmployees)
	if err != nil {
		return nil, err
	}

	items := ToArray(root.Get("employee"))
	rows := make([]models.EmployeeRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, models.EmployeeRow{
			ID:             ToInt(item.Get("id"), 0),
			Name:           ToString(item.Get("name")),
			Salary:         ToNumber(item.Get("salary"), 0),
			OrganizationID: ToInt(item.Path("organization", "id"), orgID),
		})
	}
	return rows, nil
}

// Acquiring decodes an acquiring document.
func (d *Decoder) Acquiring(data []byte) (models.AcquisitionResult, error) {
	root, err := d.root(data, RootAcquiring)
	if err != nil {
		return models.AcquisitionResult{}, err
	}

	acquirer := root.Get("acquirerOrganization")
	acquired := root.Get("acquiredOrganization")

	return models.AcquisitionResult{
		Acquirer: models.OrganizationRef{ID: ToInt(acquirer.Get("id"), 0), Name: ToString(acquirer.Get("name"))},
		Acquired: models.OrganizationRef{ID: ToInt(acquired.Get("id"), 0), Name: ToString(acquired.Get("name"))},
		Moved:    ToInt(root.Get("numberOfEmployeesMoved"), 0),
	}, nil
}

// EmployeeCount reads the number of fired employees. The service answers with
// an employeeCount element or, from some deployments, the bare number; any
// other body reads as zero.
func (d *Decoder) EmployeeCount(data []byte) int64 {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] != '<' {
		return ToInt(TextValue(strings.TrimSpace(string(trimmed))), 0)
	}

	doc, err := d.parser.Parse(trimmed)
	if err != nil {
		return 0
	}
	return ToInt(doc.Get(RootEmployeeCount), 0)
}
