package query

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/wolfeidau/orgctl/internal/models"
	"github.com/wolfeidau/orgctl/internal/xmlcodec"
)

// Root is the root element of a query document.
const Root = "organizationQuery"

// Compile serializes q into the document accepted by the query endpoint.
//
// The sort wrapper is always written, holding one signed token per
// directive. Each filter is written only when set, and the coordinates,
// address and town wrappers only when one of their children is.
func Compile(q Query) ([]byte, error) {
	doc := xmlcodec.NewDocument()
	root := doc.CreateElement(Root)

	sorts := root.CreateElement("sort")
	for _, s := range q.Sort {
		if !s.Field.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSortField, s.Field)
		}
		xmlcodec.AddElement(sorts, "sort", s.Token())
	}

	if err := filter(root, "idFilter", q.ID); err != nil {
		return nil, err
	}
	if err := filter(root, "nameFilter", q.Name); err != nil {
		return nil, err
	}

	if q.hasCoordinates() {
		coords := root.CreateElement("coordinatesFilter")
		if err := filter(coords, "xFilter", q.CoordX); err != nil {
			return nil, err
		}
		if err := filter(coords, "yFilter", q.CoordY); err != nil {
			return nil, err
		}
	}

	if err := filter(root, "creationDateFilter", q.CreationDate); err != nil {
		return nil, err
	}
	if err := filter(root, "annualTurnoverFilter", q.AnnualTurnover); err != nil {
		return nil, err
	}
	if err := filter(root, "fullNameFilter", q.FullName); err != nil {
		return nil, err
	}
	if err := typeFilter(root, q.Types); err != nil {
		return nil, err
	}

	if q.hasAddress() {
		address := root.CreateElement("officialAddressFilter")
		if err := filter(address, "streetFilter", q.Street); err != nil {
			return nil, err
		}
		if q.hasTown() {
			town := address.CreateElement("townFilter")
			if err := filter(town, "xFilter", q.TownX); err != nil {
				return nil, err
			}
			if err := filter(town, "yFilter", q.TownY); err != nil {
				return nil, err
			}
			if err := filter(town, "nameFilter", q.TownName); err != nil {
				return nil, err
			}
		}
	}

	return doc.WriteToBytes()
}

func filter[O Operator](parent *etree.Element, tag string, f Filter[O]) error {
	if !f.IsSet() {
		return nil
	}
	if !f.Op.Valid() {
		return fmt.Errorf("%w %q for %s", ErrUnknownOperator, string(f.Op), tag)
	}
	xmlcodec.AddElement(parent.CreateElement(tag), string(f.Op), strings.TrimSpace(f.Value))
	return nil
}

// typeFilter writes a single type as eq and several as an in list.
func typeFilter(parent *etree.Element, types []models.OrganizationType) error {
	for _, t := range types {
		if !t.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownType, t)
		}
	}

	switch len(types) {
	case 0:
		return nil
	case 1:
		xmlcodec.AddElement(parent.CreateElement("typeFilter"), "eq", string(types[0]))
	default:
		in := parent.CreateElement("typeFilter").CreateElement("in")
		for _, t := range types {
			xmlcodec.AddElement(in, "in", string(t))
		}
	}
	return nil
}
