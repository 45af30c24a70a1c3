package xmlcodec

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/wolfeidau/orgctl/internal/models"
)

// DefaultEntityRoot is the root element of create and update payloads.
const DefaultEntityRoot = "organization"

// NewDocument returns an empty request document. The service rejects
// self-closed elements, so empty elements are written as a tag pair.
func NewDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalEndTags = true
	return doc
}

// AddElement appends <tag>text</tag> to parent and returns the new element.
func AddElement(parent *etree.Element, tag, text string) *etree.Element {
	el := parent.CreateElement(tag)
	el.SetText(text)
	return el
}

// FormatFloat renders a number the way the service parses it: shortest
// representation, no exponent, no trailing ".0".
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatInt renders an integer.
func FormatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// Encoder builds create and update payloads.
type Encoder struct {
	// Root is the payload root element, DefaultEntityRoot when empty.
	Root string
}

// Organization serializes req. FullName and OfficialAddress are written only
// when set.
func (e Encoder) Organization(req models.OrganizationRequest) ([]byte, error) {
	root := e.Root
	if root == "" {
		root = DefaultEntityRoot
	}

	doc := NewDocument()
	org := doc.CreateElement(root)
	AddElement(org, "name", req.Name)

	coords := org.CreateElement("coordinates")
	AddElement(coords, "x", FormatInt(req.Coordinates.X))
	AddElement(coords, "y", FormatFloat(req.Coordinates.Y))

	AddElement(org, "annualTurnover", FormatFloat(req.AnnualTurnover))

	if req.FullName != "" {
		AddElement(org, "fullName", req.FullName)
	}

	AddElement(org, "type", string(req.Type))

	if addr := req.OfficialAddress; addr != nil {
		address := org.CreateElement("officialAddress")
		AddElement(address, "street", addr.Street)
		town := address.CreateElement("town")
		AddElement(town, "x", FormatFloat(addr.Town.X))
		AddElement(town, "y", FormatInt(addr.Town.Y))
		AddElement(town, "name", addr.Town.Name)
	}

	return doc.WriteToBytes()
}

// FullNameValue serializes the argument of the full-name-less-than search.
func FullNameValue(value string) ([]byte, error) {
	doc := NewDocument()
	AddElement(doc.CreateElement("fullNameValue"), "value", value)
	return doc.WriteToBytes()
}
