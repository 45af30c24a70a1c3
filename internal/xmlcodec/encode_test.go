package xmlcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wolfeidau/orgctl/internal/models"
)

func TestEncoder_Organization(t *testing.T) {
	req := models.OrganizationRequest{
		Name:           "Smith & Sons",
		Coordinates:    models.Coordinates{X: -5, Y: 1.25},
		AnnualTurnover: 150000,
		FullName:       `"Smith" <Holdings>`,
		Type:           models.PrivateLimitedCompany,
		OfficialAddress: &models.Address{
			Street: "O'Connell st.",
			Town:   models.Location{X: 3.5, Y: -2, Name: "Dublin"},
		},
	}

	body, err := Encoder{}.Organization(req)
	require.NoError(t, err)

	expected := "<organization>" +
		"<name>Smith &amp; Sons</name>" +
		"<coordinates><x>-5</x><y>1.25</y></coordinates>" +
		"<annualTurnover>150000</annualTurnover>" +
		"<fullName>&quot;Smith&quot; &lt;Holdings&gt;</fullName>" +
		"<type>PRIVATE_LIMITED_COMPANY</type>" +
		"<officialAddress><street>O&apos;Connell st.</street>" +
		"<town><x>3.5</x><y>-2</y><name>Dublin</name></town></officialAddress>" +
		"</organization>"
	require.Equal(t, expected, string(body))
}

func TestEncoder_Organization_customRoot(t *testing.T) {
	body, err := Encoder{Root: "OrganizationRequest"}.Organization(models.OrganizationRequest{Name: "A", AnnualTurnover: 1, Type: models.Commercial})
	require.NoError(t, err)
	got := string(body)
	assert.Contains(t, got, "<OrganizationRequest><name>A</name>")
	assert.Contains(t, got, "</OrganizationRequest>")
}

func TestEncoder_Organization_optionalFieldsOmitted(t *testing.T) {
	req := models.OrganizationRequest{
		Name:           "Acme",
		Coordinates:    models.Coordinates{X: 1, Y: 2},
		AnnualTurnover: 10.5,
		Type:           models.Commercial,
	}

	body, err := Encoder{}.Organization(req)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "<officialAddress>")
	assert.NotContains(t, string(body), "<fullName>")
	assert.NotContains(t, string(body), "<id>")
	assert.NotContains(t, string(body), "<creationDate>")

	// the same document decodes with an empty address rather than failing
	org, err := NewDecoder(DefaultParserConfig).Organization(body)
	require.NoError(t, err)
	assert.Equal(t, "Acme", org.Name)
	assert.Equal(t, models.Coordinates{X: 1, Y: 2}, org.Coordinates)
	assert.Equal(t, 10.5, org.AnnualTurnover)
	assert.Equal(t, models.Address{}, org.OfficialAddress)
	assert.Equal(t, "", org.FullName)
}

func TestFullNameValue(t *testing.T) {
	body, err := FullNameValue("A & B")
	require.NoError(t, err)
	require.Equal(t, "<fullNameValue><value>A &amp; B</value></fullNameValue>", string(body))
}

func TestNewDocument_emptyElement(t *testing.T) {
	doc := NewDocument()
	doc.CreateElement("organizationQuery").CreateElement("sort")

	got, err := doc.WriteToString()
	require.NoError(t, err)
	require.Equal(t, "<organizationQuery><sort></sort></organizationQuery>", got)
}

func TestAddElement_escapesText(t *testing.T) {
	text := `Smith & "Sons" <Ltd> 'x'`

	doc := NewDocument()
	AddElement(doc.CreateElement("nameFilter"), "eq", text)

	got, err := doc.WriteToString()
	require.NoError(t, err)
	require.Equal(t, "<nameFilter><eq>"+Escape(text)+"</eq></nameFilter>", got)
	assert.Equal(t, "Smith &amp; &quot;Sons&quot; &lt;Ltd&gt; &apos;x&apos;", Escape(text))
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{input: 0, expected: "0"},
		{input: 150000, expected: "150000"},
		{input: 1.5, expected: "1.5"},
		{input: -143, expected: "-143"},
		{input: 1e21, expected: "1000000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, FormatFloat(tt.input))
		})
	}
}
