package xmlcodec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wolfeidau/orgctl/internal/models"
)

const twoOrganizationsPage = `<?xml version="1.0" encoding="UTF-8"?>
<organizationsPage>
  <organizations>
    <organization>
      <id>1</id>
      <name>Acme</name>
      <creationDate>2025-12-14</creationDate>
      <annualTurnover>150000.0</annualTurnover>
      <fullName>Acme Holdings</fullName>
      <coordinates><x>-826</x><y>10.5</y></coordinates>
      <type>GOVERNMENT</type>
      <officialAddress>
        <street>Main st.</street>
        <town><x>1.5</x><y>2</y><name>Springfield</name></town>
      </officialAddress>
    </organization>
    <organization>
      <id>2</id>
      <name>Globex</name>
      <creationDate>2025-12-15</creationDate>
      <annualTurnover>99.9</annualTurnover>
      <coordinates><x>3</x><y>4</y></coordinates>
      <type>PRIVATE_LIMITED_COMPANY</type>
    </organization>
  </organizations>
  <page>1</page>
  <size>20</size>
  <totalElements>2</totalElements>
  <totalPages>1</totalPages>
</organizationsPage>`

func TestDecoder_OrganizationsPage(t *testing.T) {
	d := NewDecoder(DefaultParserConfig)

	page, err := d.OrganizationsPage([]byte(twoOrganizationsPage), 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Organizations, 2)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Size)
	assert.Equal(t, 2, page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)

	expected := models.Organization{
		ID:             1,
		Name:           "Acme",
		CreationDate:   "2025-12-14",
		AnnualTurnover: 150000,
		FullName:       "Acme Holdings",
		Coordinates:    models.Coordinates{X: -826, Y: 10.5},
		Type:           models.Government,
		OfficialAddress: models.Address{
			Street: "Main st.",
			Town:   models.Location{X: 1.5, Y: 2, Name: "Springfield"},
		},
	}
	if diff := cmp.Diff(expected, page.Organizations[0]); diff != "" {
		t.Fatalf("organization mismatch (-want +got):\n%s", diff)
	}

	second := page.Organizations[1]
	assert.Equal(t, "Globex", second.Name)
	assert.Equal(t, "", second.FullName)
	assert.Equal(t, models.Address{}, second.OfficialAddress)
}

func TestDecoder_OrganizationsPage_singleOrganization(t *testing.T) {
	d := NewDecoder(DefaultParserConfig)

	body := `<organizationsPage><organizations><organization><id>5</id><name>Solo</name></organization></organizations></organizationsPage>`
	page, err := d.OrganizationsPage([]byte(body), 3, 10)
	require.NoError(t, err)
	require.Len(t, page.Organizations, 1)
	assert.Equal(t, int64(5), page.Organizations[0].ID)
	assert.Equal(t, models.Commercial, page.Organizations[0].Type)

	// counters fall back to the request parameters and defaults
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 10, page.Size)
	assert.Equal(t, 0, page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)
}

func TestDecoder_OrganizationsPage_empty(t *testing.T) {
	d := NewDecoder(DefaultParserConfig)

	for _, body := range []string{
		`<organizationsPage/>`,
		`<organizationsPage><organizations/><page>1</page><size>20</size><totalElements>0</totalElements><totalPages>0</totalPages></organizationsPage>`,
	} {
		page, err := d.OrganizationsPage([]byte(body), 1, 20)
		require.NoError(t, err)
		assert.Empty(t, page.Organizations)
	}
}

func TestDecoder_OrganizationsPage_malformedLeaves(t *testing.T) {
	d := NewDecoder(DefaultParserConfig)

	body := `<organizationsPage>
  <organizations><organization><id>abc</id><annualTurnover>lots</annualTurnover><coordinates><x/><y>NaN</y></coordinates><type></type></organization></organizations>
  <page>two</page>
</organizationsPage>`
	page, err := d.OrganizationsPage([]byte(body), 2, 50)
	require.NoError(t, err)
	require.Len(t, page.Organizations, 1)

	org := page.Organizations[0]
	assert.Equal(t, int64(0), org.ID)
	assert.Equal(t, 0.0, org.AnnualTurnover)
	assert.Equal(t, models.Coordinates{}, org.Coordinates)
	assert.Equal(t, models.Commercial, org.Type)
	assert.Equal(t, 2, page.Page)
}

func TestDecoder_missingRoot(t *testing.T) {
	d := NewDecoder(DefaultParserConfig)

	_, err := d.OrganizationsPage([]byte(`<organizations><organization><id>1</id></organization></organizations>`), 1, 20)
	require.ErrorIs(t, err, ErrMissingRoot)
	require.Contains(t, err.Error(), "<organizationsPage>")

	_, err = d.Turnover([]byte(`<other/>`))
	require.ErrorIs(t, err, ErrMissingRoot)

	_, err = d.TypeCounts([]byte(`<typeCount><type>GOVERNMENT</type></typeCount>`))
	require.ErrorIs(t, err, ErrMissingRoot)

	_, err = d.Employees([]byte(`<employee/>`), 1)
	require.ErrorIs(t, err, ErrMissingRoot)

	_, err = d.Acquiring([]byte(`<acquired/>`))
	require.ErrorIs(t, err, ErrMissingRoot)

	_, err = d.Organization([]byte(`<organizationsPage/>`))
	require.ErrorIs(t, err, ErrMissingRoot)
}

func TestDecoder_invalidDocument(t *testing.T) {
	d := NewDecoder(DefaultParserConfig)

	_, err := d.OrganizationsPage([]byte(`<organizationsPage page=></organizationsPage>`), 1, 20)
	require.Error(t, err)
}

func TestDecoder_Turnover(t *testing.T) {
	d := NewDecoder(DefaultParserConfig)

	summary, err := d.Turnover([]byte(`<turnoverResponse><totalTurnover>2.5E5</totalTurnover><organizationCount>3</organizationCount></turnoverResponse>`))
	require.NoError(t, err)
	assert.Equal(t, models.TurnoverSummary{TotalTurnover: 250000, OrganizationCount: 3}, summary)
}

func TestDecoder_TypeCounts(t *testing.T) {
	d := NewDecoder(DefaultParserConfig)

	counts, err := d.TypeCounts([]byte(`<typeCounts>
  <typeCount><type>COMMERCIAL</type><count>4</count></typeCount>
  <typeCount><type>GOVERNMENT</type><count>1</count></typeCount>
</typeCounts>`))
	require.NoError(t, err)
	assert.Equal(t, []models.TypeCount{
		{Type: models.Commercial, Count: 4},
		{Type: models.Government, Count: 1},
	}, counts)

	counts, err = d.TypeCounts([]byte(`<typeCounts><typeCount><count>2</count></typeCount></typeCounts>`))
	require.NoError(t, err)
	assert.Equal(t, []models.TypeCount{{Type: models.Commercial, Count: 2}}, counts)
}

func TestDecoder_Employees(t *testing.T) {
	d := NewDecoder(DefaultParserConfig)

	rows, err := d.Employees([]byte(`<employees>
  <employee><id>10</id><name>Ann</name><salary>1200.5</salary><organization><id>7</id></organization></employee>
  <employee><id>11</id><name>Bob</name><salary>900</salary></employee>
</employees>`), 3)
	require.NoError(t, err)
	assert.Equal(t, []models.EmployeeRow{
		{ID: 10, Name: "Ann", Salary: 1200.5, OrganizationID: 7},
		{ID: 11, Name: "Bob", Salary: 900, OrganizationID: 3},
	}, rows)

	rows, err = d.Employees([]byte(`<employees/>`), 3)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDecoder_Acquiring(t *testing.T) {
	d := NewDecoder(DefaultParserConfig)

	result, err := d.Acquiring([]byte(`<acquiring>
  <acquirerOrganization><id>1</id><name>Acme</name></acquirerOrganization>
  <acquiredOrganization><id>2</id><name>Globex</name></acquiredOrganization>
  <numberOfEmployeesMoved>7</numberOfEmployeesMoved>
</acquiring>`))
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.Moved)
	assert.Equal(t, models.OrganizationRef{ID: 1, Name: "Acme"}, result.Acquirer)
	assert.Equal(t, models.OrganizationRef{ID: 2, Name: "Globex"}, result.Acquired)
}

func TestDecoder_EmployeeCount(t *testing.T) {
	d := NewDecoder(DefaultParserConfig)

	tests := []struct {
		name     string
		body     string
		expected int64
	}{
		{name: "element", body: `<employeeCount>4</employeeCount>`, expected: 4},
		{name: "element with declaration", body: `<?xml version="1.0"?><employeeCount> 12 </employeeCount>`, expected: 12},
		{name: "bare number", body: "5\n", expected: 5},
		{name: "other root", body: `<count>4</count>`, expected: 0},
		{name: "empty", body: "", expected: 0},
		{name: "garbage", body: "<<<", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, d.EmployeeCount([]byte(tt.body)))
		})
	}
}

func TestParserConfig_ParseTagValue(t *testing.T) {
	doc, err := ParserConfig{TrimValues: true, ParseTagValue: true}.Parse([]byte(`<r><a> 42 </a><b>007x</b></r>`))
	require.NoError(t, err)

	a := doc.Path("r", "a")
	require.Equal(t, Number, a.Kind())
	require.Equal(t, 42.0, ToNumber(a, 0))
	require.Equal(t, Text, doc.Path("r", "b").Kind())

	doc, err = DefaultParserConfig.Parse([]byte(`<r><a>007</a></r>`))
	require.NoError(t, err)
	require.Equal(t, "007", ToString(doc.Path("r", "a")))
}

func TestParserConfig_nilElement(t *testing.T) {
	doc, err := DefaultParserConfig.Parse([]byte(`<r xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"><a xsi:nil="true"/></r>`))
	require.NoError(t, err)
	require.Equal(t, Null, doc.Path("r", "a").Kind())
	require.Empty(t, ToArray(doc.Path("r", "a")))
}
