package models

// EmployeeRow is an employee as listed under an organization.
type EmployeeRow struct {
	ID             int64
	Name           string
	Salary         float64
	OrganizationID int64
}

// TurnoverSummary is the total annual turnover across all organizations.
type TurnoverSummary struct {
	TotalTurnover     float64
	OrganizationCount int64
}

// TypeCount is the number of organizations of one type.
type TypeCount struct {
	Type  OrganizationType
	Count int64
}

// OrganizationRef identifies an organization in aggregate responses.
type OrganizationRef struct {
	ID   int64
	Name string
}

// AcquisitionResult describes one organization taking over another and its
// employees.
type AcquisitionResult struct {
	Acquirer OrganizationRef
	Acquired OrganizationRef
	Moved    int64
}
