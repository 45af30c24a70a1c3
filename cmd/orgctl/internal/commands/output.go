package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/wolfeidau/orgctl/internal/models"
	"github.com/wolfeidau/orgctl/internal/query"
	"github.com/wolfeidau/orgctl/internal/view"
	"github.com/wolfeidau/orgctl/internal/xmlcodec"
)

const organizationRow = "%-6s %-20s %-24s %-10s %-14s %-24s %-16s %-30s\n"

func printOrganizations(w io.Writer, page models.OrganizationsPage) {
	fmt.Fprintf(w, "Organizations (total: %d, page: %d/%d, size: %d):\n",
		page.TotalElements, page.Page, page.TotalPages, page.Size)

	if len(page.Organizations) == 0 {
		fmt.Fprintln(w, "No organizations found.")
		return
	}

	fmt.Fprintf(w, organizationRow,
		"ID", "Name", "Full name", "Created", "Turnover", "Type", "Coordinates", "Official address")
	fmt.Fprintln(w, strings.Repeat("─", 150))

	for _, o := range page.Organizations {
		fmt.Fprintf(w, organizationRow,
			xmlcodec.FormatInt(o.ID),
			truncate(o.Name, 20),
			truncate(o.FullName, 24),
			query.FormatDate(o.CreationDate),
			xmlcodec.FormatFloat(o.AnnualTurnover),
			formatType(string(o.Type)),
			fmt.Sprintf("(%s, %s)", xmlcodec.FormatInt(o.Coordinates.X), xmlcodec.FormatFloat(o.Coordinates.Y)),
			truncate(formatAddress(o.OfficialAddress), 30))
	}

	if page.TotalPages > 1 {
		items := view.PageItems(page.Page, page.TotalPages, 1)
		parts := make([]string, 0, len(items))
		for _, it := range items {
			if it.Page == page.Page && !it.Ellipsis {
				parts = append(parts, "["+it.String()+"]")
				continue
			}
			parts = append(parts, it.String())
		}
		fmt.Fprintf(w, "\nPages: %s\n", strings.Join(parts, " "))
		if page.Page < page.TotalPages {
			fmt.Fprintf(w, "Use --page=%d to see next page\n", page.Page+1)
		}
	}
}

func formatAddress(a models.Address) string {
	if a == (models.Address{}) {
		return "-"
	}
	return fmt.Sprintf("%s, %s (%s, %s)", a.Street, a.Town.Name,
		xmlcodec.FormatFloat(a.Town.X), xmlcodec.FormatInt(a.Town.Y))
}

func printOrganization(w io.Writer, o models.Organization) {
	fmt.Fprintf(w, "%-18s %d\n", "ID:", o.ID)
	fmt.Fprintf(w, "%-18s %s\n", "Name:", o.Name)
	if o.FullName != "" {
		fmt.Fprintf(w, "%-18s %s\n", "Full name:", o.FullName)
	}
	fmt.Fprintf(w, "%-18s %s\n", "Created:", query.FormatDate(o.CreationDate))
	fmt.Fprintf(w, "%-18s %s\n", "Annual turnover:", xmlcodec.FormatFloat(o.AnnualTurnover))
	fmt.Fprintf(w, "%-18s %s\n", "Type:", formatType(string(o.Type)))
	fmt.Fprintf(w, "%-18s (%s, %s)\n", "Coordinates:",
		xmlcodec.FormatInt(o.Coordinates.X), xmlcodec.FormatFloat(o.Coordinates.Y))
	fmt.Fprintf(w, "%-18s %s\n", "Official address:", formatAddress(o.OfficialAddress))
}

func printEmployees(w io.Writer, orgID int64, rows []models.EmployeeRow) {
	fmt.Fprintf(w, "Employees of organization %d:\n", orgID)
	if len(rows) == 0 {
		fmt.Fprintln(w, "No employees found.")
		return
	}

	fmt.Fprintf(w, "%-8s %-30s %-14s %-12s\n", "ID", "Name", "Salary", "Organization")
	fmt.Fprintln(w, strings.Repeat("─", 67))
	for _, r := range rows {
		fmt.Fprintf(w, "%-8d %-30s %-14s %-12d\n", r.ID, truncate(r.Name, 30), xmlcodec.FormatFloat(r.Salary), r.OrganizationID)
	}
	fmt.Fprintf(w, "\nTotal employees: %d\n", len(rows))
}

func printTurnover(w io.Writer, sum models.TurnoverSummary) {
	fmt.Fprintf(w, "Total turnover: %s (organizations: %d)\n",
		xmlcodec.FormatFloat(sum.TotalTurnover), sum.OrganizationCount)
}

func printTypeCounts(w io.Writer, counts []models.TypeCount) {
	fmt.Fprintln(w, "Organizations by type:")
	if len(counts) == 0 {
		fmt.Fprintln(w, "No organizations found.")
		return
	}
	for _, c := range counts {
		fmt.Fprintf(w, "  %-28s %d\n", formatType(string(c.Type)), c.Count)
	}
}
