package commands

import (
	"context"
	"fmt"

	"github.com/wolfeidau/orgctl/internal/client"
	"github.com/wolfeidau/orgctl/internal/query"
)

// QueryCmd searches organizations. Each filter is given as op:value, for
// example --turnover=gt:1000 or --name=contains:Acme.
type QueryCmd struct {
	ID       string   `help:"ID filter (eq|gt|ge|lt|le:integer)"`
	Name     string   `help:"Name filter (eq|contains|startsWith|endsWith:text)"`
	CoordX   string   `name:"coord-x" help:"Coordinates x filter (eq|gt|ge|lt|le:integer)"`
	CoordY   string   `name:"coord-y" help:"Coordinates y filter (eq|gt|ge|lt|le:integer)"`
	Created  string   `help:"Creation date filter (eq|before|after:DD.MM.YYYY)"`
	Turnover string   `help:"Annual turnover filter (eq|gt|ge|lt|le:number)"`
	FullName string   `help:"Full name filter (eq|contains|startsWith|endsWith:text)"`
	Type     []string `help:"Organization type, repeat to match any of several"`
	Street   string   `help:"Address street filter (eq|contains|startsWith|endsWith:text)"`
	TownName string   `help:"Address town name filter (eq|contains|startsWith|endsWith:text)"`
	TownX    string   `name:"town-x" help:"Address town x filter (eq|gt|ge|lt|le:number)"`
	TownY    string   `name:"town-y" help:"Address town y filter (eq|gt|ge|lt|le:integer)"`
	Sort     []string `help:"Sort field, prefixed with - for descending (repeatable)"`
	Page     int      `help:"Page number" default:"1"`
	Size     int      `help:"Number of organizations per page" default:"20"`
}

func (q *QueryCmd) form() query.Form {
	return query.Form{
		ID:             query.ParseRow(q.ID),
		Name:           query.ParseRow(q.Name),
		CoordX:         query.ParseRow(q.CoordX),
		CoordY:         query.ParseRow(q.CoordY),
		CreationDate:   query.ParseRow(q.Created),
		AnnualTurnover: query.ParseRow(q.Turnover),
		FullName:       query.ParseRow(q.FullName),
		Types:          q.Type,
		Street:         query.ParseRow(q.Street),
		TownName:       query.ParseRow(q.TownName),
		TownX:          query.ParseRow(q.TownX),
		TownY:          query.ParseRow(q.TownY),
		Sort:           q.Sort,
	}
}

func (q *QueryCmd) Run(ctx context.Context, globals *Globals) error {
	out := globals.out()

	oq, err := q.form().Query()
	if err != nil {
		return finish(out, err)
	}

	c, err := globals.NewClient()
	if err != nil {
		return err
	}

	page, err := c.QueryOrganizations(ctx, oq, client.PageRequest{Page: q.Page, Size: q.Size})
	if err != nil {
		return finish(out, fmt.Errorf("failed to query organizations: %w", err))
	}

	printOrganizations(out, page)
	return nil
}

// LtFullNameCmd lists organizations whose full name orders before a value.
type LtFullNameCmd struct {
	Value string `arg:"" help:"Full name to compare against"`
	Page  int    `help:"Page number" default:"1"`
	Size  int    `help:"Number of organizations per page" default:"20"`
}

func (l *LtFullNameCmd) Run(ctx context.Context, globals *Globals) error {
	c, err := globals.NewClient()
	if err != nil {
		return err
	}

	page, err := c.OrganizationsLessThanFullName(ctx, l.Value, client.PageRequest{Page: l.Page, Size: l.Size})
	if err != nil {
		return finish(globals.out(), fmt.Errorf("failed to search by full name: %w", err))
	}

	printOrganizations(globals.out(), page)
	return nil
}
