package commands

import (
	"context"
	"fmt"

	"github.com/wolfeidau/orgctl/internal/validation"
)

// OrganizationFlags are the fields of a create or update. Values are taken
// as typed and validated together so every problem is reported at once.
type OrganizationFlags struct {
	Name     string `help:"Name"`
	X        string `name:"x" help:"Coordinates x (integer ≥ -826)"`
	Y        string `name:"y" help:"Coordinates y (number ≥ -143)"`
	Turnover string `help:"Annual turnover (number > 0)"`
	FullName string `help:"Full name"`
	Type     string `help:"Organization type" default:"COMMERCIAL"`
	Street   string `help:"Official address street (≤ 147 chars)"`
	TownX    string `name:"town-x" help:"Official address town x (number)"`
	TownY    string `name:"town-y" help:"Official address town y (integer)"`
	TownName string `help:"Official address town name"`
}

func (o OrganizationFlags) form() validation.OrganizationForm {
	return validation.OrganizationForm{
		Name:           o.Name,
		CoordinatesX:   o.X,
		CoordinatesY:   o.Y,
		AnnualTurnover: o.Turnover,
		FullName:       o.FullName,
		Type:           o.Type,
		Street:         o.Street,
		TownX:          o.TownX,
		TownY:          o.TownY,
		TownName:       o.TownName,
	}
}

type CreateCmd struct {
	OrganizationFlags `embed:""`
}

func (c *CreateCmd) Run(ctx context.Context, globals *Globals) error {
	out := globals.out()

	req, err := c.form().Request()
	if err != nil {
		return finish(out, err)
	}

	cl, err := globals.NewClient()
	if err != nil {
		return err
	}

	if err := cl.CreateOrganization(ctx, req); err != nil {
		return finish(out, fmt.Errorf("failed to create organization: %w", err))
	}

	fmt.Fprintf(out, "Organization %q created\n", req.Name)
	return nil
}

type UpdateCmd struct {
	ID                int64 `arg:"" help:"Organization ID"`
	OrganizationFlags `embed:""`
}

func (u *UpdateCmd) Run(ctx context.Context, globals *Globals) error {
	out := globals.out()

	req, err := u.form().Request()
	if err != nil {
		return finish(out, err)
	}

	cl, err := globals.NewClient()
	if err != nil {
		return err
	}

	if err := cl.UpdateOrganization(ctx, u.ID, req); err != nil {
		return finish(out, fmt.Errorf("failed to update organization %d: %w", u.ID, err))
	}

	fmt.Fprintf(out, "Organization %d updated\n", u.ID)
	return nil
}

type DeleteCmd struct {
	ID int64 `arg:"" help:"Organization ID"`
}

func (d *DeleteCmd) Run(ctx context.Context, globals *Globals) error {
	cl, err := globals.NewClient()
	if err != nil {
		return err
	}

	if err := cl.DeleteOrganization(ctx, d.ID); err != nil {
		return finish(globals.out(), fmt.Errorf("failed to delete organization %d: %w", d.ID, err))
	}

	fmt.Fprintf(globals.out(), "Organization %d deleted\n", d.ID)
	return nil
}

type GetCmd struct {
	ID int64 `arg:"" help:"Organization ID"`
}

func (g *GetCmd) Run(ctx context.Context, globals *Globals) error {
	cl, err := globals.NewClient()
	if err != nil {
		return err
	}

	org, err := cl.GetOrganization(ctx, g.ID)
	if err != nil {
		return finish(globals.out(), fmt.Errorf("failed to get organization %d: %w", g.ID, err))
	}

	printOrganization(globals.out(), org)
	return nil
}
