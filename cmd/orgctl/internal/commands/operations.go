package commands

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/wolfeidau/orgctl/internal/models"
)

type EmployeesCmd struct {
	OrgID int64 `arg:"" help:"Organization ID"`
}

func (e *EmployeesCmd) Run(ctx context.Context, globals *Globals) error {
	c, err := globals.NewClient()
	if err != nil {
		return err
	}

	rows, err := c.Employees(ctx, e.OrgID)
	if err != nil {
		return finish(globals.out(), fmt.Errorf("failed to list employees: %w", err))
	}

	printEmployees(globals.out(), e.OrgID, rows)
	return nil
}

type TurnoverCmd struct{}

func (t *TurnoverCmd) Run(ctx context.Context, globals *Globals) error {
	c, err := globals.NewClient()
	if err != nil {
		return err
	}

	sum, err := c.TotalTurnover(ctx)
	if err != nil {
		return finish(globals.out(), fmt.Errorf("failed to get total turnover: %w", err))
	}

	printTurnover(globals.out(), sum)
	return nil
}

type TypesCmd struct{}

func (t *TypesCmd) Run(ctx context.Context, globals *Globals) error {
	c, err := globals.NewClient()
	if err != nil {
		return err
	}

	counts, err := c.TypeCounts(ctx)
	if err != nil {
		return finish(globals.out(), fmt.Errorf("failed to get type counts: %w", err))
	}

	printTypeCounts(globals.out(), counts)
	return nil
}

// SummaryCmd fetches both aggregates at once.
type SummaryCmd struct{}

func (s *SummaryCmd) Run(ctx context.Context, globals *Globals) error {
	c, err := globals.NewClient()
	if err != nil {
		return err
	}

	var (
		sum    models.TurnoverSummary
		counts []models.TypeCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sum, err = c.TotalTurnover(gctx)
		if err != nil {
			return fmt.Errorf("failed to get total turnover: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		counts, err = c.TypeCounts(gctx)
		if err != nil {
			return fmt.Errorf("failed to get type counts: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return finish(globals.out(), err)
	}

	printTurnover(globals.out(), sum)
	printTypeCounts(globals.out(), counts)
	return nil
}

type FireCmd struct {
	OrgID int64 `arg:"" help:"Organization ID"`
}

func (f *FireCmd) Run(ctx context.Context, globals *Globals) error {
	c, err := globals.NewClient()
	if err != nil {
		return err
	}

	n, err := c.FireAll(ctx, f.OrgID)
	if err != nil {
		return finish(globals.out(), fmt.Errorf("failed to fire employees: %w", err))
	}

	fmt.Fprintf(globals.out(), "Fired %d employees of organization %d\n", n, f.OrgID)
	return nil
}

type AcquireCmd struct {
	Acquirer int64 `arg:"" help:"ID of the acquiring organization"`
	Acquired int64 `arg:"" help:"ID of the organization being acquired"`
}

func (a *AcquireCmd) Run(ctx context.Context, globals *Globals) error {
	c, err := globals.NewClient()
	if err != nil {
		return err
	}

	res, err := c.Acquire(ctx, a.Acquirer, a.Acquired)
	if err != nil {
		return finish(globals.out(), fmt.Errorf("failed to acquire organization: %w", err))
	}

	fmt.Fprintf(globals.out(), "%s (%d) acquired %s (%d), employees moved: %d\n",
		res.Acquirer.Name, res.Acquirer.ID, res.Acquired.Name, res.Acquired.ID, res.Moved)
	return nil
}
