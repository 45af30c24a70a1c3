package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/wolfeidau/orgctl/internal/client"
	"github.com/wolfeidau/orgctl/internal/models"
	"github.com/wolfeidau/orgctl/internal/query"
	"github.com/wolfeidau/orgctl/internal/view"
)

type ListCmd struct {
	Page     int           `help:"Page number" default:"1"`
	Size     int           `help:"Number of organizations per page" default:"20"`
	Sort     []string      `help:"Sort field, prefixed with - for descending (repeatable)"`
	Watch    bool          `help:"Watch for changes" default:"false"`
	Interval time.Duration `help:"Refresh interval when watching" default:"5s"`
}

func (l *ListCmd) Run(ctx context.Context, globals *Globals) error {
	sorts := make([]query.Sort, 0, len(l.Sort))
	for _, token := range l.Sort {
		s, err := query.ParseSort(token)
		if err != nil {
			return err
		}
		sorts = append(sorts, s)
	}

	c, err := globals.NewClient()
	if err != nil {
		return err
	}

	// the client treats pages below 1 as the first page
	l.Page = max(l.Page, 1)

	loader := &view.Loader[models.OrganizationsPage]{}

	if l.Watch {
		return finish(globals.out(), l.watch(ctx, globals, c, loader, sorts))
	}
	return finish(globals.out(), l.list(ctx, globals, c, loader, sorts))
}

func (l *ListCmd) fetch(c *client.Client, sorts []query.Sort) func(context.Context) (models.OrganizationsPage, error) {
	return func(ctx context.Context) (models.OrganizationsPage, error) {
		p := client.PageRequest{Page: l.Page, Size: l.Size}
		if len(sorts) == 0 {
			return c.ListOrganizations(ctx, p)
		}
		return c.ListOrganizationsSorted(ctx, p, sorts...)
	}
}

// list loads the requested page, moving to the last page once when the
// request is past the end.
func (l *ListCmd) list(ctx context.Context, globals *Globals, c *client.Client, loader *view.Loader[models.OrganizationsPage], sorts []query.Sort) error {
	for attempt := 0; ; attempt++ {
		state, ok := loader.Load(ctx, l.fetch(c, sorts))
		if !ok {
			return nil
		}
		if state.Err != nil {
			return fmt.Errorf("failed to list organizations: %w", state.Err)
		}

		page := state.Value
		if attempt == 0 && page.TotalElements > 0 {
			if clamped := view.ClampPage(l.Page, page.TotalPages); clamped != l.Page {
				l.Page = clamped
				continue
			}
		}

		printOrganizations(globals.out(), page)
		return nil
	}
}

func (l *ListCmd) watch(ctx context.Context, globals *Globals, c *client.Client, loader *view.Loader[models.OrganizationsPage], sorts []query.Sort) error {
	out := globals.out()
	fmt.Fprintln(out, "Watching organizations (press Ctrl+C to stop)...")

	// the first tick fires immediately
	ticker := backoff.NewTicker(backoff.NewConstantBackOff(l.Interval))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			loader.Cancel()
			return nil
		case <-ticker.C:
			state, ok := loader.Load(ctx, l.fetch(c, sorts))
			if !ok {
				continue
			}

			fmt.Fprint(out, "\033[2J\033[H") // Clear screen and move cursor to top
			fmt.Fprintf(out, "Organizations (updated at %s)\n\n", time.Now().Format("15:04:05"))

			if state.Err != nil {
				fmt.Fprintf(out, "Error updating organization list: %v\n", state.Err)
				continue
			}
			printOrganizations(out, state.Value)
		}
	}
}
