package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"

	"github.com/wolfeidau/orgctl/cmd/orgctl/internal/commands"
	"github.com/wolfeidau/orgctl/internal/telemetry"
)

var (
	version = "dev"
	cli     struct {
		List       commands.ListCmd       `cmd:"" help:"List organizations"`
		Query      commands.QueryCmd      `cmd:"" help:"Search organizations with filters"`
		Get        commands.GetCmd        `cmd:"" help:"Show one organization"`
		Create     commands.CreateCmd     `cmd:"" help:"Create an organization"`
		Update     commands.UpdateCmd     `cmd:"" help:"Replace an organization"`
		Delete     commands.DeleteCmd     `cmd:"" help:"Delete an organization"`
		Employees  commands.EmployeesCmd  `cmd:"" help:"List the employees of an organization"`
		Turnover   commands.TurnoverCmd   `cmd:"" help:"Show the total annual turnover"`
		Types      commands.TypesCmd      `cmd:"" help:"Count organizations by type"`
		Summary    commands.SummaryCmd    `cmd:"" help:"Show turnover and type counts"`
		LtFullName commands.LtFullNameCmd `cmd:"" name:"lt-full-name" help:"List organizations whose full name orders before a value"`
		Fire       commands.FireCmd       `cmd:"" help:"Fire all employees of an organization"`
		Acquire    commands.AcquireCmd    `cmd:"" help:"Merge one organization into another"`

		commands.ClientFlags `embed:""`

		Debug   bool `help:"Enable debug mode."`
		Version kong.VersionFlag
	}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))

	shutdown, err := telemetry.InitTelemetry(ctx, "orgctl", version)
	if err != nil {
		log.Warn().Err(err).Msg("telemetry disabled")
		shutdown = func(context.Context) error { return nil }
	}

	err = cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version, Client: cli.ClientFlags})

	// flush before FatalIfErrorf exits
	if serr := shutdown(context.Background()); serr != nil {
		log.Warn().Err(serr).Msg("failed to flush telemetry")
	}
	cmd.FatalIfErrorf(err)
}
