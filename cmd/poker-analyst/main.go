package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Odds     OddsCmd          `cmd:"" help:"Estimate win equity with Monte Carlo simulation"`
	Eval     EvalCmd          `cmd:"" help:"Evaluate the best five-card hand from 5-7 cards"`
	Preflop  PreflopCmd       `cmd:"" help:"Score a starting hand with the preflop table"`
	Profiles ProfilesCmd      `cmd:"" help:"List opponent behavior archetypes"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("poker-analyst"),
		kong.Description("Poker equity calculator with behavioral opponent modeling"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
