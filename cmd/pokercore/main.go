// Command pokercore is the single entry point for the poker-analytics
// core: hand evaluation, multi-way equity, luck scoring, bankroll
// simulation, and preflop cache management. Its Kong subcommand layout is
// grounded on the teacher's cmd/pokerforbots/main.go.
package main

import (
	"github.com/alecthomas/kong"
)

var version = "dev"

// CLI is the root command, dispatching to one subcommand per
// pokercore component.
type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Evaluate EvaluateCmd      `cmd:"" help:"Evaluate a 5-7 card hand"`
	Equity   EquityCmd        `cmd:"" help:"Compute multi-way equity for a set of hole cards"`
	Luck     LuckCmd          `cmd:"" help:"Score a sequence of equity/outcome samples"`
	Bankroll BankrollCmd      `cmd:"" help:"Run a bankroll Monte-Carlo simulation"`
	Cache    CacheCmd         `cmd:"" help:"Build or query the preflop equity cache"`
	Range    RangeCmd         `cmd:"" help:"Compute range-vs-range equity from two range notations"`
	TUI      TUICmd           `cmd:"" help:"Launch the interactive equity explorer"`
	Bridge   BridgeCmd        `cmd:"" help:"Serve equity, luck, and bankroll requests over websocket"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokercore"),
		kong.Description("Poker hand evaluation, equity, luck scoring, and bankroll simulation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
