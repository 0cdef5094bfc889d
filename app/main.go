package main

import (
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"

	"keywordforge/app/cfg"
	"keywordforge/app/commands"
)

func main() {
	parser, raw := cfg.NewParser()

	// go-flags executes the matched command inside Parse, so the global
	// configuration has to be published before the command runs.
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		conf := cfg.Store(raw)
		setupLogger(conf.Debug)
		return command.Execute(args)
	}

	registerCommands(parser)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func registerCommands(parser *flags.Parser) {
	register := func(name string, short string, long string, command any) {
		if _, err := parser.AddCommand(name, short, long, command); err != nil {
			panic("failed to register command " + name + ": " + err.Error())
		}
	}

	register("collect", "Collect keywords",
		"Query the configured sources for seed keywords and store the results.",
		&commands.CollectCommand{})
	register("trending", "Show trending keywords",
		"Aggregate stored keywords over a lookback window, ranked by search volume and frequency.",
		&commands.TrendingCommand{})
	register("suggest", "Suggest keywords",
		"Match stored trend queries and topics against seed keywords.",
		&commands.SuggestCommand{})
	register("generate", "Generate articles",
		"Run the full collect, filter, generate, persist pipeline.",
		&commands.GenerateCommand{})
	register("analyze", "Analyze keywords",
		"Classify keywords by intent, content type, audience and competition.",
		&commands.AnalyzeCommand{})
	register("serve", "Run the HTTP API",
		"Serve stored keywords and articles over a read-only HTTP API.",
		&commands.ServeCommand{})
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
