package main

import (
	"os"

	trailerscmd "github.com/rzbill/gitmsg/internal/cmd/trailers"
	logpkg "github.com/rzbill/gitmsg/pkg/log"
	"github.com/spf13/cobra"
)

func main() {
	// Respect GITMSG_LOG_LEVEL and GITMSG_LOG_FORMAT for CLI output
	level := os.Getenv("GITMSG_LOG_LEVEL")
	parsed, err := logpkg.ParseLevel(level)
	if err != nil || level == "" {
		parsed = logpkg.InfoLevel
	}
	var formatter logpkg.Formatter = &logpkg.TextFormatter{}
	if os.Getenv("GITMSG_LOG_FORMAT") == "json" {
		formatter = &logpkg.JSONFormatter{}
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(parsed),
		logpkg.WithFormatter(formatter),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)

	// Redirect standard library logs to our logger
	logpkg.RedirectStdLog(logger)

	rootCmd := &cobra.Command{
		Use:   "gitmsg",
		Short: "Commit message tooling",
		Long:  "gitmsg inspects git commit messages. This CLI parses and locates trailer blocks.",
	}

	rootCmd.AddCommand(trailerscmd.NewCommand(logger))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
