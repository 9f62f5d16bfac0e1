package trailers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rzbill/gitmsg/internal/config"
	"github.com/rzbill/gitmsg/pkg/log"
	"github.com/rzbill/gitmsg/pkg/trailer"
)

// NewCommand constructs the `trailers` command group and subcommands.
func NewCommand(logger log.Logger) *cobra.Command {
	trailersCmd := &cobra.Command{Use: "trailers", Short: "Trailer operations"}

	trailersCmd.AddCommand(
		newParseCommand(logger),
		newLocateCommand(logger),
	)

	return trailersCmd
}

// parsedTrailer is the JSON output shape for one key/value pair.
type parsedTrailer struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// newParseCommand constructs the `trailers parse` subcommand.
func newParseCommand(logger log.Logger) *cobra.Command {
	parseCmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse trailers from a commit message",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, _ := cmd.Flags().GetString("input")
			asJSON, _ := cmd.Flags().GetBool("json")
			filterExpr, _ := cmd.Flags().GetString("filter")

			opts, err := resolveOptions(cmd)
			if err != nil {
				return err
			}
			filter, err := newCELFilter(filterExpr)
			if err != nil {
				return fmt.Errorf("invalid --filter: %w", err)
			}
			message, err := readMessage(cmd, input)
			if err != nil {
				return err
			}

			// Initialized non-nil so --json renders an empty result as [].
			parsed := []parsedTrailer{}
			var index int
			err = trailer.Enumerate(message, func(key, value []byte) error {
				if filter.Eval(index, key, value) {
					parsed = append(parsed, parsedTrailer{Key: string(key), Value: string(value)})
				}
				index++
				return nil
			}, opts...)
			if err != nil {
				return err
			}
			logger.Debug("message parsed",
				log.Int("bytes", len(message)),
				log.Int("trailers", index),
				log.Int("selected", len(parsed)))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(parsed)
			}
			for _, p := range parsed {
				// Continuation newlines are re-indented so the output stays
				// parseable as a trailer block.
				value := strings.ReplaceAll(p.Value, "\n", "\n ")
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", p.Key, value)
			}
			return nil
		},
	}
	addCommonFlags(parseCmd)
	parseCmd.Flags().Bool("json", false, "Emit a JSON array instead of text")
	parseCmd.Flags().String("filter", "", "CEL filter over key/value/index, e.g. key == \"Signed-off-by\"")
	return parseCmd
}

// newLocateCommand constructs the `trailers locate` subcommand.
func newLocateCommand(logger log.Logger) *cobra.Command {
	locateCmd := &cobra.Command{
		Use:   "locate",
		Short: "Report the byte bounds of the trailer block",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, _ := cmd.Flags().GetString("input")
			asJSON, _ := cmd.Flags().GetBool("json")

			opts, err := resolveOptions(cmd)
			if err != nil {
				return err
			}
			message, err := readMessage(cmd, input)
			if err != nil {
				return err
			}

			start, end := trailer.Locate(message, opts...)
			logger.Debug("block located",
				log.Int("bytes", len(message)),
				log.Int("start", start),
				log.Int("end", end))

			if asJSON {
				var data struct {
					Start int    `json:"start"`
					End   int    `json:"end"`
					Block string `json:"block"`
				}
				data.Start = start
				data.End = end
				data.Block = string(message[start:end])
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(data)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "start: %d\nend: %d\n", start, end)
			if start < end {
				_, _ = cmd.OutOrStdout().Write(message[start:end])
			}
			return nil
		},
	}
	addCommonFlags(locateCmd)
	locateCmd.Flags().Bool("json", false, "Emit JSON instead of text")
	return locateCmd
}

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Read the message from a file instead of stdin")
	cmd.Flags().String("config", "", "Path to a JSON config file")
	cmd.Flags().String("separators", "", "Accepted separator characters (overrides config)")
	cmd.Flags().String("comment-char", "", "Comment character (overrides config)")
}

// resolveOptions builds parse options from config file, env, and flags, in
// increasing precedence.
func resolveOptions(cmd *cobra.Command) ([]trailer.Option, error) {
	configPath, _ := cmd.Flags().GetString("config")
	separators, _ := cmd.Flags().GetString("separators")
	commentChar, _ := cmd.Flags().GetString("comment-char")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	config.FromEnv(&cfg)
	if separators != "" {
		cfg.Separators = separators
	}
	if commentChar != "" {
		cfg.CommentChar = commentChar
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg.Options(), nil
}

func readMessage(cmd *cobra.Command, input string) ([]byte, error) {
	if input == "" || input == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(input)
}
