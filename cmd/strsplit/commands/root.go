package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/adamluzsi/strsplit/internal/config"
	"github.com/adamluzsi/strsplit/pkg/iterkit"
	"github.com/adamluzsi/strsplit/pkg/logging"
	"github.com/adamluzsi/strsplit/pkg/slicekit"
	"github.com/adamluzsi/strsplit/pkg/splitkit"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the strsplit command.
func NewRootCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "strsplit [flags] [text...]",
		Short: "Split text on a delimiter",
		Long: `strsplit splits every argument, or every line of the standard input
when no argument is given, on a text or a single character delimiter.

Modes:
  lines   one element per line (default)
  json    a JSON array of the elements per input
  spans   the start:end byte offsets of the elements per input
  before  the text before the first --char

Examples:
  strsplit -d ", " "a, b, c"
  echo "key=value" | strsplit -c = -m json
  strsplit -c o -m before "hello world"`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(cmd.Flags(), configPath)
			if err != nil {
				return err
			}
			logger := &logging.Logger{Out: cmd.ErrOrStderr(), Level: c.Level()}
			ctx := logging.ContextWith(cmd.Context(), logging.Fields{
				"mode":      string(c.Mode),
				"delimiter": delimiterOf(*c),
			})
			inputs, err := readInputs(cmd.InOrStdin(), args)
			if err != nil {
				logger.Error(ctx, "failed to read input", logging.ErrField(err))
				return err
			}
			logger.Debug(ctx, "inputs read", logging.Field("count", len(inputs)))
			return run(ctx, logger, *c, cmd.OutOrStdout(), inputs)
		},
	}

	flags := cmd.Flags()
	flags.StringP("delimiter", "d", " ", "literal text delimiter")
	flags.StringP("char", "c", "", "single character delimiter, takes precedence over --delimiter")
	flags.StringP("mode", "m", string(config.ModeLines), "output mode: lines, json, spans or before")
	flags.String("log-level", "warn", "logging level: debug, info, warn or error")
	flags.StringVar(&configPath, "config", "", "path to a config file (toml, yaml or json)")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func delimiterOf(c config.Config) string {
	if c.Char != "" {
		return c.Char
	}
	return c.Delimiter
}

// readInputs returns the arguments, or the lines of r when there are none.
// Empty stdin has no lines, but a lone line feed is one empty line.
func readInputs(r io.Reader, args []string) ([]string, error) {
	if 0 < len(args) {
		return slicekit.Of(args...), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) == 0 {
		return slicekit.Of[string](), nil
	}
	var lines []string
	text := strings.TrimSuffix(string(data), "\n")
	for line := range splitkit.Split(text, splitkit.Char('\n')) {
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}
	return lines, nil
}

func run(ctx context.Context, logger *logging.Logger, c config.Config, out io.Writer, inputs []string) error {
	r, isChar := c.Rune()
	if c.Mode == config.ModeBefore {
		if !isChar {
			return config.ErrInvalidConfig.F("%s mode requires a char delimiter", config.ModeBefore)
		}
		for _, input := range inputs {
			if _, err := fmt.Fprintln(out, splitkit.Before(input, r)); err != nil {
				return err
			}
		}
		return nil
	}
	if isChar {
		return emitAll(ctx, logger, c.Mode, out, inputs, splitkit.Char(r))
	}
	return emitAll(ctx, logger, c.Mode, out, inputs, splitkit.Str(c.Delimiter))
}

func emitAll[D splitkit.Delimiter](ctx context.Context, logger *logging.Logger, mode config.Mode, out io.Writer, inputs []string, d D) error {
	for i, input := range inputs {
		ctx := logging.ContextWith(ctx, logging.Field("input", i))
		if err := emit(ctx, logger, mode, out, input, d); err != nil {
			logger.Error(ctx, "failed to write output", logging.ErrField(err))
			return err
		}
	}
	return nil
}

func emit[D splitkit.Delimiter](ctx context.Context, logger *logging.Logger, mode config.Mode, out io.Writer, input string, d D) error {
	switch mode {
	case config.ModeLines:
		var (
			count   int
			elemErr error
		)
		splitter := splitkit.New(input, d)
		for v := range iterkit.FromPullIter[string](splitter, func(err error) { elemErr = err }) {
			count++
			if _, err := fmt.Fprintln(out, v); err != nil {
				return err
			}
		}
		logger.Debug(ctx, "input split", logging.Field("elements", count))
		return elemErr

	case config.ModeJSON:
		elements := splitkit.New(input, d).Collect()
		logger.Debug(ctx, "input split", logging.Field("elements", len(elements)))
		return json.NewEncoder(out).Encode(elements)

	case config.ModeSpans:
		spans := iterkit.Collect(splitkit.Spans(input, d))
		logger.Debug(ctx, "input split", logging.Field("elements", len(spans)))
		_, err := fmt.Fprintln(out, strings.Join(slicekit.Map(spans, splitkit.Span.String), " "))
		return err

	default:
		return config.ErrInvalidConfig.F("unknown mode: %q", mode)
	}
}
