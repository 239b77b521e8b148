package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/jirascope/internal/configloader"
	"github.com/yaklabco/jirascope/internal/logging"
	"github.com/yaklabco/jirascope/internal/ui/pretty"
	"github.com/yaklabco/jirascope/pkg/config"
	"github.com/yaklabco/jirascope/pkg/convert"
)

// ErrConfig marks failures to load or validate configuration.
var ErrConfig = errors.New("configuration error")

// conversionFlags are the converter switches shared by several commands.
type conversionFlags struct {
	strict          bool
	detectLanguages bool
	blockSpacing    bool
}

func (f *conversionFlags) register(cmd *cobra.Command, render bool) {
	cmd.Flags().BoolVar(&f.strict, "strict", false,
		"fail on Markdown with no ADF equivalent instead of inserting a placeholder")
	cmd.Flags().BoolVar(&f.detectLanguages, "detect-languages", false,
		"guess the language of code blocks that do not name one")
	if render {
		cmd.Flags().BoolVar(&f.blockSpacing, "block-spacing", false,
			"separate rendered blocks with blank lines")
	}
}

// overrides returns the flags the user actually set.
func (f *conversionFlags) overrides(cmd *cobra.Command) *configloader.Overrides {
	o := &configloader.Overrides{}
	if cmd.Flags().Changed("strict") {
		o.Strict = &f.strict
	}
	if cmd.Flags().Changed("detect-languages") {
		o.DetectLanguages = &f.detectLanguages
	}
	if cmd.Flags().Changed("block-spacing") {
		o.BlockSpacing = &f.blockSpacing
	}
	return o
}

// session is the resolved state a command runs with.
type session struct {
	ctx    context.Context
	cfg    *config.Config
	logger *log.Logger
	styles *pretty.Styles
	out    io.Writer
}

// converter builds a converter from the resolved configuration.
func (s *session) converter() *convert.Converter {
	return convert.New(convert.Options{
		Strict:          s.cfg.Strict,
		DetectLanguages: s.cfg.DetectLanguages,
		BlockSpacing:    s.cfg.BlockSpacing,
	})
}

// newSession loads configuration for cmd, layering overrides over the
// files and environment, and prepares the logger and output styles.
func newSession(cmd *cobra.Command, overrides *configloader.Overrides) (*session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), "info")
	logger.SetLevel(logging.Default().GetLevel())

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	if overrides == nil {
		overrides = &configloader.Overrides{}
	}
	if cmd.Flags().Changed("color") {
		color, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		mode := config.ColorMode(color)
		overrides.Color = &mode
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
		CLI:          overrides,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration loaded",
		logging.FieldStrict, cfg.Strict,
		logging.FieldDetectLanguages, cfg.DetectLanguages,
		logging.FieldBlockSpacing, cfg.BlockSpacing,
		logging.FieldFieldPath, cfg.JSON.FieldPath,
	)

	out := cmd.OutOrStdout()
	return &session{
		ctx:    logging.WithLogger(ctx, logger),
		cfg:    cfg,
		logger: logger,
		styles: pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, out)),
		out:    out,
	}, nil
}
