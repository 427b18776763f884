// Package prompt collects missing configuration interactively. It is only
// ever used on a real terminal; non-interactive runs get a setup error
// instead of a hanging prompt.
package prompt

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/shrinkwrap/pkg/codec"
	"github.com/arthur-debert/shrinkwrap/pkg/config"
)

// Interactive reports whether both stdin and stdout are terminals.
func Interactive() bool {
	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

// ConfigWizard prompts for the settings a starter config needs, seeded with
// the given defaults.
func ConfigWizard(defaults config.Config) (config.Config, error) {
	cfg := defaults

	input, err := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(cfg.Input).
		Show("Input directory (scanned for images)")
	if err != nil {
		return cfg, err
	}
	cfg.Input = input

	output, err := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(cfg.Output).
		Show("Output directory (backup of originals)")
	if err != nil {
		return cfg, err
	}
	cfg.Output = output

	format, err := pterm.DefaultInteractiveSelect.
		WithOptions([]string{
			string(codec.FormatWebP),
			string(codec.FormatPNG),
			string(codec.FormatJPEG),
			string(codec.FormatJPG),
		}).
		WithDefaultOption(cfg.Format).
		Show("Target format")
	if err != nil {
		return cfg, err
	}
	cfg.Format = format

	quality, err := pterm.DefaultInteractiveSelect.
		WithOptions([]string{string(codec.TierSmall), string(codec.TierSmallest)}).
		WithDefaultOption(cfg.Quality).
		Show("Quality tier")
	if err != nil {
		return cfg, err
	}
	cfg.Quality = quality

	workdir, err := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(cfg.WorkDir).
		Show("Directory to rewrite references in")
	if err != nil {
		return cfg, err
	}
	cfg.WorkDir = workdir

	return cfg, nil
}
