// Package style renders command results for the terminal.
package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/shrinkwrap/pkg/commands/convert"
	"github.com/arthur-debert/shrinkwrap/pkg/commands/status"
	"github.com/arthur-debert/shrinkwrap/pkg/types"
)

// DispositionStyle returns the pterm style for a disposition label.
func DispositionStyle(d types.Disposition) *pterm.Style {
	switch d {
	case types.ConvertNow:
		return pterm.NewStyle(pterm.FgYellow)
	case types.SkipAlreadyConverted:
		return pterm.NewStyle(pterm.FgGreen)
	case types.SkipBackupExists:
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// interactive reports whether stdout is a terminal; plain output otherwise.
func interactive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func bold(s string) string {
	if !interactive() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

func styled(style *pterm.Style, s string) string {
	if !interactive() {
		return s
	}
	return style.Sprint(s)
}

// RenderConvertResult renders the convert run summary.
func RenderConvertResult(r *convert.Result) string {
	var b strings.Builder

	if r.DryRun {
		b.WriteString(bold("DRY RUN - no changes were made") + "\n\n")
	}

	verb := "converted"
	if r.DryRun {
		verb = "to convert"
	}
	fmt.Fprintf(&b, "  %s %d\n", bold(fmt.Sprintf("%-20s", verb)), r.Converted)
	if r.Failed > 0 {
		fmt.Fprintf(&b, "  %s %d\n", styled(pterm.NewStyle(pterm.FgRed), fmt.Sprintf("%-20s", "failed")), r.Failed)
	}
	fmt.Fprintf(&b, "  %s %d\n", fmt.Sprintf("%-20s", "already converted"), r.AlreadyConverted)
	if r.Repaired > 0 {
		fmt.Fprintf(&b, "  %s %d\n", fmt.Sprintf("%-20s", "lock repaired"), r.Repaired)
	}
	if r.Generated > 0 {
		fmt.Fprintf(&b, "  %s %d\n", fmt.Sprintf("%-20s", "generated skipped"), r.Generated)
	}
	if !r.DryRun {
		fmt.Fprintf(&b, "  %s %d\n", fmt.Sprintf("%-20s", "files rewritten"), r.FilesRewritten)
		if !r.LockSaved {
			b.WriteString(styled(pterm.NewStyle(pterm.FgRed), "  lock file could not be saved; results are in-memory only") + "\n")
		}
	}

	return b.String()
}

// RenderStatus renders the read-only classification table.
func RenderStatus(r *status.Result) string {
	var b strings.Builder

	if len(r.Decisions) == 0 {
		b.WriteString("No candidates found.\n")
	}
	for _, d := range r.Decisions {
		label := styled(DispositionStyle(d.Disposition), fmt.Sprintf("%-22s", d.Disposition))
		fmt.Fprintf(&b, "  %s %s", label, d.Candidate)
		if d.Target != "" && d.Disposition != types.ConvertNow {
			fmt.Fprintf(&b, " -> %s", d.Target)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%d conversion(s) recorded in lock file\n", r.LockEntries)
	for _, original := range r.MissingTargets {
		fmt.Fprintf(&b, "  %s %s\n",
			styled(pterm.NewStyle(pterm.FgYellow), "target missing, will reconvert:"), original)
	}

	return b.String()
}
