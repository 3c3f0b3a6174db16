package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/pmk/internal/app"
	"go.trai.ch/pmk/internal/core/domain"
	"go.trai.ch/pmk/internal/ui/output"
	"go.trai.ch/pmk/internal/ui/style"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderTargets(w io.Writer, listing *app.Listing) {
	out := output.New(w)

	nameWidth, outputWidth := 0, 0
	for _, t := range listing.Targets {
		nameWidth = max(nameWidth, len(t.Name))
		outputWidth = max(outputWidth, len(t.Output))
	}

	for _, t := range listing.Targets {
		marker := out.String(style.Circle).Foreground(out.Color(string(style.Slate)))
		name := out.String(fmt.Sprintf("%-*s", nameWidth, t.Name))
		if t.Current {
			marker = out.String(style.Dot).Foreground(out.Color(string(style.Iris)))
			name = name.Bold()
		}
		desc := out.String(t.Description).Faint()
		_, _ = fmt.Fprintf(w, "%s %s  %-*s  %s\n", marker, name, outputWidth, t.Output, desc)
	}

	_, _ = fmt.Fprintf(w, "\nmode: %s\n", listing.Mode)
}

func renderStatus(w io.Writer, records []domain.BuildRecord) {
	out := output.New(w)

	if len(records) == 0 {
		_, _ = fmt.Fprintln(w, out.String("no builds recorded").Faint())
		return
	}

	nameWidth := 0
	for _, r := range records {
		nameWidth = max(nameWidth, len(r.Target))
	}

	for _, r := range records {
		var icon termenv.Style
		var outcome string
		switch r.Status() {
		case domain.BuildStatusCompleted:
			icon = out.String(style.Check).Foreground(out.Color(string(style.Green)))
			outcome = "ok"
		case domain.BuildStatusSkipped:
			icon = out.String(style.Warning).Foreground(out.Color(string(style.Yellow)))
			outcome = "dry run"
		default:
			icon = out.String(style.Cross).Foreground(out.Color(string(style.Red)))
			outcome = fmt.Sprintf("exit %d", r.ExitCode)
		}

		_, _ = fmt.Fprintf(w, "%s %-*s  %-13s  %-7s  %s", icon, nameWidth, r.Target, r.Mode, outcome,
			out.String(r.Timestamp.Local().Format(time.DateTime)).Faint())
		if r.Fingerprint != "" {
			_, _ = fmt.Fprintf(w, "  %s", out.String(r.Fingerprint).Faint())
		}
		_, _ = fmt.Fprintln(w)
	}
}

func renderProbes(w io.Writer, probes []app.Probe) {
	out := output.New(w)

	for _, p := range probes {
		if p.OK() {
			icon := out.String(style.Check).Foreground(out.Color(string(style.Green)))
			_, _ = fmt.Fprintf(w, "%s %-7s %s", icon, p.Kind, p.Name)
			if p.Path != "" {
				_, _ = fmt.Fprintf(w, " %s", out.String(p.Path).Faint())
			}
			_, _ = fmt.Fprintln(w)
			continue
		}
		icon := out.String(style.Cross).Foreground(out.Color(string(style.Red)))
		_, _ = fmt.Fprintf(w, "%s %-7s %s\n", icon, p.Kind, p.Name)
	}
}
