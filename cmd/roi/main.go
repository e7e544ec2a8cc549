// Command roi prints the calculator report for the built-in defaults,
// optionally overlaid with a YAML scenario.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/AngelCh415/ROI_GO/internal/calculator"
	"github.com/AngelCh415/ROI_GO/internal/config"
	"github.com/AngelCh415/ROI_GO/internal/inputs"
	"github.com/AngelCh415/ROI_GO/internal/report"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "roi:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("roi", flag.ContinueOnError)
	scenario := fs.String("inputs", "", "YAML scenario overlaid on the defaults")
	format := fs.String("format", "md", "output format: md, json or html")
	out := fs.String("out", "", "write to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	switch *format {
	case "md", "json", "html":
	default:
		return fmt.Errorf("unknown format %q", *format)
	}

	cfg := config.Load()
	in, err := cfg.Defaults()
	if err != nil {
		return err
	}
	if *scenario != "" {
		if in, err = inputs.LoadYAML(*scenario, in); err != nil {
			return err
		}
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	ev, err := calculator.NewService(log, nil, in).Evaluate(context.Background(), in)
	if err != nil {
		return err
	}

	w := stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch *format {
	case "md":
		return report.RenderMarkdown(w, ev.Report)
	case "html":
		return report.RenderHTML(w, ev.Report)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", " ")
		return enc.Encode(ev)
	}
}
