package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/AngelCh415/ROI_GO/internal/format"
)

var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// RenderMarkdown writes the report as GitHub-flavored Markdown.
func RenderMarkdown(w io.Writer, r Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n_%s_\n\n", r.Title, r.Subtitle)

	b.WriteString("## Estimated Annual Total Gain\n\n")
	fmt.Fprintf(&b, "**%s**\n\n", r.Headline.AnnualTotalGain)
	fmt.Fprintf(&b, "- Annual Labor Savings: %s\n- Annual Added Revenue: %s\n\n",
		r.Headline.AnnualCostSavings, r.Headline.AnnualRevenueIncrease)
	fmt.Fprintf(&b, "| Annual ROI (Y1) | Payback Period |\n|---|---|\n| %s | %s |\n\n",
		r.Headline.AnnualROI, r.Headline.Payback)

	b.WriteString("## Monthly Cost & Benefit Comparison\n\n")
	b.WriteString("| | Current Human Cost | AI Cost (Effective Y1) |")
	if r.ShowNetBenefit {
		b.WriteString(" Net Benefit |")
	}
	b.WriteString("\n|---|---|---|")
	if r.ShowNetBenefit {
		b.WriteString("---|")
	}
	b.WriteString("\n")
	for _, p := range r.Chart {
		fmt.Fprintf(&b, "| %s | %s | %s |", p.Name, format.Money(p.CurrentHumanCost), format.Money(p.AICostEffectiveY1))
		if r.ShowNetBenefit {
			fmt.Fprintf(&b, " %s |", format.Money(p.NetBenefit))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, s := range r.Sections {
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
		writeLines(&b, s.Lines)
	}

	b.WriteString("## Key Insights & Annual Projections\n\n")
	for _, in := range r.Insights {
		fmt.Fprintf(&b, "- %s\n", in)
	}
	b.WriteString("\n")
	writeLines(&b, r.Annual)

	b.WriteString("## Key Qualitative Benefits of AI Agents\n\n")
	for _, q := range r.Benefits {
		fmt.Fprintf(&b, "- **%s**: %s\n", q.Title, q.Text)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeLines(b *strings.Builder, lines []Line) {
	b.WriteString("| Item | Value | Basis |\n|---|---|---|\n")
	for _, l := range lines {
		fmt.Fprintf(b, "| %s | %s | %s |\n", l.Label, l.Value, l.Note)
	}
	b.WriteString("\n")
}

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 56rem; margin: 2rem auto; color: #1f2937; }
table { border-collapse: collapse; width: 100%; margin-bottom: 1.5rem; }
th, td { border: 1px solid #d1d5db; padding: .4rem .6rem; text-align: left; }
h2 { border-bottom: 1px solid #e5e7eb; padding-bottom: .25rem; }
@media print { body { margin: 0; } h2 { break-after: avoid; } table { break-inside: avoid; } }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// RenderHTML converts the Markdown rendering into a standalone printable page.
func RenderHTML(w io.Writer, r Report) error {
	var src bytes.Buffer
	if err := RenderMarkdown(&src, r); err != nil {
		return err
	}
	var body bytes.Buffer
	if err := md.Convert(src.Bytes(), &body); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return page.Execute(w, struct {
		Title string
		Body  template.HTML
	}{r.Title, template.HTML(body.String())})
}
