package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
)

// WriteText renders the console table.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n=== %s ===\n", r.Title)
	for _, line := range r.environmentLines() {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(columns, "\t")+"\t")
	for _, row := range r.rows() {
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteAsciiDoc renders an AsciiDoc table with the environment as a literal block.
func (r *Report) WriteAsciiDoc(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "= %s\n\n....\n", r.Title)
	for _, line := range r.environmentLines() {
		b.WriteString(line + "\n")
	}
	b.WriteString("....\n\n[options=\"header\"]\n|===\n")
	b.WriteString("|" + strings.Join(columns, " |") + "\n")
	for _, row := range r.rows() {
		b.WriteString("|" + strings.Join(row, " |") + "\n")
	}
	b.WriteString("|===\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteMarkdown renders a GitHub flavoured Markdown table.
func (r *Report) WriteMarkdown(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n``` ini\n", r.Title)
	for _, line := range r.environmentLines() {
		b.WriteString(line + "\n")
	}
	b.WriteString("```\n\n")

	b.WriteString("| " + strings.Join(columns, " | ") + " |\n")
	align := make([]string, len(columns))
	align[0] = "---"
	for i := 1; i < len(align); i++ {
		align[i] = "---:"
	}
	b.WriteString("|" + strings.Join(align, "|") + "|\n")
	for _, row := range r.rows() {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style type="text/css">
	table { border-collapse: collapse; display: block; width: 100%; overflow: auto; }
	td, th { padding: 6px 13px; border: 1px solid #ddd; text-align: right; }
	tr { background-color: #fff; border-top: 1px solid #ccc; }
	tr:nth-child(even) { background: #f8f8f8; }
</style>
</head>
<body>
<h2>{{.Title}}</h2>
<pre><code>
{{- range .Environment}}
{{.}}
{{- end}}
</code></pre>
<table>
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
<p>Generated {{.GeneratedAt}}</p>
</body>
</html>
`))

// WriteHTML renders a standalone HTML page.
func (r *Report) WriteHTML(w io.Writer) error {
	return htmlTemplate.Execute(w, struct {
		Title       string
		Environment []string
		Columns     []string
		Rows        [][]string
		GeneratedAt string
	}{
		Title:       r.Title,
		Environment: r.environmentLines(),
		Columns:     columns,
		Rows:        r.rows(),
		GeneratedAt: r.GeneratedAt.Format("2006-01-02 15:04:05 MST"),
	})
}

// Export writes the AsciiDoc, Markdown and HTML renderings into dir and
// returns the paths written.
func (r *Report) Export(dir, base string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report dir: %w", err)
	}

	exporters := []struct {
		suffix string
		write  func(io.Writer) error
	}{
		{"-report.asciidoc", r.WriteAsciiDoc},
		{"-report-github.md", r.WriteMarkdown},
		{"-report.html", r.WriteHTML},
	}

	paths := make([]string, 0, len(exporters))
	for _, e := range exporters {
		path := filepath.Join(dir, base+e.suffix)
		if err := writeFile(path, e.write); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	if err = write(file); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
