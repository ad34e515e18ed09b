package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/preston-bernstein/standings-service/internal/domain/standings"
)

// ImageColumn is rendered as an <img> tag instead of text.
const ImageColumn = "logo"

// ErrUnknownColumn is returned when a record does not expose a requested column.
var ErrUnknownColumn = errors.New("unknown column")

// Record is anything the list renderer can lay out as a table row.
type Record interface {
	Field(key string) (string, bool)
}

// Records adapts a typed slice for the list renderer.
func Records[T Record](items []T) []Record {
	out := make([]Record, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

type cell struct {
	Value string
	Image bool
}

type page struct {
	Title   string
	Headers []string
	Rows    [][]cell
	Nav     standings.Navigation
}

// Renderer produces complete HTML pages. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// New parses the page templates.
func New() *Renderer {
	return &Renderer{tmpl: template.Must(template.New("pages").Parse(pageTemplates))}
}

// List writes a page holding one table row per record and one cell per column.
// Nothing is written to w when rendering fails.
func (r *Renderer) List(w io.Writer, title string, records []Record, columns []string) error {
	upper := cases.Upper(language.Und)
	p := page{
		Title:   title,
		Headers: make([]string, len(columns)),
		Rows:    make([][]cell, 0, len(records)),
	}
	for i, col := range columns {
		p.Headers[i] = upper.String(col)
	}
	for i, rec := range records {
		row := make([]cell, len(columns))
		for j, col := range columns {
			val, ok := rec.Field(col)
			if !ok {
				return fmt.Errorf("%w %q in record %d", ErrUnknownColumn, col, i)
			}
			row[j] = cell{Value: val, Image: col == ImageColumn}
		}
		p.Rows = append(p.Rows, row)
	}
	return r.execute(w, "list", p)
}

// Home writes the landing page with links to every standings view in nav.
func (r *Renderer) Home(w io.Writer, nav standings.Navigation) error {
	return r.execute(w, "home", page{Title: "Home", Nav: nav})
}

func (r *Renderer) execute(w io.Writer, name string, p page) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, p); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
