package output

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"text/template"
	"time"

	"github.com/google/uuid"

	"github.com/nerdash/nerdash/internal/payload"
	"github.com/nerdash/nerdash/internal/record"
)

// DefaultTitle is the page title used when none is configured.
const DefaultTitle = "NER Dashboard"

// HTMLRenderer writes records as a self-contained HTML dashboard.
type HTMLRenderer struct {
	// Title is shown in the browser tab and the sidebar.
	Title string

	// nowFunc and idFunc are used for testing to fix the header metadata.
	nowFunc func() time.Time
	idFunc  func() string
}

// NewHTMLRenderer returns a renderer with the given title. An empty title
// falls back to DefaultTitle.
func NewHTMLRenderer(title string) *HTMLRenderer {
	if title == "" {
		title = DefaultTitle
	}
	return &HTMLRenderer{Title: title}
}

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
)

// htmlData holds the template data for the dashboard shell.
type htmlData struct {
	Title       string
	GeneratedAt string
	ReportID    string
	Records     int
	Placeholder string
}

// Shell renders the dashboard page with an empty payload region.
func (h *HTMLRenderer) Shell(records int) ([]byte, error) {
	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("dashboard").Delims("[[", "]]").Parse(dashboardTemplate))
	})

	now := time.Now()
	if h.nowFunc != nil {
		now = h.nowFunc()
	}
	idFunc := uuid.NewString
	if h.idFunc != nil {
		idFunc = h.idFunc
	}
	title := h.Title
	if title == "" {
		title = DefaultTitle
	}

	var buf bytes.Buffer
	err := htmlTmpl.Execute(&buf, htmlData{
		Title:       title,
		GeneratedAt: now.UTC().Format("2006-01-02 15:04 UTC"),
		ReportID:    idFunc(),
		Records:     records,
		Placeholder: payload.Placeholder,
	})
	if err != nil {
		return nil, fmt.Errorf("execute html template: %w", err)
	}
	return buf.Bytes(), nil
}

// Render writes the dashboard for res to w. The raw input text, malformed
// lines included, becomes the payload; the page parses it when it loads.
func (h *HTMLRenderer) Render(res *record.Result, w io.Writer) error {
	shell, err := h.Shell(len(res.Records))
	if err != nil {
		return err
	}
	doc, _, err := payload.Splice(shell, payload.Escape(res.Raw))
	if err != nil {
		return fmt.Errorf("embed payload: %w", err)
	}
	if _, err := w.Write(doc); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}
