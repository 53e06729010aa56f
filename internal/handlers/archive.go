package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghhtml "github.com/yuin/goldmark/renderer/html"

	"arsipku/internal/classification"
	"arsipku/internal/contextutil"
	"arsipku/internal/model"
	"arsipku/internal/service"
)

// ArchiveHandler handles HTTP requests for archive records.
type ArchiveHandler struct {
	archives service.ArchiveService
	markdown goldmark.Markdown
	template *template.Template
}

// archivePageData holds template data for the rendered detail page.
type archivePageData struct {
	Archive model.Archive
	Status  string
	Notes   template.HTML
}

// NewArchiveHandler creates a new ArchiveHandler.
func NewArchiveHandler(archives service.ArchiveService) *ArchiveHandler {
	tmpl := template.Must(template.New("archive").Parse(archivePageTemplate))

	return &ArchiveHandler{
		archives: archives,
		markdown: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Table,
				extension.Strikethrough,
				extension.Linkify,
			),
			goldmark.WithRendererOptions(
				ghhtml.WithHardWraps(),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		template: tmpl,
	}
}

// List handles GET /api/archives. With a q or page parameter the
// result is filtered and paginated, otherwise page 1 of everything.
func (h *ArchiveHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 1 {
			writeError(w, http.StatusBadRequest, "Invalid page number")
			return
		}
		page = p
	}

	result, err := h.archives.Search(ctx, r.URL.Query().Get("q"), page)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list archives")
		return
	}
	if result.Items == nil {
		result.Items = []model.Archive{}
	}

	writeJSON(w, http.StatusOK, result)
}

// Get handles GET /api/archives/{id}.
func (h *ArchiveHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	a, err := h.archives.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load archive")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// Create handles POST /api/archives.
func (h *ArchiveHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var draft service.ArchiveDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.archives.Create(ctx, draft)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create archive")
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

// Update handles PUT /api/archives/{id}.
func (h *ArchiveHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var draft service.ArchiveDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.archives.Update(ctx, chi.URLParam(r, "id"), draft)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update archive")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// Delete handles DELETE /api/archives/{id}.
func (h *ArchiveHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.archives.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete archive")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Page handles GET /api/archives/{id}/page, rendering the record and
// its markdown notes as a standalone HTML detail page.
func (h *ArchiveHandler) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	a, err := h.archives.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load archive")
		return
	}

	notesHTML, err := h.renderMarkdown([]byte(a.Notes))
	if err != nil {
		logger.ErrorContext(ctx, "failed to render notes", "id", a.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render page")
		return
	}

	data := archivePageData{
		Archive: a,
		Status:  archiveStatusLabel(a),
		Notes:   template.HTML(notesHTML),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, data); err != nil {
		logger.ErrorContext(ctx, "failed to execute archive template", "id", a.ID, "error", err)
	}
}

func (h *ArchiveHandler) renderMarkdown(content []byte) (string, error) {
	var buf bytes.Buffer
	if err := h.markdown.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

func archiveStatusLabel(a model.Archive) string {
	if a.RetentionDate.IsZero() {
		return ""
	}
	return string(classification.StatusAt(a.RetentionDate, time.Now()))
}

const archivePageTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Archive.Subject}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 820px;
      line-height: 1.7;
      background: #f8fafc;
      color: #0f172a;
    }
    header {
      margin-bottom: 2rem;
      border-bottom: 1px solid #e2e8f0;
      padding-bottom: 1.25rem;
    }
    h1 {
      margin-top: 0;
      font-size: 1.75rem;
    }
    dl {
      display: grid;
      grid-template-columns: 12rem 1fr;
      gap: 0.35rem 1rem;
    }
    dt {
      color: #64748b;
    }
    dd {
      margin: 0;
    }
    article {
      background: #fff;
      border: 1px solid #e2e8f0;
      border-radius: 12px;
      padding: 1.5rem;
      margin-top: 1.5rem;
    }
    .badge {
      display: inline-block;
      padding: 2px 10px;
      border-radius: 999px;
      font-size: 0.85rem;
      background: #e0f2fe;
      color: #0369a1;
    }
    a {
      color: #2563eb;
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Archive.Subject}}</h1>
    {{if .Status}}<span class="badge">{{.Status}}</span>{{end}}
  </header>
  <dl>
    {{if .Archive.DocumentNumber}}<dt>Document number</dt><dd>{{.Archive.DocumentNumber}}</dd>{{end}}
    <dt>Document date</dt><dd>{{.Archive.DocumentDate}}</dd>
    {{if .Archive.Sender}}<dt>Sender</dt><dd>{{.Archive.Sender}}</dd>{{end}}
    {{if .Archive.Recipient}}<dt>Recipient</dt><dd>{{.Archive.Recipient}}</dd>{{end}}
    {{if .Archive.ClassificationCode}}<dt>Classification</dt><dd>{{.Archive.ClassificationCode}}</dd>{{end}}
    <dt>Retention until</dt><dd>{{.Archive.RetentionDate}}</dd>
    {{if .Archive.CloudViewLink}}<dt>File</dt><dd><a href="{{.Archive.CloudViewLink}}">{{.Archive.FileName}}</a></dd>{{end}}
  </dl>
  {{if .Notes}}<article>{{.Notes}}</article>{{end}}
</body>
</html>`
