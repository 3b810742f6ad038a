package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rahulsuresh2569/CSV-Plotter/internal/core"
	"github.com/rahulsuresh2569/CSV-Plotter/internal/logging"
)

// multipartMemoryLimit caps how much of a multipart body is buffered in
// memory before spilling to disk.
const multipartMemoryLimit = 10 << 20 // 10 MB

// parseResponse is the success payload for POST /api/parse. Preview is a
// leading slice of Rows for table rendering; Rows carries the complete
// converted data for plotting.
type parseResponse struct {
	Profile  core.FormatProfile      `json:"profile"`
	Columns  []core.ColumnDescriptor `json:"columns"`
	Rows     [][]any                 `json:"rows"`
	Preview  [][]any                 `json:"preview"`
	Warnings []core.Warning          `json:"warnings"`
	Metadata core.Metadata           `json:"metadata"`
}

// handleHealth reports service liveness and parse slot availability.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":          "ok",
		"active_parses":   s.limiter.ActiveCount(),
		"available_slots": s.limiter.Available(),
	})
}

// handleParse accepts a multipart CSV upload, runs format inference, and
// returns the typed table. Format overrides arrive as form fields
// (delimiter, decimal, has_header), each defaulting to "auto".
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if err := s.limiter.Acquire(r.Context()); err != nil {
		status := http.StatusServiceUnavailable
		if !errors.Is(err, core.ErrTooManyParses) {
			status = http.StatusRequestTimeout
		}
		s.respondError(w, r, err, status)
		return
	}
	defer s.limiter.Release()

	// Reject oversized bodies before buffering them. The slack over
	// MaxFileSize covers multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize+multipartMemoryLimit)
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.respondError(w, r, core.ErrFileTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		s.respondError(w, r, fmt.Errorf("no file provided: %w", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, r, fmt.Errorf("no file provided: %w", err), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, r, fmt.Errorf("reading upload: %w", err), http.StatusBadRequest)
		return
	}

	text, err := core.AcceptText(data, s.cfg.Upload.MaxFileSize)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, core.ErrFileTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.respondError(w, r, err, status)
		return
	}

	opts, err := optionsFromForm(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	opts.SourceName = header.Filename

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Upload.Timeout)
	defer cancel()

	logging.WithFields(ctx, "file", header.Filename, "size", len(data)).
		Debug("parse request accepted")

	table, err := core.Parse(ctx, text, opts)
	if err != nil {
		if _, ok := core.AsParseError(err); ok {
			s.respondError(w, r, err, http.StatusUnprocessableEntity)
			return
		}
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, parseResponse{
		Profile:  table.Profile,
		Columns:  table.Columns,
		Rows:     table.Rows,
		Preview:  table.Preview(s.previewRows(r)),
		Warnings: table.Warnings,
		Metadata: table.Metadata,
	})
}

// previewRows returns the requested preview length, falling back to the
// configured default when absent or unparseable.
func (s *Server) previewRows(r *http.Request) int {
	if raw := r.FormValue("preview_rows"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			return n
		}
	}
	return s.cfg.Upload.PreviewRows
}

// optionsFromForm reads the format override fields. Every field accepts
// "auto" (or absence) to mean automatic detection; anything else must be
// one of the documented values.
func optionsFromForm(r *http.Request) (core.Options, error) {
	var opts core.Options

	switch v := strings.ToLower(strings.TrimSpace(r.FormValue("delimiter"))); v {
	case "", "auto":
	case "tab", "semicolon", "comma":
		d := core.Delimiter(v)
		opts.Delimiter = &d
	default:
		return opts, fmt.Errorf("invalid option: delimiter %q", v)
	}

	switch v := strings.ToLower(strings.TrimSpace(r.FormValue("decimal"))); v {
	case "", "auto":
	case "dot", "comma":
		dec := core.DecimalSeparator(v)
		opts.DecimalSeparator = &dec
	default:
		return opts, fmt.Errorf("invalid option: decimal %q", v)
	}

	switch v := strings.ToLower(strings.TrimSpace(r.FormValue("has_header"))); v {
	case "", "auto":
	case "true", "false":
		h := v == "true"
		opts.HasHeader = &h
	default:
		return opts, fmt.Errorf("invalid option: has_header %q", v)
	}

	return opts, nil
}
