package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// maxFormBytes bounds inbound form bodies.
const maxFormBytes = 64 << 10

var errUnsupportedBody = errors.New("unsupported request body")

// decodeFields reads form-encoded or JSON bodies into a flat field map. Only
// string values are kept.
func decodeFields(w http.ResponseWriter, r *http.Request) (map[string]string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode json body: %w", err)
		}
		fields := make(map[string]string, len(raw))
		for k, v := range raw {
			if s, ok := v.(string); ok {
				fields[k] = s
			}
		}
		return fields, nil

	case "application/x-www-form-urlencoded", "multipart/form-data", "":
		if mediaType == "multipart/form-data" {
			if err := r.ParseMultipartForm(maxFormBytes); err != nil {
				return nil, fmt.Errorf("parse multipart form: %w", err)
			}
		} else if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
		fields := make(map[string]string, len(r.PostForm))
		for k := range r.PostForm {
			fields[k] = r.PostForm.Get(k)
		}
		return fields, nil
	}

	return nil, errUnsupportedBody
}

// wantsHTML reports whether the caller is a browser form post rather than an
// API client.
func wantsHTML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type view interface {
	Render(w io.Writer) error
}

func writeHTML(w http.ResponseWriter, status int, v view) error {
	var buf bytes.Buffer
	if err := v.Render(&buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
