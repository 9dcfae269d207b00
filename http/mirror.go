// Package http provides HTTP-based clients for the remote save endpoint
// and the static library documents.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/mesa"
)

// DefaultSaveURL is where the local companion server listens.
const DefaultSaveURL = "http://localhost:3001"

// PlaceholderTitle is substituted when a pushed project has no title.
const PlaceholderTitle = "Sem título"

// DefaultRequestTimeout is the default timeout for HTTP requests.
const DefaultRequestTimeout = 10 * time.Second

// Ensure Mirror implements mesa.RemoteMirror at compile time.
var _ mesa.RemoteMirror = (*Mirror)(nil)

// Mirror pushes project snapshots to the remote save endpoint.
type Mirror struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
}

// MirrorOption configures a Mirror.
type MirrorOption func(*Mirror)

// WithMirrorTimeout sets the timeout for save requests.
// Defaults to DefaultRequestTimeout (10s) if not specified.
func WithMirrorTimeout(d time.Duration) MirrorOption {
	return func(m *Mirror) {
		m.timeout = d
	}
}

// NewMirror creates a new Mirror targeting baseURL. An empty baseURL
// falls back to DefaultSaveURL.
func NewMirror(baseURL string, opts ...MirrorOption) *Mirror {
	if baseURL == "" {
		baseURL = DefaultSaveURL
	}
	m := &Mirror{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.client = &http.Client{
		Timeout: m.timeout,
	}

	return m
}

// Push sends title and content to the remote store. Content is
// required; an empty title is replaced by PlaceholderTitle. A transport
// failure is reported as an unavailable service, a rejection carries
// the server's own error message.
func (m *Mirror) Push(ctx context.Context, title, content string) (*mesa.SaveRecord, error) {
	if strings.TrimSpace(content) == "" {
		return nil, mesa.Errorf(mesa.EINVALID, "Não é possível salvar um escrito vazio.")
	}
	if strings.TrimSpace(title) == "" {
		title = PlaceholderTitle
	}

	body, err := json.Marshal(map[string]string{
		"title":   title,
		"content": content,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/api/save", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, mesa.Errorf(mesa.EUNAVAILABLE, "Erro de conexão com o servidor local.")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, rejectionError(resp)
	}

	var record mesa.SaveRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, mesa.Errorf(mesa.EINTERNAL, "malformed save response")
	}
	return &record, nil
}

// rejectionError converts a non-created response into an error carrying
// the server's message when one is present.
func rejectionError(resp *http.Response) error {
	msg := "Erro desconhecido"
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}

	code := mesa.EINTERNAL
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		code = mesa.EINVALID
	}
	return mesa.Errorf(code, "Erro ao salvar: %s", msg)
}
