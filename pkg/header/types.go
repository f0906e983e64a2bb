package header

import (
	"time"

	"github.com/google/uuid"
)

const (
	// APIVersion is the schema version stamped on validation results.
	APIVersion = "waves.datacentral.org.au/v1alpha1"
)

// Header identifies a serialized validation result: what kind of result it
// is, which schema version it follows, and which run produced it.
type Header struct {
	Kind       string            `json:"kind" yaml:"kind"`
	APIVersion string            `json:"apiVersion" yaml:"apiVersion"`
	RunID      string            `json:"runId" yaml:"runId"`
	Timestamp  time.Time         `json:"timestamp" yaml:"timestamp"`
	Version    string            `json:"version,omitempty" yaml:"version,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair to the
// Header. If the Metadata map is nil, it will be initialized.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// New creates a Header with a fresh run ID and timestamp.
func New(kind, version string, opts ...Option) Header {
	h := Header{
		Kind:       kind,
		APIVersion: APIVersion,
		RunID:      uuid.New().String(),
		Timestamp:  time.Now().UTC(),
		Version:    version,
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// Init stamps an existing header in place, preserving any metadata.
func (h *Header) Init(kind, version string) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.RunID = uuid.New().String()
	h.Timestamp = time.Now().UTC()
	h.Version = version
}
