// Package ucd guesses the UCD tag for a column name, first from the local
// curated vocabulary and optionally from the CDS ucd-finder service.
package ucd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	rerrors "github.com/waves-survey/ripval/pkg/errors"
	"github.com/waves-survey/ripval/pkg/vocab"
)

// DefaultEndpoint is the CDS ucd-finder suggestion endpoint.
const DefaultEndpoint = "https://cdsweb.u-strasbg.fr/UCD/ucd-finder/suggest"

// Guesser suggests UCD tags for ungoverned column names.
type Guesser struct {
	vocab     *vocab.Vocabulary
	client    *http.Client
	limiter   *rate.Limiter
	endpoint  string
	webLookup bool
}

// Option is a functional option for configuring Guesser instances.
type Option func(*Guesser)

// WithWebLookup enables or disables the CDS fallback lookup.
func WithWebLookup(enabled bool) Option {
	return func(g *Guesser) {
		g.webLookup = enabled
	}
}

// WithHTTPClient overrides the HTTP client used for CDS lookups.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Guesser) {
		g.client = client
	}
}

// WithEndpoint overrides the CDS suggestion endpoint.
func WithEndpoint(endpoint string) Option {
	return func(g *Guesser) {
		g.endpoint = endpoint
	}
}

// New creates a Guesser over the given vocabulary. Web lookups are enabled
// by default and rate limited to one request per second.
func New(v *vocab.Vocabulary, opts ...Option) *Guesser {
	g := &Guesser{
		vocab:     v,
		client:    &http.Client{Timeout: 10 * time.Second},
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
		endpoint:  DefaultEndpoint,
		webLookup: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Guess returns the best UCD tag for the column name: the vocabulary scrape
// wins when it finds anything, otherwise the CDS service is consulted when
// web lookups are enabled. An empty string means no suggestion.
func (g *Guesser) Guess(ctx context.Context, column string) (string, error) {
	if ucd := g.scrape(column); ucd != "" {
		return ucd, nil
	}
	if !g.webLookup {
		return "", nil
	}
	return g.lookupCDS(ctx, column)
}

// scrape collects UCD fragments from exception, protected and filter
// entries matching the column name, de-duplicated in first-seen order.
func (g *Guesser) scrape(column string) string {
	var found []string

	for _, exc := range g.vocab.Exceptions {
		if strings.Contains(column, exc.Name) {
			found = append(found, exc.UCD)
		}
	}
	for _, pw := range g.vocab.Protected {
		if strings.Contains(pw.Name, "_") {
			if strings.Contains(column, pw.Name) {
				found = append(found, pw.UCDs...)
			}
			continue
		}
		for _, token := range strings.Split(column, "_") {
			if token == pw.Name {
				found = append(found, pw.UCDs...)
			}
		}
	}
	for _, f := range g.vocab.Filters {
		if strings.Contains(column, f.Name) {
			found = append(found, f.SecondaryUCD)
		}
	}

	// Entries may themselves be ;-joined composites.
	seen := make(map[string]struct{})
	var unique []string
	for _, fragment := range strings.Split(strings.Join(found, ";"), ";") {
		if fragment == "" {
			continue
		}
		if _, ok := seen[fragment]; ok {
			continue
		}
		seen[fragment] = struct{}{}
		unique = append(unique, fragment)
	}
	return strings.Join(unique, ";")
}

// lookupCDS queries the CDS ucd-finder suggestion service and returns its
// best guess, or an empty string when the service has none.
func (g *Guesser) lookupCDS(ctx context.Context, column string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}

	sanitized := strings.NewReplacer("-", " ", "_", " ", ".", " ").Replace(column)
	reqURL := fmt.Sprintf("%s?d=%s", g.endpoint, url.QueryEscape(sanitized))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", rerrors.Wrap(rerrors.ErrCodeInternal, err, "building cds request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", rerrors.Wrap(rerrors.ErrCodeIO, err, "querying cds ucd-finder")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", rerrors.Newf(rerrors.ErrCodeIO, "cds ucd-finder returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", rerrors.Wrap(rerrors.ErrCodeIO, err, "reading cds response")
	}

	var parsed struct {
		UCD []struct {
			UCD string `json:"ucd"`
		} `json:"ucd"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", rerrors.Wrap(rerrors.ErrCodeIO, err, "decoding cds response")
	}
	if len(parsed.UCD) == 0 {
		return "", nil
	}
	return parsed.UCD[0].UCD, nil
}
