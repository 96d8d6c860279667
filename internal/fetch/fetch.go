// Package fetch télécharge des ressources HTTP bornées en taille et en durée
// (pistes de sous-titres json3).
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultTimeout   = 15 * time.Second
	DefaultMaxBytes  = 10_000_000
	DefaultUserAgent = "yt2xml/1.0"
)

// Client est le client HTTP utilisé par le paquet.
var Client = &http.Client{}

var (
	ErrStatus   = errors.New("unexpected HTTP status")
	ErrTooLarge = errors.New("response body too large")
)

// StatusError porte le code HTTP d'une réponse hors 2xx.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string { return fmt.Sprintf("%s %s", ErrStatus, e.Status) }

func (e *StatusError) Is(target error) bool { return target == ErrStatus }

// TooManyRequests indique une limitation de débit côté serveur.
func (e *StatusError) TooManyRequests() bool { return e.Code == http.StatusTooManyRequests }

// Limits borne une requête. Les valeurs <= 0 prennent les défauts du paquet.
type Limits struct {
	Timeout  time.Duration
	MaxBytes int64
}

func (l Limits) withDefaults() Limits {
	if l.Timeout <= 0 {
		l.Timeout = DefaultTimeout
	}
	if l.MaxBytes <= 0 {
		l.MaxBytes = DefaultMaxBytes
	}
	return l
}

// Bytes télécharge rawURL en mémoire dans les limites données.
func Bytes(ctx context.Context, rawURL string, lim Limits) ([]byte, error) {
	lim = lim.withDefaults()

	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, fmt.Errorf("fetch: invalid url %q: %w", rawURL, err)
	}

	ctx, cancel := context.WithTimeout(ctx, lim.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: new request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch: %w", &StatusError{Code: resp.StatusCode, Status: resp.Status})
	}
	if resp.ContentLength > lim.MaxBytes {
		return nil, fmt.Errorf("fetch: %w: content-length %d exceeds limit %d", ErrTooLarge, resp.ContentLength, lim.MaxBytes)
	}

	// +1 pour détecter le dépassement
	data, err := io.ReadAll(io.LimitReader(resp.Body, lim.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}
	if int64(len(data)) > lim.MaxBytes {
		return nil, fmt.Errorf("fetch: %w (>%d bytes)", ErrTooLarge, lim.MaxBytes)
	}
	return data, nil
}
