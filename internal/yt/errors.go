package yt

import (
	"errors"
	"fmt"
	"strings"
)

// Erreurs d'accès à une vidéo. Chaque échec de yt-dlp est ramené à l'une
// d'elles par MapError.
var (
	ErrInvalidURL         = errors.New("invalid URL format")
	ErrNotYouTube         = errors.New("URL is not a YouTube video")
	ErrIncompleteURL      = errors.New("YouTube URL is incomplete")
	ErrVideoUnavailable   = errors.New("YouTube video unavailable")
	ErrPrivateVideo       = errors.New("private video")
	ErrTranscriptNotFound = errors.New("this video doesn't have subtitles available")
	ErrRateLimited        = errors.New("YouTube rate limit in force")
	ErrBotProtection      = errors.New("YouTube requires verification (bot protection)")
	ErrUnmapped           = errors.New("yt-dlp error")
)

// mapping ordonné : le premier motif trouvé l'emporte
var errorPatterns = []struct {
	needles []string
	err     error
}{
	{[]string{"sign in to confirm", "not a bot", "confirm your age"}, ErrBotProtection},
	{[]string{"http error 429", "too many requests", "rate limit"}, ErrRateLimited},
	{[]string{"private video"}, ErrPrivateVideo},
	{[]string{"incomplete youtube id"}, ErrIncompleteURL},
	{[]string{"video unavailable", "has been removed", "no longer available", "account associated with this video has been terminated"}, ErrVideoUnavailable},
	{[]string{"unsupported url"}, ErrNotYouTube},
	{[]string{"is not a valid url"}, ErrInvalidURL},
	{[]string{"no subtitles", "there are no subtitles"}, ErrTranscriptNotFound},
}

// MapError traduit la sortie d'erreur de yt-dlp en erreur typée.
// La première ligne "ERROR:" est conservée comme détail.
func MapError(output string) error {
	detail := firstErrorLine(output)
	lower := strings.ToLower(output)
	for _, p := range errorPatterns {
		for _, n := range p.needles {
			if strings.Contains(lower, n) {
				return &Error{Kind: p.err, Detail: detail}
			}
		}
	}
	return &Error{Kind: ErrUnmapped, Detail: detail}
}

func firstErrorLine(output string) string {
	var first string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "ERROR:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "ERROR:"))
		}
		if first == "" {
			first = line
		}
	}
	return first
}

// Error est une erreur yt-dlp classée, avec le message d'origine.
type Error struct {
	Kind   error
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Kind
}
