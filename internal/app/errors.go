package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/patrickprogramme/yt2xml/internal/yt"
	"github.com/patrickprogramme/yt2xml/pkg/model"
)

// Erreurs côté application (entrées, fichiers, sortie).
var (
	ErrInvalidInput   = errors.New("input must be a YouTube URL or .txt file")
	ErrFileNotFound   = errors.New("file not found")
	ErrFilePermission = errors.New("permission denied")
	ErrFileEncoding   = errors.New("file is not valid UTF-8")
	ErrWrite          = errors.New("cannot write output")
	ErrYtDlpMissing   = errors.New("yt-dlp unavailable")
)

const helpHint = "\n\nTry: yt2xml --help"

// InputError associe une erreur à l'entrée (URL ou chemin) qui l'a provoquée.
type InputError struct {
	Input string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %v", e.Input, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func inputErr(input string, kind error, cause error) error {
	if cause == nil {
		return &InputError{Input: input, Err: kind}
	}
	return &InputError{Input: input, Err: fmt.Errorf("%w: %w", kind, cause)}
}

// UserMessage traduit err en message lisible, terminé par l'aide.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	input := ""
	var ie *InputError
	if errors.As(err, &ie) {
		input = ie.Input
	}

	var msg string
	switch {
	case errors.Is(err, context.Canceled):
		msg = "❌ Cancelled"
	case errors.Is(err, ErrInvalidInput):
		msg = "❌ Input must be a YouTube URL or .txt file"
		if input != "" {
			msg += ": " + input
		}

	// fichiers
	case errors.Is(err, ErrFileNotFound):
		msg = fmt.Sprintf("❌ We couldn't find your file: %s", input)
	case errors.Is(err, ErrFilePermission):
		msg = fmt.Sprintf("❌ We don't have permission to access: %s", input)
	case errors.Is(err, ErrFileEncoding):
		msg = fmt.Sprintf("❌ Your file is not UTF-8 text: %s", input)
	case errors.Is(err, model.ErrEmptyInput):
		msg = fmt.Sprintf("❌ Your file is empty: %s", input)
	case errors.Is(err, model.ErrInvalidFormat):
		msg = fmt.Sprintf("❌ Wrong format in '%s' - %s", input, reason(err))
	case errors.Is(err, model.ErrInvalidArgument):
		msg = fmt.Sprintf("❌ Invalid value in '%s' - %s", input, reason(err))
	case errors.Is(err, ErrWrite):
		msg = fmt.Sprintf("❌ Cannot write to: %s", input)

	// URL / yt-dlp
	case errors.Is(err, ErrYtDlpMissing):
		msg = "❌ yt-dlp is not available - install it or pass --yt-dlp-path"
	case errors.Is(err, yt.ErrInvalidURL):
		msg = fmt.Sprintf("❌ Invalid YouTube URL format: %s", input)
	case errors.Is(err, yt.ErrNotYouTube):
		msg = fmt.Sprintf("❌ Not a YouTube URL: %s", input)
	case errors.Is(err, yt.ErrIncompleteURL):
		msg = fmt.Sprintf("❌ Incomplete YouTube URL, the video ID is too short: %s", input)
	case errors.Is(err, yt.ErrPrivateVideo):
		msg = fmt.Sprintf("❌ This video is private: %s", input)
	case errors.Is(err, yt.ErrVideoUnavailable):
		msg = fmt.Sprintf("❌ YouTube video not found or unavailable: %s", input)
	case errors.Is(err, yt.ErrTranscriptNotFound):
		msg = fmt.Sprintf("❌ No subtitles available for this video: %s", input)
	case errors.Is(err, yt.ErrRateLimited):
		msg = "❌ YouTube rate limit in force, transcript temporarily unavailable"
	case errors.Is(err, yt.ErrBotProtection):
		msg = "❌ YouTube asked to confirm you're not a bot - set yt_dlp.cookies_file in the config"
	default:
		msg = "❌ " + err.Error()
	}
	return msg + helpHint
}

// reason extrait la raison détaillée d'une erreur de découpage.
func reason(err error) string {
	var te *model.TranscriptError
	if errors.As(err, &te) {
		if te.Input != "" {
			return fmt.Sprintf("%s (%q)", te.Reason, te.Input)
		}
		return te.Reason
	}
	return err.Error()
}
