package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/patrickprogramme/yt2xml/internal/captions"
	"github.com/patrickprogramme/yt2xml/internal/chapters"
	"github.com/patrickprogramme/yt2xml/internal/fetch"
	"github.com/patrickprogramme/yt2xml/internal/fsutil"
	"github.com/patrickprogramme/yt2xml/internal/yt"
	"github.com/patrickprogramme/yt2xml/pkg/model"
)

// InputKind est la nature d'une entrée utilisateur.
type InputKind int

const (
	InputURL InputKind = iota + 1
	InputFile
)

func (k InputKind) String() string {
	switch k {
	case InputURL:
		return "url"
	case InputFile:
		return "file"
	default:
		return "unknown"
	}
}

// Classify route une entrée : forme d'URL -> URL, extension .txt -> fichier.
func Classify(input string) (InputKind, error) {
	s := strings.TrimSpace(input)
	switch {
	case yt.IsURL(s):
		return InputURL, nil
	case fsutil.HasTxtExtension(s):
		return InputFile, nil
	default:
		return 0, inputErr(input, ErrInvalidInput, nil)
	}
}

// ConvertFile lit un transcript texte et le découpe en chapitres.
func ConvertFile(path string) (model.TranscriptDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return model.TranscriptDocument{}, inputErr(path, ErrFileNotFound, err)
		case errors.Is(err, fs.ErrPermission):
			return model.TranscriptDocument{}, inputErr(path, ErrFilePermission, err)
		default:
			return model.TranscriptDocument{}, &InputError{Input: path, Err: err}
		}
	}
	if !utf8.Valid(data) {
		return model.TranscriptDocument{}, inputErr(path, ErrFileEncoding, nil)
	}

	doc, err := chapters.Parse(string(data))
	if err != nil {
		return model.TranscriptDocument{}, &InputError{Input: path, Err: err}
	}
	return doc, nil
}

// ConvertURL récupère métadonnées et sous-titres d'une vidéo et construit le document.
func (a *App) ConvertURL(ctx context.Context, url string) (model.TranscriptDocument, error) {
	var empty model.TranscriptDocument
	url = strings.TrimSpace(url)

	if err := yt.ValidateURL(url); err != nil {
		return empty, &InputError{Input: url, Err: err}
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return empty, &InputError{Input: url, Err: err}
	}

	client, err := a.client(ctx)
	if err != nil {
		return empty, err
	}

	// Extraction des métadonnées
	exCtx, exCancel := context.WithTimeout(ctx, defaultExtractTimeout)
	defer exCancel()

	raw, err := client.ExtractRaw(exCtx, url)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return empty, ctxErr
		}
		return empty, &InputError{Input: url, Err: err}
	}

	meta, err := yt.ParseYTDLP(raw.JSON)
	if err != nil {
		return empty, &InputError{Input: url, Err: fmt.Errorf("parse ytdlp: %w", err)}
	}
	a.log.Info("%s", meta)
	a.log.Debug("%s", meta.Pretty())

	if a.cfg.SaveRawJSON {
		if err := a.saveRawJSON(raw, meta); err != nil {
			a.log.Warn("sauvegarde du json yt-dlp : %v", err)
		}
	}

	// téléchargement des sous-titres
	timeout := time.Duration(a.cfg.FetchTimeoutSeconds) * time.Second
	dl, err := captions.DownloadFromMeta(ctx, meta, a.cfg.PreferredLanguages, timeout, a.cfg.MaxTranscriptBytes)
	if err != nil {
		if errors.Is(err, captions.ErrNoSubtitle) {
			return empty, &InputError{Input: url, Err: yt.ErrTranscriptNotFound}
		}
		var se *fetch.StatusError
		if errors.As(err, &se) && se.TooManyRequests() {
			return empty, &InputError{Input: url, Err: fmt.Errorf("%w: %w", yt.ErrRateLimited, err)}
		}
		return empty, &InputError{Input: url, Err: err}
	}
	a.log.Info("sous-titres : %s", dl)

	if a.cfg.SaveRawSubs {
		if err := SaveSubtitleDownload(dl, a.cfg.OutputDir); err != nil {
			a.log.Warn("%v", err)
		}
	}

	doc, err := captions.BuildDocument(meta, url, dl.Data)
	if err != nil {
		return empty, &InputError{Input: url, Err: err}
	}
	return doc, nil
}

func (a *App) saveRawJSON(raw *yt.ExtractedRaw, meta *model.Meta) error {
	pretty, err := raw.PrettyJSON()
	if err != nil {
		return err
	}
	name := fsutil.Slug(meta.VideoMetadata("").Title) + ".info.json"
	return fsutil.WriteFileAtomic(filepath.Join(a.cfg.OutputDir, name), pretty, filePerm)
}
