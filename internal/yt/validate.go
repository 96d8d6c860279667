package yt

import (
	"net/url"
	"regexp"
	"strings"
)

const videoIDLength = 11

var (
	ytRegex    = regexp.MustCompile(`(?i)^https?://(www\.|m\.|music\.)?(youtube\.com/(watch\?|shorts/|live/|embed/)|youtu\.be/)`)
	videoIDRe  = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	schemeLike = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.-]*://`)
)

var youtubeHosts = map[string]bool{
	"youtube.com":       true,
	"www.youtube.com":   true,
	"m.youtube.com":     true,
	"music.youtube.com": true,
	"youtu.be":          true,
}

// IsYouTubeURL indique si s ressemble à une URL de vidéo YouTube.
func IsYouTubeURL(s string) bool {
	return ytRegex.MatchString(strings.TrimSpace(s))
}

// IsURL indique si l'entrée a la forme d'une URL (schéma ou domaine connu),
// par opposition à un chemin de fichier.
func IsURL(s string) bool {
	s = strings.TrimSpace(s)
	if schemeLike.MatchString(s) {
		return true
	}
	lower := strings.ToLower(s)
	for host := range youtubeHosts {
		if strings.HasPrefix(lower, host+"/") {
			return true
		}
	}
	return false
}

// ValidateURL contrôle la structure d'une URL avant de lancer yt-dlp.
func ValidateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrInvalidURL
	}
	if !schemeLike.MatchString(raw) {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ErrInvalidURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidURL
	}
	host := strings.ToLower(u.Hostname())
	if !strings.Contains(host, ".") {
		return ErrInvalidURL
	}
	if !youtubeHosts[host] {
		return ErrNotYouTube
	}

	id, ok := videoID(u)
	if !ok {
		return ErrInvalidURL
	}
	if !videoIDRe.MatchString(id) {
		return ErrInvalidURL
	}
	if len(id) < videoIDLength {
		return ErrIncompleteURL
	}
	return nil
}

// videoID extrait l'identifiant de la vidéo selon la forme de l'URL.
func videoID(u *url.URL) (string, bool) {
	path := strings.Trim(u.Path, "/")
	if strings.EqualFold(u.Hostname(), "youtu.be") {
		return path, path != ""
	}
	if path == "watch" {
		v := u.Query().Get("v")
		return v, v != ""
	}
	for _, prefix := range []string{"shorts/", "live/", "embed/"} {
		if strings.HasPrefix(path, prefix) {
			id := strings.TrimPrefix(path, prefix)
			return id, id != ""
		}
	}
	return "", false
}
