package updater

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/go-github/v68/github"
)

const (
	ytDlpOwner = "yt-dlp"
	ytDlpRepo  = "yt-dlp"
)

var ErrIncompleteRelease = errors.New("incomplete yt-dlp release")

// ReleaseGetter est la partie de l'API GitHub utilisée ici
// (satisfaite par *github.RepositoriesService).
type ReleaseGetter interface {
	GetLatestRelease(ctx context.Context, owner, repo string) (*github.RepositoryRelease, *github.Response, error)
}

// NewGetter renvoie un client GitHub anonyme.
func NewGetter() ReleaseGetter {
	return github.NewClient(nil).Repositories
}

// GetLatestYtDlpRelease récupère la dernière release de yt-dlp et indexe ses exécutables par système.
func GetLatestYtDlpRelease(ctx context.Context, rg ReleaseGetter) (*Release, error) {
	rel, _, err := rg.GetLatestRelease(ctx, ytDlpOwner, ytDlpRepo)
	if err != nil {
		return nil, fmt.Errorf("requête GitHub : %w", err)
	}

	out := &Release{
		Tag:         rel.GetTagName(),
		Name:        rel.GetName(),
		PublishedAt: rel.GetPublishedAt().Time,
		PageURL:     rel.GetHTMLURL(),
		Assets:      make(map[string]Asset, len(assetNames)),
	}

	bySystem := make(map[string]string, len(assetNames))
	for goos, name := range assetNames {
		bySystem[name] = goos
	}
	for _, a := range rel.Assets {
		goos, ok := bySystem[a.GetName()]
		if !ok {
			continue
		}
		out.Assets[goos] = Asset{
			Name:        a.GetName(),
			URL:         a.GetBrowserDownloadURL(),
			ContentType: a.GetContentType(),
			Size:        a.GetSize(),
		}
	}

	if out.Tag == "" {
		return nil, fmt.Errorf("%w: release sans tag", ErrIncompleteRelease)
	}
	// windows et linux sont toujours publiés, macos est optionnel
	for _, goos := range []string{"windows", "linux"} {
		if _, ok := out.AssetFor(goos); !ok {
			return nil, fmt.Errorf("%w: asset %s introuvable", ErrIncompleteRelease, goos)
		}
	}

	return out, nil
}
