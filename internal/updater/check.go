package updater

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// UpdateCheck contient le résultat de la comparaison
type UpdateCheck struct {
	Current  string   // version locale
	Latest   *Release // release distante
	UpToDate bool
}

// CheckYtDlpUpdate compare la version locale et la version GitHub.
func CheckYtDlpUpdate(ctx context.Context, rg ReleaseGetter, localVer string) (*UpdateCheck, error) {
	latest, err := GetLatestYtDlpRelease(ctx, rg)
	if err != nil {
		return nil, fmt.Errorf("impossible de récupérer la release GitHub : %w", err)
	}

	local := strings.TrimSpace(localVer)
	return &UpdateCheck{
		Current:  local,
		Latest:   latest,
		UpToDate: compareVersions(local, latest.Tag) >= 0,
	}, nil
}

// Link renvoie l'URL de téléchargement pour goos, l'exécutable linux
// à défaut, puis la page de la release.
func (u UpdateCheck) Link(goos string) string {
	if a, ok := u.Latest.AssetFor(goos); ok {
		return a.URL
	}
	if a, ok := u.Latest.AssetFor("linux"); ok {
		return a.URL
	}
	if u.Latest != nil {
		return u.Latest.PageURL
	}
	return ""
}

// compareVersions compare deux versions datées de yt-dlp ("2025.09.26", "2025.09.26.123456").
// Les segments non numériques sont comparés comme des chaînes.
func compareVersions(a, b string) int {
	as := strings.Split(strings.TrimPrefix(a, "v"), ".")
	bs := strings.Split(strings.TrimPrefix(b, "v"), ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		var x, y string
		if i < len(as) {
			x = as[i]
		}
		if i < len(bs) {
			y = bs[i]
		}
		if c := compareSegment(x, y); c != 0 {
			return c
		}
	}
	return 0
}

func compareSegment(x, y string) int {
	xi, xerr := strconv.Atoi(x)
	yi, yerr := strconv.Atoi(y)
	switch {
	case x == y:
		return 0
	case x == "":
		return -1
	case y == "":
		return 1
	case xerr == nil && yerr == nil:
		if xi < yi {
			return -1
		}
		if xi > yi {
			return 1
		}
		return 0
	}
	return strings.Compare(x, y)
}
