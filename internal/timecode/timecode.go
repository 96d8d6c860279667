// Package timecode convertit les horodatages texte ("M:SS", "H:MM:SS") en
// secondes et inversement.
package timecode

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/patrickprogramme/yt2xml/pkg/model"
)

// Pattern est la grammaire des horodatages. Lecture seule après init.
var Pattern = regexp.MustCompile(`^(\d{1,2}:[0-5]\d(:[0-5]\d)?|\d{3}:[0-5]\d:[0-5]\d)$`)

// IsTimestamp indique si la ligne (sans ses espaces de bord) est un horodatage.
func IsTimestamp(s string) bool {
	return Pattern.MatchString(strings.TrimSpace(s))
}

// Parse convertit "M:SS", "MM:SS" ou "H:MM:SS" en secondes.
func Parse(s string) (float64, error) {
	clean := strings.TrimSpace(s)
	if !Pattern.MatchString(clean) {
		return 0, model.InvalidFormat("invalid timestamp format", s)
	}

	parts := strings.Split(clean, ":")
	var h, m, sec int
	var err error
	switch len(parts) {
	case 2:
		if m, err = strconv.Atoi(parts[0]); err != nil {
			return 0, model.InvalidFormat("invalid timestamp format", s)
		}
		sec, err = strconv.Atoi(parts[1])
	case 3:
		if h, err = strconv.Atoi(parts[0]); err != nil {
			return 0, model.InvalidFormat("invalid timestamp format", s)
		}
		if m, err = strconv.Atoi(parts[1]); err != nil {
			return 0, model.InvalidFormat("invalid timestamp format", s)
		}
		sec, err = strconv.Atoi(parts[2])
	default:
		return 0, model.InvalidFormat("invalid timestamp format", s)
	}
	if err != nil {
		return 0, model.InvalidFormat("invalid timestamp format", s)
	}

	return float64(h*3600 + m*60 + sec), nil
}

// Format convertit des secondes en horodatage, arrondi à la seconde inférieure.
// "H:MM:SS" dès qu'il y a au moins une heure, sinon "M:SS".
func Format(seconds float64) (string, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "", model.InvalidArgument(fmt.Sprintf("timestamp must be finite, got %v", seconds))
	}
	if seconds < 0 {
		return "", model.InvalidArgument(fmt.Sprintf("timestamp must be non-negative, got %v", seconds))
	}

	total := int64(math.Floor(seconds))
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s), nil
	}
	return fmt.Sprintf("%d:%02d", m, s), nil
}

// MustFormat est Format pour des valeurs déjà validées (timestamps du modèle).
func MustFormat(seconds float64) string {
	out, err := Format(seconds)
	if err != nil {
		panic(err)
	}
	return out
}

// FromMilliseconds convertit des millisecondes (json3) en secondes.
func FromMilliseconds(ms int64) float64 {
	return float64(ms) / 1000
}
