package timecode

import (
	"fmt"
	"strings"
	"time"
)

// FormatPublished transforme "20250717" en "2025-07-17".
// Toute valeur qui n'est pas une date YYYYMMDD valide est renvoyée telle quelle.
func FormatPublished(raw string) string {
	if len(raw) != 8 {
		return raw
	}
	t, err := time.Parse("20060102", raw)
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02")
}

// FormatDuration affiche une durée sous la forme "1h 2m 3s" en omettant les
// composantes nulles. Vide pour une durée nulle ou négative.
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return ""
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	parts := make([]string, 0, 3)
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	if s > 0 {
		parts = append(parts, fmt.Sprintf("%ds", s))
	}
	return strings.Join(parts, " ")
}
