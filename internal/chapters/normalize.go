// Package chapters découpe un transcript texte (titre / horodatage / texte)
// en chapitres, sans aucune entrée-sortie.
package chapters

import (
	"strings"

	"github.com/patrickprogramme/yt2xml/internal/timecode"
)

// Normalize découpe le texte brut en lignes, retire les lignes blanches et
// réduit chaque suite d'espaces à un seul espace.
func Normalize(raw string) []string {
	raw = strings.TrimPrefix(raw, "\ufeff")
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	out := make([]string, 0, strings.Count(raw, "\n")+1)
	for _, line := range strings.Split(raw, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		out = append(out, strings.Join(fields, " "))
	}
	return out
}

// TimestampIndices renvoie les index (croissants) des lignes horodatées.
func TimestampIndices(lines []string) []int {
	var idx []int
	for i, l := range lines {
		if timecode.IsTimestamp(l) {
			idx = append(idx, i)
		}
	}
	return idx
}
