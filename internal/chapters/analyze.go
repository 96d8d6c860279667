package chapters

import (
	"sort"

	"github.com/patrickprogramme/yt2xml/internal/timecode"
)

// DetectedChapter est un titre repéré par l'analyse de structure.
type DetectedChapter struct {
	Line      int // numéro de ligne (base 1) dans le texte normalisé
	Title     string
	Timestamp string // horodatage brut qui ouvre le chapitre
}

// GapCount est le nombre d'occurrences d'un écart donné entre deux horodatages.
type GapCount struct {
	Lines     int
	Instances int
}

// Analysis décrit la structure d'un transcript sans le valider.
type Analysis struct {
	TotalLines int
	Timestamps int
	Gaps       []int // lignes entre horodatages consécutifs, dans l'ordre
	Chapters   []DetectedChapter
}

// Analyze calcule les statistiques de structure d'un transcript.
// Contrairement à Parse, elle n'échoue jamais.
func Analyze(raw string) Analysis {
	lines := Normalize(raw)
	ts := TimestampIndices(lines)

	a := Analysis{
		TotalLines: len(lines),
		Timestamps: len(ts),
	}
	for i := 0; i+1 < len(ts); i++ {
		a.Gaps = append(a.Gaps, ts[i+1]-ts[i]-1)
	}

	if len(lines) > 0 && !timecode.IsTimestamp(lines[0]) && len(ts) > 0 {
		a.Chapters = append(a.Chapters, DetectedChapter{Line: 1, Title: lines[0], Timestamp: lines[ts[0]]})
	}
	for i, gap := range a.Gaps {
		if gap != chapterGap {
			continue
		}
		next := ts[i+1]
		a.Chapters = append(a.Chapters, DetectedChapter{
			Line:      next,
			Title:     lines[next-1],
			Timestamp: lines[next],
		})
	}
	return a
}

// Pairs est le nombre de paires d'horodatages consécutifs analysées.
func (a Analysis) Pairs() int {
	return len(a.Gaps)
}

// Distribution regroupe les écarts par taille, triés par taille croissante.
func (a Analysis) Distribution() []GapCount {
	counts := make(map[int]int)
	for _, g := range a.Gaps {
		counts[g]++
	}
	out := make([]GapCount, 0, len(counts))
	for lines, n := range counts {
		out = append(out, GapCount{Lines: lines, Instances: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Lines < out[j].Lines })
	return out
}

// Unexpected renvoie les tailles d'écart autres que 1 et 2, triées.
func (a Analysis) Unexpected() []int {
	var out []int
	for _, gc := range a.Distribution() {
		if gc.Lines != 1 && gc.Lines != chapterGap {
			out = append(out, gc.Lines)
		}
	}
	return out
}

// Verified vaut true si seuls des écarts de 1 ou 2 lignes sont présents.
func (a Analysis) Verified() bool {
	return len(a.Unexpected()) == 0
}
