package model

import (
	"fmt"
	"math"
)

// VideoMetadata regroupe les informations de la vidéo source.
// Tous les champs restent vides quand le document vient d'un fichier texte.
type VideoMetadata struct {
	Title     string
	Published string // YYYYMMDD ou ""
	Duration  int    // secondes
	URL       string
}

// IsZero indique l'absence totale de métadonnées.
func (v VideoMetadata) IsZero() bool {
	return v == VideoMetadata{}
}

// TranscriptLine est une ligne horodatée du transcript.
type TranscriptLine struct {
	Timestamp float64 // secondes
	Text      string
}

// EndTime est la borne haute (exclue) d'un chapitre : soit une valeur en
// secondes, soit non bornée pour le dernier chapitre.
type EndTime struct {
	seconds float64
	bounded bool
}

// Bounded construit une borne finie.
func Bounded(seconds float64) EndTime {
	return EndTime{seconds: seconds, bounded: true}
}

// Unbounded construit la borne du dernier chapitre.
func Unbounded() EndTime {
	return EndTime{}
}

func (e EndTime) IsUnbounded() bool {
	return !e.bounded
}

// Seconds retourne la borne et false si elle est non bornée.
func (e EndTime) Seconds() (float64, bool) {
	return e.seconds, e.bounded
}

// After indique si ts est strictement avant la borne.
func (e EndTime) After(ts float64) bool {
	return !e.bounded || ts < e.seconds
}

func (e EndTime) String() string {
	if !e.bounded {
		return "∞"
	}
	return fmt.Sprintf("%g", e.seconds)
}

// Chapter regroupe les lignes d'un intervalle [Start, End).
type Chapter struct {
	Title string
	Start float64
	End   EndTime
	Lines []TranscriptLine
}

// Contains indique si ts appartient à l'intervalle du chapitre.
func (c Chapter) Contains(ts float64) bool {
	return c.Start <= ts && c.End.After(ts)
}

// Duration retourne End-Start, false pour le dernier chapitre non borné.
func (c Chapter) Duration() (float64, bool) {
	end, ok := c.End.Seconds()
	if !ok {
		return math.Inf(1), false
	}
	return end - c.Start, true
}

// TranscriptDocument est le résultat complet d'une conversion.
type TranscriptDocument struct {
	Metadata VideoMetadata
	Chapters []Chapter
}

// LineCount compte toutes les lignes, tous chapitres confondus.
func (d TranscriptDocument) LineCount() int {
	n := 0
	for _, c := range d.Chapters {
		n += len(c.Lines)
	}
	return n
}
