package captions

import "strings"

// rawJSON3 représente la structure "brute" telle qu'on la récupère depuis YouTube json3.
type rawJSON3 struct {
	WireMagic string     `json:"wireMagic,omitempty"`
	Events    []rawEvent `json:"events"`
}

type rawEvent struct {
	TStartMs    *int64   `json:"tStartMs,omitempty"`
	DDurationMs *int64   `json:"dDurationMs,omitempty"`
	AAppend     *int     `json:"aAppend,omitempty"`
	Segs        []rawSeg `json:"segs,omitempty"`
	// On ignore volontairement d'autres champs (wpWinPosId, wWinId, etc.)
}

type rawSeg struct {
	Utf8      *string `json:"utf8,omitempty"`
	TOffsetMs *int64  `json:"tOffsetMs,omitempty"`
}

// startMs retourne tStartMs, 0 si absent.
func (e rawEvent) startMs() int64 {
	if e.TStartMs == nil {
		return 0
	}
	return *e.TStartMs
}

// text concatène les fragments utf8 de l'event, remplace les retours à la
// ligne d'affichage par des espaces et retire les espaces de bord.
func (e rawEvent) text() string {
	var b strings.Builder
	for _, s := range e.Segs {
		if s.Utf8 != nil {
			b.WriteString(*s.Utf8)
		}
	}
	return strings.ReplaceAll(strings.TrimSpace(b.String()), "\n", " ")
}
