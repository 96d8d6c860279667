package chapters

import (
	"github.com/patrickprogramme/yt2xml/internal/timecode"
	"github.com/patrickprogramme/yt2xml/pkg/model"
)

const minLines = 3

// Validate applique les contrôles de structure dans l'ordre, la première
// erreur l'emporte. lines doit déjà être normalisé.
func Validate(lines []string) error {
	if len(lines) == 0 {
		return model.EmptyInput()
	}
	if len(lines) < minLines {
		return model.InvalidFormat("need at least title, timestamp, text", "")
	}
	if timecode.IsTimestamp(lines[0]) {
		return model.InvalidFormat("first line must be a chapter title, not a timestamp", lines[0])
	}
	if !timecode.IsTimestamp(lines[1]) {
		return model.InvalidFormat("second line must be a timestamp", lines[1])
	}
	if timecode.IsTimestamp(lines[2]) {
		return model.InvalidFormat("third line must be text, not a timestamp", lines[2])
	}
	return nil
}
