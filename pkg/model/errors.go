package model

import (
	"errors"
	"fmt"
)

// Erreurs de base du découpage. Toujours fatales : une même entrée donne
// toujours la même erreur.
var (
	ErrEmptyInput      = errors.New("empty input")
	ErrInvalidFormat   = errors.New("invalid transcript format")
	ErrInvalidArgument = errors.New("invalid argument")
)

// TranscriptError porte la raison détaillée d'un échec.
// Kind vaut l'une des erreurs sentinelles ci-dessus.
type TranscriptError struct {
	Kind   error
	Reason string
	Input  string // ligne ou valeur fautive, peut être vide
}

func (e *TranscriptError) Error() string {
	switch {
	case e.Reason == "":
		return e.Kind.Error()
	case e.Input == "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	default:
		return fmt.Sprintf("%s: %s: %q", e.Kind, e.Reason, e.Input)
	}
}

func (e *TranscriptError) Unwrap() error {
	return e.Kind
}

// EmptyInput signale une entrée vide après normalisation.
func EmptyInput() error {
	return &TranscriptError{Kind: ErrEmptyInput, Reason: "cannot parse an empty transcript"}
}

// InvalidFormat signale une entrée qui ne respecte pas la structure attendue.
func InvalidFormat(reason, input string) error {
	return &TranscriptError{Kind: ErrInvalidFormat, Reason: reason, Input: input}
}

// InvalidArgument signale une valeur numérique hors domaine.
func InvalidArgument(reason string) error {
	return &TranscriptError{Kind: ErrInvalidArgument, Reason: reason}
}
