// Package clipboard enveloppe le presse-papiers système derrière un backend
// remplaçable (les tests utilisent Memory).
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrEmptyText est retourné quand on tente de copier une chaîne vide.
var ErrEmptyText = errors.New("le texte à copier ne peut pas être vide")

// Backend est un presse-papiers texte.
type Backend interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type system struct{}

func (system) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (system) WriteAll(text string) error { return clipboard.WriteAll(text) }

var (
	mu      sync.RWMutex
	backend Backend = system{}
)

// SetBackend remplace le backend courant et renvoie une fonction de restauration.
func SetBackend(b Backend) (restore func()) {
	mu.Lock()
	prev := backend
	backend = b
	mu.Unlock()
	return func() {
		mu.Lock()
		backend = prev
		mu.Unlock()
	}
}

func current() Backend {
	mu.RLock()
	defer mu.RUnlock()
	return backend
}

// Unsupported indique si le presse-papiers système est indisponible
// (pas de xclip/xsel/wl-clipboard sous Linux par exemple).
func Unsupported() bool {
	if _, ok := current().(system); ok {
		return clipboard.Unsupported
	}
	return false
}

// ReadAll lit le contenu texte du presse-papier.
func ReadAll() (string, error) {
	return current().ReadAll()
}

// WriteAll écrit une chaîne de caractères dans le presse-papier.
func WriteAll(text string) error {
	if text == "" {
		return ErrEmptyText
	}
	return current().WriteAll(text)
}

// Equals vérifie si le contenu actuel du presse-papier est strictement égal à text.
// En cas d'erreur de lecture, retourne false.
func Equals(text string) bool {
	got, err := ReadAll()
	if err != nil {
		return false
	}
	return got == text
}

// Memory est un presse-papiers en mémoire.
type Memory struct {
	mu   sync.Mutex
	text string
	Err  error
}

func (m *Memory) ReadAll() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	return m.text, nil
}

func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	return nil
}
