// Package logger écrit un journal horodaté dans un fichier et, en mode
// verbeux, recopie les messages sur la sortie d'erreur.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level est le niveau de sévérité d'un message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARNING"
	default:
		return "ERROR"
	}
}

// ParseLevel lit "debug", "info", "warn"/"warning" ou "error". Défaut : info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

const timeLayout = "2006-01-02 15:04:05"

var (
	mu      sync.RWMutex
	level             = LevelInfo
	output  io.Writer = io.Discard
	console io.Writer = os.Stderr
	verbose bool
	runID   string
	now     = time.Now
)

// Init ouvre (en ajout) le fichier journal et fixe le niveau minimal.
// La fonction retournée ferme le fichier.
func Init(path string, lvl Level) (func() error, error) {
	if path == "" {
		SetLevel(lvl)
		return func() error { return nil }, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("création du dossier de log %s : %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("ouverture du fichier de log %s : %w", path, err)
	}

	mu.Lock()
	output = f
	level = lvl
	mu.Unlock()

	return func() error {
		mu.Lock()
		output = io.Discard
		mu.Unlock()
		return f.Close()
	}, nil
}

// SetOutput remplace la destination du journal. Utile pour les tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// SetConsole remplace la sortie console du mode verbeux.
func SetConsole(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	console = w
}

func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// SetVerbose recopie tous les messages sur la console.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetRunID préfixe chaque message par l'identifiant d'exécution.
func SetRunID(id string) {
	mu.Lock()
	defer mu.Unlock()
	runID = id
}

// Logger est un journal nommé par composant.
type Logger struct {
	name string
}

// For retourne le journal du composant name.
func For(name string) Logger {
	return Logger{name: name}
}

func (l Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

func (l Logger) log(lvl Level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()

	msg := fmt.Sprintf(format, args...)
	if runID != "" {
		msg = "[" + runID + "] " + msg
	}
	if lvl >= level {
		fmt.Fprintf(output, "%s - %s - %s - %s\n", now().Format(timeLayout), l.name, lvl, msg)
	}
	if verbose {
		fmt.Fprintf(console, "[%s] %s\n", lvl, msg)
	}
}
