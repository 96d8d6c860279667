// Package ui gère les interactions terminal : saisie de l'entrée quand aucun
// argument n'est fourni et affichage des messages stylés.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"

	"github.com/patrickprogramme/yt2xml/internal/clipboard"
	"github.com/patrickprogramme/yt2xml/internal/fsutil"
	"github.com/patrickprogramme/yt2xml/internal/yt"
)

// ErrNoInput est retourné quand stdin se ferme avant qu'une entrée valide soit saisie.
var ErrNoInput = errors.New("aucune entrée fournie")

type Interface interface {
	// GetInput renvoie une URL YouTube ou un chemin de fichier .txt.
	// Implémentation terminale : priorité clipboard -> prompt
	GetInput(ctx context.Context) (string, error)

	// WaitForExit bloque jusqu'à Ctrl+C ou l'annulation de ctx.
	WaitForExit(ctx context.Context) error

	PrintInfo(ctx context.Context, s string)
	PrintSuccess(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)
}

type terminalUI struct {
	reader *bufio.Reader
	out    io.Writer
	errOut io.Writer

	info    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	prompt  lipgloss.Style
}

// NewTerminal branche l'UI sur stdin/stdout/stderr.
func NewTerminal() Interface {
	return NewWriters(os.Stdin, os.Stdout, os.Stderr)
}

// NewWriters construit une UI sur des flux arbitraires.
// Le rendu des couleurs dépend de ce que supporte out.
func NewWriters(in io.Reader, out, errOut io.Writer) Interface {
	r := lipgloss.NewRenderer(out)
	re := lipgloss.NewRenderer(errOut)
	return &terminalUI{
		reader:  bufio.NewReader(in),
		out:     out,
		errOut:  errOut,
		info:    r.NewStyle().Foreground(lipgloss.Color("12")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		failure: re.NewStyle().Foreground(lipgloss.Color("9")),
		prompt:  r.NewStyle().Bold(true),
	}
}

func acceptable(s string) bool {
	if s == "" {
		return false
	}
	if yt.IsYouTubeURL(s) {
		return true
	}
	if !fsutil.HasTxtExtension(s) {
		return false
	}
	st, err := os.Stat(s)
	return err == nil && !st.IsDir()
}

func (t *terminalUI) GetInput(ctx context.Context) (string, error) {
	// 1) clipboard
	if clip, err := clipboard.ReadAll(); err == nil {
		clip = strings.TrimSpace(clip)
		if acceptable(clip) {
			t.PrintInfo(ctx, fmt.Sprintf("Utilisation de l'entrée depuis le presse-papier : %s", clip))
			return clip, nil
		}
	}

	// 2) prompt
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprint(t.out, t.prompt.Render("URL YouTube ou fichier .txt :")+" ")
		line, err := t.reader.ReadString('\n')
		input := strings.Trim(strings.TrimSpace(line), `"'`)
		if acceptable(input) {
			return input, nil
		}
		if err != nil {
			return "", ErrNoInput
		}
		t.PrintError(ctx, "❌ Entrée invalide. Essayez à nouveau.")
	}
}

func (t *terminalUI) WaitForExit(ctx context.Context) error {
	fmt.Fprintln(t.out, "\n\nAppuyez sur Ctrl+C pour quitter.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-sigCh:
		return nil
	}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Fprintln(t.out, render(t.info, s))
}

func (t *terminalUI) PrintSuccess(ctx context.Context, s string) {
	fmt.Fprintln(t.out, render(t.success, s))
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(t.errOut, render(t.failure, s))
}

// render applique le style ligne par ligne : lipgloss aligne les blocs
// multi-lignes en complétant avec des espaces.
func render(st lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = st.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}
