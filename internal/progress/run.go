package progress

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/verte-zerg/wordhelp/internal/scan"
)

// Run calls fn with an observer that drives a progress bar on stderr. When
// the bar is disabled or stderr is not a terminal, fn gets a nil observer.
func Run(ctx context.Context, title string, enabled bool, fn func(scan.Observer) error) error {
	if !enabled || !term.IsTerminal(int(os.Stderr.Fd())) {
		return fn(nil)
	}

	program := tea.NewProgram(NewModel(title),
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(os.Stderr),
	)
	uiDone := make(chan error, 1)
	go func() {
		_, err := program.Run()
		uiDone <- err
	}()

	err := fn(func(done, total int) {
		program.Send(updateMsg{done: done, total: total})
	})
	program.Send(finishMsg{})
	if uerr := <-uiDone; uerr != nil {
		log.Debug().Err(uerr).Msg("progress display stopped")
	}
	return err
}
