package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/freewipe/internal/domain"
	"golang.org/x/term"
)

// Ensure Pauser implements domain.Pauser interface.
var _ domain.Pauser = (*Pauser)(nil)

// Pauser waits for the user to press Enter before the process exits, so the
// console window stays open when the tool was started by double-click.
type Pauser struct {
	in     io.Reader
	out    io.Writer
	styles Styles
}

// NewPauser creates a Pauser reading keys from in and drawing on out.
func NewPauser(in io.Reader, out io.Writer, noColor bool) *Pauser {
	return &Pauser{
		in:     in,
		out:    out,
		styles: DefaultStyles(NewRenderer(out, noColor)),
	}
}

// Pause shows prompt and blocks until a key is pressed. On a terminal it runs
// a small bubbletea program; otherwise it reads one line from the input.
func (p *Pauser) Pause(ctx context.Context, prompt string) error {
	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return p.pauseTerminal(ctx, prompt)
	}
	return p.pauseLine(prompt)
}

func (p *Pauser) pauseTerminal(ctx context.Context, prompt string) error {
	model := newPauseModel(p.styles.Prompt.Render(prompt))
	prog := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	if _, err := prog.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("wait for keypress: %w", err)
	}
	return nil
}

func (p *Pauser) pauseLine(prompt string) error {
	_, _ = fmt.Fprint(p.out, prompt)
	_, err := bufio.NewReader(p.in).ReadString('\n')
	_, _ = fmt.Fprintln(p.out)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("wait for keypress: %w", err)
	}
	return nil
}

// pauseModel is the bubbletea model of the exit prompt.
type pauseModel struct {
	prompt string
	keys   PauseKeyMap
	done   bool
}

func newPauseModel(prompt string) pauseModel {
	return pauseModel{
		prompt: prompt,
		keys:   DefaultPauseKeyMap(),
	}
}

// Init implements tea.Model.
func (m pauseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Enter, Esc, q and Ctrl+C all end the prompt.
func (m pauseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, m.keys.Continue, m.keys.Quit) {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m pauseModel) View() string {
	if m.done {
		return ""
	}
	return m.prompt + "\n"
}
