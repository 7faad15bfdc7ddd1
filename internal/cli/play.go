package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/easybox/pkg/board"
	"github.com/matzehuels/easybox/pkg/pointer"
)

// Rows above the board frame in the play view.
const playHeaderRows = 2

func (c *CLI) playCommand() *cobra.Command {
	var (
		bf      boardFlags
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Drag boxes around an interactive terminal board",
		Long: `Open the board full-screen and drag boxes with the mouse.

Press a box to pick it up, move the mouse to drag it, and release to drop it
into the nearest slot. Press q to quit.`,
		Example: `  easybox play
  easybox play --board boards/kanban.toml --lock=false
  easybox play -v --log-file drag.log`,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := bf.load(cmd)
			if err != nil {
				return err
			}

			// The alternate screen owns the terminal, so hooks can only log to a file.
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				restore := installHooks(newLogger(f, c.Logger.GetLevel()))
				defer restore()
			}

			b, err := board.New(def)
			if err != nil {
				return err
			}
			defer b.Close()

			p := tea.NewProgram(newPlayModel(b),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(playModel); ok && m.err != nil {
				return m.err
			}
			loggerFromContext(cmd.Context()).Info("board closed", "boxes", len(b.Boxes()))
			return nil
		},
	}

	bf.register(cmd)
	cmd.Flags().StringVar(&logFile, "log-file", "", "write drag activity to this file")

	return cmd
}

// playModel is the bubbletea model for the interactive board. Terminal
// cells map one to one onto board units; the origin sits just inside the
// frame drawn below the header.
type playModel struct {
	board  *board.Board
	status string
	err    error
}

func newPlayModel(b *board.Board) playModel {
	return playModel{board: b}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.MouseMsg:
		ev, ok := m.pointerEvent(msg)
		if !ok {
			return m, nil
		}
		if err := m.board.Dispatch(ev); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.status = m.describe(ev)
	}
	return m, nil
}

// pointerEvent translates a terminal mouse event into board coordinates.
// Only the left button drags; wheel and other buttons are ignored.
func (m playModel) pointerEvent(msg tea.MouseMsg) (pointer.Event, bool) {
	x := float64(msg.X - 1)
	y := float64(msg.Y - playHeaderRows - 1)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return pointer.Event{}, false
		}
		return pointer.MouseEvent(pointer.Down, x, y), true
	case tea.MouseActionMotion:
		return pointer.MouseEvent(pointer.Move, x, y), true
	case tea.MouseActionRelease:
		return pointer.MouseEvent(pointer.Up, x, y), true
	}
	return pointer.Event{}, false
}

func (m playModel) describe(ev pointer.Event) string {
	if id, ok := m.board.Dragging(); ok {
		v, err := m.board.Box(id)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("dragging %s at %s", id, formatPoint(v.Shown.Left, v.Shown.Top))
	}
	if ev.Phase == pointer.Up {
		return "dropped"
	}
	return m.status
}

func (m playModel) View() string {
	s := m.board.Snapshot()

	var b strings.Builder
	b.WriteString(StyleTitle.Render(appName))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%d boxes · lock %v", len(s.Boxes), s.LockInsideParent)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("drag with the mouse  q quit"))
	b.WriteString("\n")

	c := newCanvas(int(s.Container.Width), int(s.Container.Height))
	c.drawBoard(s)
	b.WriteString(c.String())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(styleIconInfo.Render(iconInfo) + " " + m.status)
	}
	return b.String()
}
