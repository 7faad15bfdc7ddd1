package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/easybox/pkg/board"
	"github.com/matzehuels/easybox/pkg/errors"
	"github.com/matzehuels/easybox/pkg/pointer"
)

func (c *CLI) replayCommand() *cobra.Command {
	var (
		bf      boardFlags
		asJSON  bool
		drawing bool
	)

	cmd := &cobra.Command{
		Use:   "replay <events.json|->",
		Short: "Apply a recorded list of pointer events to a board",
		Long: `Apply a recorded list of pointer events to a board and print the
resulting layout.

The script is a JSON array of browser-shaped events, read from a file or
from stdin when the argument is "-":

  [
    {"type":"mousedown","clientX":5,"clientY":2},
    {"type":"mousemove","clientX":40,"clientY":2},
    {"type":"mouseup","clientX":40,"clientY":2}
  ]`,
		Example: `  easybox replay drag.json
  easybox replay --board boards/kanban.toml --json drag.json
  cat drag.json | easybox replay -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := bf.load(cmd)
			if err != nil {
				return err
			}
			events, err := readEvents(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			restore := installHooks(logger)
			defer restore()

			b, err := board.New(def)
			if err != nil {
				return err
			}
			defer b.Close()

			prog := newProgress(logger)
			if err := replay(b, events); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Replayed %d events", len(events)))

			out := cmd.OutOrStdout()
			s := b.Snapshot()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}
			if drawing {
				c := newCanvas(int(s.Container.Width), int(s.Container.Height))
				c.drawBoard(s)
				fmt.Fprintln(out, c.String())
			}
			printKeyValue(out, "events", strconv.Itoa(len(events)))
			printKeyValue(out, "container", formatPoint(s.Container.Width, s.Container.Height))
			fmt.Fprintln(out, layoutTable(s))
			if id, ok := b.Dragging(); ok {
				printInfo(out, "%s is still being dragged", StyleValue.Render(id))
			}
			return nil
		},
	}

	bf.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the final layout as JSON")
	cmd.Flags().BoolVar(&drawing, "draw", false, "draw the final board above the table")

	return cmd
}

// readEvents decodes an event script from path, or from stdin for "-".
func readEvents(stdin io.Reader, path string) ([]pointer.Event, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "event script %s not found", path)
			}
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var events []pointer.Event
	if err := json.NewDecoder(r).Decode(&events); err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode event script")
	}
	return events, nil
}

// replay dispatches events in order, stopping at the first invalid one.
func replay(b *board.Board, events []pointer.Event) error {
	for i, ev := range events {
		if err := b.Dispatch(ev); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "event %d", i)
		}
	}
	return nil
}
