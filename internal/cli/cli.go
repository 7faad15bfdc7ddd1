// Package cli implements the easybox command-line interface.
//
// The commands drive a board of draggable boxes from three input sources:
//   - play: an interactive terminal board, dragged with the mouse
//   - serve: an HTTP API accepting browser-shaped pointer events
//   - replay: a scripted list of pointer events applied to a board
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed through context.Context, and the drag and layout hooks of
// pkg/observability are backed by it while a command runs.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/easybox/pkg/buildinfo"
	"github.com/matzehuels/easybox/pkg/config"
)

const appName = "easybox"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Easybox arranges draggable boxes on a board",
		Long:         `Easybox lays out boxes on a board and lets you drag them around with a mouse, a touch screen, or a script. Dropped boxes snap into the nearest slot and the rest of the board packs around them.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.playCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// boardFlags are the board options shared by every command.
type boardFlags struct {
	file   string
	width  float64
	height float64
	gap    float64
	lock   bool
}

func (f *boardFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "board", "b", "", "board definition file (TOML); the demo board when empty")
	cmd.Flags().Float64Var(&f.width, "width", config.DefaultWidth, "container width")
	cmd.Flags().Float64Var(&f.height, "height", config.DefaultHeight, "container height")
	cmd.Flags().Float64Var(&f.gap, "gap", config.DefaultGap, "spacing between boxes")
	cmd.Flags().BoolVar(&f.lock, "lock", true, "keep dragged boxes inside the container")
}

// load reads the board definition and applies the flags the user set
// explicitly on top of it.
func (f *boardFlags) load(cmd *cobra.Command) (*config.Board, error) {
	def := config.Default()
	if f.file != "" {
		var err error
		if def, err = config.Load(f.file); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		def.Container.Width = f.width
	}
	if flags.Changed("height") {
		def.Container.Height = f.height
	}
	if flags.Changed("gap") {
		def.Container.Gap = f.gap
	}
	if flags.Changed("lock") {
		def.Container.LockInsideParent = f.lock
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}
