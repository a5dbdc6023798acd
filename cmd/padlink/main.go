package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/padlink/internal/app"
	"github.com/five82/padlink/internal/logging"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := Main(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "padlink: %v\n", err)
		return 1
	}
	return 0
}

// Main runs the CLI with the given arguments and output streams.
func Main(ctx context.Context, args []string, out, errOut io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd.ExecuteContext(ctx)
}

type globalFlags struct {
	configPath string
	mode       string
	fps        int
}

func newRootCmd() *cobra.Command {
	var flags globalFlags
	root := &cobra.Command{
		Use:           "padlink",
		Short:         "Gamepad overlay for a relayed game session",
		Long:          `padlink connects to a game relay, tracks every player's controller and draws live button and stick state.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: flags.configPath,
				Mode:       flags.mode,
				FrameRate:  flags.fps,
				Version:    version,
			})
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.config/padlink/config.toml)")
	root.PersistentFlags().StringVar(&flags.mode, "mode", "", "display mode: all or focused")
	root.PersistentFlags().IntVar(&flags.fps, "fps", 0, "frames per second (default from config)")

	root.AddCommand(newReplayCmd(&flags))
	return root
}

func newReplayCmd(flags *globalFlags) *cobra.Command {
	var (
		tail  int
		level string
	)
	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Replay a captured relay stream without the overlay",
		Long: `Replay reads a JSONL file of relay messages, runs one reconciliation tick per line
and prints every roster, button and axis notification.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := logging.New(logging.Options{
				Level:   level,
				Writer:  cmd.ErrOrStderr(),
				Version: version,
			})
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			return app.Replay(cmd.Context(), app.ReplayOptions{
				Path:   args[0],
				Tail:   tail,
				Mode:   flags.mode,
				Out:    cmd.OutOrStdout(),
				Logger: logger.Named("replay"),
			})
		},
	}
	cmd.Flags().IntVar(&tail, "tail", 0, "replay only the last N frames")
	cmd.Flags().StringVar(&level, "log-level", "warn", "log level for replay diagnostics")
	return cmd
}
