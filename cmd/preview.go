package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/solodev/pwaicons/internal/app"
	"github.com/solodev/pwaicons/internal/render"
	"github.com/spf13/cobra"
)

var (
	device   string
	duration time.Duration
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "show the contact sheet on the Linux framebuffer",
	Long: `show the contact sheet on the Linux framebuffer.

The preview ends after --duration, on Esc, Q or F4, or on SIGINT/SIGTERM.
A zero duration waits for a key or signal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a := app.New(cfg, cmd.OutOrStdout())
		a.Logger = logger
		p := render.NewFBPreview(device)
		p.Logger = logger
		return a.Preview(ctx, p, app.PreviewOptions{
			Hold:      duration,
			Console:   true,
			WatchKeys: true,
		})
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&device, "device", "", render.DefaultFBDevice, "framebuffer device")
	previewCmd.Flags().DurationVarP(&duration, "duration", "", 10*time.Second, "how long the sheet stays up (0 waits for a key)")
}
