package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"utilkit/pkg/screenshot"
	"utilkit/pkg/sysexit"
)

var (
	captureDisplay int
	captureAll     bool
	captureOut     string
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture a display to an image file",
	Long: `Captures the given display and writes it to the output file. The image
format is chosen from the output filename extension (png, jpg, jpeg, gif).
Without --output a uuid-named PNG is written to the current directory.
With --all, every display is captured and a display suffix is appended to
the filename.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := captureOut
		if out == "" {
			out = uuid.New().String() + ".png"
		}

		if captureAll {
			return captureAllDisplays(cmd, out)
		}

		img, err := screenshot.CaptureDisplay(cmd.Context(), captureDisplay)
		if err != nil {
			return sysexit.Wrap(sysexit.Unavailable, err)
		}
		logger.Debug("Captured display",
			zap.Int("display", captureDisplay),
			zap.Stringer("bounds", img.Bounds()))

		if err := screenshot.Save(img, out); err != nil {
			return sysexit.Wrap(sysexit.IOErr, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func captureAllDisplays(cmd *cobra.Command, out string) error {
	images, err := screenshot.CaptureAll(cmd.Context())
	if err != nil {
		return sysexit.Wrap(sysexit.Unavailable, err)
	}
	ext, err := screenshot.Ext(out)
	if err != nil {
		return sysexit.Wrap(sysexit.Usage, err)
	}
	base := strings.TrimSuffix(out, "."+ext)
	for i, img := range images {
		path := fmt.Sprintf("%s-%d.%s", base, i, ext)
		if err := screenshot.Save(img, path); err != nil {
			return sysexit.Wrap(sysexit.IOErr, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

func init() {
	captureCmd.Flags().IntVarP(&captureDisplay, "display", "d", 0, "display index to capture")
	captureCmd.Flags().BoolVarP(&captureAll, "all", "a", false, "capture every active display")
	captureCmd.Flags().StringVarP(&captureOut, "output", "o", "", "output file (extension picks the format)")
}
