package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cafecoder-dev/contest-export/src/imagelib"
	"github.com/cafecoder-dev/contest-export/src/util"
)

func newImagesCmd(envFile *string) *cobra.Command {
	var ext, out, bucket string

	cmd := &cobra.Command{
		Use:   "images [dir]",
		Short: "Pack every image in dir into a JSON map of data URIs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			n, err := imagelib.BundleFile(dir, ext, out)
			if err != nil {
				return err
			}

			if err := maybeUpload(cmd.Context(), util.LoadEnv(*envFile), bucket, out); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Bundled %d images: %s\n", n, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&ext, "ext", imagelib.DefaultExt, "image file extension")
	cmd.Flags().StringVar(&out, "out", imagelib.DefaultFileName, "output file")
	cmd.Flags().StringVar(&bucket, "bucket", "", "GCS bucket to upload the bundle to (default $GCS_BUCKET)")

	return cmd
}
