package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cafecoder-dev/contest-export/src/exportlib"
	"github.com/cafecoder-dev/contest-export/src/gcplib"
	"github.com/cafecoder-dev/contest-export/src/sqllib"
	"github.com/cafecoder-dev/contest-export/src/util"
)

// openDB ... テストで差し替える
var openDB = sqllib.NewDB

type exportOptions struct {
	outDir  string
	envFile string
	bucket  string
}

func newRootCmd() *cobra.Command {
	opts := exportOptions{}

	cmd := &cobra.Command{
		Use:           "contest-export [contest-id]",
		Short:         "Export contest users, problems and submissions to <contest-id>.json",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env", ".env", "path to the .env file")
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", ".", "directory to write <contest-id>.json into")
	cmd.Flags().StringVar(&opts.bucket, "bucket", "", "GCS bucket to upload the export to (default $GCS_BUCKET)")

	cmd.AddCommand(newImagesCmd(&opts.envFile), newStandingsCmd())

	return cmd
}

func runExport(cmd *cobra.Command, args []string, opts exportOptions) error {
	var input string
	if len(args) == 1 {
		input = args[0]
	} else {
		fmt.Fprint(cmd.OutOrStdout(), "Contest ID: ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		input = line
	}

	contestID, err := util.ParseContestID(input)
	if err != nil {
		return err
	}

	env := util.LoadEnv(opts.envFile)

	db, err := openDB(env)
	if err != nil {
		return err
	}
	defer db.Close()

	path, err := exportlib.Export(db, contestID, opts.outDir)
	if err != nil {
		return err
	}

	if err := maybeUpload(cmd.Context(), env, opts.bucket, path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported: %s\n", path)
	return nil
}

// maybeUpload ... bucket が指定されていればアップロードする
func maybeUpload(ctx context.Context, env util.Env, bucketName, path string) error {
	if bucketName == "" {
		bucketName = env.GCSBucket
	}
	if strings.TrimSpace(bucketName) == "" {
		return nil
	}

	bucket, closeClient, err := gcplib.NewBucket(ctx, env.GCSCredentials, bucketName)
	if err != nil {
		return fmt.Errorf("gcs client: %w", err)
	}
	defer closeClient()

	object := filepath.Base(path)
	if err := gcplib.UploadFile(ctx, bucket, object, path); err != nil {
		return fmt.Errorf("upload gs://%s/%s: %w", bucketName, object, err)
	}

	logrus.WithFields(logrus.Fields{"bucket": bucketName, "object": object}).Info("uploaded")
	return nil
}
