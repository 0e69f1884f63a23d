package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cafecoder-dev/contest-export/src/util"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(os.Stderr)

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run ... 終了コードを返す。不正な contest id なら DB に触らず 1
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, util.ErrInvalidContestID) {
			fmt.Fprintln(stderr, err)
			return 1
		}
		logrus.Error(err)
		return 1
	}

	return 0
}
