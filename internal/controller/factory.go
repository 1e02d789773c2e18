package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI renders to cmd's output: styled when that output is a terminal, plain
// tables when it is redirected.
func NewUI(cmd *cobra.Command) UI {
	out := cmd.OutOrStdout()

	if IsTTY(out) {
		return NewStyledUI(out)
	}

	return NewSimpleUI(cmd)
}

type statter interface {
	Stat() (os.FileInfo, error)
}

// IsTTY reports whether w is a character device.
func IsTTY(w io.Writer) bool {
	f, ok := w.(statter)
	if !ok {
		return false
	}

	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
