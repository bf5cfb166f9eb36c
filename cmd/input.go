package cmd

import (
	"fmt"
	"io"

	"github.com/arnavsurve/intrus/internal/compiler"
)

const stdinName = "<stdin>"

// readInput returns the source named by args: an Intrus file, or stdin when
// no path or "-" is given.
func readInput(stdin io.Reader, args []string) (src, name string, err error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", stdinName, fmt.Errorf("read stdin: %w", err)
		}
		return string(b), stdinName, nil
	}
	src, err = compiler.ReadSource(args[0])
	return src, args[0], err
}
