// Package output reports launcher failures to the user.
package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/jwalton/go-supportscolor"
)

var (
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stderr().SupportsColor {
		red, dim, reset = "", "", ""
	}
}

// Detailer is implemented by errors that carry extra lines for the user.
type Detailer interface {
	Details() []string
}

// PrintError writes a launcher failure and, when any error in its chain is
// a Detailer, the details indented below it.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "%s[FAIL]%s regent: %v\n", red, reset, err)

	var d Detailer
	if errors.As(err, &d) {
		for _, line := range d.Details() {
			fmt.Fprintf(w, "      %s%s%s\n", dim, line, reset)
		}
	}
}
