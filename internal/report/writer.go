package report

import (
	"fmt"
	"io"
)

// Write prints the pretty-printed form of doc to w, followed by the
// original program's "Time elapsed" summary line.
func Write(w io.Writer, doc string, elapsedSeconds float64) error {
	if _, err := w.Write(Pretty(doc)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nTime elapsed: %.2f seconds\n", elapsedSeconds)
	return err
}
