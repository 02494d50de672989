// Package fatal supplies the default report-and-terminate handler for
// unrecoverable API misuse.
package fatal

import (
	"fmt"
	"os"

	"github.com/deploymenttheory/go-pathkit/internal/interfaces"
)

type exitHandler struct{}

func (exitHandler) Fatal(message string) {
	fmt.Fprintf(os.Stderr, "fatal: %s\n", message)
	os.Exit(2)
}

// Exit terminates the process after reporting the message to stderr.
// It is the default handler threaded into components that must abort
// on misuse.
var Exit interfaces.FatalHandler = exitHandler{}
