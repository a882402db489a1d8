// Command probectl runs the log analysis pipeline on recorded probe files
// without the HTTP service.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
