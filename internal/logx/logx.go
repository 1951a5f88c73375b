// Package logx sets up the diagnostic logger.
package logx

import (
	"io"
	"log"
)

// Init routes the standard logger to w when debug is on and discards it
// otherwise, so diagnostics never mix into the transcript.
func Init(debug bool, w io.Writer) {
	log.SetFlags(0)
	if !debug {
		log.SetOutput(io.Discard)
		log.SetPrefix("")
		return
	}
	log.SetOutput(w)
	log.SetPrefix("[DEBUG] ")
}
