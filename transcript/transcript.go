// Package transcript holds the transcript page compiled into the binary.
package transcript

import _ "embed"

//go:embed transcript.html
var page []byte

// HTML returns the embedded transcript document. Callers must not modify
// the returned slice; it is shared by every request.
func HTML() []byte {
	return page
}
