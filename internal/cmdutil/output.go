package cmdutil

import (
	"io"
	"strings"
)

// WriteDocument writes a rendered document to w, ending it with exactly
// one newline.
func WriteDocument(w io.Writer, doc string) error {
	doc = strings.TrimRight(doc, "\n") + "\n"
	_, err := io.WriteString(w, doc)
	return err
}
