package ggrgen

import (
	"bufio"
	"bytes"
	"io"
	"os"
)

// Render writes a GradientCode as a commented, indented source fragment:
// a comment line with the display name, then the key bound to the generated
// code in a raw string literal opened with a line continuation.
func Render(w io.Writer, gc *GradientCode, opt *RenderOptions) error {
	ropt := opt.normalize()
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)

	pieces := []string{
		"// ", gc.Name, "\n",
		ropt.Indent, gc.Key, ": `\\\n",
		gc.Code, "`,\n\n",
	}
	for _, s := range pieces {
		if _, err := io.WriteString(bw, s); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// RenderString renders a GradientCode to a string.
func RenderString(gc *GradientCode, opt *RenderOptions) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, gc, opt); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// RenderFile renders a GradientCode to a file.
func RenderFile(path string, gc *GradientCode, opt *RenderOptions) error {
	s, err := RenderString(gc, opt)
	if err != nil {
		return err
	}

	return os.WriteFile(path, []byte(s), 0o600)
}
