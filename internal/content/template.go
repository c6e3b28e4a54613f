package content

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
)

// defaultTemplateSuffix is the HTML block appended to every generated
// description when no custom template file is configured. Spacing is
// deliberate: downstream listing importers take the block as-is.
const defaultTemplateSuffix = `
        <p>Acrylic art panels are a modern way to display beautiful and vibrant art that looks like it's embedded in clear glass.
        They have a clear, glossy acrylic surface and a white vinyl backing. Four silver stand-offs make it very easy to mount to the wall.</p>
        <p>.: Material: Clear acrylic with white vinyl backing<br />
        .: Clear, glossy surface<br />
        .: Seven sizes to choose from<br />
        .: Horizontal, vertical and square options available<br />
        .: NB! For indoor use only</p>
        `

// loadTemplateSuffix reads a Markdown template file and renders it to HTML.
// The rendered block is appended to descriptions after a separating newline.
func loadTemplateSuffix(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read description template: %w", err)
	}

	var buf bytes.Buffer
	if err := goldmark.Convert(raw, &buf); err != nil {
		return "", fmt.Errorf("render description template: %w", err)
	}

	return "\n" + strings.TrimRight(buf.String(), "\n"), nil
}
