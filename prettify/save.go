package prettify

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fqdbg/fixprint/fix"
	"github.com/pkg/errors"
)

// SaveQuery renders the whole query and writes it next to the query's output
// file, with a ".prettified" extension appended. It prints a one-line
// confirmation naming the written path and returns that path.
func SaveQuery(outFile string, q *fix.Query, p *Pipeline) (string, error) {
	path := outFile + ".prettified"
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return "", errors.Wrapf(err, "could not create output directory for %s", path)
		}
	}

	doc := p.RenderQuery(q)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", errors.Wrapf(err, "could not write prettified query to %s", path)
	}

	fmt.Printf("prettified query saved to %s\n", path)
	return path, nil
}
