// Package format renders parser graphs as indented text, one parser
// per line. Cycles are broken by printing a back-reference to the
// first occurrence instead of recursing.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/ncellar/autumn4/parse"
)

// Encoder writes textual renditions of parser graphs.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the parser graph rooted at root. Each parser appears
// once, labelled by its String method when it has one; parsers seen
// again are printed as "-> #n" referencing their first occurrence.
func (e *Encoder) Encode(root parse.Parser) error {
	ids := make(map[parse.Parser]int)
	var encode func(q parse.Parser, depth int) error
	encode = func(q parse.Parser, depth int) error {
		indent := strings.Repeat("  ", depth)
		if id, ok := ids[q]; ok {
			_, err := fmt.Fprintf(e.w, "%s-> #%d\n", indent, id)
			return err
		}
		id := len(ids)
		ids[q] = id
		if _, err := fmt.Fprintf(e.w, "%s#%d %s\n", indent, id, label(q)); err != nil {
			return err
		}
		for _, child := range q.Children() {
			if err := encode(child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return encode(root, 0)
}

func label(q parse.Parser) string {
	if s, ok := q.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", q)
}
