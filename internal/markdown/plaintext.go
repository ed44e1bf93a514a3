// Package markdown strips Markdown markup so only prose reaches the
// analyzer.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// PlainText parses source as CommonMark and returns its prose. Inline
// markup is dropped and its text kept (link text, emphasis, code spans,
// image alt text). Code blocks and raw HTML are skipped entirely. Each
// block ends with a newline.
func PlainText(source []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil

		case *ast.Text:
			if entering {
				b.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					b.WriteByte(' ')
				}
			}

		case *ast.String:
			if entering {
				b.Write(node.Value)
			}

		case *ast.AutoLink:
			if entering {
				b.Write(node.Label(source))
			}

		default:
			if !entering && n.Type() == ast.TypeBlock && n.Kind() != ast.KindDocument {
				if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
					b.WriteByte('\n')
				}
			}
		}
		return ast.WalkContinue, nil
	})

	return b.String()
}
