package structdoc

import (
	"errors"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ErrNoCodeBlock is returned when the documentation contains no fenced code
// block to parse a tree diagram from.
var ErrNoCodeBlock = errors.New("no fenced code block found in documentation")

// ExtractCodeBlock locates the first fenced code block in the markdown
// source and returns its raw content. The info string (```text etc.) is not
// part of the returned content.
func ExtractCodeBlock(source []byte) (string, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var block string
	found := false

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := n.(*ast.FencedCodeBlock); !ok {
			return ast.WalkContinue, nil
		}

		var sb strings.Builder
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			sb.Write(seg.Value(source))
		}
		block = sb.String()
		found = true
		return ast.WalkStop, nil
	})
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrNoCodeBlock
	}
	return block, nil
}
