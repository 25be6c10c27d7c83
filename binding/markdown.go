package binding

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/odvcencio/furry-binder/lifecycle"
	"github.com/odvcencio/furry-binder/state"
)

var markdown = goldmark.New()

// PlainText renders markdown source as plain text for cell-based displays:
// block elements end with a newline, list items get a "- " bullet and
// inline markup is dropped.
func PlainText(source string) string {
	src := []byte(source)
	doc := markdown.Parser().Parse(text.NewReader(src))
	var out strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				out.Write(node.Segment.Value(src))
				switch {
				case node.HardLineBreak():
					out.WriteByte('\n')
				case node.SoftLineBreak():
					out.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				out.Write(node.Value)
			}
		case *ast.AutoLink:
			if entering {
				out.Write(node.Label(src))
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			if entering {
				lines := n.Lines()
				for i := 0; i < lines.Len(); i++ {
					seg := lines.At(i)
					out.Write(seg.Value(src))
				}
			}
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			if entering {
				out.WriteString("- ")
			}
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			if !entering {
				out.WriteByte('\n')
			}
		case *ast.ThematicBreak:
			if entering {
				out.WriteString("---\n")
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimRight(out.String(), "\n")
}

// MarkdownBinding displays markdown source as plain text. It is OneWay.
type MarkdownBinding struct {
	Base[string]
}

// NewMarkdownBinding creates an unconnected markdown binding.
func NewMarkdownBinding(data state.Readable[string]) *MarkdownBinding {
	return &MarkdownBinding{Base: newBase("markdown", data, OneWay, state.EqualComparable[string])}
}

// Connect attaches a TextDisplay.
func (b *MarkdownBinding) Connect(scope *lifecycle.Scope, control any) *MarkdownBinding {
	view := mustControl[TextDisplay]("markdown", control)
	b.connect(scope, view, func(v string) {
		if rendered := PlainText(v); view.Text() != rendered {
			view.SetText(rendered)
		}
	})
	return b
}

// BindMarkdown connects view to data.
func BindMarkdown(binder *Binder, view TextDisplay, data state.Readable[string]) *Binder {
	return binder.Add(NewMarkdownBinding(data).Connect(binder.RequireScope(), view))
}
