package mailer

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// DefaultButtonStyle is applied inline; mail clients strip <style> blocks.
const DefaultButtonStyle = "background-color: #007bff; color: white; padding: 10px 20px; " +
	"text-decoration: none; border-radius: 5px; display: inline-block;"

// KindButton is the AST kind of ButtonNode.
var KindButton = ast.NewNodeKind("Button")

var buttonOpen = []byte("[!button|")

// ButtonNode is a call-to-action link written as [!button|Label](URL).
type ButtonNode struct {
	ast.BaseInline
	URL   []byte
	Label []byte
}

// Kind implements ast.Node.
func (n *ButtonNode) Kind() ast.NodeKind { return KindButton }

// Dump implements ast.Node.
func (n *ButtonNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"URL":   string(n.URL),
		"Label": string(n.Label),
	}, nil)
}

type buttonParser struct{}

// NewButtonParser returns the inline parser for button syntax. It runs before
// the link parser so regular links are left alone.
func NewButtonParser() parser.InlineParser { return buttonParser{} }

func (buttonParser) Trigger() []byte { return []byte{'['} }

func (buttonParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if !bytes.HasPrefix(line, buttonOpen) {
		return nil
	}

	rest := line[len(buttonOpen):]
	labelEnd := bytes.IndexByte(rest, ']')
	if labelEnd < 0 || labelEnd+1 >= len(rest) || rest[labelEnd+1] != '(' {
		return nil
	}
	target := rest[labelEnd+2:]
	urlEnd := bytes.IndexByte(target, ')')
	if urlEnd < 0 {
		return nil
	}

	block.Advance(len(buttonOpen) + labelEnd + 2 + urlEnd + 1)
	return &ButtonNode{
		Label: rest[:labelEnd],
		URL:   bytes.TrimSpace(target[:urlEnd]),
	}
}

type buttonRenderer struct {
	style []byte
}

// NewButtonRenderer renders ButtonNode as an <a> carrying style inline.
func NewButtonRenderer(style string) renderer.NodeRenderer {
	return &buttonRenderer{style: util.EscapeHTML([]byte(style))}
}

func (r *buttonRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindButton, r.render)
}

func (r *buttonRenderer) render(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ButtonNode)

	href := []byte("#")
	if !html.IsDangerousURL(n.URL) {
		href = util.EscapeHTML(util.URLEscape(n.URL, true))
	}

	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(href)
	_ = w.WriteByte('"')
	if len(r.style) > 0 {
		_, _ = w.WriteString(` style="`)
		_, _ = w.Write(r.style)
		_ = w.WriteByte('"')
	}
	_ = w.WriteByte('>')
	_, _ = w.Write(util.EscapeHTML(n.Label))
	_, _ = w.WriteString("</a>")

	return ast.WalkContinue, nil
}

// ButtonExtension registers the button parser and renderer with goldmark.
type ButtonExtension struct {
	Style string
}

// NewButtonExtension returns a ButtonExtension using DefaultButtonStyle.
func NewButtonExtension() goldmark.Extender {
	return &ButtonExtension{Style: DefaultButtonStyle}
}

// Extend implements goldmark.Extender.
func (e *ButtonExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(util.Prioritized(NewButtonParser(), 50)))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(util.Prioritized(NewButtonRenderer(e.Style), 50)))
}
