package parser

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/dgallion1/resumeparse/internal/layout"
	"golang.org/x/net/html"
)

// HTMLDecoder handles HTML files. Block elements start new lines, <br>
// breaks a line, h1-h6 become headings and <b>/<strong> runs are bold.
type HTMLDecoder struct{}

func (d *HTMLDecoder) Decode(r io.Reader, filename string) ([]layout.Token, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	w := &htmlWalker{f: &flow{}}
	if body := findBody(doc); body != nil {
		w.walk(body, false)
	} else {
		w.walk(doc, false)
	}
	w.flush()

	return checkText(w.f.tokens)
}

type htmlWalker struct {
	f        *flow
	cur      []span
	depth    int
	bulleted bool
}

func (w *htmlWalker) flush() {
	w.f.line(w.cur, w.depth, w.bulleted)
	w.cur = nil
	w.bulleted = false
}

func (w *htmlWalker) walk(n *html.Node, bold bool) {
	switch n.Type {
	case html.TextNode:
		if s := collapseSpace(n.Data); s != "" {
			w.cur = append(w.cur, span{text: s, bold: bold})
		}
		return
	case html.ElementNode:
	default:
		w.children(n, bold)
		return
	}

	switch n.Data {
	case "script", "style", "head", "title", "noscript", "template":
		return
	case "h1", "h2", "h3", "h4", "h5", "h6":
		w.flush()
		w.f.heading(textContent(n))
		return
	case "br":
		w.flush()
		return
	case "b", "strong", "th":
		w.children(n, true)
		return
	case "ul", "ol":
		w.flush()
		w.depth++
		w.children(n, bold)
		w.flush()
		w.depth--
		return
	case "li":
		w.flush()
		w.bulleted = true
		w.children(n, bold)
		w.flush()
		return
	case "p", "div", "section", "article", "header", "footer", "tr", "blockquote", "dt", "dd", "table":
		w.flush()
		if n.Data == "section" || n.Data == "p" {
			w.f.gap()
		}
		w.children(n, bold)
		w.flush()
		return
	}
	w.children(n, bold)
}

func (w *htmlWalker) children(n *html.Node, bold bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, bold)
	}
}

// collapseSpace folds whitespace runs to a single space, keeping one at
// either end when the source had one there.
func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s != "" {
			return " "
		}
		return ""
	}
	out := strings.Join(fields, " ")
	if unicode.IsSpace(rune(s[0])) {
		out = " " + out
	}
	if unicode.IsSpace(rune(s[len(s)-1])) {
		out += " "
	}
	return out
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
