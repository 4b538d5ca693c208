package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webask"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// noiseSelector matches subtrees that never hold page content.
	noiseSelector = "script, style, nav, footer, aside, header, form"

	// textSelector matches the elements whose text is collected.
	textSelector = "p, h1, h2, h3, h4, h5, h6, li, td, th, span, div"
)

// rootSelectors are tried in order to find the primary content root.
// The document body is the fallback.
var rootSelectors = []string{"main", "article", `[role="main"]`}

// Ensure TextExtractor implements webask.TextExtractor at compile time.
var _ webask.TextExtractor = (*TextExtractor)(nil)

// TextExtractor extracts page text with a tag-based heuristic: boilerplate
// subtrees are removed by tag name, a content root is picked, and the text of
// every block-level element under it is collected.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the cleaned, single-line text of the page.
func (e *TextExtractor) ExtractText(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", webask.Errorf(webask.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(noiseSelector).Remove()

	root := contentRoot(doc, hasBodyTag(rawHTML))
	if root == nil {
		return "", webask.Errorf(webask.ENOTFOUND, "no main content or body found")
	}

	var chunks []string
	root.Find(textSelector).Each(func(_ int, sel *goquery.Selection) {
		if text := visibleText(sel.Nodes[0]); text != "" {
			chunks = append(chunks, text)
		}
	})

	return webask.CleanChunks(chunks), nil
}

// contentRoot returns the first main, article or role=main element, falling
// back to the body when the markup has one. Returns nil when none exists.
func contentRoot(doc *goquery.Document, hasBody bool) *goquery.Selection {
	for _, selector := range rootSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	if !hasBody {
		return nil
	}
	if body := doc.Find("body").First(); body.Length() > 0 {
		return body
	}
	return nil
}

// hasBodyTag reports whether rawHTML contains a body start tag. The parser
// always synthesizes a body element, so the parsed tree cannot tell.
func hasBodyTag(rawHTML string) bool {
	z := html.NewTokenizer(strings.NewReader(rawHTML))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if atom.Lookup(name) == atom.Body {
				return true
			}
		}
	}
}

// visibleText joins the trimmed text nodes under n with single spaces.
// Unlike Selection.Text, adjacent inline elements do not run together.
func visibleText(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return webask.CollapseWhitespace(strings.Join(parts, " "))
}
