package analyzer

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is a read-only view of a fetched page. It wraps the parsed
// tree and precomputes the lowercase surfaces the detectors match
// against, so no detector re-walks the tree for text it shares with
// another detector. Detectors only read from it; nothing mutates a
// Document after NewDocument returns.
type Document struct {
	doc *goquery.Document

	// Precomputed surfaces, all lowercase except RawText.
	HTML       string
	Text       string
	RawText    string
	ScriptSrcs []string
	// InlineScripts holds the text of <script> elements without a src.
	InlineScripts []string
	LinkHrefs     []string
	AnchorHrefs   []string
}

// NewDocument parses HTML from r and builds the detector surfaces.
func NewDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	d := &Document{doc: doc}

	if html, err := doc.Html(); err == nil {
		d.HTML = strings.ToLower(html)
	}
	d.RawText = doc.Text()
	d.Text = strings.ToLower(d.RawText)

	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok && src != "" {
			d.ScriptSrcs = append(d.ScriptSrcs, strings.ToLower(src))
		} else if text := s.Text(); text != "" {
			d.InlineScripts = append(d.InlineScripts, strings.ToLower(text))
		}
	})

	doc.Find("link[href]").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && href != "" {
			d.LinkHrefs = append(d.LinkHrefs, strings.ToLower(href))
		}
	})

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && href != "" {
			d.AnchorHrefs = append(d.AnchorHrefs, strings.ToLower(href))
		}
	})

	return d, nil
}

// Find exposes goquery selection on the underlying tree.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}
