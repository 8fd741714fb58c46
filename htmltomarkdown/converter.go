// Package htmltomarkdown renders store description HTML as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/locmt"
)

// Ensure Converter implements locmt.Converter at compile time.
var _ locmt.Converter = (*Converter)(nil)

// MediaSelector matches the embedded banners, screenshots and clips in a
// store description. Steam wraps inline images in bb_img_ctn spans.
const MediaSelector = ".bb_img_ctn, img, video"

// Converter turns store description fragments into Markdown. Media is
// dropped unless WithMedia is set.
type Converter struct {
	conv      *converter.Converter
	keepMedia bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithMedia keeps images as Markdown image links.
func WithMedia() Option {
	return func(c *Converter) {
		c.keepMedia = true
	}
}

// NewConverter creates a new Converter. Tables are enabled for system
// requirement blocks.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms an HTML fragment into trimmed Markdown with at most one
// blank line between blocks.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", locmt.Errorf(locmt.EINVALID, "empty HTML input")
	}

	if !c.keepMedia {
		stripped, err := stripMedia(html)
		if err != nil {
			return "", err
		}
		html = stripped
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", locmt.Errorf(locmt.EEXTRACT, "failed to convert description: %v", err)
	}

	return locmt.NormalizeMarkdown(strings.TrimSpace(md)), nil
}

func stripMedia(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", locmt.Errorf(locmt.EEXTRACT, "failed to parse description: %v", err)
	}
	doc.Find(MediaSelector).Remove()

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", locmt.Errorf(locmt.EEXTRACT, "failed to render description: %v", err)
	}
	return out, nil
}
