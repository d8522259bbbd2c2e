package signature

import (
	"encoding/base64"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	stepkiterrors "github.com/alexisbeaulieu97/stepkit/pkg/errors"
)

const (
	pngContentType  = "image/png"
	defaultSelector = "body"
)

// Signature is a captured signature image together with who signed and when.
type Signature struct {
	Image    []byte
	Signer   string
	SignedAt time.Time
}

// Options controls the signature block added to the markup.
type Options struct {
	Selector   string
	CSSClass   string
	ImageAlt   string
	ImageWidth string
	DateFormat string
}

// Validate checks that the signature carries a PNG image.
func (s Signature) Validate() error {
	if len(s.Image) == 0 {
		return stepkiterrors.NewMarkupError("signature", "signature image is empty", nil)
	}
	if contentType := http.DetectContentType(s.Image); contentType != pngContentType {
		return stepkiterrors.NewMarkupError("signature", fmt.Sprintf("signature image must be %s, got %s", pngContentType, contentType), nil)
	}
	return nil
}

// DataURI returns the image encoded as a data: URI.
func (s Signature) DataURI() string {
	return "data:" + pngContentType + ";base64," + base64.StdEncoding.EncodeToString(s.Image)
}

// Inject appends a signature block to the first element of markup matching
// opts.Selector and returns the rewritten document.
func Inject(markup string, sig Signature, opts Options) (string, error) {
	if err := sig.Validate(); err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", stepkiterrors.NewMarkupError("parse", "", err)
	}

	selector := strings.TrimSpace(opts.Selector)
	if selector == "" {
		selector = defaultSelector
	}

	target := doc.Find(selector).First()
	if target.Length() == 0 {
		return "", stepkiterrors.NewMarkupError("inject", fmt.Sprintf("selector %q matched no element", selector), nil)
	}

	target.AppendHtml(Block(sig, opts))

	rendered, err := doc.Html()
	if err != nil {
		return "", stepkiterrors.NewMarkupError("render", "", err)
	}
	return rendered, nil
}

// Block renders the signature block markup on its own.
func Block(sig Signature, opts Options) string {
	var b strings.Builder

	b.WriteString("<div")
	if opts.CSSClass != "" {
		fmt.Fprintf(&b, ` class="%s"`, html.EscapeString(opts.CSSClass))
	}
	b.WriteString(">")

	b.WriteString("<img")
	if opts.ImageWidth != "" {
		fmt.Fprintf(&b, ` width="%s"`, html.EscapeString(opts.ImageWidth))
	}
	fmt.Fprintf(&b, ` alt="%s" src="%s"/>`, html.EscapeString(opts.ImageAlt), sig.DataURI())

	if sig.Signer != "" {
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(sig.Signer))
	}
	if !sig.SignedAt.IsZero() {
		format := opts.DateFormat
		if format == "" {
			format = time.DateOnly
		}
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(sig.SignedAt.Format(format)))
	}

	b.WriteString("</div>")
	return b.String()
}
