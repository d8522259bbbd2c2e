package signature

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	stepkiterrors "github.com/alexisbeaulieu97/stepkit/pkg/errors"
)

var pngFixture = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func defaultOptions() Options {
	return Options{
		Selector:   "body",
		CSSClass:   "signature",
		ImageAlt:   "Signature",
		ImageWidth: "100%",
		DateFormat: "2006-01-02",
	}
}

func TestInjectAppendsSignatureBlock(t *testing.T) {
	t.Parallel()

	sig := Signature{
		Image:    pngFixture,
		Signer:   "Ada Lovelace",
		SignedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	out, err := Inject("<html><body><p>Form</p></body></html>", sig, defaultOptions())
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	require.Equal(t, "Form", doc.Find("body > p").First().Text())

	block := doc.Find("body > div.signature")
	require.Equal(t, 1, block.Length())

	img := block.Find("img")
	src, ok := img.Attr("src")
	require.True(t, ok)
	require.Equal(t, sig.DataURI(), src)
	require.True(t, strings.HasPrefix(src, "data:image/png;base64,"))

	alt, _ := img.Attr("alt")
	require.Equal(t, "Signature", alt)
	width, _ := img.Attr("width")
	require.Equal(t, "100%", width)

	lines := block.Find("p").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	require.Equal(t, []string{"Ada Lovelace", "2025-03-01"}, lines)
}

func TestInjectUsesSelector(t *testing.T) {
	t.Parallel()

	opts := defaultOptions()
	opts.Selector = "#consent"

	markup := `<html><body><section id="consent"><p>Terms</p></section><footer>x</footer></body></html>`
	out, err := Inject(markup, Signature{Image: pngFixture}, opts)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 1, doc.Find("#consent > div.signature").Length())
	require.Equal(t, 0, doc.Find("footer div.signature").Length())
}

func TestInjectBlankSelectorFallsBackToBody(t *testing.T) {
	t.Parallel()

	opts := defaultOptions()
	opts.Selector = "  "

	out, err := Inject("<p>Form</p>", Signature{Image: pngFixture}, opts)
	require.NoError(t, err)
	require.Contains(t, out, `<div class="signature">`)
}

func TestInjectErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		sig       Signature
		selector  string
		operation string
	}{
		{"empty image", Signature{}, "body", "signature"},
		{"not a png", Signature{Image: []byte("GIF89a......")}, "body", "signature"},
		{"selector misses", Signature{Image: pngFixture}, "#missing", "inject"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := defaultOptions()
			opts.Selector = tt.selector

			out, err := Inject("<html><body>Form</body></html>", tt.sig, opts)
			require.Empty(t, out)

			var markupErr *stepkiterrors.MarkupError
			require.ErrorAs(t, err, &markupErr)
			require.Equal(t, tt.operation, markupErr.Operation)
		})
	}
}

func TestBlockEscapesText(t *testing.T) {
	t.Parallel()

	block := Block(Signature{Image: pngFixture, Signer: `<script>alert("x")</script>`}, Options{ImageAlt: `"quoted"`})

	require.NotContains(t, block, "<script>")
	require.Contains(t, block, "&lt;script&gt;")
	require.Contains(t, block, `alt="&#34;quoted&#34;"`)
	require.True(t, strings.HasPrefix(block, "<div><img alt="))
}

func TestBlockDefaultsDateFormat(t *testing.T) {
	t.Parallel()

	block := Block(Signature{Image: pngFixture, SignedAt: time.Date(2025, 12, 24, 8, 0, 0, 0, time.UTC)}, Options{})
	require.Contains(t, block, "<p>2025-12-24</p>")
}
