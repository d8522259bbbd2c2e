package webview

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var signatureClassPattern = regexp.MustCompile(`^[_a-zA-Z0-9 -]+$`)

// markupPolicy allows user generated content plus the attributes and data:
// images a signature block needs.
func markupPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowDataURIImages()
	p.AllowAttrs("class").Matching(signatureClassPattern).Globally()
	p.AllowAttrs("width", "alt").OnElements("img")
	return p
}
