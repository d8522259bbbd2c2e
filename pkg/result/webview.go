package result

const (
	// HTMLKey is the UserInfo key holding the markup shown by a web view step.
	HTMLKey = "html"
	// HTMLWithSignatureKey is the UserInfo key holding the markup with the user's signature added.
	HTMLWithSignatureKey = "htmlWithSignature"
)

// WebViewStepResult is produced when a user completes a web view step.
type WebViewStepResult struct {
	Result

	answer *string
}

// NewWebViewStepResult returns an empty result for the web view step identifier.
func NewWebViewStepResult(identifier string) *WebViewStepResult {
	return &WebViewStepResult{Result: NewResult(identifier)}
}

// Answer returns the answer produced by the web view, if one was recorded.
func (r *WebViewStepResult) Answer() (string, bool) {
	if r == nil || r.answer == nil {
		return "", false
	}
	return *r.answer, true
}

// SetAnswer records the answer produced by the web view. Any string is accepted.
func (r *WebViewStepResult) SetAnswer(answer string) {
	r.answer = &answer
}

// ClearAnswer removes the recorded answer.
func (r *WebViewStepResult) ClearAnswer() {
	r.answer = nil
}

// HTML returns the markup stored under HTMLKey.
func (r *WebViewStepResult) HTML() (string, bool) {
	if r == nil {
		return "", false
	}
	return r.UserInfo.String(HTMLKey)
}

// HTMLWithSignature returns the markup stored under HTMLWithSignatureKey.
func (r *WebViewStepResult) HTMLWithSignature() (string, bool) {
	if r == nil {
		return "", false
	}
	return r.UserInfo.String(HTMLWithSignatureKey)
}

// Copy returns a copy that shares no mutable state with r.
func (r *WebViewStepResult) Copy() *WebViewStepResult {
	if r == nil {
		return nil
	}
	copied := &WebViewStepResult{Result: r.Result}
	copied.UserInfo = r.UserInfo.Clone()
	if answer, ok := r.Answer(); ok {
		copied.SetAnswer(answer)
	}
	return copied
}
