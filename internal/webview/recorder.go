package webview

import (
	"context"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/alexisbeaulieu97/stepkit/internal/config"
	"github.com/alexisbeaulieu97/stepkit/internal/logger"
	"github.com/alexisbeaulieu97/stepkit/internal/signature"
	stepkiterrors "github.com/alexisbeaulieu97/stepkit/pkg/errors"
	"github.com/alexisbeaulieu97/stepkit/pkg/result"
)

// Submission is what the web view handed back when the user finished the step.
type Submission struct {
	Answer    *string
	HTML      string
	Signature *signature.Signature
}

// Option customises a Recorder.
type Option func(*Recorder)

// WithClock replaces time.Now as the source of start and end dates.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(log *logger.Logger) Option {
	return func(r *Recorder) {
		r.log = log
	}
}

// WithConfig applies web view settings.
func WithConfig(settings config.WebView) Option {
	return func(r *Recorder) {
		r.settings = settings
	}
}

// Recorder builds the WebViewStepResult for one presentation of a web view step.
// It is not safe for concurrent use.
type Recorder struct {
	stepID   string
	started  time.Time
	now      func() time.Time
	log      *logger.Logger
	settings config.WebView
	policy   *bluemonday.Policy
}

// NewRecorder starts recording the web view step stepID.
func NewRecorder(stepID string, opts ...Option) *Recorder {
	r := &Recorder{
		stepID:   stepID,
		now:      time.Now,
		settings: config.Default().WebView,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.settings.Sanitize {
		r.policy = markupPolicy()
	}
	r.started = r.now()
	return r
}

// StepID returns the identifier of the step being recorded.
func (r *Recorder) StepID() string {
	return r.stepID
}

// Complete turns sub into a populated result. The markup is written to the
// result's UserInfo under result.HTMLKey and, when a signature was captured,
// result.HTMLWithSignatureKey.
func (r *Recorder) Complete(ctx context.Context, sub Submission) (*result.WebViewStepResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, stepkiterrors.NewRecordError(r.stepID, err)
	}

	res := &result.WebViewStepResult{Result: result.Result{Identifier: r.stepID, StartDate: r.started}}
	log := r.log.WithResult(&res.Result)
	log.Debug("recording web view step")

	if sub.Answer != nil {
		res.SetAnswer(*sub.Answer)
	}

	markup := sub.HTML
	if r.policy != nil && markup != "" {
		markup = r.policy.Sanitize(markup)
	}

	end := r.now()

	if strings.TrimSpace(markup) == "" {
		if sub.Signature != nil {
			log.Warn("signature captured without markup; dropping it")
		}
	} else {
		res.UserInfo.Set(result.HTMLKey, markup)

		if sub.Signature != nil {
			sig := *sub.Signature
			if sig.SignedAt.IsZero() {
				sig.SignedAt = end
			}

			signed, err := signature.Inject(markup, sig, r.signatureOptions())
			if err != nil {
				log.Error(err, "failed to add signature to markup")
				return nil, stepkiterrors.NewRecordError(r.stepID, err)
			}
			res.UserInfo.Set(result.HTMLWithSignatureKey, signed)
		}
	}

	res.EndDate = end
	if err := res.Validate(); err != nil {
		log.Error(err, "recorded result is invalid")
		return nil, stepkiterrors.NewRecordError(r.stepID, err)
	}

	_, signed := res.HTMLWithSignature()
	_, answered := res.Answer()
	log.WithFields(map[string]any{
		"answered": answered,
		"signed":   signed,
		"duration": res.Duration().String(),
	}).Info("web view step recorded")

	return res, nil
}

func (r *Recorder) signatureOptions() signature.Options {
	s := r.settings.Signature
	return signature.Options{
		Selector:   s.Selector,
		CSSClass:   s.CSSClass,
		ImageAlt:   s.ImageAlt,
		ImageWidth: s.ImageWidth,
		DateFormat: s.DateFormat,
	}
}
