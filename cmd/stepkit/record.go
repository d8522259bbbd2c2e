package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stepkit/internal/config"
	"github.com/alexisbeaulieu97/stepkit/internal/logger"
	"github.com/alexisbeaulieu97/stepkit/internal/signature"
	"github.com/alexisbeaulieu97/stepkit/internal/webview"
	"github.com/alexisbeaulieu97/stepkit/pkg/diff"
	"github.com/alexisbeaulieu97/stepkit/pkg/result"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type recordOptions struct {
	htmlPath      string
	answer        string
	signaturePath string
	signer        string
	output        string
	showMarkup    bool
	showDiff      bool
}

func newRecordCmd(root *rootFlags) *cobra.Command {
	opts := &recordOptions{}

	cmd := &cobra.Command{
		Use:   "record <step-id>",
		Short: "Record the result of a web view step from captured markup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.htmlPath, "html", "", "Path to the markup shown by the web view")
	cmd.Flags().StringVar(&opts.answer, "answer", "", "Answer produced by the web view")
	cmd.Flags().StringVar(&opts.signaturePath, "signature", "", "Path to a PNG image of the captured signature")
	cmd.Flags().StringVar(&opts.signer, "signer", "", "Name printed under the signature")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&opts.showMarkup, "show-markup", false, "Print both markup variants in text output")
	cmd.Flags().BoolVar(&opts.showDiff, "diff", false, "Print what the signature changed in the markup")

	return cmd
}

func runRecord(cmd *cobra.Command, root *rootFlags, stepID string, opts *recordOptions) error {
	if strings.TrimSpace(stepID) == "" {
		return newCommandError("record", "validating step ID", errors.New("step ID cannot be empty"), "Provide the identifier of the web view step.")
	}

	switch opts.output {
	case outputText, outputJSON, outputYAML:
	default:
		return newCommandError("record", "validating output format", fmt.Errorf("unsupported output %q", opts.output), "Use one of text, json or yaml.")
	}

	cfg, err := config.Load(root.configPath)
	if err != nil {
		return newCommandError("record", "loading settings", err, "Check the settings file passed with --config.")
	}

	level := cfg.Logging.Level
	if root.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.Logging.HumanReadable, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return newCommandError("record", "creating logger", err, "Use one of debug, info, warn or error as the log level.")
	}

	submission := webview.Submission{}
	if cmd.Flags().Changed("answer") {
		answer := opts.answer
		submission.Answer = &answer
	}

	if opts.htmlPath != "" {
		data, err := os.ReadFile(opts.htmlPath)
		if err != nil {
			return newCommandError("record", fmt.Sprintf("reading markup %q", opts.htmlPath), err, "Check that the markup file exists and is readable.")
		}
		submission.HTML = string(data)
	}

	if opts.signaturePath != "" {
		image, err := os.ReadFile(opts.signaturePath)
		if err != nil {
			return newCommandError("record", fmt.Sprintf("reading signature %q", opts.signaturePath), err, "Check that the signature image exists and is readable.")
		}
		submission.Signature = &signature.Signature{Image: image, Signer: opts.signer}
	}

	recorder := webview.NewRecorder(stepID, webview.WithConfig(cfg.WebView), webview.WithLogger(log))
	res, err := recorder.Complete(cmd.Context(), submission)
	if err != nil {
		return newCommandError("record", fmt.Sprintf("recording step %q", stepID), err, "Check the step ID, markup and signature image.")
	}

	payload := newRecordPayload(res)
	switch opts.output {
	case outputJSON:
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case outputYAML:
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent(2)
		if err := encoder.Encode(payload); err != nil {
			return err
		}
		return encoder.Close()
	default:
		renderRecordText(cmd, payload, opts)
		return nil
	}
}

type recordPayload struct {
	Identifier        string    `json:"identifier" yaml:"identifier"`
	Answer            *string   `json:"answer,omitempty" yaml:"answer,omitempty"`
	HTML              *string   `json:"html,omitempty" yaml:"html,omitempty"`
	HTMLWithSignature *string   `json:"html_with_signature,omitempty" yaml:"html_with_signature,omitempty"`
	StartedAt         time.Time `json:"started_at" yaml:"started_at"`
	EndedAt           time.Time `json:"ended_at" yaml:"ended_at"`
}

func newRecordPayload(res *result.WebViewStepResult) recordPayload {
	payload := recordPayload{
		Identifier: res.Identifier,
		StartedAt:  res.StartDate,
		EndedAt:    res.EndDate,
	}
	if answer, ok := res.Answer(); ok {
		payload.Answer = &answer
	}
	if html, ok := res.HTML(); ok {
		payload.HTML = &html
	}
	if signed, ok := res.HTMLWithSignature(); ok {
		payload.HTMLWithSignature = &signed
	}
	return payload
}

func renderRecordText(cmd *cobra.Command, payload recordPayload, opts *recordOptions) {
	out := cmd.OutOrStdout()
	p := painter{styled: supportsStyles(out)}

	fmt.Fprintf(out, "%s %s\n", p.label("Step:     "), payload.Identifier)
	fmt.Fprintf(out, "%s %s\n", p.label("Answer:   "), describeOptional(p, payload.Answer, func(s string) string { return s }))
	fmt.Fprintf(out, "%s %s\n", p.label("Markup:   "), describeOptional(p, payload.HTML, describeSize))
	fmt.Fprintf(out, "%s %s\n", p.label("Signed:   "), describeOptional(p, payload.HTMLWithSignature, describeSize))
	fmt.Fprintf(out, "%s %s\n", p.label("Duration: "), payload.EndedAt.Sub(payload.StartedAt).Round(time.Millisecond))

	if opts.showMarkup {
		if payload.HTML != nil {
			fmt.Fprintf(out, "\n%s\n%s\n", p.label("Markup:"), p.markup(*payload.HTML))
		}
		if payload.HTMLWithSignature != nil {
			fmt.Fprintf(out, "\n%s\n%s\n", p.label("Markup with signature:"), p.markup(*payload.HTMLWithSignature))
		}
	}

	if opts.showDiff && payload.HTML != nil && payload.HTMLWithSignature != nil {
		fmt.Fprintf(out, "\n%s\n%s", p.label("Signature changes:"), diff.Markup(*payload.HTML, *payload.HTMLWithSignature))
	}
}

func describeOptional(p painter, value *string, describe func(string) string) string {
	if value == nil {
		return p.value("(none)", false)
	}
	return p.value(describe(*value), true)
}

func describeSize(s string) string {
	return fmt.Sprintf("%d bytes", len(s))
}
