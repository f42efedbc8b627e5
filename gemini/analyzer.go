// Package gemini implements remote symptom analysis using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/fwojciec/symcheck"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Analyzer implements symcheck.RemoteAnalyzer at compile time.
var _ symcheck.RemoteAnalyzer = (*Analyzer)(nil)

// Analyzer implements symcheck.RemoteAnalyzer using Google Gemini.
type Analyzer struct {
	client *genai.Client
	model  string
}

// NewAnalyzer creates a new Analyzer. An empty model selects DefaultModel.
func NewAnalyzer(client *genai.Client, model string) *Analyzer {
	if model == "" {
		model = DefaultModel
	}
	return &Analyzer{client: client, model: model}
}

// Analyze asks the model for a preliminary assessment of the symptoms.
func (a *Analyzer) Analyze(ctx context.Context, req *symcheck.Request) symcheck.RemoteResult {
	if err := req.Validate(); err != nil {
		return symcheck.RemoteFailure{Reason: symcheck.ErrorMessage(err)}
	}
	if a.client == nil {
		return symcheck.RemoteFailure{Reason: "gemini client not configured"}
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(req)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return symcheck.RemoteFailure{Reason: err.Error()}
	}
	if result == nil {
		return symcheck.RemoteFailure{Reason: "gemini returned nil result"}
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return symcheck.RemoteFailure{Reason: "gemini returned empty analysis"}
	}

	return symcheck.RemoteSuccess{Analysis: text, Disclaimer: symcheck.Disclaimer}
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a cautious medical information assistant. Given a list of symptoms, " +
					"list a few possible conditions with a short explanation and self-care advice for each, " +
					"and say clearly when the person should seek medical attention. " +
					"Do not present the answer as a diagnosis. Use plain text with line breaks, no markdown.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt describing the reported symptoms.
// User text is escaped so it cannot close or open prompt tags.
func BuildUserPrompt(req *symcheck.Request) string {
	var sb strings.Builder
	sb.WriteString("<symptoms>\n")
	for _, s := range req.Symptoms {
		name := strings.ReplaceAll(string(symcheck.Normalize(s)), "_", " ")
		if name == "" {
			continue
		}
		fmt.Fprintf(&sb, "<symptom>%s</symptom>\n", html.EscapeString(name))
	}
	if desc := strings.TrimSpace(req.CustomSymptoms); desc != "" {
		fmt.Fprintf(&sb, "<description>%s</description>\n", html.EscapeString(desc))
	}
	sb.WriteString("</symptoms>\n\n")
	sb.WriteString("What conditions could explain these symptoms?")
	return sb.String()
}
