package ai

import (
	"context"
	"fmt"

	"github.com/KaramelBytes/shelflens-cli/internal/analysis"
	"github.com/KaramelBytes/shelflens-cli/internal/utils"
)

// Narrator turns one analysis view into narrative text via the chat API.
// It is strictly downstream of the pipeline: a failed call leaves the
// analysis tables untouched.
type Narrator struct {
	Client      *Client
	Model       string
	MaxTokens   int
	Temperature float64
	// PromptTokenLimit truncates the table portion of the prompt; 0 disables.
	PromptTokenLimit int
}

const systemPrompt = "You are a retail catalog analyst. You are given space-efficiency " +
	"tables computed from a product catalog and a purchase log. Write a short, " +
	"concrete narrative of what the numbers show. Do not invent values that are " +
	"not in the tables."

var viewQuestions = map[analysis.View]string{
	analysis.ViewFoundational: "Summarize which products and pages earn or waste catalog space.",
	analysis.ViewSegment:      "Summarize which customer segments use catalog space most efficiently.",
	analysis.ViewAffinity:     "Summarize the strongest co-purchase pairs and what they suggest for page placement.",
	analysis.ViewProfiles:     "Summarize the customer efficiency profiles and who the most valuable buyers are.",
}

// BuildPrompt assembles the messages for one view: the view's rendered table
// plus the full insight summary.
func (n *Narrator) BuildPrompt(view analysis.View, res *analysis.Result) []Message {
	table := res.RenderView(view)
	if n.PromptTokenLimit > 0 && utils.CountTokens(table) > n.PromptTokenLimit {
		table = utils.TruncateToTokenLimit(table, n.PromptTokenLimit)
	}
	user := fmt.Sprintf("%s\n\n%s\n%s", viewQuestions[view], table, res.RenderSummary())
	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: user},
	}
}

// Narrate generates narrative text for one view. Errors are returned to the
// caller for conversion into a per-view notice; they must not abort anything.
func (n *Narrator) Narrate(ctx context.Context, view analysis.View, res *analysis.Result) (string, error) {
	resp, err := n.Client.Generate(ctx, GenerateRequest{
		Model:       n.Model,
		Messages:    n.BuildPrompt(view, res),
		MaxTokens:   n.MaxTokens,
		Temperature: n.Temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response for %s view", view)
	}
	return resp.Choices[0].Message.Content, nil
}

// FallbackNotice is shown in place of a narrative when generation fails.
// The analysis tables stay available regardless.
func FallbackNotice(view analysis.View) string {
	return fmt.Sprintf("Narrative for the %s view is unavailable right now; the analysis tables are unaffected.", view)
}
