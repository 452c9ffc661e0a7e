package ai

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/KaramelBytes/shelflens-cli/internal/analysis"
)

const narrativeProducts = `Product Name,Product Sales Revenue,Units Sold,Square Inches,Page Number,Catalog Price
A,1000,40,10,1,24.99
B,500,25,10,1,19.99
`

const narrativeCustomers = `Customer Email,Product Name,Units Purchased,Revenue Generated,Age Range,Income Tier,Location
a@x.com,A,1,200,25-34,High,West
a@x.com,B,1,100,25-34,High,West
`

func narrativeResult(t *testing.T) *analysis.Result {
	t.Helper()
	res, err := analysis.Run(narrativeProducts, narrativeCustomers, analysis.DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return res
}

func TestBuildPromptCarriesViewTableAndSummary(t *testing.T) {
	res := narrativeResult(t)
	n := &Narrator{Model: "m"}
	msgs := n.BuildPrompt(analysis.ViewSegment, res)
	if len(msgs) != 2 || msgs[0].Role != "system" || msgs[1].Role != "user" {
		t.Fatalf("messages = %+v", msgs)
	}
	user := msgs[1].Content
	if !strings.Contains(user, "[SEGMENT ANALYSIS]") {
		t.Fatalf("prompt missing segment table:\n%s", user)
	}
	if !strings.Contains(user, "[INSIGHTS]") {
		t.Fatalf("prompt missing insight summary:\n%s", user)
	}
	if !strings.Contains(user, "High Income West") {
		t.Fatalf("prompt missing segment data:\n%s", user)
	}
}

func TestBuildPromptHonorsTokenLimit(t *testing.T) {
	res := narrativeResult(t)
	tight := &Narrator{Model: "m", PromptTokenLimit: 4}
	loose := &Narrator{Model: "m"}
	if len(tight.BuildPrompt(analysis.ViewFoundational, res)[1].Content) >= len(loose.BuildPrompt(analysis.ViewFoundational, res)[1].Content) {
		t.Fatalf("token limit did not shrink the prompt")
	}
}

func TestNarrate(t *testing.T) {
	okBody := GenerateResponse{Choices: []Choice{{Message: Message{Role: "assistant", Content: "spaces earn their keep"}}}}
	srv := testServerSequence(t, []int{200}, nil, okBody)
	defer srv.Close()

	n := &Narrator{
		Client: NewClientWithBaseURL("key", 2*time.Second, 1, 10*time.Millisecond, 100*time.Millisecond, srv.URL),
		Model:  "test-model",
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	text, err := n.Narrate(ctx, analysis.ViewAffinity, narrativeResult(t))
	if err != nil {
		t.Fatalf("Narrate: %v", err)
	}
	if text != "spaces earn their keep" {
		t.Fatalf("text = %q", text)
	}
}

func TestNarrateFailureIsIsolated(t *testing.T) {
	srv := testServerSequence(t, []int{500}, nil, nil)
	defer srv.Close()

	res := narrativeResult(t)
	n := &Narrator{
		Client: NewClientWithBaseURL("key", 2*time.Second, 1, 10*time.Millisecond, 100*time.Millisecond, srv.URL),
		Model:  "test-model",
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := n.Narrate(ctx, analysis.ViewProfiles, res); err == nil {
		t.Fatalf("expected error from failing provider")
	}
	// The tables are untouched by the failed call.
	if len(res.Segments) == 0 || len(res.Profiles) == 0 {
		t.Fatalf("analysis tables affected by narrative failure")
	}
}

func TestFallbackNoticeNamesView(t *testing.T) {
	for _, v := range []analysis.View{analysis.ViewFoundational, analysis.ViewSegment, analysis.ViewAffinity, analysis.ViewProfiles} {
		if !strings.Contains(FallbackNotice(v), string(v)) {
			t.Fatalf("fallback notice for %s does not name the view", v)
		}
	}
}
