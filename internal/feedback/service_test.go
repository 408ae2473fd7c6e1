package feedback_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/saulo-duarte/tabuada-lambda/internal/evaluation"
	"github.com/saulo-duarte/tabuada-lambda/internal/feedback"
)

type fakeProvider struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeProvider) SendPrompt(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func sampleRequest() feedback.Request {
	return feedback.Request{
		StudentName: "Damayra",
		Score:       8,
		Total:       10,
		Missed: []evaluation.MissedQuestion{
			{Question: "7 x 8", CorrectAnswer: 56, UserAnswer: 54},
			{Question: "6 x 9", CorrectAnswer: 54, UserAnswer: 56},
		},
	}
}

func TestRequestFeedback(t *testing.T) {
	ctx := context.Background()

	t.Run("ProviderText", func(t *testing.T) {
		p := &fakeProvider{text: "  ¡Muy bien, Damayra!  "}
		got := feedback.NewService(p).RequestFeedback(ctx, sampleRequest())

		if got != "¡Muy bien, Damayra!" {
			t.Errorf("unexpected feedback %q", got)
		}
		if len(p.prompts) != 1 {
			t.Fatalf("expected exactly one provider call, got %d", len(p.prompts))
		}
	})

	t.Run("ProviderError", func(t *testing.T) {
		p := &fakeProvider{err: errors.New("deadline exceeded")}
		if got := feedback.NewService(p).RequestFeedback(ctx, sampleRequest()); got != feedback.FallbackMessage {
			t.Errorf("expected fallback, got %q", got)
		}
		if len(p.prompts) != 1 {
			t.Errorf("expected no retries, got %d calls", len(p.prompts))
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		p := &fakeProvider{text: "   "}
		if got := feedback.NewService(p).RequestFeedback(ctx, sampleRequest()); got != feedback.FallbackMessage {
			t.Errorf("expected fallback, got %q", got)
		}
	})

	t.Run("NoProvider", func(t *testing.T) {
		if got := feedback.NewService(nil).RequestFeedback(ctx, sampleRequest()); got != feedback.FallbackMessage {
			t.Errorf("expected fallback, got %q", got)
		}
	})
}

func TestRequestAsync(t *testing.T) {
	p := &fakeProvider{err: errors.New("boom")}
	ch := feedback.NewService(p).RequestAsync(context.Background(), sampleRequest())

	if got := <-ch; got != feedback.FallbackMessage {
		t.Errorf("expected fallback, got %q", got)
	}
	if _, open := <-ch; open {
		t.Error("channel should be closed after the single response")
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := feedback.BuildPrompt(sampleRequest())

	for _, want := range []string{
		"Damayra",
		"Resultado: 8/10.",
		"7 x 8 (puso 54, era 56), 6 x 9 (puso 56, era 54)",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}

	perfect := feedback.BuildPrompt(feedback.Request{StudentName: "Raúl", Score: 5, Total: 5})
	if !strings.Contains(perfect, "Errores cometidos: "+feedback.NoMistakesLabel+".") {
		t.Errorf("perfect score prompt should list no mistakes:\n%s", perfect)
	}
}
