package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/jobrag"
	"github.com/fwojciec/jobrag/mock"
	jrslog "github.com/fwojciec/jobrag/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("logs format counts hash and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := &jobrag.Answer{
			Text:        "SUMMARY: ok\nJOBS:\n- A | B | C | D",
			Summary:     "ok",
			Suggestions: []jobrag.Suggestion{{Role: "A", Company: "B", Location: "C", Description: "D"}},
			Format:      jobrag.FormatDelimited,
		}
		inner := &mock.AnswerParser{
			ParseFn: func(text string) *jobrag.Answer {
				return want
			},
		}

		p := jrslog.NewLoggingParser(inner, logger)
		got := p.Parse(want.Text)

		assert.Same(t, want, got)
		output := buf.String()
		assert.Contains(t, output, "parse answer")
		assert.Contains(t, output, "format=delimited")
		assert.Contains(t, output, "suggestions=1")
		assert.Contains(t, output, "summary_chars=2")
		assert.Contains(t, output, "hash="+jrslog.TextHash(want.Text))
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs unmatched answers without their content", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.AnswerParser{
			ParseFn: func(text string) *jobrag.Answer {
				return &jobrag.Answer{Text: text}
			},
		}

		p := jrslog.NewLoggingParser(inner, logger)
		p.Parse("confidential answer text")

		output := buf.String()
		assert.Contains(t, output, "format=(none)")
		assert.Contains(t, output, "suggestions=0")
		assert.NotContains(t, output, "confidential")
	})
}

func TestTextHash(t *testing.T) {
	t.Parallel()

	assert.Len(t, jrslog.TextHash("answer"), 16)
	assert.Equal(t, jrslog.TextHash("answer"), jrslog.TextHash("answer"))
	assert.NotEqual(t, jrslog.TextHash("answer"), jrslog.TextHash("answer2"))
}
