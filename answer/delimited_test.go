package answer_test

import (
	"testing"

	"github.com/fwojciec/jobrag"
	"github.com/fwojciec/jobrag/answer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDelimited(t *testing.T) {
	t.Parallel()

	t.Run("parses a single line into four fields", func(t *testing.T) {
		t.Parallel()

		got, found := answer.ParseDelimited("JOBS:\n- Eng | Acme | NYC | Build things")

		assert.True(t, found)
		assert.Equal(t, []jobrag.Suggestion{
			{Role: "Eng", Company: "Acme", Location: "NYC", Description: "Build things"},
		}, got)
	})

	t.Run("drops lines with fewer than four fields", func(t *testing.T) {
		t.Parallel()

		got, found := answer.ParseDelimited("JOBS:\n- Eng | Acme")

		assert.True(t, found)
		assert.Empty(t, got)
	})

	t.Run("keeps pipes past the third field in the description", func(t *testing.T) {
		t.Parallel()

		got, _ := answer.ParseDelimited("JOBS:\n- Eng | Acme | NYC | Build | ship |  repeat")

		require.Len(t, got, 1)
		assert.Equal(t, "Build | ship | repeat", got[0].Description)
	})

	t.Run("skips blank lines and lines without a leading dash", func(t *testing.T) {
		t.Parallel()

		text := "JOBS:\n\n* Eng | A | B | C\n   - Dev | Beta | LA | Ship it   \nnote | x | y | z\n"

		got, _ := answer.ParseDelimited(text)

		assert.Equal(t, []jobrag.Suggestion{
			{Role: "Dev", Company: "Beta", Location: "LA", Description: "Ship it"},
		}, got)
	})

	t.Run("drops lines with a blank role", func(t *testing.T) {
		t.Parallel()

		got, found := answer.ParseDelimited("JOBS:\n-  | Acme | NYC | desc")

		assert.True(t, found)
		assert.Empty(t, got)
	})

	t.Run("keeps empty company location and description", func(t *testing.T) {
		t.Parallel()

		got, _ := answer.ParseDelimited("JOBS:\n- Eng | | |")

		assert.Equal(t, []jobrag.Suggestion{{Role: "Eng"}}, got)
	})

	t.Run("matches the marker case-insensitively", func(t *testing.T) {
		t.Parallel()

		got, found := answer.ParseDelimited("Jobs:\n- Eng | A | B | C")

		assert.True(t, found)
		require.Len(t, got, 1)
		assert.Equal(t, "Eng", got[0].Role)
	})

	t.Run("reads the rest of the marker line", func(t *testing.T) {
		t.Parallel()

		got, _ := answer.ParseDelimited("Here you go. JOBS: - Eng | A | B | C")

		require.Len(t, got, 1)
		assert.Equal(t, "C", got[0].Description)
	})

	t.Run("ignores pipe lines before the marker", func(t *testing.T) {
		t.Parallel()

		text := "- Old | X | Y | Z\nSUMMARY: a | b\nJOBS:\n- E | F | G | H"

		got, _ := answer.ParseDelimited(text)

		assert.Equal(t, []jobrag.Suggestion{
			{Role: "E", Company: "F", Location: "G", Description: "H"},
		}, got)
	})

	t.Run("normalizes CRLF line endings", func(t *testing.T) {
		t.Parallel()

		got, _ := answer.ParseDelimited("JOBS:\r\n- Eng | Acme | NYC | x\r\n- Dev | Beta | LA | y\r\n")

		require.Len(t, got, 2)
		assert.Equal(t, "x", got[0].Description)
		assert.Equal(t, "Dev", got[1].Role)
	})

	t.Run("normalizes lone CR line endings", func(t *testing.T) {
		t.Parallel()

		got, _ := answer.ParseDelimited("JOBS:\r- Eng | Acme | NYC | x\r- Dev | Beta | LA | y")

		assert.Len(t, got, 2)
	})

	t.Run("reports missing marker", func(t *testing.T) {
		t.Parallel()

		got, found := answer.ParseDelimited("- Eng | Acme | NYC | Build things")

		assert.False(t, found)
		assert.Nil(t, got)
	})

	t.Run("handles empty text", func(t *testing.T) {
		t.Parallel()

		got, found := answer.ParseDelimited("")

		assert.False(t, found)
		assert.Nil(t, got)
	})
}
