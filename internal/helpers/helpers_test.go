package helpers

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordMatcher(t *testing.T) {
	m := NewKeywordMatcher("payment", "api")

	assert.True(t, m.MatchString("Accept PAYMENTS online"))
	assert.True(t, m.MatchString("public API"))
	assert.False(t, m.MatchString("rapid prototyping"))
	assert.Equal(t, []string{"api", "payments"}, m.FindAll("An API for Payments"))

	exact := NewExactMatcher("Stripe")
	assert.True(t, exact.MatchString("pay with stripe"))
	assert.False(t, exact.MatchString("stripes"))

	var zero KeywordMatcher
	assert.False(t, zero.MatchString("anything"))
	assert.Nil(t, zero.FindAll("anything"))
}

func TestTextHelpers(t *testing.T) {
	assert.Equal(t, "Real Time Messaging", TitleCase(" real time messaging "))
	assert.Equal(t, "team-chat-app", Slugify("Team Chat App!"))
	assert.Equal(t, "", Slugify("---"))

	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefghij", 5))
	assert.Equal(t, "abc", Truncate("abc", 0))

	assert.Equal(t, "1 week", Pluralize(1, "week"))
	assert.Equal(t, "0 tasks", Pluralize(0, "task"))
	assert.Equal(t, "3 phases", Pluralize(3, "phase"))
}

func TestTitleCaseConcurrent(t *testing.T) {
	inputs := map[string]string{
		"real time messaging": "Real Time Messaging",
		"user login":          "User Login",
		"checkout":            "Checkout",
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				for in, want := range inputs {
					assert.Equal(t, want, TitleCase(in))
				}
			}
		}()
	}
	wg.Wait()
}

func TestFileHelpers(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	require.NoError(t, EnsureDir(dir))

	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	name := GenerateOutputFilename("plan", "md", at)
	assert.Equal(t, "plan-20260301-093000.md", name)

	path := GetOutputPath(dir, name)
	assert.False(t, FileExists(path))
	require.NoError(t, SaveText("# Plan", path))
	assert.True(t, FileExists(path))
	assert.False(t, FileExists(dir))

	content, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Plan", content)

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	jsonPath := filepath.Join(dir, "doc.json")
	require.NoError(t, SaveJSON(doc{Name: "x", Count: 2}, jsonPath))

	var got doc
	require.NoError(t, LoadJSON(jsonPath, &got))
	assert.Equal(t, doc{Name: "x", Count: 2}, got)

	assert.Error(t, LoadJSON(filepath.Join(dir, "missing.json"), &got))
	assert.Error(t, LoadJSON(path, &got))
}

func TestPrintDebugHonoursVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetDebugOutput(&buf)
	defer SetDebugOutput(os.Stderr)
	defer SetVerbose(false)

	SetVerbose(false)
	PrintDebug("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetVerbose(true)
	assert.True(t, IsVerbose())
	PrintDebug("shown %d", 2)
	assert.Contains(t, buf.String(), "[DEBUG] shown 2")
}
