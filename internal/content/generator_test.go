package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clientFunc adapts a function to the TextClient interface.
type clientFunc func(ctx context.Context, prompt string) (string, error)

func (f clientFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// recordingClient returns canned text and remembers every prompt it saw.
func recordingClient(text string, prompts *[]string) clientFunc {
	return func(ctx context.Context, prompt string) (string, error) {
		*prompts = append(*prompts, prompt)
		return text, nil
	}
}

func newTestGenerator(t *testing.T, client TextClient, opts Options) *Generator {
	t.Helper()
	g, err := NewGenerator(client, opts)
	require.NoError(t, err)
	return g
}

// ---------------------------------------------------------------------------
// Title
// ---------------------------------------------------------------------------

func TestGenerateTitle_StripsQuotes(t *testing.T) {
	var prompts []string
	g := newTestGenerator(t, recordingClient(`The "Best" Shirt`, &prompts), Options{})

	got, err := g.GenerateTitle(context.Background(), "vintage rock band")
	require.NoError(t, err)

	assert.Equal(t, "The Best Shirt", got)
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "vintage rock band")
	assert.Contains(t, prompts[0], "Max 50 chars")
}

func TestGenerateTitle_HonorsConfiguredLimit(t *testing.T) {
	var prompts []string
	g := newTestGenerator(t, recordingClient("ok", &prompts), Options{TitleMaxChars: 80})

	_, err := g.GenerateTitle(context.Background(), "retro sunset")
	require.NoError(t, err)

	assert.Contains(t, prompts[0], "Max 80 chars")
}

func TestGenerateTitle_PropagatesClientError(t *testing.T) {
	wantErr := errors.New("backend down")
	g := newTestGenerator(t, clientFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", wantErr
	}), Options{})

	_, err := g.GenerateTitle(context.Background(), "theme")
	assert.ErrorIs(t, err, wantErr)
}

// ---------------------------------------------------------------------------
// Description
// ---------------------------------------------------------------------------

func TestGenerateDescription_AppendsBuiltinTemplate(t *testing.T) {
	var prompts []string
	g := newTestGenerator(t, recordingClient("A cozy shirt for cold days.", &prompts), Options{})

	got, err := g.GenerateDescription(context.Background(), "winter cabin", "Cabin Comfort")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "A cozy shirt for cold days."))
	assert.True(t, strings.HasSuffix(got, g.TemplateSuffix()))
	assert.Contains(t, got, "Acrylic art panels")

	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "Title: Cabin Comfort")
	assert.Contains(t, prompts[0], "Theme: winter cabin")
	assert.Contains(t, prompts[0], "Maximum 150 characters")
}

func TestGenerateDescription_StripsQuotesBeforeAppending(t *testing.T) {
	g := newTestGenerator(t, clientFunc(func(ctx context.Context, prompt string) (string, error) {
		return `A "premium" product`, nil
	}), Options{})

	got, err := g.GenerateDescription(context.Background(), "t", "title")
	require.NoError(t, err)

	assert.NotContains(t, got, `"`)
	assert.True(t, strings.HasPrefix(got, "A premium product"))
}

func TestGenerateDescription_CustomTemplateRendered(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suffix.md")
	require.NoError(t, os.WriteFile(path, []byte("**Hand made** in small batches."), 0644))

	g := newTestGenerator(t, clientFunc(func(ctx context.Context, prompt string) (string, error) {
		return "Body.", nil
	}), Options{TemplatePath: path})

	got, err := g.GenerateDescription(context.Background(), "t", "title")
	require.NoError(t, err)

	assert.Contains(t, got, "<strong>Hand made</strong>")
	assert.NotContains(t, got, "Acrylic art panels")
}

func TestNewGenerator_MissingTemplateFile(t *testing.T) {
	_, err := NewGenerator(clientFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", nil
	}), Options{TemplatePath: "/nonexistent/suffix.md"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "description template")
}

// ---------------------------------------------------------------------------
// Image prompt and tags
// ---------------------------------------------------------------------------

func TestGenerateImagePrompt(t *testing.T) {
	var prompts []string
	g := newTestGenerator(t, recordingClient(`neon "tiger" in fog`, &prompts), Options{})

	got, err := g.GenerateImagePrompt(context.Background(), "tiger")
	require.NoError(t, err)

	assert.Equal(t, "neon tiger in fog", got)
	assert.Contains(t, prompts[0], "image prompt")
	assert.Contains(t, prompts[0], "Max 75 chars")
}

func TestGenerateTags(t *testing.T) {
	var prompts []string
	g := newTestGenerator(t, recordingClient("rock, vintage, band", &prompts), Options{})

	got, err := g.GenerateTags(context.Background(), "vintage rock band")
	require.NoError(t, err)

	assert.Equal(t, "rock, vintage, band", got)
	assert.Contains(t, prompts[0], "Separate with commas")
}
