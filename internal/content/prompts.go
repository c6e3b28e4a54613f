package content

import "fmt"

// Prompt builders. Length limits are hints to the model; nothing here
// enforces them on the generated text.

func titlePrompt(theme string, maxChars int) string {
	return fmt.Sprintf("Generate a catchy title with theme: '%s'. Max %d chars.", theme, maxChars)
}

func descriptionPrompt(theme, title string, maxChars int) string {
	return fmt.Sprintf(`Generate a compelling description for a product with:
Title: %s
Theme: %s
Maximum %d characters.`, title, theme, maxChars)
}

func imagePrompt(theme string, maxChars int) string {
	return fmt.Sprintf("Generate a creative image prompt for a T-shirt with theme: '%s'. Max %d chars.", theme, maxChars)
}

func tagsPrompt(theme string) string {
	return fmt.Sprintf("Generate relevant tags for a T-shirt with theme: '%s'. Separate with commas.", theme)
}
