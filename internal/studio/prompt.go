package studio

import (
	"fmt"
	"strings"
)

// AspectRatio selects how the edited image should be composed.
type AspectRatio string

const (
	RatioOriginal AspectRatio = "original"
	RatioSquare   AspectRatio = "1:1"
	RatioStory    AspectRatio = "9:16"
	RatioPortrait AspectRatio = "4:5"
)

// DefaultPrompt is the template pre-filled into a fresh session.
const DefaultPrompt = "Replace the background of this product photo with a bright, airy " +
	"professional studio scene: a clean light-gray seamless backdrop, a subtle soft shadow " +
	"under the product, and gentle diffused lighting from the upper left. Keep the product " +
	"itself exactly as it is, preserving its shape, colors, texture, label text, and " +
	"proportions. The result should look like a polished e-commerce hero shot."

// NormalizeRatio sanitizes free-form input into a supported aspect ratio.
func NormalizeRatio(v string) AspectRatio {
	switch strings.TrimSpace(strings.ToLower(v)) {
	case string(RatioSquare):
		return RatioSquare
	case string(RatioStory):
		return RatioStory
	case string(RatioPortrait):
		return RatioPortrait
	default:
		return RatioOriginal
	}
}

// BuildPrompt returns the instruction sent to the provider. When a ratio other
// than the original is selected, a composition clause is appended.
func BuildPrompt(prompt string, ratio AspectRatio) string {
	prompt = strings.TrimSpace(prompt)
	if ratio == RatioOriginal || ratio == "" {
		return prompt
	}
	return fmt.Sprintf("%s Please ensure the final image composition is suitable for a %s aspect ratio.", prompt, ratio)
}
