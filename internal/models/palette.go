package models

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette colors back badges, bars and glyphs rather than body text, so we
// use the AA large-text threshold.
const wcagAAMinContrastRatio = 3.0
const wcagAAContrastNote = "WCAG AA for large text/UI components"
const darkTextColor = "#000000"
const lightTextColor = "#FFFFFF"
const defaultPalettePrimary = "#2563eb"
const defaultPaletteSurface = "#f8fafc"
const defaultPalettePositive = "#059669"
const defaultPaletteNegative = "#e11d48"
const defaultPaletteNeutral = "#6b7280"

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func IsHexColor(value string) bool {
	return hexColorRegex.MatchString(strings.TrimSpace(value))
}

// Palette is the dashboard color scheme. Positive, Negative and Neutral
// color the trend indicator of a KPI card.
type Palette struct {
	Primary  string
	Surface  string
	Positive string
	Negative string
	Neutral  string
}

func DefaultPalette() Palette {
	return Palette{
		Primary:  defaultPalettePrimary,
		Surface:  defaultPaletteSurface,
		Positive: defaultPalettePositive,
		Negative: defaultPaletteNegative,
		Neutral:  defaultPaletteNeutral,
	}
}

// WithDefaults fills blank or malformed colors from DefaultPalette.
func (p Palette) WithDefaults() Palette {
	defaults := DefaultPalette()
	return Palette{
		Primary:  colorOrDefault(p.Primary, defaults.Primary),
		Surface:  colorOrDefault(p.Surface, defaults.Surface),
		Positive: colorOrDefault(p.Positive, defaults.Positive),
		Negative: colorOrDefault(p.Negative, defaults.Negative),
		Neutral:  colorOrDefault(p.Neutral, defaults.Neutral),
	}
}

func (p Palette) Validate() error {
	colorFields := []struct {
		name  string
		value string
	}{
		{"primary_color", p.Primary},
		{"surface_color", p.Surface},
		{"positive_color", p.Positive},
		{"negative_color", p.Negative},
		{"neutral_color", p.Neutral},
	}

	for _, field := range colorFields {
		if !hexColorRegex.MatchString(field.value) {
			return fmt.Errorf("%s must be a 6-digit hex color like #AABBCC", field.name)
		}
		if err := validateTextContrast(field.name, field.value); err != nil {
			return err
		}
	}
	return nil
}

// Shade blends the primary color toward the surface color. t=0 is the
// primary color, t=1 the surface.
func (p Palette) Shade(t float64) string {
	p = p.WithDefaults()
	primary, err := colorful.Hex(p.Primary)
	if err != nil {
		return p.Primary
	}
	surface, err := colorful.Hex(p.Surface)
	if err != nil {
		return p.Primary
	}
	t = math.Max(0, math.Min(1, t))
	return primary.BlendLab(surface, t).Clamped().Hex()
}

func colorOrDefault(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || !hexColorRegex.MatchString(trimmed) {
		return fallback
	}
	return trimmed
}

func validateTextContrast(colorName, backgroundColor string) error {
	textColors := []string{darkTextColor, lightTextColor}
	bestRatio := 0.0
	bestText := ""
	for _, textColor := range textColors {
		ratio, err := contrastRatio(textColor, backgroundColor)
		if err != nil {
			return err
		}
		if ratio > bestRatio {
			bestRatio = ratio
			bestText = textColor
		}
	}
	if bestRatio < wcagAAMinContrastRatio {
		return fmt.Errorf(
			"%s must have contrast ratio >= %.1f with #000000 or #FFFFFF text (%s); best is %s at %.2f",
			colorName,
			wcagAAMinContrastRatio,
			wcagAAContrastNote,
			bestText,
			bestRatio,
		)
	}
	return nil
}

func contrastRatio(textColor, backgroundColor string) (float64, error) {
	textL, err := relativeLuminance(textColor)
	if err != nil {
		return 0, err
	}
	backgroundL, err := relativeLuminance(backgroundColor)
	if err != nil {
		return 0, err
	}
	lightest := math.Max(textL, backgroundL)
	darkest := math.Min(textL, backgroundL)
	return (lightest + 0.05) / (darkest + 0.05), nil
}

func relativeLuminance(hexColor string) (float64, error) {
	if !hexColorRegex.MatchString(hexColor) {
		return 0, fmt.Errorf("invalid hex color: %s", hexColor)
	}
	c, err := colorful.Hex(hexColor)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color: %s", hexColor)
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}
