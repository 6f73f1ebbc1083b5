package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ruminaider/autotag/internal/logging"
)

// ValidationError is a single invalid setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid setting found by Validate.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidThemes lists the catppuccin flavors.
func ValidThemes() []string {
	return []string{"latte", "frappe", "macchiato", "mocha"}
}

// ValidOutputFormats lists the selection output formats.
func ValidOutputFormats() []string {
	return []string{"lines", "yaml", "json"}
}

// Validate returns every problem with c, or nil.
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors

	if !slices.Contains(ValidThemes(), strings.ToLower(c.UI.Theme)) {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Value:   c.UI.Theme,
			Message: "must be one of " + strings.Join(ValidThemes(), ", "),
		})
	}
	if c.UI.PanelGap < 0 {
		errs = append(errs, ValidationError{Field: "ui.panel_gap", Value: c.UI.PanelGap, Message: "must not be negative"})
	}
	if c.UI.Width < 0 {
		errs = append(errs, ValidationError{Field: "ui.width", Value: c.UI.Width, Message: "must not be negative"})
	}
	if !logging.ValidLevel(c.Log.Level) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Value:   c.Log.Level,
			Message: "must be one of DEBUG, INFO, WARN, ERROR",
		})
	}
	if !slices.Contains(ValidOutputFormats(), c.Output.Format) {
		errs = append(errs, ValidationError{
			Field:   "output.format",
			Value:   c.Output.Format,
			Message: "must be one of " + strings.Join(ValidOutputFormats(), ", "),
		})
	}

	return errs
}
