package config

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Valid enum values for configuration fields.
var (
	ValidThemeNames = []string{"none", "default", "dracula", "nord", "gruvbox"}
	ValidThemeModes = []string{"auto", "light", "dark"}
)

// maxSheetNameLen is the spreadsheet limit for sheet names.
const maxSheetNameLen = 31

// Validate checks all fields of the config.
func (c Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if err := ValidateSheetName(c.SheetName); err != nil {
		return err
	}
	if err := validateEnum(c.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		return err
	}
	return validateEnum(c.Theme.Mode, "theme.mode", ValidThemeModes)
}

// ValidateSheetName checks a workbook sheet name: 1 to 31 characters, none
// of : \ / ? * [ ], and no leading or trailing apostrophe.
func ValidateSheetName(name string) error {
	n := utf8.RuneCountInString(name)
	if n == 0 || n > maxSheetNameLen {
		return fmt.Errorf("invalid sheet_name %q: must be 1 to %d characters", name, maxSheetNameLen)
	}
	if strings.ContainsAny(name, `:\/?*[]`) {
		return fmt.Errorf("invalid sheet_name %q: must not contain any of : \\ / ? * [ ]", name)
	}
	if strings.HasPrefix(name, "'") || strings.HasSuffix(name, "'") {
		return fmt.Errorf("invalid sheet_name %q: must not start or end with an apostrophe", name)
	}
	return nil
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
