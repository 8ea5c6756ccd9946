package cmd

import (
	"encoding/json"
	"os"

	"github.com/aitbekov/tirlik/internal/models"
)

// printJSON writes v to stdout as indented JSON, for script consumption.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// displayName picks the localized name for CLI output based on the stored
// language setting.
func displayName(name models.LocalizedName, lang models.Language) string {
	return name.In(lang)
}
