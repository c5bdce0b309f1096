package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nodeconf/nodeconf-cli/pkg/locale"
	"github.com/nodeconf/nodeconf-cli/pkg/models"
	"github.com/nodeconf/nodeconf-cli/pkg/settings"
)

// ValidateFilePath validates that a file path exists and is a file
func ValidateFilePath(path string) error {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}

	return nil
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	if Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateBackend validates the store backend name
func ValidateBackend(backend string) error {
	if Contains([]string{models.BackendFile, models.BackendAPI}, backend) {
		return nil
	}
	return fmt.Errorf("invalid backend: %s (must be: file or api)", backend)
}

// ValidateLanguage checks that code names a language nodeconf ships
func ValidateLanguage(code string) error {
	var codes []string
	for _, l := range locale.Supported() {
		if strings.EqualFold(l.Code, code) {
			return nil
		}
		codes = append(codes, l.Code)
	}
	return fmt.Errorf("unsupported language: %s (must be one of: %s)", code, strings.Join(codes, ", "))
}

// ValidateConfig reports whether text is a well-formed configuration
// document, with the byte offset of the first syntax error.
func ValidateConfig(text string) error {
	if settings.IsValid(text) {
		return nil
	}

	var v interface{}
	err := json.Unmarshal([]byte(text), &v)
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Errorf("invalid JSON at offset %d: %s", syntaxErr.Offset, syntaxErr.Error())
	}
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return errors.New("invalid JSON")
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
