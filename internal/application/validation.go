package application

import (
	"fmt"
	"strings"

	"linksync/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "nodeID" -> "node ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"nodeID":    "node ID",
		"sourceID":  "source ID",
		"indexPath": "index path",
		"rootKey":   "root key",
		"groups":    "sync groups",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateIndexPath checks that a structural path is well formed
func ValidateIndexPath(fieldName string, path domain.IndexPath) error {
	if err := ValidateRequired(fieldName, string(path)); err != nil {
		return err
	}
	if _, ok := path.Indices(); !ok {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("malformed %s: %s", formatFieldName(fieldName), path),
		}
	}
	return nil
}

// ValidateGroups parses a comma-separated group list into a config with
// only those groups enabled
func ValidateGroups(fieldName, list string) (domain.SyncConfig, error) {
	groups, err := domain.ParseGroupList(list)
	if err != nil {
		return nil, &ValidationError{Field: fieldName, Message: err.Error()}
	}
	if len(groups) == 0 {
		return nil, &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must name at least one group", formatFieldName(fieldName)),
		}
	}
	return domain.OnlyGroups(groups...), nil
}

// ResolveSyncConfig narrows base by an "only" list and a "skip" list. An empty
// only list keeps base; skipped groups are always disabled.
func ResolveSyncConfig(base domain.SyncConfig, only, skip string) (domain.SyncConfig, error) {
	cfg := base.Clone()
	if base == nil {
		cfg = domain.DefaultSyncConfig()
	}

	if strings.TrimSpace(only) != "" {
		narrowed, err := ValidateGroups("only", only)
		if err != nil {
			return nil, err
		}
		cfg = narrowed
	}

	skipped, err := domain.ParseGroupList(skip)
	if err != nil {
		return nil, &ValidationError{Field: "skip", Message: err.Error()}
	}
	for _, g := range skipped {
		cfg[g] = false
	}
	return cfg, nil
}
