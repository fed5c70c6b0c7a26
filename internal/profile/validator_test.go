package profile

import (
	"testing"
)

func TestValidateFile_ValidProfiles(t *testing.T) {
	validFiles := []string{
		"valid-full.yaml",
		"valid-minimal.yaml",
		"valid-packages-only.yaml",
		"valid-empty.yaml",
	}

	for _, file := range validFiles {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  %s", issue)
				}
			}
		})
	}
}

func TestValidateFile_InvalidProfiles(t *testing.T) {
	invalidFiles := []struct {
		file string
		desc string
	}{
		{"invalid-unknown-key.yaml", "unrecognized top-level section"},
		{"invalid-bad-platform.yaml", "unknown platform under packages"},
		{"invalid-empty-packages.yaml", "empty package list"},
		{"invalid-bot-not-object.yaml", "bot section is not a mapping"},
		{"invalid-bad-name.yaml", "name violates pattern"},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Errorf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Errorf("expected at least one issue for %s (%s)", tt.file, tt.desc)
			}
		})
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	_, err := ValidateFile(testPath("invalid-not-yaml.yaml"))
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	_, err := ValidateFile(testPath("nonexistent.yaml"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestValidate_IssueFields(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-bad-name.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if len(result.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}

	hasMessage := false
	for _, issue := range result.Issues {
		if issue.Message != "" {
			hasMessage = true
			break
		}
	}
	if !hasMessage {
		t.Error("expected at least one issue with a non-empty message")
	}
}

func TestIssueString(t *testing.T) {
	withPath := ValidationIssue{Path: "/bot/repo_url", Message: "length must be >= 1"}
	if got := withPath.String(); got != "/bot/repo_url: length must be >= 1" {
		t.Errorf("String() = %q", got)
	}

	rootLevel := ValidationIssue{Message: "got null, want object"}
	if got := rootLevel.String(); got != "got null, want object" {
		t.Errorf("String() = %q", got)
	}
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	if err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("getSchema() returned nil schema")
	}
}
