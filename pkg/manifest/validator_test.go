package manifest

import (
	"strings"
	"testing"
)

func TestValidateFile_Valid(t *testing.T) {
	result, err := ValidateFile(testPath("valid.toml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Fatalf("Valid = false, issues: %s", result.Summary())
	}
}

func TestValidateFile_SchemaViolations(t *testing.T) {
	tests := []struct {
		file     string
		wantPath string // substring expected in an issue path
	}{
		{"invalid-missing-class.toml", "/optimizers/Lion"},
		{"invalid-missing-source.toml", "/optimizers/Lion"},
		{"invalid-unknown-field.toml", "/optimizers/Lion"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile error: %v", err)
			}
			if result.Valid {
				t.Fatal("Valid = true, want false")
			}
			if len(result.Issues) == 0 {
				t.Fatal("no issues reported")
			}
			found := false
			for _, issue := range result.Issues {
				if strings.Contains(issue.Path, tt.wantPath) {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue path contains %q, issues: %s", tt.wantPath, result.Summary())
			}
		})
	}
}

func TestValidate_MalformedTOML(t *testing.T) {
	_, err := Validate([]byte("{ this is not TOML :::"))
	if err == nil {
		t.Fatal("expected error for malformed TOML, got nil")
	}
}

func TestValidate_MissingOptimizersTable(t *testing.T) {
	result, err := Validate([]byte(`title = "nope"`))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("Valid = true, want false for document without optimizers table")
	}
}

func TestValidate_NonInstallableWithoutSource(t *testing.T) {
	data := []byte(`[optimizers.Research]
module_path = "research_opt"
class_name = "ResearchOpt"
installable = false
`)
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Fatalf("Valid = false for non-installable entry without source, issues: %s", result.Summary())
	}
}

func TestSummary(t *testing.T) {
	r := &ValidationResult{Valid: true}
	if r.Summary() != "valid" {
		t.Errorf("Summary() = %q, want %q", r.Summary(), "valid")
	}

	r = &ValidationResult{
		Valid: false,
		Issues: []ValidationIssue{
			{Path: "/optimizers/X", Message: "missing property 'class_name'"},
		},
	}
	if !strings.Contains(r.Summary(), "class_name") {
		t.Errorf("Summary() = %q, want it to mention class_name", r.Summary())
	}
}
