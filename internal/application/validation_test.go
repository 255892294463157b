package application

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid value",
			fieldName: "inputFile",
			value:     "/src/main.js",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "inputFile",
			value:     "",
			wantErr:   true,
			errMsg:    "input file is required",
		},
		{
			name:      "whitespace only",
			fieldName: "depLog",
			value:     "   ",
			wantErr:   true,
			errMsg:    "dependency log is required",
		},
		{
			name:      "unknown field name falls back",
			fieldName: "somethingElse",
			value:     "",
			wantErr:   true,
			errMsg:    "somethingElse is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
				if !errors.Is(err, ErrInvalidInput) {
					t.Error("expected errors.Is(err, ErrInvalidInput)")
				}
			}
		})
	}
}

func TestValidateScriptPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "posix file", path: "/src/main.js", wantErr: false},
		{name: "windows file", path: `C:\src\main.js`, wantErr: false},
		{name: "empty", path: "", wantErr: true},
		{name: "directory", path: "/src/", wantErr: true},
		{name: "windows directory", path: `C:\src\`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScriptPath("inputFile", tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScriptPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestPhaseError_Unwrap(t *testing.T) {
	err := &PhaseError{Input: "/a.js", Phase: "closure call", Err: ErrCompilerLaunch}

	if !errors.Is(err, ErrCompilerLaunch) {
		t.Error("expected PhaseError to unwrap to ErrCompilerLaunch")
	}
	if !strings.Contains(err.Error(), "/a.js") || !strings.Contains(err.Error(), "closure call") {
		t.Errorf("error %q should mention input and phase", err.Error())
	}
}
