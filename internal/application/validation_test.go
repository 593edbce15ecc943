package application

import (
	"errors"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "title",
			value:     "Buy milk",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "title",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "title",
			value:     "   ",
			wantErr:   true,
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
			}
		})
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		key       string
		wantErr   bool
		wantMsg   string
	}{
		{
			name:      "short hex key",
			fieldName: "sourceKey",
			key:       "3f2a9c1d",
			wantErr:   false,
		},
		{
			name:      "dotted key",
			fieldName: "targetKey",
			key:       "P.1",
			wantErr:   false,
		},
		{
			name:      "empty key",
			fieldName: "targetKey",
			key:       "",
			wantErr:   true,
			wantMsg:   "targetKey: target key is required",
		},
		{
			name:      "key with spaces",
			fieldName: "key",
			key:       "a b",
			wantErr:   true,
			wantMsg:   "key: invalid key: a b",
		},
		{
			name:      "leading dash",
			fieldName: "parentKey",
			key:       "-x",
			wantErr:   true,
			wantMsg:   "parentKey: invalid parent key: -x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.fieldName, tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && err.Error() != tt.wantMsg {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateListName(t *testing.T) {
	if err := ValidateListName("groceries 2025"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateListName(""); err == nil {
		t.Error("expected error for empty list name")
	}
	if err := ValidateListName("../etc"); err == nil {
		t.Error("expected error for path-like list name")
	}
}
