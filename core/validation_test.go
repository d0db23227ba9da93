package core

import (
	"errors"
	"testing"
)

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  *HospitalRecord
		wantErr error
	}{
		{
			name:    "valid record",
			record:  &HospitalRecord{Name: "Apollo Hospital", City: "Bangalore", Address: "123 Main St"},
			wantErr: nil,
		},
		{
			name:    "missing address is valid",
			record:  &HospitalRecord{Name: "Apollo Hospital", City: "Bangalore"},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "empty name",
			record:  &HospitalRecord{City: "Bangalore"},
			wantErr: ErrEmptyName,
		},
		{
			name:    "empty city",
			record:  &HospitalRecord{Name: "Apollo Hospital"},
			wantErr: ErrEmptyCity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecord(tt.record)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateRecord() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateRecord() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateIntent(t *testing.T) {
	tests := []struct {
		name    string
		intent  *Intent
		wantErr error
	}{
		{
			name:    "valid search intent",
			intent:  &Intent{Type: IntentSearch, Count: 3},
			wantErr: nil,
		},
		{
			name:    "valid confirmation intent",
			intent:  &Intent{Type: IntentConfirmation, HospitalName: "manipal", City: "Bangalore", Count: 1},
			wantErr: nil,
		},
		{
			name:    "nil intent",
			intent:  nil,
			wantErr: ErrInvalidIntent,
		},
		{
			name:    "unknown type",
			intent:  &Intent{Type: IntentType(42), Count: 3},
			wantErr: ErrInvalidIntentType,
		},
		{
			name:    "zero count",
			intent:  &Intent{Type: IntentSearch, Count: 0},
			wantErr: ErrInvalidCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIntent(tt.intent)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateIntent() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateIntent() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
