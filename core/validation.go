// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateRecord validates a HospitalRecord according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - City must not be empty
//
// NOT validated:
//   - Address (catalogs routinely ship records without one)
//   - StableIndex (assigned by the loader)
func ValidateRecord(record *HospitalRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	if record.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyName)
	}

	if record.City == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyCity)
	}

	return nil
}

// ValidateIntent validates an Intent according to domain rules.
//
// Validation rules:
//   - Type must be a known IntentType
//   - Count must be at least 1
func ValidateIntent(intent *Intent) error {
	if intent == nil {
		return fmt.Errorf("%w: intent is nil", ErrInvalidIntent)
	}

	if err := ValidateIntentType(intent.Type); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidIntent, err)
	}

	if intent.Count < 1 {
		return fmt.Errorf("%w: %w", ErrInvalidIntent, ErrInvalidCount)
	}

	return nil
}

// ValidateIntentType validates that an IntentType has a valid value.
func ValidateIntentType(t IntentType) error {
	if t != IntentSearch && t != IntentConfirmation && t != IntentFollowup {
		return fmt.Errorf("%w: value %d", ErrInvalidIntentType, t)
	}
	return nil
}
