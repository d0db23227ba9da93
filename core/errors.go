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

import "errors"

// Domain validation errors
var (
	// ErrInvalidRecord indicates a HospitalRecord failed validation.
	ErrInvalidRecord = errors.New("invalid hospital record")

	// ErrInvalidIntent indicates an Intent failed validation.
	ErrInvalidIntent = errors.New("invalid intent")

	// ErrEmptyName indicates the record Name field is empty.
	ErrEmptyName = errors.New("hospital name cannot be empty")

	// ErrEmptyCity indicates the record City field is empty.
	ErrEmptyCity = errors.New("city cannot be empty")

	// ErrInvalidIntentType indicates an invalid IntentType value.
	ErrInvalidIntentType = errors.New("invalid intent type")

	// ErrInvalidCount indicates a non-positive requested result count.
	ErrInvalidCount = errors.New("count must be at least 1")
)
