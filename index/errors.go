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


package index

import "errors"

var (
	// ErrNoDocuments indicates Build was given an empty corpus.
	ErrNoDocuments = errors.New("no documents to index")

	// ErrRecordDocumentMismatch indicates the record and document slices
	// passed to Build have different lengths.
	ErrRecordDocumentMismatch = errors.New("record and document counts differ")

	// ErrCorruptSnapshot indicates a snapshot's internal slices are
	// inconsistent and cannot be restored.
	ErrCorruptSnapshot = errors.New("corrupt index snapshot")
)
