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


// Package catalog loads the hospital dataset into an immutable, deduplicated
// collection of records.
//
// A catalog is parsed from a CSV file with case-insensitive, whitespace-trimmed
// headers ("hospital name", "address", "city"); extra columns are ignored and
// malformed rows are skipped. Duplicate (name, city) pairs collapse to the
// first occurrence. An unreadable or structurally invalid dataset falls back
// to a small built-in demo catalog so startup never fails on bad data.
package catalog
