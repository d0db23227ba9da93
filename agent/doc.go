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


// Package agent orchestrates a conversation turn: greeting short-circuit,
// domain gating, intent extraction, retrieval dispatch, model-backed response
// generation with a bounded retry policy, and memory bookkeeping.
//
// A turn never returns an error to the caller. Every failure path ends in a
// usable sentence: rejected or failed generations fall back to a
// deterministic summary of the retrieved hospitals.
package agent
