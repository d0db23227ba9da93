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


// Package memory keeps the bounded per-session conversation state: recent
// turns, the cities and hospital names from the newest non-empty result set,
// and the last classified intent.
//
// Memory is safe for concurrent use, holds at most a fixed number of turns,
// and survives empty turns without losing context: the remembered cities and
// names are only replaced when a turn actually produced results.
package memory
