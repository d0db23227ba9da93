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


// Package search ranks hospital records against free-text queries.
//
// Plain searches run the query through the TF-IDF index, drop hits below a
// score threshold, and grade the survivors into relevance bands. Name-and-city
// lookups run an exact substring pass over the catalog first (those hits score
// a full 1.0) and only fall back to the index when nothing matches exactly.
package search
