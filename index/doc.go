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


// Package index builds an in-process TF-IDF vector space over hospital
// documents and answers cosine-similarity queries against it.
//
// Documents are tokenized into unigrams, bigrams and trigrams after English
// stop-word removal. Term weights use sublinear TF scaled by smoothed IDF.
// The vocabulary is capped; when the corpus exceeds the cap the terms with
// the highest cross-document weight variance are kept, with a deterministic
// tie-break on the term itself, so rebuilding from the same dataset always
// yields the same rankings.
//
// An index can be captured as a core.IndexSnapshot and restored later without
// refitting, which is how the on-disk cache avoids recomputing weights at
// startup.
package index
