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


// Package intent classifies user utterances and pulls out the structured
// slots a hospital lookup needs: intent type, city, hospital brand, and a
// requested result count.
//
// Classification is keyword-driven against a data-supplied Lexicon rather
// than hard-coded word lists, so deployments can swap in their own cities,
// brands, and cue words without touching code. Follow-up utterances that name
// no city inherit the city carried by the conversation memory.
package intent
