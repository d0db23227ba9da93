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


package hospitium

import "errors"

var (
	// ErrTranscriberRequired indicates a voice turn was attempted without a
	// configured transcriber.
	ErrTranscriberRequired = errors.New("transcriber is required for voice turns")

	// ErrSynthesizerRequired indicates a voice turn was attempted without a
	// configured synthesizer.
	ErrSynthesizerRequired = errors.New("synthesizer is required for voice turns")

	// ErrEmptyTranscript indicates transcription heard nothing usable.
	ErrEmptyTranscript = errors.New("empty transcript")
)
