package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantSame bool
	}{
		{
			name:     "same content produces same ID",
			content:  "Apollo Hospital,Bangalore",
			wantSame: true,
		},
		{
			name:     "empty string",
			content:  "",
			wantSame: true,
		},
		{
			name:     "long content",
			content:  "hospital name,address,city\nApollo Hospital,123 Main St,Bangalore\n",
			wantSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if tt.wantSame && id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("catalog revision one")
	id2 := IDFromContent("catalog revision two")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestHospitalRecord_DedupKey(t *testing.T) {
	tests := []struct {
		name   string
		record HospitalRecord
		want   string
	}{
		{
			name:   "basic record",
			record: HospitalRecord{Name: "Apollo Hospital", City: "Bangalore"},
			want:   "apollo hospital\x00bangalore",
		},
		{
			name:   "case folded",
			record: HospitalRecord{Name: "APOLLO Hospital", City: "BANGALORE"},
			want:   "apollo hospital\x00bangalore",
		},
		{
			name:   "empty record",
			record: HospitalRecord{},
			want:   "\x00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.record.DedupKey()
			if got != tt.want {
				t.Errorf("HospitalRecord.DedupKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRelevanceFromScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  Relevance
	}{
		{name: "exact match", score: 1.0, want: RelevanceHigh},
		{name: "just above high threshold", score: 0.51, want: RelevanceHigh},
		{name: "high threshold is exclusive", score: 0.5, want: RelevanceMedium},
		{name: "just above medium threshold", score: 0.21, want: RelevanceMedium},
		{name: "medium threshold is exclusive", score: 0.2, want: RelevanceLow},
		{name: "zero", score: 0.0, want: RelevanceLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelevanceFromScore(tt.score)
			if got != tt.want {
				t.Errorf("RelevanceFromScore(%v) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestIntentType_String(t *testing.T) {
	tests := []struct {
		intentType IntentType
		want       string
	}{
		{IntentSearch, "search"},
		{IntentConfirmation, "confirmation"},
		{IntentFollowup, "followup"},
		{IntentType(0), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.intentType.String(); got != tt.want {
				t.Errorf("IntentType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}
