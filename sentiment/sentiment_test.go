package sentiment

import "testing"

func TestClassify(t *testing.T) {
	testCases := []struct {
		name           string
		scores         Scores
		wantLabel      int
		wantConfidence float64
	}{
		{
			name:           "clearly positive",
			scores:         Scores{Negative: 0.0, Neutral: 0.3, Positive: 0.7, Compound: 0.8},
			wantLabel:      Positive,
			wantConfidence: 0.7,
		},
		{
			name:           "clearly negative",
			scores:         Scores{Negative: 0.6, Neutral: 0.4, Positive: 0.0, Compound: -0.7},
			wantLabel:      Negative,
			wantConfidence: 0.6,
		},
		{
			name:           "neutral band",
			scores:         Scores{Negative: 0.1, Neutral: 0.8, Positive: 0.1, Compound: 0.0},
			wantLabel:      Neutral,
			wantConfidence: 0.8,
		},
		{
			name:           "positive threshold is inclusive",
			scores:         Scores{Positive: 0.2, Neutral: 0.8, Compound: 0.05},
			wantLabel:      Positive,
			wantConfidence: 0.2,
		},
		{
			name:           "negative threshold is inclusive",
			scores:         Scores{Negative: 0.2, Neutral: 0.8, Compound: -0.05},
			wantLabel:      Negative,
			wantConfidence: 0.2,
		},
		{
			name:           "just inside the neutral band",
			scores:         Scores{Negative: 0.1, Neutral: 0.9, Compound: 0.049},
			wantLabel:      Neutral,
			wantConfidence: 0.9,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			label, confidence := Classify(tc.scores)
			if label != tc.wantLabel {
				t.Errorf("Classify() label = %d, want %d", label, tc.wantLabel)
			}
			if confidence != tc.wantConfidence {
				t.Errorf("Classify() confidence = %v, want %v", confidence, tc.wantConfidence)
			}
		})
	}
}

func TestVader_KnownPolarity(t *testing.T) {
	a := NewVader()

	positive := a.Score("The results were great, an excellent and happy surprise.")
	if positive.Compound <= 0 {
		t.Errorf("compound score for positive text = %v, want > 0", positive.Compound)
	}

	negative := a.Score("The results were terrible, an awful and sad disaster.")
	if negative.Compound >= 0 {
		t.Errorf("compound score for negative text = %v, want < 0", negative.Compound)
	}
}
