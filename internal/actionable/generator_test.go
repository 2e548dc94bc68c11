package actionable

import (
	"reflect"
	"testing"

	"intake-insights-go/internal/types"
)

func TestNextSteps(t *testing.T) {
	tests := []struct {
		name     string
		analysis types.CallAnalysis
		want     []string
	}{
		{
			name: "high urgency unidentified general intake",
			analysis: types.CallAnalysis{
				UrgencyLevel: types.UrgencyHigh,
				CallType:     types.CallTypeGeneral,
			},
			want: []string{
				"Contact patient immediately",
				"Schedule emergency appointment",
				"Verify patient identity",
				"Create new patient record if needed",
				"Send confirmation message to patient",
			},
		},
		{
			name: "medium urgency identified",
			analysis: types.CallAnalysis{
				UrgencyLevel:      types.UrgencyMedium,
				PatientIdentified: true,
				CallType:          types.CallTypeAppointment,
			},
			want: []string{
				"Schedule appointment within 24 hours",
				"Send confirmation message to patient",
			},
		},
		{
			name: "low urgency prescription inquiry",
			analysis: types.CallAnalysis{
				UrgencyLevel:      types.UrgencyLow,
				PatientIdentified: true,
				CallType:          types.CallTypePrescription,
			},
			want: []string{
				"Schedule routine appointment",
				"Review prescription request",
				"Contact prescribing physician",
				"Send confirmation message to patient",
			},
		},
		{
			name:     "zero value falls back to routine",
			analysis: types.CallAnalysis{},
			want: []string{
				"Schedule routine appointment",
				"Verify patient identity",
				"Create new patient record if needed",
				"Send confirmation message to patient",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextSteps(tt.analysis)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NextSteps() = %q, want %q", got, tt.want)
			}
		})
	}
}
