package extractor

import (
	"reflect"
	"sync"
	"testing"

	"intake-insights-go/internal/types"
)

func TestClassify_EmptyTranscript(t *testing.T) {
	got := Classify("", nil)
	want := types.CallAnalysis{
		CallType:             types.CallTypeGeneral,
		PatientIdentified:    false,
		InformationCollected: []string{},
		Sentiment:            types.SentimentNeutral,
		UrgencyLevel:         types.UrgencyLow,
		CompletionStatus:     types.CompletionInformationCollected,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify(\"\") = %+v, want %+v", got, want)
	}
}

func TestClassify_AppointmentSoon(t *testing.T) {
	got := Classify("I need to schedule an appointment soon", nil)
	if got.CallType != types.CallTypeAppointment {
		t.Errorf("call_type = %q, want %q", got.CallType, types.CallTypeAppointment)
	}
	if got.UrgencyLevel != types.UrgencyMedium {
		t.Errorf("urgency_level = %q, want medium", got.UrgencyLevel)
	}
	if got.CompletionStatus != types.CompletionAppointmentScheduled {
		t.Errorf("completion_status = %q, want appointment_scheduled", got.CompletionStatus)
	}
}

func TestClassify_EmergencyChestPain(t *testing.T) {
	got := Classify("This is an emergency, I have chest pain and need help", nil)
	if got.UrgencyLevel != types.UrgencyHigh {
		t.Errorf("urgency_level = %q, want high", got.UrgencyLevel)
	}
	if got.CallType != types.CallTypeEmergency {
		t.Errorf("call_type = %q, want emergency_intake", got.CallType)
	}
	if got.Sentiment != types.SentimentNegative {
		t.Errorf("sentiment = %q, want negative", got.Sentiment)
	}
}

func TestClassify_CallTypePriority(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       string
	}{
		{"appointment beats emergency", "emergency appointment please", types.CallTypeAppointment},
		{"emergency beats prescription", "prescription EMERGENCY", types.CallTypeEmergency},
		{"prescription", "calling about my Prescription refill", types.CallTypePrescription},
		{"general", "just checking in", types.CallTypeGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.transcript, nil).CallType; got != tt.want {
				t.Errorf("call_type = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassify_Sentiment(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       string
	}{
		{"positive majority", "Thank you, yes that is great, no problem", types.SentimentPositive},
		{"negative majority", "bad terrible day", types.SentimentNegative},
		{"nonzero tie is neutral", "good bad", types.SentimentNeutral},
		{"token counts both ways", "nogood", types.SentimentNeutral},
		{"no keywords", "the weather", types.SentimentNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.transcript, nil).Sentiment; got != tt.want {
				t.Errorf("sentiment(%q) = %q, want %q", tt.transcript, got, tt.want)
			}
		})
	}
}

func TestClassify_Urgency(t *testing.T) {
	tests := []struct {
		transcript string
		want       string
	}{
		{"there is some bleeding", types.UrgencyHigh},
		{"URGENT request", types.UrgencyHigh},
		{"can I come in today", types.UrgencyMedium},
		{"appointment with pain", types.UrgencyHigh},
		{"routine question", types.UrgencyLow},
	}
	for _, tt := range tests {
		t.Run(tt.transcript, func(t *testing.T) {
			if got := Classify(tt.transcript, nil).UrgencyLevel; got != tt.want {
				t.Errorf("urgency(%q) = %q, want %q", tt.transcript, got, tt.want)
			}
		})
	}
}

func TestClassify_InformationCollectedOrder(t *testing.T) {
	transcript := "Insurance is Aetna. My medication list, no allergies, my Medical ID is P001, symptoms started Monday"
	got := Classify(transcript, nil).InformationCollected
	want := []string{
		types.InfoMedicalID,
		types.InfoSymptoms,
		types.InfoAllergies,
		types.InfoMedications,
		types.InfoInsurance,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("information_collected = %v, want %v", got, want)
	}
}

func TestClassify_PatientIdentified(t *testing.T) {
	calls := []types.FunctionCallRecord{
		{Name: "lookup", Success: false},
		{Name: "lookup", Success: true, Parameters: map[string]any{"medical_id": "P001"}},
	}
	if !Classify("anything at all", calls).PatientIdentified {
		t.Error("expected patient_identified with one successful call")
	}
	if Classify("anything at all", calls[:1]).PatientIdentified {
		t.Error("expected patient_identified false with only failed calls")
	}
}

func TestClassify_Deterministic(t *testing.T) {
	transcript := "Thank you for the help, I have chest pain and need an appointment today"
	first := Classify(transcript, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Classify(transcript, nil); !reflect.DeepEqual(got, first) {
				t.Errorf("non-deterministic result: %+v vs %+v", got, first)
			}
		}()
	}
	wg.Wait()
}
