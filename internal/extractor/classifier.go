package extractor

import (
	"strings"

	"intake-insights-go/internal/types"
)

// keyword tables; order matters wherever the first match wins.
var (
	callTypeRules = []struct{ keyword, callType string }{
		{"appointment", types.CallTypeAppointment},
		{"emergency", types.CallTypeEmergency},
		{"prescription", types.CallTypePrescription},
	}

	infoRules = []struct{ keyword, kind string }{
		{"medical id", types.InfoMedicalID},
		{"symptom", types.InfoSymptoms},
		{"allerg", types.InfoAllergies},
		{"medication", types.InfoMedications},
		{"insurance", types.InfoInsurance},
	}

	positiveWords = []string{"thank", "good", "help", "great", "yes"}
	negativeWords = []string{"no", "bad", "terrible", "pain", "emergency", "urgent"}

	highUrgencyWords   = []string{"emergency", "urgent", "pain", "bleeding", "chest pain"}
	mediumUrgencyWords = []string{"appointment", "soon", "today"}
)

// Classify derives a CallAnalysis from a finished call's transcript and the
// function calls made during it. It is pure and safe for concurrent use.
func Classify(transcript string, functionCalls []types.FunctionCallRecord) types.CallAnalysis {
	lower := strings.ToLower(transcript)

	completion := types.CompletionInformationCollected
	if strings.Contains(lower, "appointment") {
		completion = types.CompletionAppointmentScheduled
	}

	return types.CallAnalysis{
		CallType:             callType(lower),
		PatientIdentified:    patientIdentified(functionCalls),
		InformationCollected: informationCollected(lower),
		Sentiment:            sentiment(lower),
		UrgencyLevel:         urgency(lower),
		CompletionStatus:     completion,
	}
}

func callType(lower string) string {
	for _, r := range callTypeRules {
		if strings.Contains(lower, r.keyword) {
			return r.callType
		}
	}
	return types.CallTypeGeneral
}

func patientIdentified(calls []types.FunctionCallRecord) bool {
	for _, fc := range calls {
		if fc.Success {
			return true
		}
	}
	return false
}

func informationCollected(lower string) []string {
	info := []string{}
	for _, r := range infoRules {
		if strings.Contains(lower, r.keyword) {
			info = append(info, r.kind)
		}
	}
	return info
}

// sentiment tallies whitespace tokens; one token may count on both sides.
func sentiment(lower string) string {
	pos, neg := 0, 0
	for _, word := range strings.Fields(lower) {
		if containsAny(word, positiveWords) {
			pos++
		}
		if containsAny(word, negativeWords) {
			neg++
		}
	}
	switch {
	case pos > neg:
		return types.SentimentPositive
	case neg > pos:
		return types.SentimentNegative
	default:
		return types.SentimentNeutral
	}
}

func urgency(lower string) string {
	if containsAny(lower, highUrgencyWords) {
		return types.UrgencyHigh
	}
	if containsAny(lower, mediumUrgencyWords) {
		return types.UrgencyMedium
	}
	return types.UrgencyLow
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
