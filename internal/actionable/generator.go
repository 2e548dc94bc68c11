package actionable

import "intake-insights-go/internal/types"

const (
	StepContactImmediately  = "Contact patient immediately"
	StepEmergencyAppt       = "Schedule emergency appointment"
	StepApptWithin24h       = "Schedule appointment within 24 hours"
	StepRoutineAppt         = "Schedule routine appointment"
	StepVerifyIdentity      = "Verify patient identity"
	StepCreatePatientRecord = "Create new patient record if needed"
	StepReviewPrescription  = "Review prescription request"
	StepContactPrescriber   = "Contact prescribing physician"
	StepSendConfirmation    = "Send confirmation message to patient"
)

// NextSteps builds the advisory follow-up list shown next to a processed call.
func NextSteps(a types.CallAnalysis) []string {
	var steps []string

	switch a.UrgencyLevel {
	case types.UrgencyHigh:
		steps = append(steps, StepContactImmediately, StepEmergencyAppt)
	case types.UrgencyMedium:
		steps = append(steps, StepApptWithin24h)
	default:
		steps = append(steps, StepRoutineAppt)
	}

	if !a.PatientIdentified {
		steps = append(steps, StepVerifyIdentity, StepCreatePatientRecord)
	}

	if a.CallType == types.CallTypePrescription {
		steps = append(steps, StepReviewPrescription, StepContactPrescriber)
	}

	return append(steps, StepSendConfirmation)
}
