package types

import "time"

// Call types, checked by the classifier in this order.
const (
	CallTypeAppointment  = "appointment_scheduling"
	CallTypeEmergency    = "emergency_intake"
	CallTypePrescription = "prescription_inquiry"
	CallTypeGeneral      = "general_intake"
)

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

const (
	CompletionAppointmentScheduled = "appointment_scheduled"
	CompletionInformationCollected = "information_collected"
)

// Information kinds collected during an intake call.
const (
	InfoMedicalID   = "medical_id"
	InfoSymptoms    = "symptoms"
	InfoAllergies   = "allergies"
	InfoMedications = "medications"
	InfoInsurance   = "insurance"
)

// FunctionCallRecord is a side-effect invocation (e.g. patient lookup) the bot
// made during the call.
type FunctionCallRecord struct {
	Name       string         `json:"name"`
	Success    bool           `json:"success"`
	Parameters map[string]any `json:"parameters,omitempty"`
	Response   map[string]any `json:"response"`
}

// CallAnalysis is the structured outcome derived from a finished call.
type CallAnalysis struct {
	CallType             string   `json:"call_type"`
	PatientIdentified    bool     `json:"patient_identified"`
	InformationCollected []string `json:"information_collected"`
	Sentiment            string   `json:"sentiment"`
	UrgencyLevel         string   `json:"urgency_level"`
	CompletionStatus     string   `json:"completion_status"`
}

// PostCallPayload is what the voice platform sends once a call completes.
type PostCallPayload struct {
	CallID        string               `json:"call_id"`
	BotID         string               `json:"bot_id"`
	CallerNumber  string               `json:"caller_number"`
	Duration      float64              `json:"duration"`
	Status        string               `json:"status"`
	Transcript    string               `json:"transcript"`
	Conversation  string               `json:"conversation"`
	Summary       string               `json:"summary"`
	FunctionCalls []FunctionCallRecord `json:"function_calls"`
}

// CallLog is a processed call as kept by the call log store.
type CallLog struct {
	ID            string               `json:"id"`
	CallID        string               `json:"call_id"`
	BotID         string               `json:"bot_id"`
	CallerNumber  string               `json:"caller_number"`
	Duration      float64              `json:"duration"`
	Status        string               `json:"status"`
	Transcript    string               `json:"transcript"`
	Summary       string               `json:"summary"`
	FunctionCalls []FunctionCallRecord `json:"function_calls"`
	Analysis      CallAnalysis         `json:"analysis"`
	NextSteps     []string             `json:"next_steps"`
	CreatedAt     time.Time            `json:"created_at"`
	ProcessedAt   time.Time            `json:"processed_at"`
}

type BotWebhooks struct {
	PreCallURL  string `json:"pre_call_url,omitempty"`
	PostCallURL string `json:"post_call_url,omitempty"`
}

// Bot is a voice bot configuration held by the voice platform.
type Bot struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Prompt    string       `json:"prompt,omitempty"`
	Voice     string       `json:"voice"`
	Language  string       `json:"language"`
	Status    string       `json:"status,omitempty"`
	CreatedAt string       `json:"created_at,omitempty"`
	Webhooks  *BotWebhooks `json:"webhooks,omitempty"`
}

type Vitals struct {
	BloodPressure string `json:"bloodPressure"`
	HeartRate     string `json:"heartRate"`
	Weight        string `json:"weight"`
}

type Insurance struct {
	Provider     string `json:"provider"`
	PolicyNumber string `json:"policyNumber"`
	GroupNumber  string `json:"groupNumber,omitempty"`
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// Patient is a record in the patient directory used by the webhooks.
type Patient struct {
	ID                      string           `json:"id"`
	Name                    string           `json:"name"`
	DOB                     string           `json:"dob"`
	Gender                  string           `json:"gender,omitempty"`
	Phone                   string           `json:"phone,omitempty"`
	Allergies               []string         `json:"allergies"`
	Medications             []string         `json:"medications"`
	Conditions              []string         `json:"conditions"`
	LastVisit               string           `json:"lastVisit"`
	Vitals                  *Vitals          `json:"vitals"`
	Insurance               Insurance        `json:"insuranceInfo"`
	EmergencyContact        EmergencyContact `json:"emergencyContact"`
	PrimaryPhysician        string           `json:"primaryPhysician,omitempty"`
	PreferredLanguage       string           `json:"preferredLanguage,omitempty"`
	CommunicationPreference string           `json:"communicationPreference,omitempty"`
}

type LiveFunctionCall struct {
	FunctionName string         `json:"function_name"`
	Timestamp    time.Time      `json:"timestamp"`
	Status       string         `json:"status"` // pending, completed, failed
	Response     map[string]any `json:"response,omitempty"`
}

// ActiveCall is a call currently in progress, shown on the monitoring board.
type ActiveCall struct {
	ID             string             `json:"id"`
	BotID          string             `json:"bot_id"`
	PatientID      string             `json:"patient_id,omitempty"`
	PatientName    string             `json:"patient_name,omitempty"`
	StartTime      time.Time          `json:"start_time"`
	Status         string             `json:"status"` // ringing, active, on_hold, ended
	Duration       int                `json:"duration"`
	PhoneNumber    string             `json:"phone_number,omitempty"`
	CurrentStep    string             `json:"current_step,omitempty"`
	UrgencyLevel   string             `json:"urgency_level,omitempty"`
	CollectedInfo  map[string]any     `json:"collected_info,omitempty"`
	FunctionCalls  []LiveFunctionCall `json:"function_calls,omitempty"`
	LiveTranscript []string           `json:"live_transcript,omitempty"`
}
