package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"intake-insights-go/internal/patients"
	"intake-insights-go/internal/store"
	"intake-insights-go/internal/types"
)

type preCallRequest struct {
	CallerNumber string `json:"caller_number"`
	Phone        string `json:"phone"`
}

func (s *Server) preCall(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r).WithField("handler", "pre-call")

	var req preCallRequest
	if err := decodeJSON(w, r, &req); err != nil {
		reqLog.WithField("error", err.Error()).Warn("bad pre-call payload")
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	phone := req.CallerNumber
	if phone == "" {
		phone = req.Phone
	}

	resp := map[string]any{"success": true, "timestamp": timestamp()}
	p, err := s.Patients.ByPhone(phone)
	if err != nil {
		resp["patient_data"] = map[string]string{"message": "New patient - please collect basic information"}
		resp["instructions"] = patients.NewPatientInstructions
		reqLog.WithField("caller", phone).Info("pre-call: new caller")
	} else {
		resp["patient_data"] = p
		resp["instructions"] = patients.Instructions(p)
		reqLog.WithField("patient_id", p.ID).Info("pre-call: known patient")
	}
	writeJSON(w, http.StatusOK, resp)
}

type functionCallRequest struct {
	Parameters map[string]any `json:"parameters"`
	MedicalID  any            `json:"medical_id"`
}

// medicalID prefers parameters.medical_id over the top-level field.
func (f functionCallRequest) medicalID() string {
	for _, v := range []any{f.Parameters["medical_id"], f.MedicalID} {
		if id := idString(v); id != "" {
			return id
		}
	}
	return ""
}

// idString renders a JSON scalar as an id. Numbers keep their plain digits;
// fmt would switch large ones to exponent form.
func idString(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(id)
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(id))
	}
}

// functionCall answers the voice agent mid-call, so lookup misses are still
// 200 with success=false and a message the agent can read out.
func (s *Server) functionCall(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r).WithField("handler", "function-call")

	var req functionCallRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	id := req.medicalID()
	if id == "" {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"error":   "Medical ID is required",
			"message": "Please provide a valid medical ID to retrieve patient information.",
		})
		return
	}

	p, err := s.Patients.ByID(id)
	if err != nil {
		reqLog.WithField("medical_id", id).Info("function-call: patient not found")
		writeJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"error":   "Patient not found",
			"message": fmt.Sprintf("No patient record found for Medical ID: %s. Please verify the ID and try again.", id),
		})
		return
	}

	reqLog.WithField("medical_id", id).Info("function-call: patient found")
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"patient":   p,
		"summary":   patients.Summary(p),
		"timestamp": timestamp(),
	})
}

func (s *Server) functionCallLookup(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("medical_id")
	if id == "" {
		writeJSON(w, http.StatusOK, map[string]any{
			"available_patients": s.Patients.IDs(),
			"message":            "Add ?medical_id=P001 to test with a specific patient",
		})
		return
	}

	resp := map[string]any{"success": false, "patient": nil, "message": "Patient not found"}
	if p, err := s.Patients.ByID(id); err == nil {
		resp = map[string]any{"success": true, "patient": p, "message": "Patient found"}
	}
	writeJSON(w, http.StatusOK, resp)
}

type patientRecordRequest struct {
	PatientID  string         `json:"patientId"`
	Parameters map[string]any `json:"parameters"`
}

func (s *Server) getPatientRecord(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r).WithField("handler", "get-patient-record")

	var req patientRecordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	if strings.TrimSpace(req.PatientID) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Patient ID is required"})
		return
	}

	p, err := s.Patients.ByID(req.PatientID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "Patient not found"})
		return
	}

	reqLog.WithField("patient_id", p.ID).Info("patient record sent")
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"data":      patientRecord(p),
		"timestamp": timestamp(),
	})
}

func patientRecord(p types.Patient) map[string]any {
	contact := p.EmergencyContact.Name
	if p.EmergencyContact.Phone != "" {
		contact += " - " + p.EmergencyContact.Phone
	}
	if p.EmergencyContact.Relationship != "" {
		contact += " (" + p.EmergencyContact.Relationship + ")"
	}
	return map[string]any{
		"patientId": p.ID,
		"basicInfo": map[string]any{
			"name":        p.Name,
			"dateOfBirth": p.DOB,
			"gender":      p.Gender,
			"phone":       p.Phone,
		},
		"medicalInfo": map[string]any{
			"allergies":          p.Allergies,
			"currentMedications": p.Medications,
			"medicalHistory":     p.Conditions,
			"lastVisit":          p.LastVisit,
			"primaryPhysician":   p.PrimaryPhysician,
		},
		"insuranceInfo":    p.Insurance,
		"emergencyContact": contact,
		"preferences": map[string]any{
			"preferredLanguage":       p.PreferredLanguage,
			"communicationPreference": p.CommunicationPreference,
		},
	}
}

func (s *Server) postCall(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r).WithField("handler", "post-call")

	var payload types.PostCallPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		reqLog.WithField("error", err.Error()).Warn("bad post-call payload")
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	cl, err := s.Processor.ProcessPostCall(r.Context(), payload)
	if err != nil {
		reqLog.WithField("error", err.Error()).Error("post-call processing failed")
		writeError(w, http.StatusInternalServerError, "Internal server error", "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"call_id":    cl.CallID,
		"processed":  true,
		"analysis":   cl.Analysis,
		"next_steps": cl.NextSteps,
		"timestamp":  timestamp(),
	})
}

// postCallLogs lists processed calls newest first. total_calls counts every
// stored call even when ?limit= trims the list.
func (s *Server) postCallLogs(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithRequest(r).WithField("handler", "post-call-logs")

	logs, err := s.Store.List(r.Context(), store.Filter{Limit: s.filter(r).Limit})
	if err != nil {
		reqLog.WithField("error", err.Error()).Error("list call logs failed")
		writeError(w, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	total, err := s.Store.Count(r.Context())
	if err != nil {
		reqLog.WithField("error", err.Error()).Error("count call logs failed")
		writeError(w, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"total_calls": total,
		"call_logs":   logs,
	})
}
