package aggregator

import "intake-insights-go/internal/types"

// Insight is the dashboard rollup over processed call logs.
type Insight struct {
	TotalCalls         int            `json:"total_calls"`
	ByCallType         map[string]int `json:"by_call_type"`
	ByUrgency          map[string]int `json:"by_urgency_level"`
	BySentiment        map[string]int `json:"by_sentiment"`
	ByCompletion       map[string]int `json:"by_completion_status"`
	IdentifiedRate     float64        `json:"identified_rate"`
	HighUrgencyCallIDs []string       `json:"high_urgency_call_ids"`
}

func Aggregate(logs []types.CallLog) Insight {
	ins := Insight{
		TotalCalls:         len(logs),
		ByCallType:         map[string]int{},
		ByUrgency:          map[string]int{},
		BySentiment:        map[string]int{},
		ByCompletion:       map[string]int{},
		HighUrgencyCallIDs: []string{},
	}
	identified := 0
	for _, l := range logs {
		a := l.Analysis
		ins.ByCallType[a.CallType]++
		ins.ByUrgency[a.UrgencyLevel]++
		ins.BySentiment[a.Sentiment]++
		ins.ByCompletion[a.CompletionStatus]++
		if a.PatientIdentified {
			identified++
		}
		if a.UrgencyLevel == types.UrgencyHigh {
			ins.HighUrgencyCallIDs = append(ins.HighUrgencyCallIDs, l.CallID)
		}
	}
	if len(logs) > 0 {
		ins.IdentifiedRate = float64(identified) / float64(len(logs))
	}
	return ins
}
