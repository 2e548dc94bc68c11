package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"intake-insights-go/internal/types"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	classifyFile, classifyFunctionCalls, patientsFile = "", "", ""

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestClassifyStdin(t *testing.T) {
	out, err := run(t, "I need to book an appointment, thank you",
		"classify", "--function-calls", `[{"name":"get_patient_record","success":true}]`)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}

	var res classifyResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if res.Analysis.CallType != types.CallTypeAppointment {
		t.Errorf("call_type = %q", res.Analysis.CallType)
	}
	if !res.Analysis.PatientIdentified {
		t.Error("expected patient_identified")
	}
	if res.Analysis.Sentiment != types.SentimentPositive {
		t.Errorf("sentiment = %q", res.Analysis.Sentiment)
	}
	if len(res.NextSteps) == 0 || res.NextSteps[len(res.NextSteps)-1] != "Send confirmation message to patient" {
		t.Errorf("next_steps = %v", res.NextSteps)
	}
}

func TestClassifyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "call.txt")
	if err := os.WriteFile(path, []byte("This is an emergency, chest pain"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "", "classify", "--file", path)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	var res classifyResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if res.Analysis.CallType != types.CallTypeEmergency || res.Analysis.UrgencyLevel != types.UrgencyHigh {
		t.Errorf("analysis = %+v", res.Analysis)
	}
}

func TestClassifyBadFunctionCalls(t *testing.T) {
	if _, err := run(t, "hello", "classify", "--function-calls", "{"); err == nil {
		t.Fatal("expected error for malformed --function-calls")
	}
}

func TestPatients(t *testing.T) {
	out, err := run(t, "", "patients")
	if err != nil {
		t.Fatalf("patients failed: %v", err)
	}
	for _, id := range []string{"P001", "P002", "P003", "P12345", "P67890"} {
		if !strings.Contains(out, id) {
			t.Errorf("output missing %s:\n%s", id, out)
		}
	}
}
