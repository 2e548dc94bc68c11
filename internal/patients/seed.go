package patients

import "intake-insights-go/internal/types"

func Seed() []types.Patient {
	return []types.Patient{
		{
			ID:          "P001",
			Name:        "John Doe",
			DOB:         "1975-03-15",
			Phone:       "+1234567890",
			Allergies:   []string{"Penicillin", "Shellfish"},
			Medications: []string{"Metformin 500mg", "Lisinopril 10mg"},
			Conditions:  []string{"Hypertension", "Diabetes Type 2"},
			LastVisit:   "2024-01-15",
			Vitals:      &types.Vitals{BloodPressure: "140/90", HeartRate: "72 bpm", Weight: "180 lbs"},
			Insurance:   types.Insurance{Provider: "Blue Cross", PolicyNumber: "BC123456789"},
			EmergencyContact: types.EmergencyContact{
				Name: "Jane Doe", Phone: "+1234567891", Relationship: "Spouse",
			},
		},
		{
			ID:          "P002",
			Name:        "Sarah Smith",
			DOB:         "1988-07-22",
			Phone:       "+1987654321",
			Allergies:   []string{"None known"},
			Medications: []string{"Albuterol inhaler PRN"},
			Conditions:  []string{"Asthma"},
			LastVisit:   "2024-02-10",
			Vitals:      &types.Vitals{BloodPressure: "120/80", HeartRate: "68 bpm", Weight: "135 lbs"},
			Insurance:   types.Insurance{Provider: "Aetna", PolicyNumber: "AE987654321"},
			EmergencyContact: types.EmergencyContact{
				Name: "Mike Smith", Phone: "+1987654322", Relationship: "Husband",
			},
		},
		{
			ID:          "P003",
			Name:        "Robert Johnson",
			DOB:         "1965-11-08",
			Allergies:   []string{"Latex", "Aspirin"},
			Medications: []string{"None"},
			Conditions:  []string{"Healthy"},
			LastVisit:   "Never",
			Insurance:   types.Insurance{Provider: "Medicare", PolicyNumber: "MC445566778"},
			EmergencyContact: types.EmergencyContact{
				Name: "Mary Johnson", Phone: "+1555666777", Relationship: "Wife",
			},
		},
		{
			ID:        "P12345",
			Name:      "John Doe",
			DOB:       "1985-06-15",
			Gender:    "Male",
			Phone:     "(555) 123-4567",
			Allergies: []string{"Penicillin", "Shellfish"},
			Medications: []string{
				"Lisinopril 10mg daily",
				"Metformin 500mg twice daily",
				"Atorvastatin 20mg daily",
			},
			Conditions: []string{
				"Hypertension diagnosed 2020",
				"Type 2 Diabetes diagnosed 2019",
				"High cholesterol",
			},
			LastVisit:               "2023-12-01",
			Insurance:               types.Insurance{Provider: "Blue Cross Blue Shield", PolicyNumber: "BC123456789", GroupNumber: "GRP001"},
			EmergencyContact:        types.EmergencyContact{Name: "Jane Doe", Phone: "(555) 123-4567", Relationship: "Spouse"},
			PrimaryPhysician:        "Dr. Sarah Johnson",
			PreferredLanguage:       "English",
			CommunicationPreference: "Phone",
		},
		{
			ID:          "P67890",
			Name:        "Mary Smith",
			DOB:         "1992-03-22",
			Gender:      "Female",
			Phone:       "(555) 987-6543",
			Allergies:   []string{"Latex", "Ibuprofen"},
			Medications: []string{"Birth control pills", "Vitamin D supplement"},
			Conditions:  []string{"Migraine headaches", "Anxiety"},
			LastVisit:   "2024-01-10",
			Insurance:   types.Insurance{Provider: "Aetna", PolicyNumber: "AET987654321", GroupNumber: "GRP002"},
			EmergencyContact: types.EmergencyContact{
				Name: "Robert Smith", Phone: "(555) 111-2222", Relationship: "Father",
			},
			PrimaryPhysician:        "Dr. Michael Chen",
			PreferredLanguage:       "English",
			CommunicationPreference: "Email",
		},
	}
}
