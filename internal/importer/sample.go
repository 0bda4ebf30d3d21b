package importer

import "quizdeck/internal/bank"

// SampleQuestions returns the built-in demo bank: a small aircraft
// maintenance set grouped by ATA chapter, enough to exercise every flow
// without importing a spreadsheet.
func SampleQuestions() []bank.Question {
	return []bank.Question{
		{
			ID:            "1",
			Theme:         "ATA29",
			Prompt:        "What is the hydraulic system of an aircraft?",
			Options:       []string{"The fuel system", "The flight control system", "The cabin pressure system", "A system that uses fluid to transmit power"},
			CorrectAnswer: "A system that uses fluid to transmit power",
		},
		{
			ID:            "2",
			Theme:         "ATA30",
			Prompt:        "What does a flashing red light on the panel indicate?",
			Options:       []string{"Caution", "Emergency", "Information", "Normal status"},
			CorrectAnswer: "Emergency",
		},
		{
			ID:            "3",
			Theme:         "ATA29",
			Prompt:        "Which hydraulic fluid is most common in transport aircraft?",
			Options:       []string{"Water", "Mineral oil", "Skydrol", "Alcohol"},
			CorrectAnswer: "Skydrol",
		},
		{
			ID:            "4",
			Theme:         "ATA31",
			Prompt:        "What is ACARS?",
			Options:       []string{"An air conditioning system", "A digital air-ground communication system", "A navigation system", "A collision alert system"},
			CorrectAnswer: "A digital air-ground communication system",
		},
		{
			ID:            "5",
			Theme:         "ATA31",
			Prompt:        "What does TAT stand for in aviation?",
			Options:       []string{"Total air temperature", "Time of approximate touchdown", "Turbulence in ambient transit", "Transmission at altitude"},
			CorrectAnswer: "Total air temperature",
		},
		{
			ID:            "6",
			Theme:         "ATA24",
			Prompt:        "What is the main function of the APU?",
			Options:       []string{"Generate additional thrust", "Supply electrical and pneumatic power on the ground", "Control cabin temperature", "Assist during takeoff"},
			CorrectAnswer: "Supply electrical and pneumatic power on the ground",
		},
		{
			ID:            "7",
			Theme:         "ATA24",
			Prompt:        "Which kind of electrical current is used aboard the aircraft?",
			Options:       []string{"Direct current (DC)", "Alternating current (AC)", "Both", "Neither"},
			CorrectAnswer: "Both",
		},
		{
			ID:            "8",
			Theme:         "ATA27",
			Prompt:        "What is a spoiler on a wing?",
			Options:       []string{"A device that increases lift", "A device that reduces lift and increases drag", "A structural component of the wing", "A type of navigation light"},
			CorrectAnswer: "A device that reduces lift and increases drag",
		},
		{
			ID:            "9",
			Theme:         "ATA27",
			Prompt:        "What is the function of the flaps?",
			Options:       []string{"Increase drag only", "Increase lift and drag for takeoff and landing", "Reduce fuel consumption", "Steer the aircraft in flight"},
			CorrectAnswer: "Increase lift and drag for takeoff and landing",
		},
		{
			ID:            "10",
			Theme:         "ATA49",
			Prompt:        "What is an APU?",
			Options:       []string{"Auxiliary Power Unit", "Unified Propulsion Unit", "Air Processing Unit", "Urban Pressure Unit"},
			CorrectAnswer: "Auxiliary Power Unit",
		},
	}
}
