package symcheck

// FallbackThreshold is the minimum match percentage for the fixed table.
const FallbackThreshold = 50

// FallbackDataset returns the fixed condition table used when neither the
// reference data nor the remote analyzer is available.
func FallbackDataset() Dataset {
	return Dataset{
		{
			Name:     "flu",
			Symptoms: []Token{"fever", "cough", "headache", "fatigue", "body_ache"},
			Info: &ConditionInfo{
				Name:        "Flu (Influenza)",
				Description: "A viral infection that attacks your respiratory system.",
				Advice:      "Rest, stay hydrated, and consider over-the-counter medications. Consult a doctor if symptoms persist or worsen.",
				Urgency:     UrgencyMedium,
			},
		},
		{
			Name:     "cold",
			Symptoms: []Token{"cough", "sore_throat", "headache", "fatigue"},
			Info: &ConditionInfo{
				Name:        "Common Cold",
				Description: "A mild viral infection of the nose and throat.",
				Advice:      "Rest, drink plenty of fluids, and use over-the-counter cold medications. Most colds resolve within 7-10 days.",
				Urgency:     UrgencyLow,
			},
		},
		{
			Name:     "covid",
			Symptoms: []Token{"fever", "cough", "shortness_breath", "fatigue", "body_ache"},
			Info: &ConditionInfo{
				Name:        "COVID-19",
				Description: "A viral illness caused by the coronavirus.",
				Advice:      "Isolate yourself and get tested immediately. Contact healthcare provider for guidance. Monitor for severe symptoms.",
				Urgency:     UrgencyHigh,
			},
		},
		{
			Name:     "food-poisoning",
			Symptoms: []Token{"nausea", "fatigue", "body_ache"},
			Info: &ConditionInfo{
				Name:        "Food Poisoning",
				Description: "Illness caused by consuming contaminated food or drink.",
				Advice:      "Stay hydrated, rest, and avoid solid foods temporarily. Seek medical attention if severe vomiting or diarrhea persists.",
				Urgency:     UrgencyMedium,
			},
		},
		{
			Name:     "migraine",
			Symptoms: []Token{"headache", "nausea"},
			Info: &ConditionInfo{
				Name:        "Migraine",
				Description: "A severe headache often accompanied by nausea and sensitivity to light.",
				Advice:      "Rest in a dark, quiet room. Consider over-the-counter pain relievers. Consult a doctor if migraines are frequent.",
				Urgency:     UrgencyLow,
			},
		},
		{
			Name:     "bronchitis",
			Symptoms: []Token{"cough", "shortness_breath", "fatigue"},
			Info: &ConditionInfo{
				Name:        "Bronchitis",
				Description: "Inflammation of the bronchial tubes, often causing coughing.",
				Advice:      "Rest, stay hydrated, and avoid irritants. Consult a doctor if symptoms persist beyond 3 weeks.",
				Urgency:     UrgencyMedium,
			},
		},
		{
			Name:     "strep-throat",
			Symptoms: []Token{"sore_throat", "fever", "headache"},
			Info: &ConditionInfo{
				Name:        "Strep Throat",
				Description: "A bacterial infection causing sore throat and fever.",
				Advice:      "Consult a doctor for proper diagnosis and antibiotics. Rest and stay hydrated.",
				Urgency:     UrgencyMedium,
			},
		},
		{
			Name:     "gastroenteritis",
			Symptoms: []Token{"nausea", "fatigue", "body_ache"},
			Info: &ConditionInfo{
				Name:        "Gastroenteritis",
				Description: "Inflammation of the stomach and intestines, often called stomach flu.",
				Advice:      "Stay hydrated, rest, and eat bland foods. Seek medical attention if symptoms are severe or persistent.",
				Urgency:     UrgencyMedium,
			},
		},
	}
}

// ScoreFallback scores the selected symptoms against the fixed table.
// Only the selected symptoms are considered, normalized but not expanded.
func ScoreFallback(selected []string) []Match {
	user := make(TokenSet, len(selected))
	for _, s := range selected {
		if t := Normalize(s); t != "" {
			user.Add(t)
		}
	}
	return ScoreDataset(user, FallbackDataset(), FallbackThreshold)
}
