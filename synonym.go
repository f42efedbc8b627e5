package symcheck

// synonymClusters maps a canonical token to the dataset tokens it stands for.
var synonymClusters = map[Token][]Token{
	"fever":            {"fever", "high_fever"},
	"shortness_breath": {"shortness_of_breath", "breathlessness", "shortness_breath"},
	"body_ache":        {"body_ache", "muscle_pain", "body_pain"},
	"sore_throat":      {"sore_throat", "throat_irritation", "patches_in_throat"},
}

// Expand returns t together with its synonyms. Lookup is by the normalized
// form of t, so "shortness-breath" and "shortness_breath" share a cluster.
// An empty token expands to an empty set.
func Expand(t Token) TokenSet {
	key := Normalize(string(t))
	if key == "" {
		return make(TokenSet)
	}

	out := NewTokenSet(t, key)
	for _, syn := range synonymClusters[key] {
		out.Add(syn)
	}
	return out
}

// ExpandAll returns the union of Expand over tokens.
func ExpandAll(tokens TokenSet) TokenSet {
	out := make(TokenSet, len(tokens))
	for t := range tokens {
		out.AddAll(Expand(t))
	}
	return out
}

// CollectTokens builds the user token set for a dataset analysis: selected
// symptoms plus tokens extracted from the custom text, all synonym-expanded.
func CollectTokens(req *Request, vocab *Vocabulary) TokenSet {
	tokens := make(TokenSet)
	for _, s := range req.Symptoms {
		tokens.AddAll(Expand(Normalize(s)))
	}
	tokens.AddAll(ExpandAll(Extract(req.CustomSymptoms, vocab)))
	return tokens
}
