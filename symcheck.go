// Package symcheck provides a symptom checker that matches user-selected and
// free-text symptoms against a reference dataset of diseases, falling back to
// a remote analysis endpoint or a small fixed condition table.
//
// This package contains domain types, the pure matching core (normalization,
// extraction, synonym expansion and scoring) and the interfaces implemented by
// subpackages named after their primary dependency (e.g., sqlite/, gemini/, http/).
package symcheck
