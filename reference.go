package symcheck

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Default table names used by reference sources.
const (
	SymptomTableName    = "DiseaseAndSymptoms.csv"
	PrecautionTableName = "Disease precaution.csv"
)

// ReferenceSource retrieves raw reference tables by name.
type ReferenceSource interface {
	// Fetch returns the text of the named table.
	// Returns ENOTFOUND if the table does not exist.
	Fetch(ctx context.Context, name string) (string, error)
}

var lineBreak = regexp.MustCompile(`\r?\n`)

// tableRows splits a table into data rows, dropping blank lines and the header.
func tableRows(text string) [][]string {
	var lines []string
	for _, line := range lineBreak.Split(text, -1) {
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) <= 1 {
		return nil
	}

	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, strings.Split(line, ","))
	}
	return rows
}

// ParseSymptomTable parses a disease to symptom table.
// Column 0 is the disease name; remaining columns are symptoms, normalized
// into tokens. Repeated rows for a disease union their symptoms. The returned
// slice lists disease names in order of first appearance.
func ParseSymptomTable(text string) (diseases []string, symptoms map[string]TokenSet) {
	symptoms = make(map[string]TokenSet)
	for _, cells := range tableRows(text) {
		disease := strings.TrimSpace(cells[0])
		if disease == "" {
			continue
		}

		set, ok := symptoms[disease]
		if !ok {
			set = make(TokenSet)
			symptoms[disease] = set
			diseases = append(diseases, disease)
		}
		for _, cell := range cells[1:] {
			if t := Normalize(cell); t != "" {
				set.Add(t)
			}
		}
	}
	return diseases, symptoms
}

// ParsePrecautionTable parses a disease to precaution table.
// Non-empty cells after column 0 are kept in column order. A later row for
// the same disease replaces the earlier list.
func ParsePrecautionTable(text string) map[string][]string {
	precautions := make(map[string][]string)
	for _, cells := range tableRows(text) {
		disease := strings.TrimSpace(cells[0])
		if disease == "" {
			continue
		}

		var list []string
		for _, cell := range cells[1:] {
			if p := strings.TrimSpace(cell); p != "" {
				list = append(list, p)
			}
		}
		if len(list) > 0 {
			precautions[disease] = list
		}
	}
	return precautions
}

// Reference holds the disease reference data. It is immutable once built and
// safe for concurrent reads.
type Reference struct {
	diseases    []string
	symptoms    map[string]TokenSet
	precautions map[string][]string
	vocabulary  *Vocabulary

	// Checksum identifies the raw tables the reference was built from.
	Checksum uint64
}

// NewReference builds a Reference from the raw symptom and precaution tables.
// Either text may be empty; an empty symptom table yields a reference that is
// not ready.
func NewReference(symptomTable, precautionTable string) *Reference {
	diseases, symptoms := ParseSymptomTable(symptomTable)

	var all []Token
	for _, d := range diseases {
		for t := range symptoms[d] {
			all = append(all, t)
		}
	}

	h := xxhash.New()
	_, _ = h.WriteString(symptomTable)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(precautionTable)

	return &Reference{
		diseases:    diseases,
		symptoms:    symptoms,
		precautions: ParsePrecautionTable(precautionTable),
		vocabulary:  NewVocabulary(all...),
		Checksum:    h.Sum64(),
	}
}

// Ready reports whether the reference has any disease rows.
// Callers must use a different analysis path when it is not ready.
func (r *Reference) Ready() bool {
	return r != nil && len(r.diseases) > 0
}

// ChecksumHex returns Checksum as a fixed-width hex string, or an empty
// string for a nil reference.
func (r *Reference) ChecksumHex() string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("%016x", r.Checksum)
}

// Diseases returns disease names in order of first appearance.
func (r *Reference) Diseases() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.diseases))
	copy(out, r.diseases)
	return out
}

// Symptoms returns the sorted symptom tokens of a disease.
func (r *Reference) Symptoms(disease string) []Token {
	if r == nil {
		return nil
	}
	set, ok := r.symptoms[disease]
	if !ok {
		return nil
	}
	return set.Sorted()
}

// Precautions returns the precautions recorded for a disease.
func (r *Reference) Precautions(disease string) []string {
	if r == nil {
		return nil
	}
	list := r.precautions[disease]
	if list == nil {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Vocabulary returns every symptom token known to the reference.
func (r *Reference) Vocabulary() *Vocabulary {
	if r == nil {
		return NewVocabulary()
	}
	return r.vocabulary
}

// Dataset returns the reference as a scoring dataset in disease order.
func (r *Reference) Dataset() Dataset {
	if r == nil {
		return nil
	}
	ds := make(Dataset, 0, len(r.diseases))
	for _, d := range r.diseases {
		precautions := r.Precautions(d)
		ds = append(ds, Condition{
			Name:        d,
			Symptoms:    r.Symptoms(d),
			Precautions: precautions,
			Info:        datasetInfo(d, precautions),
		})
	}
	return ds
}

const (
	datasetDescription = "Based on your reported symptoms, this condition may be relevant. Consider the precautions and seek medical advice if needed."
	datasetAdvice      = "Maintain rest, hydration, and monitor symptoms. Seek medical care if symptoms worsen or red flags occur (chest pain, severe shortness of breath, confusion, persistent high fever)."
)

func datasetInfo(name string, precautions []string) *ConditionInfo {
	advice := datasetAdvice
	if len(precautions) > 0 {
		advice = "Precautions: " + strings.Join(precautions, "; ")
	}
	return &ConditionInfo{
		Name:        name,
		Description: datasetDescription,
		Advice:      advice,
		Urgency:     UrgencyMedium,
	}
}
