package symcheck_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/symcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const symptomTable = "Disease,Symptom_1,Symptom_2,Symptom_3\n" +
	"Flu, high_fever, cough,\n" +
	"Migraine,headache, nausea ,Blurred And Distorted Vision\n" +
	"Flu,fatigue,,cough\n"

const precautionTable = "Disease,Precaution_1,Precaution_2,Precaution_3\n" +
	"Flu, rest ,drink fluids,\n" +
	"Migraine,dark room,,\n"

func TestParseSymptomTable(t *testing.T) {
	t.Parallel()

	t.Run("unions repeated disease rows", func(t *testing.T) {
		t.Parallel()

		diseases, symptoms := symcheck.ParseSymptomTable("Disease,S1\nflu,fever\nflu,cough\n")

		assert.Equal(t, []string{"flu"}, diseases)
		assert.Equal(t, symcheck.NewTokenSet("fever", "cough"), symptoms["flu"])
	})

	t.Run("normalizes cells and keeps first-appearance order", func(t *testing.T) {
		t.Parallel()

		diseases, symptoms := symcheck.ParseSymptomTable(symptomTable)

		assert.Equal(t, []string{"Flu", "Migraine"}, diseases)
		assert.Equal(t, symcheck.NewTokenSet("high_fever", "cough", "fatigue"), symptoms["Flu"])
		assert.Equal(t, symcheck.NewTokenSet("headache", "nausea", "blurred_and_distorted_vision"), symptoms["Migraine"])
	})

	t.Run("skips header and rows without a disease", func(t *testing.T) {
		t.Parallel()

		diseases, _ := symcheck.ParseSymptomTable("Disease,S1\n ,fever\nCold,cough\n")

		assert.Equal(t, []string{"Cold"}, diseases)
	})

	t.Run("handles CRLF line endings and blank lines", func(t *testing.T) {
		t.Parallel()

		diseases, symptoms := symcheck.ParseSymptomTable("Disease,S1\r\n\r\nCold,cough\r\n")

		assert.Equal(t, []string{"Cold"}, diseases)
		assert.True(t, symptoms["Cold"].Has("cough"))
	})

	t.Run("header only yields nothing", func(t *testing.T) {
		t.Parallel()

		diseases, symptoms := symcheck.ParseSymptomTable("Disease,S1\n")

		assert.Empty(t, diseases)
		assert.Empty(t, symptoms)
	})
}

func TestParsePrecautionTable(t *testing.T) {
	t.Parallel()

	t.Run("later row overwrites earlier row", func(t *testing.T) {
		t.Parallel()

		precautions := symcheck.ParsePrecautionTable("Disease,P1\nflu,rest\nflu,hydrate\n")

		assert.Equal(t, []string{"hydrate"}, precautions["flu"])
	})

	t.Run("keeps column order and drops empty cells", func(t *testing.T) {
		t.Parallel()

		precautions := symcheck.ParsePrecautionTable(precautionTable)

		assert.Equal(t, []string{"rest", "drink fluids"}, precautions["Flu"])
		assert.Equal(t, []string{"dark room"}, precautions["Migraine"])
	})

	t.Run("row without precautions does not clear earlier list", func(t *testing.T) {
		t.Parallel()

		precautions := symcheck.ParsePrecautionTable("Disease,P1\nflu,rest\nflu, \n")

		assert.Equal(t, []string{"rest"}, precautions["flu"])
	})
}

func TestNewReference(t *testing.T) {
	t.Parallel()

	t.Run("builds vocabulary from all symptoms", func(t *testing.T) {
		t.Parallel()

		ref := symcheck.NewReference(symptomTable, precautionTable)

		require.True(t, ref.Ready())
		assert.Equal(t, 6, ref.Vocabulary().Len())
		assert.True(t, ref.Vocabulary().Has("blurred_and_distorted_vision"))
		assert.Equal(t, []symcheck.Token{"cough", "fatigue", "high_fever"}, ref.Symptoms("Flu"))
		assert.Equal(t, []string{"rest", "drink fluids"}, ref.Precautions("Flu"))
	})

	t.Run("is not ready without symptom rows", func(t *testing.T) {
		t.Parallel()

		ref := symcheck.NewReference("", precautionTable)

		assert.False(t, ref.Ready())
		assert.Zero(t, ref.Vocabulary().Len())
	})

	t.Run("missing precautions are nil", func(t *testing.T) {
		t.Parallel()

		ref := symcheck.NewReference(symptomTable, "")

		assert.Nil(t, ref.Precautions("Flu"))
	})

	t.Run("checksum depends on both tables", func(t *testing.T) {
		t.Parallel()

		a := symcheck.NewReference(symptomTable, precautionTable)
		b := symcheck.NewReference(symptomTable, precautionTable)
		c := symcheck.NewReference(symptomTable, "")

		assert.Equal(t, a.Checksum, b.Checksum)
		assert.NotEqual(t, a.Checksum, c.Checksum)
	})

	t.Run("formats checksum as fixed-width hex", func(t *testing.T) {
		t.Parallel()

		ref := symcheck.NewReference(symptomTable, precautionTable)

		assert.Len(t, ref.ChecksumHex(), 16)
		assert.Equal(t, fmt.Sprintf("%016x", ref.Checksum), ref.ChecksumHex())

		var missing *symcheck.Reference
		assert.Empty(t, missing.ChecksumHex())
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		t.Parallel()

		ref := symcheck.NewReference(symptomTable, precautionTable)
		ref.Diseases()[0] = "changed"
		ref.Precautions("Flu")[0] = "changed"

		assert.Equal(t, "Flu", ref.Diseases()[0])
		assert.Equal(t, "rest", ref.Precautions("Flu")[0])
	})
}

func TestReference_Dataset(t *testing.T) {
	t.Parallel()

	ref := symcheck.NewReference(symptomTable, precautionTable)

	ds := ref.Dataset()

	require.Len(t, ds, 2)
	assert.Equal(t, "Flu", ds[0].Name)
	require.NotNil(t, ds[0].Info)
	assert.Equal(t, "Precautions: rest; drink fluids", ds[0].Info.Advice)
	assert.Equal(t, symcheck.UrgencyMedium, ds[0].Info.Urgency)
}
