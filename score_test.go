package symcheck_test

import (
	"testing"

	"github.com/fwojciec/symcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(matches []symcheck.Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Disease
	}
	return out
}

func TestScore(t *testing.T) {
	t.Parallel()

	t.Run("reports matches, total and percentage", func(t *testing.T) {
		t.Parallel()

		ref := symcheck.NewReference("Disease,S1,S2,S3\nflu,fever,cough,fatigue\n", "Disease,P1\nflu,rest\n")

		got := symcheck.Score(symcheck.NewTokenSet("fever", "cough"), ref)

		require.Len(t, got, 1)
		assert.Equal(t, "flu", got[0].Disease)
		assert.Equal(t, 2, got[0].Matches)
		assert.Equal(t, 3, got[0].Total)
		assert.InDelta(t, 66.67, got[0].Percentage, 0.01)
		assert.Equal(t, []string{"rest"}, got[0].Precautions)
	})

	t.Run("empty user tokens yield empty result", func(t *testing.T) {
		t.Parallel()

		ref := symcheck.NewReference("Disease,S1\nflu,fever\n", "")

		got := symcheck.Score(symcheck.NewTokenSet(), ref)

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("skips diseases without matches", func(t *testing.T) {
		t.Parallel()

		ref := symcheck.NewReference("Disease,S1\nflu,fever\ncold,sneezing\n", "")

		got := symcheck.Score(symcheck.NewTokenSet("fever"), ref)

		assert.Equal(t, []string{"flu"}, names(got))
	})

	t.Run("missing precautions are an empty list", func(t *testing.T) {
		t.Parallel()

		ref := symcheck.NewReference("Disease,S1\nflu,fever\n", "")

		got := symcheck.Score(symcheck.NewTokenSet("fever"), ref)

		require.Len(t, got, 1)
		assert.NotNil(t, got[0].Precautions)
		assert.Empty(t, got[0].Precautions)
	})

	t.Run("percentage stays within bounds", func(t *testing.T) {
		t.Parallel()

		ref := symcheck.NewReference("Disease,S1,S2\na,x,y\nb,x,x\nc,y,z\n", "")

		for _, m := range symcheck.Score(symcheck.NewTokenSet("x", "y", "z", "w"), ref) {
			assert.GreaterOrEqual(t, m.Percentage, 0.0)
			assert.LessOrEqual(t, m.Percentage, 100.0)
			assert.LessOrEqual(t, m.Matches, m.Total)
		}
	})
}

func TestScoreDataset_Ordering(t *testing.T) {
	t.Parallel()

	t.Run("sorts by percentage descending", func(t *testing.T) {
		t.Parallel()

		ds := symcheck.Dataset{
			{Name: "low", Symptoms: []symcheck.Token{"a", "b", "c", "d"}},
			{Name: "high", Symptoms: []symcheck.Token{"a"}},
		}

		got := symcheck.ScoreDataset(symcheck.NewTokenSet("a"), ds, 0)

		assert.Equal(t, []string{"high", "low"}, names(got))
	})

	t.Run("breaks percentage ties by match count", func(t *testing.T) {
		t.Parallel()

		ds := symcheck.Dataset{
			{Name: "one-of-two", Symptoms: []symcheck.Token{"a", "x"}},
			{Name: "two-of-four", Symptoms: []symcheck.Token{"a", "b", "y", "z"}},
		}

		got := symcheck.ScoreDataset(symcheck.NewTokenSet("a", "b"), ds, 0)

		assert.Equal(t, []string{"two-of-four", "one-of-two"}, names(got))
	})

	t.Run("keeps dataset order for full ties", func(t *testing.T) {
		t.Parallel()

		ds := symcheck.Dataset{
			{Name: "first", Symptoms: []symcheck.Token{"a", "x"}},
			{Name: "second", Symptoms: []symcheck.Token{"a", "y"}},
			{Name: "third", Symptoms: []symcheck.Token{"a", "z"}},
		}

		got := symcheck.ScoreDataset(symcheck.NewTokenSet("a"), ds, 0)

		assert.Equal(t, []string{"first", "second", "third"}, names(got))
	})

	t.Run("applies threshold", func(t *testing.T) {
		t.Parallel()

		ds := symcheck.Dataset{
			{Name: "half", Symptoms: []symcheck.Token{"a", "b"}},
			{Name: "third", Symptoms: []symcheck.Token{"a", "b", "c"}},
			{Name: "quarter", Symptoms: []symcheck.Token{"a", "x", "y", "z"}},
		}

		got := symcheck.ScoreDataset(symcheck.NewTokenSet("a"), ds, 50)

		assert.Equal(t, []string{"half"}, names(got))
	})

	t.Run("counts duplicate symptoms once", func(t *testing.T) {
		t.Parallel()

		ds := symcheck.Dataset{{Name: "dup", Symptoms: []symcheck.Token{"a", "a", "b"}}}

		got := symcheck.ScoreDataset(symcheck.NewTokenSet("a"), ds, 0)

		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].Matches)
		assert.Equal(t, 2, got[0].Total)
	})

	t.Run("skips conditions without symptoms", func(t *testing.T) {
		t.Parallel()

		ds := symcheck.Dataset{{Name: "empty"}}

		assert.Empty(t, symcheck.ScoreDataset(symcheck.NewTokenSet("a"), ds, 0))
	})
}

func TestScoreFallback(t *testing.T) {
	t.Parallel()

	t.Run("requires at least half of a condition's symptoms", func(t *testing.T) {
		t.Parallel()

		got := symcheck.ScoreFallback([]string{"headache", "nausea"})

		require.Equal(t, []string{"migraine"}, names(got))
		assert.InDelta(t, 100, got[0].Percentage, 0.001)
		require.NotNil(t, got[0].Info)
		assert.Equal(t, "Migraine", got[0].Info.Name)
	})

	t.Run("normalizes hyphenated symptom values", func(t *testing.T) {
		t.Parallel()

		got := symcheck.ScoreFallback([]string{"fever", "cough", "fatigue", "body-ache"})

		want := []string{"flu", "covid", "food-poisoning", "bronchitis", "gastroenteritis", "cold"}
		assert.Equal(t, want, names(got))
	})

	t.Run("no symptoms yields empty result", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, symcheck.ScoreFallback(nil))
	})
}

func TestFallbackDataset(t *testing.T) {
	t.Parallel()

	ds := symcheck.FallbackDataset()

	require.Len(t, ds, 8)
	for _, c := range ds {
		require.NotNil(t, c.Info, c.Name)
		assert.NotEmpty(t, c.Symptoms, c.Name)
		for _, s := range c.Symptoms {
			assert.Equal(t, symcheck.Normalize(string(s)), s, "condition %s", c.Name)
		}
	}
}
