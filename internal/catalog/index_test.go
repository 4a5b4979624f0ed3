package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndexFiltersBlankDescriptions(t *testing.T) {
	idx := BuildIndex([]Entry{
		{Description: "LACTOGEN PRO 1 BIB 24x400g", Code: "C1"},
		{Description: "", Code: "C2"},
		{Description: "   ", Code: "C3"},
		{Description: "---", Code: "C4"}, // normalizes to empty
		{Description: "NESCAFE CLASSIC 100g", Code: "C5"},
	})

	require.Equal(t, 2, idx.Size())
	assert.Equal(t, "C1", idx.EntryAt(0).Code)
	assert.Equal(t, "C5", idx.EntryAt(1).Code)

	_, ok := idx.EntryByCode("C2")
	assert.False(t, ok, "filtered entries must not be reachable")
}

func TestBuildIndexPrecomputesAlignedNormalizedForms(t *testing.T) {
	idx := BuildIndex([]Entry{
		{Description: "Lactogen Pro-1 (BIB)", Code: "C1"},
		{Description: "NESCAFE gold 50g", Code: "C2"},
	})

	require.Equal(t, 2, idx.Size())
	assert.Equal(t, "LACTOGEN PRO 1 BIB", idx.NormalizedAt(0))
	assert.Equal(t, "NESCAFE GOLD 50G", idx.NormalizedAt(1))
	for i := 0; i < idx.Size(); i++ {
		assert.NotEmpty(t, idx.NormalizedAt(i))
	}
}

func TestEntryByCodeFirstOccurrenceWins(t *testing.T) {
	idx := BuildIndex([]Entry{
		{Description: "FIRST ROW", Code: "DUP"},
		{Description: "SECOND ROW", Code: "DUP"},
	})

	e, ok := idx.EntryByCode("DUP")
	require.True(t, ok)
	assert.Equal(t, "FIRST ROW", e.Description)
}

func TestParseTaxFlag(t *testing.T) {
	taxable := []string{"1", "Y", "y", "YES", "true", " 1 ", "2", "0.5"}
	for _, s := range taxable {
		assert.True(t, ParseTaxFlag(s), "expected taxable for %q", s)
	}
	notTaxable := []string{"", "0", "N", "NO", "false", "garbage", "0.0"}
	for _, s := range notTaxable {
		assert.False(t, ParseTaxFlag(s), "expected not taxable for %q", s)
	}
}
