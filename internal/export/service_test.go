package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
)

func TestReviewWorkbook(t *testing.T) {
	items := []*entity.LineItem{
		{
			Description: "LACTOGEN PRO1 BIB 24x400g NP",
			SKUCode:     "LAC400",
			Quantity:    12,
			Rate:        1250.5,
			Candidates: []entity.MatchCandidate{
				{Description: "LACTOGEN PRO 1 BIB 24x400g", Code: "100234", Score: 86.0, Rank: 1},
				{Description: "LACTOGEN PRO 2 BIB 24x400g", Code: "100235", Score: 81.0, Rank: 2},
			},
			BestMatch:     &entity.MatchCandidate{Description: "LACTOGEN PRO 1 BIB 24x400g", Code: "100234", Score: 86.0, Rank: 1},
			Confidence:    entity.ConfidenceHigh,
			Resolution:    entity.ResolutionNewlyMatched,
			TaxApplicable: true,
		},
		{
			Description: "UNKNOWN THING",
			Confidence:  entity.ConfidenceNone,
			Resolution:  entity.ResolutionUnmatched,
		},
	}

	svc := NewService(nil)
	b, err := svc.ReviewWorkbook("INV-42", items)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	const sheet = "Reconciliation"

	header, err := f.GetCellValue(sheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Invoice Description", header)

	desc, _ := f.GetCellValue(sheet, "B2")
	assert.Equal(t, "LACTOGEN PRO1 BIB 24x400g NP", desc)

	matchedCode, _ := f.GetCellValue(sheet, "I2")
	assert.Equal(t, "100234", matchedCode)

	conf, _ := f.GetCellValue(sheet, "K2")
	assert.Equal(t, "high", conf)

	others, _ := f.GetCellValue(sheet, "N2")
	assert.Contains(t, others, "LACTOGEN PRO 2 BIB 24x400g")
	assert.NotContains(t, others, "100234")

	res, _ := f.GetCellValue(sheet, "L3")
	assert.Equal(t, "Unmatched", res)
	best, _ := f.GetCellValue(sheet, "H3")
	assert.Equal(t, "", best)
}
