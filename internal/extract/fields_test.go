package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractIDNumbers(t *testing.T) {
	f := NewFieldExtractor()

	data := f.ExtractFields("ID NO: 12345678\nSERIAL 987654321 and again 12345678")
	assert.Equal(t, []string{"12345678", "987654321"}, data.IDNumbers)

	// Too short and too long runs are not ID candidates.
	data = f.ExtractFields("ref 123456 card 1234567890")
	assert.Empty(t, data.IDNumbers)
}

func TestExtractNamesFromLabel(t *testing.T) {
	f := NewFieldExtractor()

	data := f.ExtractFields("FULL NAME: JANE WANJIKU KAMAU\nDISTRICT: NAKURU")
	assert.Contains(t, data.Names, "JANE WANJIKU KAMAU")
}

func TestExtractNamesHeuristic(t *testing.T) {
	f := NewFieldExtractor()

	data := f.ExtractFields("Issued to Jane Wanjiku at the registry")
	assert.Contains(t, data.Names, "JANE WANJIKU")
}

func TestExtractNamesCleansNoise(t *testing.T) {
	f := NewFieldExtractor()

	data := f.ExtractFields("NAME:  JANE   WANJIKU. \nNAME: JANE WANJIKU")
	// Punctuation stripped, whitespace collapsed, duplicates dropped.
	assert.Equal(t, []string{"JANE WANJIKU"}, data.Names)
}

func TestExtractDates(t *testing.T) {
	f := NewFieldExtractor()

	data := f.ExtractFields("DATE OF BIRTH: 12/06/1995")
	assert.Contains(t, data.Dates, "12/06/1995")

	data = f.ExtractFields("DOB 1995-06-12")
	assert.Contains(t, data.Dates, "1995-06-12")
}

func TestExtractFieldsEmptyText(t *testing.T) {
	f := NewFieldExtractor()

	data := f.ExtractFields("")
	assert.Empty(t, data.IDNumbers)
	assert.Empty(t, data.Names)
	assert.Empty(t, data.Dates)
}
