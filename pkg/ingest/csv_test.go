package ingest

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `id,name,age,gender,occupation,friends
1,Ann,30,F,Engineer,"2,3"
2,Bob,31,M,Teacher,"1"

# retired
3,Cid,65,M,Retired,"1"
`

func TestParseCSV_SkipsHeaderCommentsAndBlankLines(t *testing.T) {
	records, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, "Ann", records[0].Name)
	assert.Equal(t, 30, records[0].Age)
	assert.Equal(t, "F", records[0].Gender)
	assert.Equal(t, "Engineer", records[0].Occupation)
	assert.Equal(t, []int{2, 3}, records[0].Friends)
	assert.Equal(t, []int{1}, records[2].Friends)
}

func TestParseCSV_UnquotedFriendsSpillIntoColumns(t *testing.T) {
	records, err := ParseCSV(strings.NewReader("7,Gus,40,M,Chef,1,2;3\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []int{1, 2, 3}, records[0].Friends)
}

func TestParseCSV_NoFriendsColumn(t *testing.T) {
	records, err := ParseCSV(strings.NewReader("4,Dee,22,F,Student\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.NotNil(t, records[0].Friends)
	assert.Empty(t, records[0].Friends)
}

func TestParseCSV_EmptyInput(t *testing.T) {
	records, err := ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseCSV_MalformedRecords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		field string
	}{
		{"bad id", "x,Ann,30,F,Engineer\n", 1, "id"},
		{"bad age", "1,Ann,old,F,Engineer\n", 1, "age"},
		{"bad friend", "1,Ann,30,F,Engineer,\"2,z\"\n", 1, "friends"},
		{"too few columns", "1,Ann,30\n", 1, ""},
		{"error after header", "id,name,age,gender,occupation\n1,Ann,30,F,Engineer\n2,Bob\n", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRecord), "expected ErrMalformedRecord, got %v", err)

			var recErr *RecordError
			require.True(t, errors.As(err, &recErr))
			assert.Equal(t, tt.line, recErr.Line)
			assert.Equal(t, tt.field, recErr.Field)
		})
	}
}

func TestParseCSV_BareQuote(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("1,Ann,30,F,Eng\"ineer\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}
