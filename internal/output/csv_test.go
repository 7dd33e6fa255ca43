package output

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerdash/nerdash/internal/record"
	"github.com/nerdash/nerdash/internal/view"
)

func TestWriteCSV(t *testing.T) {
	tc := fixtureDashboard().TestCase("cities")
	require.NotNil(t, tc)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(tc, &buf))

	want := "Phrase_ID,Phrase,Entity,Type,Score,Start,End\n" +
		`1,"Paris is in France","Paris",LOC,0.99,0,5` + "\n" +
		`1,"Paris is in France","France",LOC,0.65,12,18` + "\n" +
		`2,"A ""quiet"" day","",N/A,N/A,0,0` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestCSVFileName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"cities", "cities_entities.csv"},
		{"../x", ".._x_entities.csv"},
		{"a/b/c", "a_b_c_entities.csv"},
		{`..\evil`, ".._evil_entities.csv"},
		{"", "_entities.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CSVFileName(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, filepath.Base(got))
		})
	}
}

func TestWriteCSV_ScoreText(t *testing.T) {
	raw := `{"Test_Case": "s", "Phrase_ID": 1.0, "Phrase": "Oslo", "Word": "Oslo", "Entity_Group": "LOC", "Score": 0.90, "Start": 0, "End": 4}
{"Test_Case": "s", "Phrase_ID": 1, "Phrase": "Oslo", "Word": "Oslo", "Entity_Group": "LOC", "Score": "0.90", "Start": 0, "End": 4}`
	d := view.Build(record.Parse([]byte(raw)).Records)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(d.TestCase("s"), &buf))

	want := "Phrase_ID,Phrase,Entity,Type,Score,Start,End\n" +
		`1,"Oslo","Oslo",LOC,0.9,0,4` + "\n" +
		`1,"Oslo","Oslo",LOC,0.90,0,4` + "\n"
	assert.Equal(t, want, buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func TestWriteCSV_WriteError(t *testing.T) {
	err := WriteCSV(fixtureDashboard().TestCase("cities"), failWriter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
