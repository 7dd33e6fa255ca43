package output

import (
	"strings"

	"github.com/nerdash/nerdash/internal/record"
	"github.com/nerdash/nerdash/internal/view"
)

var fixtureLines = []string{
	`{"Test_Case":"cities","Phrase_ID":1,"Phrase":"Paris is in France","Word":"Paris","Entity_Group":"LOC","Score":0.99,"Start":0,"End":5,"Algorithm":"bert"}`,
	`{"Test_Case":"cities","Phrase_ID":1,"Phrase":"Paris is in France","Word":"France","Entity_Group":"LOC","Score":0.65,"Start":12,"End":18,"Algorithm":"bert"}`,
	`{"Test_Case":"cities","Phrase_ID":2,"Phrase":"A \"quiet\" day","Word":"","Entity_Group":"N/A","Score":"N/A","Start":0,"End":0,"Algorithm":"bert"}`,
	`{"Test_Case":"people","Phrase_ID":1,"Phrase":"Ada met Bob","Word":"Ada","Entity_Group":"PER","Score":0.9,"Start":0,"End":3,"Algorithm":"spacy"}`,
}

func fixtureResult() *record.Result {
	return record.Parse([]byte(strings.Join(fixtureLines, "\n") + "\n"))
}

func fixtureDashboard() *view.Dashboard {
	return view.Build(fixtureResult().Records)
}
