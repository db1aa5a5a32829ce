package constants

// ReportLimits caps how much lexical detail the console report prints per word.
var ReportLimits = struct {
	MaxDefinitions int
	MaxExamples    int
	MaxSynonyms    int
	DefinitionLen  int
}{
	MaxDefinitions: 2,
	MaxExamples:    2,
	MaxSynonyms:    5,
	DefinitionLen:  160, // rune cap before truncation
}

// DatasetColumns names the recognized CSV header columns.
var DatasetColumns = struct {
	Word         string
	Level        string
	PartOfSpeech string
	Frequency    string
}{
	Word:         "word",
	Level:        "level",
	PartOfSpeech: "pos",
	Frequency:    "frequency",
}
