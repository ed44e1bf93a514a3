package types

/////////////////////////////////////////////////////////////////////////////
// TEXT METRICS
/////////////////////////////////////////////////////////////////////////////

// TextMetrics is the result of one analysis pass. It is built once and
// holds no reference to the analyzed text.
//
// SentenceCount is always at least 1 and ComplexWordCount never exceeds
// WordCount.
type TextMetrics struct {
	WordCount        int `json:"word_count"`
	SentenceCount    int `json:"sentence_count"`
	SyllableCount    int `json:"syllable_count"`
	ComplexWordCount int `json:"complex_word_count"`
	CharacterCount   int `json:"character_count"`

	GunningFogIndex    float64 `json:"gunning_fog_index"`
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade"`
	FleschReadingEase  float64 `json:"flesch_reading_ease"`
	SMOGIndex          float64 `json:"smog_index"`

	AverageWordsPerSentence float64 `json:"average_words_per_sentence"`
	AverageSyllablesPerWord float64 `json:"average_syllables_per_word"`
}

// SourceMetrics pairs a metrics record with the name of the text it came
// from ("stdin", "sample" or a file path).
type SourceMetrics struct {
	Source  string      `json:"source"`
	Metrics TextMetrics `json:"metrics"`
}
