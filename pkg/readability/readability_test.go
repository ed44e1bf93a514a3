package readability

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestAnalyze_SimpleSentence(t *testing.T) {
	m := Analyze("The cat sat on the mat.")

	if m.WordCount != 6 {
		t.Fatalf("expected 6 words, got %d", m.WordCount)
	}
	if m.SentenceCount != 1 {
		t.Fatalf("expected 1 sentence, got %d", m.SentenceCount)
	}
}

func TestAnalyze_Empty(t *testing.T) {
	m := Analyze("")

	if m.WordCount != 0 || m.SentenceCount != 1 {
		t.Fatalf("expected 0 words and 1 sentence, got %d and %d", m.WordCount, m.SentenceCount)
	}
	if m.GunningFogIndex != 0 || m.FleschKincaidGrade != 0 || m.FleschReadingEase != 0 || m.SMOGIndex != 0 {
		t.Fatalf("expected all scores 0, got %+v", m)
	}
}

func TestCountSyllables(t *testing.T) {
	tests := map[string]int{"cat": 1, "water": 2}
	for word, want := range tests {
		if got := CountSyllables(word); got != want {
			t.Errorf("CountSyllables(%q): expected %d, got %d", word, want, got)
		}
	}

	corrected := New(WithSyllableMode(SyllableCorrected)).Analyze("beautiful")
	if corrected.SyllableCount != 3 {
		t.Errorf("expected 3 syllables for beautiful in corrected mode, got %d", corrected.SyllableCount)
	}
}

func TestAnalyzeSource_NotFound(t *testing.T) {
	_, err := AnalyzeSource(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAnalyzer_WithFileReaderEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	// "Déjà vu." in ISO-8859-1
	if err := os.WriteFile(path, []byte{'D', 0xe9, 'j', 0xe0, ' ', 'v', 'u', '.'}, 0o644); err != nil {
		t.Fatal(err)
	}

	a := New(WithReader(NewFileReader("iso-8859-1")))
	m, err := a.AnalyzeSource(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "Déjà" is not a word (accented letters touch the ASCII run); "vu" is.
	if m.WordCount != 1 {
		t.Errorf("expected 1 word, got %d", m.WordCount)
	}
	if m.CharacterCount != 6 {
		t.Errorf("expected 6 letters, got %d", m.CharacterCount)
	}
}

func TestMarkdownToText(t *testing.T) {
	got := MarkdownToText([]byte("Some *emphasis* here.\n"))
	if got != "Some emphasis here.\n" {
		t.Fatalf("expected plain text, got %q", got)
	}
}
