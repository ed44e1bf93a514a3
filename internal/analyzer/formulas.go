package analyzer

import "math"

// SMOGMinSentences is the sample size below which SMOG is not reported.
const SMOGMinSentences = 30

// GunningFog = 0.4 * (words/sentences + 100 * complex/words).
func GunningFog(words, sentences, complexWords int) float64 {
	if words == 0 || sentences == 0 {
		return 0.0
	}
	return 0.4 * (float64(words)/float64(sentences) +
		100.0*(float64(complexWords)/float64(words)))
}

// FleschKincaidGrade = 0.39 * (words/sentences) + 11.8 * (syllables/words) - 15.59.
func FleschKincaidGrade(words, sentences, syllables int) float64 {
	if words == 0 || sentences == 0 {
		return 0.0
	}
	return 0.39*(float64(words)/float64(sentences)) +
		11.8*(float64(syllables)/float64(words)) -
		15.59
}

// FleschReadingEase = 206.835 - 1.015 * (words/sentences) - 84.6 * (syllables/words).
func FleschReadingEase(words, sentences, syllables int) float64 {
	if words == 0 || sentences == 0 {
		return 0.0
	}
	return 206.835 -
		1.015*(float64(words)/float64(sentences)) -
		84.6*(float64(syllables)/float64(words))
}

// SMOG = 1.0430 * sqrt(complex * 30/sentences) + 3.1291, and 0 below
// SMOGMinSentences sentences.
func SMOG(sentences, complexWords int) float64 {
	if sentences < SMOGMinSentences {
		return 0.0
	}
	return 1.0430*math.Sqrt(float64(complexWords)*(30.0/float64(sentences))) + 3.1291
}
