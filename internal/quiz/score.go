package quiz

import "math"

// Score returns the percentage of questions whose selection includes the
// correct option, rounded half away from zero, and the number of such questions.
func Score(questions []Question, selections map[int]Selection) (score, correct int) {
	if len(questions) == 0 {
		return 0, 0
	}
	for i, q := range questions {
		if selections[i].Contains(q.CorrectIndex) {
			correct++
		}
	}
	score = int(math.Round(100 * float64(correct) / float64(len(questions))))
	return score, correct
}
