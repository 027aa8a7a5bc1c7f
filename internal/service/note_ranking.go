package service

import (
	"math"
	"sort"
	"strings"

	"studysnap-be/internal/entity"
)

// Average reading speed used for the derived time-to-read field.
// Source: https://irisreading.com/what-is-the-average-reading-speed/
const avgWordsPerMin = 200

// Reported for note files we cannot extract text from (anything but PDF).
const extractionPlaceholder = "Cannot automatically extract content from this file."

// compareNotesWithCombinedFeatures scores two notes and returns
// bPoints - aPoints, so a negative result means a ranks first. The newer
// note earns a 30 point recency weight; each note then adds the sum of its
// rating values (many high ratings beat few low ones). Exact creation-time
// ties hand the recency weight to b in both argument orders, which is the
// only case where antisymmetry does not hold.
func compareNotesWithCombinedFeatures(a, b *entity.Note) int {
	aPoints := 0
	bPoints := 0

	if a.CreatedAt.After(b.CreatedAt) {
		aPoints += 30
	} else {
		bPoints += 30
	}

	aPoints += ratingPoints(a)
	bPoints += ratingPoints(b)

	return bPoints - aPoints
}

func ratingPoints(n *entity.Note) int {
	points := 0
	for _, r := range n.Ratings {
		points += r.Value
	}
	return points
}

// sortNotesByCombinedFeatures orders notes best-first. The sort is stable;
// ties keep their incoming order.
func sortNotesByCombinedFeatures(notes []*entity.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return compareNotesWithCombinedFeatures(notes[i], notes[j]) < 0
	})
}

// calculateReadTimeMinutes estimates minutes-to-read from the word count,
// rounded, plus one so even tiny notes report a nonzero length.
func calculateReadTimeMinutes(body string) int {
	words := strings.Split(body, " ")
	return int(math.Round(float64(len(words))/avgWordsPerMin)) + 1
}

// createNoteAbstract trims the extracted body to its first 50 words.
func createNoteAbstract(body string) string {
	words := strings.Split(body, " ")
	if len(words) > 50 {
		words = words[:50]
	}
	return strings.Join(words, " ") + " ..."
}
