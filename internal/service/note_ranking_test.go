package service

import (
	"strings"
	"testing"
	"time"

	"studysnap-be/internal/entity"
)

func noteWith(createdAt time.Time, ratingValues ...int) *entity.Note {
	n := &entity.Note{CreatedAt: createdAt}
	for i, v := range ratingValues {
		n.Ratings = append(n.Ratings, &entity.Rating{Id: int64(i + 1), Value: v})
	}
	return n
}

func TestCompareNotesWithCombinedFeatures(t *testing.T) {
	now := time.Now()
	earlier := now.Add(-time.Hour)

	tests := []struct {
		name      string
		a, b      *entity.Note
		wantAWins bool
	}{
		{
			name:      "newer unrated note beats older unrated note",
			a:         noteWith(now),
			b:         noteWith(earlier),
			wantAWins: true,
		},
		{
			name:      "many high ratings beat recency",
			a:         noteWith(now),
			b:         noteWith(earlier, 5, 5, 5, 5, 5, 5, 5),
			wantAWins: false,
		},
		{
			name:      "recency outweighs a few low ratings",
			a:         noteWith(now),
			b:         noteWith(earlier, 1, 2),
			wantAWins: true,
		},
		{
			name:      "sum of values decides between equally recent rating sets",
			a:         noteWith(now, 5, 5),
			b:         noteWith(earlier, 4, 4),
			wantAWins: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compareNotesWithCombinedFeatures(tt.a, tt.b)
			if tt.wantAWins && got >= 0 {
				t.Errorf("compare = %d, want negative (a first)", got)
			}
			if !tt.wantAWins && got <= 0 {
				t.Errorf("compare = %d, want positive (b first)", got)
			}
		})
	}
}

func TestCompareNotesAntisymmetry(t *testing.T) {
	now := time.Now()
	a := noteWith(now, 5, 3)
	b := noteWith(now.Add(-time.Minute), 4, 4, 2)

	forward := compareNotesWithCombinedFeatures(a, b)
	reverse := compareNotesWithCombinedFeatures(b, a)

	if forward != -reverse {
		t.Errorf("compare(a,b) = %d, compare(b,a) = %d, want negations", forward, reverse)
	}
}

func TestSortNotesByCombinedFeaturesIsStable(t *testing.T) {
	now := time.Now()
	// Identical timestamps and ratings; order must not change.
	a := noteWith(now, 3)
	b := noteWith(now, 3)
	a.Id, b.Id = 1, 2

	notes := []*entity.Note{a, b}
	sortNotesByCombinedFeatures(notes)

	if notes[0].Id != 1 || notes[1].Id != 2 {
		t.Errorf("tied notes were reordered: got [%d %d]", notes[0].Id, notes[1].Id)
	}
}

func TestCalculateReadTimeMinutes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "empty body still reads one minute", body: "", want: 1},
		{name: "short body rounds down", body: strings.Repeat("word ", 99) + "word", want: 2},
		{name: "four hundred words", body: strings.Repeat("word ", 399) + "word", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calculateReadTimeMinutes(tt.body); got != tt.want {
				t.Errorf("calculateReadTimeMinutes = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCreateNoteAbstract(t *testing.T) {
	short := "just a few words"
	if got := createNoteAbstract(short); got != short+" ..." {
		t.Errorf("short abstract = %q", got)
	}

	long := strings.Repeat("w ", 99) + "w"
	got := createNoteAbstract(long)
	if words := strings.Fields(got); len(words) != 51 { // 50 words + ellipsis
		t.Errorf("abstract word count = %d, want 51", len(words))
	}
	if !strings.HasSuffix(got, " ...") {
		t.Errorf("abstract missing ellipsis: %q", got)
	}
}
