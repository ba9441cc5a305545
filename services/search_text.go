package services

import (
	"sort"
	"strings"

	"github.com/bwubca23694-eng/Brainware-Rooms/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// NormalizeSearchTerm folds accents and case so queries match however the
// listing text was typed.
func NormalizeSearchTerm(input string) string {
	return strings.ToLower(unidecode.Unidecode(strings.TrimSpace(input)))
}

// newAreaMatcher builds a fuzzy matcher over the known area names
func newAreaMatcher(areas []string) *closestmatch.ClosestMatch {
	return closestmatch.New(areas, []int{2, 3})
}

// fuzzyEqual treats words within edit distance 1 as the same term, so
// "barasaat" still finds Barasat.
func fuzzyEqual(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	return distance <= 1
}

// scoreRoom ranks how well a room matches the free-text query
func scoreRoom(query string, room *models.Room, cmArea *closestmatch.ClosestMatch) int {
	score := 0
	title := NormalizeSearchTerm(room.Title)
	description := NormalizeSearchTerm(room.Description)
	area := NormalizeSearchTerm(room.Address.Area)

	if strings.Contains(title, query) {
		score += 4
	}
	if strings.Contains(description, query) {
		score += 2
	}

	if area != "" {
		if strings.Contains(area, query) || fuzzyEqual(area, query) {
			score += 3
		} else if cmArea != nil && NormalizeSearchTerm(cmArea.Closest(query)) == area {
			score++
		}
	}

	for _, word := range strings.Fields(query) {
		for _, titleWord := range strings.Fields(title) {
			if fuzzyEqual(word, titleWord) {
				score++
				break
			}
		}
	}
	return score
}

// RankRoomsByQuery reorders one page of matches so the closest textual
// matches come first. The sort is stable, so the repository's ordering
// breaks ties.
func RankRoomsByQuery(query string, rooms []models.Room) {
	normalized := NormalizeSearchTerm(query)
	if normalized == "" || len(rooms) < 2 {
		return
	}

	areas := make([]string, 0, len(rooms))
	seen := make(map[string]bool)
	for _, room := range rooms {
		area := NormalizeSearchTerm(room.Address.Area)
		if area != "" && !seen[area] {
			seen[area] = true
			areas = append(areas, area)
		}
	}
	var cmArea *closestmatch.ClosestMatch
	if len(areas) > 0 {
		cmArea = newAreaMatcher(areas)
	}

	type scored struct {
		room  models.Room
		score int
	}
	ranked := make([]scored, len(rooms))
	for i := range rooms {
		ranked[i] = scored{room: rooms[i], score: scoreRoom(normalized, &rooms[i], cmArea)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	for i := range ranked {
		rooms[i] = ranked[i].room
	}
}
