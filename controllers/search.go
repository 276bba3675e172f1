package controllers

import (
	"sort"
	"strings"
	"sync"

	"estate/dto"
	"estate/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// prepareNearbyList gom các giá trị nearby_objects duy nhất cho closestmatch
func prepareNearbyList(apartments []models.Apartment) []string {
	uniqueValues := make(map[string]bool)

	for _, a := range apartments {
		if a.NearbyObjects != "" {
			uniqueValues[normalizeInput(a.NearbyObjects)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// calculateScore tính điểm phù hợp của một căn hộ với từ khóa tìm kiếm
func calculateScore(query string, a models.Apartment, cmNearby *closestmatch.ClosestMatch) int {
	score := 0

	normalizedDescription := normalizeInput(a.Description)
	if normalizedDescription != "" {
		similarity := calculateSimilarity(query, normalizedDescription)
		if similarity > 0.7 || strings.Contains(normalizedDescription, query) {
			score += 13
		}
	}

	normalizedObjects := normalizeInput(a.ObjectsInApartment)
	if normalizedObjects != "" && strings.Contains(normalizedObjects, query) {
		score += 8
	}

	if cmNearby.Closest(query) == normalizeInput(a.NearbyObjects) {
		score += 4
	}

	return score
}

// filterAndScoreApartments chấm điểm từng căn hộ song song và xếp theo điểm
// giảm dần, loại căn hộ không khớp
func filterAndScoreApartments(query string, apartments []models.Apartment) []dto.ScoredApartment {
	normalizedQuery := normalizeInput(query)
	cmNearby := createMatcher(prepareNearbyList(apartments))

	var scoredApartments []dto.ScoredApartment
	scoreCh := make(chan dto.ScoredApartment, len(apartments))
	var wg sync.WaitGroup

	for _, a := range apartments {
		wg.Add(1)
		go func(a models.Apartment) {
			defer wg.Done()
			score := calculateScore(normalizedQuery, a, cmNearby)
			if score > 0 {
				scoreCh <- dto.ScoredApartment{
					Apartment: a,
					Score:     score,
				}
			}
		}(a)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scored := range scoreCh {
		scoredApartments = append(scoredApartments, scored)
	}

	sort.SliceStable(scoredApartments, func(i, j int) bool {
		return scoredApartments[i].Score > scoredApartments[j].Score
	})
	return scoredApartments
}
