package services

import (
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"yultimate/models"
)

const minNameSimilarity = 0.75

type scoredChild struct {
	child models.Child
	score int
}

// normalizeName transliterates to ASCII, lower-cases and trims.
func normalizeName(input string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(input)))
}

func nameSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

// SearchChildren ranks children against a free-text name query.
func SearchChildren(query string, children []models.Child) []models.Child {
	q := normalizeName(query)
	if q == "" || len(children) == 0 {
		return children
	}
	words := strings.Fields(q)

	tokenSet := make(map[string]struct{})
	for _, c := range children {
		for _, tok := range strings.Fields(normalizeName(c.FirstName + " " + c.LastName)) {
			tokenSet[tok] = struct{}{}
		}
	}
	tokens := make([]string, 0, len(tokenSet))
	for tok := range tokenSet {
		tokens = append(tokens, tok)
	}
	cm := closestmatch.New(tokens, []int{2, 3})
	closest := make(map[string]string, len(words))
	for _, w := range words {
		closest[w] = cm.Closest(w)
	}

	var scored []scoredChild
	for _, c := range children {
		if s := scoreChild(q, words, closest, c); s > 0 {
			scored = append(scored, scoredChild{child: c, score: s})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		if scored[i].child.LastName != scored[j].child.LastName {
			return scored[i].child.LastName < scored[j].child.LastName
		}
		return scored[i].child.FirstName < scored[j].child.FirstName
	})

	out := make([]models.Child, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.child)
	}
	return out
}

func scoreChild(q string, words []string, closest map[string]string, c models.Child) int {
	full := normalizeName(c.FirstName + " " + c.LastName)
	nameTokens := strings.Fields(full)
	score := 0

	if strings.Contains(full, q) {
		score += 100
		if strings.HasPrefix(full, q) {
			score += 20
		}
	}

	for _, w := range words {
		best := 0.0
		for _, tok := range nameTokens {
			if sim := nameSimilarity(w, tok); sim > best {
				best = sim
			}
			if tok == closest[w] && nameSimilarity(w, tok) >= minNameSimilarity {
				score += 10
			}
		}
		if best >= minNameSimilarity {
			score += int(best * 40)
		}
	}
	return score
}
