package main

import (
	"fmt"
	"html"
	"net/http"
	"slices"
	"strings"

	"nurse-roster/internal/models"

	"github.com/starfederation/datastar-go/datastar"
)

type ActiveSearchSignals struct {
	NurseSearch string `json:"nurseSearch"`
}

// Levenshtein calculates the Levenshtein distance between two strings.
func Levenshtein(s1, s2 string) int {
	r1, r2 := []rune(s1), []rune(s2)
	n, m := len(r1), len(r2)
	if n > m {
		r1, r2 = r2, r1
		n, m = m, n
	}

	currentRow := make([]int, n+1)
	for i := 0; i <= n; i++ {
		currentRow[i] = i
	}

	for i := 1; i <= m; i++ {
		previousRow := currentRow
		currentRow = make([]int, n+1)
		currentRow[0] = i
		for j := 1; j <= n; j++ {
			add, del, change := previousRow[j]+1, currentRow[j-1]+1, previousRow[j-1]
			if r1[j-1] != r2[i-1] {
				change++
			}
			currentRow[j] = min(add, del, change)
		}
	}
	return currentRow[n]
}

// handleActiveSearch filters the nurse list by name as the user types and
// patches the result rows into the page over SSE.
func handleActiveSearch(w http.ResponseWriter, r *http.Request) {
	signals := &ActiveSearchSignals{}
	if err := datastar.ReadSignals(r, signals); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query := strings.ToLower(strings.TrimSpace(signals.NurseSearch))
	sse := datastar.NewSSE(w, r)

	handleNurseSearch(sse, query)
}

func handleNurseSearch(sse *datastar.ServerSentEventGenerator, query string) {
	type ScoredNurse struct {
		Nurse models.Nurse
		Score int
	}

	var results []ScoredNurse

	for _, nurse := range store.Nurses() {
		if query == "" {
			results = append(results, ScoredNurse{Nurse: nurse, Score: 0})
			continue
		}

		name := strings.ToLower(nurse.Name)

		// Simple scoring: contains = 0, fuzzy = distance
		score := 1000
		if strings.Contains(name, query) {
			score = 0
		} else if dist := Levenshtein(query, name); dist < 5 {
			score = dist
		}

		if score < 1000 {
			results = append(results, ScoredNurse{Nurse: nurse, Score: score})
		}
	}

	slices.SortStableFunc(results, func(a, b ScoredNurse) int {
		return a.Score - b.Score
	})

	if len(results) > 15 {
		results = results[:15]
	}

	var sb strings.Builder
	sb.WriteString(`<ul id="nurse-results" class="list border">`)
	for _, res := range results {
		name := html.EscapeString(res.Nurse.Name)
		sb.WriteString(fmt.Sprintf(`
			<li class="row nurse-row">
				<span class="max nurse-name">%s</span>
				<button class="circle transparent" onclick="ui('#prefs-%s')"><i>edit</i></button>
			</li>`, name, res.Nurse.ID))
	}
	if len(results) == 0 {
		sb.WriteString(`<li class="padding">No results found</li>`)
	}
	sb.WriteString("</ul>")

	sse.PatchElements(sb.String())
}
