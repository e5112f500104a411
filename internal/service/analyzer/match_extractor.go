package analyzer

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/HarshXTrisha/vericheck-pro/internal/models"
)

const (
	matchesStartMarker = "[MATCHES_START]"
	matchesEndMarker   = "[MATCHES_END]"

	// Segments this short are degenerate matches and are dropped.
	minSegmentRunes = 5
)

var indexPattern = regexp.MustCompile(`\d+`)

// Similarity holds the derived per-category and overall percentages for one
// report. Overall is clamped to 100; category sums may exceed it when
// matches overlap.
type Similarity struct {
	Overall     int
	Internet    int
	Publication int
	Student     int
}

// ExtractMatches parses the free-text match listing returned by the model
// gateway into structured match records and derives the similarity
// percentages against totalChars (the submitted document's rune count).
//
// A response without the marker pair yields no matches, not an error:
// absence of matches is a valid outcome. Malformed lines inside the marked
// section are skipped without aborting the rest.
func ExtractMatches(raw string, grounding []models.GroundingSource, totalChars int) ([]models.PlagiarismMatch, Similarity) {
	matches := []models.PlagiarismMatch{}

	var internetChars, publicationChars, studentChars int

	section, ok := matchesSection(raw)
	if ok {
		for _, line := range strings.Split(strings.TrimSpace(section), "\n") {
			parts := strings.Split(line, "|")
			if len(parts) < 4 {
				continue
			}

			index := len(matches) + 1
			if token := indexPattern.FindString(parts[0]); token != "" {
				if parsed, err := strconv.Atoi(token); err == nil {
					index = parsed
				}
			}

			segment := strings.Replace(parts[1], "Segment: ", "", 1)
			segment = strings.TrimSpace(strings.ReplaceAll(segment, `"`, ""))
			if utf8.RuneCountInString(segment) <= minSegmentRunes {
				continue
			}

			category := parseCategory(parts[2])
			source := strings.TrimSpace(strings.Replace(parts[3], "Source: ", "", 1))

			matches = append(matches, models.PlagiarismMatch{
				Index:       index,
				Source:      resolveSourceTitle(source, grounding),
				URL:         source,
				MatchedText: segment,
				Category:    category,
			})

			segmentChars := utf8.RuneCountInString(segment)
			switch category {
			case models.CategoryInternetSource:
				internetChars += segmentChars
			case models.CategoryPublication:
				publicationChars += segmentChars
			case models.CategoryStudentPaper:
				studentChars += segmentChars
			}
		}
	}

	if totalChars < 1 {
		totalChars = 1
	}

	sim := Similarity{
		Internet:    percentage(internetChars, totalChars),
		Publication: percentage(publicationChars, totalChars),
		Student:     percentage(studentChars, totalChars),
	}
	sim.Overall = sim.Internet + sim.Publication + sim.Student
	if sim.Overall > 100 {
		sim.Overall = 100
	}

	// Per-match similarity is derived after extraction; an accepted match
	// never reads 0% no matter how small it is relative to the document.
	for i := range matches {
		pct := percentage(utf8.RuneCountInString(matches[i].MatchedText), totalChars)
		if pct < 1 {
			pct = 1
		}
		matches[i].Similarity = pct
	}

	return matches, sim
}

func matchesSection(raw string) (string, bool) {
	start := strings.Index(raw, matchesStartMarker)
	if start < 0 {
		return "", false
	}
	rest := raw[start+len(matchesStartMarker):]
	end := strings.Index(rest, matchesEndMarker)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// parseCategory matches the category token case-insensitively by substring;
// anything unrecognized falls back to Internet Source.
func parseCategory(token string) models.MatchCategory {
	lowered := strings.ToLower(token)
	switch {
	case strings.Contains(lowered, "publication"):
		return models.CategoryPublication
	case strings.Contains(lowered, "student"):
		return models.CategoryStudentPaper
	default:
		return models.CategoryInternetSource
	}
}

// resolveSourceTitle derives a display title for the source token: the host
// component for well-formed URLs, the raw token for opaque labels. A
// grounding citation with the exact same URL is authoritative and overrides
// the derived title.
func resolveSourceTitle(source string, grounding []models.GroundingSource) string {
	title := source
	if strings.HasPrefix(strings.ToLower(source), "http") {
		if parsed, err := url.Parse(source); err == nil && parsed.Hostname() != "" {
			title = parsed.Hostname()
		}
	}

	for _, g := range grounding {
		if g.URL == source && g.Title != "" {
			return g.Title
		}
	}

	return title
}

func percentage(chars, totalChars int) int {
	return int(math.Round(float64(chars) / float64(totalChars) * 100))
}
