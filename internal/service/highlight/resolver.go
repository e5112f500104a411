// Package highlight maps plagiarism matches back onto the submitted
// document, producing the ordered, non-overlapping segment stream the
// report viewer renders.
package highlight

import (
	"sort"
	"strings"

	"github.com/HarshXTrisha/vericheck-pro/internal/models"
)

// sourceColors is the highlight palette; a match's color is keyed by its
// 1-based index so the same source keeps its color across every occurrence.
var sourceColors = []string{
	"#E60000", // red
	"#A000A0", // purple
	"#0000FF", // blue
	"#008080", // teal
	"#00AA00", // green
	"#B8860B", // dark goldenrod
	"#8B4513", // saddle brown
	"#000080", // navy
	"#FF1493", // deep pink
	"#2F4F4F", // dark slate gray
}

// ColorFor returns the palette color for a match index.
func ColorFor(index int) string {
	i := (index - 1) % len(sourceColors)
	if i < 0 {
		i += len(sourceColors)
	}
	return sourceColors[i]
}

// Segment is one renderable run of the document. Plain runs carry only
// Text; decorated runs also carry the owning match's index and color.
type Segment struct {
	Text  string `json:"text"`
	Index int    `json:"index,omitempty"`
	Color string `json:"color,omitempty"`
}

type occurrence struct {
	start int
	end   int
	match *models.PlagiarismMatch
}

// Resolve finds every verbatim occurrence of each match's text in content
// and flattens them into an ordered segment sequence. Concatenating the
// segments' Text reproduces content exactly, and no two decorated segments
// overlap: occurrences are sorted by start offset (longest first on ties)
// and later overlapping ones are discarded. The function is pure; it may be
// recomputed on every render.
func Resolve(content string, matches []models.PlagiarismMatch) []Segment {
	occurrences := collectOccurrences(content, matches)

	sort.SliceStable(occurrences, func(i, j int) bool {
		if occurrences[i].start != occurrences[j].start {
			return occurrences[i].start < occurrences[j].start
		}
		return occurrences[i].end-occurrences[i].start > occurrences[j].end-occurrences[j].start
	})

	segments := []Segment{}
	lastIndex := 0

	for _, occ := range occurrences {
		if occ.start < lastIndex {
			continue // overlaps an already-emitted, higher-priority occurrence
		}

		if occ.start > lastIndex {
			segments = append(segments, Segment{Text: content[lastIndex:occ.start]})
		}

		segments = append(segments, Segment{
			Text:  content[occ.start:occ.end],
			Index: occ.match.Index,
			Color: ColorFor(occ.match.Index),
		})

		lastIndex = occ.end
	}

	if lastIndex < len(content) {
		segments = append(segments, Segment{Text: content[lastIndex:]})
	}

	return segments
}

// collectOccurrences scans content left to right for each match's text,
// advancing past every hit so a match's own self-overlapping repeats are
// not double-counted within its scan pass.
func collectOccurrences(content string, matches []models.PlagiarismMatch) []occurrence {
	var occurrences []occurrence

	for i := range matches {
		m := &matches[i]
		if m.MatchedText == "" {
			continue
		}

		pos := 0
		for {
			found := strings.Index(content[pos:], m.MatchedText)
			if found < 0 {
				break
			}
			start := pos + found
			end := start + len(m.MatchedText)
			occurrences = append(occurrences, occurrence{start: start, end: end, match: m})
			pos = end
		}
	}

	return occurrences
}
