package scrapers

import (
	"context"
	"strings"
)

// Advisory levels issued by the DFA, 1 = lowest risk.
const (
	LevelNormalPrecautions = 1
	LevelHighCaution       = 2
	LevelAvoidTravel       = 3
	LevelDoNotTravel       = 4
)

// levelMarker pairs a marker phrase with its advisory level.
type levelMarker struct {
	phrase string
	level  int
}

// levelMarkers is scanned in order, highest-risk phrase first, so input
// containing several markers resolves to the highest-priority match.
// Extending coverage of markup variants is a data change here, not logic.
var levelMarkers = []levelMarker{
	{"do not travel", LevelDoNotTravel},
	{"avoid non essential travel", LevelAvoidTravel},
	{"avoid unnecessary travel", LevelAvoidTravel},
	{"high degree of caution", LevelHighCaution},
	{"high degree caution", LevelHighCaution},
	{"normal precautions", LevelNormalPrecautions},
}

// ClassifyAdvisoryText maps advisory markup text to a level 1-4, or 0 when
// no marker matches. Hyphenated class tokens like "do-not-travel" and plain
// headings like "Do Not Travel" are treated alike.
func ClassifyAdvisoryText(s string) int {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", " ")
	for _, m := range levelMarkers {
		if strings.Contains(s, m.phrase) {
			return m.level
		}
	}
	return 0
}

// AdvisoryLevel extracts the advisory level from a country page. It returns
// 0 when the page has no recognizable advisory markup. Network and parse
// errors are returned so the caller can log them and move on; they also
// leave the level absent.
func (c *Client) AdvisoryLevel(ctx context.Context, pageURL string) (int, error) {
	doc, err := c.fetchDocument(ctx, pageURL)
	if err != nil {
		return 0, err
	}

	// Primary signal: the advisory accordion carries its level in the class
	// attribute, e.g. <div class="accordion_travel do-not-travel accordion is-open">.
	container := doc.Find("div.accordion_travel").First()
	if container.Length() > 0 {
		if level := ClassifyAdvisoryText(container.AttrOr("class", "")); level > 0 {
			return level, nil
		}
	}

	// Secondary signal: the accordion title spells the level out in text.
	heading := doc.Find("h3.accordion__title").First()
	if heading.Length() > 0 {
		if level := ClassifyAdvisoryText(heading.Text()); level > 0 {
			return level, nil
		}
	}

	return 0, nil
}
