package espn

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dkush22/nfl-playoff-draft/model"
)

// The summary endpoint nests stats as team blocks -> named categories ->
// column labels + per-athlete value rows aligned to those labels.
type summaryResponse struct {
	Boxscore struct {
		Players []teamBlock `json:"players"`
	} `json:"boxscore"`
}

type teamBlock struct {
	Statistics []statCategory `json:"statistics"`
}

type statCategory struct {
	Name     string        `json:"name"`
	Labels   []string      `json:"labels"`
	Athletes []athleteLine `json:"athletes"`
}

type athleteLine struct {
	Athlete struct {
		ID string `json:"id"`
	} `json:"athlete"`
	Stats []string `json:"stats"`
}

// extractStatLines accumulates one stat line per athlete across every
// category in the box score. Categories and labels outside the known
// vocabulary are ignored so new columns from the provider never break the
// run. An athlete showing up in several categories (a rushing QB, a WR
// returning punts) gets all contributions summed into one line.
func extractStatLines(gameID string, teams []teamBlock) []model.GameStatLine {
	lines := make(map[string]*model.GameStatLine)
	order := make([]string, 0, 64)

	for _, team := range teams {
		for _, cat := range team.Statistics {
			for _, row := range cat.Athletes {
				if row.Athlete.ID == "" {
					continue
				}
				line, ok := lines[row.Athlete.ID]
				if !ok {
					line = &model.GameStatLine{GameID: gameID, AthleteID: row.Athlete.ID}
					lines[row.Athlete.ID] = line
					order = append(order, row.Athlete.ID)
				}
				applyCategory(line, cat.Name, cat.Labels, row.Stats)
			}
		}
	}

	result := make([]model.GameStatLine, 0, len(order))
	for _, id := range order {
		result = append(result, *lines[id])
	}
	return result
}

func applyCategory(line *model.GameStatLine, category string, labels, values []string) {
	for i, label := range labels {
		if i >= len(values) {
			break
		}
		v := parseStatValue(values[i])
		if v == 0 {
			continue
		}

		switch field(category, label) {
		case "passing.yds":
			line.PassingYards += v
		case "passing.td":
			line.PassingTDs += v
		case "passing.int":
			line.Interceptions += v
		case "rushing.yds":
			line.RushingYards += v
		case "rushing.td":
			line.RushingTDs += v
		case "receiving.yds":
			line.ReceivingYards += v
		case "receiving.td":
			line.ReceivingTDs += v
		case "receiving.rec":
			line.Receptions += v
		case "fumbles.lost":
			line.FumblesLost += v
		case "kickreturns.td":
			line.KickReturnTDs += v
		case "puntreturns.td":
			line.PuntReturnTDs += v
		}
	}
}

// field maps a (category, column label) pair onto a canonical stat name.
// Matching is case-insensitive; anything unrecognized maps to "".
func field(category, label string) string {
	cat := strings.ToLower(strings.TrimSpace(category))
	lbl := strings.ToLower(strings.TrimSpace(label))

	switch cat {
	case "passing", "rushing", "receiving":
		switch lbl {
		case "yds":
			return cat + ".yds"
		case "td":
			return cat + ".td"
		case "int":
			if cat == "passing" {
				return "passing.int"
			}
		case "rec":
			if cat == "receiving" {
				return "receiving.rec"
			}
		}
	case "fumbles":
		if lbl == "lost" {
			return "fumbles.lost"
		}
	case "kickreturns":
		if lbl == "td" {
			return "kickreturns.td"
		}
	case "puntreturns":
		if lbl == "td" {
			return "puntreturns.td"
		}
	}
	return ""
}

var nonNumeric = regexp.MustCompile(`[^0-9-]`)

// parseStatValue tolerates the provider's formatting artifacts, like
// "1,024" or a stray "--" for a missing value. Anything that still doesn't
// parse counts as zero; a single bad cell must never abort the extraction.
func parseStatValue(s string) int {
	cleaned := nonNumeric.ReplaceAllString(s, "")
	if cleaned == "" || cleaned == "-" {
		return 0
	}
	v, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return v
}
