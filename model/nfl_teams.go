package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

type NFLTeam struct {
	abbr   string
	loc    string
	mascot string
}

func (t *NFLTeam) String() string {
	return t.abbr
}

func (t *NFLTeam) Friendly() string {
	if t.loc == "" {
		return t.mascot
	}
	return fmt.Sprintf("%s %s", t.loc, t.mascot)
}

// Teams serialize as their abbreviation.
func (t *NFLTeam) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.abbr)
}

func (t *NFLTeam) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = *ParseTeam(s)
	return nil
}

func (t *NFLTeam) Equals(o *NFLTeam) bool {
	if o == nil {
		return false
	}
	return t.abbr == o.abbr
}

var nflTeams = []*NFLTeam{
	{abbr: "ARI", loc: "Arizona", mascot: "Cardinals"},
	{abbr: "ATL", loc: "Atlanta", mascot: "Falcons"},
	{abbr: "BAL", loc: "Baltimore", mascot: "Ravens"},
	{abbr: "BUF", loc: "Buffalo", mascot: "Bills"},
	{abbr: "CAR", loc: "Carolina", mascot: "Panthers"},
	{abbr: "CHI", loc: "Chicago", mascot: "Bears"},
	{abbr: "CIN", loc: "Cincinnati", mascot: "Bengals"},
	{abbr: "CLE", loc: "Cleveland", mascot: "Browns"},
	{abbr: "DAL", loc: "Dallas", mascot: "Cowboys"},
	{abbr: "DEN", loc: "Denver", mascot: "Broncos"},
	{abbr: "DET", loc: "Detroit", mascot: "Lions"},
	{abbr: "GB", loc: "Green Bay", mascot: "Packers"},
	{abbr: "HOU", loc: "Houston", mascot: "Texans"},
	{abbr: "IND", loc: "Indianapolis", mascot: "Colts"},
	{abbr: "JAX", loc: "Jacksonville", mascot: "Jaguars"},
	{abbr: "KC", loc: "Kansas City", mascot: "Chiefs"},
	{abbr: "LAC", loc: "Los Angeles", mascot: "Chargers"},
	{abbr: "LAR", loc: "Los Angeles", mascot: "Rams"},
	{abbr: "LV", loc: "Las Vegas", mascot: "Raiders"},
	{abbr: "MIA", loc: "Miami", mascot: "Dolphins"},
	{abbr: "MIN", loc: "Minnesota", mascot: "Vikings"},
	{abbr: "NE", loc: "New England", mascot: "Patriots"},
	{abbr: "NO", loc: "New Orleans", mascot: "Saints"},
	{abbr: "NYG", loc: "New York", mascot: "Giants"},
	{abbr: "NYJ", loc: "New York", mascot: "Jets"},
	{abbr: "PHI", loc: "Philadelphia", mascot: "Eagles"},
	{abbr: "PIT", loc: "Pittsburgh", mascot: "Steelers"},
	{abbr: "SEA", loc: "Seattle", mascot: "Seahawks"},
	{abbr: "SF", loc: "San Francisco", mascot: "49ers"},
	{abbr: "TB", loc: "Tampa Bay", mascot: "Buccaneers"},
	{abbr: "TEN", loc: "Tennessee", mascot: "Titans"},
	{abbr: "WAS", loc: "Washington", mascot: "Commanders"},
}

// TEAM_FA is used for free agents and any team string that doesn't parse.
var TEAM_FA = &NFLTeam{abbr: "FA", mascot: "Free Agent"}

var teamsByKey = buildTeamIndex()

func buildTeamIndex() map[string]*NFLTeam {
	index := make(map[string]*NFLTeam, len(nflTeams)*3)
	for _, t := range nflTeams {
		index[strings.ToUpper(t.abbr)] = t
		index[strings.ToUpper(t.mascot)] = t
		index[strings.ToUpper(t.Friendly())] = t
	}
	// Alternate abbreviations that show up in provider data.
	index["SFO"] = index["SF"]
	index["GNB"] = index["GB"]
	index["KAN"] = index["KC"]
	index["NWE"] = index["NE"]
	index["NOR"] = index["NO"]
	index["TAM"] = index["TB"]
	index["LVR"] = index["LV"]
	index["JAC"] = index["JAX"]
	index["WSH"] = index["WAS"]
	return index
}

// ParseTeam maps a team abbreviation or name to the canonical team value.
// Anything unrecognized, including the empty string, is a free agent.
func ParseTeam(s string) *NFLTeam {
	if t, ok := teamsByKey[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return t
	}
	return TEAM_FA
}
