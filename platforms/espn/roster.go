package espn

import (
	"strconv"

	"github.com/dkush22/nfl-playoff-draft/model"
)

type teamsResponse struct {
	Sports []struct {
		Leagues []struct {
			Teams []struct {
				Team struct {
					Abbreviation string `json:"abbreviation"`
				} `json:"team"`
			} `json:"teams"`
		} `json:"leagues"`
	} `json:"sports"`
}

type scoreboardResponse struct {
	Events []struct {
		ID string `json:"id"`
	} `json:"events"`
}

type rosterResponse struct {
	Athletes []athleteGroup `json:"athletes"`
}

type athleteGroup struct {
	Position string          `json:"position"`
	Items    []rosterAthlete `json:"items"`
}

type rosterAthlete struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Jersey    string `json:"jersey"`
	Active    bool   `json:"active"`
	Position  struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"position"`
}

func (a *rosterAthlete) toPlayer(pos model.Position, team *model.NFLTeam) *model.Player {
	return &model.Player{
		ID:        a.ID,
		AthleteID: a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Position:  pos,
		Team:      team,
		Jersey:    parseJersey(a.Jersey),
		Active:    a.Active,
	}
}

func parseJersey(j string) int {
	if j == "" {
		return 0
	}
	v, err := strconv.Atoi(j)
	if err != nil {
		return 0
	}
	return v
}
