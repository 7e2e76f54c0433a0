package espn

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dkush22/nfl-playoff-draft/model"
)

const espnURL = "https://site.api.espn.com"

type Client interface {
	// GetBoxScore fetches the box score for one game and returns one
	// accumulated stat line per athlete that appears in it.
	GetBoxScore(gameID string) ([]model.GameStatLine, error)
	// LoadPlayers fetches every NFL team's roster and returns the players
	// at fantasy-relevant positions.
	LoadPlayers() ([]model.Player, error)
	// GetScoreboard returns the game IDs on the current scoreboard.
	GetScoreboard() ([]string, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	c := &client{
		url: espnURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: http.DefaultClient,
	}
}

func (c *client) GetBoxScore(gameID string) ([]model.GameStatLine, error) {
	var parsed summaryResponse
	path := fmt.Sprintf("/apis/site/v2/sports/football/nfl/summary?event=%s", gameID)
	if err := c.espnRequest(&parsed, path); err != nil {
		return nil, err
	}

	return extractStatLines(gameID, parsed.Boxscore.Players), nil
}

func (c *client) LoadPlayers() ([]model.Player, error) {
	var teams teamsResponse
	if err := c.espnRequest(&teams, "/apis/site/v2/sports/football/nfl/teams"); err != nil {
		return nil, err
	}

	result := make([]model.Player, 0, 512)
	for _, league := range teams.Sports {
		for _, l := range league.Leagues {
			for _, t := range l.Teams {
				players, err := c.loadRoster(t.Team.Abbreviation)
				if err != nil {
					return nil, fmt.Errorf("error loading roster for %s: %w", t.Team.Abbreviation, err)
				}
				result = append(result, players...)
			}
		}
	}

	return result, nil
}

func (c *client) GetScoreboard() ([]string, error) {
	var parsed scoreboardResponse
	if err := c.espnRequest(&parsed, "/apis/site/v2/sports/football/nfl/scoreboard"); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(parsed.Events))
	for _, e := range parsed.Events {
		if e.ID != "" {
			ids = append(ids, e.ID)
		}
	}
	return ids, nil
}

func (c *client) loadRoster(teamAbbr string) ([]model.Player, error) {
	var parsed rosterResponse
	path := fmt.Sprintf("/apis/site/v2/sports/football/nfl/teams/%s/roster", teamAbbr)
	if err := c.espnRequest(&parsed, path); err != nil {
		return nil, err
	}

	team := model.ParseTeam(teamAbbr)
	result := make([]model.Player, 0, 16)
	for _, group := range parsed.Athletes {
		for _, a := range group.Items {
			pos := model.ParsePosition(a.Position.Abbreviation)
			if pos == model.POS_UNKNOWN {
				continue
			}
			result = append(result, *a.toPlayer(pos, team))
		}
	}

	return result, nil
}

func (c *client) espnRequest(res any, path string) error {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s", c.url, path), nil)
	if err != nil {
		return fmt.Errorf("error creating espn http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending espn http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code from espn: %d", resp.StatusCode)
	}

	err = json.NewDecoder(resp.Body).Decode(res)
	if err != nil {
		return fmt.Errorf("error parsing response from espn: %w", err)
	}

	return nil
}
