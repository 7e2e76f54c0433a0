package mockespn

import (
	"github.com/stretchr/testify/mock"

	"github.com/dkush22/nfl-playoff-draft/model"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetBoxScore(gameID string) ([]model.GameStatLine, error) {
	args := c.Called(gameID)

	var r []model.GameStatLine
	if args.Get(0) != nil {
		r = args.Get(0).([]model.GameStatLine)
	}
	return r, args.Error(1)
}

func (c *Client) GetScoreboard() ([]string, error) {
	args := c.Called()

	var r []string
	if args.Get(0) != nil {
		r = args.Get(0).([]string)
	}
	return r, args.Error(1)
}

func (c *Client) LoadPlayers() ([]model.Player, error) {
	args := c.Called()

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}
