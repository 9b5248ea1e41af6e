package mockvrace

import (
	"github.com/esleague/ESRace/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetUserRaceStats(userID string) (map[string]model.UserRaceStat, error) {
	args := c.Called(userID)

	var res map[string]model.UserRaceStat
	if args.Get(0) != nil {
		res = args.Get(0).(map[string]model.UserRaceStat)
	}

	return res, args.Error(1)
}

func (c *Client) GetUserActivities(userID, raceID string) ([]model.Activity, error) {
	args := c.Called(userID, raceID)

	var res []model.Activity
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Activity)
	}

	return res, args.Error(1)
}

func (c *Client) GetRaceInfo(code string) (*model.RaceInfo, error) {
	args := c.Called(code)

	var res *model.RaceInfo
	if args.Get(0) != nil {
		res = args.Get(0).(*model.RaceInfo)
	}

	return res, args.Error(1)
}

func (c *Client) GetUserAvatar(userID string) (string, error) {
	args := c.Called(userID)
	return args.String(0), args.Error(1)
}
