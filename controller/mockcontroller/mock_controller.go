package mockcontroller

import (
	"context"

	"github.com/esleague/ESRace/controller"
	"github.com/esleague/ESRace/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) ListEvents() []model.Event {
	args := c.Called()

	var events []model.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]model.Event)
	}

	return events
}

func (c *C) LoadEvent(ctx context.Context, eventID string) error {
	args := c.Called(ctx, eventID)
	return args.Error(0)
}

func (c *C) ApplySort(criterion model.SortCriterion) error {
	args := c.Called(criterion)
	return args.Error(0)
}

func (c *C) Snapshot() (*controller.View, bool) {
	args := c.Called()

	var view *controller.View
	if args.Get(0) != nil {
		view = args.Get(0).(*controller.View)
	}

	return view, args.Bool(1)
}

func (c *C) AddUpdateListener(l func(controller.RunnerUpdate)) {
	c.Called(l)
}
