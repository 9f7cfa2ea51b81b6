package pickup_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/pickup"
	mocks "github.com/SergeyBogomolovv/pickup-point-service/internal/pickup/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deps struct {
	host      *mocks.MockHost
	submitter *mocks.MockSubmitter
	analytics *mocks.MockAnalytics
	scroller  *mocks.MockScroller
	scheduler *manualScheduler
	keyboard  *pickup.Keyboard
}

func newController(t *testing.T, cart entities.Cart, selected *entities.PickupOption, initial entities.SidebarState) (*pickup.Controller, deps) {
	t.Helper()

	d := deps{
		host:      mocks.NewMockHost(t),
		submitter: mocks.NewMockSubmitter(t),
		analytics: mocks.NewMockAnalytics(t),
		scroller:  mocks.NewMockScroller(t),
		scheduler: &manualScheduler{},
		keyboard:  pickup.NewKeyboard(),
	}
	d.host.EXPECT().SetActiveSidebarState(mock.Anything).Maybe()
	d.host.EXPECT().SetSelectedPickupPoint(mock.Anything).Maybe()

	c := pickup.NewController(pickup.Options{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Host:      d.host,
		Submitter: d.submitter,
		Analytics: d.analytics,
		Scroller:  d.scroller,
		Scheduler: d.scheduler,
		Keyboard:  d.keyboard,
	}, cart, selected, initial)

	return c, d
}

func TestController_MountWithoutSelectionForcesList(t *testing.T) {
	c, d := newController(t, testCart(), nil, entities.SidebarDetails)

	c.Mount()

	d.host.AssertCalled(t, "SetActiveSidebarState", entities.SidebarList)
	assert.Equal(t, entities.SidebarList, c.View().State)
	assert.True(t, d.keyboard.Attached())
}

func TestController_MountWithSelectionKeepsState(t *testing.T) {
	sel := option("Retirada (P1)", "P1", true)
	c, d := newController(t, testCart(), &sel, entities.SidebarDetails)

	c.Mount()

	d.host.AssertNotCalled(t, "SetActiveSidebarState", mock.Anything)
	v := c.View()
	assert.Equal(t, entities.SidebarDetails, v.State)
	assert.Equal(t, []string{"A"}, itemIDs(v.Available))
	assert.Equal(t, []string{"B", "C"}, itemIDs(v.Unavailable))
}

func TestController_KeyboardNavigation(t *testing.T) {
	cart := testCart()
	sel := cart.BestPickupOptions[1]
	c, d := newController(t, cart, &sel, entities.SidebarDetails)
	c.Mount()

	handled, err := d.keyboard.Dispatch(pickup.KeyArrowRight)
	require.NoError(t, err)
	assert.True(t, handled)
	v := c.View()
	require.NotNil(t, v.Selected)
	assert.Equal(t, "Retirada (P3)", v.Selected.ID)
	assert.True(t, v.Position.IsLast)
	assert.Empty(t, v.Available, "P3 serves nothing")

	d.keyboard.Dispatch(pickup.KeyArrowRight)
	assert.Equal(t, "Retirada (P3)", c.View().Selected.ID, "next from last is a no-op")

	d.keyboard.Dispatch("KeyA")
	assert.Equal(t, "Retirada (P3)", c.View().Selected.ID)

	d.keyboard.Dispatch(pickup.KeyArrowLeft)
	d.keyboard.Dispatch(pickup.KeyArrowLeft)
	v = c.View()
	assert.Equal(t, "Retirada (P1)", v.Selected.ID)
	assert.True(t, v.Position.IsFirst)
	assert.Equal(t, []string{"A"}, itemIDs(v.Available))

	moved, err := c.Previous()
	require.NoError(t, err)
	assert.False(t, moved)
	d.host.AssertCalled(t, "SetSelectedPickupPoint", &cart.BestPickupOptions[2])
}

func TestController_NavigationWithoutMatch(t *testing.T) {
	ghost := option("ghost", "P404", true)
	c, _ := newController(t, testCart(), &ghost, entities.SidebarDetails)

	moved, err := c.Next()
	require.NoError(t, err)
	assert.False(t, moved)
	moved, err = c.Previous()
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, "ghost", c.View().Selected.ID)
}

func TestController_RemountReplacesListener(t *testing.T) {
	cart := testCart()
	keyboard := pickup.NewKeyboard()

	host := mocks.NewMockHost(t)
	host.EXPECT().SetActiveSidebarState(mock.Anything).Maybe()
	host.EXPECT().SetSelectedPickupPoint(mock.Anything).Maybe()
	opts := pickup.Options{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Host:      host,
		Keyboard:  keyboard,
		Scheduler: &manualScheduler{},
	}

	sel1 := cart.BestPickupOptions[0]
	first := pickup.NewController(opts, cart, &sel1, entities.SidebarDetails)
	sel2 := cart.BestPickupOptions[0]
	second := pickup.NewController(opts, cart, &sel2, entities.SidebarDetails)

	first.Mount()
	first.Mount()
	keyboard.Dispatch(pickup.KeyArrowRight)
	assert.Equal(t, "Retirada (P2)", first.View().Selected.ID, "remount must not stack listeners")

	second.Mount()
	keyboard.Dispatch(pickup.KeyArrowRight)
	assert.Equal(t, "Retirada (P2)", first.View().Selected.ID)
	assert.Equal(t, "Retirada (P2)", second.View().Selected.ID)

	first.Teardown()
	assert.True(t, keyboard.Attached(), "stale release must not detach the current owner")

	second.Teardown()
	assert.False(t, keyboard.Attached())
}

func TestController_SelectionChangeIsEqualityGated(t *testing.T) {
	cart := testCart()
	c, _ := newController(t, cart, nil, entities.SidebarList)
	c.Mount()

	require.NoError(t, c.SelectByID("Retirada (P2)"))
	after := c.Recomputations()

	require.NoError(t, c.SelectByID("Retirada (P2)"))
	assert.Equal(t, after, c.Recomputations(), "same selection must not recompute")

	require.NoError(t, c.Select(cart.BestPickupOptions[0]))
	assert.Equal(t, after+1, c.Recomputations())

	v := c.View()
	assert.Equal(t, entities.SidebarDetails, v.State)
	require.NotNil(t, v.PickupPoint)
	assert.Equal(t, "P1", v.PickupPoint.ID)
	assert.Len(t, v.BusinessHours, 1)
	assert.Equal(t, "ring the bell", v.AdditionalInfo)
	assert.True(t, v.Confirmable)
	assert.Equal(t, "confirm-pickup-Retirada-P1", v.ConfirmButtonID)
	assert.True(t, v.IsSelectedSla)
}

func TestController_SelectUnknownOption(t *testing.T) {
	c, _ := newController(t, testCart(), nil, entities.SidebarList)

	err := c.SelectByID("missing")
	assert.ErrorIs(t, err, entities.ErrPickupOptionNotFound)
	assert.Equal(t, entities.SidebarList, c.View().State)
}

func TestController_UpdateCartAlwaysRecomputes(t *testing.T) {
	cart := testCart()
	sel := cart.BestPickupOptions[0]
	c, _ := newController(t, cart, &sel, entities.SidebarDetails)
	before := c.Recomputations()

	updated := testCart()
	updated.LogisticsInfo[1].Slas = append(updated.LogisticsInfo[1].Slas, pickupSla("Retirada (P1)", "P1", "1"))
	c.UpdateCart(updated)

	assert.Equal(t, before+1, c.Recomputations())
	assert.Equal(t, []string{"A", "B"}, itemIDs(c.View().Available))
}

func TestController_UnknownDetailsAreAbsent(t *testing.T) {
	cart := testCart()
	sel := cart.BestPickupOptions[2]
	c, _ := newController(t, cart, &sel, entities.SidebarDetails)

	v := c.View()
	assert.Nil(t, v.PickupPoint)
	assert.Nil(t, v.BusinessHours)
	assert.Empty(t, v.AdditionalInfo)
	assert.False(t, v.Confirmable)

	sel = cart.BestPickupOptions[1]
	c, _ = newController(t, cart, &sel, entities.SidebarDetails)
	v = c.View()
	require.NotNil(t, v.PickupPoint)
	assert.Nil(t, v.BusinessHours, "empty hours are hidden")
}

func TestController_Back(t *testing.T) {
	cart := testCart()
	sel := cart.BestPickupOptions[0]
	c, d := newController(t, cart, &sel, entities.SidebarDetails)
	c.Mount()

	require.NoError(t, c.Back())

	v := c.View()
	assert.Equal(t, entities.SidebarList, v.State)
	assert.Nil(t, v.Selected)
	assert.False(t, v.Confirmable)
	assert.Empty(t, v.Available)
	d.host.AssertCalled(t, "SetSelectedPickupPoint", (*entities.PickupOption)(nil))

	timer := d.scheduler.last()
	require.NotNil(t, timer)
	assert.Equal(t, pickup.DefaultScrollDelay, timer.delay)

	d.scroller.EXPECT().ScrollIntoView("Retirada-P1").Return(true).Once()
	timer.Fire()

	assert.ErrorIs(t, c.Back(), entities.ErrInvalidTransition)
}

func TestController_BackScrollTargetMissing(t *testing.T) {
	cart := testCart()
	sel := cart.BestPickupOptions[1]
	c, d := newController(t, cart, &sel, entities.SidebarDetails)

	require.NoError(t, c.Back())

	d.scroller.EXPECT().ScrollIntoView("Retirada-P2").Return(false).Once()
	assert.NotPanics(t, d.scheduler.last().Fire)
}

func TestController_TeardownCancelsScroll(t *testing.T) {
	cart := testCart()
	sel := cart.BestPickupOptions[0]
	c, d := newController(t, cart, &sel, entities.SidebarDetails)
	c.Mount()

	require.NoError(t, c.Back())
	timer := d.scheduler.last()

	c.Teardown()
	c.Teardown()

	assert.True(t, timer.stopped)
	timer.fn()
	d.scroller.AssertNotCalled(t, "ScrollIntoView", mock.Anything)
	assert.False(t, d.keyboard.Attached())
	assert.True(t, c.View().Closed)
}

func TestController_Confirm(t *testing.T) {
	cart := testCart()
	sel := cart.BestPickupOptions[0]
	c, d := newController(t, cart, &sel, entities.SidebarDetails)
	c.Mount()

	d.submitter.EXPECT().
		UpdateShippingData(mock.Anything, cart.ResidentialAddress, cart.LogisticsInfo, sel).
		Return(nil).Once()
	d.analytics.EXPECT().EmitConfirmationEvent(mock.Anything, sel).Once()
	d.host.EXPECT().CloseModal().Once()

	require.NoError(t, c.Confirm(context.Background()))

	assert.True(t, c.View().Closed)
	assert.False(t, d.keyboard.Attached())
}

func TestController_ConfirmNotConfirmable(t *testing.T) {
	cart := testCart()

	sel := cart.BestPickupOptions[2]
	c, _ := newController(t, cart, &sel, entities.SidebarDetails)
	assert.ErrorIs(t, c.Confirm(context.Background()), entities.ErrNotConfirmable)

	c, _ = newController(t, cart, nil, entities.SidebarList)
	assert.ErrorIs(t, c.Confirm(context.Background()), entities.ErrNotConfirmable)
}

func TestController_ConfirmFailureStaysInDetails(t *testing.T) {
	cart := testCart()
	sel := cart.BestPickupOptions[1]
	c, d := newController(t, cart, &sel, entities.SidebarDetails)
	c.Mount()

	submitErr := errors.New("orderForm unavailable")
	d.submitter.EXPECT().
		UpdateShippingData(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(submitErr).Once()

	err := c.Confirm(context.Background())
	assert.ErrorIs(t, err, submitErr)

	v := c.View()
	assert.Equal(t, entities.SidebarDetails, v.State)
	assert.False(t, v.Closed)
	d.analytics.AssertNotCalled(t, "EmitConfirmationEvent", mock.Anything, mock.Anything)
	d.host.AssertNotCalled(t, "CloseModal")
}

func TestController_ConfirmIsExclusive(t *testing.T) {
	cart := testCart()
	sel := cart.BestPickupOptions[0]
	c, d := newController(t, cart, &sel, entities.SidebarDetails)
	c.Mount()

	started := make(chan struct{})
	release := make(chan struct{})
	d.submitter.EXPECT().
		UpdateShippingData(mock.Anything, cart.ResidentialAddress, cart.LogisticsInfo, sel).
		Run(func(context.Context, entities.Address, []entities.LogisticsInfo, entities.PickupOption) {
			close(started)
			<-release
		}).
		Return(nil).Once()
	d.analytics.EXPECT().EmitConfirmationEvent(mock.Anything, sel).Once()
	d.host.EXPECT().CloseModal().Once()

	done := make(chan error, 1)
	go func() {
		done <- c.Confirm(context.Background())
	}()
	<-started

	assert.ErrorIs(t, c.Confirm(context.Background()), entities.ErrInvalidTransition, "second confirm")
	assert.ErrorIs(t, c.Back(), entities.ErrInvalidTransition)
	assert.ErrorIs(t, c.SelectByID("Retirada (P2)"), entities.ErrInvalidTransition)
	_, err := c.Next()
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	_, err = c.Previous()
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	_, err = c.BeginSearch()
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	_, err = d.keyboard.Dispatch(pickup.KeyArrowRight)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)

	v := c.View()
	assert.Equal(t, entities.SidebarDetails, v.State)
	require.NotNil(t, v.Selected)
	assert.Equal(t, "Retirada (P1)", v.Selected.ID)
	assert.Empty(t, d.scheduler.timers)

	close(release)
	require.NoError(t, <-done)
	assert.True(t, c.View().Closed)
}

func TestController_ConfirmRetryAfterFailure(t *testing.T) {
	cart := testCart()
	sel := cart.BestPickupOptions[0]
	c, d := newController(t, cart, &sel, entities.SidebarDetails)
	c.Mount()

	submitErr := errors.New("orderForm unavailable")
	d.submitter.EXPECT().
		UpdateShippingData(mock.Anything, mock.Anything, mock.Anything, sel).
		Return(submitErr).Once()
	d.submitter.EXPECT().
		UpdateShippingData(mock.Anything, mock.Anything, mock.Anything, sel).
		Return(nil).Once()
	d.analytics.EXPECT().EmitConfirmationEvent(mock.Anything, sel).Once()
	d.host.EXPECT().CloseModal().Once()

	assert.ErrorIs(t, c.Confirm(context.Background()), submitErr)

	moved, err := c.Next()
	require.NoError(t, err, "events are accepted again after a failed confirm")
	assert.True(t, moved)
	moved, err = c.Previous()
	require.NoError(t, err)
	assert.True(t, moved)

	require.NoError(t, c.Confirm(context.Background()))
	assert.True(t, c.View().Closed)
}

func TestController_ConfirmRequiresDetails(t *testing.T) {
	cart := testCart()
	sel := cart.BestPickupOptions[0]
	c, d := newController(t, cart, &sel, entities.SidebarList)
	c.Mount()

	assert.ErrorIs(t, c.Confirm(context.Background()), entities.ErrInvalidTransition)
	d.submitter.AssertNotCalled(t, "UpdateShippingData", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, entities.SidebarList, c.View().State)
}

func TestController_NavigationOnlyInDetails(t *testing.T) {
	for _, state := range []entities.SidebarState{entities.SidebarList, entities.SidebarSearching, entities.SidebarErrorNotFound} {
		t.Run(state.String(), func(t *testing.T) {
			cart := testCart()
			sel := cart.BestPickupOptions[0]
			c, d := newController(t, cart, &sel, state)
			c.Mount()

			handled, err := d.keyboard.Dispatch(pickup.KeyArrowRight)
			assert.True(t, handled)
			assert.ErrorIs(t, err, entities.ErrInvalidTransition)

			_, err = c.Next()
			assert.ErrorIs(t, err, entities.ErrInvalidTransition)

			v := c.View()
			assert.Equal(t, state, v.State)
			assert.Equal(t, "Retirada (P1)", v.Selected.ID)
			d.host.AssertNotCalled(t, "SetSelectedPickupPoint", mock.Anything)
		})
	}
}

func TestController_SelectionGainsPickupPointID(t *testing.T) {
	cart := testCart()
	c, _ := newController(t, cart, nil, entities.SidebarList)

	require.NoError(t, c.Select(entities.PickupOption{ID: "Retirada (P1)"}))
	assert.Empty(t, c.View().Available)
	before := c.Recomputations()

	require.NoError(t, c.Select(entities.PickupOption{ID: "Retirada (P1)", PickupPointID: "P1"}))
	assert.Equal(t, before+1, c.Recomputations())
	assert.Equal(t, []string{"A"}, itemIDs(c.View().Available))
}

func TestController_Search(t *testing.T) {
	found := []entities.PickupPoint{
		{ID: "P7", Name: "Store P7", StoreInfo: &entities.StoreInfo{IsPickupStore: true}},
		{ID: "P1", Name: "Store P1 (renamed)"},
	}

	testCases := []struct {
		name      string
		points    []entities.PickupPoint
		err       error
		wantState entities.SidebarState
		wantIDs   []string
	}{
		{name: "results", points: found, wantState: entities.SidebarList, wantIDs: []string{"P7", "P1"}},
		{name: "not found", err: entities.ErrAddressNotFound, wantState: entities.SidebarErrorNotFound, wantIDs: []string{"Retirada (P1)", "Retirada (P2)", "Retirada (P3)"}},
		{name: "geolocation denied", err: entities.ErrLocationUnavailable, wantState: entities.SidebarErrorCouldNotGetLocation, wantIDs: []string{"Retirada (P1)", "Retirada (P2)", "Retirada (P3)"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cart := testCart()
			c, d := newController(t, cart, nil, entities.SidebarList)
			resolver := mocks.NewMockAddressResolver(t)
			query := entities.SearchQuery{PostalCode: "22250-040"}

			resolver.EXPECT().ResolveAddress(mock.Anything, query).
				Run(func(ctx context.Context, q entities.SearchQuery) {
					assert.Equal(t, entities.SidebarSearching, c.View().State)
				}).
				Return(tc.points, tc.err).Once()

			applied, err := c.Search(context.Background(), resolver, query)
			require.NoError(t, err)
			assert.True(t, applied)

			v := c.View()
			assert.Equal(t, tc.wantState, v.State)
			ids := make([]string, 0, len(v.Candidates))
			for _, o := range v.Candidates {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
			d.host.AssertCalled(t, "SetActiveSidebarState", entities.SidebarSearching)
			d.host.AssertCalled(t, "SetActiveSidebarState", tc.wantState)
			assert.Len(t, cart.BestPickupOptions, 3, "caller snapshot stays untouched")
		})
	}
}

func TestController_SearchResultsMergeIntoCatalog(t *testing.T) {
	c, _ := newController(t, testCart(), nil, entities.SidebarList)

	ticket, err := c.BeginSearch()
	require.NoError(t, err)
	require.True(t, c.CompleteSearch(ticket, []entities.PickupPoint{{ID: "P1", Name: "Store P1 (renamed)"}}, nil))

	require.NoError(t, c.SelectByID("P1"))
	v := c.View()
	require.NotNil(t, v.PickupPoint)
	assert.Equal(t, "Store P1 (renamed)", v.PickupPoint.Name)
	assert.Equal(t, []string{"A"}, itemIDs(v.Available))
}

func TestController_LateSearchAfterTeardown(t *testing.T) {
	c, d := newController(t, testCart(), nil, entities.SidebarList)

	ticket, err := c.BeginSearch()
	require.NoError(t, err)

	c.Teardown()

	assert.False(t, c.CompleteSearch(ticket, []entities.PickupPoint{{ID: "P9"}}, nil))
	v := c.View()
	assert.Equal(t, entities.SidebarSearching, v.State)
	assert.Len(t, v.Candidates, 3)
	d.host.AssertNotCalled(t, "SetActiveSidebarState", entities.SidebarList)
}

func TestController_Layout(t *testing.T) {
	cart := testCart()
	c, _ := newController(t, cart, nil, entities.SidebarList)

	v := c.View()
	assert.Equal(t, pickup.Layout{
		DetailsActive:  false,
		ShowSearchForm: true,
		ShowTabs:       true,
		SearchLabel:    "Rio de Janeiro > Botafogo",
		ShipsTo:        []string{"BRA", "ARG"},
	}, v.Layout)

	c.SetMapStatus(entities.ShowMap)
	require.NoError(t, c.SelectByID("Retirada (P2)"))
	v = c.View()
	assert.Equal(t, entities.ShowMap, v.MapStatus)
	assert.True(t, v.Layout.DetailsActive)
	assert.False(t, v.Layout.ShowSearchForm)
	assert.False(t, v.Layout.ShowTabs)
}
