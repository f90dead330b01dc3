package ecs

import (
	"testing"

	"github.com/cubeforge/dicetray"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	tray := dicetray.NewTray()
	d := tray.AddDie(dicetray.D6, dicetray.Rect{Width: 100, Height: 100}, dicetray.Style{})

	var received []dicetray.DieEvent
	DieEventType.Subscribe(world, func(w donburi.World, e dicetray.DieEvent) {
		received = append(received, e)
	})

	store.EmitEvent(dicetray.DieEvent{
		Type: dicetray.EventStateChange,
		Die:  d,
		From: dicetray.StateIdle,
		To:   dicetray.StateHovered,
	})
	store.EmitEvent(dicetray.DieEvent{
		Type: dicetray.EventHoverStart,
		Die:  d,
		From: dicetray.StateIdle,
		To:   dicetray.StateHovered,
	})

	// Events are queued — process them.
	DieEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != dicetray.EventStateChange || e0.Die != d {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.From != dicetray.StateIdle || e0.To != dicetray.StateHovered {
		t.Errorf("event 0 transition: %v -> %v", e0.From, e0.To)
	}

	e1 := received[1]
	if e1.Type != dicetray.EventHoverStart {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store dicetray.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	DieEventType.Subscribe(world, func(w donburi.World, e dicetray.DieEvent) {
		count1++
	})
	DieEventType.Subscribe(world, func(w donburi.World, e dicetray.DieEvent) {
		count2++
	})

	store.EmitEvent(dicetray.DieEvent{Type: dicetray.EventDragStart})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiStore_ReceivesTrayTransitions(t *testing.T) {
	world := donburi.NewWorld()
	tray := dicetray.NewTray()
	tray.SetEntityStore(NewDonburiStore(world))
	d := tray.AddDie(dicetray.D20, dicetray.Rect{Width: 100, Height: 100}, dicetray.Style{})

	var received []dicetray.DieEvent
	DieEventType.Subscribe(world, func(w donburi.World, e dicetray.DieEvent) {
		received = append(received, e)
	})

	d.Hovered = true
	tray.Step(1.0 / 16)
	DieEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events from the hover transition, got %d", len(received))
	}
	if received[0].Type != dicetray.EventStateChange || received[1].Type != dicetray.EventHoverStart {
		t.Errorf("events = %v, %v; want state change then hover start",
			received[0].Type, received[1].Type)
	}
	if received[0].Die != d {
		t.Error("event carries the wrong die")
	}
}
