package host

import (
	"image"
	"reflect"
	"testing"
	"time"
)

func TestSchedulerRunsInRequestOrder(t *testing.T) {
	s := NewScheduler()
	var got []string
	s.Request(func(time.Duration) { got = append(got, "a") })
	s.Request(func(time.Duration) { got = append(got, "b") })
	s.Request(func(time.Duration) { got = append(got, "c") })

	if n := s.Run(16 * time.Millisecond); n != 3 {
		t.Errorf("Run() = %d, want 3", n)
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if n := s.Run(32 * time.Millisecond); n != 0 {
		t.Errorf("second Run() = %d, want 0 (callbacks are one-shot)", n)
	}
}

func TestSchedulerRequestDuringRunWaits(t *testing.T) {
	s := NewScheduler()
	var stamps []time.Duration
	var tick FrameFunc
	tick = func(ts time.Duration) {
		stamps = append(stamps, ts)
		s.Request(tick)
	}
	s.Request(tick)

	s.Run(1)
	s.Run(2)
	s.Run(3)
	if want := []time.Duration{1, 2, 3}; !reflect.DeepEqual(stamps, want) {
		t.Errorf("stamps = %v, want %v", stamps, want)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", s.Pending())
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := 0
	id := s.Request(func(time.Duration) { fired++ })
	s.Cancel(id)
	s.Cancel(id)
	s.Cancel(0)
	s.Cancel(999)
	s.Run(0)
	if fired != 0 {
		t.Errorf("cancelled callback fired %d times", fired)
	}
}

func TestSchedulerCancelWithinRun(t *testing.T) {
	s := NewScheduler()
	fired := false
	var second FrameID
	s.Request(func(time.Duration) { s.Cancel(second) })
	second = s.Request(func(time.Duration) { fired = true })

	if n := s.Run(0); n != 1 {
		t.Errorf("Run() = %d, want 1", n)
	}
	if fired {
		t.Error("callback cancelled earlier in the same run still fired")
	}
}

func TestEventsSubscriptions(t *testing.T) {
	e := NewEvents(Viewport{Width: 800, Height: 600, PixelRatio: 1})
	var keys []Key
	var sizes []Viewport

	down := e.OnKeyDown(func(k Key) { keys = append(keys, k) })
	resize := e.OnResize(func(v Viewport) { sizes = append(sizes, v) })
	up := e.OnKeyUp(func(Key) { t.Error("key up listener fired") })
	up.Cancel()

	if e.Listeners() != 2 {
		t.Fatalf("Listeners() = %d, want 2", e.Listeners())
	}

	e.EmitKeyDown(KeyArrowLeft)
	e.EmitKeyUp(KeyArrowLeft)
	v := Viewport{Width: 1024, Height: 768, PixelRatio: 2}
	e.EmitResize(v)

	if !reflect.DeepEqual(keys, []Key{KeyArrowLeft}) {
		t.Errorf("keys = %v", keys)
	}
	if len(sizes) != 1 || sizes[0] != v {
		t.Errorf("sizes = %v, want [%v]", sizes, v)
	}
	if e.Viewport() != v {
		t.Errorf("Viewport() = %v, want %v", e.Viewport(), v)
	}

	down.Cancel()
	down.Cancel()
	resize.Cancel()
	if e.Listeners() != 0 {
		t.Errorf("Listeners() = %d after cancel, want 0", e.Listeners())
	}
	Subscription{}.Cancel()
}

func TestEventsUnsubscribeWhileDelivering(t *testing.T) {
	e := NewEvents(Viewport{})
	calls := 0
	var sub Subscription
	sub = e.OnKeyDown(func(Key) {
		calls++
		sub.Cancel()
	})
	e.OnKeyDown(func(Key) { calls++ })

	e.EmitKeyDown(KeyArrowUp)
	e.EmitKeyDown(KeyArrowUp)
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestViewportPixels(t *testing.T) {
	tests := []struct {
		v      Viewport
		wW, wH int
	}{
		{Viewport{Width: 800, Height: 600, PixelRatio: 1}, 800, 600},
		{Viewport{Width: 800, Height: 600, PixelRatio: 2}, 1600, 1200},
		{Viewport{Width: 800, Height: 600}, 800, 600},
	}
	for _, tt := range tests {
		w, h := tt.v.Pixels()
		if w != tt.wW || h != tt.wH {
			t.Errorf("%+v.Pixels() = %dx%d, want %dx%d", tt.v, w, h, tt.wW, tt.wH)
		}
	}
}

func TestContainer(t *testing.T) {
	c := NewContainer(image.Rect(10, 20, 650, 380))
	if w, h := c.Size(); w != 640 || h != 360 {
		t.Errorf("Size() = %dx%d, want 640x360", w, h)
	}

	a, b := new(int), new(int)
	c.Append(a)
	c.Append(b)
	if !c.Remove(a) {
		t.Error("Remove(a) = false, want true")
	}
	if c.Remove(a) {
		t.Error("second Remove(a) = true, want false")
	}
	if got := c.Children(); len(got) != 1 || got[0] != b {
		t.Errorf("Children() = %v, want [b]", got)
	}

	c.SetBounds(image.Rect(0, 0, 100, 50))
	if w, h := c.Size(); w != 100 || h != 50 {
		t.Errorf("Size() after SetBounds = %dx%d", w, h)
	}
}
