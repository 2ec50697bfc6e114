package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name string
	log  *[]string
}

func (r *recordingState) Enter()                    { *r.log = append(*r.log, r.name+":enter") }
func (r *recordingState) Update(deltaTime float64)  { *r.log = append(*r.log, r.name+":update") }
func (r *recordingState) Draw(screen *ebiten.Image) {}
func (r *recordingState) Exit()                     { *r.log = append(*r.log, r.name+":exit") }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0.016) // без состояния ничего не происходит

	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(0.016)
	sm.SetState(b)

	want := []string{"a:enter", "a:update", "a:exit", "b:enter"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("step %d: expected %s, got %s", i, want[i], log[i])
		}
	}
	if sm.Current() != b {
		t.Error("Expected b to be current")
	}
}

func TestStateMachineQuit(t *testing.T) {
	sm := NewStateMachine()
	if sm.ShouldQuit() {
		t.Fatal("Expected no quit request initially")
	}
	sm.Quit()
	if !sm.ShouldQuit() {
		t.Error("Expected quit request after Quit")
	}
}

func TestCursorTrackerReportsMovesOnly(t *testing.T) {
	c := newCursorTracker(100, 100)

	if p := c.Next(50, 50); p != nil {
		t.Errorf("Expected no target on the first sample, got %+v", *p)
	}
	if p := c.Next(50, 50); p != nil {
		t.Errorf("Expected no target while the cursor rests, got %+v", *p)
	}
	p := c.Next(60, 40)
	if p == nil || p.X != 60 || p.Y != 40 {
		t.Fatalf("Expected target (60, 40), got %v", p)
	}
	if p := c.Next(150, 40); p != nil {
		t.Errorf("Expected no target outside the window, got %+v", *p)
	}
}

func TestCloseTimer(t *testing.T) {
	timer := newCloseTimer()
	dt := 1.0 / 60

	frames := 0
	for {
		frames++
		closeDue, summaryDue := timer.Advance(dt)
		if summaryDue && !closeDue {
			t.Fatal("Expected summary never before close")
		}
		if closeDue {
			break
		}
		if frames > 1000 {
			t.Fatal("Expected close to come due")
		}
	}
	if frames < 179 || frames > 181 {
		t.Errorf("Expected close after about 3 s of frames, got %d", frames)
	}

	_, summaryDue := timer.Advance(0.05)
	if summaryDue {
		t.Error("Expected summary to wait for the alert delay")
	}
	_, summaryDue = timer.Advance(0.06)
	if !summaryDue {
		t.Error("Expected summary after the alert delay")
	}
}
