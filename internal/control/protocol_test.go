package control

import (
	"encoding/json"
	"testing"
)

// TestProtocol_Start verifies decoding a drag start message.
func TestProtocol_Start(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"start","id":1}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != "start" || msg.ID != 1 {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_Move verifies decoding a drag move message.
func TestProtocol_Move(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"move","id":2,"dx":-14.5,"dy":3.25}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != "move" || msg.ID != 2 || msg.DX != -14.5 || msg.DY != 3.25 {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_End verifies decoding a drag end message.
func TestProtocol_End(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"end","id":3}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != "end" || msg.ID != 3 {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_Swipe verifies decoding a programmatic swipe message.
func TestProtocol_Swipe(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"swipe","dir":"left"}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != "swipe" || msg.Dir != DirLeft {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_Viewport verifies decoding a viewport report.
func TestProtocol_Viewport(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"viewport","w":390,"h":844,"dpr":3}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != "viewport" || msg.W != 390 || msg.H != 844 || msg.DPR != 3 {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_InputEnabled verifies decoding the kill switch message.
func TestProtocol_InputEnabled(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"inputEnabled","enabled":false}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != "inputEnabled" || msg.Enabled == nil || *msg.Enabled {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_Tuning verifies decoding a runtime tuning update.
func TestProtocol_Tuning(t *testing.T) {
	var msg Message
	raw := `{"t":"tuning","tuning":{"thresholdPct":0.4,"velocityThreshold":250,"overshoot":1.2,"restScale":0.8,"maxRotationDeg":20,"swipe":{"mode":"tween","durationMs":300,"easing":"ease_out_cubic"},"settle":{"mode":"tween","durationMs":300,"easing":"ease_out_cubic"}}}`
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != "tuning" || msg.Tuning == nil || msg.Tuning.ThresholdPct != 0.4 || msg.Tuning.VelocityThreshold != 250 {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_SwipedEventEncodes verifies the outbound swiped event shape.
func TestProtocol_SwipedEventEncodes(t *testing.T) {
	data, err := json.Marshal(Event{T: "swiped", Dir: DirRight, Index: 4, Lefts: 1, Rights: 3})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var back Event
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.T != "swiped" || back.Dir != DirRight || back.Index != 4 || back.Lefts != 1 || back.Rights != 3 {
		t.Fatalf("unexpected event: %+v", back)
	}
}
