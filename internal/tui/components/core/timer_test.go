package core

import (
	"testing"
	"time"
)

func TestOneShotFireCarriesIdentityAndStamp(t *testing.T) {
	o := NewOneShot("field")

	cmd := o.Arm(7, time.Millisecond)
	if cmd == nil {
		t.Fatal("Arm returned nil command")
	}

	fire, ok := cmd().(FireMsg)
	if !ok {
		t.Fatal("armed command did not produce a FireMsg")
	}
	if fire.ID != "field" || fire.Gen != 7 {
		t.Errorf("FireMsg = %+v, want ID %q gen 7", fire, "field")
	}
	if !o.Owns(fire) {
		t.Error("timer does not own its own fire message")
	}
	if o.Owns(FireMsg{ID: "other", Gen: 7}) {
		t.Error("timer claimed a message from another source")
	}
}
