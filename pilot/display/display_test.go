package display

import "testing"

func TestNewWindowNeverNil(t *testing.T) {
	w := NewWindow("pilot")
	if w == nil {
		t.Fatalf("NewWindow returned nil")
	}
}

func TestShowAndCloseNeverError(t *testing.T) {
	w := NewWindow("pilot")
	if err := w.Show(make([]byte, 16), 4, 4); err != nil {
		t.Errorf("Show() = %v, want nil", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
}

var _ Sink = (*Window)(nil)
