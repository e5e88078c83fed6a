package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type recordingLogger struct {
	infos []string
}

func (l *recordingLogger) SetLevel(int8) {}
func (l *recordingLogger) Debug(string, ...interface{})   {}
func (l *recordingLogger) Info(msg string, _ ...interface{}) {
	l.infos = append(l.infos, msg)
}
func (l *recordingLogger) Warning(string, ...interface{}) {}
func (l *recordingLogger) Error(string, ...interface{})   {}
func (l *recordingLogger) Fatal(string, ...interface{})   { panic("fatal") }

// dumbLogger is a field-less Logger, used only where a test compares whole
// Config values with cmp.Equal (recordingLogger's unexported infos field
// would otherwise make cmp panic).
type dumbLogger struct{}

func (dumbLogger) SetLevel(int8)                  {}
func (dumbLogger) Debug(string, ...interface{})   {}
func (dumbLogger) Info(string, ...interface{})    {}
func (dumbLogger) Warning(string, ...interface{}) {}
func (dumbLogger) Error(string, ...interface{})   {}
func (dumbLogger) Fatal(string, ...interface{})   { panic("fatal") }

func TestValidateRequiresLogger(t *testing.T) {
	c := Default()
	if err := c.Validate(); err == nil {
		t.Errorf("Validate() with no Logger set returned nil error")
	}
}

func TestValidateDefaultsZeroWidth(t *testing.T) {
	log := &recordingLogger{}
	c := Default()
	c.Logger = log
	c.Width = 0

	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if c.Width != Default().Width {
		t.Errorf("Width after Validate = %d, want default %d", c.Width, Default().Width)
	}
	if len(log.infos) == 0 {
		t.Errorf("Validate() with a bad field logged nothing")
	}
}

// TestValidateDefaultsEveryValidatedField checks that Validate defaults
// every field that carries a Validate func in Variables back to Default(),
// leaving the rest of the Config untouched, mirroring revid/config's own
// cmp.Equal-based Validate test.
func TestValidateDefaultsEveryValidatedField(t *testing.T) {
	want := Default()
	want.Logger = dumbLogger{}

	got := want
	got.Width = 0
	got.Height = 0
	got.SegThreshold = 0
	got.SegLookAhead = 0
	got.PlannerBottomRowFrac = 0
	got.PlannerTrackWidth = 0
	got.PlannerTargetPosGain = 0

	if err := got.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	if !cmp.Equal(got, want) {
		t.Errorf("configs not equal after Validate()\n%s", cmp.Diff(want, got))
	}
}

func TestValidateLeavesGoodFieldsAlone(t *testing.T) {
	log := &recordingLogger{}
	c := Default()
	c.Logger = log
	c.PlannerTrackWidth = 500

	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if c.PlannerTrackWidth != 500 {
		t.Errorf("PlannerTrackWidth = %d, want unchanged 500", c.PlannerTrackWidth)
	}
}

func TestUpdateAppliesKnownKeys(t *testing.T) {
	c := Default()
	c.Update(map[string]string{
		KeyWidth:        "640",
		KeySegThreshold: "90",
		KeyDrawEnabled:  "true",
	})
	if c.Width != 640 {
		t.Errorf("Width = %d, want 640", c.Width)
	}
	if c.SegThreshold != 90 {
		t.Errorf("SegThreshold = %d, want 90", c.SegThreshold)
	}
	if !c.DrawEnabled {
		t.Errorf("DrawEnabled = false, want true")
	}
}

func TestUpdateIgnoresUnparsableValues(t *testing.T) {
	c := Default()
	orig := c.Width
	c.Update(map[string]string{KeyWidth: "not-a-number"})
	if c.Width != orig {
		t.Errorf("Width = %d after an unparsable update, want unchanged %d", c.Width, orig)
	}
}

func TestUpdateIgnoresUnknownKeys(t *testing.T) {
	c := Default()
	c.Update(map[string]string{"NotAField": "1"})
}
