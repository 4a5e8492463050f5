package controls

import (
	"testing"

	"github.com/Faultbox/skyoptics/internal/atmosphere"
)

func TestNewPanel_ClampsAndCouples(t *testing.T) {
	p := NewPanel(atmosphere.Controls{Time: 3, CloudOkta: 12, Humidity: 50, RainLevel: 3})
	c := p.Controls()

	if c.Time != 6 {
		t.Errorf("time = %v, want 6", c.Time)
	}
	if c.CloudOkta != 8 {
		t.Errorf("okta = %v, want 8", c.CloudOkta)
	}
	if c.Humidity != 85 {
		t.Errorf("humidity = %v, want 85", c.Humidity)
	}
	if c.RainLevel != 3 {
		t.Errorf("rain = %d, want 3", c.RainLevel)
	}
}

func TestPanel_CouplingOnlyOnRainChange(t *testing.T) {
	p := NewPanel(atmosphere.Controls{Time: 12, CloudOkta: 2, Humidity: 50})
	p.SetRainLevel(3)

	c := p.Controls()
	if c.Humidity != 85 || c.CloudOkta != 7 {
		t.Fatalf("after rain 3: humidity %v okta %v, want 85 / 7", c.Humidity, c.CloudOkta)
	}

	// Lowering humidity afterwards is allowed and does not re-trigger.
	p.SetHumidity(40)
	p.SetCloudOkta(1)
	c = p.Controls()
	if c.Humidity != 40 || c.CloudOkta != 1 {
		t.Errorf("independent edits overridden: humidity %v okta %v", c.Humidity, c.CloudOkta)
	}

	// Re-selecting the same level is not a change.
	p.SetRainLevel(3)
	if c2 := p.Controls(); c2.Humidity != 40 {
		t.Errorf("same rain level re-coupled: humidity %v", c2.Humidity)
	}

	p.SetRainLevel(2)
	c = p.Controls()
	if c.Humidity != 75 || c.CloudOkta != 5 {
		t.Errorf("after rain 2: humidity %v okta %v, want 75 / 5", c.Humidity, c.CloudOkta)
	}
}

func TestPanel_Nudge(t *testing.T) {
	p := NewPanel(atmosphere.Controls{Time: 17.75, Humidity: 10})

	if err := p.Nudge(KeyTime, 2); err != nil {
		t.Fatalf("Nudge: %v", err)
	}
	if got := p.Controls().Time; got != 18 {
		t.Errorf("time = %v, want clamped 18", got)
	}

	if err := p.Nudge(KeyHumidity, -1); err != nil {
		t.Fatalf("Nudge: %v", err)
	}
	if got := p.Controls().Humidity; got != 5 {
		t.Errorf("humidity = %v, want 5", got)
	}

	if err := p.Nudge(KeyRain, 1); err != nil {
		t.Fatalf("Nudge: %v", err)
	}
	c := p.Controls()
	if c.RainLevel != 1 || c.Humidity != 60 || c.CloudOkta != 3 {
		t.Errorf("after rain nudge: %+v", c)
	}

	if err := p.Nudge(KeyRain, 10); err != nil {
		t.Fatalf("Nudge: %v", err)
	}
	if got := p.Controls().RainLevel; got != 3 {
		t.Errorf("rain = %d, want clamped 3", got)
	}
}

func TestPanel_UnknownKey(t *testing.T) {
	p := NewPanel(atmosphere.Controls{Time: 12})
	if err := p.Set("wind", 1); err == nil {
		t.Error("expected error for unknown key")
	}
	if _, err := p.Get("wind"); err == nil {
		t.Error("expected error for unknown key")
	}
	if err := p.Nudge("wind", 1); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestRangeFor(t *testing.T) {
	for _, r := range Ranges {
		got, ok := RangeFor(r.Key)
		if !ok || got != r {
			t.Errorf("RangeFor(%q) = %+v, %v", r.Key, got, ok)
		}
		if r.Step <= 0 || r.Min >= r.Max {
			t.Errorf("bad range %+v", r)
		}
	}
}
