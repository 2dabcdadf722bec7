package state

import (
	"math"
	"testing"

	"pacetool/internal/units"
)

func TestNewDistanceState(t *testing.T) {
	tests := []struct {
		name   string
		stored map[string]string
		value  float64
		unit   units.Unit
		want   float64
		wantU  units.Unit
	}{
		{
			name:  "uses defaults",
			value: 5.0, unit: units.Kilometers,
			want: 5.0, wantU: units.Kilometers,
		},
		{
			name:  "uses provided values",
			value: 10.0, unit: units.Kilometers,
			want: 10.0, wantU: units.Kilometers,
		},
		{
			name: "restores from storage",
			stored: map[string]string{
				KeyDistance:     "25.5",
				KeyDistanceUnit: "km",
			},
			value: 5.0, unit: units.Kilometers,
			want: 25.5, wantU: units.Kilometers,
		},
		{
			name: "corrupted storage falls back",
			stored: map[string]string{
				KeyDistance:     "invalid",
				KeyDistanceUnit: "yards",
			},
			value: 5.0, unit: units.Kilometers,
			want: 5.0, wantU: units.Kilometers,
		},
		{
			name: "non-finite storage falls back",
			stored: map[string]string{
				KeyDistance:     "NaN",
				KeyDistanceUnit: "km",
			},
			value: 5.0, unit: units.Kilometers,
			want: 5.0, wantU: units.Kilometers,
		},
		{
			name: "missing unit falls back",
			stored: map[string]string{
				KeyDistance: "12",
			},
			value: 5.0, unit: units.Kilometers,
			want: 5.0, wantU: units.Kilometers,
		},
		{
			name:  "clamps below minimum",
			value: 0.005, unit: units.Kilometers,
			want: 0.01, wantU: units.Kilometers,
		},
		{
			name:  "clamps above maximum",
			value: 2000, unit: units.Kilometers,
			want: 999.99, wantU: units.Kilometers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := NewMemoryStorage()
			for k, v := range tt.stored {
				storage.Set(k, v)
			}

			d := NewDistanceState(tt.value, tt.unit, storage)
			if got := d.Distance(); got != tt.want {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
			if d.Unit() != tt.wantU {
				t.Errorf("Unit() = %v, want %v", d.Unit(), tt.wantU)
			}
		})
	}
}

func TestNewDistanceState_MilesRestore(t *testing.T) {
	storage := NewMemoryStorage()
	storage.Set(KeyDistance, "10")
	storage.Set(KeyDistanceUnit, "mi")

	d := NewDistanceState(5.0, units.Kilometers, storage)

	if d.Unit() != units.Miles {
		t.Errorf("Unit() = %v, want mi", d.Unit())
	}
	if math.Abs(d.Kilometers()-16.0934) > 1e-9 {
		t.Errorf("Kilometers() = %v, want 16.0934", d.Kilometers())
	}
	if math.Abs(d.Distance()-10) > 1e-4 {
		t.Errorf("Distance() = %v, want ~10", d.Distance())
	}
}

func TestDistanceState_SetDistance(t *testing.T) {
	storage := NewMemoryStorage()
	d := NewDistanceState(5.0, units.Kilometers, storage)

	d.SetDistance(10.0)
	if d.Distance() != 10.0 {
		t.Errorf("Distance() = %v, want 10", d.Distance())
	}

	d.SetDistance(0)
	if d.Distance() != 0.01 {
		t.Errorf("Distance() = %v, want 0.01", d.Distance())
	}

	d.SetDistance(10000)
	if d.Distance() != 999.99 {
		t.Errorf("Distance() = %v, want 999.99", d.Distance())
	}

	d.SetDistance(math.Inf(1))
	if d.Distance() != 999.99 {
		t.Errorf("Distance() after +Inf = %v, want 999.99", d.Distance())
	}

	d.SetDistance(math.Inf(-1))
	if d.Distance() != 0.01 {
		t.Errorf("Distance() after -Inf = %v, want 0.01", d.Distance())
	}

	d.SetDistance(15.5)
	if got, _ := storage.Get(KeyDistance); got != "15.5" {
		t.Errorf("stored distance = %q, want %q", got, "15.5")
	}
	if got, _ := storage.Get(KeyDistanceUnit); got != "km" {
		t.Errorf("stored unit = %q, want km", got)
	}
}

func TestDistanceState_Adjust(t *testing.T) {
	d := NewDistanceState(5.0, units.Kilometers, nil)

	d.Adjust(0.01)
	if math.Abs(d.Distance()-5.01) > 1e-9 {
		t.Errorf("Distance() after +0.01 = %v, want 5.01", d.Distance())
	}

	d.Adjust(-1)
	if math.Abs(d.Distance()-4.01) > 1e-9 {
		t.Errorf("Distance() after -1 = %v, want 4.01", d.Distance())
	}

	d.SetDistance(999.99)
	d.Adjust(1)
	if d.Distance() != 999.99 {
		t.Errorf("Distance() above max = %v, want 999.99", d.Distance())
	}

	m := NewDistanceState(10, units.Miles, nil)
	m.Adjust(0.01)
	if math.Abs(m.Distance()-10.01) > 1e-4 {
		t.Errorf("mile Distance() after +0.01 = %v, want ~10.01", m.Distance())
	}
}

func TestDistanceState_SetUnit(t *testing.T) {
	storage := NewMemoryStorage()
	d := NewDistanceState(5.0, units.Kilometers, storage)

	d.SetUnit(units.Miles)

	if d.Unit() != units.Miles {
		t.Errorf("Unit() = %v, want mi", d.Unit())
	}
	if d.Kilometers() != 5.0 {
		t.Errorf("Kilometers() = %v, want 5", d.Kilometers())
	}
	if got, _ := storage.Get(KeyDistanceUnit); got != "mi" {
		t.Errorf("stored unit = %q, want mi", got)
	}
}

func TestDistanceState_ConvertedDistance(t *testing.T) {
	d := NewDistanceState(5.0, units.Kilometers, NewMemoryStorage())

	if d.ConvertedUnit() != units.Miles {
		t.Errorf("ConvertedUnit() = %v, want mi", d.ConvertedUnit())
	}
	if got := d.ConvertedDistance(); math.Abs(got-3.107) > 0.01 {
		t.Errorf("ConvertedDistance() = %v, want ~3.107", got)
	}

	snap := d.Snapshot()
	if snap.Distance != 5.0 || snap.ConvertedUnit != units.Miles || snap.Kilometers != 5.0 {
		t.Errorf("Snapshot() = %+v", snap)
	}
}

func TestDistanceState_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  units.Unit
	}{
		{"km to mi to km", 5.0, units.Kilometers},
		{"mi to km to mi", 10.0, units.Miles},
		{"marathon", 42.195, units.Kilometers},
		{"tiny", 0.01, units.Miles},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDistanceState(tt.value, tt.unit, NewMemoryStorage())
			original := d.Distance()
			canonical := d.Kilometers()

			for i := 0; i < 10; i++ {
				d.SetUnit(tt.unit.Opposite())
				d.SetUnit(tt.unit)
			}

			if d.Distance() != original {
				t.Errorf("Distance() after toggles = %v, want %v", d.Distance(), original)
			}
			if d.Kilometers() != canonical {
				t.Errorf("Kilometers() after toggles = %v, want %v", d.Kilometers(), canonical)
			}
		})
	}
}

func TestDistanceState_ChangeThenToggle(t *testing.T) {
	d := NewDistanceState(5.0, units.Kilometers, NewMemoryStorage())
	d.SetDistance(10.0)
	after := d.Distance()

	d.SetUnit(units.Miles)
	d.SetUnit(units.Kilometers)

	if d.Distance() != after {
		t.Errorf("Distance() = %v, want %v", d.Distance(), after)
	}
}

func TestDistanceState_FailedWritesKeepState(t *testing.T) {
	storage := &failingStorage{MemoryStorage: NewMemoryStorage()}
	d := NewDistanceState(5.0, units.Kilometers, storage)

	d.SetDistance(21.1)
	d.SetUnit(units.Miles)

	if storage.writes == 0 {
		t.Fatal("expected writes to be attempted")
	}
	if d.Kilometers() != 21.1 || d.Unit() != units.Miles {
		t.Errorf("state = (%v km, %v), want (21.1 km, mi)", d.Kilometers(), d.Unit())
	}
}

func TestDistanceState_MileRestoreIsStable(t *testing.T) {
	storage := NewMemoryStorage()
	d := NewDistanceState(5.0, units.Miles, storage)
	d.SetDistance(5.0)
	want := d.Kilometers()

	for session := 0; session < 10; session++ {
		d = NewDistanceState(1.0, units.Kilometers, storage)
		// Toggling back to miles rewrites the stored value
		d.SetUnit(units.Kilometers)
		d.SetUnit(units.Miles)

		if got, _ := storage.Get(KeyDistance); got != "5" {
			t.Fatalf("session %d: stored distance = %q, want %q", session, got, "5")
		}
		if d.Kilometers() != want {
			t.Fatalf("session %d: Kilometers() = %v, want %v", session, d.Kilometers(), want)
		}
	}
}

func TestDistanceState_KilometerSaveKeepsPrecision(t *testing.T) {
	storage := NewMemoryStorage()
	d := NewDistanceState(5.0, units.Kilometers, storage)
	d.SetDistance(42.195)

	if got, _ := storage.Get(KeyDistance); got != "42.195" {
		t.Errorf("stored distance = %q, want %q", got, "42.195")
	}
}

func TestDistanceState_SaveErr(t *testing.T) {
	failing := &failingStorage{MemoryStorage: NewMemoryStorage()}
	d := NewDistanceState(5.0, units.Kilometers, failing)
	if d.SaveErr() != nil {
		t.Errorf("SaveErr() before any write = %v, want nil", d.SaveErr())
	}

	d.SetDistance(10)
	if d.SaveErr() == nil {
		t.Error("SaveErr() after failed write = nil, want error")
	}

	ok := NewDistanceState(5.0, units.Kilometers, NewMemoryStorage())
	ok.SetDistance(10)
	if ok.SaveErr() != nil {
		t.Errorf("SaveErr() after successful write = %v, want nil", ok.SaveErr())
	}
}
