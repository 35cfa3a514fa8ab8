package allocator

import (
	"testing"

	"github.com/julianstephens/littleday/internal/models"
)

func TestIsFree(t *testing.T) {
	d := New()
	d.Occupy(600, 30) // 10:00-10:30

	tests := []struct {
		name       string
		start, end int
		want       bool
	}{
		{name: "touching after", start: 630, end: 660, want: true},
		{name: "touching before", start: 570, end: 600, want: true},
		{name: "overlapping", start: 615, end: 645, want: false},
		{name: "containing", start: 590, end: 640, want: false},
		{name: "ends at boundary", start: 1020, end: 1050, want: true},
		{name: "ends past boundary", start: 1040, end: 1070, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.IsFree(tt.start, tt.end); got != tt.want {
				t.Errorf("IsFree(%d, %d) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestPlaceNear(t *testing.T) {
	tests := []struct {
		name      string
		occupied  [][2]int // start, duration
		preferred int
		duration  int
		want      int
		wantFound bool
	}{
		{name: "preferred is free", preferred: 600, duration: 30, want: 600, wantFound: true},
		{name: "scans forward past conflict", occupied: [][2]int{{600, 60}}, preferred: 600, duration: 30, want: 660, wantFound: true},
		{name: "past boundary searches back from day end", preferred: 1080, duration: 60, want: 990, wantFound: true},
		{name: "past boundary skips occupied tail", occupied: [][2]int{{1020, 90}}, preferred: 1080, duration: 60, want: 960, wantFound: true},
		{name: "forward exhausted falls back to backward", occupied: [][2]int{{900, 210}}, preferred: 960, duration: 30, want: 870, wantFound: true},
		{name: "nothing free returns preferred", occupied: [][2]int{{420, 690}}, preferred: 600, duration: 30, want: 600, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			for _, o := range tt.occupied {
				d.Occupy(o[0], o[1])
			}
			got, found := d.PlaceNear(tt.preferred, tt.duration)
			if got != tt.want || found != tt.wantFound {
				t.Errorf("PlaceNear(%d, %d) = (%d, %v), want (%d, %v)", tt.preferred, tt.duration, got, found, tt.want, tt.wantFound)
			}
			if found && got+tt.duration > d.Boundary() {
				t.Errorf("placement %d+%d exceeds boundary %d", got, tt.duration, d.Boundary())
			}
		})
	}
}

func TestPlaceNearNeverSearchesBeforeEarliest(t *testing.T) {
	d := New()
	d.Occupy(405, 705) // 6:45-18:30
	got, found := d.PlaceNear(1080, 30)
	if found {
		t.Fatalf("expected no free slot, got %d", got)
	}

	d = New()
	d.Occupy(435, 675) // 7:15-18:30
	got, found = d.PlaceNear(1080, 15)
	if !found || got != 420 {
		t.Errorf("PlaceNear = (%d, %v), want (420, true)", got, found)
	}
}

func TestOccupyIgnoresEmptyAndClamps(t *testing.T) {
	d := New()
	d.Occupy(600, 0)
	d.Occupy(600, -15)
	if len(d.Occupied()) != 0 {
		t.Fatalf("expected empty intervals to be ignored, got %v", d.Occupied())
	}

	d.Occupy(1430, 30)
	occ := d.Occupied()
	if len(occ) != 1 || occ[0].End != 1439 {
		t.Errorf("expected end clamped to 1439, got %v", occ)
	}
}

func TestOccupiedIsSortedCopy(t *testing.T) {
	d := New()
	d.Occupy(900, 30)
	d.Occupy(480, 30)

	occ := d.Occupied()
	if occ[0].Start != 480 || occ[1].Start != 900 {
		t.Errorf("Occupied() not sorted: %v", occ)
	}
	occ[0].Start = 0
	if d.Occupied()[0].Start != 480 {
		t.Error("Occupied() must return a copy")
	}
}

func TestWithBoundary(t *testing.T) {
	d := New(WithBoundary(1200), WithEarliest(360))
	if !d.IsFree(1150, 1200) {
		t.Error("expected custom boundary to allow 1150-1200")
	}
	got, found := d.PlaceNear(1190, 30)
	if !found || got != 1170 {
		t.Errorf("PlaceNear = (%d, %v), want (1170, true)", got, found)
	}
}

func TestPlaceNearIgnoringWindow(t *testing.T) {
	d := New()
	visit := models.Interval{Start: 840, End: 960}
	d.OccupyInterval(visit)
	d.Occupy(840, 15) // an item already placed inside the visit

	got, found := d.PlaceNear(840, 30, visit)
	if !found || got != 855 {
		t.Errorf("PlaceNear inside window = (%d, %v), want (855, true)", got, found)
	}

	got, found = d.PlaceNear(840, 30)
	if !found || got != 960 {
		t.Errorf("PlaceNear without ignore = (%d, %v), want (960, true)", got, found)
	}
}

func TestPlaceNearBefore(t *testing.T) {
	tests := []struct {
		name      string
		occupied  [][2]int
		preferred int
		duration  int
		limit     int
		want      int
		wantFound bool
	}{
		{name: "fits before limit", preferred: 780, duration: 60, limit: 900, want: 780, wantFound: true},
		{name: "forward stops at limit", occupied: [][2]int{{840, 30}}, preferred: 840, duration: 60, limit: 900, want: 780, wantFound: true},
		{name: "late preferred searches back from limit", preferred: 870, duration: 60, limit: 900, want: 840, wantFound: true},
		{name: "limit past boundary is clamped", preferred: 1020, duration: 60, limit: 1200, want: 990, wantFound: true},
		{name: "nothing before limit", occupied: [][2]int{{420, 480}}, preferred: 840, duration: 60, limit: 900, want: 840, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			for _, o := range tt.occupied {
				d.Occupy(o[0], o[1])
			}
			got, found := d.PlaceNearBefore(tt.preferred, tt.duration, tt.limit)
			if got != tt.want || found != tt.wantFound {
				t.Errorf("PlaceNearBefore(%d, %d, %d) = (%d, %v), want (%d, %v)", tt.preferred, tt.duration, tt.limit, got, found, tt.want, tt.wantFound)
			}
			if found && got+tt.duration > min(tt.limit, d.Boundary()) {
				t.Errorf("placement %d+%d ends after %d", got, tt.duration, tt.limit)
			}
		})
	}
}

func TestDefaultBoundaryIsHalfPastFive(t *testing.T) {
	if got := New().Boundary(); got != 17*60+30 {
		t.Errorf("Boundary() = %d, want 1050 (5:30 PM)", got)
	}
}
