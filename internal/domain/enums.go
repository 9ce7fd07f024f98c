package domain

// PaceKey identifies one of the fixed daily-commitment presets.
type PaceKey string

const (
	PaceShort  PaceKey = "SHORT"
	PaceMedium PaceKey = "MEDIUM"
	PaceLong   PaceKey = "LONG"
)

func (k PaceKey) String() string { return string(k) }

func (k PaceKey) IsValid() bool {
	switch k {
	case PaceShort, PaceMedium, PaceLong:
		return true
	}
	return false
}

// Pace is a named preset carrying a fractional pages-per-day rate.
type Pace struct {
	Key         PaceKey
	PagesPerDay float64
	Label       string
}

var paces = []Pace{
	{Key: PaceShort, PagesPerDay: 0.25, Label: "Quarter page a day"},
	{Key: PaceMedium, PagesPerDay: 0.5, Label: "Half page a day"},
	{Key: PaceLong, PagesPerDay: 0.75, Label: "Three quarters of a page a day"},
}

// Paces returns the preset table in ascending order of commitment.
func Paces() []Pace {
	out := make([]Pace, len(paces))
	copy(out, paces)
	return out
}

// PaceByKey looks up a preset. The second result is false for unknown keys.
func PaceByKey(k PaceKey) (Pace, bool) {
	for _, p := range paces {
		if p.Key == k {
			return p, true
		}
	}
	return Pace{}, false
}

// AssignmentKind tells the client what to do today.
type AssignmentKind string

const (
	AssignmentMemorizeNext     AssignmentKind = "MEMORIZE_NEXT"
	AssignmentRevisionRequired AssignmentKind = "REVISION_REQUIRED"
	AssignmentPlanComplete     AssignmentKind = "PLAN_COMPLETE"
)

func (k AssignmentKind) String() string { return string(k) }

func (k AssignmentKind) IsValid() bool {
	switch k {
	case AssignmentMemorizeNext, AssignmentRevisionRequired, AssignmentPlanComplete:
		return true
	}
	return false
}
