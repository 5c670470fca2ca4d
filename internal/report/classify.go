package report

type Band int

const (
	BandNone Band = iota
	BandWithin
	BandUnder
	BandOver
)

func (b Band) String() string {
	switch b {
	case BandWithin:
		return "within"
	case BandUnder:
		return "under"
	case BandOver:
		return "over"
	default:
		return "none"
	}
}

// Classify places a day's delta against the tolerance window around target.
// The comparisons are kept in their literal form: the window bounds are
// inclusive and target cancels out of every test.
func Classify(delta, targetMinutes, toleranceMinutes int) Band {
	lower := targetMinutes - toleranceMinutes
	upper := targetMinutes + toleranceMinutes
	switch {
	case lower <= targetMinutes+delta && targetMinutes+delta <= upper:
		return BandWithin
	case delta < lower-targetMinutes:
		return BandUnder
	case delta > upper-targetMinutes:
		return BandOver
	default:
		return BandNone
	}
}

type rgb struct {
	hex     string
	r, g, b int
}

var bandColors = map[Band]rgb{
	BandWithin: {hex: "C6EFCE", r: 198, g: 239, b: 206},
	BandUnder:  {hex: "FFC7CE", r: 255, g: 199, b: 206},
	BandOver:   {hex: "FFFACD", r: 255, g: 250, b: 205},
}
