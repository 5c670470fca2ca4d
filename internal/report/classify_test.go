package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	const target, tolerance = 510, 15

	tests := []struct {
		name  string
		delta int
		want  Band
	}{
		{name: "on target", delta: 0, want: BandWithin},
		{name: "upper boundary", delta: tolerance, want: BandWithin},
		{name: "lower boundary", delta: -tolerance, want: BandWithin},
		{name: "just over", delta: tolerance + 1, want: BandOver},
		{name: "just under", delta: -tolerance - 1, want: BandUnder},
		{name: "worked example over", delta: 65, want: BandOver},
		{name: "worked example under", delta: -30, want: BandUnder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.delta, target, tolerance))
		})
	}
}

func TestClassifyZeroTolerance(t *testing.T) {
	assert.Equal(t, BandWithin, Classify(0, 480, 0))
	assert.Equal(t, BandOver, Classify(1, 480, 0))
	assert.Equal(t, BandUnder, Classify(-1, 480, 0))
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("Relatório Simples")
	assert.NoError(t, err)
	assert.Equal(t, KindSimple, kind)

	kind, err = ParseKind("")
	assert.NoError(t, err)
	assert.Equal(t, KindFull, kind)

	_, err = ParseKind("weekly")
	assert.Error(t, err)
}

func TestSimpleLayoutHasNoMinuteColumns(t *testing.T) {
	layout := KindSimple.Layout()
	assert.Len(t, layout.Columns, 6)
	assert.Zero(t, layout.Index(FieldWorked))
	assert.Zero(t, layout.Index(FieldDelta))

	full := KindFull.Layout()
	assert.Len(t, full.Columns, 8)
	assert.Equal(t, 8, full.Index(FieldDelta))
}
