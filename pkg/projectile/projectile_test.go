package projectile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFortyFiveDegreeLaunch(t *testing.T) {
	p, err := New(20, 45, 9.8)
	require.NoError(t, err)

	assert.InDelta(t, 40.77, p.Range(), 0.1)
	assert.InDelta(t, 10.19, p.MaxHeight(), 0.1)
	assert.InDelta(t, 2.886, p.TimeOfFlight(), 0.01)
	assert.InDelta(t, math.Pi/4, p.Angle(), 1e-12)
}

func TestRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name                  string
		speed, angle, gravity float64
	}{
		{"zero gravity", 20, 45, 0},
		{"negative gravity", 20, 45, -9.8},
		{"negative speed", -1, 45, 9.8},
		{"zero speed", 0, 45, 9.8},
		{"nan angle", 20, math.NaN(), 9.8},
		{"infinite speed", math.Inf(1), 45, 9.8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.speed, tc.angle, tc.gravity)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestTrajectorySampling(t *testing.T) {
	p, err := New(20, 45, 9.8)
	require.NoError(t, err)

	pts := p.Trajectory()
	// tof ≈ 2.886, so samples run t = 0.0 … 2.8.
	require.Len(t, pts, 29)
	assert.Equal(t, Point{}, pts[0])

	last := pts[len(pts)-1]
	assert.InDelta(t, 2.8, last.T, 1e-9)
	assert.Less(t, last.T, p.TimeOfFlight())
	assert.Greater(t, last.Y, 0.0)

	for i, pt := range pts {
		assert.InDelta(t, float64(i)*SampleInterval, pt.T, 1e-9)
		assert.InDelta(t, 20*math.Cos(math.Pi/4)*pt.T, pt.X, 1e-9)
		assert.LessOrEqual(t, pt.Y, p.MaxHeight()+1e-9)
	}
}

func TestTrajectoryKeepsFinalWholeInterval(t *testing.T) {
	// tof is 0.3, which is just under 3 intervals when divided by 0.1.
	p, err := New(1.5, 90, 10)
	require.NoError(t, err)

	pts := p.Trajectory()
	require.Len(t, pts, 4)
	assert.InDelta(t, 0.3, pts[3].T, 1e-9)
	assert.InDelta(t, 0, pts[3].Y, 1e-9)
}

func TestPositionAtLanding(t *testing.T) {
	p, err := New(30, 60, 9.81)
	require.NoError(t, err)

	land := p.Position(p.TimeOfFlight())
	assert.InDelta(t, 0, land.Y, 1e-9)
	assert.InDelta(t, p.Range(), land.X, 1e-9)

	apex := p.Position(p.TimeOfFlight() / 2)
	assert.InDelta(t, p.MaxHeight(), apex.Y, 1e-9)
}

func TestDownwardLaunchHasSingleSample(t *testing.T) {
	p, err := New(10, -30, 9.8)
	require.NoError(t, err)
	assert.Len(t, p.Trajectory(), 1)
}

func TestUnitLabels(t *testing.T) {
	u, err := ParseUnitSystem(" si ")
	require.NoError(t, err)
	assert.Equal(t, SI, u)
	assert.Equal(t, "m/s", u.Velocity())
	assert.Equal(t, "m/s^2", u.Acceleration())
	assert.Equal(t, "m", u.Length())
	assert.Equal(t, "s", u.Time())

	u, err = ParseUnitSystem("us")
	require.NoError(t, err)
	assert.Equal(t, "ft/s", u.Velocity())
	assert.Equal(t, "ft/s^2", u.Acceleration())
	assert.Equal(t, "ft", u.Length())
	assert.Equal(t, "s", u.Time())

	_, err = ParseUnitSystem("imperial")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
