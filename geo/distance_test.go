package geo

import (
	"math"
	"testing"
)

func TestDistanceKm_IdenticalPoints(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{52.0, 4.0},
		{-33.8688, 151.2093},
		{90, 0},
	}
	for _, p := range points {
		if d := DistanceKm(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("distance(%v, %v) to itself = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	ab := DistanceKm(48.8566, 2.3522, 51.5074, -0.1278)
	ba := DistanceKm(51.5074, -0.1278, 48.8566, 2.3522)
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
	}
}

func TestDistanceKm_ParisLondon(t *testing.T) {
	d := DistanceKm(48.8566, 2.3522, 51.5074, -0.1278)
	if d < 340 || d > 350 {
		t.Fatalf("Paris-London = %v km, want ~344", d)
	}
}

func TestDistanceKm_Antipodes(t *testing.T) {
	d := DistanceKm(0, 0, 0, 180)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		t.Fatalf("antipodal distance not finite: %v", d)
	}
	half := math.Pi * earthRadiusKm
	if math.Abs(d-half) > 1 {
		t.Fatalf("antipodal distance = %v, want ~%v", d, half)
	}
}

func TestDistanceKm_AlwaysNonNegativeFinite(t *testing.T) {
	cases := [][4]float64{
		{90, 0, -90, 0},
		{-90, -180, 90, 180},
		{12.34, 56.78, -12.34, -56.78},
		{0.0001, 0.0001, 0.0002, 0.0002},
	}
	for _, tc := range cases {
		d := DistanceKm(tc[0], tc[1], tc[2], tc[3])
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			t.Errorf("distance(%v) = %v, want finite non-negative", tc, d)
		}
	}
}
