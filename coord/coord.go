package coord

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

var ErrInvalidArgument = errors.New("invalid argument")

const deg2rad = math.Pi / 180

const (
	EarthRadius  = 6378.137         // equatorial radius (km)
	Eccentricity = 0.08181919221456 // first eccentricity of the reference ellipsoid
)

const eex = Eccentricity * Eccentricity

// Geodetic is a position given as latitude and longitude in degrees and
// height above the ellipsoid in km.
type Geodetic struct {
	Lat float64
	Lon float64
	Alt float64
}

func (g Geodetic) ECEF() ECEF {
	x, y, z := Convert(g.Lat, g.Lon, g.Alt)
	return ECEF{X: x, Y: y, Z: z}
}

// ECEF is an earth centered, earth fixed position in km.
type ECEF struct {
	X float64
	Y float64
	Z float64
}

func (e ECEF) Vec() r3.Vec {
	return r3.Vec{X: e.X, Y: e.Y, Z: e.Z}
}

// Norm gives the distance from the center of the earth.
func (e ECEF) Norm() float64 {
	return r3.Norm(e.Vec())
}

// RadiusOfCurvature returns the prime vertical radius of curvature (km) at
// the given geodetic latitude in degrees.
func RadiusOfCurvature(lat float64) float64 {
	return radiusOfCurvature(lat * deg2rad)
}

func radiusOfCurvature(lat float64) float64 {
	sin := math.Sin(lat)
	return EarthRadius / math.Sqrt(1-eex*sin*sin)
}

// Convert transforms latitude, longitude (degrees) and height above the
// ellipsoid (km) into ECEF coordinates (km).
//
// Latitudes outside [-90, 90] and longitudes outside [-180, 180] are not
// rejected nor wrapped.
func Convert(lat, lon, alt float64) (float64, float64, float64) {
	lat *= deg2rad
	lon *= deg2rad

	n := radiusOfCurvature(lat)

	x := (n + alt) * math.Cos(lat) * math.Cos(lon)
	y := (n + alt) * math.Cos(lat) * math.Sin(lon)
	z := (n*(1-eex) + alt) * math.Sin(lat)

	return x, y, z
}

// ParseGeodetic parses the decimal representation of a latitude, longitude
// and height. Errors wrap ErrInvalidArgument.
func ParseGeodetic(lat, lon, alt string) (Geodetic, error) {
	var (
		g   Geodetic
		err error
	)
	if g.Lat, err = parseFloat("latitude", lat); err != nil {
		return g, err
	}
	if g.Lon, err = parseFloat("longitude", lon); err != nil {
		return g, err
	}
	if g.Alt, err = parseFloat("height", alt); err != nil {
		return g, err
	}
	return g, nil
}

func parseFloat(field, str string) (float64, error) {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidArgument, field, err)
	}
	return f, nil
}
