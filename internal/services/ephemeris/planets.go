package ephemeris

import (
	"math"

	"AstroCore/internal/domain/models"
	"AstroCore/internal/services/zodiac"
)

// Truncated mean-element planetary theory (Schlyter-class accuracy, a few
// arc minutes for the inner planets over 1900-2100). Angles in degrees,
// distances in AU, mean elements linear in d = days since epoch 2000-01-00.

const (
	radPerDeg     = math.Pi / 180
	earthRadiusAU = 4.26352e-5 // Moon theory works in Earth radii
)

func sind(x float64) float64 { return math.Sin(x * radPerDeg) }
func cosd(x float64) float64 { return math.Cos(x * radPerDeg) }

func atan2d(y, x float64) float64 { return math.Atan2(y, x) / radPerDeg }

// elements are the osculating mean elements of one body: longitude of the
// ascending node, inclination, argument of perihelion, semi-major axis,
// eccentricity and mean anomaly, each as value at epoch plus daily rate.
type elements struct {
	n0, nd float64 // ascending node
	i0, id float64 // inclination
	w0, wd float64 // argument of perihelion
	a      float64 // semi-major axis, AU (Moon: Earth radii)
	e0, ed float64 // eccentricity
	m0, md float64 // mean anomaly
}

func (el elements) at(d float64) (n, i, w, a, e, m float64) {
	return zodiac.Normalize(el.n0 + el.nd*d),
		el.i0 + el.id*d,
		zodiac.Normalize(el.w0 + el.wd*d),
		el.a,
		el.e0 + el.ed*d,
		zodiac.Normalize(el.m0 + el.md*d)
}

var planetElements = map[models.BodyName]elements{
	models.BodyMercury: {48.3313, 3.24587e-5, 7.0047, 5.00e-8, 29.1241, 1.01444e-5, 0.387098, 0.205635, 5.59e-10, 168.6562, 4.0923344368},
	models.BodyVenus:   {76.6799, 2.46590e-5, 3.3946, 2.75e-8, 54.8910, 1.38374e-5, 0.723330, 0.006773, -1.302e-9, 48.0052, 1.6021302244},
	models.BodyMars:    {49.5574, 2.11081e-5, 1.8497, -1.78e-8, 286.5016, 2.92961e-5, 1.523688, 0.093405, 2.516e-9, 18.6021, 0.5240207766},
	models.BodyJupiter: {100.4542, 2.76854e-5, 1.3030, -1.557e-7, 273.8777, 1.64505e-5, 5.20256, 0.048498, 4.469e-9, 19.8950, 0.0830853001},
	models.BodySaturn:  {113.6634, 2.38980e-5, 2.4886, -1.081e-7, 339.3939, 2.97661e-5, 9.55475, 0.055546, -9.499e-9, 316.9670, 0.0334442282},
	models.BodyUranus:  {74.0005, 1.3978e-5, 0.7733, 1.9e-8, 96.6612, 3.0565e-5, 19.18171, 0.047318, 7.45e-9, 142.5905, 0.011725806},
	models.BodyNeptune: {131.7806, 3.0173e-5, 1.7700, -2.55e-7, 272.8461, -6.027e-6, 30.05826, 0.008606, 2.15e-9, 260.2471, 0.005995147},
}

var moonElements = elements{
	125.1228, -0.0529538083, 5.1454, 0, 318.0634, 0.1643573223,
	60.2666, 0.054900, 0, 115.3654, 13.0649929509,
}

// solveKepler iterates the eccentric anomaly in degrees.
func solveKepler(m, e float64) float64 {
	ec := m + e/radPerDeg*sind(m)*(1+e*cosd(m))
	for iter := 0; iter < 10; iter++ {
		delta := (ec - e/radPerDeg*sind(ec) - m) / (1 - e*cosd(ec))
		ec -= delta
		if math.Abs(delta) < 1e-7 {
			break
		}
	}
	return ec
}

// orbitalPlane returns true anomaly and radius from mean elements at d.
func orbitalPlane(el elements, d float64) (v, r, n, i, w float64) {
	n, i, w, a, e, m := el.at(d)
	ec := solveKepler(m, e)
	xv := a * (cosd(ec) - e)
	yv := a * math.Sqrt(1-e*e) * sind(ec)
	v = zodiac.Normalize(atan2d(yv, xv))
	r = math.Sqrt(xv*xv + yv*yv)
	return v, r, n, i, w
}

// eclipticRect converts orbital-plane position to ecliptic rectangular coords.
func eclipticRect(v, r, n, i, w float64) (x, y, z float64) {
	u := v + w
	x = r * (cosd(n)*cosd(u) - sind(n)*sind(u)*cosd(i))
	y = r * (sind(n)*cosd(u) + cosd(n)*sind(u)*cosd(i))
	z = r * sind(u) * sind(i)
	return x, y, z
}

// sunState returns the Sun's geocentric ecliptic longitude and distance.
func sunState(d float64) (lon, r float64) {
	w := zodiac.Normalize(282.9404 + 4.70935e-5*d)
	e := 0.016709 - 1.151e-9*d
	m := zodiac.Normalize(356.0470 + 0.9856002585*d)
	ec := m + e/radPerDeg*sind(m)*(1+e*cosd(m))
	xv := cosd(ec) - e
	yv := math.Sqrt(1-e*e) * sind(ec)
	v := atan2d(yv, xv)
	r = math.Sqrt(xv*xv + yv*yv)
	lon = zodiac.Normalize(v + w)
	return lon, r
}

// moonState returns the Moon's geocentric ecliptic position with the main
// perturbation terms applied.
func moonState(d float64) (lon, lat, r float64) {
	v, rm, n, i, w := orbitalPlane(moonElements, d)
	x, y, z := eclipticRect(v, rm, n, i, w)
	lon = zodiac.Normalize(atan2d(y, x))
	lat = atan2d(z, math.Sqrt(x*x+y*y))

	// Fundamental arguments for the perturbations.
	ls, _ := sunState(d)
	ms := zodiac.Normalize(356.0470 + 0.9856002585*d) // Sun mean anomaly
	mm := zodiac.Normalize(moonElements.m0 + moonElements.md*d)
	lm := zodiac.Normalize(n + w + mm) // Moon mean longitude
	dd := zodiac.Normalize(lm - ls)    // mean elongation
	f := zodiac.Normalize(lm - n)      // argument of latitude

	lon += -1.274*sind(mm-2*dd) +
		0.658*sind(2*dd) -
		0.186*sind(ms) -
		0.059*sind(2*mm-2*dd) -
		0.057*sind(mm-2*dd+ms) +
		0.053*sind(mm+2*dd) +
		0.046*sind(2*dd-ms) +
		0.041*sind(mm-ms) -
		0.035*sind(dd) -
		0.031*sind(mm+ms)
	lat += -0.173*sind(f-2*dd) -
		0.055*sind(mm-f-2*dd) -
		0.046*sind(mm+f-2*dd) +
		0.033*sind(f+2*dd) +
		0.017*sind(2*mm+f)
	r += -0.58*cosd(mm-2*dd) - 0.46*cosd(2*dd)

	return zodiac.Normalize(lon), lat, r * earthRadiusAU
}

// planetState returns a planet's geocentric ecliptic position.
func planetState(name models.BodyName, d float64) (lon, lat, r float64) {
	if name == models.BodyPluto {
		return plutoState(d)
	}

	v, rh, n, i, w := orbitalPlane(planetElements[name], d)
	xh, yh, zh := eclipticRect(v, rh, n, i, w)

	hlon := atan2d(yh, xh)
	hlat := atan2d(zh, math.Sqrt(xh*xh+yh*yh))
	hlon, hlat = perturb(name, d, hlon, hlat)
	xh = rh * cosd(hlon) * cosd(hlat)
	yh = rh * sind(hlon) * cosd(hlat)
	zh = rh * sind(hlat)

	slon, sr := sunState(d)
	xg := xh + sr*cosd(slon)
	yg := yh + sr*sind(slon)
	zg := zh

	lon = zodiac.Normalize(atan2d(yg, xg))
	lat = atan2d(zg, math.Sqrt(xg*xg+yg*yg))
	r = math.Sqrt(xg*xg + yg*yg + zg*zg)
	return lon, lat, r
}

// perturb applies the classical long-period corrections for the gas giants.
func perturb(name models.BodyName, d, lon, lat float64) (float64, float64) {
	mj := zodiac.Normalize(planetElements[models.BodyJupiter].m0 + planetElements[models.BodyJupiter].md*d)
	ms := zodiac.Normalize(planetElements[models.BodySaturn].m0 + planetElements[models.BodySaturn].md*d)
	mu := zodiac.Normalize(planetElements[models.BodyUranus].m0 + planetElements[models.BodyUranus].md*d)

	switch name {
	case models.BodyJupiter:
		lon += -0.332*sind(2*mj-5*ms-67.6) -
			0.056*sind(2*mj-2*ms+21) +
			0.042*sind(3*mj-5*ms+21) -
			0.036*sind(mj-2*ms) +
			0.022*cosd(mj-ms) +
			0.023*sind(2*mj-3*ms+52) -
			0.016*sind(mj-5*ms-69)
	case models.BodySaturn:
		lon += 0.812*sind(2*mj-5*ms-67.6) -
			0.229*cosd(2*mj-4*ms-2) +
			0.119*sind(mj-2*ms-3) +
			0.046*sind(2*mj-6*ms-69) +
			0.014*sind(mj-3*ms+32)
		lat += -0.020*cosd(2*mj-4*ms-2) + 0.018*sind(2*mj-6*ms-49)
	case models.BodyUranus:
		lon += 0.040*sind(ms-2*mu+6) +
			0.035*sind(ms-3*mu+33) -
			0.015*sind(mj-mu+20)
	}
	return lon, lat
}

// plutoState uses the dedicated trig series, valid 1900-2100.
func plutoState(d float64) (lon, lat, r float64) {
	s := 50.03 + 0.033459652*d
	p := 238.95 + 0.003968789*d

	hlon := 238.9508 + 0.00400703*d -
		19.799*sind(p) + 19.848*cosd(p) +
		0.897*sind(2*p) - 4.956*cosd(2*p) +
		0.610*sind(3*p) + 1.211*cosd(3*p) -
		0.341*sind(4*p) - 0.190*cosd(4*p) +
		0.128*sind(5*p) - 0.034*cosd(5*p) -
		0.038*sind(6*p) + 0.031*cosd(6*p) +
		0.020*sind(s-p) - 0.010*cosd(s-p)
	hlat := -3.9082 -
		5.453*sind(p) - 14.975*cosd(p) +
		3.527*sind(2*p) + 1.673*cosd(2*p) -
		1.051*sind(3*p) + 0.328*cosd(3*p) +
		0.179*sind(4*p) - 0.292*cosd(4*p) +
		0.019*sind(5*p) + 0.100*cosd(5*p) -
		0.031*sind(6*p) - 0.026*cosd(6*p) +
		0.011*cosd(s-p)
	hr := 40.72 +
		6.68*sind(p) + 6.90*cosd(p) -
		1.18*sind(2*p) - 0.03*cosd(2*p) +
		0.15*sind(3*p) - 0.14*cosd(3*p)

	xh := hr * cosd(hlon) * cosd(hlat)
	yh := hr * sind(hlon) * cosd(hlat)
	zh := hr * sind(hlat)

	slon, sr := sunState(d)
	xg := xh + sr*cosd(slon)
	yg := yh + sr*sind(slon)
	zg := zh

	lon = zodiac.Normalize(atan2d(yg, xg))
	lat = atan2d(zg, math.Sqrt(xg*xg+yg*yg))
	r = math.Sqrt(xg*xg + yg*yg + zg*zg)
	return lon, lat, r
}
