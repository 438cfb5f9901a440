package models

// AspectName identifies a classical aspect.
type AspectName string

const (
	Conjunction AspectName = "conjunction"
	Sextile     AspectName = "sextile"
	Square      AspectName = "square"
	Trine       AspectName = "trine"
	Opposition  AspectName = "opposition"
)

// AspectType pairs an ideal angle with its orb tolerance.
type AspectType struct {
	Name  AspectName `json:"name"`
	Angle float64    `json:"angle"`
	Orb   float64    `json:"orb"`
}

// AspectTypes lists the recognized aspects in ascending angle order.
var AspectTypes = []AspectType{
	{Name: Conjunction, Angle: 0, Orb: 8},
	{Name: Sextile, Angle: 60, Orb: 6},
	{Name: Square, Angle: 90, Orb: 8},
	{Name: Trine, Angle: 120, Orb: 8},
	{Name: Opposition, Angle: 180, Orb: 8},
}

// Aspect is a matched angular relationship between two bodies. Deviation is
// the exact distance from the ideal angle, in degrees.
type Aspect struct {
	BodyA     BodyName   `json:"body_a"`
	BodyB     BodyName   `json:"body_b"`
	Type      AspectType `json:"type"`
	Deviation float64    `json:"deviation"`
}

// Label renders the conventional reading order, e.g. "Sun trine Moon".
func (a Aspect) Label() string {
	return string(a.BodyA) + " " + string(a.Type.Name) + " " + string(a.BodyB)
}
