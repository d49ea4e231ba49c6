package kml

// Camera places the viewer at a position looking along heading/tilt/roll.
type Camera struct {
	Object
	Time         TimePrimitive
	Longitude    *float64      `kml:"longitude"`
	Latitude     *float64      `kml:"latitude"`
	Altitude     *float64      `kml:"altitude"`
	Heading      *float64      `kml:"heading"`
	Tilt         *float64      `kml:"tilt"`
	Roll         *float64      `kml:"roll"`
	AltitudeMode *AltitudeMode `kml:"altitudeMode"`
}

func (*Camera) isAbstractView() {}

// LookAt places the viewer relative to a point of interest.
type LookAt struct {
	Object
	Time         TimePrimitive
	Longitude    *float64      `kml:"longitude"`
	Latitude     *float64      `kml:"latitude"`
	Altitude     *float64      `kml:"altitude"`
	Heading      *float64      `kml:"heading"`
	Tilt         *float64      `kml:"tilt"`
	Range        *float64      `kml:"range"`
	AltitudeMode *AltitudeMode `kml:"altitudeMode"`
}

func (*LookAt) isAbstractView() {}

// TimeStamp binds a feature to a single moment. The gx-prefixed form used
// inside views resolves to this same kind.
type TimeStamp struct {
	Object
	When *TimeValue `kml:"when"`
}

func (*TimeStamp) isTimePrimitive() {}

// TimeSpan binds a feature to an interval; either end may be open.
type TimeSpan struct {
	Object
	Begin *TimeValue `kml:"begin"`
	End   *TimeValue `kml:"end"`
}

func (*TimeSpan) isTimePrimitive() {}
