package kml

// GxPlaylist holds the ordered tour primitives of a GxTour.
type GxPlaylist struct {
	Object
	Primitives []TourPrimitive
}

// GxAnimatedUpdate applies an Update gradually over a duration.
type GxAnimatedUpdate struct {
	Object
	Duration *float64 `kml:"gx:duration"`
	Update   *Update  `kml:"Update"`
}

func (*GxAnimatedUpdate) isTourPrimitive() {}

// GxFlyTo moves the camera to a new view.
type GxFlyTo struct {
	Object
	Duration  *float64     `kml:"gx:duration"`
	FlyToMode *GxFlyToMode `kml:"gx:flyToMode"`
	View      AbstractView
}

func (*GxFlyTo) isTourPrimitive() {}

// GxSoundCue starts an audio file without blocking the tour.
type GxSoundCue struct {
	Object
	Href         *string  `kml:"href"`
	DelayedStart *float64 `kml:"gx:delayedStart"`
}

func (*GxSoundCue) isTourPrimitive() {}

// GxTourControl pauses the tour until the user resumes it.
type GxTourControl struct {
	Object
	PlayMode *GxPlayMode `kml:"gx:playMode"`
}

func (*GxTourControl) isTourPrimitive() {}

// GxWait holds the current view for a duration.
type GxWait struct {
	Object
	Duration *float64 `kml:"gx:duration"`
}

func (*GxWait) isTourPrimitive() {}

// Update describes targeted modifications to a previously loaded document.
type Update struct {
	TargetHref *string `kml:"targetHref"`
	Operations []UpdateOperation
}

func (*Update) isElement() {}

// Change modifies values inside the objects it carries.
type Change struct {
	Objects []Element
}

func (*Change) isElement()         {}
func (*Change) isUpdateOperation() {}

// Create adds the objects it carries to a container.
type Create struct {
	Objects []Element
}

func (*Create) isElement()         {}
func (*Create) isUpdateOperation() {}

// Delete removes the objects it references.
type Delete struct {
	Objects []Element
}

func (*Delete) isElement()         {}
func (*Delete) isUpdateOperation() {}

// NetworkLinkControl controls the behavior of fetching network links.
type NetworkLinkControl struct {
	MinRefreshPeriod *float64   `kml:"minRefreshPeriod"`
	MaxSessionLength *float64   `kml:"maxSessionLength"`
	Cookie           *string    `kml:"cookie"`
	Message          *string    `kml:"message"`
	LinkName         *string    `kml:"linkName"`
	LinkDescription  *string    `kml:"linkDescription"`
	LinkSnippet      *Snippet   `kml:"linkSnippet"`
	Expires          *TimeValue `kml:"expires"`
	Update           *Update    `kml:"Update"`
	View             AbstractView
}

func (*NetworkLinkControl) isElement() {}
