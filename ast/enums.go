package ast

// AltitudeMode specifies how altitude components are interpreted. The empty
// value means the element was absent.
type AltitudeMode string

const (
	ClampToGround      AltitudeMode = "clampToGround"
	RelativeToGround   AltitudeMode = "relativeToGround"
	Absolute           AltitudeMode = "absolute"
	ClampToSeaFloor    AltitudeMode = "clampToSeaFloor"
	RelativeToSeaFloor AltitudeMode = "relativeToSeaFloor"
)

// Valid reports whether m is a known altitude mode.
func (m AltitudeMode) Valid() bool {
	switch m {
	case ClampToGround, RelativeToGround, Absolute, ClampToSeaFloor, RelativeToSeaFloor:
		return true
	}
	return false
}

// ColorMode selects how a ColorStyle applies its color.
type ColorMode string

const (
	ColorModeNormal ColorMode = "normal"
	ColorModeRandom ColorMode = "random"
	// ColorModeDefault is accepted for documents written by older tools.
	ColorModeDefault ColorMode = "default"
)

// Valid reports whether m is a known color mode.
func (m ColorMode) Valid() bool {
	switch m {
	case ColorModeNormal, ColorModeRandom, ColorModeDefault:
		return true
	}
	return false
}

// DisplayMode controls whether a balloon is shown.
type DisplayMode string

const (
	DisplayDefault DisplayMode = "default"
	DisplayHide    DisplayMode = "hide"
)

// Valid reports whether m is a known display mode.
func (m DisplayMode) Valid() bool {
	return m == DisplayDefault || m == DisplayHide
}

// ListItemType controls how a feature is shown in a list view.
type ListItemType string

const (
	ListCheck             ListItemType = "check"
	ListCheckOffOnly      ListItemType = "checkOffOnly"
	ListCheckHideChildren ListItemType = "checkHideChildren"
	ListRadioFolder       ListItemType = "radioFolder"
)

// Valid reports whether t is a known list item type.
func (t ListItemType) Valid() bool {
	switch t {
	case ListCheck, ListCheckOffOnly, ListCheckHideChildren, ListRadioFolder:
		return true
	}
	return false
}

// RefreshMode specifies a time-based refresh policy for a link.
type RefreshMode string

const (
	OnChange   RefreshMode = "onChange"
	OnInterval RefreshMode = "onInterval"
	OnExpire   RefreshMode = "onExpire"
)

// Valid reports whether m is a known refresh mode.
func (m RefreshMode) Valid() bool {
	return m == OnChange || m == OnInterval || m == OnExpire
}

// ViewRefreshMode specifies how a link refreshes when the camera moves.
type ViewRefreshMode string

const (
	Never     ViewRefreshMode = "never"
	OnStop    ViewRefreshMode = "onStop"
	OnRequest ViewRefreshMode = "onRequest"
	OnRegion  ViewRefreshMode = "onRegion"
)

// Valid reports whether m is a known view refresh mode.
func (m ViewRefreshMode) Valid() bool {
	switch m {
	case Never, OnStop, OnRequest, OnRegion:
		return true
	}
	return false
}

// Units qualifies a Vec2 component.
type Units string

const (
	Fraction    Units = "fraction"
	Pixels      Units = "pixels"
	InsetPixels Units = "insetPixels"
)

// Valid reports whether u is a known unit.
func (u Units) Valid() bool {
	return u == Fraction || u == Pixels || u == InsetPixels
}
