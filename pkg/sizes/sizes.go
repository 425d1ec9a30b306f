package sizes

import "encoding/json"

// Scale is the named magnitude bucket of a rendition.
type Scale string

const (
	ScaleXXSM Scale = "XXSM"
	ScaleXSM  Scale = "XSM"
	ScaleSM   Scale = "SM"
	ScaleMD   Scale = "MD"
	ScaleLG   Scale = "LG"
	ScaleXLG  Scale = "XLG"
	ScaleXXLG Scale = "XXLG"
)

// Valid reports whether the scale is one of the known buckets.
func (s Scale) Valid() bool {
	switch s {
	case ScaleXXSM, ScaleXSM, ScaleSM, ScaleMD, ScaleLG, ScaleXLG, ScaleXXLG:
		return true
	}
	return false
}

func (s Scale) String() string {
	return string(s)
}

// Orientation is the layout of a rendition.
type Orientation string

const (
	OrientationThumbnail Orientation = "THUMBNAIL"
	OrientationLandscape Orientation = "LANDSCAPE"
	OrientationPortrait  Orientation = "PORTRAIT"
)

// Valid reports whether the orientation is one of the known layouts.
func (o Orientation) Valid() bool {
	switch o {
	case OrientationThumbnail, OrientationLandscape, OrientationPortrait:
		return true
	}
	return false
}

func (o Orientation) String() string {
	return string(o)
}

// Size describes one rendition of an asset: a scale bucket, an orientation,
// and pixel dimensions. Width and height must be positive to be meaningful.
type Size struct {
	Scale       Scale       `json:"scale"`
	Orientation Orientation `json:"orientation"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
}

// String renders the size as its JSON form, which is the representation
// used when a size is embedded in an error message.
func (s Size) String() string {
	data, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	return string(data)
}
