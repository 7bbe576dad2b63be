package models

// Point is a single coordinate pair flowing through the projection pipeline.
// Before projection X carries the longitude and Y the latitude of the source
// geographic CRS; after projection X carries the easting and Y the northing of
// the target projected CRS. The first value is always the horizontal axis.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
