// Package display describes display devices, cursor location, and the OS
// display-configuration surface.
package display

// Device describes one active display and its bounds in the virtual
// desktop coordinate space. A Device is a snapshot: it is valid only until
// the next enumeration, since displays can be hot-plugged between calls.
type Device struct {
	Index   int
	Name    string
	Label   string
	X       int
	Y       int
	W       int
	H       int
	Primary bool
}

// Point is a cursor position in virtual desktop coordinates.
// Coordinates can be negative for displays left of or above the primary.
type Point struct {
	X int
	Y int
}

// Mode is a display resolution as a width/height pixel pair.
type Mode struct {
	Width  int
	Height int
}

// Contains reports whether the point lies inside the device bounds.
// Edges are inclusive on the left/top and exclusive on the right/bottom,
// so a point on a shared edge matches exactly one of two abutting displays.
func (d Device) Contains(p Point) bool {
	return p.X >= d.X && p.X < d.X+d.W && p.Y >= d.Y && p.Y < d.Y+d.H
}

// Locate returns the first device whose bounds contain the point. Devices
// are scanned in enumeration order, so the first match wins when bounds
// overlap. ok is false when the point is outside every device.
func Locate(devices []Device, p Point) (Device, bool) {
	for _, d := range devices {
		if d.Contains(p) {
			return d, true
		}
	}
	return Device{}, false
}

// DeviceByIndex returns the device matching the 1-based index.
func DeviceByIndex(devices []Device, idx int) (Device, bool) {
	for _, d := range devices {
		if d.Index == idx {
			return d, true
		}
	}
	return Device{}, false
}
