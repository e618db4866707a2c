//go:build windows

// Package display describes display devices, cursor location, and the OS
// display-configuration surface.
package display

import (
	"fmt"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	shcore = windows.NewLazySystemDLL("shcore.dll")

	procEnumDisplayDevicesW      = user32.NewProc("EnumDisplayDevicesW")
	procEnumDisplaySettingsW     = user32.NewProc("EnumDisplaySettingsW")
	procChangeDisplaySettingsExW = user32.NewProc("ChangeDisplaySettingsExW")
	procSetProcessDpiAwareness   = shcore.NewProc("SetProcessDpiAwareness")
)

const (
	displayDeviceActive  = 0x00000001
	displayDevicePrimary = 0x00000004

	enumCurrentSettings = 0xFFFFFFFF

	dmPelsWidth  = 0x00080000
	dmPelsHeight = 0x00100000

	cdsTest = 0x00000002

	dispChangeSuccessful = 0

	processPerMonitorDpiAware = 2
)

// displayDevice mirrors the Win32 DISPLAY_DEVICEW structure.
type displayDevice struct {
	cb           uint32
	DeviceName   [32]uint16
	DeviceString [128]uint16
	StateFlags   uint32
	DeviceID     [128]uint16
	DeviceKey    [128]uint16
}

// devMode mirrors the display variant of the Win32 DEVMODEW structure.
// Size is set to the truncated length declared here; the API honors it.
type devMode struct {
	DeviceName         [32]uint16
	SpecVersion        uint16
	DriverVersion      uint16
	Size               uint16
	DriverExtra        uint16
	Fields             uint32
	PositionX          int32
	PositionY          int32
	DisplayOrientation uint32
	DisplayFixedOutput uint32
	Color              int16
	Duplex             int16
	YResolution        int16
	TTOption           int16
	Collate            int16
	FormName           [32]uint16
	LogPixels          uint16
	BitsPerPel         uint32
	PelsWidth          uint32
	PelsHeight         uint32
	DisplayFlags       uint32
	DisplayFrequency   uint32
}

// WinProvider queries and reconfigures displays using WinAPI.
type WinProvider struct{}

// NewProvider returns a Windows display provider. When dpiAware is set the
// process opts into per-monitor DPI awareness so cursor coordinates are
// physical pixels matching display bounds.
func NewProvider(dpiAware bool) (Provider, error) {
	if dpiAware {
		// Fails when awareness was already set by a manifest; cursor
		// reads still work, so the result is ignored.
		_, _, _ = procSetProcessDpiAwareness.Call(uintptr(processPerMonitorDpiAware))
	}
	return &WinProvider{}, nil
}

// ListDisplays enumerates active display devices with their current bounds.
func (w *WinProvider) ListDisplays() ([]Device, error) {
	var devices []Device
	for i := uint32(0); ; i++ {
		var dd displayDevice
		dd.cb = uint32(unsafe.Sizeof(dd))
		ret, _, _ := procEnumDisplayDevicesW.Call(0, uintptr(i), uintptr(unsafe.Pointer(&dd)), 0)
		if ret == 0 {
			break
		}
		if dd.StateFlags&displayDeviceActive == 0 {
			continue
		}
		name := windows.UTF16ToString(dd.DeviceName[:])
		dm, err := currentSettings(name)
		if err != nil {
			// Device vanished between the two queries; skip it.
			continue
		}
		devices = append(devices, Device{
			Index:   len(devices) + 1,
			Name:    name,
			Label:   windows.UTF16ToString(dd.DeviceString[:]),
			X:       int(dm.PositionX),
			Y:       int(dm.PositionY),
			W:       int(dm.PelsWidth),
			H:       int(dm.PelsHeight),
			Primary: dd.StateFlags&displayDevicePrimary != 0,
		})
	}
	return devices, nil
}

// CursorPos returns the pointer position in virtual desktop coordinates.
func (w *WinProvider) CursorPos() (Point, error) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return Point{}, fmt.Errorf("GetCursorPos failed")
	}
	return Point{X: int(pt.X), Y: int(pt.Y)}, nil
}

// SupportedModes enumerates the resolution modes the display driver
// reports, deduplicated across refresh rates and color depths.
func (w *WinProvider) SupportedModes(deviceName string) ([]Mode, error) {
	namePtr, err := deviceNamePtr(deviceName)
	if err != nil {
		return nil, err
	}
	var modes []Mode
	seen := make(map[Mode]bool)
	for i := uint32(0); ; i++ {
		var dm devMode
		dm.Size = uint16(unsafe.Sizeof(dm))
		ret, _, _ := procEnumDisplaySettingsW.Call(uintptr(unsafe.Pointer(namePtr)), uintptr(i), uintptr(unsafe.Pointer(&dm)))
		if ret == 0 {
			break
		}
		m := Mode{Width: int(dm.PelsWidth), Height: int(dm.PelsHeight)}
		if !seen[m] {
			seen[m] = true
			modes = append(modes, m)
		}
	}
	if len(modes) == 0 {
		// Mode index 0 failing means the device itself is gone.
		return nil, fmt.Errorf("%s: %w", deviceName, ErrDeviceNotFound)
	}
	return modes, nil
}

// ApplyMode tests a mode with CDS_TEST and then commits it, touching only
// the pixel dimensions of the named display.
func (w *WinProvider) ApplyMode(deviceName string, m Mode) error {
	dm, err := currentSettings(deviceName)
	if err != nil {
		return err
	}
	dm.PelsWidth = uint32(m.Width)
	dm.PelsHeight = uint32(m.Height)
	dm.Fields = dmPelsWidth | dmPelsHeight

	namePtr, err := deviceNamePtr(deviceName)
	if err != nil {
		return err
	}
	ret, _, _ := procChangeDisplaySettingsExW.Call(uintptr(unsafe.Pointer(namePtr)), uintptr(unsafe.Pointer(&dm)), 0, uintptr(cdsTest), 0)
	if int32(ret) != dispChangeSuccessful {
		return fmt.Errorf("%dx%d: %w", m.Width, m.Height, ErrUnsupportedMode)
	}
	ret, _, _ = procChangeDisplaySettingsExW.Call(uintptr(unsafe.Pointer(namePtr)), uintptr(unsafe.Pointer(&dm)), 0, 0, 0)
	if int32(ret) != dispChangeSuccessful {
		return fmt.Errorf("code %d: %w", int32(ret), ErrApplyRejected)
	}
	return nil
}

// currentSettings returns the named display's current mode settings.
func currentSettings(deviceName string) (devMode, error) {
	var dm devMode
	dm.Size = uint16(unsafe.Sizeof(dm))
	namePtr, err := deviceNamePtr(deviceName)
	if err != nil {
		return dm, err
	}
	ret, _, _ := procEnumDisplaySettingsW.Call(uintptr(unsafe.Pointer(namePtr)), uintptr(enumCurrentSettings), uintptr(unsafe.Pointer(&dm)))
	if ret == 0 {
		return dm, fmt.Errorf("%s: %w", deviceName, ErrDeviceNotFound)
	}
	return dm, nil
}

// deviceNamePtr converts a device name for WinAPI calls. The empty string
// maps to a nil pointer, which the API treats as the primary display.
func deviceNamePtr(deviceName string) (*uint16, error) {
	if deviceName == "" {
		return nil, nil
	}
	return windows.UTF16PtrFromString(deviceName)
}
