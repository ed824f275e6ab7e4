//go:build windows

package hardware

import (
	"context"
	"fmt"
	"strings"

	"github.com/StackExchange/wmi"
	"github.com/gofiber/fiber/v2/log"
)

// WindowsBridge discovers sensors through WMI
type WindowsBridge struct{}

// newPlatformBridge creates a new Windows bridge
func newPlatformBridge() Bridge {
	return &WindowsBridge{}
}

// Win32_TemperatureProbe represents WMI temperature probe data
type Win32_TemperatureProbe struct {
	DeviceID       string
	Name           string
	Description    string
	CurrentReading *uint32
}

// Win32_PerfRawData_Counters_ThermalZoneInformation represents thermal zone data
type Win32_PerfRawData_Counters_ThermalZoneInformation struct {
	Name        string
	Temperature uint64
}

// Win32_Fan represents WMI Win32_Fan class
type Win32_Fan struct {
	DeviceID     string
	Name         string
	DesiredSpeed uint64
}

// Generate discovers every sensor WMI exposes
func (b *WindowsBridge) Generate(ctx context.Context) (*Hardware, error) {
	hw := &Hardware{}

	if err := b.discoverProbes(hw); err != nil {
		log.Warnf("temperature probes unavailable: %v", err)
	}
	if err := b.discoverThermalZones(hw); err != nil {
		log.Warnf("thermal zones unavailable: %v", err)
	}
	if err := b.discoverFans(hw); err != nil {
		log.Warnf("fans unavailable: %v", err)
	}

	return hw, nil
}

func (b *WindowsBridge) discoverProbes(hw *Hardware) error {
	var probes []Win32_TemperatureProbe
	if err := wmi.Query(wmi.CreateQuery(&probes, ""), &probes); err != nil {
		return err
	}

	for _, probe := range probes {
		name := probe.Name
		if probe.Description != "" {
			name = probe.Description
		}
		hw.Add(TypeTemp, "probe/"+probe.DeviceID, name, probeSource(probe.DeviceID))
	}
	return nil
}

func (b *WindowsBridge) discoverThermalZones(hw *Hardware) error {
	var zones []Win32_PerfRawData_Counters_ThermalZoneInformation
	if err := wmi.Query(wmi.CreateQuery(&zones, ""), &zones); err != nil {
		return err
	}

	for _, zone := range zones {
		hw.Add(TypeTemp, "zone/"+zone.Name, fmt.Sprintf("Thermal Zone %s", zone.Name), thermalZoneSource(zone.Name))
	}
	return nil
}

func (b *WindowsBridge) discoverFans(hw *Hardware) error {
	var fans []Win32_Fan
	if err := wmi.Query(wmi.CreateQuery(&fans, ""), &fans); err != nil {
		return err
	}

	for _, fan := range fans {
		name := fan.Name
		if name == "" {
			name = fmt.Sprintf("Fan %s", fan.DeviceID)
		}
		hw.Add(TypeFan, "fan/"+fan.DeviceID, name, fanSource(fan.DeviceID))
	}
	return nil
}

// probeSource reports the probe reading, converted from tenths of Kelvin
func probeSource(deviceID string) Source {
	return SourceFunc(func() (float64, bool) {
		var probes []Win32_TemperatureProbe
		if err := wmi.Query(wmi.CreateQuery(&probes, where("DeviceID", deviceID)), &probes); err != nil {
			return 0, false
		}
		if len(probes) == 0 || probes[0].CurrentReading == nil {
			return 0, false
		}
		return float64(*probes[0].CurrentReading)/10.0 - 273.15, true
	})
}

// thermalZoneSource reports the zone temperature, converted from Kelvin
func thermalZoneSource(name string) Source {
	return SourceFunc(func() (float64, bool) {
		var zones []Win32_PerfRawData_Counters_ThermalZoneInformation
		if err := wmi.Query(wmi.CreateQuery(&zones, where("Name", name)), &zones); err != nil {
			return 0, false
		}
		if len(zones) == 0 || zones[0].Temperature == 0 {
			return 0, false
		}
		return float64(zones[0].Temperature) - 273.15, true
	})
}

func fanSource(deviceID string) Source {
	return SourceFunc(func() (float64, bool) {
		var fans []Win32_Fan
		if err := wmi.Query(wmi.CreateQuery(&fans, where("DeviceID", deviceID)), &fans); err != nil {
			return 0, false
		}
		if len(fans) == 0 {
			return 0, false
		}
		return float64(fans[0].DesiredSpeed), true
	})
}

func where(field, value string) string {
	return fmt.Sprintf("WHERE %s = '%s'", field, strings.ReplaceAll(value, "'", "\\'"))
}
