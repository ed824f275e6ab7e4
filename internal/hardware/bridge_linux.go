//go:build linux

package hardware

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/shirou/gopsutil/v3/host"
)

const (
	defaultHwmonRoot = "/sys/class/hwmon"
	readTimeout      = 5 * time.Second
)

var sensorsTemperatures = host.SensorsTemperaturesWithContext

// LinuxBridge discovers temperatures through gopsutil and fans/controls
// through sysfs hwmon
type LinuxBridge struct {
	hwmonRoot string
}

// newPlatformBridge creates a new Linux bridge
func newPlatformBridge() Bridge {
	return &LinuxBridge{hwmonRoot: defaultHwmonRoot}
}

// Generate discovers every sensor of the host
func (b *LinuxBridge) Generate(ctx context.Context) (*Hardware, error) {
	hw := &Hardware{}

	if err := b.discoverTemps(ctx, hw); err != nil {
		log.Warnf("temperature sensors unavailable: %v", err)
	}
	b.discoverFans(hw)
	b.discoverControls(hw)

	return hw, nil
}

func (b *LinuxBridge) discoverTemps(ctx context.Context, hw *Hardware) error {
	temps, err := sensorsTemperatures(ctx)
	if err != nil && len(temps) == 0 {
		return err
	}

	seen := make(map[string]bool)
	for _, temp := range temps {
		if temp.SensorKey == "" || seen[temp.SensorKey] {
			continue
		}
		seen[temp.SensorKey] = true
		hw.Add(TypeTemp, "temp/"+temp.SensorKey, temp.SensorKey, temperatureSource(temp.SensorKey))
	}

	return nil
}

// temperatureSource looks the key up in a fresh gopsutil snapshot on every read
func temperatureSource(key string) Source {
	return SourceFunc(func() (float64, bool) {
		ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
		defer cancel()

		// partial results come back alongside a warnings error
		temps, _ := sensorsTemperatures(ctx)
		for _, temp := range temps {
			if temp.SensorKey == key {
				return temp.Temperature, true
			}
		}
		return 0, false
	})
}

func (b *LinuxBridge) discoverFans(hw *Hardware) {
	matches, err := filepath.Glob(filepath.Join(b.hwmonRoot, "hwmon*", "fan*_input"))
	if err != nil {
		return
	}
	sort.Strings(matches)

	for _, path := range matches {
		channel := strings.TrimSuffix(filepath.Base(path), "_input")
		id, name := b.identify(path, channel)
		hw.Add(TypeFan, id, name, fileSource(path, nil))
	}
}

func (b *LinuxBridge) discoverControls(hw *Hardware) {
	matches, err := filepath.Glob(filepath.Join(b.hwmonRoot, "hwmon*", "pwm*"))
	if err != nil {
		return
	}
	sort.Strings(matches)

	for _, path := range matches {
		// only base pwm files (pwm1, pwm2), not pwm1_enable and friends
		channel := filepath.Base(path)
		if strings.Contains(channel, "_") {
			continue
		}
		if _, err := strconv.Atoi(strings.TrimPrefix(channel, "pwm")); err != nil {
			continue
		}

		id, name := b.identify(path, channel)
		hw.Add(TypeControl, id, name, fileSource(path, pwmPercent))
	}
}

// identify builds the id and display name of a hwmon channel, preferring the
// chip name and channel label when the driver exposes them
func (b *LinuxBridge) identify(path, channel string) (string, string) {
	dir := filepath.Dir(path)
	hwmon := filepath.Base(dir)

	chip := readTrimmed(filepath.Join(dir, "name"))
	if chip == "" {
		chip = hwmon
	}

	label := readTrimmed(filepath.Join(dir, channel+"_label"))
	if label == "" {
		label = channel
	}

	return fmt.Sprintf("%s/%s/%s", hwmon, chip, channel), fmt.Sprintf("%s %s", chip, label)
}

// pwmPercent converts a PWM duty value (0-255) to percentage (0-100)
func pwmPercent(v float64) float64 {
	return v * 100 / 255
}

// fileSource reads a sysfs value on every call, applying convert when set
func fileSource(path string, convert func(float64) float64) Source {
	return SourceFunc(func() (float64, bool) {
		raw := readTrimmed(path)
		if raw == "" {
			return 0, false
		}

		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, false
		}
		if convert != nil {
			v = convert(v)
		}
		return v, true
	})
}

func readTrimmed(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
