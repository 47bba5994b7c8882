package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue"
)

const thermalZone = "/sys/class/thermal/thermal_zone0/temp"

// board holds the demo's hardware state. With an empty ledPath the LED is
// only tracked in memory.
type board struct {
	mu      sync.Mutex
	ledPath string
	ledOn   bool

	ledBack *tinyblue.Item
	temp    *tinyblue.Item
	ram     *tinyblue.Item
}

func (b *board) actions() map[string]tinyblue.Action {
	return map[string]tinyblue.Action{
		"toggle_led": b.toggleLED,
	}
}

// bind attaches the dynamic items declared in the menu by id. Custom menus
// may leave any of them out; those items are simply not updated.
func (b *board) bind(menu *tinyblue.Menu) {
	b.ledBack, _ = menu.Item("led_back")
	b.temp, _ = menu.Item("temp")
	b.ram, _ = menu.Item("ram")
	b.refresh()
}

func (b *board) toggleLED() {
	b.mu.Lock()
	b.ledOn = !b.ledOn
	on := b.ledOn
	b.mu.Unlock()

	if b.ledPath != "" {
		value := "0"
		if on {
			value = "1"
		}
		if err := os.WriteFile(b.ledPath, []byte(value), 0o644); err != nil {
			tinyblue.GetLogger().Warn("Failed to set LED", "path", b.ledPath, "error", err)
		}
	}

	if b.ledBack == nil {
		return
	}
	if on {
		b.ledBack.SetText("Back / LED ON")
	} else {
		b.ledBack.SetText("Back / LED OFF")
	}
}

// refresh updates the sensor items. Called from the loop once a second.
func (b *board) refresh() {
	if b.temp != nil {
		b.temp.SetText(readTemp(thermalZone))
	}
	if b.ram != nil {
		b.ram.SetText(freeMemory())
	}
}

func readTemp(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return "Temp --"
	}
	milli, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return "Temp --"
	}
	return fmt.Sprintf("Temp %.2fC", float64(milli)/1000)
}

func freeMemory() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("Free %dKB", (m.HeapSys-m.HeapInuse)/1024)
}
