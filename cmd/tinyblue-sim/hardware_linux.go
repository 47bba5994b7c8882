package main

import (
	"context"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue"
	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/platform/evdev"
	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/platform/hd44780"
)

func openLCD(busPath string, addr uint8, rows, columns int) (tinyblue.Display, func(), error) {
	bus, err := hd44780.OpenBus(busPath)
	if err != nil {
		return nil, nil, err
	}
	display, err := hd44780.New(bus, addr, rows, columns)
	if err != nil {
		bus.Close()
		return nil, nil, err
	}
	return display, func() { bus.Close() }, nil
}

func readButtons(ctx context.Context, device string, in tinyblue.InputConfig, queue *tinyblue.EventQueue) error {
	keys, err := evdev.ParseKeyMap(in.ScrollKey, in.ScrollUpKey, in.SelectKey, in.BackKey)
	if err != nil {
		return err
	}
	reader, err := evdev.Open(device, keys, queue)
	if err != nil {
		return err
	}
	defer reader.Close()
	return reader.Run(ctx)
}
