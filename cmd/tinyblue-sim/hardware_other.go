//go:build !linux

package main

import (
	"context"
	"errors"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue"
)

var errLinuxOnly = errors.New("LCD and evdev input need Linux")

func openLCD(string, uint8, int, int) (tinyblue.Display, func(), error) {
	return nil, nil, errLinuxOnly
}

func readButtons(context.Context, string, tinyblue.InputConfig, *tinyblue.EventQueue) error {
	return errLinuxOnly
}
