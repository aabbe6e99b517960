// Package main provides the pomodoro desktop timer and its console front-end.
package main

import (
	"fmt"
	"os"
)

const (
	appName = "Pomodoro"
	appID   = "com.pomodoro.app"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
