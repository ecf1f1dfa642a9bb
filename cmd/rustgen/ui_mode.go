package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode управляет отрисовкой интерактивного прогресса командой generate.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

// shouldUseTUI решает, уместен ли интерактивный режим. --check и --quiet
// печатают плоский отчёт независимо от --ui: их вывод читают скрипты и CI.
func shouldUseTUI(mode uiMode, check, quiet bool) bool {
	if check || quiet {
		return false
	}
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
