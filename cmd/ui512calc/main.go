// Copyright (c) 2025 The ui512mdProject contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// ui512calc is a command line calculator for the fixed-width 512-bit
// unsigned integer arithmetic implemented by the uint512 package. It
// accepts hex operands, performs a single multiplication or division, and
// prints the result in hex.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/JGLynch54/ui512mdProject"
	"github.com/decred/slog"
)

// version is reported by the -V/--version flag.
const version = "1.0.0"

var log = slog.Disabled

func main() {
	cfg, args := loadConfig()

	backend := slog.NewBackend(os.Stderr)
	log = backend.Logger("CALC")
	if cfg.Debug {
		log.SetLevel(slog.LevelTrace)
		uint512.UseLogger(backend.Logger("CORE"))
	}

	if err := run(cfg, args); err != nil {
		fmt.Fprintln(os.Stderr, "ui512calc:", err)
		os.Exit(1)
	}
}

func run(cfg *config, args []string) error {
	switch cfg.Op {
	case "mul":
		return runMul(args)
	case "div":
		return runDiv(args)
	default:
		return fmt.Errorf("unknown operation %q", cfg.Op)
	}
}

func runMul(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("mul requires exactly 2 operands, got %d", len(args))
	}
	a, err := parseHex(args[0])
	if err != nil {
		return fmt.Errorf("operand 1: %w", err)
	}
	b, err := parseHex(args[1])
	if err != nil {
		return fmt.Errorf("operand 2: %w", err)
	}

	log.Debugf("multiplying %s by %s", formatHex(&a), formatHex(&b))
	var product, overflow uint512.U512
	uint512.Mul(&product, &overflow, &a, &b)

	if overflow.IsZero() {
		fmt.Printf("%s\n", formatHex(&product))
	} else {
		fmt.Printf("%s%s (overflow)\n", formatHex(&overflow), formatHex(&product))
	}
	return nil
}

func runDiv(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("div requires exactly 2 operands, got %d", len(args))
	}
	a, err := parseHex(args[0])
	if err != nil {
		return fmt.Errorf("dividend: %w", err)
	}
	b, err := parseHex(args[1])
	if err != nil {
		return fmt.Errorf("divisor: %w", err)
	}

	log.Debugf("dividing %s by %s", formatHex(&a), formatHex(&b))
	var quotient, remainder uint512.U512
	if err := uint512.Div(&quotient, &remainder, &a, &b); err != nil {
		return err
	}

	fmt.Printf("quotient:  %s\n", formatHex(&quotient))
	fmt.Printf("remainder: %s\n", formatHex(&remainder))
	return nil
}

// parseHex converts a hex string (optionally prefixed with 0x) into a
// uint512.U512, rejecting operands that do not fit in 512 bits.
func parseHex(s string) (uint512.U512, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if len(s) > 128 {
		return uint512.U512{}, fmt.Errorf("operand %q exceeds 512 bits", s)
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}

	b := make([]byte, len(s)/2)
	for i := range b {
		var v byte
		if _, err := fmt.Sscanf(s[i*2:i*2+2], "%02x", &v); err != nil {
			return uint512.U512{}, fmt.Errorf("invalid hex digit in %q", s)
		}
		b[i] = v
	}

	var out uint512.U512
	out.SetBytes(b)
	return out, nil
}

// formatHex renders v as a 128-character, zero-padded hex string.
func formatHex(v *uint512.U512) string {
	b := v.Bytes()
	return fmt.Sprintf("%x", b[:])
}
