// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff describes differences between command outputs in
// tests.
package diff

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Diff returns a description of the differences between old and new,
// or "" if they are equal. It uses the system diff command when one is
// available and otherwise reports the first differing line.
func Diff(oldName, old, newName, new string) string {
	if old == new {
		return ""
	}
	if _, err := exec.LookPath("diff"); err == nil {
		if out, err := unified(oldName, old, newName, new); err == nil {
			return out
		}
	}
	return firstDifference(oldName, old, newName, new)
}

func unified(oldName, old, newName, new string) (string, error) {
	dir, err := os.MkdirTemp("", "diff")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(dir)
	if oldName == newName {
		oldName, newName = oldName+".old", newName+".new"
	}
	if err := os.WriteFile(filepath.Join(dir, oldName), []byte(old), 0666); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, newName), []byte(new), 0666); err != nil {
		return "", err
	}
	cmd := exec.Command("diff", "-u", oldName, newName)
	cmd.Dir = dir
	data, err := cmd.CombinedOutput()
	if len(data) == 0 {
		// diff exits 1 when the inputs differ, so only a
		// silent failure is an error.
		return "", fmt.Errorf("diff: no output: %v", err)
	}
	return string(data), nil
}

func firstDifference(oldName, old, newName, new string) string {
	ol, nl := strings.Split(old, "\n"), strings.Split(new, "\n")
	for i := 0; ; i++ {
		var o, n string
		if i < len(ol) {
			o = ol[i]
		}
		if i < len(nl) {
			n = nl[i]
		}
		if o != n || i >= len(ol) || i >= len(nl) {
			return fmt.Sprintf("line %d:\n%s: %q\n%s: %q\n", i+1, oldName, o, newName, n)
		}
	}
}
