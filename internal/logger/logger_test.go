// seehuhn.de/go/colorimetry - colour science computations in Go
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"bytes"
	"strings"
	"testing"

	"seehuhn.de/go/colorimetry"
)

func TestWarn(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{Output: buf})

	Warn("convert", 0)
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}

	Warn("convert", colorimetry.WarnOutsideGamut)
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, `warning="outside gamut"`) {
		t.Errorf("unexpected output %q", out)
	}
}

func TestDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{Output: buf})
	L().Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug message logged at info level: %q", buf.String())
	}

	Setup(Config{Output: buf, Debug: true})
	L().Debug("shown")
	if !strings.Contains(buf.String(), "msg=shown") {
		t.Errorf("debug message missing: %q", buf.String())
	}
}
