// seehuhn.de/go/pagefit - page size fitting for PDF viewers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package pagefit

import (
	"flag"
	"io"
	"testing"
)

func TestParseFitPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    FitPolicy
		wantErr bool
	}{
		{"width", Width, false},
		{"HEIGHT", Height, false},
		{" Both ", Both, false},
		{"", 0, true},
		{"diagonal", 0, true},
	}
	for _, test := range tests {
		got, err := ParseFitPolicy(test.in)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseFitPolicy(%q): unexpected error %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseFitPolicy(%q) = %s, want %s", test.in, got, test.want)
		}
	}
}

func TestFitPolicyString(t *testing.T) {
	for _, p := range []FitPolicy{Width, Height, Both} {
		q, err := ParseFitPolicy(p.String())
		if err != nil || q != p {
			t.Errorf("%s: got %s, %v", p, q, err)
		}
	}
	if s := FitPolicy(7).String(); s != "FitPolicy(7)" {
		t.Errorf("invalid policy formatted as %q", s)
	}
	if _, err := FitPolicy(-1).MarshalText(); err == nil {
		t.Error("invalid policy marshalled without error")
	}
}

func TestFitPolicyFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var p FitPolicy
	fs.TextVar(&p, "policy", Height, "fit policy")

	if p != Height {
		t.Errorf("default: got %s", p)
	}
	if err := fs.Parse([]string{"-policy", "both"}); err != nil {
		t.Fatal(err)
	}
	if p != Both {
		t.Errorf("got %s, want both", p)
	}
	if err := fs.Parse([]string{"-policy", "sideways"}); err == nil {
		t.Error("invalid policy accepted")
	}
}

func TestSizeString(t *testing.T) {
	if s := (Size{595, 842}).String(); s != "595x842" {
		t.Errorf("got %q", s)
	}
	if s := (SizeF{933, 1400.5}).String(); s != "933x1400.5" {
		t.Errorf("got %q", s)
	}
}
