package model

import (
	"math"
	"testing"
)

func TestOptional(t *testing.T) {
	var zero Optional[int]
	if zero.IsPresent() {
		t.Error("zero value should be absent")
	}
	if got := zero.OrElse(7); got != 7 {
		t.Errorf("OrElse() = %d, want 7", got)
	}

	some := Some(42)
	v, ok := some.Get()
	if !ok || v != 42 {
		t.Errorf("Get() = (%d, %v), want (42, true)", v, ok)
	}

	if None[string]().IsPresent() {
		t.Error("None() should be absent")
	}
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name    string
		in      float64
		present bool
	}{
		{name: "positive", in: 1500.5, present: true},
		{name: "zero", in: 0, present: true},
		{name: "negative overdraft", in: -250, present: true},
		{name: "nan", in: math.NaN(), present: false},
		{name: "positive infinity", in: math.Inf(1), present: false},
		{name: "negative infinity", in: math.Inf(-1), present: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Balance(tt.in)
			if got.IsPresent() != tt.present {
				t.Errorf("Balance(%v).IsPresent() = %v, want %v", tt.in, got.IsPresent(), tt.present)
			}
		})
	}
}

func TestCount(t *testing.T) {
	if !Count(0).IsPresent() {
		t.Error("Count(0) should be present")
	}
	if Count(-1).IsPresent() {
		t.Error("Count(-1) should be absent")
	}
}
