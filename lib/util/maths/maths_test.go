package maths

import "testing"

func TestMax(t *testing.T) {
	if v := Max(3, 5); v != 5 {
		t.Error("expected 5 but got", v)
	}
	if v := Max(-1.5, -2.5); v != -1.5 {
		t.Error("expected -1.5 but got", v)
	}
	if v := Max("abc", "abd"); v != "abd" {
		t.Error("expected abd but got", v)
	}
}
