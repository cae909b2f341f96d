//go:build !mobile

package utils

import "testing"

func TestIsMobileDesktop(t *testing.T) {
	t.Setenv("XMAS_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}

	t.Setenv("XMAS_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should honor XMAS_MOBILE_EMULATE=1")
	}
}
