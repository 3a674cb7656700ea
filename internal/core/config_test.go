package core

import "testing"

func TestRuntimeConfigViewport(t *testing.T) {
	cfg := DefaultConfig()

	vp := cfg.Viewport()
	if vp.W != 800 {
		t.Errorf("Viewport().W = %v, expected 800", vp.W)
	}
	// 24 rows minus HUD and footer
	if vp.H != float64(24-HUDRows-FooterRows)*20 {
		t.Errorf("Viewport().H = %v, expected %v", vp.H, float64(24-HUDRows-FooterRows)*20)
	}

	b := vp.Bounds()
	if b.X != 0 || b.Y != 0 || b.W != vp.W || b.H != vp.H {
		t.Errorf("Bounds() = %+v, expected origin-anchored %+v", b, vp)
	}
}

func TestRuntimeConfigTinyTerminal(t *testing.T) {
	cfg := RuntimeConfig{ScreenW: 3, ScreenH: 1, CellW: 10, CellH: 20}

	if cfg.PlayfieldRows() != 0 {
		t.Errorf("PlayfieldRows() = %d, expected 0", cfg.PlayfieldRows())
	}
	if vp := cfg.Viewport(); vp.H != 0 || vp.W != 30 {
		t.Errorf("Viewport() = %+v, expected {30 0}", vp)
	}
}
