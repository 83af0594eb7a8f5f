package modes

import "testing"

func TestModeString(t *testing.T) {
	if ModeProduction.String() != "production" {
		t.Fatal()
	}
	if ModeDevelopment.String() != "development" {
		t.Fatal()
	}
	if Mode(0).String() != "unknown" {
		t.Fatal()
	}
}
