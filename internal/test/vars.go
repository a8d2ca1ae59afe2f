package test

import (
	"fmt"
	"os"
)

var (
	// RunLidSensorTest enables tests that query the lid sensor of the host.
	RunLidSensorTest = getBoolVar("LAPWATCH_TEST_LID_SENSOR", false)
	// TestLidSensor names the sensor used by those tests.
	TestLidSensor = getStringVar("LAPWATCH_TEST_LID_SENSOR_NAME", "auto")
)

func getStringVar(name, defaultValue string) string {
	if e := os.Getenv(name); e != "" {
		return e
	}

	return defaultValue
}

func getBoolVar(name string, defaultValue bool) bool {
	if e := os.Getenv(name); e != "" {
		switch e {
		case "1", "true":
			return true
		case "0", "false":
			return false
		default:
			fmt.Fprintf(os.Stderr, "invalid value for variable %q, using default\n", name)
		}
	}

	return defaultValue
}
