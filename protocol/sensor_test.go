package protocol

import (
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinSensors(t *testing.T) {
	for name, id := range map[string]string{
		"THGR810":  "F824",
		"thgn123n": "1D20",
		"THWR288A": "EA4C",
	} {
		s, err := LookupSensor(name)
		require.NoError(t, err, name)
		assert.Equal(t, id, s.ID)
	}

	_, err := LookupSensor("WMR100")
	assert.Error(t, err)
}

func TestRegisterSensorDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		RegisterSensor(Sensor{"THGR810", "F824"})
	})
	assert.Panics(t, func() {
		RegisterSensor(Sensor{"TESTBADID", "F8"})
	})
}

func TestLoadCatalog(t *testing.T) {
	loaded, err := LoadCatalog(strings.NewReader(`
sensors:
  - name: TESTRTGR328N
    id: cc3d
  - name: TESTTHGR228N
    id: 1A2D
`))
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	s, err := LookupSensor("testrtgr328n")
	require.NoError(t, err)
	assert.Equal(t, "CC3D", s.ID)

	names := make(map[string]bool)
	for _, s := range Sensors() {
		names[s.Name] = true
	}
	assert.True(t, names["TESTTHGR228N"])
	assert.True(t, names["THGR810"])
}

func TestLoadCatalogAllOrNothing(t *testing.T) {
	_, err := LoadCatalog(strings.NewReader(`
sensors:
  - name: TESTGOOD
    id: "1234"
  - name: TESTBAD
    id: XYZ
  - name: THGR810
    id: F824
  - name: TESTGOOD
    id: "4321"
`))
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 3)

	_, err = LookupSensor("TESTGOOD")
	assert.Error(t, err)
}

func TestLoadCatalogInvalidYAML(t *testing.T) {
	_, err := LoadCatalog(strings.NewReader("sensors: [name: {"))
	assert.Error(t, err)
}
