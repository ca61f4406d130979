package protocol

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/bemasher/oregon21/frame"
)

var (
	sensorMutex sync.Mutex
	sensors     = make(map[string]Sensor)
)

// A Sensor is a model name and the identity code it transmits.
type Sensor struct {
	Name string `yaml:"name" xml:",attr"`
	ID   string `yaml:"id" xml:",attr"`
}

func (s Sensor) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.ID)
}

func init() {
	RegisterSensor(Sensor{"THGR810", "F824"})
	RegisterSensor(Sensor{"THGN123N", "1D20"})
	RegisterSensor(Sensor{"THWR288A", "EA4C"})
}

func sensorKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Given a sensor, register it for lookup by name. Panics on an invalid
// identity or a duplicate name.
func RegisterSensor(s Sensor) {
	if err := registerSensor(s); err != nil {
		panic(err)
	}
}

func registerSensor(s Sensor) error {
	sensorMutex.Lock()
	defer sensorMutex.Unlock()

	if err := checkSensor(s); err != nil {
		return err
	}
	sensors[sensorKey(s.Name)] = Sensor{s.Name, strings.ToUpper(s.ID)}

	return nil
}

// checkSensor must be called with sensorMutex held.
func checkSensor(s Sensor) error {
	if sensorKey(s.Name) == "" {
		return errors.New("sensor: empty name")
	}
	if err := frame.ValidateID(strings.ToUpper(s.ID)); err != nil {
		return errors.Wrapf(err, "sensor: %s", s.Name)
	}
	if _, dup := sensors[sensorKey(s.Name)]; dup {
		return errors.Errorf("sensor: already registered (%s)", s.Name)
	}
	return nil
}

// LookupSensor finds a registered sensor by case-insensitive name.
func LookupSensor(name string) (Sensor, error) {
	sensorMutex.Lock()
	defer sensorMutex.Unlock()

	if s, exists := sensors[sensorKey(name)]; exists {
		return s, nil
	}
	return Sensor{}, errors.Errorf("unknown sensor: %q", name)
}

// Sensors lists registered sensors ordered by name.
func Sensors() (list []Sensor) {
	sensorMutex.Lock()
	defer sensorMutex.Unlock()

	for _, s := range sensors {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return
}

// Catalog is the YAML document listing additional sensors.
type Catalog struct {
	Sensors []Sensor `yaml:"sensors"`
}

// LoadCatalog registers every sensor in a YAML catalog. Either all sensors
// are registered or, if any entry is invalid, none are.
func LoadCatalog(r io.Reader) ([]Sensor, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: read")
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, errors.Wrap(err, "catalog: parse")
	}

	sensorMutex.Lock()
	defer sensorMutex.Unlock()

	var result *multierror.Error
	seen := make(map[string]bool)
	for _, s := range cat.Sensors {
		if seen[sensorKey(s.Name)] {
			result = multierror.Append(result, errors.Errorf("sensor: duplicate in catalog (%s)", s.Name))
			continue
		}
		seen[sensorKey(s.Name)] = true

		if err := checkSensor(s); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	for idx, s := range cat.Sensors {
		cat.Sensors[idx].ID = strings.ToUpper(s.ID)
		sensors[sensorKey(s.Name)] = cat.Sensors[idx]
	}

	return cat.Sensors, nil
}

// LoadCatalogFile opens and loads a YAML catalog.
func LoadCatalogFile(filename string) ([]Sensor, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: open")
	}
	defer f.Close()

	return LoadCatalog(f)
}
