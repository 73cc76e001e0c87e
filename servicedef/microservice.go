package servicedef

import (
	"fmt"
	"strings"
)

// Microservice is one of the PeachCloud services the probe knows about.
type Microservice string

const (
	Network Microservice = "network"
	OLED    Microservice = "oled"
	Stats   Microservice = "stats"
	Menu    Microservice = "menu"
)

const packagePrefix = "peach-"

// AllMicroservices lists every service that can be selected, in the order they are probed
// when more than one is selected.
var AllMicroservices = []Microservice{Network, OLED, Stats, Menu}

// DefaultMicroservices are probed when none are selected.
var DefaultMicroservices = []Microservice{Network, OLED, Stats}

// ID is the stable identifier of the service, which is also its package name.
func (m Microservice) ID() string {
	return packagePrefix + string(m)
}

func (m Microservice) String() string {
	return string(m)
}

// InvalidMicroserviceError is returned for a selector that does not name a known service.
type InvalidMicroserviceError struct {
	Arg string
}

func (e InvalidMicroserviceError) Error() string {
	var names []string
	for _, m := range AllMicroservices {
		names = append(names, string(m))
	}
	return fmt.Sprintf("the argument %q is not one of the microservice options for peach-probe (%s)",
		e.Arg, strings.Join(names, ", "))
}

// ParseMicroservice accepts a service name in any letter case, with or without the
// "peach-" prefix.
func ParseMicroservice(s string) (Microservice, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), packagePrefix)
	for _, m := range AllMicroservices {
		if string(m) == name {
			return m, nil
		}
	}
	return "", InvalidMicroserviceError{Arg: s}
}

// SelectMicroservices parses the selectors given on the command line. Duplicates are
// dropped, and the result follows the order of AllMicroservices. If no selectors are given,
// DefaultMicroservices is returned.
func SelectMicroservices(args []string) ([]Microservice, error) {
	if len(args) == 0 {
		return append([]Microservice(nil), DefaultMicroservices...), nil
	}
	selected := make(map[Microservice]bool)
	for _, a := range args {
		m, err := ParseMicroservice(a)
		if err != nil {
			return nil, err
		}
		selected[m] = true
	}
	var ret []Microservice
	for _, m := range AllMicroservices {
		if selected[m] {
			ret = append(ret, m)
		}
	}
	return ret, nil
}
