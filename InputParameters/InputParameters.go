package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML case file
type FlowCaseParameters struct {
	Title string     `yaml:"Title"`
	Gamma float64    `yaml:"Gamma"`
	Cases []FlowCase `yaml:"Cases"`
}

type FlowCase struct {
	Type  string  `yaml:"Type"` // One of "isentropic", "normal", "oblique"
	Mach  float64 `yaml:"Mach"`
	Theta float64 `yaml:"Theta"` // Flow deflection in radians, oblique only
}

func (ip *FlowCaseParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *FlowCaseParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	for i, c := range ip.Cases {
		fmt.Printf("Cases[%d] = [%s] Mach=%v Theta=%v\n", i, c.Type, c.Mach, c.Theta)
	}
}
