package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	var (
		caseFile = `
Title: "Inlet Survey"
Gamma: 1.4
Cases:
  - Type: isentropic
    Mach: 2.0
  - Type: oblique
    Mach: 2.0
    Theta: 0.1745329
`
	)
	ip := &FlowCaseParameters{}
	err := ip.Parse([]byte(caseFile))
	assert.NoError(t, err)
	assert.Equal(t, "Inlet Survey", ip.Title)
	assert.Equal(t, 1.4, ip.Gamma)
	assert.Len(t, ip.Cases, 2)
	assert.Equal(t, "isentropic", ip.Cases[0].Type)
	assert.Equal(t, 2.0, ip.Cases[0].Mach)
	assert.Equal(t, "oblique", ip.Cases[1].Type)
	assert.Equal(t, 0.1745329, ip.Cases[1].Theta)
}

func TestParseBad(t *testing.T) {
	ip := &FlowCaseParameters{}
	assert.Error(t, ip.Parse([]byte("Gamma: [not a number]")))
}
