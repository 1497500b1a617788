/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/compflow/InputParameters"
)

// casesCmd represents the cases command
var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "Run a batch of flow cases from a YAML file",
	Long: `
Reads a YAML case file and prints the relations for each case in it,

compflow cases -I cases.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err      error
			caseFile string
		)
		if caseFile, err = cmd.Flags().GetString("caseFile"); err != nil {
			panic(err)
		}
		ip := processCaseInput(caseFile)
		RunCases(ip)
	},
}

func init() {
	rootCmd.AddCommand(casesCmd)
	casesCmd.Flags().StringP("caseFile", "I", "", "YAML file listing flow cases to run")
}

func processCaseInput(caseFile string) (ip *InputParameters.FlowCaseParameters) {
	var (
		err error
	)
	if len(caseFile) == 0 {
		err := fmt.Errorf("must supply a case file (-I, --caseFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Inlet Survey"
Gamma: 1.4
Cases:
  - Type: isentropic
    Mach: 2.0
  - Type: normal
    Mach: 2.0
  - Type: oblique
    Mach: 2.0
    Theta: 0.1745 # Flow deflection in radians
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(caseFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.FlowCaseParameters{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	if ip.Gamma == 0 {
		ip.Gamma = 1.4
	}
	return
}

func RunCases(ip *InputParameters.FlowCaseParameters) {
	ip.Print()
	for _, c := range ip.Cases {
		fmt.Printf("\n[%s] Mach=%v\n", c.Type, c.Mach)
		switch c.Type {
		case "isentropic":
			printIsentropicHeader()
			printIsentropicRow(c.Mach, ip.Gamma)
		case "normal":
			printNormal(c.Mach, ip.Gamma)
		case "oblique":
			printOblique(c.Mach, ip.Gamma, c.Theta)
		default:
			panic(fmt.Errorf("unknown case type %q", c.Type))
		}
	}
}
