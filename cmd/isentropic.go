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
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/compflow/isentropic"
)

// isentropicCmd represents the isentropic command
var isentropicCmd = &cobra.Command{
	Use:   "isentropic",
	Short: "Isentropic flow relations at a Mach number or over a sweep",
	Long: `
Prints the isentropic ratios, the Prandtl-Meyer angle and the mass flow
functions at a single Mach number or over a Mach number sweep,

compflow isentropic -m 2
compflow isentropic --sweep 0.1,3,30`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			gamma = viper.GetFloat64("gamma")
		)
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		printIsentropicHeader()
		if sweep, _ := cmd.Flags().GetString("sweep"); len(sweep) != 0 {
			for _, mach := range parseSweep(sweep) {
				printIsentropicRow(mach, gamma)
			}
			return
		}
		mach, _ := cmd.Flags().GetFloat64("mach")
		printIsentropicRow(mach, gamma)
	},
}

func init() {
	rootCmd.AddCommand(isentropicCmd)
	isentropicCmd.Flags().Float64P("mach", "m", 1.0, "Mach number")
	isentropicCmd.Flags().String("sweep", "", "Mach number sweep as lo,hi,n")
	isentropicCmd.Flags().Bool("profile", false, "write a CPU profile to the working directory")
}

// parseSweep expands "lo,hi,n" into n evenly spaced Mach numbers.
func parseSweep(sweep string) []float64 {
	var (
		parts = strings.Split(sweep, ",")
	)
	if len(parts) != 3 {
		fmt.Printf("error: sweep must be given as lo,hi,n, got %q\n", sweep)
		os.Exit(1)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		panic(err)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		panic(err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		panic(err)
	}
	return floats.Span(make([]float64, n), lo, hi)
}

func printIsentropicHeader() {
	fmt.Printf("%8s %10s %10s %10s %10s %10s %10s %10s\n",
		"M", "T/T0", "p/p0", "rho/rho0", "A/A*", "nu", "mu", "mdot fn")
}

func printIsentropicRow(mach, gamma float64) {
	var (
		nu = math.NaN()
		mu = math.NaN()
	)
	if mach >= 1 {
		nu = isentropic.PMAngle(mach, gamma)
		mu = isentropic.MachAngle(mach)
	}
	fmt.Printf("%8.4f %10.6f %10.6f %10.6f %10.6f %10.6f %10.6f %10.6f\n",
		mach,
		isentropic.TT0(mach, gamma),
		isentropic.PP0(mach, gamma),
		isentropic.RhoRho0(mach, gamma),
		isentropic.AAc(mach, gamma),
		nu, mu,
		isentropic.MCpT0AP0(mach, gamma))
}
