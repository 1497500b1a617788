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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/compflow/shock"
)

// obliqueCmd represents the oblique command
var obliqueCmd = &cobra.Command{
	Use:   "oblique",
	Short: "Weak oblique shock relations",
	Long: `
Solves the theta-beta-Mach relation on the weak branch for the given
upstream Mach number and flow deflection, then prints the wave angle and
the downstream state,

compflow oblique -m 2 -t 0.1745`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			gamma = viper.GetFloat64("gamma")
		)
		mach, _ := cmd.Flags().GetFloat64("mach")
		theta, _ := cmd.Flags().GetFloat64("theta")
		printOblique(mach, gamma, theta)
	},
}

func init() {
	rootCmd.AddCommand(obliqueCmd)
	obliqueCmd.Flags().Float64P("mach", "m", 2.0, "upstream Mach number")
	obliqueCmd.Flags().Float64P("theta", "t", 0.0, "flow deflection angle in radians")
}

func printOblique(mach, gamma, theta float64) {
	beta := shock.ObliqueBeta(mach, gamma, theta)
	if math.IsNaN(beta) {
		fmt.Printf("no attached weak shock at M=%v, theta=%v (betaMax=%v)\n",
			mach, theta, shock.ObliqueBetaMax(mach, gamma))
		os.Exit(1)
	}
	fmt.Printf("%10.6f\t= M1\n", mach)
	fmt.Printf("%10.6f\t= theta\n", theta)
	fmt.Printf("%10.6f\t= beta\n", beta)
	fmt.Printf("%10.6f\t= betaMax\n", shock.ObliqueBetaMax(mach, gamma))
	fmt.Printf("%10.6f\t= M2\n", shock.ObliqueMach2(mach, gamma, theta))
	fmt.Printf("%10.6f\t= p02/p01\n", shock.ObliqueP02P01(mach, gamma, theta))
	fmt.Printf("%10.6f\t= p2/p1\n", shock.ObliqueP2P1(mach, gamma, theta))
	fmt.Printf("%10.6f\t= rho2/rho1\n", shock.ObliqueRho2Rho1(mach, gamma, theta))
	fmt.Printf("%10.6f\t= T2/T1\n", shock.ObliqueT2T1(mach, gamma, theta))
	fmt.Printf("%10.6f\t= a2/a1\n", shock.ObliqueA2A1(mach, gamma, theta))
}
