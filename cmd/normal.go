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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/compflow/shock"
)

// normalCmd represents the normal command
var normalCmd = &cobra.Command{
	Use:   "normal",
	Short: "Normal shock jump relations",
	Long: `
Prints the flow state downstream of a normal shock at the given upstream
Mach number,

compflow normal -m 2`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			gamma = viper.GetFloat64("gamma")
		)
		mach, _ := cmd.Flags().GetFloat64("mach")
		if mach < 1 {
			fmt.Printf("error: upstream Mach number must be at least 1, got %v\n", mach)
			os.Exit(1)
		}
		printNormal(mach, gamma)
	},
}

func init() {
	rootCmd.AddCommand(normalCmd)
	normalCmd.Flags().Float64P("mach", "m", 2.0, "upstream Mach number")
}

func printNormal(mach, gamma float64) {
	fmt.Printf("%10.6f\t= M1\n", mach)
	fmt.Printf("%10.6f\t= M2\n", shock.NormalMach2(mach, gamma))
	fmt.Printf("%10.6f\t= p02/p01\n", shock.NormalP02P01(mach, gamma))
	fmt.Printf("%10.6f\t= p2/p1\n", shock.NormalP2P1(mach, gamma))
	fmt.Printf("%10.6f\t= rho2/rho1\n", shock.NormalRho2Rho1(mach, gamma))
	fmt.Printf("%10.6f\t= T2/T1\n", shock.NormalT2T1(mach, gamma))
	fmt.Printf("%10.6f\t= a2/a1\n", shock.NormalA2A1(mach, gamma))
}
