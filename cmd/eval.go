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

	"github.com/notargets/symfem/InputParameters"
)

const exampleFile = `
########################################
Title: "Test Case"
Strict: true
Polynomials:
  p: {"": 1, "x": 2, "y": 3, "xy": 4, "xxy": 5}
  q: {"x": 2, "xy": 4}
Matrices:
  A: [[p, q]]
  B: [[p], [q]]
Point: {"x": 2, "y": 1} # quote single letter keys
Operations:
  - {Op: differentiate, Args: [p], Var: "x", Result: dp}
  - {Op: mult, Args: [p, q]}
  - {Op: multmat, Args: [A, B], Result: AB}
  - {Op: evaluate, Args: [dp, AB]}
########################################
`

// EvalCmd represents the eval command
var EvalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Run the operations of a YAML problem file",
	Long: `
Reads polynomials, matrices of polynomials and an evaluation point from a YAML
problem file and runs its operations in order, printing the results.

symfem eval -P problem.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.Problem
		)
		if ip, err = readProblem(viper.GetString("eval.problem")); err != nil {
			return
		}
		if viper.GetBool("verbose") {
			ip.Print(cmd.OutOrStdout())
		}
		return RunProblem(ip, cmd.OutOrStdout())
	},
}

func readProblem(fileName string) (ip *InputParameters.Problem, err error) {
	if len(fileName) == 0 {
		err = fmt.Errorf("must supply a problem file (-P, --problem) in YAML format, for example:%s", exampleFile)
		return
	}
	var data []byte
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	ip = &InputParameters.Problem{}
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return
}

func init() {
	rootCmd.AddCommand(EvalCmd)
	EvalCmd.Flags().StringP("problem", "P", "", "YAML problem file with Polynomials, Matrices, Point and Operations")
	mustBind("eval.problem", EvalCmd.Flags().Lookup("problem"))
}
