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
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/symfem/shape"
	"github.com/notargets/symfem/utils"
)

// ElementCmd represents the element command
var ElementCmd = &cobra.Command{
	Use:   "element",
	Short: "Print the shape functions and reference matrices of an element",
	Long: `
Builds the shape functions of a reference element symbolically and prints them
with the stiffness and mass matrices integrated exactly over the reference
domain, or with Gauss quadrature when --quadrature is given.

symfem element -t Triangle6`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			et shape.ElementType
		)
		if et, err = shape.NewElementType(viper.GetString("element.type")); err != nil {
			return
		}
		return RunElement(et, viper.GetBool("element.quadrature"), cmd.OutOrStdout())
	},
}

func RunElement(et shape.ElementType, useQuadrature bool, w io.Writer) (err error) {
	var (
		el   *shape.Element
		K, M utils.Matrix
	)
	if el, err = shape.NewElement(et); err != nil {
		return
	}
	fmt.Fprintf(w, "%v: %d nodes, order %d\n", et, et.GetNumNodes(), et.GetOrder())
	for i, N := range el.N {
		fmt.Fprintf(w, "N[%d] at %v = %v\n", i, el.Nodes[i], N)
	}
	integrate := el.IntegrateExact
	if useQuadrature {
		integrate = el.IntegrateQuadrature
	}
	Ki, err := el.StiffnessIntegrand()
	if err != nil {
		return
	}
	if K, err = integrate(Ki); err != nil {
		return
	}
	Mi, err := el.MassIntegrand()
	if err != nil {
		return
	}
	if M, err = integrate(Mi); err != nil {
		return
	}
	fmt.Fprintf(w, "Stiffness =\n%v\nMass =\n%v\n", K, M)
	return
}

func init() {
	rootCmd.AddCommand(ElementCmd)
	ElementCmd.Flags().StringP("type", "t", shape.Quad.String(), "element type: Line, Line3, Triangle, Quad, Triangle6, Quad9")
	ElementCmd.Flags().BoolP("quadrature", "q", false, "integrate with Gauss quadrature instead of exact symbolic integration")
	mustBind("element.type", ElementCmd.Flags().Lookup("type"))
	mustBind("element.quadrature", ElementCmd.Flags().Lookup("quadrature"))
}
