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
	"time"

	"github.com/pkg/profile"

	"github.com/notargets/govlm/InputParameters"
	"github.com/notargets/govlm/geometry2D"
	"github.com/notargets/govlm/lattice"
	"github.com/notargets/govlm/panel"
	"github.com/notargets/govlm/utils"

	"github.com/spf13/cobra"
)

type ModelVLM struct {
	CaseFile  string
	ProcLimit int
	ShowCond  bool
	Profile   bool
}

// LatticeCmd represents the lattice command
var LatticeCmd = &cobra.Command{
	Use:   "lattice",
	Short: "Vortex lattice assembly: panel geometry, horseshoe vortices and the influence matrix",
	Long: `
Reads a YAML case file listing panel corner points, places a horseshoe vortex
and control point in every panel, assembles the influence coefficient matrix
in parallel and optionally surveys induced velocities at field points,

govlm lattice -I case.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("lattice called")
		mv := &ModelVLM{}
		if mv.CaseFile, err = cmd.Flags().GetString("caseFile"); err != nil {
			panic(err)
		}
		mv.ProcLimit, _ = cmd.Flags().GetInt("procLimit")
		mv.ShowCond, _ = cmd.Flags().GetBool("cond")
		mv.Profile, _ = cmd.Flags().GetBool("profile")
		cp := processInput(mv)
		RunLattice(mv, cp)
	},
}

func processInput(mv *ModelVLM) (cp *InputParameters.CaseParameters) {
	var (
		err error
	)
	if len(mv.CaseFile) == 0 {
		err := fmt.Errorf("must supply a case file (-I, --caseFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Single Panel"
Gamma: 1.
Panels:
  - [[1, 0], [0, 0], [0, 1], [1, 1]]
FieldPoints:
  - [10, 0.5]
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(mv.CaseFile); err != nil {
		panic(err)
	}
	cp = &InputParameters.CaseParameters{}
	if err = cp.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(LatticeCmd)
	LatticeCmd.Flags().StringP("caseFile", "I", "", "YAML case file listing:\n\t- Panels (corner quadruples)\n\t- FieldPoints (velocity survey)")
	LatticeCmd.Flags().IntP("procLimit", "p", 0, "limit the number of parallel procs used for assembly, overrides the case file")
	LatticeCmd.Flags().Bool("cond", false, "print the influence matrix condition number")
	LatticeCmd.Flags().Bool("profile", false, "write a CPU profile of the run")
}

func RunLattice(mv *ModelVLM, cp *InputParameters.CaseParameters) {
	cp.Print()
	panels, err := buildPanels(cp)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	procLimit := cp.ProcLimit
	if mv.ProcLimit > 0 {
		procLimit = mv.ProcLimit
	}
	lt := lattice.New(panels, procLimit)
	if err = printGeometry(lt); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if mv.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	start := time.Now()
	AIC, err := lt.InfluenceMatrix()
	elapsed := time.Now().Sub(start)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	N := len(lt.Panels)
	rate := float64(elapsed.Microseconds()) / float64(N*N)
	fmt.Printf("\nInfluence matrix %d x %d assembled in %s on %d procs\n",
		N, N, elapsed, lt.ParallelDegree)
	fmt.Printf("Rate of assembly = %8.5f us/entry\n", rate)
	fmt.Printf("%s\n", utils.GetMemUsage())
	if N <= 8 {
		AIC.Print("AIC")
	}
	if mv.ShowCond {
		fmt.Printf("AIC condition number = %11.4e\n", AIC.ConditionNumber())
	}
	surveyFieldPoints(lt, cp)
}

func buildPanels(cp *InputParameters.CaseParameters) (panels []panel.Panel, err error) {
	panels = make([]panel.Panel, len(cp.Panels))
	for i, quad := range cp.Panels {
		var corners [4]geometry2D.Point
		for n, xy := range quad {
			corners[n] = geometry2D.Point{X: xy[0], Y: xy[1]}
		}
		if panels[i], err = panel.NewPanel(corners[0], corners[1], corners[2], corners[3]); err != nil {
			err = fmt.Errorf("panel %d: %w", i, err)
			return
		}
	}
	return
}

func printGeometry(lt *lattice.Lattice) (err error) {
	bb := lt.PlanformBounds()
	if bb != nil {
		fmt.Printf("Planform extent: (%8.5f, %8.5f) to (%8.5f, %8.5f)\n",
			bb.Min.X, bb.Min.Y, bb.Max.X, bb.Max.Y)
	}
	fmt.Printf("panel        area        span      control point\n")
	for i, p := range lt.Panels {
		var (
			b  float64
			pc geometry2D.Point
		)
		if b, err = p.Span(); err != nil {
			err = fmt.Errorf("panel %d: %w", i, err)
			return
		}
		if pc, err = p.ControlPoint(); err != nil {
			err = fmt.Errorf("panel %d: %w", i, err)
			return
		}
		fmt.Printf("%5d %11.4e %11.4e (%8.5f, %8.5f)\n", i, p.Area(), b, pc.X, pc.Y)
	}
	return
}

func surveyFieldPoints(lt *lattice.Lattice, cp *InputParameters.CaseParameters) {
	if len(cp.FieldPoints) == 0 {
		return
	}
	gammas := utils.NewVector(len(lt.Panels), cp.SurveyGammas())
	fmt.Printf("\nfield point                     U           V           W\n")
	for _, xy := range cp.FieldPoints {
		fp := geometry2D.Point{X: xy[0], Y: xy[1]}
		vel, err := lt.InducedVelocityAt(fp, gammas)
		if err != nil {
			fmt.Printf("(%8.5f, %8.5f)  %s\n", fp.X, fp.Y, err.Error())
			continue
		}
		fmt.Printf("(%8.5f, %8.5f) %11.4e %11.4e %11.4e\n", fp.X, fp.Y, vel.U, vel.V, vel.W)
	}
}
