package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML case file. Panel corners arrive as plain
// [x y] pairs in convention order P1..P4; there is no mesh file format.
type CaseParameters struct {
	Title       string          `yaml:"Title"`
	Gamma       float64         `yaml:"Gamma"`       // reporting circulation, defaults to 1
	ProcLimit   int             `yaml:"ProcLimit"`   // parallel degree cap, 0 means all CPUs
	Panels      [][4][2]float64 `yaml:"Panels"`      // corner quadruples, clockwise P1..P4
	FieldPoints [][2]float64    `yaml:"FieldPoints"` // optional velocity survey points
	Gammas      []float64       `yaml:"Gammas"`      // optional per panel circulations for the survey
}

func (cp *CaseParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, cp); err != nil {
		return
	}
	if cp.Gamma == 0. {
		cp.Gamma = 1.
	}
	if len(cp.Gammas) != 0 && len(cp.Gammas) != len(cp.Panels) {
		err = fmt.Errorf("Gammas has %d entries for %d panels", len(cp.Gammas), len(cp.Panels))
	}
	return
}

func (cp *CaseParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("%8.5f\t\t= Gamma\n", cp.Gamma)
	fmt.Printf("[%d]\t\t\t= ProcLimit\n", cp.ProcLimit)
	fmt.Printf("[%d]\t\t\t= Panels\n", len(cp.Panels))
	fmt.Printf("[%d]\t\t\t= FieldPoints\n", len(cp.FieldPoints))
	if len(cp.Gammas) != 0 {
		fmt.Printf("%v\t= Gammas\n", cp.Gammas)
	}
}

// SurveyGammas is the circulation vector used for field point surveys: the
// per panel Gammas when given, else Gamma replicated across all panels.
func (cp *CaseParameters) SurveyGammas() (gammas []float64) {
	if len(cp.Gammas) != 0 {
		gammas = cp.Gammas
		return
	}
	gammas = make([]float64, len(cp.Panels))
	for i := range gammas {
		gammas[i] = cp.Gamma
	}
	return
}
