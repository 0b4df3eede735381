package demo

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Variant selects which optional collaborator libraries the demo loads.
// The variants mirror the environments this tool is deployed into: the
// optional collaborators contribute nothing to the output, they only prove
// that the stack initializes cleanly together.
type Variant string

// Supported variants.
const (
	// VariantBasic loads only the collaborators the pipeline itself uses.
	VariantBasic Variant = "basic"
	// VariantScience additionally probes the distribution and random-source collaborators.
	VariantScience Variant = "science"
	// VariantFrames additionally probes the distribution collaborator.
	VariantFrames Variant = "frames"
)

// ParseVariant maps a CLI string onto a Variant.
// The empty string selects the basic variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case "":
		return VariantBasic, nil
	case VariantBasic, VariantScience, VariantFrames:
		return Variant(s), nil
	default:
		return "", fmt.Errorf("unknown variant %q (want basic, science, or frames)", s)
	}
}

// collaborator is an optional library the demo can load without using.
// probe initializes a throwaway value to verify the package is usable.
type collaborator struct {
	name  string
	probe func()
}

var (
	distuvCollab = collaborator{
		name: "Gonum/stat",
		probe: func() {
			u := distuv.Uniform{Min: 0, Max: 1}
			_ = u.Mean()
		},
	}

	exprandCollab = collaborator{
		name: "x/exp/rand",
		probe: func() {
			src := rand.NewSource(1)
			_ = src.Uint64()
		},
	}
)

// probeCollaborators runs the variant's probes and returns the banner names,
// core collaborators first. The core pair is always present: the tensor
// library generates the values and Gonum/mat holds the converted array.
func probeCollaborators(v Variant) []string {
	names := []string{"Tensor", "Gonum/mat"}

	var extra []collaborator
	switch v {
	case VariantScience:
		extra = []collaborator{distuvCollab, exprandCollab}
	case VariantFrames:
		extra = []collaborator{distuvCollab}
	}

	for _, c := range extra {
		c.probe()
		names = append(names, c.name)
	}
	return names
}
