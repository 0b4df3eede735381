// Package demo implements the random-tensor demonstration pipeline:
// generate a fixed-shape random tensor, convert it to a gonum matrix,
// and report both renderings.
package demo

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/hellotensor/internal/backend/cpu"
	"github.com/born-ml/hellotensor/internal/interop"
	"github.com/born-ml/hellotensor/internal/tensor"
)

// Labels for the two report blocks. The values under each label use the
// default rendering of the corresponding library type.
const (
	tensorLabel = "Random Tensor:"
	arrayLabel  = "Converted Gonum Matrix:"
)

// demoShape is the fixed shape every demo tensor uses.
var demoShape = tensor.Shape{3, 3}

// Config selects the demo variant and, optionally, a fixed random seed.
// The zero value runs the basic variant with unseeded generation.
type Config struct {
	Variant Variant
	Seed    uint64
	HasSeed bool
}

// Demo runs the pipeline generate → ToArray → Report exactly once per Run.
type Demo struct {
	collabs []string
	backend *cpu.CPUBackend
	src     rand.Source // nil when unseeded
}

// New creates a Demo and probes the variant's collaborator libraries.
// A collaborator that fails to initialize would panic here, before any
// output is produced.
func New(cfg Config) *Demo {
	variant := cfg.Variant
	if variant == "" {
		variant = VariantBasic
	}

	d := &Demo{
		collabs: probeCollaborators(variant),
		backend: cpu.New(),
	}
	if cfg.HasSeed {
		d.src = rand.NewSource(cfg.Seed)
	}
	return d
}

// Generate produces a 3×3 tensor of uniform [0, 1) values.
// Unseeded demos draw from the process-wide source; seeded demos advance
// their own source, so repeated calls still yield distinct tensors.
func (d *Demo) Generate() *tensor.Tensor[float64, *cpu.CPUBackend] {
	if d.src != nil {
		return tensor.RandWithSource[float64](demoShape, d.src, d.backend)
	}
	return tensor.Rand[float64](demoShape, d.backend)
}

// ToArray converts a tensor into its gonum matrix representation.
// Shape and values are identical at conversion time; the matrix owns a copy.
func (d *Demo) ToArray(t *tensor.Tensor[float64, *cpu.CPUBackend]) (*mat.Dense, error) {
	return interop.ToDense(t)
}

// Report writes the collaborator banner and both labeled renderings to w,
// tensor first. Write failures are returned as-is: the caller treats them
// as fatal.
func (d *Demo) Report(w io.Writer, t *tensor.Tensor[float64, *cpu.CPUBackend], m *mat.Dense) error {
	if _, err := fmt.Fprintf(w, "Using %s\n", joinNames(d.collabs)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n", tensorLabel, formatValues(t)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n%v\n", arrayLabel, mat.Formatted(m))
	return err
}

// Run executes the pipeline once. Errors propagate without retry.
func (d *Demo) Run(w io.Writer) error {
	t := d.Generate()

	m, err := d.ToArray(t)
	if err != nil {
		return fmt.Errorf("convert tensor: %w", err)
	}

	return d.Report(w, t, m)
}

// formatValues renders a 2-D tensor's values one row per line.
func formatValues(t *tensor.Tensor[float64, *cpu.CPUBackend]) string {
	shape := t.Shape()
	rows, cols := shape[0], shape[1]

	var sb strings.Builder
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		for j := 0; j < cols; j++ {
			row[j] = t.At(i, j)
		}
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%v", row)
	}
	return sb.String()
}

// joinNames renders a name list the way the banner reads it:
// "A and B" or "A, B, and C".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}
