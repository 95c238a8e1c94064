package circuit

import (
	"fmt"
	"strings"

	"github.com/lowqbit/readout/basis"
)

// GateKind identifies a gate type. Deterministic state preparation only needs
// the bit-flip; the type exists so prepared circuits stay self-describing.
type GateKind int

const (
	// GateX is the Pauli-X bit-flip.
	GateX GateKind = iota
)

// Gate is a single-qubit operation placed on the circuit.
type Gate struct {
	Kind   GateKind
	Target int
}

// Circuit is an ordered list of preparation gates over a fixed register,
// optionally terminated by a measurement of every qubit. The zero value is
// not usable; construct with New.
type Circuit struct {
	qubits     int
	gates      []Gate
	measureAll bool
}

// New returns an empty circuit over n qubits.
// Errors: basis.ErrQubitCount.
func New(n int) (*Circuit, error) {
	if err := basis.ValidateQubits(n); err != nil {
		return nil, err
	}
	return &Circuit{qubits: n}, nil
}

// Qubits returns the register size.
func (c *Circuit) Qubits() int { return c.qubits }

// Gates returns a copy of the gate sequence.
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)
	return out
}

// MeasuresAll reports whether the circuit ends in a full measurement.
func (c *Circuit) MeasuresAll() bool { return c.measureAll }

// X appends a bit-flip on qubit k.
// Errors: ErrQubitIndex.
func (c *Circuit) X(k int) error {
	if k < 0 || k >= c.qubits {
		return ErrQubitIndex
	}
	c.gates = append(c.gates, Gate{Kind: GateX, Target: k})
	return nil
}

// MeasureAll terminates the circuit with a measurement of every qubit.
func (c *Circuit) MeasureAll() { c.measureAll = true }

// PreparedIndex returns the basis index the circuit prepares when applied to
// the all-zero state: each X on qubit k toggles bit k of the index.
func (c *Circuit) PreparedIndex() int {
	idx := 0
	for _, g := range c.gates {
		if g.Kind == GateX {
			idx ^= 1 << uint(g.Target)
		}
	}
	return idx
}

// QASM serializes the circuit as an OpenQASM 2.0 program. Classical bit c[k]
// receives the measurement of qubit q[k], so result bit-labels read
// most-significant qubit first, matching basis.IndexToLabel.
func (c *Circuit) QASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.qubits)
	fmt.Fprintf(&sb, "creg c[%d];\n\n", c.qubits)

	for _, g := range c.gates {
		switch g.Kind {
		case GateX:
			fmt.Fprintf(&sb, "x q[%d];\n", g.Target)
		}
	}
	if c.measureAll {
		for k := 0; k < c.qubits; k++ {
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", k, k)
		}
	}
	return sb.String()
}
