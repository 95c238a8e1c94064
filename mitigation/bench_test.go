package mitigation_test

import (
	"testing"

	"github.com/lowqbit/readout/basis"
	"github.com/lowqbit/readout/mitigation"
)

// BenchmarkMitigate measures one correction on a 4-qubit (16x16) identity
// engine, the path a stable matrix takes on every call.
func BenchmarkMitigate(b *testing.B) {
	const n = 4
	mit, err := mitigation.New(n)
	if err != nil {
		b.Fatal(err)
	}
	results := make([]basis.Counts, basis.Dim(n))
	for j := range results {
		label, lerr := basis.IndexToLabel(j, n)
		if lerr != nil {
			b.Fatal(lerr)
		}
		results[j] = basis.Counts{label: 4096}
	}
	if err = mit.BuildMatrix(results); err != nil {
		b.Fatal(err)
	}
	noisy := basis.Counts{"0000": 1000, "0101": 1000, "1010": 1000, "1111": 1096}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = mit.Mitigate(noisy); err != nil {
			b.Fatal(err)
		}
	}
}
