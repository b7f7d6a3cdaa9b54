package polaris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDustCommandLine(t *testing.T) {
	d := NewDust(&FileIO{InputDir: "/opt/polaris/input"}, nil)

	line, err := d.Command()
	require.NoError(t, err)
	assert.Equal(t, "\t<dust_component>\t\"/opt/polaris/input/dust/silicate.dat\"\t\"plaw\"\t1\t3500\t5e-09\t2.5e-07\t-3.5\n", line)
}

func TestDustSizeParameters(t *testing.T) {
	d := NewDust(nil, nil)
	d.Params.SizeKeyword = SizeLogNormal
	d.Params.SizeParameter = []float64{1e-7, 0.2}

	line, err := d.CommandLine()
	require.NoError(t, err)
	assert.Equal(t, "\t<dust_component>\t\"dust/silicate.dat\"\t\"logn\"\t1\t3500\t5e-09\t2.5e-07\t1e-07\t0.2\n", line)
}

func TestDustCatalogPath(t *testing.T) {
	tests := []struct {
		name     string
		inputDir string
		file     string
		want     string
	}{
		{name: "relative", inputDir: "/polaris/input", file: "custom.dat", want: "/polaris/input/custom.dat"},
		{name: "absolute", inputDir: "/polaris/input", file: "/data/custom.dat", want: "/data/custom.dat"},
		{name: "no input dir", file: "custom.dat", want: "custom.dat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDust(&FileIO{InputDir: tt.inputDir}, nil)
			d.Params.CatalogFile = tt.file
			assert.Equal(t, tt.want, d.CatalogPath())
		})
	}
}
