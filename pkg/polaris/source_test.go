package polaris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStellarSourceCommandLine(t *testing.T) {
	s := NewStellarSource(nil, nil)

	line, err := s.Command()
	require.NoError(t, err)
	assert.Equal(t, "\t<source_star nr_photons = \"1e+06\">\t0\t0\t0\t1\t5778\n", line)
}

func TestStellarSourcePhotonsArg(t *testing.T) {
	s := NewStellarSource(nil, &Args{Photons: 5e7})
	s.Params.Position = Vector{1.5e11, 0, 0}

	line, err := s.Command()
	require.NoError(t, err)
	assert.Equal(t, "\t<source_star nr_photons = \"5e+07\">\t1.5e+11\t0\t0\t1\t5778\n", line)
}

func TestStellarSourceKepler(t *testing.T) {
	s := NewStellarSource(nil, nil)
	s.Params.Mass = 0.7
	s.Params.KeplerUsable = true

	mass, ok := s.KeplerStarMass()
	assert.True(t, ok)
	assert.Equal(t, 0.7, mass)
}

func TestStellarSourceMultipleStars(t *testing.T) {
	s := NewStellarSource(nil, nil)

	out, err := s.Commands(
		func(p *StarParams) {
			p.Temperature = 8000
			p.Radius = 4
		},
		func(p *StarParams) {
			p.Temperature = 5000
			p.Radius = 3
		},
	)
	require.NoError(t, err)
	assert.Equal(t,
		"\t<source_star nr_photons = \"1e+06\">\t0\t0\t0\t4\t8000\n"+
			"\t<source_star nr_photons = \"1e+06\">\t0\t0\t0\t3\t5000\n", out)
	assert.Equal(t, 5778.0, s.Params.Temperature)
	assert.Equal(t, 2, strings.Count(out, "<source_star"))
}
