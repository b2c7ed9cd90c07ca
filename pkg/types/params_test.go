package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultParameters(t *testing.T) {
	cbc := DefaultParameters(AesCbc)
	assert.Equal(t, CipherParameters{
		Algorithm:  AesCbc,
		SaltLength: 32,
		IVLength:   16,
		Iterations: 100000,
		KeyLength:  32,
	}, cbc)
	assert.NoError(t, cbc.Validate())

	gcm := DefaultParameters(AesGcm)
	assert.Equal(t, 12, gcm.IVLength)
	assert.NoError(t, gcm.Validate())
}

func TestHardenedParameters(t *testing.T) {
	p := HardenedParameters()
	assert.Equal(t, AesGcm, p.Algorithm)
	assert.Equal(t, HardenedIterations, p.Iterations)
	assert.NoError(t, p.Validate())
}

// Each bound is violated independently so a failure pinpoints the
// check that regressed.
func TestCipherParameters_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *CipherParameters)
	}{
		{
			name:   "salt below minimum",
			mutate: func(p *CipherParameters) { p.SaltLength = 15 },
		},
		{
			name:   "salt above maximum",
			mutate: func(p *CipherParameters) { p.SaltLength = 65 },
		},
		{
			name:   "iterations below minimum",
			mutate: func(p *CipherParameters) { p.Iterations = 9999 },
		},
		{
			name:   "iterations above maximum",
			mutate: func(p *CipherParameters) { p.Iterations = 1000001 },
		},
		{
			name:   "unsupported key length",
			mutate: func(p *CipherParameters) { p.KeyLength = 20 },
		},
		{
			name:   "iv length mismatched to cbc",
			mutate: func(p *CipherParameters) { p.IVLength = 12 },
		},
		{
			name: "iv length mismatched to gcm",
			mutate: func(p *CipherParameters) {
				p.Algorithm = AesGcm
				p.IVLength = 16
			},
		},
		{
			name:   "unknown algorithm",
			mutate: func(p *CipherParameters) { p.Algorithm = Algorithm(99) },
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params := DefaultParameters(AesCbc)
			test.mutate(&params)
			err := params.Validate()
			assert.Error(t, err)
			assert.IsType(t, InvalidParametersError{}, err)
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input     string
		expected  Algorithm
		shouldErr bool
	}{
		{input: "aes-cbc", expected: AesCbc},
		{input: "cbc", expected: AesCbc},
		{input: "AES-GCM", expected: AesGcm},
		{input: " gcm ", expected: AesGcm},
		{input: "aes-ctr", shouldErr: true},
		{input: "", shouldErr: true},
	}

	for _, test := range tests {
		a, err := ParseAlgorithm(test.input)
		if test.shouldErr {
			assert.Error(t, err)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, test.expected, a)
	}
}
