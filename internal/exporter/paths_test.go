package exporter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		ext  string
		want string
	}{
		{name: "replace extension", path: "run.mpt", ext: ".csv", want: "run.csv"},
		{name: "path with directories", path: "/data/runs/cv.mpr", ext: ".xlsx", want: "/data/runs/cv.xlsx"},
		{name: "no extension", path: "run", ext: ".csv", want: "run.csv"},
		{name: "only last extension stripped", path: "run.v2.mps", ext: ".csv", want: "run.v2.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivePath(tt.path, tt.ext))
		})
	}
}

func TestDerivePathDeterministic(t *testing.T) {
	first := DerivePath("experiment.mps", ".csv")
	second := DerivePath("experiment.mps", ".csv")
	assert.Equal(t, first, second)
}

func TestDeriveIndexedPath(t *testing.T) {
	assert.Equal(t, "run_01.csv", DeriveIndexedPath("run.mps", 1, ".csv"))
	assert.Equal(t, "run_02.csv", DeriveIndexedPath("run.mps", 2, ".csv"))
	assert.Equal(t, "run_10.csv", DeriveIndexedPath("run.mps", 10, ".csv"))
	assert.Equal(t, "/data/run_03.xlsx", DeriveIndexedPath("/data/run.mps", 3, ".xlsx"))
}

func TestDeriveIndexedPathStrictlyIncreasing(t *testing.T) {
	for i := 1; i <= 9; i++ {
		got := DeriveIndexedPath("run.mps", i, ".csv")
		assert.Equal(t, fmt.Sprintf("run_0%d.csv", i), got)
	}
}
