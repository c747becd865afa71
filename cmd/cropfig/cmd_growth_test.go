package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuanyuanMa03/crop-model-figure/internal/recorder"
)

func TestLoadGtwSeries(t *testing.T) {
	dir := t.TempDir()
	rec := recorder.New()
	require.NoError(t, rec.Record("GTW", []float64{0, 1, 2}, []float64{5, 10, 8}))
	require.NoError(t, rec.Record("other", []float64{0}, []float64{99}))
	path, err := rec.Save(dir, "season")
	require.NoError(t, err)

	days, gtw, err := loadGtwSeries(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, days)
	assert.Equal(t, []float64{5, 10, 8}, gtw)
}

func TestLoadGtwSeriesMissingSeries(t *testing.T) {
	dir := t.TempDir()
	rec := recorder.New()
	require.NoError(t, rec.Record("other", []float64{0}, []float64{1}))
	path, err := rec.Save(dir, "season")
	require.NoError(t, err)

	_, _, err = loadGtwSeries(path)
	assert.Error(t, err)
}

func TestLoadGtwSeriesMissingFile(t *testing.T) {
	_, _, err := loadGtwSeries(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}
