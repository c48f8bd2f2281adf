package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-waveform/dsp/core"
	"github.com/cwbudde/algo-waveform/dsp/signal"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, []float64{1, 0.5, -0.25}, []float64{0.9, 0.45, -0.2}))
	assert.Equal(t, "Index,Original,Filtered\n0,1,0.9\n1,0.5,0.45\n2,-0.25,-0.2\n", buf.String())
}

func TestWriteCSV_StopsAtShorterInput(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, []float64{1, 2, 3}, []float64{4}))
	assert.Equal(t, "Index,Original,Filtered\n0,1,4\n", buf.String())
}

func TestWriteCSV_EmptyWritesHeader(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, nil, nil))
	assert.Equal(t, "Index,Original,Filtered\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteCSV_PropagatesWriteError(t *testing.T) {
	err := WriteCSV(failingWriter{}, []float64{1}, []float64{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWriteWaveformCSV(t *testing.T) {
	var buf bytes.Buffer

	wf := core.Waveform{Samples: []float64{0.5, -1}, SampleRate: 4}
	require.NoError(t, WriteWaveformCSV(&buf, wf))
	assert.Equal(t, "Time (s),Amplitude\n0.000000,0.500000\n0.250000,-1.000000\n", buf.String())
}

func TestWritePointsCSV(t *testing.T) {
	var buf bytes.Buffer

	points := signal.Decimate([]float64{0, 0.5, 1, 0.5, 0}, 2)
	require.NoError(t, WritePointsCSV(&buf, points, 2))
	assert.Equal(t, "Index,Time (s),Value\n0,0.000000,0\n2,1.000000,1\n4,2.000000,0\n", buf.String())
}

func TestWritePointsCSV_NoSampleRate(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WritePointsCSV(&buf, []signal.Point{{Index: 3, Value: -1}}, 0))
	assert.Equal(t, "Index,Time (s),Value\n3,,-1\n", buf.String())
}
