package bridge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/framehaus/cadbridge/internal/cadwork"
)

func TestArgsNumbers(t *testing.T) {
	args := Args{"width": 120.0, "count": 3.0, "bad": "x", "frac": 1.5}

	f, err := args.Float("width")
	require.NoError(t, err)
	require.Equal(t, 120.0, f)

	_, err = args.Float("missing")
	require.Error(t, err)
	_, err = args.Float("bad")
	require.Error(t, err)

	n, err := args.Int("count")
	require.NoError(t, err)
	require.Equal(t, 3, n)
	_, err = args.Int("frac")
	require.Error(t, err)

	f, err = args.FloatDefault("missing", 7)
	require.NoError(t, err)
	require.Equal(t, 7.0, f)

	_, err = args.PositiveFloat("frac")
	require.NoError(t, err)
	_, err = Args{"v": -1.0}.PositiveFloat("v")
	require.Error(t, err)
}

func TestArgsElementIDs(t *testing.T) {
	ids, err := Args{"element_ids": []any{1.0, 2.0, 3.0}}.ElementIDs("element_ids")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, ids)

	ids, err = Args{}.ElementIDs("element_ids")
	require.NoError(t, err)
	require.Nil(t, ids)

	_, err = Args{"element_ids": []any{-1.0}}.ElementIDs("element_ids")
	require.Error(t, err)
	_, err = Args{"element_ids": []any{1.5}}.ElementIDs("element_ids")
	require.Error(t, err)
	_, err = Args{"element_ids": "1,2"}.ElementIDs("element_ids")
	require.Error(t, err)

	_, err = Args{"element_ids": []any{}}.RequiredElementIDs("element_ids")
	require.Error(t, err)
}

func TestArgsStringsAndBools(t *testing.T) {
	args := Args{"name": "KVH 120x240", "blank": "  ", "flag": true}

	s, err := args.String("name")
	require.NoError(t, err)
	require.Equal(t, "KVH 120x240", s)
	_, err = args.String("blank")
	require.Error(t, err)

	s, err = args.StringDefault("missing", "fallback")
	require.NoError(t, err)
	require.Equal(t, "fallback", s)

	b, err := args.BoolDefault("flag", false)
	require.NoError(t, err)
	require.True(t, b)
	b, err = args.BoolDefault("missing", true)
	require.NoError(t, err)
	require.True(t, b)
}

func TestArgsPoints(t *testing.T) {
	args := Args{
		"p1":       []any{0.0, 0.0, 0.0},
		"p2":       []any{1000.0, 0.0, 0.0},
		"vertices": []any{[]any{0.0, 0.0, 0.0}, []any{100.0, 0.0, 0.0}},
	}

	p, err := args.Point("p2")
	require.NoError(t, err)
	require.Equal(t, cadwork.Point{X: 1000}, p)

	opt, err := args.OptionalPoint("p3")
	require.NoError(t, err)
	require.Nil(t, opt)

	pts, err := args.Points("vertices")
	require.NoError(t, err)
	require.Len(t, pts, 2)
}

func TestArgsDecode(t *testing.T) {
	args := Args{"file_path": "/tmp/out.step", "step_version": "AP242", "precision": 0.5}
	opts := struct {
		FilePath    string  `json:"file_path"`
		StepVersion string  `json:"step_version"`
		Precision   float64 `json:"precision"`
		Units       string  `json:"units"`
	}{StepVersion: "AP214", Units: "mm", Precision: 0.01}

	require.NoError(t, args.Decode(&opts))
	require.Equal(t, "/tmp/out.step", opts.FilePath)
	require.Equal(t, "AP242", opts.StepVersion)
	require.Equal(t, 0.5, opts.Precision)
	require.Equal(t, "mm", opts.Units)
}
