package ezopt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionGroup_GettersDefault(t *testing.T) {
	group, err := NewGroup(
		WithFlags("-d", "--dimension"),
		WithExpectArgs(3),
		WithDelimiter(','),
		WithDefault("640,480,1.5"))
	require.NoError(t, err)

	assert.Equal(t, "-d", group.Name())
	assert.False(t, group.IsSet())
	assert.Equal(t, int64(640), group.GetInt64())
	assert.Equal(t, []int64{640, 480, 1}, group.GetInt64s())
	assert.Equal(t, [][]int64{{640, 480, 1}}, group.GetMultiInt64s())
	assert.Equal(t, []float64{640, 480, 1.5}, group.GetDoubles())
	assert.Equal(t, []float32{640, 480, 1.5}, group.GetFloats())
	assert.Equal(t, "640,480,1.5", group.GetString())
	assert.Equal(t, []string{"640", "480", "1.5"}, group.GetStrings())
	assert.Equal(t, [][]string{{"640", "480", "1.5"}}, group.GetMultiStrings())
}

func TestOptionGroup_GettersSet(t *testing.T) {
	p, err := NewParserWith(
		WithGroup(
			WithFlags("-d"),
			WithExpectArgs(Unbounded),
			WithDelimiter(','),
			WithDefault("9,9")),
		WithGroup(
			WithFlags("-r"),
			WithExpectArgs(1),
			WithDefault("0.25")))
	require.NoError(t, err)
	require.True(t, p.Parse([]string{"prog", "-d", "1,2", "-r", "0x10", "-d", "3"}))

	d := p.Get("-d")
	assert.Equal(t, int64(1), d.GetInt64())
	assert.Equal(t, []int64{1, 2}, d.GetInt64s())
	assert.Equal(t, [][]int64{{1, 2}, {3}}, d.GetMultiInt64s())
	assert.Equal(t, [][]float64{{1, 2}, {3}}, d.GetMultiDoubles())
	assert.Equal(t, [][]float32{{1, 2}, {3}}, d.GetMultiFloats())
	assert.Equal(t, "1", d.GetString())
	assert.Equal(t, [][]string{{"1", "2"}, {"3"}}, d.GetMultiStrings())

	r := p.Get("-r")
	assert.Equal(t, int64(16), r.GetInt64())
	assert.Equal(t, float64(16), r.GetDouble())
}

func TestOptionGroup_GettersMalformed(t *testing.T) {
	p, err := NewParserWith(WithGroup(WithFlags("-n"), WithExpectArgs(1)))
	require.NoError(t, err)
	require.True(t, p.Parse([]string{"prog", "-n", "abc"}))

	n := p.Get("-n")
	assert.Equal(t, int64(0), n.GetInt64())
	assert.Equal(t, float32(0), n.GetFloat())
	assert.False(t, n.GetBool())
	assert.True(t, n.GetTime().IsZero())
}

func TestOptionGroup_GettersEmptyDefault(t *testing.T) {
	group, err := NewGroup(WithFlags("-o"), WithExpectArgs(1))
	require.NoError(t, err)

	assert.Equal(t, "", group.GetString())
	assert.Equal(t, int64(0), group.GetInt64())
	assert.Empty(t, group.GetStrings())
	assert.Equal(t, [][]string{}, group.GetMultiStrings())
}

func TestOptionGroup_GetBool(t *testing.T) {
	tests := []struct {
		name string
		args []string
		flag string
		want bool
	}{
		{name: "flag only set", args: []string{"prog", "-v"}, flag: "-v", want: true},
		{name: "flag only unset", args: []string{"prog"}, flag: "-v", want: false},
		{name: "default true", args: []string{"prog"}, flag: "--color", want: true},
		{name: "value false", args: []string{"prog", "--color", "false"}, flag: "--color", want: false},
		{name: "value 1", args: []string{"prog", "--color", "1"}, flag: "--color", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParserWith(
				WithGroup(WithFlags("-v")),
				WithGroup(WithFlags("--color"), WithExpectArgs(1), WithDefault("true")))
			require.NoError(t, err)
			require.True(t, p.Parse(tt.args))

			assert.Equal(t, tt.want, p.Get(tt.flag).GetBool())
		})
	}
}

func TestOptionGroup_GetTime(t *testing.T) {
	p, err := NewParserWith(
		WithGroup(
			WithFlags("--since"),
			WithExpectArgs(Unbounded),
			WithDelimiter(';'),
			WithDefault("2024-01-02")))
	require.NoError(t, err)

	since := p.Get("--since")
	assert.True(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).Equal(since.GetTime()))

	require.True(t, p.Parse([]string{"prog", "--since", "2023-05-06 07:08:09;2023-05-07"}))
	times := since.GetTimes()
	require.Len(t, times, 2)
	assert.True(t, time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC).Equal(times[0]))
	assert.True(t, time.Date(2023, 5, 7, 0, 0, 0, 0, time.UTC).Equal(times[1]))
}

func TestOptionGroup_ArgsAreCopies(t *testing.T) {
	p, err := NewParserWith(WithGroup(WithFlags("-t"), WithExpectArgs(1)))
	require.NoError(t, err)
	require.True(t, p.Parse([]string{"prog", "-t", "a"}))

	args := p.Get("-t").Args()
	args[0][0] = "changed"
	assert.Equal(t, "a", p.Get("-t").GetString())

	flags := p.Get("-t").Flags()
	flags[0] = "-x"
	assert.Equal(t, "-t", p.Get("-t").Name())
}
