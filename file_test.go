package ezopt

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/napalu/ezopt/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exportArgs = []string{
	"prog", "first arg",
	"--name", "hello world",
	"-d", "1,2,3",
	"-v",
	"--tag", "a # b",
	"file.txt",
}

func TestParser_ExportFile(t *testing.T) {
	tests := []struct {
		name string
		all  bool
		want string
	}{
		{
			name: "seen groups",
			want: "\"first arg\" \n-d 1,2,3\n-n \"hello world\"\n-v\n--tag \"a # b\"\nfile.txt ",
		},
		{
			name: "with defaults",
			all:  true,
			want: "\"first arg\" \n-d 1,2,3\n-n \"hello world\"\n-v\n--level 3\n--tag \"a # b\"\nfile.txt ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t)
			require.True(t, p.Parse(exportArgs))

			var buf bytes.Buffer
			require.NoError(t, p.ExportFile(&buf, tt.all))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestParser_ExportImportRoundTrip(t *testing.T) {
	p := newTestParser(t)
	require.True(t, p.Parse(exportArgs))

	var exported bytes.Buffer
	require.NoError(t, p.ExportFile(&exported, false))

	imported := newTestParser(t)
	require.NoError(t, imported.ImportFile(strings.NewReader(exported.String())))

	assert.Equal(t, "hello world", imported.Get("--name").GetString())
	assert.Equal(t, []int64{1, 2, 3}, imported.Get("--dimension").GetInt64s())
	assert.True(t, imported.IsSet("-v"))
	assert.Equal(t, "a # b", imported.Get("--tag").GetString())
	assert.False(t, imported.IsSet("--level"))
	assert.Equal(t, []string{"first arg"}, imported.FirstArgs())
	assert.Equal(t, []string{"file.txt"}, imported.LastArgs())

	var again bytes.Buffer
	require.NoError(t, imported.ExportFile(&again, false))
	assert.Equal(t, exported.String(), again.String())
}

func TestParser_ExportImportEdgeValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "empty value",
			args: []string{"prog", "--name", "", "--tag", "x"},
			want: "-n \"\"\n--tag x\n",
		},
		{
			name: "apostrophe",
			args: []string{"prog", "--name", "it's", "-v", "--tag", "x"},
			want: "-n \"it's\"\n-v\n--tag x\n",
		},
		{
			name: "double quotes",
			args: []string{"prog", "--name", `say "hi"`, "--tag", "x"},
			want: "-n 'say \"hi\"'\n--tag x\n",
		},
		{
			name: "both quote kinds",
			args: []string{"prog", "--name", `it's "x"`, "--tag", "#1"},
			want: "-n \"it's \"'\"x\"'\n--tag \"#1\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t)
			require.True(t, p.Parse(tt.args))

			var exported bytes.Buffer
			require.NoError(t, p.ExportFile(&exported, false))
			assert.Equal(t, tt.want, exported.String())

			imported := newTestParser(t)
			require.NoError(t, imported.ImportFile(strings.NewReader(exported.String())))
			for _, flag := range []string{"--name", "--tag", "-v"} {
				assert.Equal(t, p.Get(flag).Args(), imported.Get(flag).Args(), flag)
				assert.Equal(t, p.IsSet(flag), imported.IsSet(flag), flag)
			}
			assert.Empty(t, imported.UnknownArgs())
			assert.Empty(t, imported.LastArgs())
		})
	}
}

func TestParser_ImportFileUnterminatedQuote(t *testing.T) {
	p := newTestParser(t)
	err := p.ImportFile(strings.NewReader("-v\n--name it's\n--tag x\n"))

	assert.True(t, errors.Is(err, errs.ErrUnterminatedQuote))
	assert.False(t, p.IsSet("-v"))
	assert.False(t, p.IsSet("--tag"))
	assert.Equal(t, 1, p.GetErrorCount())
}

func TestParser_ImportFile(t *testing.T) {
	config := `# image settings
-d 640,480,1   # trailing comment
--name 'two words'
-v
--tag "hash # inside"
--tag escaped\#hash
`
	p := newTestParser(t)
	require.NoError(t, p.ImportFile(strings.NewReader(config)))

	assert.Equal(t, []int64{640, 480, 1}, p.Get("-d").GetInt64s())
	assert.Equal(t, "two words", p.Get("-n").GetString())
	assert.True(t, p.Get("-v").GetBool())
	assert.Equal(t, [][]string{{"hash # inside"}, {`escaped\#hash`}}, p.Get("--tag").Args())
	assert.Empty(t, p.FirstArgs())
	assert.Empty(t, p.UnknownArgs())
}

func TestParser_ImportFileWithoutFlags(t *testing.T) {
	p := newTestParser(t)
	require.NoError(t, p.ImportFile(strings.NewReader("one two\n# only comments\n")))

	assert.Empty(t, p.FirstArgs())
	assert.Equal(t, []string{"one", "two"}, p.LastArgs())
}

func TestParser_ImportFileTruncated(t *testing.T) {
	p := newTestParser(t)
	err := p.ImportFile(strings.NewReader("-v\n--name\n"))

	assert.True(t, errors.Is(err, errs.ErrFlagExpectsValue))
	assert.True(t, p.IsSet("-v"))
}

func TestParser_ImportFileCommentChar(t *testing.T) {
	p, err := NewParserWith(
		WithCommentChar(';'),
		WithGroup(WithFlags("-n"), WithExpectArgs(1)))
	require.NoError(t, err)
	assert.Equal(t, ';', p.CommentChar())

	require.NoError(t, p.ImportFile(strings.NewReader("; comment\n-n #hash ; trailing\n")))
	assert.Equal(t, "#hash", p.Get("-n").GetString())
}

func TestParser_ExportPathImportPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.cfg")

	p := newTestParser(t)
	require.True(t, p.Parse([]string{"prog", "-d", "4,5,6", "--tag", "x"}))
	require.NoError(t, p.ExportPath(path, true))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "-d 4,5,6\n--level 3\n--tag x\n", string(content))

	imported := newTestParser(t)
	require.NoError(t, imported.ImportPath(path))
	assert.Equal(t, []int64{4, 5, 6}, imported.Get("-d").GetInt64s())
	assert.Equal(t, int64(3), imported.Get("--level").GetInt64())
	assert.True(t, imported.IsSet("--level"))
}

func TestParser_ImportPathMissing(t *testing.T) {
	p := newTestParser(t)
	err := p.ImportPath(filepath.Join(t.TempDir(), "missing.cfg"))

	assert.True(t, errors.Is(err, errs.ErrFileOperation))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestParser_ExportFileWriteError(t *testing.T) {
	p := newTestParser(t)
	require.True(t, p.Parse([]string{"prog", "-v"}))

	err := p.ExportFile(failingWriter{}, false)
	assert.True(t, errors.Is(err, errs.ErrFileOperation))
	assert.Contains(t, err.Error(), "disk full")
}
