package shader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/learngl/graphics/graphicstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passVertex = `#version 330 core
layout (location = 0) in vec3 aPos;
uniform mat4 model;
void main()
{
    gl_Position = model * vec4(aPos, 1.0);
}
`

const constFragment = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(0.5, 0.5, 0.2, 1.0);
}
`

// missing semicolon after the assignment
const brokenFragment = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(0.5, 0.5, 0.2, 1.0)
}
`

func writeSources(t *testing.T, vertex, fragment string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	vp := filepath.Join(dir, "shader.vert")
	fp := filepath.Join(dir, "shader.frag")
	require.NoError(t, os.WriteFile(vp, []byte(vertex), 0o644))
	require.NoError(t, os.WriteFile(fp, []byte(fragment), 0o644))
	return vp, fp
}

func TestNewValidProgram(t *testing.T) {
	rec := graphicstest.NewRecorder()
	vp, fp := writeSources(t, passVertex, constFragment)

	p, err := New(rec, vp, fp)
	require.NoError(t, err)
	assert.NotZero(t, p.ID())
	assert.True(t, rec.IsLive(p.ID()))
	assert.Equal(t, 0, rec.Live(graphicstest.KindShader), "stage objects are deleted after link")

	loc, ok := p.UniformLocation("nonexistentUniform")
	assert.False(t, ok)
	assert.Equal(t, int32(-1), loc)

	loc, ok = p.UniformLocation("model")
	assert.True(t, ok)
	assert.GreaterOrEqual(t, loc, int32(0))
}

func TestUniformLocationIsCached(t *testing.T) {
	rec := graphicstest.NewRecorder()
	p, err := FromSource(rec, passVertex, constFragment)
	require.NoError(t, err)

	p.UniformLocation("model")
	p.UniformLocation("model")
	p.UniformLocation("missing")
	p.UniformLocation("missing")
	assert.Equal(t, 2, rec.Count("UniformLocation"))
}

func TestFragmentCompileError(t *testing.T) {
	rec := graphicstest.NewRecorder()
	vp, fp := writeSources(t, passVertex, brokenFragment)

	p, err := New(rec, vp, fp)
	require.Error(t, err)
	assert.Nil(t, p)

	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, StageFragment, ce.Stage)
	assert.Contains(t, ce.Log, "expecting ';'")
	assert.ErrorIs(t, err, ErrCompile)
	assert.NotErrorIs(t, err, ErrLink)

	assert.Zero(t, rec.Count("CreateProgram"), "no program is created when a stage fails")
	assert.Zero(t, rec.Count("LinkProgram"))
	assert.Zero(t, rec.Live(graphicstest.KindShader))
	assert.Zero(t, rec.Live(graphicstest.KindProgram))

	assert.NotPanics(t, func() { p.Release() })
	assert.Empty(t, rec.DoubleDeletes)
}

func TestVertexCompileErrorStopsBeforeFragment(t *testing.T) {
	rec := graphicstest.NewRecorder()
	_, err := FromSource(rec, "void main()\n{\n    gl_Position = vec4(0.0)\n}\n", constFragment)

	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, StageVertex, ce.Stage)
	assert.Equal(t, 1, rec.Count("CreateShader"))
	assert.Zero(t, rec.Count("AttachShader"))
}

func TestLinkError(t *testing.T) {
	rec := graphicstest.NewRecorder()
	rec.LinkLog = "error: vertex output `color' not consumed"

	_, err := FromSource(rec, passVertex, constFragment)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLink)

	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, StageLink, ce.Stage)
	assert.Equal(t, rec.LinkLog, ce.Log)
	assert.Zero(t, rec.Live(graphicstest.KindProgram))
	assert.Zero(t, rec.Live(graphicstest.KindShader))
}

func TestValidationFailureIsNotFatal(t *testing.T) {
	rec := graphicstest.NewRecorder()
	rec.ValidateLog = "no vertex array bound"

	p, err := FromSource(rec, passVertex, constFragment)
	require.NoError(t, err)
	assert.NotZero(t, p.ID())
}

func TestMissingFile(t *testing.T) {
	rec := graphicstest.NewRecorder()
	_, fp := writeSources(t, passVertex, constFragment)

	_, err := New(rec, filepath.Join(t.TempDir(), "nope.vert"), fp)
	var re *ReadError
	require.ErrorAs(t, err, &re)
	assert.True(t, strings.HasSuffix(re.Path, "nope.vert"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, rec.Calls())
}

func TestReleaseTwice(t *testing.T) {
	rec := graphicstest.NewRecorder()
	p, err := FromSource(rec, passVertex, constFragment)
	require.NoError(t, err)
	id := p.ID()

	p.Release()
	p.Release()
	assert.Equal(t, 1, rec.Count("DeleteProgram"))
	assert.Empty(t, rec.DoubleDeletes)
	assert.False(t, rec.IsLive(id))
	assert.Zero(t, p.ID())

	_, ok := p.UniformLocation("model")
	assert.False(t, ok)
}

func TestUseAfterReleaseBindsNothing(t *testing.T) {
	rec := graphicstest.NewRecorder()
	p, err := FromSource(rec, passVertex, constFragment)
	require.NoError(t, err)
	p.Release()

	rec.Reset()
	p.Use()
	p.SetFloat("scale", 1)
	assert.Empty(t, rec.Calls())
	assert.Zero(t, rec.CurrentProgram)

	var none *Program
	assert.NotPanics(t, func() { none.Use() })
}

func TestUseAndSetters(t *testing.T) {
	rec := graphicstest.NewRecorder()
	p, err := FromSource(rec, passVertex+"uniform float scale;\nuniform vec3 tint;\nuniform int flag;\n", constFragment)
	require.NoError(t, err)

	p.Use()
	assert.Equal(t, p.ID(), rec.CurrentProgram)

	rec.Reset()
	p.SetMat4("model", mgl32.Ident4())
	p.SetFloat("scale", 2)
	p.SetVec3("tint", mgl32.Vec3{1, 2, 3})
	p.SetBool("flag", true)
	p.SetFloat("absent", 1)

	require.Len(t, rec.CallsOf("UniformMatrix4fv"), 1)
	assert.Equal(t, [16]float32(mgl32.Ident4()), rec.CallsOf("UniformMatrix4fv")[0].Args[1])
	require.Len(t, rec.CallsOf("Uniform1f"), 1)
	assert.Equal(t, float32(2), rec.CallsOf("Uniform1f")[0].Args[1])
	require.Len(t, rec.CallsOf("Uniform3f"), 1)
	require.Len(t, rec.CallsOf("Uniform1i"), 1)
	assert.Equal(t, int32(1), rec.CallsOf("Uniform1i")[0].Args[1])
}

func TestReload(t *testing.T) {
	rec := graphicstest.NewRecorder()
	vp, fp := writeSources(t, passVertex, constFragment)
	p, err := New(rec, vp, fp)
	require.NoError(t, err)
	first := p.ID()
	p.UniformLocation("model")

	require.NoError(t, os.WriteFile(fp, []byte(brokenFragment), 0o644))
	err = p.Reload()
	assert.ErrorIs(t, err, ErrCompile)
	assert.Equal(t, first, p.ID(), "a failed reload keeps the running program")
	assert.True(t, rec.IsLive(first))

	require.NoError(t, os.WriteFile(fp, []byte(constFragment), 0o644))
	require.NoError(t, p.Reload())
	assert.NotEqual(t, first, p.ID())
	assert.False(t, rec.IsLive(first))
	assert.True(t, rec.IsLive(p.ID()))
	assert.Empty(t, p.uniforms)
}

func TestReloadNeedsFiles(t *testing.T) {
	rec := graphicstest.NewRecorder()
	p, err := FromSource(rec, passVertex, constFragment)
	require.NoError(t, err)
	assert.Error(t, p.Reload())
}

func TestEmbeddedSourcesBuild(t *testing.T) {
	rec := graphicstest.NewRecorder()
	for _, pair := range [][2]string{
		{LitVertexSource(), LitFragmentSource()},
		{FlatVertexSource(), FlatFragmentSource(false)},
		{FlatVertexSource(), FlatFragmentSource(true)},
	} {
		p, err := FromSource(rec, pair[0], pair[1])
		require.NoError(t, err)
		p.Release()
	}

	lit, err := FromSource(rec, LitVertexSource(), LitFragmentSource())
	require.NoError(t, err)
	for _, name := range []string{"model", "view", "projection", "theTexture"} {
		_, ok := lit.UniformLocation(name)
		assert.True(t, ok, name)
	}
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "fragment", StageFragment.String())
	assert.Equal(t, "failed to link program: boom", (&CompileError{Stage: StageLink, Log: "boom"}).Error())
	assert.True(t, errors.Is(&CompileError{Stage: StageVertex}, ErrCompile))
}
