package shaders

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Mode is one of the stock shading modes.
type Mode int

const (
	// Flat draws every vertex in one color. Inputs: model-view-projection, color.
	Flat Mode = iota
	// PointLightDiffuse lights each vertex from a point light given in eye space.
	// Inputs: model-view, projection, eye-space light position, diffuse color.
	PointLightDiffuse
	numModes
)

func (m Mode) String() string {
	switch m {
	case Flat:
		return "flat"
	case PointLightDiffuse:
		return "point-light-diffuse"
	default:
		return "unknown"
	}
}

// ErrCompile is returned when a stock program fails to compile or link.
var ErrCompile = errors.New("shaders: stock program unavailable")

// Manager owns the stock programs. Selecting a mode uploads its uniforms and makes it the
// program used by the next draw; nothing is restored afterward.
type Manager struct {
	materials [numModes]rl.Material
	current   Mode

	flatMVP   int32
	flatColor int32

	diffModelView  int32
	diffProjection int32
	diffLight      int32
	diffColor      int32
}

// NewManager compiles the stock programs. Must be called after the window (GL context) exists.
func NewManager() (*Manager, error) {
	m := &Manager{}

	flat := rl.LoadShaderFromMemory(flatVS, flatFS)
	m.flatMVP = rl.GetShaderLocation(flat, "mvpMatrix")
	m.flatColor = rl.GetShaderLocation(flat, "vColor")
	// raylib falls back to its default program on failure; that program has none of our uniforms.
	if !rl.IsShaderValid(flat) || m.flatMVP < 0 || m.flatColor < 0 {
		return nil, fmt.Errorf("%w: %s", ErrCompile, Flat)
	}

	diffuse := rl.LoadShaderFromMemory(pointLightDiffVS, pointLightDiffFS)
	m.diffModelView = rl.GetShaderLocation(diffuse, "mvMatrix")
	m.diffProjection = rl.GetShaderLocation(diffuse, "pMatrix")
	m.diffLight = rl.GetShaderLocation(diffuse, "vLightPosition")
	m.diffColor = rl.GetShaderLocation(diffuse, "vColor")
	if !rl.IsShaderValid(diffuse) || m.diffModelView < 0 || m.diffProjection < 0 || m.diffLight < 0 || m.diffColor < 0 {
		rl.UnloadShader(flat)
		return nil, fmt.Errorf("%w: %s", ErrCompile, PointLightDiffuse)
	}

	for mode, shader := range [numModes]rl.Shader{Flat: flat, PointLightDiffuse: diffuse} {
		mtl := rl.LoadMaterialDefault()
		mtl.Shader = shader
		m.materials[mode] = mtl
	}
	return m, nil
}

// UseFlat selects flat shading with the given model-view-projection matrix and RGBA color.
func (m *Manager) UseFlat(mvp mgl32.Mat4, color mgl32.Vec4) {
	shader := m.materials[Flat].Shader
	col := [4]float32{color[0], color[1], color[2], color[3]}
	rl.SetShaderValueMatrix(shader, m.flatMVP, Matrix(mvp))
	rl.SetShaderValue(shader, m.flatColor, col[:], rl.ShaderUniformVec4)
	m.current = Flat
}

// UsePointLightDiffuse selects point-light diffuse shading. lightEye is the light position in eye space.
func (m *Manager) UsePointLightDiffuse(modelView, projection mgl32.Mat4, lightEye mgl32.Vec3, color mgl32.Vec4) {
	shader := m.materials[PointLightDiffuse].Shader
	light := [3]float32{lightEye[0], lightEye[1], lightEye[2]}
	col := [4]float32{color[0], color[1], color[2], color[3]}
	rl.SetShaderValueMatrix(shader, m.diffModelView, Matrix(modelView))
	rl.SetShaderValueMatrix(shader, m.diffProjection, Matrix(projection))
	rl.SetShaderValueV(shader, m.diffLight, light[:], rl.ShaderUniformVec3, 1)
	rl.SetShaderValue(shader, m.diffColor, col[:], rl.ShaderUniformVec4)
	m.current = PointLightDiffuse
}

// Current returns the selected mode and the material carrying its program.
func (m *Manager) Current() (Mode, rl.Material) {
	return m.current, m.materials[m.current]
}

// Unload releases the programs. The manager must not be used afterward.
func (m *Manager) Unload() {
	for i := range m.materials {
		rl.UnloadMaterial(m.materials[i])
	}
}

// Matrix converts a column-major mgl32 matrix to raylib's layout (Mi is element i in column-major order).
func Matrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// Stock programs. Attribute names follow raylib's defaults so meshes and the immediate-mode
// batch bind them without extra setup.
const (
	flatVS = `#version 330
in vec3 vertexPosition;
uniform mat4 mvpMatrix;
void main() {
  gl_Position = mvpMatrix * vec4(vertexPosition, 1.0);
}
`
	flatFS = `#version 330
uniform vec4 vColor;
out vec4 finalColor;
void main() {
  finalColor = vColor;
}
`
	pointLightDiffVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 mvMatrix;
uniform mat4 pMatrix;
uniform vec3 vLightPosition;
uniform vec4 vColor;
out vec4 fragColor;
void main() {
  vec3 eyeNormal = normalize(mat3(mvMatrix) * vertexNormal);
  vec4 eyePos4 = mvMatrix * vec4(vertexPosition, 1.0);
  vec3 eyePos = eyePos4.xyz / eyePos4.w;
  vec3 lightDir = normalize(vLightPosition - eyePos);
  float diff = max(0.0, dot(eyeNormal, lightDir));
  fragColor = vec4(diff * vColor.rgb, vColor.a);
  gl_Position = pMatrix * eyePos4;
}
`
	pointLightDiffFS = `#version 330
in vec4 fragColor;
out vec4 finalColor;
void main() {
  finalColor = fragColor;
}
`
)
