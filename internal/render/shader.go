package render

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-viewer/internal/lights"
)

// maxLights must match MAX_LIGHTS in litFS.
const maxLights = lights.Count

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
uniform mat4 matNormal;
uniform vec2 tiling;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord * tiling;
  fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
  gl_Position = matProjection * matView * worldPos;
}
`
	// litFS: two directional lights, ambient, specular, optional albedo texture and exp2 fog.
	litFS = `#version 330
#define MAX_LIGHTS 2
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform sampler2D texture0;
uniform float useTexture;
uniform vec3 viewPos;
uniform vec4 ambient;
uniform vec3 lightDir[MAX_LIGHTS];
uniform vec3 lightColor[MAX_LIGHTS];
uniform float lightIntensity[MAX_LIGHTS];
uniform float specularPower;
uniform float specularStrength;
uniform vec3 fogColor;
uniform float fogDensity;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  if (useTexture > 0.5) {
    tint *= texture(texture0, fragTexCoord);
  }
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 lit = ambient.rgb * tint.rgb;
  for (int i = 0; i < MAX_LIGHTS; i++) {
    vec3 L = normalize(-lightDir[i]);
    float NdotL = max(dot(N, L), 0.0);
    lit += tint.rgb * NdotL * lightColor[i] * lightIntensity[i];
    vec3 H = normalize(L + V);
    float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
    lit += lightColor[i] * lightIntensity[i] * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  }
  float dist = length(viewPos - fragPosition);
  float fog = 1.0 - clamp(exp(-fogDensity * fogDensity * dist * dist), 0.0, 1.0);
  finalColor = vec4(mix(lit, fogColor, fog), tint.a);
}
`
)

// defaultAmbient is the ambient term (dim so shadowed areas aren't pure black).
var defaultAmbient = [4]float32{0.2, 0.22, 0.26, 1.0}

// defaultSpecularPower controls highlight tightness (higher = smaller, sharper highlight).
const defaultSpecularPower = float32(48.0)

// defaultSpecularStrength scales specular contribution (0–1).
const defaultSpecularStrength = float32(0.35)

// litShader is the lit material shader with its uniform locations looked up once.
type litShader struct {
	shader                                          rl.Shader
	viewPos, ambient, tiling, useTexture            int32
	lightDir, lightColor, lightIntensity            int32
	specularPower, specularStrength, fogCol, fogDen int32
}

func loadLitShader() *litShader {
	sh := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(sh) {
		return nil
	}
	return &litShader{
		shader:           sh,
		viewPos:          rl.GetShaderLocation(sh, "viewPos"),
		ambient:          rl.GetShaderLocation(sh, "ambient"),
		tiling:           rl.GetShaderLocation(sh, "tiling"),
		useTexture:       rl.GetShaderLocation(sh, "useTexture"),
		lightDir:         rl.GetShaderLocation(sh, "lightDir"),
		lightColor:       rl.GetShaderLocation(sh, "lightColor"),
		lightIntensity:   rl.GetShaderLocation(sh, "lightIntensity"),
		specularPower:    rl.GetShaderLocation(sh, "specularPower"),
		specularStrength: rl.GetShaderLocation(sh, "specularStrength"),
		fogCol:           rl.GetShaderLocation(sh, "fogColor"),
		fogDen:           rl.GetShaderLocation(sh, "fogDensity"),
	}
}

// setFrame sets the per-frame uniforms: camera, lights and fog (cgo-safe: local arrays).
func (s *litShader) setFrame(f Frame) {
	viewPos := f.Eye.Array()
	amb := defaultAmbient
	var dirs, cols [maxLights * 3]float32
	var intensity [maxLights]float32
	for i := 0; i < maxLights && i < len(f.Lights); i++ {
		d := f.Lights[i].Direction()
		dirs[i*3], dirs[i*3+1], dirs[i*3+2] = d.X, d.Y, d.Z
		c := unitRGB(f.Lights[i].Color)
		cols[i*3], cols[i*3+1], cols[i*3+2] = c[0], c[1], c[2]
		intensity[i] = f.Lights[i].Intensity
	}
	fog := unitRGB(f.FogColor)
	setVec(s.shader, s.viewPos, viewPos[:], rl.ShaderUniformVec3, 1)
	setVec(s.shader, s.ambient, amb[:], rl.ShaderUniformVec4, 1)
	setVec(s.shader, s.lightDir, dirs[:], rl.ShaderUniformVec3, maxLights)
	setVec(s.shader, s.lightColor, cols[:], rl.ShaderUniformVec3, maxLights)
	setVec(s.shader, s.lightIntensity, intensity[:], rl.ShaderUniformFloat, maxLights)
	setVec(s.shader, s.specularPower, []float32{defaultSpecularPower}, rl.ShaderUniformFloat, 1)
	setVec(s.shader, s.specularStrength, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat, 1)
	setVec(s.shader, s.fogCol, fog[:], rl.ShaderUniformVec3, 1)
	setVec(s.shader, s.fogDen, []float32{f.FogDensity}, rl.ShaderUniformFloat, 1)
}

// setSurface sets the per-draw uniforms: texture tiling and whether the albedo map is sampled.
func (s *litShader) setSurface(tiling [2]float32, textured bool) {
	setVec(s.shader, s.tiling, tiling[:], rl.ShaderUniformVec2, 1)
	use := float32(0)
	if textured {
		use = 1
	}
	setVec(s.shader, s.useTexture, []float32{use}, rl.ShaderUniformFloat, 1)
}

func setVec(sh rl.Shader, loc int32, v []float32, typ rl.ShaderUniformDataType, count int32) {
	if loc < 0 {
		return
	}
	rl.SetShaderValueV(sh, loc, v, typ, count)
}

func unitRGB(c color.RGBA) [3]float32 {
	return [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
