package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh vertex shader: interleaved position/normal, world-space lighting.
const meshVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProj;

out vec3 vNormal;
out float vDepth;

void main() {
    vec4 world = uModel * vec4(aPos, 1.0);
    vec4 eye = uView * world;
    vNormal = mat3(uModel) * aNormal;
    vDepth = -eye.z;
    gl_Position = uProj * eye;
}
` + "\x00"

// Mesh fragment shader: Lambert with ambient floor and linear fog.
// uUnlit skips lighting for emissive parts (rounds, muzzle flash).
const meshFragSrc = `#version 410 core

uniform vec3 uColor;
uniform float uAlpha;
uniform bool uUnlit;
uniform vec3 uLightDir;
uniform float uAmbient;
uniform float uDirectional;
uniform vec3 uFogColor;
uniform float uFogNear;
uniform float uFogFar;
uniform bool uFog;

in vec3 vNormal;
in float vDepth;
out vec4 FragColor;

void main() {
    vec3 col = uColor;
    if (!uUnlit) {
        float diff = max(dot(normalize(vNormal), uLightDir), 0.0);
        col *= uAmbient + uDirectional * diff;
    }
    if (uFog) {
        float f = clamp((vDepth - uFogNear) / (uFogFar - uFogNear), 0.0, 1.0);
        col = mix(col, uFogColor, f);
    }
    FragColor = vec4(col, uAlpha);
}
` + "\x00"

// Spark vertex shader: world-space point sprites sized by distance.
const sparkVertSrc = `#version 410 core

layout(location = 0) in vec3 aWorldPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;

uniform mat4 uView;
uniform mat4 uProj;
uniform float uViewportH;

out vec4 vColor;

void main() {
    vec4 eye = uView * vec4(aWorldPos, 1.0);
    gl_Position = uProj * eye;
    float ps = aSize * uProj[1][1] * uViewportH * 0.02 / max(-eye.z, 0.1);
    gl_PointSize = max(1.0, ps);
    vColor = aColor;
}
` + "\x00"

// Spark fragment shader: additive radial falloff. vColor.rgb is
// pre-multiplied by brightness.
const sparkFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5)) * 2.0;
    float falloff = clamp(1.0 - dist, 0.0, 1.0);
    falloff = falloff * falloff;
    FragColor = vec4(vColor.rgb * falloff * vColor.a, 1.0);
}
` + "\x00"

// Text vertex shader: screen-space textured quads for font rendering.
const textVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Text fragment shader: single-channel glyph coverage tinted by colour.
const textFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    float a = texture(uFontTex, vUV).r;
    if (a < 0.01) discard;
    FragColor = vec4(vColor.rgb, a * vColor.a);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
