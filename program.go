package render3d

// Shader sources for the standard program. One program covers every
// object: vertex positions and normals go through projection*view*model,
// and the fragment stage evaluates a single stylized shading model of
// ambient, lambert diffuse, roughness/metallic specular, a time-pulsed
// emission glow, and linear distance fog.

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 uProjection;
uniform mat4 uView;
uniform mat4 uModel;

out vec3 WorldPos;
out vec3 Normal;
out vec2 UV;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    WorldPos = world.xyz;
    Normal = mat3(uModel) * aNormal;
    UV = aUV;
    gl_Position = uProjection * uView * world;
}
`

const fragmentShaderSource = `
#version 410 core
in vec3 WorldPos;
in vec3 Normal;
in vec2 UV;

out vec4 FragColor;

uniform vec3 uLightDir;
uniform vec3 uLightColor;
uniform vec3 uAmbientColor;
uniform vec3 uCameraPos;
uniform vec3 uColor;
uniform vec3 uEmission;
uniform vec3 uFogColor;
uniform float uMetallic;
uniform float uRoughness;
uniform float uTime; // seconds
uniform float uFogNear;
uniform float uFogFar;

void main() {
    vec3 normal = normalize(Normal);

    vec3 ambient = uAmbientColor * uColor;

    float lambert = max(dot(normal, -uLightDir), 0.0);
    vec3 diffuse = uColor * uLightColor * lambert;

    vec3 viewDir = normalize(uCameraPos - WorldPos);
    vec3 reflected = reflect(-uLightDir, normal);
    float highlight = pow(max(dot(viewDir, reflected), 0.0), 32.0 * (1.0 - uRoughness));
    vec3 specular = uLightColor * highlight * uMetallic;

    vec3 emission = uEmission * (0.8 + 0.2 * sin(uTime * 2.0));

    vec3 color = ambient + diffuse + specular + emission;

    float dist = length(uCameraPos - WorldPos);
    float fog = clamp((dist - uFogNear) / (uFogFar - uFogNear), 0.0, 1.0);
    color = mix(color, uFogColor, fog);

    FragColor = vec4(color, 1.0);
}
`
