package blocks

const mainVertSrc = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aColor;
layout (location = 3) in float aLight;

uniform mat4 proj;
uniform mat4 view;

out vec3 Normal;
out vec3 Color;
out float Light;

void main() {
    gl_Position = proj * view * vec4(aPos, 1.0);
    Normal = aNormal;
    Color = aColor;
    Light = aLight;
}
`

const mainFragSrc = `#version 410 core
in vec3 Normal;
in vec3 Color;
in float Light;

uniform vec3 lightDir;
uniform float alpha;

out vec4 FragColor;

void main() {
    float diffuse = max(dot(normalize(Normal), lightDir), 0.0);
    vec3 lit = Color * (0.45 + 0.55 * diffuse) * Light;
    FragColor = vec4(lit, alpha);
}
`
