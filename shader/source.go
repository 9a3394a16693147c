// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import "fmt"

// Entry points of the effect module.
const (
	VertexEntryPoint = "vs_main"
	EffectEntryPoint = "fs_main"
	BlurEntryPoint   = "fs_blur"
)

// Source returns the WGSL module for the variant. Mode constants are baked in
// so that every branch on them is uniform control flow.
func Source(v Variant) string {
	return fmt.Sprintf(effectHeader, v, uint32(v.Tone), uint32(v.Color), v.Blur.KernelRadius()) + effectBody
}

const effectHeader = `// captured image effect: %s
const TONE_MODE: u32 = %du;
const COLOR_MODE: u32 = %du;
const BLUR_RADIUS: i32 = %d;
`

const effectBody = `
const TONE_GRAYSCALE: u32 = 1u;
const TONE_SEPIA: u32 = 2u;
const TONE_NEGA: u32 = 3u;
const TONE_PIXEL: u32 = 4u;

const COLOR_FILL: u32 = 1u;
const COLOR_ADD: u32 = 2u;
const COLOR_SUBTRACT: u32 = 3u;

struct EffectParams {
    effect_factor: vec4<f32>,
    color_factor: vec4<f32>,
}

@group(0) @binding(0) var<uniform> params: EffectParams;
@group(0) @binding(1) var main_tex: texture_2d<f32>;
@group(0) @binding(2) var main_sampler: sampler;
@group(0) @binding(3) var blur_tex: texture_2d<f32>;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

// Full-screen triangle, no vertex buffer.
@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> VertexOutput {
    var out: VertexOutput;
    let x = f32((idx << 1u) & 2u);
    let y = f32(idx & 2u);
    out.position = vec4<f32>(x * 2.0 - 1.0, 1.0 - y * 2.0, 0.0, 1.0);
    out.uv = vec2<f32>(x, y);
    return out;
}

fn blur_weight(d: f32) -> f32 {
    let sigma = f32(BLUR_RADIUS) * 0.5 + 0.5;
    return exp(-(d * d) / (2.0 * sigma * sigma));
}

fn blur_step(dims: vec2<u32>) -> vec2<f32> {
    let size = vec2<f32>(dims);
    let s = params.effect_factor.y;
    return vec2<f32>(s, s * size.x / size.y);
}

fn sample_main(uv: vec2<f32>) -> vec4<f32> {
    if (BLUR_RADIUS == 0) {
        return textureSample(main_tex, main_sampler, uv);
    }
    let step = blur_step(textureDimensions(main_tex));
    var sum = vec4<f32>(0.0);
    var total = 0.0;
    for (var j: i32 = -BLUR_RADIUS; j <= BLUR_RADIUS; j = j + 1) {
        for (var i: i32 = -BLUR_RADIUS; i <= BLUR_RADIUS; i = i + 1) {
            let w = blur_weight(f32(i)) * blur_weight(f32(j));
            let offset = vec2<f32>(f32(i) * step.x, f32(j) * step.y);
            sum = sum + textureSample(main_tex, main_sampler, uv + offset) * w;
            total = total + w;
        }
    }
    return sum / total;
}

fn sample_blur(uv: vec2<f32>) -> vec4<f32> {
    if (BLUR_RADIUS == 0) {
        return textureSample(blur_tex, main_sampler, uv);
    }
    let step = blur_step(textureDimensions(blur_tex));
    var sum = vec4<f32>(0.0);
    var total = 0.0;
    for (var j: i32 = -BLUR_RADIUS; j <= BLUR_RADIUS; j = j + 1) {
        for (var i: i32 = -BLUR_RADIUS; i <= BLUR_RADIUS; i = i + 1) {
            let w = blur_weight(f32(i)) * blur_weight(f32(j));
            let offset = vec2<f32>(f32(i) * step.x, f32(j) * step.y);
            sum = sum + textureSample(blur_tex, main_sampler, uv + offset) * w;
            total = total + w;
        }
    }
    return sum / total;
}

fn apply_tone(c: vec4<f32>) -> vec4<f32> {
    let level = params.effect_factor.x;
    var rgb = c.rgb;
    if (TONE_MODE == TONE_GRAYSCALE) {
        let lum = dot(rgb, vec3<f32>(0.299, 0.587, 0.114));
        rgb = mix(rgb, vec3<f32>(lum, lum, lum), level);
    } else if (TONE_MODE == TONE_SEPIA) {
        let sepia = vec3<f32>(
            dot(rgb, vec3<f32>(0.393, 0.769, 0.189)),
            dot(rgb, vec3<f32>(0.349, 0.686, 0.168)),
            dot(rgb, vec3<f32>(0.272, 0.534, 0.131)),
        );
        rgb = mix(rgb, min(sepia, vec3<f32>(1.0, 1.0, 1.0)), level);
    } else if (TONE_MODE == TONE_NEGA) {
        rgb = mix(rgb, vec3<f32>(1.0, 1.0, 1.0) - rgb, level);
    }
    return vec4<f32>(rgb, c.a);
}

fn apply_color(c: vec4<f32>) -> vec4<f32> {
    let f = params.color_factor;
    var rgb = c.rgb;
    if (COLOR_MODE == COLOR_FILL) {
        rgb = mix(rgb, f.rgb, f.a);
    } else if (COLOR_MODE == COLOR_ADD) {
        rgb = rgb + f.rgb * f.a;
    } else if (COLOR_MODE == COLOR_SUBTRACT) {
        rgb = rgb - f.rgb * f.a;
    } else {
        rgb = mix(rgb, rgb * f.rgb, f.a);
    }
    return vec4<f32>(clamp(rgb, vec3<f32>(0.0, 0.0, 0.0), vec3<f32>(1.0, 1.0, 1.0)), c.a);
}

@fragment
fn fs_main(input: VertexOutput) -> @location(0) vec4<f32> {
    var uv = input.uv;
    if (TONE_MODE == TONE_PIXEL) {
        let cells = 4.0 + (1.0 - params.effect_factor.x) * 508.0;
        uv = (floor(uv * cells) + vec2<f32>(0.5, 0.5)) / cells;
    }
    return apply_color(apply_tone(sample_main(uv)));
}

@fragment
fn fs_blur(input: VertexOutput) -> @location(0) vec4<f32> {
    return sample_blur(input.uv);
}
`
