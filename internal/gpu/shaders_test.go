package gpu

import (
	"strings"
	"testing"
)

// TestSmoothShaderSource tests that the shader source is properly embedded.
func TestSmoothShaderSource(t *testing.T) {
	source := GetSmoothShaderSource()

	if source == "" {
		t.Fatal("smooth shader source is empty")
	}

	// Verify expected content
	expectedStrings := []string{
		"SmoothUniforms",
		"VertexInput",
		"VertexOutput",
		"art_texture",
		"art_sampler",
		"smooth_axis",
		"boundary_axis",
		"FLAG_SMOOTHING",
		"FLAG_BOUNDARY_FADE",
		"vs_main",
		"fs_main",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(source, expected) {
			t.Errorf("shader source missing expected string: %q", expected)
		}
	}

	// Verify it's valid WGSL by checking structure
	if !strings.Contains(source, "@vertex") {
		t.Error("shader missing @vertex entry point")
	}
	if !strings.Contains(source, "@fragment") {
		t.Error("shader missing @fragment entry point")
	}
	if !strings.Contains(source, "@group(0) @binding(0)") {
		t.Error("shader missing bind group 0")
	}
	if !strings.Contains(source, "@group(0) @binding(1)") {
		t.Error("shader missing texture binding")
	}
	if !strings.Contains(source, "@group(0) @binding(2)") {
		t.Error("shader missing sampler binding")
	}
}

func TestSmoothShaderSingleTextureTap(t *testing.T) {
	// The whole technique rides on one linear-filter tap per fragment:
	// the shader must not gain a second textureSample call.
	source := GetSmoothShaderSource()
	if got := strings.Count(source, "textureSample("); got != 1 {
		t.Errorf("shader has %d textureSample calls, want exactly 1", got)
	}
}

// TestCompileShaderToSPIRV validates the embedded shader by running it
// through the naga compiler, the same path non-WGSL backends take.
func TestCompileShaderToSPIRV(t *testing.T) {
	code, err := CompileShaderToSPIRV(GetSmoothShaderSource())
	if err != nil {
		t.Fatalf("CompileShaderToSPIRV() = %v", err)
	}
	if len(code) == 0 {
		t.Fatal("compiled SPIR-V is empty")
	}
	// SPIR-V modules start with the magic number 0x07230203.
	if code[0] != 0x07230203 {
		t.Errorf("SPIR-V magic = %#x, want 0x07230203", code[0])
	}
}

func TestCompileShaderToSPIRVInvalidSource(t *testing.T) {
	if _, err := CompileShaderToSPIRV("not wgsl at all"); err == nil {
		t.Error("CompileShaderToSPIRV() on invalid source returned nil error")
	}
}

func TestQuadVertexLayout(t *testing.T) {
	layouts := quadVertexLayout()
	if len(layouts) != 1 {
		t.Fatalf("got %d vertex buffer layouts, want 1", len(layouts))
	}
	l := layouts[0]
	if l.ArrayStride != quadVertexStride {
		t.Errorf("ArrayStride = %d, want %d", l.ArrayStride, quadVertexStride)
	}
	if len(l.Attributes) != 1 || l.Attributes[0].ShaderLocation != 0 {
		t.Errorf("attributes = %+v, want single uv attribute at location 0", l.Attributes)
	}
}

func TestUnitQuadData(t *testing.T) {
	verts := unitQuadVertexData()
	if len(verts) != 4*quadVertexStride {
		t.Errorf("vertex data length = %d, want %d", len(verts), 4*quadVertexStride)
	}

	indices := unitQuadIndexData()
	if len(indices) != quadIndexCount*2 {
		t.Errorf("index data length = %d, want %d", len(indices), quadIndexCount*2)
	}
}
