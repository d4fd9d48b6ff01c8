package renderer

import (
	_ "embed"
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SceneShaderSource is the WGSL program used for every instance: a flat-lit box tinted
// by its instance color.
//
//go:embed assets/scene.wgsl
var SceneShaderSource string

const (
	// GPUVertexSize is the byte size of a GPUVertex (position + normal).
	GPUVertexSize = 24

	// GPUInstanceSize is the byte size of a GPUInstance (mat4x4 + vec4).
	GPUInstanceSize = 80

	// GPUCameraSize is the byte size of the camera uniform (one mat4x4).
	GPUCameraSize = 64
)

// GPUVertex is one box vertex. Matches VertexInput in SceneShaderSource.
type GPUVertex struct {
	Position [3]float32 // offset  0
	Normal   [3]float32 // offset 12
}

// Marshal serializes the vertex for GPU upload.
//
// Returns:
//   - []byte: 24-byte little-endian buffer
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, GPUVertexSize)
	putFloats(buf, g.Position[:])
	putFloats(buf[12:], g.Normal[:])
	return buf
}

// GPUInstance is the per-instance data: a column-major model matrix and an RGBA tint.
// Matches InstanceInput in SceneShaderSource.
type GPUInstance struct {
	Model [16]float32 // offset  0
	Tint  [4]float32  // offset 64
}

// Marshal serializes the instance for GPU upload.
//
// Returns:
//   - []byte: 80-byte little-endian buffer
func (g *GPUInstance) Marshal() []byte {
	buf := make([]byte, GPUInstanceSize)
	g.marshalInto(buf)
	return buf
}

func (g *GPUInstance) marshalInto(buf []byte) {
	putFloats(buf, g.Model[:])
	putFloats(buf[64:], g.Tint[:])
}

// marshalCamera serializes a view-projection matrix for the camera uniform.
func marshalCamera(viewProj mgl32.Mat4) []byte {
	buf := make([]byte, GPUCameraSize)
	putFloats(buf, viewProj[:])
	return buf
}

func putFloats(buf []byte, values []float32) {
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
}

// boxMesh returns a unit box spanning [-0.5, 0.5] on X and Z and [0, 1] on Y, so an
// object positioned on the ground stands on it. Each face has its own four vertices
// for flat normals; winding is counter-clockwise seen from outside.
func boxMesh() (vertices []byte, indices []byte, indexCount int) {
	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{1, 0, 0}, [4][3]float32{{0.5, 0, 0.5}, {0.5, 0, -0.5}, {0.5, 1, -0.5}, {0.5, 1, 0.5}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-0.5, 0, -0.5}, {-0.5, 0, 0.5}, {-0.5, 1, 0.5}, {-0.5, 1, -0.5}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-0.5, 1, 0.5}, {0.5, 1, 0.5}, {0.5, 1, -0.5}, {-0.5, 1, -0.5}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-0.5, 0, -0.5}, {0.5, 0, -0.5}, {0.5, 0, 0.5}, {-0.5, 0, 0.5}}},
		{[3]float32{0, 0, 1}, [4][3]float32{{-0.5, 0, 0.5}, {0.5, 0, 0.5}, {0.5, 1, 0.5}, {-0.5, 1, 0.5}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{0.5, 0, -0.5}, {-0.5, 0, -0.5}, {-0.5, 1, -0.5}, {0.5, 1, -0.5}}},
	}

	vertices = make([]byte, 0, len(faces)*4*GPUVertexSize)
	indices = make([]byte, 0, len(faces)*6*4)
	for f, face := range faces {
		for _, c := range face.corners {
			v := GPUVertex{Position: c, Normal: face.normal}
			vertices = append(vertices, v.Marshal()...)
		}
		base := uint32(f * 4)
		for _, i := range []uint32{0, 1, 2, 0, 2, 3} {
			indices = binary.LittleEndian.AppendUint32(indices, base+i)
		}
	}
	return vertices, indices, len(faces) * 6
}
