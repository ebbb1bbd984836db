package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/engine/shapes"
	"github.com/Faultbox/deskscene/internal/logger"
)

type meshBuffers struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Meshes holds one GPU buffer set per primitive kind.
type Meshes struct {
	buffers map[shapes.Kind]meshBuffers
	log     *zap.Logger
}

// NewMeshes creates an empty mesh store.
func NewMeshes() *Meshes {
	return &Meshes{
		buffers: make(map[shapes.Kind]meshBuffers),
		log:     logger.Named("meshes"),
	}
}

// Load builds and uploads the mesh for kind. Loading a kind twice is a no-op.
func (m *Meshes) Load(kind shapes.Kind) error {
	if _, ok := m.buffers[kind]; ok {
		return nil
	}
	mesh, err := shapes.Build(kind)
	if err != nil {
		return err
	}
	vertices := mesh.Interleaved()
	if len(vertices) == 0 || len(mesh.Indices) == 0 {
		return fmt.Errorf("mesh %v is empty", kind)
	}

	var b meshBuffers
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	stride := int32(shapes.FloatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	b.indexCount = int32(len(mesh.Indices))
	m.buffers[kind] = b

	m.log.Debug("mesh uploaded",
		zap.Stringer("kind", kind),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int32("indices", b.indexCount),
	)
	return nil
}

// Draw issues an indexed draw for kind. Kinds that were never loaded are skipped.
func (m *Meshes) Draw(kind shapes.Kind) {
	b, ok := m.buffers[kind]
	if !ok {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawElements(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Delete releases every mesh buffer.
func (m *Meshes) Delete() {
	for kind, b := range m.buffers {
		gl.DeleteVertexArrays(1, &b.vao)
		gl.DeleteBuffers(1, &b.vbo)
		gl.DeleteBuffers(1, &b.ebo)
		delete(m.buffers, kind)
	}
}
