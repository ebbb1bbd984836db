package uniform

import (
	"github.com/Faultbox/deskscene/pkg/math"
)

// Write is one recorded uniform upload.
type Write struct {
	Name  string
	Value any
}

// Recorder is an in-memory Uniforms that keeps every write in order and the
// latest value per name. It backs tests that run without a GL context.
type Recorder struct {
	Writes []Write
	Values map[string]any
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{Values: make(map[string]any)}
}

func (r *Recorder) record(name string, v any) {
	r.Writes = append(r.Writes, Write{Name: name, Value: v})
	r.Values[name] = v
}

// Reset drops all recorded writes and values.
func (r *Recorder) Reset() {
	r.Writes = r.Writes[:0]
	clear(r.Values)
}

func (r *Recorder) SetMat4(name string, m math.Mat4)  { r.record(name, m) }
func (r *Recorder) SetVec4(name string, v math.Vec4)  { r.record(name, v) }
func (r *Recorder) SetVec3(name string, v math.Vec3)  { r.record(name, v) }
func (r *Recorder) SetVec2(name string, v math.Vec2)  { r.record(name, v) }
func (r *Recorder) SetFloat(name string, f float32)   { r.record(name, f) }
func (r *Recorder) SetInt(name string, i int32)       { r.record(name, i) }
func (r *Recorder) SetBool(name string, b bool)       { r.record(name, b) }
func (r *Recorder) SetSampler2D(name string, s int32) { r.record(name, s) }

// Mat4 returns the last matrix written under name.
func (r *Recorder) Mat4(name string) (math.Mat4, bool) {
	v, ok := r.Values[name].(math.Mat4)
	return v, ok
}

// Vec3 returns the last vec3 written under name.
func (r *Recorder) Vec3(name string) (math.Vec3, bool) {
	v, ok := r.Values[name].(math.Vec3)
	return v, ok
}

// Bool returns the last bool written under name.
func (r *Recorder) Bool(name string) (bool, bool) {
	v, ok := r.Values[name].(bool)
	return v, ok
}

// Count returns how many times name was written.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, w := range r.Writes {
		if w.Name == name {
			n++
		}
	}
	return n
}
