package texture

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/logger"
)

// NotFound is the slot reported for tags that were never registered.
const NotFound = -1

// GuaranteedUnits is the number of fragment texture units GL guarantees.
const GuaranteedUnits = 16

var (
	// ErrDuplicateTag is returned when a tag is loaded twice.
	ErrDuplicateTag = errors.New("texture tag already registered")
	// ErrUnsupportedChannels is returned for images that are neither RGB nor RGBA.
	ErrUnsupportedChannels = errors.New("unsupported channel count")
	// ErrUnknownTag is returned when a draw asks for a tag that was never loaded.
	ErrUnknownTag = errors.New("unknown texture tag")
)

// Uploader moves decoded images into GPU texture objects.
type Uploader interface {
	Upload(img *Image) (uint32, error)
	Bind(unit int, handle uint32)
	Delete(handles []uint32)
}

// Entry is one loaded texture.
type Entry struct {
	Tag    string
	Handle uint32
}

// Registry maps tags to uploaded textures. Slot numbers follow registration
// order and match the texture unit each texture is bound to.
type Registry struct {
	uploader Uploader
	entries  []Entry
	slots    map[string]int
	log      *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(uploader Uploader) *Registry {
	return &Registry{
		uploader: uploader,
		slots:    make(map[string]int),
		log:      logger.Named("texture"),
	}
}

// Load decodes the image at path, uploads it, and registers it under tag.
// On failure the registry is left unchanged.
func (r *Registry) Load(path, tag string) error {
	if _, ok := r.slots[tag]; ok {
		r.log.Error("texture tag already registered", zap.String("tag", tag), zap.String("path", path))
		return fmt.Errorf("%w: %q", ErrDuplicateTag, tag)
	}

	img, err := DecodeFile(path)
	if err != nil {
		r.log.Error("could not load image", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("loading %s: %w", path, err)
	}

	if img.Channels != 3 && img.Channels != 4 {
		r.log.Error("image channel count not handled",
			zap.String("path", path),
			zap.Int("channels", img.Channels),
		)
		return fmt.Errorf("loading %s: %w: %d", path, ErrUnsupportedChannels, img.Channels)
	}

	handle, err := r.uploader.Upload(img)
	if err != nil {
		r.log.Error("texture upload failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("uploading %s: %w", path, err)
	}

	r.slots[tag] = len(r.entries)
	r.entries = append(r.entries, Entry{Tag: tag, Handle: handle})

	r.log.Info("loaded image",
		zap.String("path", path),
		zap.String("tag", tag),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
		zap.Int("channels", img.Channels),
	)
	if len(r.entries) > GuaranteedUnits {
		r.log.Warn("texture count exceeds guaranteed texture units",
			zap.Int("count", len(r.entries)),
			zap.Int("units", GuaranteedUnits),
		)
	}
	return nil
}

// BindAll binds texture i to texture unit i, in registration order.
func (r *Registry) BindAll() {
	for i, e := range r.entries {
		r.uploader.Bind(i, e.Handle)
	}
}

// FindSlot returns the slot of tag.
func (r *Registry) FindSlot(tag string) (int, bool) {
	slot, ok := r.slots[tag]
	if !ok {
		return NotFound, false
	}
	return slot, true
}

// Slot returns the slot of tag or NotFound.
func (r *Registry) Slot(tag string) int {
	slot, _ := r.FindSlot(tag)
	return slot
}

// Handle returns the GL texture object registered under tag.
func (r *Registry) Handle(tag string) (uint32, bool) {
	slot, ok := r.slots[tag]
	if !ok {
		return 0, false
	}
	return r.entries[slot].Handle, true
}

// Len returns the number of loaded textures.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns the loaded textures in slot order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Destroy deletes every texture object and empties the registry.
func (r *Registry) Destroy() {
	if len(r.entries) == 0 {
		return
	}
	handles := make([]uint32, len(r.entries))
	for i, e := range r.entries {
		handles[i] = e.Handle
	}
	r.uploader.Delete(handles)
	r.log.Debug("textures destroyed", zap.Int("count", len(handles)))

	r.entries = nil
	clear(r.slots)
}
