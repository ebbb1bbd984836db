package texture

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

// fakeUploader hands out sequential handles and records GL-side calls.
type fakeUploader struct {
	next    uint32
	bound   map[int]uint32
	deleted []uint32
	fail    error
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{next: 100, bound: make(map[int]uint32)}
}

func (f *fakeUploader) Upload(img *Image) (uint32, error) {
	if f.fail != nil {
		return 0, f.fail
	}
	f.next++
	return f.next, nil
}

func (f *fakeUploader) Bind(unit int, handle uint32) { f.bound[unit] = handle }

func (f *fakeUploader) Delete(handles []uint32) { f.deleted = append(f.deleted, handles...) }

func rgbFile(t *testing.T, dir, name string) string {
	t.Helper()
	return writePNG(t, dir, name, twoRowRGBA())
}

func TestRegistrySlotsFollowRegistrationOrder(t *testing.T) {
	dir := t.TempDir()
	reg := NewRegistry(newFakeUploader())

	for _, tag := range []string{"foo", "bar", "baz"} {
		if err := reg.Load(rgbFile(t, dir, tag+".png"), tag); err != nil {
			t.Fatalf("Load(%s): %v", tag, err)
		}
	}

	for want, tag := range []string{"foo", "bar", "baz"} {
		slot, ok := reg.FindSlot(tag)
		if !ok || slot != want {
			t.Errorf("FindSlot(%s) = %d, %v; want %d, true", tag, slot, ok, want)
		}
	}

	slot, ok := reg.FindSlot("missing")
	if ok || slot != NotFound {
		t.Errorf("FindSlot(missing) = %d, %v; want %d, false", slot, ok, NotFound)
	}
	if reg.Slot("missing") != NotFound {
		t.Errorf("Slot(missing) = %d, want %d", reg.Slot("missing"), NotFound)
	}
}

func TestRegistryRejectsGrayscale(t *testing.T) {
	dir := t.TempDir()
	reg := NewRegistry(newFakeUploader())

	if err := reg.Load(rgbFile(t, dir, "ok.png"), "ok"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	gray.SetGray(1, 1, color.Gray{Y: 90})
	path := writePNG(t, dir, "gray.png", gray)

	err := reg.Load(path, "gray")
	if !errors.Is(err, ErrUnsupportedChannels) {
		t.Fatalf("expected ErrUnsupportedChannels, got %v", err)
	}
	if reg.Len() != 1 {
		t.Errorf("registry size changed to %d after rejected load", reg.Len())
	}
	if _, ok := reg.FindSlot("gray"); ok {
		t.Error("rejected texture should not be registered")
	}
}

func TestRegistryMissingFile(t *testing.T) {
	reg := NewRegistry(newFakeUploader())
	if err := reg.Load(filepath.Join(t.TempDir(), "nope.jpg"), "nope"); err == nil {
		t.Fatal("expected error for missing file")
	}
	if reg.Len() != 0 {
		t.Errorf("expected empty registry, got %d", reg.Len())
	}
}

func TestRegistryUploadFailure(t *testing.T) {
	up := newFakeUploader()
	up.fail = errors.New("out of texture memory")
	reg := NewRegistry(up)

	if err := reg.Load(rgbFile(t, t.TempDir(), "a.png"), "a"); err == nil {
		t.Fatal("expected upload error")
	}
	if reg.Len() != 0 {
		t.Errorf("expected empty registry, got %d", reg.Len())
	}
}

func TestRegistryRejectsDuplicateTag(t *testing.T) {
	dir := t.TempDir()
	reg := NewRegistry(newFakeUploader())

	if err := reg.Load(rgbFile(t, dir, "a.png"), "wood"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	first, _ := reg.Handle("wood")

	err := reg.Load(rgbFile(t, dir, "b.png"), "wood")
	if !errors.Is(err, ErrDuplicateTag) {
		t.Fatalf("expected ErrDuplicateTag, got %v", err)
	}
	if got, _ := reg.Handle("wood"); got != first {
		t.Errorf("duplicate load replaced handle %d with %d", first, got)
	}
	if reg.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", reg.Len())
	}
}

func TestRegistryGrowsPastGuaranteedUnits(t *testing.T) {
	dir := t.TempDir()
	path := rgbFile(t, dir, "tile.png")
	reg := NewRegistry(newFakeUploader())

	for i := 0; i < GuaranteedUnits+2; i++ {
		tag := string(rune('a' + i))
		if err := reg.Load(path, tag); err != nil {
			t.Fatalf("Load(%s): %v", tag, err)
		}
	}
	if reg.Len() != GuaranteedUnits+2 {
		t.Errorf("expected %d entries, got %d", GuaranteedUnits+2, reg.Len())
	}
	if slot := reg.Slot(string(rune('a' + GuaranteedUnits + 1))); slot != GuaranteedUnits+1 {
		t.Errorf("last slot = %d, want %d", slot, GuaranteedUnits+1)
	}
}

func TestRegistryBindAllAndDestroy(t *testing.T) {
	dir := t.TempDir()
	up := newFakeUploader()
	reg := NewRegistry(up)

	for _, tag := range []string{"deskTop", "deskRod"} {
		if err := reg.Load(rgbFile(t, dir, tag+".png"), tag); err != nil {
			t.Fatalf("Load(%s): %v", tag, err)
		}
	}

	reg.BindAll()
	for unit, e := range reg.Entries() {
		if up.bound[unit] != e.Handle {
			t.Errorf("unit %d bound to %d, want %d", unit, up.bound[unit], e.Handle)
		}
	}

	reg.Destroy()
	if len(up.deleted) != 2 {
		t.Fatalf("expected 2 deleted handles, got %v", up.deleted)
	}
	if reg.Len() != 0 {
		t.Errorf("expected empty registry after Destroy, got %d", reg.Len())
	}
	if _, ok := reg.FindSlot("deskTop"); ok {
		t.Error("tags should be gone after Destroy")
	}

	// Second Destroy is a no-op
	reg.Destroy()
	if len(up.deleted) != 2 {
		t.Errorf("second Destroy deleted again: %v", up.deleted)
	}
}
