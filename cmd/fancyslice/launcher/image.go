package launcher

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Image is a read-only memory mapping of a file on disk.
type Image struct {
	path string
	data mmap.MMap
}

// OpenImage maps the file at path for reading.
func OpenImage(path string) (*Image, error) {
	if path == "" {
		return nil, ErrNoImage
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat image %s: %w", path, err)
	}
	// Zero length files cannot be mapped.
	if info.Size() == 0 {
		return &Image{path: path}, nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("map image %s: %w", path, err)
	}
	return &Image{path: path, data: data}, nil
}

// Bytes returns the mapped contents. They stay valid until Close.
func (img *Image) Bytes() []byte {
	return img.data
}

func (img *Image) Path() string {
	return img.path
}

// Close unmaps the file.
func (img *Image) Close() error {
	if img.data == nil {
		return nil
	}
	err := img.data.Unmap()
	img.data = nil
	return err
}
